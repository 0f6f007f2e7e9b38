package domain

import "time"

// ProfessionalCard is the public summary of a professional shown in listings.
type ProfessionalCard struct {
	ID              UserID `json:"id"`
	FirstName       string `json:"fname"`
	LastName        string `json:"lname"`
	Gender          string `json:"gender"`
	Region          string `json:"ezor"`
	TreatmentType   string `json:"sogeTipul"`
	CardDescription string `json:"cardDescription"`
}

// ProfessionalFilter narrows the listing. Empty fields match everything.
type ProfessionalFilter struct {
	Region        string `query:"ezor"`
	TreatmentType string `query:"sogeTipul"`
}

// FAQ is a single question/answer pair.
type FAQ struct {
	Question string `json:"question" bson:"question"`
	Answer   string `json:"answer"   bson:"answer"`
	Order    int    `json:"order"    bson:"order"`
}

// DefaultFAQs is served when the FAQ collection is empty or unreachable.
var DefaultFAQs = []FAQ{
	{Order: 1, Question: "מי אנחנו?", Answer: "אינדקס של אנשי מקצוע בתחום הטיפול הנפשי, המחבר בין מטופלים למטפלים לפי אזור וסוג טיפול."},
	{Order: 2, Question: "How do I find a professional?", Answer: "Open the professionals page and filter by region or treatment type."},
	{Order: 3, Question: "How do I join as a professional?", Answer: "Register with your details; your card appears in the listing and you can edit it from your profile page."},
}

// Edit outcomes recorded in the audit trail.
const (
	EditSaved  = "saved"
	EditFailed = "failed"
	EditStale  = "stale"
)

// ProfileEditEvent records one save attempt on a profile field.
type ProfileEditEvent struct {
	ProfileID UserID
	Field     Field
	Outcome   string
	RequestID string
	At        time.Time
}
