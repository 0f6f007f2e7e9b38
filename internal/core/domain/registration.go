package domain

// Gender options offered by the registration form.
var Genders = []Option{
	{Value: "female", Label: "נקבה"},
	{Value: "male", Label: "זכר"},
}

// TreatmentTypes offered by the registration form (sogeTipul).
var TreatmentTypes = []Option{
	{Value: "CBT", Label: "CBT"},
	{Value: "tipulPse5ology", Label: "טיפול פסיכולוגי"},
	{Value: "ev7onem", Label: "אבחונים"},
}

// Regions (ezorim) a professional can work in.
var Regions = []string{
	"צפון",
	"חיפה והקריות",
	"השרון",
	"מרכז",
	"תל אביב",
	"ירושלים",
	"השפלה",
	"דרום",
	"אילת והערבה",
}

// Option is a value/label pair rendered as a select option.
type Option struct {
	Value string
	Label string
}

// RegistrationForm is the payload of POST /users/register. Every field is
// required; no format checks are applied beyond non-empty.
type RegistrationForm struct {
	FirstName       string `json:"fname"           form:"fname"           validate:"required"`
	LastName        string `json:"lname"           form:"lname"           validate:"required"`
	Phone           string `json:"phone"           form:"phone"           validate:"required"`
	Email           string `json:"email"           form:"email"           validate:"required"`
	Gender          string `json:"gender"          form:"gender"          validate:"required"`
	CardDescription string `json:"cardDescription" form:"cardDescription" validate:"required"`
	Region          string `json:"ezor"            form:"ezor"            validate:"required"`
	Password        string `json:"password"        form:"password"        validate:"required"`
	TreatmentType   string `json:"sogeTipul"       form:"sogeTipul"       validate:"required"`
}

// LoginForm is the payload of POST /users/login.
type LoginForm struct {
	Email    string `json:"email"    form:"email"    validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// AuthResult is what a successful register or login yields.
type AuthResult struct {
	Token string `json:"token"`
	ID    UserID `json:"id"`
}
