package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// UserID identifies a user record. The backend sends ids either as JSON
// numbers or strings; both decode to the same value.
type UserID string

func (id *UserID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("user id: %w", err)
		}
		*id = ParseUserID(s)
		return nil
	}

	var n json.Number
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	if err := dec.Decode(&n); err != nil {
		return fmt.Errorf("user id: %w", err)
	}
	*id = ParseUserID(n.String())
	return nil
}

// ParseUserID normalises a textual id, so "7", " 7" and "007" are the same user.
func ParseUserID(s string) UserID {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return UserID(strconv.FormatInt(n, 10))
	}
	return UserID(s)
}

func (id UserID) String() string { return string(id) }

func (id UserID) IsZero() bool { return id == "" }

// Field names a profile attribute, using the backend's JSON key.
type Field string

const (
	FieldFirstName       Field = "fname"
	FieldLastName        Field = "lname"
	FieldEmail           Field = "email"
	FieldGender          Field = "gender"
	FieldRegion          Field = "ezor"
	FieldCardDescription Field = "cardDescription"
)

// ProfileFields lists the profile attributes in display order.
var ProfileFields = []Field{
	FieldFirstName,
	FieldLastName,
	FieldEmail,
	FieldGender,
	FieldRegion,
	FieldCardDescription,
}

var fieldLabels = map[Field]string{
	FieldFirstName:       "First Name",
	FieldLastName:        "Last Name",
	FieldEmail:           "Email",
	FieldGender:          "Gender",
	FieldRegion:          "Location (Ezor)",
	FieldCardDescription: "Short Description",
}

// Label is the human-readable caption of the field.
func (f Field) Label() string {
	if l, ok := fieldLabels[f]; ok {
		return l
	}
	return string(f)
}

// Known reports whether f is one of the profile attributes.
func (f Field) Known() bool {
	_, ok := fieldLabels[f]
	return ok
}

// Editable reports whether the field may be changed locally. Email never is.
func (f Field) Editable() bool {
	return f.Known() && f != FieldEmail
}

// UserProfile is the backend's user record as seen by the profile page.
type UserProfile struct {
	ID              UserID `json:"id"`
	FirstName       string `json:"fname"`
	LastName        string `json:"lname"`
	Email           string `json:"email"`
	Gender          string `json:"gender"`
	Region          string `json:"ezor"`
	CardDescription string `json:"cardDescription"`
}

// Value returns the current value of field f.
func (p *UserProfile) Value(f Field) string {
	if p == nil {
		return ""
	}
	switch f {
	case FieldFirstName:
		return p.FirstName
	case FieldLastName:
		return p.LastName
	case FieldEmail:
		return p.Email
	case FieldGender:
		return p.Gender
	case FieldRegion:
		return p.Region
	case FieldCardDescription:
		return p.CardDescription
	}
	return ""
}

// Set overwrites an editable field.
func (p *UserProfile) Set(f Field, v string) error {
	if !f.Editable() {
		return fmt.Errorf("%w: %s", ErrFieldNotEditable, f)
	}
	switch f {
	case FieldFirstName:
		p.FirstName = v
	case FieldLastName:
		p.LastName = v
	case FieldGender:
		p.Gender = v
	case FieldRegion:
		p.Region = v
	case FieldCardDescription:
		p.CardDescription = v
	}
	return nil
}
