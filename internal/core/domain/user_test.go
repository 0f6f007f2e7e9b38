package domain

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestUserID_UnmarshalNumberOrString(t *testing.T) {
	var a, b struct {
		ID UserID `json:"id"`
	}
	if err := json.Unmarshal([]byte(`{"id":7}`), &a); err != nil {
		t.Fatalf("number: %v", err)
	}
	if err := json.Unmarshal([]byte(`{"id":"7"}`), &b); err != nil {
		t.Fatalf("string: %v", err)
	}
	if a.ID != "7" || a.ID != b.ID {
		t.Fatalf("expected both ids to be 7, got %q and %q", a.ID, b.ID)
	}
}

func TestUserID_NonNumericKept(t *testing.T) {
	if got := ParseUserID(" 65f1c0ab "); got != "65f1c0ab" {
		t.Fatalf("unexpected id %q", got)
	}
	if got := ParseUserID("007"); got != "7" {
		t.Fatalf("expected numeric ids to be normalised, got %q", got)
	}
}

func TestNewSession_Invariant(t *testing.T) {
	if _, err := NewSession("", "7"); !errors.Is(err, ErrInvalidSession) {
		t.Fatalf("expected ErrInvalidSession without token, got %v", err)
	}
	if _, err := NewSession("abc", ""); !errors.Is(err, ErrInvalidSession) {
		t.Fatalf("expected ErrInvalidSession without id, got %v", err)
	}

	s, err := NewSession("abc", "7")
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	if !s.IsLoggedIn() || s.Token() != "abc" || s.UserID() != "7" {
		t.Fatalf("unexpected session: %+v", s)
	}

	var anon Session
	if anon.IsLoggedIn() || anon.Token() != "" || !anon.UserID().IsZero() {
		t.Fatal("zero session must be anonymous")
	}
}

func TestSession_CanAccessProfile(t *testing.T) {
	s, _ := NewSession("abc", "7")
	if !s.CanAccessProfile("7") || !s.CanAccessProfile("07") {
		t.Fatal("owner must access own profile")
	}
	if s.CanAccessProfile("8") {
		t.Fatal("must not access another profile")
	}
	if (Session{}).CanAccessProfile("7") {
		t.Fatal("anonymous session must not access profiles")
	}
}

func TestUserMessage(t *testing.T) {
	withMsg := &ServerError{Status: 409, Message: "email already registered", Kind: ErrValidation}
	if got := UserMessage(withMsg, "fallback"); got != "email already registered" {
		t.Fatalf("unexpected message %q", got)
	}
	if !errors.Is(withMsg, ErrValidation) {
		t.Fatal("server error must unwrap to its kind")
	}

	empty := &ServerError{Status: 500, Kind: ErrUnexpectedServer}
	if got := UserMessage(empty, "fallback"); got != "fallback" {
		t.Fatalf("expected fallback, got %q", got)
	}
	if got := UserMessage(ErrNetwork, "fallback"); got != "fallback" {
		t.Fatalf("expected fallback for network error, got %q", got)
	}
}
