package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Every failure surfaced by the backend client or the page state
// machine wraps exactly one of these, so callers branch with errors.Is.
var (
	ErrUnauthorized     = errors.New("unauthorized")
	ErrValidation       = errors.New("validation failed")
	ErrNetwork          = errors.New("backend unreachable")
	ErrUnexpectedServer = errors.New("unexpected server response")
	ErrNotFound         = errors.New("not found")
)

var (
	ErrInvalidSession    = errors.New("session requires both token and user id")
	ErrInvalidTransition = errors.New("invalid page transition")
	ErrProfileNotLoaded  = errors.New("profile not loaded")
	ErrFieldNotEditable  = errors.New("field is not editable")
	ErrNotEditing        = errors.New("no field is being edited")
	ErrStaleResponse     = errors.New("stale response discarded")
)

// ServerError is a non-2xx answer from the backend. Message carries the
// body-level "message" when the backend sent one.
type ServerError struct {
	Status  int
	Message string
	Kind    error
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("backend status %d", e.Status)
}

func (e *ServerError) Unwrap() error { return e.Kind }

// UserMessage returns the server-supplied message carried by err, or fallback
// when there is none (network failures, empty bodies, unparseable bodies).
func UserMessage(err error, fallback string) string {
	var se *ServerError
	if errors.As(err, &se) && se.Message != "" {
		return se.Message
	}
	return fallback
}
