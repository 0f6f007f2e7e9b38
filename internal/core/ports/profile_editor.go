package ports

import (
	"context"

	"github.com/tipulim/directory-web/internal/core/domain"
)

// MountOutcome tags the result of mounting a profile page. The view layer
// decides navigation from it.
type MountOutcome string

const (
	MountLoaded       MountOutcome = "loaded"
	MountUnauthorized MountOutcome = "unauthorized"
	MountError        MountOutcome = "error"
)

// MountResult is returned by ProfileEditor.Mount.
type MountResult struct {
	Outcome MountOutcome
	Page    *domain.ProfilePage
	Err     error
}

// ProfileEditor drives the guarded fetch and per-field edit workflow.
type ProfileEditor interface {
	Mount(ctx context.Context, sessionID string, session domain.Session, id domain.UserID) MountResult
	Page(ctx context.Context, sessionID string, id domain.UserID) (*domain.ProfilePage, error)
	BeginEdit(ctx context.Context, sessionID string, id domain.UserID, field domain.Field) (*domain.ProfilePage, error)
	Input(ctx context.Context, sessionID string, id domain.UserID, value string) (*domain.ProfilePage, error)
	// Save persists the edit buffer. When value is non-nil it replaces the
	// buffer first, as a submitted form does.
	Save(ctx context.Context, sessionID string, session domain.Session, id domain.UserID, value *string) (*domain.ProfilePage, error)
	Cancel(ctx context.Context, sessionID string, id domain.UserID) (*domain.ProfilePage, error)
}
