package ports

import (
	"context"
	"time"

	"github.com/tipulim/directory-web/internal/core/domain"
)

// SessionRecord is the raw content of the external session store: the two
// string keys written on register/login.
type SessionRecord struct {
	Token  string
	UserID string
}

// SessionStore persists session records keyed by the opaque session id.
type SessionStore interface {
	// Load returns the zero record when nothing is stored for sessionID.
	Load(ctx context.Context, sessionID string) (SessionRecord, error)
	Save(ctx context.Context, sessionID string, rec SessionRecord, ttl time.Duration) error
	Delete(ctx context.Context, sessionID string) error
}

// PageStore keeps the profile page state of each session between requests.
type PageStore interface {
	// Load returns domain.ErrNotFound when the page was never mounted.
	Load(ctx context.Context, sessionID string, profileID domain.UserID) (*domain.ProfilePage, error)
	Save(ctx context.Context, sessionID string, page *domain.ProfilePage) error
	// Update applies fn to the stored page atomically with respect to other
	// Update calls on the same page.
	Update(ctx context.Context, sessionID string, profileID domain.UserID, fn func(*domain.ProfilePage) error) (*domain.ProfilePage, error)
	// Delete drops one mounted page. Deleting a missing page is not an error.
	Delete(ctx context.Context, sessionID string, profileID domain.UserID) error
	DeleteAll(ctx context.Context, sessionID string) error
}

// SessionService is the read/write surface of the session handed to pages.
type SessionService interface {
	Current(ctx context.Context, sessionID string) (domain.Session, error)
	Authenticate(ctx context.Context, sessionID, token string, userID domain.UserID) (domain.Session, error)
	Clear(ctx context.Context, sessionID string) error
}
