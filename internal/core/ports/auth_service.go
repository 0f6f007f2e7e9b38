package ports

import (
	"context"

	"github.com/tipulim/directory-web/internal/core/domain"
)

// AuthService mutates the session through the backend's auth endpoints.
type AuthService interface {
	Register(ctx context.Context, sessionID string, form domain.RegistrationForm) (domain.AuthResult, error)
	Login(ctx context.Context, sessionID string, form domain.LoginForm) (domain.AuthResult, error)
	Logout(ctx context.Context, sessionID string) error
}
