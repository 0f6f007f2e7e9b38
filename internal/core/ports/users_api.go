package ports

import (
	"context"

	"github.com/tipulim/directory-web/internal/core/domain"
)

// UsersAPI is the backend REST service. Failures wrap one of the domain error
// kinds (ErrNetwork, ErrUnauthorized, ErrValidation, ErrUnexpectedServer,
// ErrNotFound).
type UsersAPI interface {
	Register(ctx context.Context, form domain.RegistrationForm) (domain.AuthResult, error)
	Login(ctx context.Context, form domain.LoginForm) (domain.AuthResult, error)
	GetProfile(ctx context.Context, token string, id domain.UserID) (domain.UserProfile, error)
	UpdateProfile(ctx context.Context, token string, id domain.UserID, field domain.Field, value string) error
	ListProfessionals(ctx context.Context, filter domain.ProfessionalFilter) ([]domain.ProfessionalCard, error)
	GetProfessional(ctx context.Context, id domain.UserID) (domain.ProfessionalCard, error)
}
