package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tipulim/directory-web/internal/core/domain"
	"github.com/tipulim/directory-web/internal/core/ports"
	"github.com/tipulim/directory-web/pkg/logger"
)

// Messages shown when the backend gives no usable reason.
const (
	RegisterFallbackMessage = "Failed to register. Please try again."
	LoginFallbackMessage    = "Failed to log in. Please try again."
)

// AuthService implements registration, login and logout on top of the
// backend and the session.
type AuthService struct {
	api      ports.UsersAPI
	sessions ports.SessionService
	log      zerolog.Logger
}

func NewAuthService(api ports.UsersAPI, sessions ports.SessionService, log zerolog.Logger) *AuthService {
	return &AuthService{api: api, sessions: sessions, log: log}
}

// Register submits the form once. On success the session becomes
// authenticated with the returned token and id; on failure it is unchanged.
func (s *AuthService) Register(ctx context.Context, sessionID string, form domain.RegistrationForm) (domain.AuthResult, error) {
	res, err := s.api.Register(ctx, form)
	if err != nil {
		s.logFailure(ctx, err, "register")
		return domain.AuthResult{}, err
	}
	if err := s.establish(ctx, sessionID, res); err != nil {
		return domain.AuthResult{}, fmt.Errorf("register: %w", err)
	}

	log := logger.ForRequest(ctx, s.log)
	log.Info().Str("user_id", res.ID.String()).Msg("user registered")
	return res, nil
}

// Login authenticates existing credentials with the same contract as Register.
func (s *AuthService) Login(ctx context.Context, sessionID string, form domain.LoginForm) (domain.AuthResult, error) {
	res, err := s.api.Login(ctx, form)
	if err != nil {
		s.logFailure(ctx, err, "login")
		return domain.AuthResult{}, err
	}
	if err := s.establish(ctx, sessionID, res); err != nil {
		return domain.AuthResult{}, fmt.Errorf("login: %w", err)
	}

	log := logger.ForRequest(ctx, s.log)
	log.Info().Str("user_id", res.ID.String()).Msg("user logged in")
	return res, nil
}

// Logout clears the session.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.Clear(ctx, sessionID)
}

func (s *AuthService) establish(ctx context.Context, sessionID string, res domain.AuthResult) error {
	if _, err := s.sessions.Authenticate(ctx, sessionID, res.Token, res.ID); err != nil {
		if errors.Is(err, domain.ErrInvalidSession) {
			// 2xx without token or id
			return fmt.Errorf("%w: %v", domain.ErrUnexpectedServer, err)
		}
		return err
	}
	return nil
}

func (s *AuthService) logFailure(ctx context.Context, err error, op string) {
	log := logger.ForRequest(ctx, s.log)
	ev := log.Warn()
	if errors.Is(err, domain.ErrNetwork) || errors.Is(err, domain.ErrUnexpectedServer) {
		ev = log.Error()
	}
	ev.Err(err).Str("op", op).Msg("auth request failed")
}
