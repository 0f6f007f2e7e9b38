package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/tipulim/directory-web/internal/core/domain"
	"github.com/tipulim/directory-web/internal/core/ports"
)

// SessionService hydrates and mutates the per-browser session.
type SessionService struct {
	store ports.SessionStore
	pages ports.PageStore
	ttl   time.Duration
	log   zerolog.Logger
}

func NewSessionService(store ports.SessionStore, pages ports.PageStore, ttl time.Duration, log zerolog.Logger) *SessionService {
	if ttl <= 0 {
		ttl = 30 * 24 * time.Hour
	}
	return &SessionService{store: store, pages: pages, ttl: ttl, log: log}
}

// Current hydrates the session from the store. A record holding only one of
// token/user id is corrupt: it is removed and the session starts anonymous.
func (s *SessionService) Current(ctx context.Context, sessionID string) (domain.Session, error) {
	if sessionID == "" {
		return domain.Session{}, nil
	}

	rec, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return domain.Session{}, fmt.Errorf("load session: %w", err)
	}
	if rec.Token == "" && rec.UserID == "" {
		return domain.Session{}, nil
	}

	sess, err := domain.NewSession(rec.Token, domain.ParseUserID(rec.UserID))
	if err != nil {
		s.log.Warn().Bool("has_token", rec.Token != "").Bool("has_user_id", rec.UserID != "").Msg("partial session record, clearing")
		if delErr := s.store.Delete(ctx, sessionID); delErr != nil {
			s.log.Warn().Err(delErr).Msg("failed to delete partial session")
		}
		return domain.Session{}, nil
	}
	return sess, nil
}

// Authenticate stores token and user id together and returns the logged-in
// session. Page state left over from a previous identity is dropped.
func (s *SessionService) Authenticate(ctx context.Context, sessionID, token string, userID domain.UserID) (domain.Session, error) {
	sess, err := domain.NewSession(token, userID)
	if err != nil {
		return domain.Session{}, err
	}

	rec := ports.SessionRecord{Token: sess.Token(), UserID: sess.UserID().String()}
	if err := s.store.Save(ctx, sessionID, rec, sessionTTL(token, s.ttl, time.Now())); err != nil {
		return domain.Session{}, fmt.Errorf("save session: %w", err)
	}
	if err := s.pages.DeleteAll(ctx, sessionID); err != nil {
		s.log.Warn().Err(err).Msg("failed to drop previous page state")
	}

	s.log.Info().Str("user_id", sess.UserID().String()).Msg("session authenticated")
	return sess, nil
}

// Clear logs the session out and forgets its page state.
func (s *SessionService) Clear(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.store.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	if err := s.pages.DeleteAll(ctx, sessionID); err != nil {
		s.log.Warn().Err(err).Msg("failed to drop page state")
	}
	return nil
}

// sessionTTL bounds the session by the token's exp claim when the token is a
// JWT carrying one. The signature is not checked; the backend owns the key.
func sessionTTL(token string, fallback time.Duration, now time.Time) time.Duration {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return fallback
	}
	if claims.ExpiresAt == nil {
		return fallback
	}
	ttl := claims.ExpiresAt.Time.Sub(now)
	if ttl <= 0 || ttl > fallback {
		return fallback
	}
	return ttl
}
