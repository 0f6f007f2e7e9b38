package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/tipulim/directory-web/internal/core/domain"
	"github.com/tipulim/directory-web/internal/core/ports"
)

const (
	sessionKey   = "session"
	sessionIDKey = "session_id"
)

// SessionConfig controls the session cookie.
type SessionConfig struct {
	CookieName string
	Secure     bool
	TTL        time.Duration
}

// Session assigns every browser an opaque session id cookie and injects the
// hydrated session into the context. A store failure degrades to an
// anonymous session.
func Session(svc ports.SessionService, cfg SessionConfig, log zerolog.Logger) echo.MiddlewareFunc {
	if cfg.CookieName == "" {
		cfg.CookieName = "sid"
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sid := ""
			if ck, err := c.Cookie(cfg.CookieName); err == nil {
				if _, err := uuid.Parse(ck.Value); err == nil {
					sid = ck.Value
				}
			}
			if sid == "" {
				sid = uuid.NewString()
				c.SetCookie(&http.Cookie{
					Name:     cfg.CookieName,
					Value:    sid,
					Path:     "/",
					MaxAge:   int(cfg.TTL.Seconds()),
					HttpOnly: true,
					Secure:   cfg.Secure,
					SameSite: http.SameSiteLaxMode,
				})
			}

			sess, err := svc.Current(c.Request().Context(), sid)
			if err != nil {
				log.Error().Err(err).Msg("session store unavailable, continuing anonymous")
				sess = domain.Session{}
			}

			SetSessionID(c, sid)
			SetSession(c, sess)
			return next(c)
		}
	}
}

// SessionFrom returns the session injected by Session, or an anonymous one.
func SessionFrom(c echo.Context) domain.Session {
	sess, _ := c.Get(sessionKey).(domain.Session)
	return sess
}

// SessionIDFrom returns the opaque session id injected by Session.
func SessionIDFrom(c echo.Context) string {
	sid, _ := c.Get(sessionIDKey).(string)
	return sid
}

// SetSessionID records the opaque session id for the rest of the request.
func SetSessionID(c echo.Context, sid string) {
	c.Set(sessionIDKey, sid)
}

// SetSession replaces the session for the rest of the request, after login or
// logout.
func SetSession(c echo.Context, sess domain.Session) {
	c.Set(sessionKey, sess)
}
