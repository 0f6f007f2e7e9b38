package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/tipulim/directory-web/internal/api/middleware"
	"github.com/tipulim/directory-web/internal/core/domain"
	"github.com/tipulim/directory-web/internal/core/ports"
)

type anonSessions struct{}

func (anonSessions) Current(context.Context, string) (domain.Session, error) { return domain.Session{}, nil }
func (anonSessions) Authenticate(_ context.Context, _ string, token string, id domain.UserID) (domain.Session, error) {
	return domain.NewSession(token, id)
}
func (anonSessions) Clear(context.Context, string) error { return nil }

type noopAuth struct{}

func (noopAuth) Register(context.Context, string, domain.RegistrationForm) (domain.AuthResult, error) {
	return domain.AuthResult{}, domain.ErrNetwork
}
func (noopAuth) Login(context.Context, string, domain.LoginForm) (domain.AuthResult, error) {
	return domain.AuthResult{}, domain.ErrNetwork
}
func (noopAuth) Logout(context.Context, string) error { return nil }

// guardEditor fails the test if any edit action gets past the guard.
type guardEditor struct{ t *testing.T }

func (g guardEditor) Mount(_ context.Context, _ string, sess domain.Session, id domain.UserID) ports.MountResult {
	if !sess.CanAccessProfile(id) {
		return ports.MountResult{Outcome: ports.MountUnauthorized}
	}
	g.t.Fatalf("anonymous mount must not load")
	return ports.MountResult{}
}
func (g guardEditor) Page(context.Context, string, domain.UserID) (*domain.ProfilePage, error) {
	g.t.Fatalf("unexpected Page")
	return nil, nil
}
func (g guardEditor) BeginEdit(context.Context, string, domain.UserID, domain.Field) (*domain.ProfilePage, error) {
	g.t.Fatalf("unexpected BeginEdit")
	return nil, nil
}
func (g guardEditor) Input(context.Context, string, domain.UserID, string) (*domain.ProfilePage, error) {
	g.t.Fatalf("unexpected Input")
	return nil, nil
}
func (g guardEditor) Save(context.Context, string, domain.Session, domain.UserID, *string) (*domain.ProfilePage, error) {
	g.t.Fatalf("unexpected Save")
	return nil, nil
}
func (g guardEditor) Cancel(context.Context, string, domain.UserID) (*domain.ProfilePage, error) {
	g.t.Fatalf("unexpected Cancel")
	return nil, nil
}

type emptyDirectory struct{}

func (emptyDirectory) List(context.Context, domain.ProfessionalFilter) ([]domain.ProfessionalCard, error) {
	return nil, nil
}
func (emptyDirectory) Card(context.Context, domain.UserID) (domain.ProfessionalCard, error) {
	return domain.ProfessionalCard{}, domain.ErrNotFound
}

type defaultFAQs struct{}

func (defaultFAQs) List(context.Context) []domain.FAQ { return domain.DefaultFAQs }
func (defaultFAQs) Seed(context.Context) error      { return nil }

func newTestRouter(t *testing.T) *echo.Echo {
	t.Helper()
	e, err := NewRouter(Deps{
		Sessions:  anonSessions{},
		Auth:      noopAuth{},
		Editor:    guardEditor{t: t},
		Directory: emptyDirectory{},
		FAQs:      defaultFAQs{},
		Session:   middleware.SessionConfig{CookieName: "sid"},
		Log:       zerolog.Nop(),
	})
	if err != nil {
		t.Fatalf("NewRouter returned error: %v", err)
	}
	return e
}

func serve(e *echo.Echo, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestRouter_PublicPages(t *testing.T) {
	e := newTestRouter(t)

	for _, path := range []string{"/", "/about", "/contactus", "/faqList", "/faqs", "/register", "/login", "/professionals", "/health"} {
		if rec := serve(e, http.MethodGet, path); rec.Code != http.StatusOK {
			t.Fatalf("GET %s: expected 200, got %d", path, rec.Code)
		}
	}
}

func TestRouter_AnonymousProfileIsRedirected(t *testing.T) {
	e := newTestRouter(t)

	rec := serve(e, http.MethodGet, "/profile/7")
	if rec.Code != http.StatusSeeOther || rec.Header().Get(echo.HeaderLocation) != "/" {
		t.Fatalf("expected redirect home, got %d %q", rec.Code, rec.Header().Get(echo.HeaderLocation))
	}

	for _, path := range []string{"/profile/7/edit/lname", "/profile/7/input", "/profile/7/save", "/profile/7/cancel"} {
		rec := serve(e, http.MethodPost, path)
		if rec.Code != http.StatusSeeOther || rec.Header().Get(echo.HeaderLocation) != "/" {
			t.Fatalf("POST %s: expected redirect home, got %d", path, rec.Code)
		}
	}
}

func TestRouter_SessionCookieAndAPI(t *testing.T) {
	e := newTestRouter(t)

	rec := serve(e, http.MethodGet, "/api/v1/session")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"logged_in":false`) {
		t.Fatalf("unexpected session payload: %d %s", rec.Code, rec.Body.String())
	}
	if len(rec.Result().Cookies()) == 0 {
		t.Fatalf("expected a session cookie")
	}
}

func TestRouter_UnknownRouteRendersErrorPage(t *testing.T) {
	e := newTestRouter(t)

	rec := serve(e, http.MethodGet, "/nope")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "page not found") {
		t.Fatalf("expected error page body")
	}
}
