package handler

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/tipulim/directory-web/internal/core/domain"
	"github.com/tipulim/directory-web/internal/core/ports"
)

type stubEditor struct {
	mountFn func(sess domain.Session, id domain.UserID) ports.MountResult
	page    *domain.ProfilePage
	err     error

	beganField domain.Field
	savedValue *string
	saveCalls  int
}

func (s *stubEditor) Mount(_ context.Context, _ string, sess domain.Session, id domain.UserID) ports.MountResult {
	return s.mountFn(sess, id)
}

func (s *stubEditor) Page(context.Context, string, domain.UserID) (*domain.ProfilePage, error) {
	return s.page, s.err
}

func (s *stubEditor) BeginEdit(_ context.Context, _ string, _ domain.UserID, f domain.Field) (*domain.ProfilePage, error) {
	s.beganField = f
	return s.page, s.err
}

func (s *stubEditor) Input(context.Context, string, domain.UserID, string) (*domain.ProfilePage, error) {
	return s.page, s.err
}

func (s *stubEditor) Save(_ context.Context, _ string, _ domain.Session, _ domain.UserID, value *string) (*domain.ProfilePage, error) {
	s.saveCalls++
	s.savedValue = value
	return s.page, s.err
}

func (s *stubEditor) Cancel(context.Context, string, domain.UserID) (*domain.ProfilePage, error) {
	return s.page, s.err
}

func loadedPage(t *testing.T) *domain.ProfilePage {
	t.Helper()
	p := domain.NewProfilePage("7")
	if err := p.StartLoading(); err != nil {
		t.Fatalf("StartLoading: %v", err)
	}
	if err := p.Load(domain.UserProfile{ID: "7", FirstName: "Dana", LastName: "Cohen", Email: "d@x.com", Gender: "female", Region: "מרכז"}); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return p
}

func owner(t *testing.T) domain.Session {
	t.Helper()
	sess, err := domain.NewSession("abc", "7")
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return sess
}

func TestProfileHandler_Show_RedirectsUnlessLoaded(t *testing.T) {
	for _, outcome := range []ports.MountOutcome{ports.MountUnauthorized, ports.MountError} {
		t.Run(string(outcome), func(t *testing.T) {
			e := newTestEcho(t)
			stub := &stubEditor{mountFn: func(domain.Session, domain.UserID) ports.MountResult {
				return ports.MountResult{Outcome: outcome, Page: domain.NewProfilePage("8"), Err: domain.ErrUnauthorized}
			}}
			h := NewProfileHandler(stub, zerolog.Nop())

			c, rec := newFormContext(e, http.MethodGet, "/profile/8", nil, owner(t))
			c.SetParamNames("id")
			c.SetParamValues("8")
			if err := h.Show(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != http.StatusSeeOther || rec.Header().Get(echo.HeaderLocation) != "/" {
				t.Fatalf("expected redirect home, got %d %q", rec.Code, rec.Header().Get(echo.HeaderLocation))
			}
		})
	}
}

func TestProfileHandler_Show_Loaded(t *testing.T) {
	e := newTestEcho(t)
	page := loadedPage(t)
	stub := &stubEditor{mountFn: func(_ domain.Session, id domain.UserID) ports.MountResult {
		if id != "7" {
			t.Fatalf("unexpected id: %s", id)
		}
		return ports.MountResult{Outcome: ports.MountLoaded, Page: page}
	}}
	h := NewProfileHandler(stub, zerolog.Nop())

	c, rec := newFormContext(e, http.MethodGet, "/profile/7", nil, owner(t))
	c.SetParamNames("id")
	c.SetParamValues("7")
	if err := h.Show(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	body := rec.Body.String()
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(body, "Cohen") || !strings.Contains(body, "d@x.com") {
		t.Fatalf("profile values not rendered")
	}
	if !strings.Contains(body, "/profile/7/edit/lname") {
		t.Fatalf("expected edit control for lname")
	}
	if strings.Contains(body, "/profile/7/edit/email") {
		t.Fatalf("email must not be editable")
	}
}

func TestProfileHandler_BeginEdit(t *testing.T) {
	e := newTestEcho(t)
	page := loadedPage(t)
	if err := page.BeginEdit(domain.FieldLastName); err != nil {
		t.Fatalf("BeginEdit: %v", err)
	}
	stub := &stubEditor{page: page}
	h := NewProfileHandler(stub, zerolog.Nop())

	c, rec := newFormContext(e, http.MethodPost, "/profile/7/edit/lname", nil, owner(t))
	c.SetParamNames("id", "field")
	c.SetParamValues("7", "lname")
	if err := h.BeginEdit(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if stub.beganField != domain.FieldLastName {
		t.Fatalf("unexpected field: %s", stub.beganField)
	}
	if !strings.Contains(rec.Body.String(), `name="value" value="Cohen"`) {
		t.Fatalf("edit input not seeded: %s", rec.Body.String())
	}
}

func TestProfileHandler_BeginEdit_RejectsEmail(t *testing.T) {
	e := newTestEcho(t)
	stub := &stubEditor{}
	h := NewProfileHandler(stub, zerolog.Nop())

	c, _ := newFormContext(e, http.MethodPost, "/profile/7/edit/email", nil, owner(t))
	c.SetParamNames("id", "field")
	c.SetParamValues("7", "email")
	err := h.BeginEdit(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
	if stub.beganField != "" {
		t.Fatalf("editor must not be called")
	}
}

func TestProfileHandler_Save_PassesSubmittedValue(t *testing.T) {
	e := newTestEcho(t)
	page := loadedPage(t)
	stub := &stubEditor{page: page}
	h := NewProfileHandler(stub, zerolog.Nop())

	c, rec := newFormContext(e, http.MethodPost, "/profile/7/save", url.Values{"value": {"Levi"}}, owner(t))
	c.SetParamNames("id")
	c.SetParamValues("7")
	if err := h.Save(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if stub.savedValue == nil || *stub.savedValue != "Levi" {
		t.Fatalf("submitted value not forwarded")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestProfileHandler_Save_FailureShowsMessage(t *testing.T) {
	e := newTestEcho(t)
	page := loadedPage(t)
	if err := page.BeginEdit(domain.FieldLastName); err != nil {
		t.Fatalf("BeginEdit: %v", err)
	}
	page.SaveError = "Invalid name"
	stub := &stubEditor{page: page, err: &domain.ServerError{Status: 422, Message: "Invalid name", Kind: domain.ErrValidation}}
	h := NewProfileHandler(stub, zerolog.Nop())

	c, rec := newFormContext(e, http.MethodPost, "/profile/7/save", url.Values{"value": {"L"}}, owner(t))
	c.SetParamNames("id")
	c.SetParamValues("7")
	if err := h.Save(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), "Invalid name") {
		t.Fatalf("save error not rendered")
	}
}

func TestProfileHandler_Save_StaleRendersCurrentPage(t *testing.T) {
	e := newTestEcho(t)
	stub := &stubEditor{page: loadedPage(t), err: domain.ErrStaleResponse}
	h := NewProfileHandler(stub, zerolog.Nop())

	c, rec := newFormContext(e, http.MethodPost, "/profile/7/save", url.Values{}, owner(t))
	c.SetParamNames("id")
	c.SetParamValues("7")
	if err := h.Save(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if stub.savedValue != nil {
		t.Fatalf("absent value field must be forwarded as nil")
	}
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "Cohen") {
		t.Fatalf("expected current page, got %d", rec.Code)
	}
}

func TestProfileHandler_ActionOnUnmountedPage(t *testing.T) {
	e := newTestEcho(t)
	stub := &stubEditor{err: domain.ErrNotFound}
	h := NewProfileHandler(stub, zerolog.Nop())

	c, rec := newFormContext(e, http.MethodPost, "/profile/7/cancel", nil, owner(t))
	c.SetParamNames("id")
	c.SetParamValues("7")
	if err := h.Cancel(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusSeeOther || rec.Header().Get(echo.HeaderLocation) != "/profile/7" {
		t.Fatalf("expected remount redirect, got %d %q", rec.Code, rec.Header().Get(echo.HeaderLocation))
	}
}
