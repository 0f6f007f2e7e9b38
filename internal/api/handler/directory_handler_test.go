package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/tipulim/directory-web/internal/core/domain"
)

type stubDirectory struct {
	cards  []domain.ProfessionalCard
	err    error
	filter domain.ProfessionalFilter
}

func (s *stubDirectory) List(_ context.Context, f domain.ProfessionalFilter) ([]domain.ProfessionalCard, error) {
	s.filter = f
	return s.cards, s.err
}

func (s *stubDirectory) Card(_ context.Context, id domain.UserID) (domain.ProfessionalCard, error) {
	for _, c := range s.cards {
		if c.ID == id {
			return c, nil
		}
	}
	return domain.ProfessionalCard{}, domain.ErrNotFound
}

func TestDirectoryHandler_List(t *testing.T) {
	e := newTestEcho(t)
	stub := &stubDirectory{cards: []domain.ProfessionalCard{{ID: "7", FirstName: "Dana", LastName: "Cohen", Region: "מרכז", TreatmentType: "CBT"}}}
	h := NewDirectoryHandler(stub)

	c, rec := newFormContext(e, http.MethodGet, "/professionals?ezor=%D7%9E%D7%A8%D7%9B%D7%96&sogeTipul=CBT", nil, domain.Session{})
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if stub.filter.Region != "מרכז" || stub.filter.TreatmentType != "CBT" {
		t.Fatalf("filter not bound: %+v", stub.filter)
	}
	if !strings.Contains(rec.Body.String(), "/personinfopage/7") {
		t.Fatalf("card link not rendered")
	}
}

func TestDirectoryHandler_List_BackendDown(t *testing.T) {
	e := newTestEcho(t)
	h := NewDirectoryHandler(&stubDirectory{err: domain.ErrNetwork})

	c, rec := newFormContext(e, http.MethodGet, "/professionals", nil, domain.Session{})
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), listingErrorMessage) {
		t.Fatalf("expected generic message, got %d", rec.Code)
	}
}

func TestDirectoryHandler_PersonInfoNotFound(t *testing.T) {
	e := newTestEcho(t)
	h := NewDirectoryHandler(&stubDirectory{})

	c, _ := newFormContext(e, http.MethodGet, "/personinfopage/99", nil, domain.Session{})
	c.SetParamNames("id")
	c.SetParamValues("99")
	if err := h.PersonInfo(c); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAPIHandler_SessionHidesToken(t *testing.T) {
	e := newTestEcho(t)
	h := NewAPIHandler(&stubDirectory{})

	c, rec := newFormContext(e, http.MethodGet, "/api/v1/session", nil, owner(t))
	if err := h.Session(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["logged_in"] != true || resp["user_id"] != "7" {
		t.Fatalf("unexpected payload: %v", resp)
	}
	if strings.Contains(rec.Body.String(), "abc") {
		t.Fatalf("token leaked")
	}
}

func TestAPIHandler_ProfessionalsEmptyList(t *testing.T) {
	e := newTestEcho(t)
	h := NewAPIHandler(&stubDirectory{})

	c, rec := newFormContext(e, http.MethodGet, "/api/v1/professionals", nil, domain.Session{})
	if err := h.Professionals(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), `"professionals":[]`) {
		t.Fatalf("expected empty array, got %s", rec.Body.String())
	}
}
