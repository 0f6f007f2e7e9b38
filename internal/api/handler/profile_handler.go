package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/tipulim/directory-web/internal/api/metrics"
	"github.com/tipulim/directory-web/internal/api/middleware"
	"github.com/tipulim/directory-web/internal/core/domain"
	"github.com/tipulim/directory-web/internal/core/ports"
)

type ProfileHandler struct {
	editor ports.ProfileEditor
	log    zerolog.Logger
}

func NewProfileHandler(editor ports.ProfileEditor, log zerolog.Logger) *ProfileHandler {
	return &ProfileHandler{editor: editor, log: log}
}

// FieldView is one row of the profile page.
type FieldView struct {
	Name      string
	Label     string
	Value     string
	Editable  bool
	Editing   bool
	EditValue string
}

// ProfileView is the data the profile template renders.
type ProfileView struct {
	ID        string
	Fields    []FieldView
	SaveError string
}

func newProfileView(p *domain.ProfilePage) ProfileView {
	editing, _ := p.Editing()
	view := ProfileView{ID: p.ProfileID.String(), SaveError: p.SaveError}
	for _, f := range domain.ProfileFields {
		fv := FieldView{
			Name:     string(f),
			Label:    f.Label(),
			Value:    p.DisplayValue(f),
			Editable: f.Editable(),
			Editing:  f == editing,
		}
		if fv.Editing {
			fv.EditValue = p.Edit.Value
		}
		view.Fields = append(view.Fields, fv)
	}
	return view
}

type editRequest struct {
	ID    string `param:"id"`
	Field string `param:"field" validate:"required,oneof=fname lname gender ezor cardDescription"`
}

// Show mounts the profile page: access guard, then the authenticated fetch.
// Any outcome other than Loaded sends the browser home.
func (h *ProfileHandler) Show(c echo.Context) error {
	id := domain.ParseUserID(c.Param("id"))
	res := h.editor.Mount(c.Request().Context(), middleware.SessionIDFrom(c), middleware.SessionFrom(c), id)
	metrics.ProfileMountsTotal.WithLabelValues(string(res.Outcome)).Inc()

	if res.Outcome != ports.MountLoaded {
		if errors.Is(res.Err, domain.ErrUnauthorized) {
			middleware.SetSession(c, domain.Session{})
		}
		return c.Redirect(http.StatusSeeOther, "/")
	}
	return c.Render(http.StatusOK, "profile", newProfileView(res.Page))
}

// BeginEdit switches the page into edit mode for one field.
func (h *ProfileHandler) BeginEdit(c echo.Context) error {
	var req editRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid field")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	page, err := h.editor.BeginEdit(c.Request().Context(), middleware.SessionIDFrom(c), domain.ParseUserID(req.ID), domain.Field(req.Field))
	return h.respond(c, page, err)
}

// Input replaces the edit buffer without saving.
func (h *ProfileHandler) Input(c echo.Context) error {
	page, err := h.editor.Input(c.Request().Context(), middleware.SessionIDFrom(c), h.profileID(c), c.FormValue("value"))
	return h.respond(c, page, err)
}

// Save persists the field being edited. A "value" form field, when present,
// becomes the edit buffer first.
func (h *ProfileHandler) Save(c echo.Context) error {
	var value *string
	if params, err := c.FormParams(); err == nil {
		if vals, ok := params["value"]; ok && len(vals) > 0 {
			value = &vals[0]
		}
	}

	page, err := h.editor.Save(c.Request().Context(), middleware.SessionIDFrom(c), middleware.SessionFrom(c), h.profileID(c), value)
	switch {
	case err == nil:
		metrics.ProfileSavesTotal.WithLabelValues(domain.EditSaved).Inc()
	case errors.Is(err, domain.ErrStaleResponse):
		metrics.ProfileSavesTotal.WithLabelValues(domain.EditStale).Inc()
		err = nil
	case page != nil && page.SaveError != "":
		metrics.ProfileSavesTotal.WithLabelValues(domain.EditFailed).Inc()
		err = nil
	}
	return h.respond(c, page, err)
}

// Cancel leaves edit mode without saving.
func (h *ProfileHandler) Cancel(c echo.Context) error {
	page, err := h.editor.Cancel(c.Request().Context(), middleware.SessionIDFrom(c), h.profileID(c))
	return h.respond(c, page, err)
}

func (h *ProfileHandler) profileID(c echo.Context) domain.UserID {
	return domain.ParseUserID(c.Param("id"))
}

// respond renders the page after an edit action. A page that is no longer
// mounted (expired or logged out) is mounted again through Show.
func (h *ProfileHandler) respond(c echo.Context, page *domain.ProfilePage, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return c.Redirect(http.StatusSeeOther, "/profile/"+h.profileID(c).String())
	}
	if err != nil {
		if page != nil && (errors.Is(err, domain.ErrNotEditing) || errors.Is(err, domain.ErrFieldNotEditable)) {
			h.log.Debug().Err(err).Msg("ignored edit action")
			return c.Render(http.StatusOK, "profile", newProfileView(page))
		}
		return err
	}
	return c.Render(http.StatusOK, "profile", newProfileView(page))
}
