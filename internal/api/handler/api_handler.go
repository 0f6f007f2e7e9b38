package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tipulim/directory-web/internal/api/middleware"
	"github.com/tipulim/directory-web/internal/core/domain"
	"github.com/tipulim/directory-web/internal/core/ports"
)

// APIHandler serves the small JSON surface under /api/v1.
type APIHandler struct {
	directory ports.DirectoryService
}

func NewAPIHandler(directory ports.DirectoryService) *APIHandler {
	return &APIHandler{directory: directory}
}

// SessionResponse is the public view of the current session. The token is
// never exposed.
type SessionResponse struct {
	LoggedIn bool   `json:"logged_in"`
	UserID   string `json:"user_id,omitempty"`
}

// ProfessionalsResponse wraps the listing.
type ProfessionalsResponse struct {
	Professionals []domain.ProfessionalCard `json:"professionals"`
}

// Session returns the login state of the calling browser.
//
// @Summary      Current session
// @Tags         session
// @Produce      json
// @Success      200  {object}  SessionResponse
// @Router       /api/v1/session [get]
func (h *APIHandler) Session(c echo.Context) error {
	sess := middleware.SessionFrom(c)
	return c.JSON(http.StatusOK, SessionResponse{
		LoggedIn: sess.IsLoggedIn(),
		UserID:   sess.UserID().String(),
	})
}

// Professionals lists professionals, optionally filtered.
//
// @Summary      List professionals
// @Tags         directory
// @Produce      json
// @Param        ezor       query     string  false  "Region"
// @Param        sogeTipul  query     string  false  "Treatment type"
// @Success      200        {object}  ProfessionalsResponse
// @Failure      502        {object}  map[string]string
// @Router       /api/v1/professionals [get]
func (h *APIHandler) Professionals(c echo.Context) error {
	var filter domain.ProfessionalFilter
	if err := c.Bind(&filter); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid filter")
	}

	cards, err := h.directory.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	if cards == nil {
		cards = []domain.ProfessionalCard{}
	}
	return c.JSON(http.StatusOK, ProfessionalsResponse{Professionals: cards})
}
