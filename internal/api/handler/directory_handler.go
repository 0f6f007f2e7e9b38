package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tipulim/directory-web/internal/core/domain"
	"github.com/tipulim/directory-web/internal/core/ports"
)

const listingErrorMessage = "Could not load professionals. Please try again."

type DirectoryHandler struct {
	directory ports.DirectoryService
}

func NewDirectoryHandler(directory ports.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{directory: directory}
}

type professionalsPage struct {
	Filter         domain.ProfessionalFilter
	Cards          []domain.ProfessionalCard
	Error          string
	Regions        []string
	TreatmentTypes []domain.Option
}

// List renders the professionals listing. Backend failures render an empty
// list with a generic message.
func (h *DirectoryHandler) List(c echo.Context) error {
	var filter domain.ProfessionalFilter
	if err := c.Bind(&filter); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid filter")
	}

	page := professionalsPage{
		Filter:         filter,
		Regions:        domain.Regions,
		TreatmentTypes: domain.TreatmentTypes,
	}
	cards, err := h.directory.List(c.Request().Context(), filter)
	if err != nil {
		page.Error = listingErrorMessage
	} else {
		page.Cards = cards
	}
	return c.Render(http.StatusOK, "professionals", page)
}

// PersonInfo renders one professional's public card.
func (h *DirectoryHandler) PersonInfo(c echo.Context) error {
	card, err := h.directory.Card(c.Request().Context(), domain.ParseUserID(c.Param("id")))
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "personinfo", card)
}
