package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tipulim/directory-web/internal/core/ports"
)

// PageHandler serves the static pages and the FAQ list.
type PageHandler struct {
	faqs ports.FAQService
}

func NewPageHandler(faqs ports.FAQService) *PageHandler {
	return &PageHandler{faqs: faqs}
}

func (h *PageHandler) Home(c echo.Context) error {
	return c.Render(http.StatusOK, "home", nil)
}

func (h *PageHandler) About(c echo.Context) error {
	return c.Render(http.StatusOK, "about", nil)
}

func (h *PageHandler) Contact(c echo.Context) error {
	return c.Render(http.StatusOK, "contact", nil)
}

func (h *PageHandler) FAQ(c echo.Context) error {
	return c.Render(http.StatusOK, "faq", h.faqs.List(c.Request().Context()))
}
