package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tipulim/directory-web/internal/api/metrics"
	"github.com/tipulim/directory-web/internal/core/domain"
)

// RequireProfileOwner lets the request through only when the session owns
// the profile named by the :id path parameter. Everyone else is sent home.
func RequireProfileOwner(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := domain.ParseUserID(c.Param("id"))
		if !SessionFrom(c).CanAccessProfile(id) {
			metrics.ProfileMountsTotal.WithLabelValues("unauthorized").Inc()
			return c.Redirect(http.StatusSeeOther, "/")
		}
		return next(c)
	}
}
