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
	"github.com/tipulim/directory-web/internal/core/service"
)

type AuthHandler struct {
	authService ports.AuthService
	log         zerolog.Logger
}

func NewAuthHandler(authService ports.AuthService, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, log: log}
}

type registerPage struct {
	Form           domain.RegistrationForm
	Error          string
	Genders        []domain.Option
	Regions        []string
	TreatmentTypes []domain.Option
}

func newRegisterPage(form domain.RegistrationForm, msg string) registerPage {
	form.Password = ""
	return registerPage{
		Form:           form,
		Error:          msg,
		Genders:        domain.Genders,
		Regions:        domain.Regions,
		TreatmentTypes: domain.TreatmentTypes,
	}
}

type loginPage struct {
	Form  domain.LoginForm
	Error string
}

// RegisterForm renders the empty registration form.
func (h *AuthHandler) RegisterForm(c echo.Context) error {
	return c.Render(http.StatusOK, "register", newRegisterPage(domain.RegistrationForm{}, ""))
}

// Register submits the form to the backend once. On success the browser is
// sent to the new profile; on failure the form is shown again with the
// server's message or the fixed fallback.
func (h *AuthHandler) Register(c echo.Context) error {
	var form domain.RegistrationForm
	if err := c.Bind(&form); err != nil {
		return c.Render(http.StatusBadRequest, "register", newRegisterPage(form, "invalid form submission"))
	}
	if err := c.Validate(&form); err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("register", "validation").Inc()
		return c.Render(http.StatusBadRequest, "register", newRegisterPage(form, err.Error()))
	}

	res, err := h.authService.Register(c.Request().Context(), middleware.SessionIDFrom(c), form)
	metrics.AuthAttemptsTotal.WithLabelValues("register", metrics.ResultLabel(err)).Inc()
	if err != nil {
		msg := domain.UserMessage(err, service.RegisterFallbackMessage)
		return c.Render(failureStatus(err), "register", newRegisterPage(form, msg))
	}

	return c.Redirect(http.StatusSeeOther, "/profile/"+res.ID.String())
}

// LoginForm renders the empty login form.
func (h *AuthHandler) LoginForm(c echo.Context) error {
	return c.Render(http.StatusOK, "login", loginPage{})
}

// Login authenticates existing credentials with the same contract as Register.
func (h *AuthHandler) Login(c echo.Context) error {
	var form domain.LoginForm
	if err := c.Bind(&form); err != nil {
		return c.Render(http.StatusBadRequest, "login", loginPage{Error: "invalid form submission"})
	}
	if err := c.Validate(&form); err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("login", "validation").Inc()
		return c.Render(http.StatusBadRequest, "login", loginPage{Form: domain.LoginForm{Email: form.Email}, Error: err.Error()})
	}

	res, err := h.authService.Login(c.Request().Context(), middleware.SessionIDFrom(c), form)
	metrics.AuthAttemptsTotal.WithLabelValues("login", metrics.ResultLabel(err)).Inc()
	if err != nil {
		msg := domain.UserMessage(err, service.LoginFallbackMessage)
		return c.Render(failureStatus(err), "login", loginPage{Form: domain.LoginForm{Email: form.Email}, Error: msg})
	}

	return c.Redirect(http.StatusSeeOther, "/profile/"+res.ID.String())
}

// Logout clears the session and returns home.
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.authService.Logout(c.Request().Context(), middleware.SessionIDFrom(c)); err != nil {
		h.log.Error().Err(err).Msg("logout failed")
		return err
	}
	middleware.SetSession(c, domain.Session{})
	return c.Redirect(http.StatusSeeOther, "/")
}

// failureStatus picks the status a re-rendered form is served with.
func failureStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	default:
		return http.StatusBadGateway
	}
}
