package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/tipulim/directory-web/docs"
	"github.com/tipulim/directory-web/internal/api/handler"
	"github.com/tipulim/directory-web/internal/api/middleware"
	"github.com/tipulim/directory-web/internal/core/ports"
	"github.com/tipulim/directory-web/internal/web"
)

// Deps are the collaborators the router wires into handlers.
type Deps struct {
	Sessions  ports.SessionService
	Auth      ports.AuthService
	Editor    ports.ProfileEditor
	Directory ports.DirectoryService
	FAQs      ports.FAQService
	Health    *handler.HealthDependenciesHandler
	Session   middleware.SessionConfig
	Log       zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) (*echo.Echo, error) {
	renderer, err := web.NewRenderer()
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestContext)
	e.Use(middleware.Metrics)
	e.Use(middleware.RequestLogger(deps.Log))

	// --- Probes, metrics, docs (no session) ---
	healthHandler := handler.NewHealthHandler()
	e.GET("/health", healthHandler.Liveness) // liveness
	if deps.Health != nil {
		e.GET("/health/ready", deps.Health.Readiness) // readiness
	}
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.StaticFS("/static", web.Static())

	// --- Pages ---
	site := e.Group("", middleware.Session(deps.Sessions, deps.Session, deps.Log))

	pages := handler.NewPageHandler(deps.FAQs)
	site.GET("/", pages.Home)
	site.GET("/about", pages.About)
	site.GET("/contactus", pages.Contact)
	site.GET("/faqList", pages.FAQ)
	site.GET("/faqs", pages.FAQ)

	authHandler := handler.NewAuthHandler(deps.Auth, deps.Log)
	site.GET("/register", authHandler.RegisterForm)
	site.POST("/register", authHandler.Register)
	site.GET("/login", authHandler.LoginForm)
	site.POST("/login", authHandler.Login)
	site.POST("/logout", authHandler.Logout)

	directoryHandler := handler.NewDirectoryHandler(deps.Directory)
	site.GET("/professionals", directoryHandler.List)
	site.GET("/personinfopage/:id", directoryHandler.PersonInfo)

	profileHandler := handler.NewProfileHandler(deps.Editor, deps.Log)
	site.GET("/profile/:id", profileHandler.Show)
	owner := site.Group("/profile/:id", middleware.RequireProfileOwner)
	owner.POST("/edit/:field", profileHandler.BeginEdit)
	owner.POST("/input", profileHandler.Input)
	owner.POST("/save", profileHandler.Save)
	owner.POST("/cancel", profileHandler.Cancel)

	// --- JSON API ---
	apiHandler := handler.NewAPIHandler(deps.Directory)
	v1 := site.Group("/api/v1")
	v1.GET("/session", apiHandler.Session)
	v1.GET("/professionals", apiHandler.Professionals)

	e.RouteNotFound("/*", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "page not found")
	})

	return e, nil
}
