// @title        Tipulim directory web API
// @version      1.0
// @description  JSON endpoints of the professionals directory front end.
// @BasePath     /
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tipulim/directory-web/internal/api"
	"github.com/tipulim/directory-web/internal/api/handler"
	"github.com/tipulim/directory-web/internal/api/middleware"
	"github.com/tipulim/directory-web/internal/core/service"
	"github.com/tipulim/directory-web/internal/infrastructure/backend"
	"github.com/tipulim/directory-web/internal/infrastructure/db/mongo"
	"github.com/tipulim/directory-web/internal/infrastructure/db/redis"
	"github.com/tipulim/directory-web/internal/infrastructure/queue"
	"github.com/tipulim/directory-web/internal/pkg/config"
	"github.com/tipulim/directory-web/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:       cfg.LogLevel,
		Pretty:      cfg.IsDevelopment(),
		Service:     "directory-web",
		Environment: cfg.Env,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mongoClient, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		AppName:  "directory-web",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	rdb, err := redis.Connect(ctx, redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer rdb.Close()

	// --- Repositories and stores ---
	faqRepo := mongo.NewFAQRepository(db)
	auditRepo := mongo.NewAuditRepository(db)
	if err := auditRepo.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to create audit indexes")
	}
	if err := faqRepo.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to create faq indexes")
	}
	sessionStore := redis.NewSessionStore(rdb)
	pageStore := redis.NewPageStore(rdb, cfg.Session.TTL)

	baseClient := backend.NewBaseClient(backend.Config{
		BaseURL: cfg.Backend.URL,
		Timeout: cfg.Backend.Timeout,
	}, logger.Component("backend"))
	usersAPI := backend.NewUsersClient(baseClient)

	// --- Audit dispatcher ---
	dispatcher := queue.NewDispatcher(cfg.Audit.Workers, auditRepo, logger.Component("audit"))
	dispatcher.Start(context.Background())

	// --- Services ---
	sessions := service.NewSessionService(sessionStore, pageStore, cfg.Session.TTL, logger.Component("session"))
	faqs := service.NewFAQService(faqRepo, logger.Component("faq"))
	if err := faqs.Seed(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to seed faqs")
	}

	e, err := api.NewRouter(api.Deps{
		Sessions:  sessions,
		Auth:      service.NewAuthService(usersAPI, sessions, logger.Component("auth")),
		Editor:    service.NewProfileEditor(usersAPI, sessions, pageStore, dispatcher, logger.Component("profile")),
		Directory: service.NewDirectoryService(usersAPI, logger.Component("directory")),
		FAQs:      faqs,
		Health:    handler.NewHealthDependenciesHandler(db, rdb, baseClient),
		Session: middleware.SessionConfig{
			CookieName: cfg.Session.CookieName,
			Secure:     cfg.Session.CookieSecure,
			TTL:        cfg.Session.TTL,
		},
		Log: logger.Component("http"),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build router")
	}

	go func() {
		log.Info().Str("port", cfg.Port).Str("backend", baseClient.BaseURL()).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	dispatcher.Close()
}
