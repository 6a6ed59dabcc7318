// Copyright (c) 2026 Abhishek Portfolio. All rights reserved.
// Author: abhishek.nv.dev@gmail.com

// Command api is the entry point for the portfolio HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Wire domain services and HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/abhisheknv/portfolio-api/internal/admins"
	"github.com/abhisheknv/portfolio-api/internal/api"
	"github.com/abhisheknv/portfolio-api/internal/contact"
	"github.com/abhisheknv/portfolio-api/internal/content/about"
	"github.com/abhisheknv/portfolio-api/internal/content/blog"
	"github.com/abhisheknv/portfolio-api/internal/content/course"
	"github.com/abhisheknv/portfolio-api/internal/content/experience"
	"github.com/abhisheknv/portfolio-api/internal/content/project"
	"github.com/abhisheknv/portfolio-api/internal/content/skill"
	"github.com/abhisheknv/portfolio-api/internal/notify"
	"github.com/abhisheknv/portfolio-api/internal/platform/config"
	"github.com/abhisheknv/portfolio-api/internal/platform/constants"
	"github.com/abhisheknv/portfolio-api/internal/platform/migration"
	pgstore "github.com/abhisheknv/portfolio-api/internal/platform/postgres"
	redisstore "github.com/abhisheknv/portfolio-api/internal/platform/redis"
	"github.com/abhisheknv/portfolio-api/internal/platform/sec"
	"github.com/abhisheknv/portfolio-api/internal/public"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", constants.AppName))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Token Service ──────────────────────────────────────────────────
	tokenService, err := sec.NewTokenService(cfg.JWTSecret, constants.AuthIssuer, constants.AccessTokenTTL)
	must(log, err, "initialize token service")

	// ── 7. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
		CheckCache: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
	}, log)

	// ── 8. Notification Channels ──────────────────────────────────────────
	var channels []notify.Channel
	if cfg.EmailEnabled() {
		channels = append(channels, notify.NewEmailChannel(cfg))
		log.Info("notification_channel_enabled", slog.String("channel", "email"))
	}
	if cfg.WhatsAppEnabled() {
		channels = append(channels, notify.NewWhatsAppChannel(cfg))
		log.Info("notification_channel_enabled", slog.String("channel", "whatsapp"))
	}

	// ── 9. Domain Wiring ──────────────────────────────────────────────────
	adminRepository := admins.NewPostgresRepository(pool)
	adminService := admins.NewService(adminRepository, tokenService, log)
	adminHandler := admins.NewHandler(adminService)

	aboutService := about.NewService(about.NewPostgresRepository(pool), log)
	experienceService := experience.NewService(experience.NewPostgresRepository(pool), log)
	projectService := project.NewService(project.NewPostgresRepository(pool), log)
	skillService := skill.NewService(skill.NewPostgresRepository(pool), log)
	courseService := course.NewService(course.NewPostgresRepository(pool), log)
	blogService := blog.NewService(blog.NewPostgresRepository(pool), log)

	contactService := contact.NewService(contact.NewPostgresRepository(pool), channels, cfg.DefaultAdminID, log)

	publicHandler := public.NewHandler(public.Services{
		Admins:     adminService,
		About:      aboutService,
		Experience: experienceService,
		Project:    projectService,
		Skill:      skillService,
		Course:     courseService,
		Blog:       blogService,
	}, cfg.DefaultAdminID, public.NewResponseCache(rdb, log))

	// ── 10. HTTP Server ───────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:   liveness,
		Readiness:  readiness,
		Admins:     adminHandler,
		About:      about.NewHandler(aboutService),
		Experience: experience.NewHandler(experienceService),
		Project:    project.NewHandler(projectService),
		Skill:      skill.NewHandler(skillService),
		Course:     course.NewHandler(courseService),
		Blog:       blog.NewHandler(blogService),
		Contact:    contact.NewHandler(contactService),
		Public:     publicHandler,
	}

	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, tokenService, adminRepository, handlers)

	// ── 11. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
