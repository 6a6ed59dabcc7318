// Copyright (c) 2026 Abhishek Portfolio. All rights reserved.
// Author: abhishek.nv.dev@gmail.com

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/abhisheknv/portfolio-api/internal/admins"
	"github.com/abhisheknv/portfolio-api/internal/contact"
	"github.com/abhisheknv/portfolio-api/internal/content/about"
	"github.com/abhisheknv/portfolio-api/internal/content/blog"
	"github.com/abhisheknv/portfolio-api/internal/content/course"
	"github.com/abhisheknv/portfolio-api/internal/content/experience"
	"github.com/abhisheknv/portfolio-api/internal/content/project"
	"github.com/abhisheknv/portfolio-api/internal/content/skill"
	"github.com/abhisheknv/portfolio-api/internal/platform/config"
	"github.com/abhisheknv/portfolio-api/internal/platform/constants"
	"github.com/abhisheknv/portfolio-api/internal/platform/middleware"
	"github.com/abhisheknv/portfolio-api/internal/public"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
//
// # Usage
//
// New domains add a field here — no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Admins handles owner identity routes (signup, login, profile).
	Admins *admins.Handler

	// About through Blog manage the gated dashboard content surface.
	About      *about.Handler
	Experience *experience.Handler
	Project    *project.Handler
	Skill      *skill.Handler
	Course     *course.Handler
	Blog       *blog.Handler

	// Contact handles public intake plus the gated inbox.
	Contact *contact.Handler

	// Public serves the unauthenticated read-only mirror.
	Public *public.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
//
// The verifier decodes bearer tokens on every request; identities holds the
// admin store the session gate re-checks before letting a token through.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, identities middleware.IdentityStore, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(verifier))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// The session gate: rejects requests without a live identity.
	gate := middleware.RequireAdmin(identities)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	// Domain-specific route groups mounted under versioned prefix.
	r.Route("/api/v1", func(api chi.Router) {
		api.Mount("/admin", h.Admins.Routes(gate))
		api.Mount("/contact", h.Contact.Routes(gate))
		api.Mount("/public", h.Public.Routes())

		// Dashboard content surface: everything below is owner-only.
		api.Group(func(dashboard chi.Router) {
			dashboard.Use(gate)

			dashboard.Route("/about", h.About.RegisterRoutes)
			dashboard.Route("/experience", h.Experience.RegisterRoutes)
			dashboard.Route("/projects", h.Project.RegisterRoutes)
			dashboard.Route("/skills", h.Skill.RegisterRoutes)
			dashboard.Route("/courses", h.Course.RegisterRoutes)
			dashboard.Route("/blogs", h.Blog.RegisterRoutes)
		})
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
