package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/jayshree-infra/website/internal/config"
	"github.com/jayshree-infra/website/internal/inquiry"
	"github.com/jayshree-infra/website/internal/site"
)

// Server serves the site pages, the JSON API and the inquiry hand-off.
type Server struct {
	cfg        *config.Config
	renderer   *site.Renderer
	composer   *inquiry.Composer
	limiter    *RateLimiter
	reload     http.Handler
	router     chi.Router
	httpServer *http.Server
}

// Option customizes a Server.
type Option func(*Server)

// WithReload mounts h at /ws/reload for live reloading pages.
func WithReload(h http.Handler) Option {
	return func(s *Server) { s.reload = h }
}

// WithComposer replaces the inquiry composer built from the config.
func WithComposer(c *inquiry.Composer) Option {
	return func(s *Server) { s.composer = c }
}

// New creates a server rendering pages with renderer.
func New(cfg *config.Config, renderer *site.Renderer, opts ...Option) *Server {
	s := &Server{
		cfg:      cfg,
		renderer: renderer,
		composer: &inquiry.Composer{Number: cfg.WhatsApp.Number, Brand: cfg.Brand},
		limiter:  NewRateLimiter(cfg.Server.RateLimit, cfg.Server.RateBurst),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}
	if s.cfg.Server.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// The reload socket is long-lived; keep it outside the timeout.
	if s.reload != nil {
		r.Handle("/ws/reload", s.reload)
	}

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(60 * time.Second))

		r.Get("/static/*", s.handleStatic)
		s.registerAPI(r)
		s.registerPages(r)
	})

	r.NotFound(s.handleNotFound)
	return r
}

// Router returns the chi router for registering additional routes.
func (s *Server) Router() chi.Router { return s.router }

// Handler returns the server's root HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

// Start begins listening on the configured port and evicts idle rate limiter
// entries until the server shuts down.
func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.cfg.Server.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go s.limiter.Run(ctx, time.Minute)

	log.Printf("jayshree site listening on %s", addr)
	err := s.httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
