// Package server wires the landing site, the step API and static assets
// into one HTTP server.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/guruhq/landing"
	"github.com/guruhq/landing/howitworks"
	"github.com/guruhq/landing/internal/config"
	"github.com/guruhq/landing/site"
)

const shutdownTimeout = 10 * time.Second

// Server serves the landing pages.
type Server struct {
	cfg        *config.Config
	catalog    *howitworks.Catalog
	logger     *slog.Logger
	router     chi.Router
	httpServer *http.Server
}

// New creates a server and mounts every route.
func New(cfg *config.Config, catalog *howitworks.Catalog, logger *slog.Logger) (*Server, error) {
	s := &Server{
		cfg:     cfg,
		catalog: catalog,
		logger:  logger,
	}
	r, err := s.buildRouter()
	if err != nil {
		return nil, err
	}
	s.router = r
	return s, nil
}

func (s *Server) buildRouter() (chi.Router, error) {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(landing.RequestLogger(s.logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: s.cfg.CORS.AllowedOrigins,
			AllowedMethods: []string{"GET", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))
		r.Get("/steps/{audience}", s.handleSteps)
	})

	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(s.cfg.AssetsDir))))

	settings := &site.Settings{
		SignInURL:        s.cfg.Links.SignIn,
		FindTutorURL:     s.cfg.Links.FindTutor,
		StartTeachingURL: s.cfg.Links.StartTeaching,
		Carousel:         s.cfg.Carousel.ScrollStep(0),
	}
	pages := landing.New(
		landing.WithLogger(s.logger),
		landing.WithMiddlewares(landing.VaryHTMX),
	)
	root, err := site.Mount(pages, landing.NewChiRouter(r), s.catalog, settings)
	if err != nil {
		return nil, fmt.Errorf("mounting pages: %w", err)
	}
	landing.LogRoutes(s.logger, root)

	return r, nil
}

type stepsResponse struct {
	Audience howitworks.Audience `json:"audience"`
	Steps    []howitworks.Step   `json:"steps"`
}

func (s *Server) handleSteps(w http.ResponseWriter, r *http.Request) {
	aud, err := howitworks.ParseAudience(chi.URLParam(r, "audience"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(stepsResponse{Audience: aud, Steps: s.catalog.Steps(aud)}); err != nil {
		s.logger.Error("encoding steps", "audience", aud, "error", err)
	}
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler { return s.router }

// Run listens on the configured address until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.httpServer = &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
		ErrorLog:          slog.NewLogLogger(s.logger.Handler(), slog.LevelWarn),
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("guru listening", "addr", ln.Addr().String())
		errc <- s.httpServer.Serve(ln)
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}
