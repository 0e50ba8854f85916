package server

import (
	"context"
	stderrors "errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/graphloom/pkg/pipeline"
	"github.com/matzehuels/graphloom/pkg/profile"
)

// Defaults for Config.
const (
	DefaultAddr           = ":8080"
	DefaultMaxBodyBytes   = 4 << 20
	DefaultRequestTimeout = 60 * time.Second
	shutdownTimeout       = 10 * time.Second
)

// Config configures a Server.
type Config struct {
	Addr           string
	Runner         *pipeline.Runner
	Profiles       profile.Store // optional
	Logger         *log.Logger
	MaxBodyBytes   int64
	RequestTimeout time.Duration
}

// Server serves the HTTP API.
type Server struct {
	cfg    Config
	logger *log.Logger
	router chi.Router
}

// New builds the router. A nil Runner gets a cache-less runner without a
// layout engine.
func New(cfg Config) *Server {
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	if cfg.Runner == nil {
		cfg.Runner = pipeline.NewRunner(nil, nil, cfg.Logger, nil)
	}
	s := &Server{cfg: cfg, logger: cfg.Logger}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(middleware.RealIP)
	r.Use(s.observe)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.cfg.RequestTimeout))

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/options", s.handleOptions)
		r.Get("/settings/sample", s.handleSample)
		r.Post("/canvas", s.handleCanvas)
		r.Post("/preview", s.handlePreview)
		r.Route("/profiles", func(r chi.Router) {
			r.Get("/", s.handleListProfiles)
			r.Post("/", s.handlePutProfile)
			r.Get("/{id}", s.handleGetProfile)
			r.Get("/{id}/{version}", s.handleGetProfile)
		})
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, errorBody("NOT_FOUND", "no route for "+r.URL.Path))
	})
	return r
}

// Handler returns the HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !stderrors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
