// Package server exposes the chart pipeline over HTTP. It is a thin layer:
// request decoding, middleware and response shaping live here, everything
// else is delegated to chart.Runner.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/navagraha/jyotish/pkg/aspect"
	"github.com/navagraha/jyotish/pkg/chart"
	"github.com/navagraha/jyotish/pkg/errors"
)

// maxStoredResults caps the in-memory result store used by the aspects
// endpoint. Oldest entries are evicted first.
const maxStoredResults = 256

// maxBodyBytes limits chart request bodies.
const maxBodyBytes = 1 << 16

// Server serves the chart API.
type Server struct {
	config Config
	runner *chart.Runner
	logger *log.Logger

	mu      sync.RWMutex
	results map[string]*chart.Result
	order   []string
}

// New creates a Server around an existing Runner.
func New(config Config, runner *chart.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		config:  config,
		runner:  runner,
		logger:  logger,
		results: make(map[string]*chart.Result),
	}
}

// Handler builds the routed handler with all middleware applied.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(newCORS(s.config.AllowedOrigins).Handler)
	r.Use(NewRateLimiter(s.config.RateLimit, s.logger).Middleware)

	r.Get("/health", s.handleHealth)
	r.Post("/api/chart", s.handleChart)
	r.Get("/api/chart/{id}/aspects", s.handleAspects)
	r.Get("/api/chart/{id}/matrix", s.handleMatrix)

	return r
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.config.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", s.config.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.logger.Info("server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.WriteTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

type healthResponse struct {
	Status string `json:"status"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "healthy"})
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	var opts chart.Options
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&opts); err != nil {
		writeError(w, r, s.logger, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid chart request"))
		return
	}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}

	s.store(result)
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleAspects(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	mode := aspect.Mode(r.URL.Query().Get("mode"))
	if mode == "" {
		mode = chart.DefaultMode
	}
	if _, err := aspect.ParseMode(string(mode)); err != nil {
		writeError(w, r, s.logger, err)
		return
	}

	result, ok := s.lookup(id)
	if !ok {
		writeError(w, r, s.logger, errors.New(errors.ErrCodeNotFound, "chart %q not found", id))
		return
	}

	aspects, err := s.runner.Aspects(r.Context(), result, mode)
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"chart_id": id,
		"mode":     mode,
		"aspects":  aspects,
	})
}

func (s *Server) handleMatrix(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, ok := s.lookup(id)
	if !ok {
		writeError(w, r, s.logger, errors.New(errors.ErrCodeNotFound, "chart %q not found", id))
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"chart_id":     id,
		"mode":         result.Mode,
		"matrix":       result.Matrix(),
		"house_matrix": result.HouseMatrix(),
	})
}

func (s *Server) store(result *chart.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.results[result.ID]; !exists {
		s.order = append(s.order, result.ID)
	}
	s.results[result.ID] = result

	for len(s.order) > maxStoredResults {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.results, oldest)
	}
}

func (s *Server) lookup(id string) (*chart.Result, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result, ok := s.results[id]
	return result, ok
}
