// Package http exposes the service's operational endpoints: liveness,
// readiness, Prometheus metrics, and a small debug API over the location
// engine.
package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/typhoonhub/bulletin-etl/internal/domain"
	"github.com/typhoonhub/bulletin-etl/internal/gazetteer"
)

// ReadinessChecker reports whether the service is ready to serve traffic.
type ReadinessChecker interface {
	CheckReadiness(ctx context.Context) error
}

// Server exposes health, readiness, metrics, and debug HTTP endpoints.
type Server struct {
	httpServer *http.Server
	parser     *domain.Parser
	index      *gazetteer.Index
	logger     *slog.Logger
}

// NewServer creates an HTTP server with /healthz, /readyz, /metrics, and
// /v1 debug routes.
func NewServer(addr string, ready ReadinessChecker, parser *domain.Parser, index *gazetteer.Index, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		parser: parser,
		index:  index,
		logger: logger,
	}

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", handleReady(ready))
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /v1/parse", s.handleParse)
	mux.HandleFunc("GET /v1/gazetteer", s.handleGazetteer)

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func handleReady(checker ReadinessChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := checker.CheckReadiness(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "not ready",
				"error":  err.Error(),
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

// handleParse runs an ad-hoc location description through the engine.
// Intended for debugging bulletins that classified unexpectedly in
// production, not as a public API.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	text := r.URL.Query().Get("text")
	if text == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing text query parameter"})
		return
	}

	entities := s.parser.Parse(text)
	writeJSON(w, http.StatusOK, map[string]any{
		"entities": entities,
		"grouped":  domain.ToGroupedLocations(entities),
	})
}

// handleGazetteer reports the loaded gazetteer's shape.
func (s *Server) handleGazetteer(w http.ResponseWriter, _ *http.Request) {
	byGroup := make(map[gazetteer.IslandGroup]int, len(gazetteer.Groups))
	for _, g := range gazetteer.Groups {
		byGroup[g] = s.index.CountByGroup(g)
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"total":    s.index.Len(),
		"by_group": byGroup,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort health response
}
