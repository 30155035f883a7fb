// Package server exposes the query and favorites API over HTTP.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/UnknownOlympus/hermes/internal/favorites"
	"github.com/UnknownOlympus/hermes/internal/models"
)

// QueryHandler is the orchestrator's public entry point.
type QueryHandler interface {
	Handle(ctx context.Context, query string) models.QueryResult
}

// Formatter renders a query result into the canonical response text.
type Formatter func(models.QueryResult) string

// Server wires the HTTP surface to the orchestrator and the favorites store.
type Server struct {
	log       *slog.Logger
	queries   QueryHandler
	format    Formatter
	favorites favorites.Interface
}

// New creates a Server with its collaborators.
func New(log *slog.Logger, queries QueryHandler, format Formatter, favs favorites.Interface) *Server {
	return &Server{
		log:       log,
		queries:   queries,
		format:    format,
		favorites: favs,
	}
}

// Routes returns the full handler tree, including health and metrics.
func (s *Server) Routes(reg *prometheus.Registry) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /query", s.handleQuery)
	mux.HandleFunc("POST /query/map", s.handleQueryMap)
	mux.HandleFunc("GET /favorites", s.handleListFavorites)
	mux.HandleFunc("POST /favorites", s.handleAddFavorite)
	mux.HandleFunc("POST /favorites/add-from-query", s.handleAddFavoriteFromQuery)
	mux.HandleFunc("DELETE /favorites/{id}", s.handleRemoveFavorite)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.Handle("GET /metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	return s.loggingMiddleware(mux)
}

// loggingMiddleware logs one line per handled request.
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.InfoContext(r.Context(), "Request handled",
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start),
		)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("OK")); err != nil {
		s.log.Error("failed to write reply", "error", err)
	}
}
