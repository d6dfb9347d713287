// Package api declares HTTP contracts and route registration helpers.
//
// The surface is read-only: every artifact it serves was produced by a
// pipeline run, so handlers never mutate state.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/okian/trendnote/internal/adapters/repository"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Analysis returns the most recent trend analysis.
	Analysis(ctx context.Context) (repository.AnalysisDocument, error)

	// Drafts returns the most recent generated drafts.
	Drafts(ctx context.Context) (repository.DraftsDocument, error)

	// Stats returns pipeline statistics for monitoring.
	Stats(ctx context.Context) map[string]interface{}
}

// Server wires HTTP routes for the read API.
type Server struct {
	healthHandler *HealthHandler
	trendsHandler *TrendsHandler
	draftsHandler *DraftsHandler
	statsHandler  *StatsHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies) *Server {
	return &Server{
		healthHandler: NewHealthHandler(),
		trendsHandler: NewTrendsHandler(deps),
		draftsHandler: NewDraftsHandler(deps),
		statsHandler:  NewStatsHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/trends", MetricsMiddleware(s.trendsHandler.HandleGetTrends, "trends"))
	mux.HandleFunc("/drafts", MetricsMiddleware(s.draftsHandler.HandleGetDrafts, "drafts"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
