package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/okian/trendnote/internal/adapters/repository"
)

// TrendsHandler handles trend analysis requests.
type TrendsHandler struct {
	deps Dependencies
}

// NewTrendsHandler creates a new trends handler.
func NewTrendsHandler(deps Dependencies) *TrendsHandler {
	return &TrendsHandler{deps: deps}
}

// HandleGetTrends handles GET /trends?limit=N requests. Without a limit
// the full ranked list from the latest analysis is returned.
func (h *TrendsHandler) HandleGetTrends(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	doc, err := h.deps.Analysis(r.Context())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found", ErrNoAnalysis)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		n, err := strconv.Atoi(limitStr)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
			return
		}
		if n < len(doc.TopTopics) {
			doc.TopTopics = doc.TopTopics[:n]
		}
	}

	writeJSON(w, http.StatusOK, doc)
}
