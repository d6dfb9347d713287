package api

import (
	"errors"
	"net/http"

	"github.com/okian/trendnote/internal/adapters/repository"
	"github.com/okian/trendnote/internal/domain/model"
)

// DraftsHandler handles generated draft requests.
type DraftsHandler struct {
	deps Dependencies
}

// NewDraftsHandler creates a new drafts handler.
func NewDraftsHandler(deps Dependencies) *DraftsHandler {
	return &DraftsHandler{deps: deps}
}

// HandleGetDrafts handles GET /drafts?topic=NAME requests. Without a
// topic filter the full drafts document is returned.
func (h *DraftsHandler) HandleGetDrafts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	doc, err := h.deps.Drafts(r.Context())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found", ErrNoDrafts)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}

	if topic := r.URL.Query().Get("topic"); topic != "" {
		filtered := make([]model.Draft, 0, len(doc.Drafts))
		for _, d := range doc.Drafts {
			if d.Topic == topic {
				filtered = append(filtered, d)
			}
		}
		doc.Drafts = filtered
	}

	writeJSON(w, http.StatusOK, doc)
}
