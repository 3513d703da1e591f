package handlers

import (
	"net/http"

	"github.com/investrack/server/internal/repository"
)

// DefStatusHandler serves the status-definition reference data.
type DefStatusHandler struct {
	repo repository.DefStatusRepository
}

func NewDefStatusHandler(repo repository.DefStatusRepository) *DefStatusHandler {
	return &DefStatusHandler{repo: repo}
}

func (h *DefStatusHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.repo.ListActive(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}
