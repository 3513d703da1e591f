package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/investrack/server/internal/api/types"
	"github.com/investrack/server/internal/models"
	"github.com/investrack/server/internal/repository"
)

// StatusesHandler serves the free-text status log. Unlike the other route
// groups, delete here removes rows outright.
type StatusesHandler struct {
	repo repository.StatusLogRepository
}

func NewStatusesHandler(repo repository.StatusLogRepository) *StatusesHandler {
	return &StatusesHandler{repo: repo}
}

// List returns every status-log entry.
func (h *StatusesHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.repo.ListAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// ListByProject returns one project's log entries, newest first.
func (h *StatusesHandler) ListByProject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeMessage(w, http.StatusNotFound, "No statuses found for this project")
		return
	}
	items, err := h.repo.ListByProject(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// Create appends a log entry stamped with the server's current time.
func (h *StatusesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req types.CreateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	entry := models.StatusLog{
		ProjectID:       req.ProjectID,
		Status:          req.Status,
		StatusTimestamp: time.Now(),
	}
	if err := h.repo.Create(r.Context(), &entry); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusCreated, "Status added successfully")
}

// Update overwrites an entry's status text and resets its timestamp to now.
func (h *StatusesHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeMessage(w, http.StatusNotFound, "Status not found")
		return
	}
	var req types.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.repo.Update(r.Context(), id, req.Status); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "Status updated successfully")
}

// Delete removes a log entry outright; the status log has no Active flag.
func (h *StatusesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeMessage(w, http.StatusNotFound, "Status not found")
		return
	}
	if err := h.repo.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "Status deleted successfully")
}
