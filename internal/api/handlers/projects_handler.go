package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/investrack/server/internal/api/types"
	"github.com/investrack/server/internal/models"
	"github.com/investrack/server/internal/repository"
)

type ProjectsHandler struct {
	repo repository.ProjectRepository
}

func NewProjectsHandler(repo repository.ProjectRepository) *ProjectsHandler {
	return &ProjectsHandler{repo: repo}
}

// List returns all active projects.
func (h *ProjectsHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.repo.ListActive(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// ListWithStatus returns active projects joined with their current status and
// investment rollups. The 500 body keeps this route's legacy `error` key.
func (h *ProjectsHandler) ListWithStatus(w http.ResponseWriter, r *http.Request) {
	items, err := h.repo.ListWithStatus(r.Context())
	if err != nil {
		writeErrorKeyed(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// Get returns one project joined with its latest status, active or not.
func (h *ProjectsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeMessage(w, http.StatusNotFound, "Project not found")
		return
	}
	p, err := h.repo.GetWithLatestStatus(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// Create inserts a project plus its initial status-history row, dated at the
// commencement date.
func (h *ProjectsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req types.CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Title == "" || req.CommencementDate == "" {
		writeMessage(w, http.StatusBadRequest, "Title and Commencement Date are required.")
		return
	}
	commencement, ok := parseDate(req.CommencementDate)
	if !ok {
		writeMessage(w, http.StatusBadRequest, "Title and Commencement Date are required.")
		return
	}

	p := models.Project{Title: req.Title, Description: req.Description}
	created, err := h.repo.CreateWithInitialStatus(r.Context(), &p, commencement)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// Update overwrites title/description and appends a status-history row when a
// new status is supplied.
func (h *ProjectsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeMessage(w, http.StatusNotFound, "Project not found")
		return
	}
	var req types.UpdateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Title == "" {
		writeMessage(w, http.StatusBadRequest, "Title is required.")
		return
	}

	in := repository.UpdateProjectInput{Title: req.Title, Description: req.Description}
	if req.StatusID != nil && req.StatusDate != nil {
		if d, ok := parseDate(*req.StatusDate); ok {
			in.StatusID = req.StatusID
			in.StatusDate = &d
		}
	}

	updated, err := h.repo.Update(r.Context(), id, in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// Delete flips the project's Active flag to 'N'.
func (h *ProjectsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeMessage(w, http.StatusNotFound, "Project not found or already deactivated")
		return
	}
	if err := h.repo.SoftDelete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "Project deactivated successfully")
}
