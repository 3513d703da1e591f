package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/investrack/server/internal/api/types"
	"github.com/investrack/server/internal/models"
	"github.com/investrack/server/internal/repository"
)

type InvestmentsHandler struct {
	repo repository.InvestmentRepository
}

func NewInvestmentsHandler(repo repository.InvestmentRepository) *InvestmentsHandler {
	return &InvestmentsHandler{repo: repo}
}

// ListWithDetails returns active investments joined with project titles and
// investor names.
func (h *InvestmentsHandler) ListWithDetails(w http.ResponseWriter, r *http.Request) {
	items, err := h.repo.ListWithDetails(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// Get returns one active investment with its project and investor names.
func (h *InvestmentsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeMessage(w, http.StatusNotFound, "Investment not found or inactive.")
		return
	}
	item, err := h.repo.GetWithDetails(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// Create inserts a new investment. The 400 body keeps this route's legacy
// `error` key.
func (h *InvestmentsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req types.CreateInvestmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorKeyed(w, http.StatusBadRequest, "All fields are required.")
		return
	}
	if req.ProjectID == 0 || req.InvestorID == 0 || req.InvestmentAmount == 0 || req.InvestmentDate == "" {
		writeErrorKeyed(w, http.StatusBadRequest, "All fields are required.")
		return
	}
	date, ok := parseDate(req.InvestmentDate)
	if !ok {
		writeErrorKeyed(w, http.StatusBadRequest, "All fields are required.")
		return
	}

	inv := models.Investment{
		ProjectID:        req.ProjectID,
		InvestorID:       req.InvestorID,
		InvestmentAmount: req.InvestmentAmount,
		InvestmentDate:   date,
		Active:           models.ActiveYes,
	}
	if err := h.repo.Create(r.Context(), &inv); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, inv)
}

// Update applies a partial update: only fields present in the body reach the
// SET clause.
func (h *InvestmentsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeMessage(w, http.StatusNotFound, "Investment not found or no changes made.")
		return
	}
	var req types.UpdateInvestmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	in := repository.UpdateInvestmentInput{
		ProjectID:        req.ProjectID,
		InvestorID:       req.InvestorID,
		InvestmentAmount: req.InvestmentAmount,
		Active:           req.Active,
	}
	if req.InvestmentDate != nil {
		d, ok := parseDate(*req.InvestmentDate)
		if !ok {
			writeMessage(w, http.StatusBadRequest, "Invalid Investment Date.")
			return
		}
		in.InvestmentDate = &d
	}

	if err := h.repo.PartialUpdate(r.Context(), id, in); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "Investment updated successfully.")
}

// Delete flips the investment's Active flag to 'N'.
func (h *InvestmentsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeMessage(w, http.StatusNotFound, "Investment not found or already inactive.")
		return
	}
	if err := h.repo.SoftDelete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "Investment deactivated successfully.")
}
