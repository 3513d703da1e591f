package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/investrack/server/internal/api/types"
	"github.com/investrack/server/internal/models"
	"github.com/investrack/server/internal/repository"
)

type InvestorsHandler struct {
	repo repository.InvestorRepository
}

func NewInvestorsHandler(repo repository.InvestorRepository) *InvestorsHandler {
	return &InvestorsHandler{repo: repo}
}

// List returns all active investors.
func (h *InvestorsHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.repo.ListActive(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// Get returns one active investor.
func (h *InvestorsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeMessage(w, http.StatusNotFound, "Investor not found")
		return
	}
	inv, err := h.repo.GetActiveByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, inv)
}

// ListWithDetails returns active investors with their project counts and
// investment totals, ordered by name.
func (h *InvestorsHandler) ListWithDetails(w http.ResponseWriter, r *http.Request) {
	items, err := h.repo.ListWithDetails(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// Create inserts a new investor.
func (h *InvestorsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req types.CreateInvestorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	inv := models.Investor{
		Name:          req.Name,
		ContactNumber: req.ContactNumber,
		Address:       req.Address,
		Alias:         req.Alias,
		Active:        models.ActiveYes,
	}
	if err := h.repo.Create(r.Context(), &inv); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusCreated, "Investor added successfully")
}

// Update overwrites all editable investor fields.
func (h *InvestorsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeMessage(w, http.StatusNotFound, "Investor not found")
		return
	}
	var req types.UpdateInvestorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	in := repository.UpdateInvestorInput{
		Name:          req.Name,
		ContactNumber: req.ContactNumber,
		Address:       req.Address,
		Alias:         req.Alias,
	}
	if err := h.repo.Update(r.Context(), id, in); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "Investor updated successfully")
}

// Delete flips the investor's Active flag to 'N'.
func (h *InvestorsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeMessage(w, http.StatusNotFound, "Investor not found or already deactivated")
		return
	}
	if err := h.repo.SoftDelete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "Investor deactivated successfully")
}
