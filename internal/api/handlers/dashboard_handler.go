package handlers

import (
	"net/http"

	"github.com/investrack/server/internal/repository"
)

// DashboardHandler serves the read-only aggregate queries.
type DashboardHandler struct {
	repo repository.DashboardRepository
}

func NewDashboardHandler(repo repository.DashboardRepository) *DashboardHandler {
	return &DashboardHandler{repo: repo}
}

func (h *DashboardHandler) TotalActiveInvestment(w http.ResponseWriter, r *http.Request) {
	totals, err := h.repo.InvestmentTotals(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, totals)
}

func (h *DashboardHandler) TotalActiveInvestors(w http.ResponseWriter, r *http.Request) {
	totals, err := h.repo.InvestorTotals(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, totals)
}

func (h *DashboardHandler) TotalActiveProjects(w http.ResponseWriter, r *http.Request) {
	totals, err := h.repo.ProjectTotals(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, totals)
}

func (h *DashboardHandler) LatestActivitiesTimeline(w http.ResponseWriter, r *http.Request) {
	events, err := h.repo.LatestActivities(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, events)
}
