package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/investrack/server/internal/repository"
)

type mockDashboardRepository struct {
	mock.Mock
}

func (m *mockDashboardRepository) InvestmentTotals(ctx context.Context) (*repository.InvestmentTotals, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.(*repository.InvestmentTotals), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockDashboardRepository) InvestorTotals(ctx context.Context) (*repository.InvestorTotals, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.(*repository.InvestorTotals), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockDashboardRepository) ProjectTotals(ctx context.Context) (*repository.ProjectTotals, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.(*repository.ProjectTotals), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockDashboardRepository) LatestActivities(ctx context.Context) ([]repository.ActivityEvent, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]repository.ActivityEvent), args.Error(1)
	}
	return nil, args.Error(1)
}

func dashboardRouter(h *DashboardHandler) http.Handler {
	r := chi.NewRouter()
	r.Get("/api/dashboard/total-active-investment", h.TotalActiveInvestment)
	r.Get("/api/dashboard/total-active-investors", h.TotalActiveInvestors)
	r.Get("/api/dashboard/total-active-projects", h.TotalActiveProjects)
	r.Get("/api/dashboard/latest-activities-timeline", h.LatestActivitiesTimeline)
	return r
}

func TestInvestmentTotalsEmptyDatabaseIsZero(t *testing.T) {
	repo := new(mockDashboardRepository)
	repo.On("InvestmentTotals", mock.Anything).Return(&repository.InvestmentTotals{}, nil)

	r := dashboardRouter(NewDashboardHandler(repo))
	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/total-active-investment", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `{"Total_Investment":0,"Active_Investment":0}`, rr.Body.String())
}

func TestInvestorTotals(t *testing.T) {
	repo := new(mockDashboardRepository)
	repo.On("InvestorTotals", mock.Anything).
		Return(&repository.InvestorTotals{TotalInvestors: 12, ActiveInvestors: 7}, nil)

	r := dashboardRouter(NewDashboardHandler(repo))
	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/total-active-investors", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `{"Total_Investors":12,"Active_Investors":7}`, rr.Body.String())
}

func TestProjectTotals(t *testing.T) {
	repo := new(mockDashboardRepository)
	repo.On("ProjectTotals", mock.Anything).
		Return(&repository.ProjectTotals{TotalProjects: 4, ActiveProjects: 3}, nil)

	r := dashboardRouter(NewDashboardHandler(repo))
	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/total-active-projects", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `{"Total_Projects":4,"Active_Projects":3}`, rr.Body.String())
}

func TestLatestActivitiesEmptyIsArray(t *testing.T) {
	repo := new(mockDashboardRepository)
	repo.On("LatestActivities", mock.Anything).Return([]repository.ActivityEvent{}, nil)

	r := dashboardRouter(NewDashboardHandler(repo))
	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/latest-activities-timeline", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `[]`, rr.Body.String())
}
