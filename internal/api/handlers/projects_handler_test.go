package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/investrack/server/internal/models"
	"github.com/investrack/server/internal/repository"
	appErr "github.com/investrack/server/pkg/errors"
)

type mockProjectRepository struct {
	mock.Mock
}

func (m *mockProjectRepository) ListActive(ctx context.Context) ([]models.Project, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]models.Project), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProjectRepository) ListWithStatus(ctx context.Context) ([]repository.ProjectRollup, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]repository.ProjectRollup), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProjectRepository) GetWithLatestStatus(ctx context.Context, id uint) (*repository.ProjectDetail, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*repository.ProjectDetail), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProjectRepository) CreateWithInitialStatus(ctx context.Context, p *models.Project, commencement time.Time) (*repository.ProjectDetail, error) {
	args := m.Called(ctx, p, commencement)
	if v := args.Get(0); v != nil {
		return v.(*repository.ProjectDetail), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProjectRepository) Update(ctx context.Context, id uint, in repository.UpdateProjectInput) (*repository.ProjectDetail, error) {
	args := m.Called(ctx, id, in)
	if v := args.Get(0); v != nil {
		return v.(*repository.ProjectDetail), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProjectRepository) SoftDelete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func projectRouter(h *ProjectsHandler) http.Handler {
	r := chi.NewRouter()
	r.Get("/api/projects", h.List)
	r.Get("/api/projects/{id}", h.Get)
	r.Post("/api/projects", h.Create)
	r.Put("/api/projects/{id}", h.Update)
	r.Delete("/api/projects/{id}", h.Delete)
	return r
}

func TestCreateProjectMissingFields(t *testing.T) {
	repo := new(mockProjectRepository)
	r := projectRouter(NewProjectsHandler(repo))

	req := httptest.NewRequest(http.MethodPost, "/api/projects", strings.NewReader(`{"Description":"no title"}`))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.JSONEq(t, `{"message":"Title and Commencement Date are required."}`, rr.Body.String())
	repo.AssertNotCalled(t, "CreateWithInitialStatus")
}

func TestCreateProject(t *testing.T) {
	repo := new(mockProjectRepository)
	commencement := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	statusID := models.InitialStatusID
	detail := &repository.ProjectDetail{
		ProjectID:  1,
		Title:      "T",
		Active:     models.ActiveYes,
		StatusID:   &statusID,
		StatusDate: &commencement,
	}
	repo.On("CreateWithInitialStatus", mock.Anything, mock.AnythingOfType("*models.Project"), commencement).
		Return(detail, nil)

	r := projectRouter(NewProjectsHandler(repo))
	body := `{"Title":"T","Commencement_Date":"2024-01-01"}`
	req := httptest.NewRequest(http.MethodPost, "/api/projects", strings.NewReader(body))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)

	var got repository.ProjectDetail
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.Equal(t, uint(1), got.ProjectID)
	require.NotNil(t, got.StatusID)
	require.Equal(t, models.InitialStatusID, *got.StatusID)
	require.True(t, got.StatusDate.Equal(commencement))
	repo.AssertExpectations(t)
}

func TestGetProjectNotFound(t *testing.T) {
	repo := new(mockProjectRepository)
	repo.On("GetWithLatestStatus", mock.Anything, uint(42)).
		Return(nil, appErr.New(appErr.CodeNotFound, "Project not found"))

	r := projectRouter(NewProjectsHandler(repo))
	req := httptest.NewRequest(http.MethodGet, "/api/projects/42", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
	require.JSONEq(t, `{"message":"Project not found"}`, rr.Body.String())
}

func TestUpdateProjectRequiresTitle(t *testing.T) {
	repo := new(mockProjectRepository)
	r := projectRouter(NewProjectsHandler(repo))

	req := httptest.NewRequest(http.MethodPut, "/api/projects/1", strings.NewReader(`{"Description":"d"}`))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.JSONEq(t, `{"message":"Title is required."}`, rr.Body.String())
	repo.AssertNotCalled(t, "Update")
}

func TestUpdateProjectForwardsStatus(t *testing.T) {
	repo := new(mockProjectRepository)
	detail := &repository.ProjectDetail{ProjectID: 1, Title: "T", Active: models.ActiveYes}
	repo.On("Update", mock.Anything, uint(1), mock.MatchedBy(func(in repository.UpdateProjectInput) bool {
		return in.Title == "T" &&
			in.StatusID != nil && *in.StatusID == 2 &&
			in.StatusDate != nil && in.StatusDate.Equal(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))
	})).Return(detail, nil)

	r := projectRouter(NewProjectsHandler(repo))
	body := `{"Title":"T","Status_ID":2,"Status_Date":"2024-02-01"}`
	req := httptest.NewRequest(http.MethodPut, "/api/projects/1", strings.NewReader(body))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	repo.AssertExpectations(t)
}

func TestUpdateProjectWithoutStatusKeepsHistoryUntouched(t *testing.T) {
	repo := new(mockProjectRepository)
	detail := &repository.ProjectDetail{ProjectID: 1, Title: "T", Active: models.ActiveYes}
	repo.On("Update", mock.Anything, uint(1), mock.MatchedBy(func(in repository.UpdateProjectInput) bool {
		return in.StatusID == nil && in.StatusDate == nil
	})).Return(detail, nil)

	r := projectRouter(NewProjectsHandler(repo))
	req := httptest.NewRequest(http.MethodPut, "/api/projects/1", strings.NewReader(`{"Title":"T"}`))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	repo.AssertExpectations(t)
}

func TestDeleteProject(t *testing.T) {
	repo := new(mockProjectRepository)
	repo.On("SoftDelete", mock.Anything, uint(1)).Return(nil)

	r := projectRouter(NewProjectsHandler(repo))
	req := httptest.NewRequest(http.MethodDelete, "/api/projects/1", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `{"message":"Project deactivated successfully"}`, rr.Body.String())
}

func TestDeleteProjectAlreadyInactive(t *testing.T) {
	repo := new(mockProjectRepository)
	repo.On("SoftDelete", mock.Anything, uint(1)).
		Return(appErr.New(appErr.CodeNotFound, "Project not found or already deactivated"))

	r := projectRouter(NewProjectsHandler(repo))
	req := httptest.NewRequest(http.MethodDelete, "/api/projects/1", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
	require.JSONEq(t, `{"message":"Project not found or already deactivated"}`, rr.Body.String())
}

func TestListProjectsMasksStorageErrors(t *testing.T) {
	repo := new(mockProjectRepository)
	repo.On("ListActive", mock.Anything).
		Return(nil, appErr.Wrap(context.DeadlineExceeded, appErr.CodeInternal, "list projects failed"))

	r := projectRouter(NewProjectsHandler(repo))
	req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	require.JSONEq(t, `{"message":"Internal Server Error"}`, rr.Body.String())
}
