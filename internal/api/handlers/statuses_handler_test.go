package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/investrack/server/internal/models"
	appErr "github.com/investrack/server/pkg/errors"
)

type mockStatusLogRepository struct {
	mock.Mock
}

func (m *mockStatusLogRepository) Create(ctx context.Context, obj *models.StatusLog) error {
	args := m.Called(ctx, obj)
	return args.Error(0)
}

func (m *mockStatusLogRepository) GetByID(ctx context.Context, id any, dest *models.StatusLog) error {
	args := m.Called(ctx, id, dest)
	return args.Error(0)
}

func (m *mockStatusLogRepository) ListAll(ctx context.Context) ([]models.StatusLog, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]models.StatusLog), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStatusLogRepository) ListByProject(ctx context.Context, projectID uint) ([]models.StatusLog, error) {
	args := m.Called(ctx, projectID)
	if v := args.Get(0); v != nil {
		return v.([]models.StatusLog), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStatusLogRepository) Update(ctx context.Context, id uint, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *mockStatusLogRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func statusRouter(h *StatusesHandler) http.Handler {
	r := chi.NewRouter()
	r.Get("/api/statuses", h.List)
	r.Get("/api/statuses/{id}", h.ListByProject)
	r.Post("/api/statuses", h.Create)
	r.Put("/api/statuses/{id}", h.Update)
	r.Delete("/api/statuses/{id}", h.Delete)
	return r
}

func TestListStatusesByProjectEmpty(t *testing.T) {
	repo := new(mockStatusLogRepository)
	repo.On("ListByProject", mock.Anything, uint(4)).
		Return(nil, appErr.New(appErr.CodeNotFound, "No statuses found for this project"))

	r := statusRouter(NewStatusesHandler(repo))
	req := httptest.NewRequest(http.MethodGet, "/api/statuses/4", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
	require.JSONEq(t, `{"message":"No statuses found for this project"}`, rr.Body.String())
}

func TestCreateStatusStampsServerTime(t *testing.T) {
	repo := new(mockStatusLogRepository)
	var stamped time.Time
	repo.On("Create", mock.Anything, mock.AnythingOfType("*models.StatusLog")).
		Run(func(args mock.Arguments) {
			entry := args.Get(1).(*models.StatusLog)
			stamped = entry.StatusTimestamp
			require.Equal(t, uint(2), entry.ProjectID)
			require.Equal(t, "Breaking ground", entry.Status)
		}).
		Return(nil)

	r := statusRouter(NewStatusesHandler(repo))
	body := `{"Project_ID":2,"Status":"Breaking ground"}`
	req := httptest.NewRequest(http.MethodPost, "/api/statuses", strings.NewReader(body))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	require.JSONEq(t, `{"message":"Status added successfully"}`, rr.Body.String())
	require.WithinDuration(t, time.Now(), stamped, 5*time.Second)
}

func TestUpdateStatusNotFound(t *testing.T) {
	repo := new(mockStatusLogRepository)
	repo.On("Update", mock.Anything, uint(8), "Stalled").
		Return(appErr.New(appErr.CodeNotFound, "Status not found"))

	r := statusRouter(NewStatusesHandler(repo))
	req := httptest.NewRequest(http.MethodPut, "/api/statuses/8", strings.NewReader(`{"Status":"Stalled"}`))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
	require.JSONEq(t, `{"message":"Status not found"}`, rr.Body.String())
}

func TestDeleteStatusHardDeletes(t *testing.T) {
	repo := new(mockStatusLogRepository)
	repo.On("Delete", mock.Anything, uint(8)).Return(nil)

	r := statusRouter(NewStatusesHandler(repo))
	req := httptest.NewRequest(http.MethodDelete, "/api/statuses/8", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `{"message":"Status deleted successfully"}`, rr.Body.String())
	repo.AssertExpectations(t)
}
