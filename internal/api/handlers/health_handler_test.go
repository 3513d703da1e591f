package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLivenessAlwaysOK(t *testing.T) {
	h := NewHealthHandler(func(ctx context.Context) error {
		return errors.New("down")
	})
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rr := httptest.NewRecorder()
	h.Liveness(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}

func TestReadinessReflectsDatabase(t *testing.T) {
	h := NewHealthHandler(func(ctx context.Context) error { return nil })
	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	rr := httptest.NewRecorder()
	h.Readiness(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `{"status":"ready"}`, rr.Body.String())

	h = NewHealthHandler(func(ctx context.Context) error {
		return errors.New("dial tcp: connection refused")
	})
	rr = httptest.NewRecorder()
	h.Readiness(rr, req)
	require.Equal(t, http.StatusServiceUnavailable, rr.Code)
	require.JSONEq(t, `{"status":"unavailable"}`, rr.Body.String())
}
