package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/investrack/server/internal/api/types"
	"github.com/investrack/server/pkg/logger"
	"go.uber.org/zap"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeMessage emits the API's standard `{"message": ...}` body.
func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}

// writeErrorKeyed emits the `{"error": ...}` body a couple of legacy routes
// use instead of the standard message key.
func writeErrorKeyed(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeError maps an application error to its status and client-safe message,
// logging the full cause when it is being masked as a 500.
func writeError(w http.ResponseWriter, err error) {
	status := types.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		logger.L().Error("request failed", zap.Error(err))
	}
	writeMessage(w, status, types.ClientMessage(err))
}

// pathID parses the {id} route parameter.
func pathID(r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

var dateLayouts = []string{"2006-01-02", time.RFC3339}

// parseDate accepts the plain dates the API has always been fed, plus RFC3339.
func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
