package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/investrack/server/pkg/logger"
	"go.uber.org/zap"
)

// Recovery logs panics and returns 500 with the API's generic message body.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.L().Error("panic recovered", zap.Any("panic", rec), zap.ByteString("stack", debug.Stack()))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(`{"message":"Internal Server Error"}`))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
