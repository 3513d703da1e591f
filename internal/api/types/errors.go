package types

import (
	"errors"
	"net/http"

	appErr "github.com/investrack/server/pkg/errors"
)

// HTTPStatus maps an application error to its response status code.
func HTTPStatus(err error) int {
	switch {
	case appErr.IsCode(err, appErr.CodeInvalid):
		return http.StatusBadRequest
	case appErr.IsCode(err, appErr.CodeNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// ClientMessage returns the message safe to expose to the client. Storage and
// query failures are masked; their detail is only ever logged server-side.
func ClientMessage(err error) string {
	var ae *appErr.AppError
	if errors.As(err, &ae) && (ae.Code == appErr.CodeInvalid || ae.Code == appErr.CodeNotFound) {
		return ae.Message
	}
	return "Internal Server Error"
}
