package http

import (
	"errors"
	"net/http"

	"fasttrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusForError maps application errors to HTTP status codes. Anything
// unrecognized is a 500.
func statusForError(err error) int {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConflict),
		errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrVersionConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrResourceExhausted):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders err as a JSON error response. Internal errors are not
// echoed back to the client.
func writeError(ctx echo.Context, err error) error {
	code := statusForError(err)

	message := err.Error()
	if code == http.StatusInternalServerError {
		message = "internal server error"
	}

	return ctx.JSON(code, ErrorResponse{Code: code, Message: message})
}
