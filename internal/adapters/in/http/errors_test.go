package http

import (
	"errors"
	"net/http"
	"testing"

	"fasttrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestStatusForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"required value", errs.NewValueIsRequiredError("name"), http.StatusBadRequest},
		{"invalid value", errs.NewValueIsInvalidError("status"), http.StatusBadRequest},
		{"unauthorized", errs.NewUnauthorizedError("invalid email or password"), http.StatusUnauthorized},
		{"forbidden", errs.NewForbiddenError("admin role required"), http.StatusForbidden},
		{"not found", errs.NewObjectNotFoundError("parcel", "x"), http.StatusNotFound},
		{"conflict", errs.NewConflictError("already attached"), http.StatusConflict},
		{"invalid transition", errs.NewInvalidTransitionError("delivered", "pending"), http.StatusConflict},
		{"version conflict", errs.NewVersionConflictError("parcel", 3), http.StatusConflict},
		{"resource exhausted", errs.NewResourceExhaustedError("tracking id generation", 5), http.StatusServiceUnavailable},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusForError(tt.err))
		})
	}
}

func TestStatusForError_Wrapped(t *testing.T) {
	wrapped := errs.NewValueIsInvalidErrorWithCause("pickupDate", errors.New("bad format"))
	assert.Equal(t, http.StatusBadRequest, statusForError(wrapped))
}
