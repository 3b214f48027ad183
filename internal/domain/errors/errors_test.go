package errors

import (
	"net/http"
	"testing"
	"time"

	"flock/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsKeepsIdentity(t *testing.T) {
	err := ErrValidationFailed.WithDetails("title is required")

	assert.True(t, errors.Is(err, ErrValidationFailed))
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, "title is required", err.Details())
	assert.Equal(t, http.StatusBadRequest, err.HTTPCode())
}

func TestBaseError_WrapMessageIsStillAppError(t *testing.T) {
	wrapped := ErrNotificationNotFound.WrapMessage("mark read")

	appErr, ok := errors.AsType[AppError](wrapped)
	assert.True(t, ok)
	assert.Equal(t, "NOTIFICATION_NOT_FOUND", appErr.ErrorCode())
}

func TestRateLimitError_RetryAfterSeconds(t *testing.T) {
	tests := []struct {
		wait time.Duration
		want int
	}{
		{wait: 12 * time.Minute, want: 720},
		{wait: 1500 * time.Millisecond, want: 2},
		{wait: 0, want: 1},
	}

	for _, tt := range tests {
		err := NewRateLimitError(tt.wait)
		assert.Equal(t, tt.want, err.RetryAfterSeconds())
		assert.Equal(t, http.StatusTooManyRequests, err.HTTPCode())
	}
}
