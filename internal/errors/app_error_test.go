package errors_test

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guestconcierge/storefront-client/internal/errors"
)

func TestFromStatus(t *testing.T) {
	tests := []struct {
		status   int
		wantCode string
	}{
		{http.StatusUnauthorized, errors.ErrCodeUnauthorized},
		{http.StatusNotFound, errors.ErrCodeNotFound},
		{http.StatusInternalServerError, errors.ErrCodeTransport},
		{http.StatusUnprocessableEntity, errors.ErrCodeTransport},
	}

	for _, tc := range tests {
		t.Run(fmt.Sprintf("Status %d", tc.status), func(t *testing.T) {
			err := errors.FromStatus(tc.status)

			assert.Equal(t, tc.wantCode, err.Code)
			assert.Equal(t, tc.status, err.StatusCode)
		})
	}
}

func TestIsAppError(t *testing.T) {

	t.Run("Success - Unwraps Through Wrapping", func(t *testing.T) {
		inner := errors.NotFoundError("no such order")
		wrapped := fmt.Errorf("loading order: %w", inner)

		appErr, ok := errors.IsAppError(wrapped)

		require.True(t, ok)
		assert.Equal(t, errors.ErrCodeNotFound, appErr.Code)
	})

	t.Run("Failure - Plain Error", func(t *testing.T) {
		_, ok := errors.IsAppError(stderrors.New("boom"))

		assert.False(t, ok)
	})
}

func TestPredicates(t *testing.T) {
	assert.True(t, errors.IsNotFound(errors.FromStatus(http.StatusNotFound)))
	assert.False(t, errors.IsNotFound(errors.FromStatus(http.StatusInternalServerError)))
	assert.True(t, errors.IsUnauthorized(errors.FromStatus(http.StatusUnauthorized)))
	assert.False(t, errors.IsUnauthorized(nil))
}

func TestWithDetailAndError(t *testing.T) {
	cause := stderrors.New("connection reset")

	err := errors.TransportError("Request failed").WithDetail("backend unreachable").WithError(cause)

	assert.Equal(t, "Request failed", err.Error())
	assert.Equal(t, "backend unreachable", err.Detail)
	assert.ErrorIs(t, err, cause)
}
