package errors_test

import (
	"fmt"
	"testing"

	"linkfatec/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainError(t *testing.T) {
	t.Run("Should include the cause in the message", func(t *testing.T) {
		err := errors.Transport("executing request", fmt.Errorf("connection refused"))
		assert.Equal(t, "TRANSPORT: executing request: connection refused", err.Error())
		assert.NotEmpty(t, err.StackTrace())
	})

	t.Run("Should carry the status code through wrapping", func(t *testing.T) {
		err := fmt.Errorf("get offers: %w", errors.FromStatus(503, "unexpected status code: 503"))
		assert.Equal(t, 503, errors.StatusCode(err))
		assert.Equal(t, errors.ErrTypeHTTPStatus, errors.TypeOf(err))
	})

	t.Run("Should classify refused and throttled responses", func(t *testing.T) {
		for code, want := range map[int]errors.ErrorType{
			401: errors.ErrTypeUnauthorized,
			403: errors.ErrTypeUnauthorized,
			429: errors.ErrTypeRateLimit,
			404: errors.ErrTypeHTTPStatus,
			500: errors.ErrTypeHTTPStatus,
		} {
			err := errors.FromStatus(code, "unexpected status code")
			assert.Equal(t, want, err.Type, "status %d", code)
			assert.Equal(t, code, errors.StatusCode(err))
		}
	})

	t.Run("Should report nothing for plain errors", func(t *testing.T) {
		err := fmt.Errorf("plain")
		assert.Equal(t, 0, errors.StatusCode(err))
		assert.Equal(t, errors.ErrorType(""), errors.TypeOf(err))
	})

	t.Run("Should unwrap to the sentinel", func(t *testing.T) {
		err := errors.NotFound("user", errors.ErrNoUser)
		require.True(t, errors.Is(err, errors.ErrNoUser))
	})

	t.Run("Should convert a panic value", func(t *testing.T) {
		err := errors.FromPanic("boom")
		assert.Equal(t, errors.ErrTypeInternal, err.Type)
		assert.Contains(t, err.Error(), "boom")
	})
}
