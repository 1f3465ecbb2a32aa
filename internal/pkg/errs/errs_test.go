package errs_test

import (
	"errors"
	"testing"

	"evaluation/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("without_cause", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("award", "abc-123")

		assert.Equal(t, "award", err.ParamName)
		assert.Equal(t, "abc-123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: abc-123", err.Error())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("with_cause", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := errs.NewObjectNotFoundErrorWithCause("award", "abc-123", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: award, ID is: abc-123 (cause: connection refused)",
			err.Error())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("without_cause", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("currency")

		assert.Equal(t, "value is invalid: currency", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("with_cause", func(t *testing.T) {
		cause := errors.New("unknown code")
		err := errs.NewValueIsInvalidErrorWithCause("currency", cause)

		assert.Equal(t, "value is invalid: currency (cause: unknown code)", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("formats_bounds", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("amount", "-5", "0", "100")

		assert.Equal(t, "value is invalid: -5 is amount, min value is 0, max value is 100", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("sanitizes_newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)

		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("owner")

	assert.Equal(t, "value is required: owner", err.Error())
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	cause := errors.New("missing field")
	withCause := errs.NewValueIsRequiredErrorWithCause("owner", cause)
	assert.Equal(t, "value is required: owner (cause: missing field)", withCause.Error())
}

func TestSentinelErrors(t *testing.T) {
	assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
	assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
	assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
	assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
}
