package ineed_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/ineed"
)

func TestValidationError(t *testing.T) {
	t.Parallel()

	t.Run("matches sentinel through wrapping", func(t *testing.T) {
		err := fmt.Errorf("create user: %w", ineed.NonEmptyStrings(ineed.Props("email", "")))
		assert.True(t, errors.Is(err, ineed.ErrValidation))
		assert.True(t, ineed.IsValidationError(err))

		verr, ok := ineed.AsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, "email", verr.Property)
		assert.Equal(t, ineed.CodeNonEmptyString, verr.Code)
	})

	t.Run("ignores other errors", func(t *testing.T) {
		err := errors.New("boom")
		assert.False(t, errors.Is(err, ineed.ErrValidation))
		assert.False(t, ineed.IsValidationError(err))
		_, ok := ineed.AsValidationError(nil)
		assert.False(t, ok)
	})

	t.Run("each failure is a fresh value", func(t *testing.T) {
		props := ineed.Props("a", 1)
		err1, _ := ineed.AsValidationError(ineed.Arrays(props))
		err2, _ := ineed.AsValidationError(ineed.Arrays(props))
		require.NotNil(t, err1)
		require.NotNil(t, err2)
		assert.NotSame(t, err1, err2)
	})
}
