package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError(t *testing.T) {
	t.Run("error string includes type and message", func(t *testing.T) {
		err := NewAppError(TypeInput, "bad input", nil)
		assert.Equal(t, "INPUT: bad input", err.Error())
	})

	t.Run("wrapped error appears in the string and unwraps", func(t *testing.T) {
		cause := errors.New("boom")
		err := NewAppError(TypeAI, "generation failed", cause)

		assert.Contains(t, err.Error(), "boom")
		assert.ErrorIs(t, err, cause)
	})

	t.Run("with error keeps the sentinel identity", func(t *testing.T) {
		cause := errors.New("no display")
		err := ErrClipboardUnavailable.WithError(cause)

		assert.ErrorIs(t, err, cause)
		assert.ErrorIs(t, err, ErrClipboardUnavailable)
		assert.Equal(t, ErrClipboardUnavailable.Message, err.Message)
		assert.Equal(t, ErrClipboardUnavailable.Suggestion, err.Suggestion)
		// el sentinel original no se modifica
		assert.Nil(t, ErrClipboardUnavailable.Err)
	})

	t.Run("different sentinels never match each other", func(t *testing.T) {
		err := ErrGitHubTokenInvalid.WithError(errors.New("bad credentials"))

		assert.ErrorIs(t, err, ErrGitHubTokenInvalid)
		assert.NotErrorIs(t, err, ErrGitHubRateLimit)
		assert.NotErrorIs(t, err, ErrTokenMissing)
	})

	t.Run("with context does not mutate the original", func(t *testing.T) {
		err := ErrEmptyEmail.WithContext("source", "stdin")

		assert.Equal(t, "stdin", err.Context["source"])
		assert.Nil(t, ErrEmptyEmail.Context)
	})

	t.Run("wrapping through fmt keeps errors.As working", func(t *testing.T) {
		wrapped := fmt.Errorf("outer: %w", ErrNoActionItems)

		var appErr *AppError
		assert.ErrorAs(t, wrapped, &appErr)
		assert.Equal(t, TypeAI, appErr.Type)
	})
}

func TestSentinelSuggestions(t *testing.T) {
	// todos los errores de usuario traen una sugerencia accionable
	sentinels := []*AppError{
		ErrEmptyEmail,
		ErrMultipleBodySources,
		ErrAPIKeyMissing,
		ErrTokenMissing,
		ErrNoActionItems,
		ErrGitHubTokenInvalid,
		ErrClipboardUnavailable,
	}

	for _, s := range sentinels {
		assert.NotEmpty(t, s.Suggestion, "sentinel %q", s.Message)
	}
}
