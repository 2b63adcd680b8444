//go:build unit

package entities_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/guardrails/internal/domain/entities"
)

func TestCheckError(t *testing.T) {
	t.Parallel()

	t.Run("should be extracted from a wrapped error", func(t *testing.T) {
		t.Parallel()

		// given
		cause := errors.New("exit status 128")
		err := fmt.Errorf("context: %w", entities.NewResolutionError("Failed to get current branch", cause))

		// when
		var checkErr *entities.CheckError
		found := errors.As(err, &checkErr)

		// then
		require.True(t, found)
		assert.Equal(t, entities.KindResolution, checkErr.Kind)
		assert.Equal(t, "Failed to get current branch", checkErr.Error())
		assert.ErrorIs(t, err, cause)
	})

	t.Run("should fall back to the cause when there is no message", func(t *testing.T) {
		t.Parallel()

		// given
		err := &entities.CheckError{Kind: entities.KindUnexpected, Err: errors.New("boom")}

		// when
		text := err.Error()

		// then
		assert.Equal(t, "boom", text)
	})

	t.Run("should name every kind", func(t *testing.T) {
		t.Parallel()

		// given / when / then
		assert.Equal(t, "resolution", entities.KindResolution.String())
		assert.Equal(t, "rejection", entities.KindRejection.String())
		assert.Equal(t, "malformed", entities.KindMalformed.String())
		assert.Equal(t, "unexpected", entities.KindUnexpected.String())
	})
}

func TestParseError(t *testing.T) {
	t.Parallel()

	t.Run("should prefix the file name", func(t *testing.T) {
		t.Parallel()

		// given
		err := &entities.ParseError{File: "pyproject.toml", Err: errors.New("line 3: expected '='")}

		// when
		text := err.Error()

		// then
		assert.Equal(t, "pyproject.toml: line 3: expected '='", text)
	})
}

func TestProcessResult(t *testing.T) {
	t.Parallel()

	t.Run("should combine non-empty streams", func(t *testing.T) {
		t.Parallel()

		// given
		result := entities.ProcessResult{ExitCode: 2, Stdout: "error: `reponse` should be `response`\n", Stderr: "  "}

		// when
		output := result.CombinedOutput()

		// then
		assert.False(t, result.Succeeded())
		assert.Equal(t, "error: `reponse` should be `response`", output)
	})
}
