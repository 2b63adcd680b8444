//go:build unit

package spelling_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/guardrails/internal/domain/entities"
	"github.com/rios0rios0/guardrails/internal/infrastructure/repositories/spelling"
	doubles "github.com/rios0rios0/guardrails/test/infrastructure/repositorydoubles"
)

func TestProcessSpellCheckerRepositoryCheck(t *testing.T) {
	t.Parallel()

	t.Run("should append the message path to the configured arguments", func(t *testing.T) {
		t.Parallel()

		// given
		spy := &doubles.SpyProcessRepository{}
		repo := spelling.NewProcessSpellCheckerRepository(spy)
		checker := entities.SpellChecker{Command: "codespell", Args: []string{"--quiet-level", "2"}}

		// when
		report, err := repo.Check(context.Background(), checker, ".git/COMMIT_EDITMSG")

		// then
		require.NoError(t, err)
		assert.True(t, report.Clean)
		require.Len(t, spy.Calls, 1)
		assert.Equal(t, "codespell", spy.Calls[0].Name)
		assert.Equal(t, []string{"--quiet-level", "2", ".git/COMMIT_EDITMSG"}, spy.Calls[0].Args)
	})

	t.Run("should report a non-zero exit as spelling issues", func(t *testing.T) {
		t.Parallel()

		// given
		spy := &doubles.SpyProcessRepository{Result: entities.ProcessResult{
			ExitCode: 2,
			Stdout:   "error: `teh` should be `the`\n",
		}}
		repo := spelling.NewProcessSpellCheckerRepository(spy)

		// when
		report, err := repo.Check(context.Background(), entities.SpellChecker{Command: "typos"}, "msg")

		// then
		require.NoError(t, err)
		assert.False(t, report.Clean)
		assert.Equal(t, "error: `teh` should be `the`", report.Output)
	})

	t.Run("should fail when no command is configured", func(t *testing.T) {
		t.Parallel()

		// given
		spy := &doubles.SpyProcessRepository{}
		repo := spelling.NewProcessSpellCheckerRepository(spy)

		// when
		_, err := repo.Check(context.Background(), entities.SpellChecker{}, "msg")

		// then
		require.Error(t, err)
		assert.Empty(t, spy.Calls)
	})

	t.Run("should propagate a start failure", func(t *testing.T) {
		t.Parallel()

		// given
		spy := &doubles.SpyProcessRepository{RunErr: errors.New("failed to run typos: not found")}
		repo := spelling.NewProcessSpellCheckerRepository(spy)

		// when
		_, err := repo.Check(context.Background(), entities.SpellChecker{Command: "typos"}, "msg")

		// then
		require.ErrorContains(t, err, "failed to run typos")
	})
}
