//go:build unit

package git_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/guardrails/internal/domain/entities"
	"github.com/rios0rios0/guardrails/internal/infrastructure/repositories/git"
	doubles "github.com/rios0rios0/guardrails/test/infrastructure/repositorydoubles"
)

func TestCLIBranchRepositoryCurrentBranch(t *testing.T) {
	t.Parallel()

	t.Run("should run git rev-parse in the working copy", func(t *testing.T) {
		t.Parallel()

		// given
		spy := &doubles.SpyProcessRepository{Result: entities.ProcessResult{Stdout: "feat/login\n"}}
		repo := git.NewCLIBranchRepository(spy, "/work/app")

		// when
		branch, err := repo.CurrentBranch(context.Background())

		// then
		require.NoError(t, err)
		assert.Equal(t, "feat/login", branch)
		require.Len(t, spy.Calls, 1)
		assert.Equal(t, "/work/app", spy.Calls[0].Dir)
		assert.Equal(t, "git", spy.Calls[0].Name)
		assert.Equal(t, []string{"rev-parse", "--abbrev-ref", "HEAD"}, spy.Calls[0].Args)
		assert.Equal(t, "git", repo.Name())
	})

	t.Run("should return git stderr on failure", func(t *testing.T) {
		t.Parallel()

		// given
		spy := &doubles.SpyProcessRepository{Result: entities.ProcessResult{
			ExitCode: 128,
			Stderr:   "fatal: not a git repository (or any of the parent directories): .git\n",
		}}
		repo := git.NewCLIBranchRepository(spy, ".")

		// when
		_, err := repo.CurrentBranch(context.Background())

		// then
		require.EqualError(t, err, "fatal: not a git repository (or any of the parent directories): .git")
	})

	t.Run("should describe the exit status when stderr is empty", func(t *testing.T) {
		t.Parallel()

		// given
		spy := &doubles.SpyProcessRepository{Result: entities.ProcessResult{ExitCode: 1}}
		repo := git.NewCLIBranchRepository(spy, ".")

		// when
		_, err := repo.CurrentBranch(context.Background())

		// then
		require.EqualError(t, err, "git rev-parse exited with status 1")
	})

	t.Run("should propagate a start failure", func(t *testing.T) {
		t.Parallel()

		// given
		spy := &doubles.SpyProcessRepository{RunErr: errors.New("failed to run git: executable file not found")}
		repo := git.NewCLIBranchRepository(spy, ".")

		// when
		_, err := repo.CurrentBranch(context.Background())

		// then
		require.ErrorContains(t, err, "executable file not found")
	})
}
