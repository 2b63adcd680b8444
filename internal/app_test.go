//go:build unit

package internal_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/guardrails/internal"
)

func emptySettings(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), ".guardrails.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{}\n"), 0o600))
	return path
}

func TestInjectAppInternal(t *testing.T) {
	t.Parallel()

	t.Run("should wire every check", func(t *testing.T) {
		t.Parallel()

		// given / when
		app := internal.InjectAppInternal()

		// then
		require.NotNil(t, app)
		assert.Len(t, app.GetControllers(), 6)
	})
}

func TestBuildRootCommand(t *testing.T) {
	t.Parallel()

	t.Run("should register one subcommand per check", func(t *testing.T) {
		t.Parallel()

		// given
		app := internal.InjectAppInternal()

		// when
		cmd := app.BuildRootCommand()

		// then
		names := make([]string, 0)
		for _, sub := range cmd.Commands() {
			names = append(names, sub.Name())
		}
		assert.ElementsMatch(t, []string{"branch", "commit-msg", "poetry", "uv", "gomod", "terraform"}, names)
	})
}

func TestBuildStandaloneCommand(t *testing.T) {
	t.Parallel()

	t.Run("should keep the positional arguments in the usage line", func(t *testing.T) {
		t.Parallel()

		// given
		app := internal.InjectAppInternal()

		// when
		cmd, err := app.BuildStandaloneCommand("check-commit-msg")

		// then
		require.NoError(t, err)
		assert.Equal(t, "check-commit-msg <commit-msg-file>", cmd.Use)
	})

	t.Run("should fail for an unknown executable", func(t *testing.T) {
		t.Parallel()

		// given
		app := internal.InjectAppInternal()

		// when
		_, err := app.BuildStandaloneCommand("check-everything")

		// then
		require.EqualError(t, err, `unknown check executable: "check-everything"`)
	})
}

func TestExecute(t *testing.T) {
	t.Parallel()

	t.Run("should exit 0 for a valid branch name", func(t *testing.T) {
		t.Parallel()

		// given
		cmd, err := internal.InjectAppInternal().BuildStandaloneCommand("check-branch-name")
		require.NoError(t, err)
		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		cmd.SetOut(stdout)

		// when
		code := internal.Execute(cmd, []string{"--config", emptySettings(t), "--branch", "feat/add-login"}, stderr)

		// then
		assert.Equal(t, 0, code)
		assert.Empty(t, stdout.String())
		assert.Empty(t, stderr.String())
	})

	t.Run("should ignore unknown flags passed to the branch check", func(t *testing.T) {
		t.Parallel()

		// given
		cmd, err := internal.InjectAppInternal().BuildStandaloneCommand("check-branch-name")
		require.NoError(t, err)
		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		cmd.SetOut(stdout)
		args := []string{"--config", emptySettings(t), "--branch", "feat/x", "--some-hook-flag", "a.py"}

		// when
		code := internal.Execute(cmd, args, stderr)

		// then
		assert.Equal(t, 0, code)
		assert.Empty(t, stderr.String())
	})

	t.Run("should still reject unknown flags on the manifest checks", func(t *testing.T) {
		t.Parallel()

		// given
		cmd, err := internal.InjectAppInternal().BuildStandaloneCommand("check-go-mod")
		require.NoError(t, err)
		stderr := &bytes.Buffer{}
		cmd.SetOut(&bytes.Buffer{})

		// when
		code := internal.Execute(cmd, []string{"--some-hook-flag"}, stderr)

		// then
		assert.Equal(t, 1, code)
		assert.Contains(t, stderr.String(), "unknown flag: --some-hook-flag")
	})

	t.Run("should exit 1 and print the diagnostic for an invalid branch name", func(t *testing.T) {
		t.Parallel()

		// given
		cmd := internal.InjectAppInternal().BuildRootCommand()
		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		cmd.SetOut(stdout)

		// when
		code := internal.Execute(cmd, []string{"branch", "--config", emptySettings(t), "--branch", "wip"}, stderr)

		// then
		assert.Equal(t, 1, code)
		assert.Contains(t, stdout.String(), "Invalid branch name: 'wip'")
		assert.Empty(t, stderr.String())
	})

	t.Run("should exit 1 and report usage errors on stderr", func(t *testing.T) {
		t.Parallel()

		// given
		cmd, err := internal.InjectAppInternal().BuildStandaloneCommand("check-commit-msg")
		require.NoError(t, err)
		stderr := &bytes.Buffer{}
		cmd.SetOut(&bytes.Buffer{})

		// when
		code := internal.Execute(cmd, nil, stderr)

		// then
		assert.Equal(t, 1, code)
		assert.Contains(t, stderr.String(), "Error:")
	})
}
