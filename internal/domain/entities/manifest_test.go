//go:build unit

package entities_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/guardrails/internal/domain/entities"
)

func TestPyProjectPoetryPathDependencies(t *testing.T) {
	t.Parallel()

	t.Run("should report tables with a path and file:// specifiers", func(t *testing.T) {
		t.Parallel()

		// given
		project := &entities.PyProject{
			ProjectDependencies: []any{"requests>=2", "shared @ file:///home/me/shared"},
			PoetryDependencies: map[string]any{
				"python": "^3.12",
				"core":   map[string]any{"path": "../core"},
				"utils":  map[string]any{"version": "1.0"},
			},
			PoetryGroups: map[string]any{
				"dev": map[string]any{
					"dependencies": map[string]any{"fixtures": map[string]any{"path": "../fixtures"}},
				},
			},
		}

		// when
		deps, err := project.PoetryPathDependencies()

		// then
		require.NoError(t, err)
		require.Len(t, deps, 3)
		assert.Equal(t, "core", deps[0].Name)
		assert.Equal(t, "tool.poetry.dependencies", deps[0].Section)
		assert.Equal(t, "fixtures", deps[1].Name)
		assert.Equal(t, "tool.poetry.group.dev.dependencies", deps[1].Section)
		assert.Equal(t, "shared @ file:///home/me/shared", deps[2].Name)
		assert.Equal(t, "project", deps[2].Section)
	})

	t.Run("should report nothing for an empty document", func(t *testing.T) {
		t.Parallel()

		// given
		project := &entities.PyProject{}

		// when
		deps, err := project.PoetryPathDependencies()

		// then
		require.NoError(t, err)
		assert.Empty(t, deps)
	})

	t.Run("should ignore malformed uv sources", func(t *testing.T) {
		t.Parallel()

		// given
		project := &entities.PyProject{
			PoetryDependencies: map[string]any{"python": "^3.12"},
			UvSources:          map[string]any{"core": time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		}

		// when
		deps, err := project.PoetryPathDependencies()

		// then
		require.NoError(t, err)
		assert.Empty(t, deps)
	})

	t.Run("should return a parse error for a non-string project dependency", func(t *testing.T) {
		t.Parallel()

		// given
		project := &entities.PyProject{ProjectDependencies: []any{"requests>=2", int64(3)}}

		// when
		_, err := project.PoetryPathDependencies()

		// then
		var parseErr *entities.ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Equal(t, "pyproject.toml", parseErr.File)
		assert.Contains(t, err.Error(), "[project]")
	})
}

func TestPyProjectUvPathDependencies(t *testing.T) {
	t.Parallel()

	t.Run("should report sources with a path", func(t *testing.T) {
		t.Parallel()

		// given
		project := &entities.PyProject{
			UvSources: map[string]any{
				"core":  map[string]any{"path": "../core"},
				"torch": map[string]any{"index": "pytorch"},
			},
			PoetryDependencies: map[string]any{
				"ignored": map[string]any{"path": "../ignored"},
			},
		}

		// when
		deps, err := project.UvPathDependencies()

		// then
		require.NoError(t, err)
		require.Len(t, deps, 1)
		assert.Equal(t, "core", deps[0].Name)
		assert.Equal(t, "tool.uv.sources", deps[0].Section)
	})

	t.Run("should ignore malformed project and poetry sections", func(t *testing.T) {
		t.Parallel()

		// given
		project := &entities.PyProject{
			ProjectDependencies: []any{int64(1)},
			PoetryDependencies:  map[string]any{"odd": time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
			UvSources:           map[string]any{"core": map[string]any{"git": "https://example.com/core"}},
		}

		// when
		deps, err := project.UvPathDependencies()

		// then
		require.NoError(t, err)
		assert.Empty(t, deps)
	})

	t.Run("should return a parse error for a source of an unsupported type", func(t *testing.T) {
		t.Parallel()

		// given
		project := &entities.PyProject{
			UvSources: map[string]any{"core": time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		}

		// when
		_, err := project.UvPathDependencies()

		// then
		var parseErr *entities.ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Contains(t, err.Error(), "[tool.uv.sources]")
	})
}

func TestGoModuleLocalReplacements(t *testing.T) {
	t.Parallel()

	t.Run("should report only local replacements", func(t *testing.T) {
		t.Parallel()

		// given
		module := &entities.GoModule{
			Path: "example.com/app",
			Replacements: []entities.ModuleReplacement{
				{OldPath: "example.com/lib", NewPath: "../lib", Local: true},
				{OldPath: "example.com/fork", NewPath: "example.com/fork2", NewVersion: "v1.2.0"},
			},
		}

		// when
		deps := module.LocalReplacements()

		// then
		require.Len(t, deps, 1)
		assert.Equal(t, "example.com/lib => ../lib", deps[0].Name)
		assert.Equal(t, "replace", deps[0].Section)
		assert.Equal(t, "go.mod", deps[0].File)
	})
}

func TestTerraformModuleEscapesDir(t *testing.T) {
	t.Parallel()

	tests := []struct {
		source string
		want   bool
	}{
		{source: "./modules/network", want: false},
		{source: "./modules/../shared", want: false},
		{source: "../shared/network", want: true},
		{source: "./../shared", want: true},
		{source: "..", want: true},
		{source: ".", want: false},
		{source: "/opt/terraform/modules/network", want: true},
		{source: "terraform-aws-modules/vpc/aws", want: false},
		{source: "git::https://example.com/network.git?ref=v1.0.0", want: false},
	}

	for _, tt := range tests {
		t.Run("should classify "+tt.source, func(t *testing.T) {
			t.Parallel()

			// given
			module := entities.TerraformModule{Name: "network", Source: tt.source, File: "main.tf"}

			// when
			escapes := module.EscapesDir()

			// then
			assert.Equal(t, tt.want, escapes)
		})
	}
}

func TestTerraformModuleIsLocal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		source string
		want   bool
	}{
		{source: ".", want: true},
		{source: "..", want: true},
		{source: "./modules/network", want: true},
		{source: "../shared", want: true},
		{source: "/opt/modules/network", want: true},
		{source: "..shared", want: false},
		{source: "terraform-aws-modules/vpc/aws", want: false},
	}

	for _, tt := range tests {
		t.Run("should classify "+tt.source, func(t *testing.T) {
			t.Parallel()

			// given
			module := entities.TerraformModule{Name: "network", Source: tt.source, File: "main.tf"}

			// when
			local := module.IsLocal()

			// then
			assert.Equal(t, tt.want, local)
		})
	}
}
