//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/guardrails/internal/domain/entities"
	"github.com/rios0rios0/guardrails/internal/domain/repositories"
)

// StubPyProjectRepository implements repositories.PyProjectRepository with a fixed answer.
type StubPyProjectRepository struct {
	Project     *entities.PyProject
	LoadErr     error
	LoadedPaths []string
}

var _ repositories.PyProjectRepository = (*StubPyProjectRepository)(nil)

func (s *StubPyProjectRepository) Load(path string) (*entities.PyProject, error) {
	s.LoadedPaths = append(s.LoadedPaths, path)
	return s.Project, s.LoadErr
}

// StubGoModuleRepository implements repositories.GoModuleRepository with a fixed answer.
type StubGoModuleRepository struct {
	Module      *entities.GoModule
	LoadErr     error
	LoadedPaths []string
}

var _ repositories.GoModuleRepository = (*StubGoModuleRepository)(nil)

func (s *StubGoModuleRepository) Load(path string) (*entities.GoModule, error) {
	s.LoadedPaths = append(s.LoadedPaths, path)
	return s.Module, s.LoadErr
}

// StubTerraformRepository implements repositories.TerraformRepository with a fixed answer.
type StubTerraformRepository struct {
	Modules    []entities.TerraformModule
	LoadErr    error
	LoadedDirs []string
}

var _ repositories.TerraformRepository = (*StubTerraformRepository)(nil)

func (s *StubTerraformRepository) LoadModules(dir string) ([]entities.TerraformModule, error) {
	s.LoadedDirs = append(s.LoadedDirs, dir)
	return s.Modules, s.LoadErr
}
