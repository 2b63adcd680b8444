package gomod

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/mod/modfile"

	"github.com/rios0rios0/guardrails/internal/domain/entities"
	"github.com/rios0rios0/guardrails/internal/domain/repositories"
)

// ModfileGoModuleRepository implements repositories.GoModuleRepository with x/mod/modfile.
type ModfileGoModuleRepository struct{}

// NewModfileGoModuleRepository creates a new ModfileGoModuleRepository.
func NewModfileGoModuleRepository() repositories.GoModuleRepository {
	return &ModfileGoModuleRepository{}
}

// Load parses the go.mod file at path.
func (it *ModfileGoModuleRepository) Load(path string) (*entities.GoModule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	file, err := modfile.Parse(filepath.Base(path), data, nil)
	if err != nil {
		return nil, &entities.ParseError{File: filepath.Base(path), Err: err}
	}

	module := &entities.GoModule{}
	if file.Module != nil {
		module.Path = file.Module.Mod.Path
	}

	for _, replace := range file.Replace {
		line := 0
		if replace.Syntax != nil {
			line = replace.Syntax.Start.Line
		}
		module.Replacements = append(module.Replacements, entities.ModuleReplacement{
			OldPath:    replace.Old.Path,
			OldVersion: replace.Old.Version,
			NewPath:    replace.New.Path,
			NewVersion: replace.New.Version,
			Local:      replace.New.Version == "" && modfile.IsDirectoryPath(replace.New.Path),
			Line:       line,
		})
	}

	return module, nil
}
