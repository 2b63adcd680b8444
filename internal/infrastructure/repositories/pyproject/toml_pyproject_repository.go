package pyproject

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/rios0rios0/guardrails/internal/domain/entities"
	"github.com/rios0rios0/guardrails/internal/domain/repositories"
)

// document mirrors the pyproject.toml sections read by the checks. Values stay untyped
// so that a check only fails on the sections it actually inspects.
type document struct {
	Project struct {
		Dependencies any `toml:"dependencies"`
	} `toml:"project"`
	Tool struct {
		Poetry struct {
			Dependencies map[string]any `toml:"dependencies"`
			Group        map[string]any `toml:"group"`
		} `toml:"poetry"`
		UV struct {
			Sources map[string]any `toml:"sources"`
		} `toml:"uv"`
	} `toml:"tool"`
}

// TOMLPyProjectRepository implements repositories.PyProjectRepository with BurntSushi/toml.
type TOMLPyProjectRepository struct{}

// NewTOMLPyProjectRepository creates a new TOMLPyProjectRepository.
func NewTOMLPyProjectRepository() repositories.PyProjectRepository {
	return &TOMLPyProjectRepository{}
}

// Load reads and decodes the document at path. Syntax errors are returned as
// *entities.ParseError carrying the line and column reported by the decoder.
func (it *TOMLPyProjectRepository) Load(path string) (*entities.PyProject, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var doc document
	if _, decodeErr := toml.Decode(string(data), &doc); decodeErr != nil {
		var parseErr toml.ParseError
		if errors.As(decodeErr, &parseErr) {
			return nil, &entities.ParseError{File: filepath.Base(path), Err: decodeErr}
		}
		return nil, fmt.Errorf("failed to decode %s: %w", path, decodeErr)
	}

	return &entities.PyProject{
		ProjectDependencies: doc.Project.Dependencies,
		PoetryDependencies:  doc.Tool.Poetry.Dependencies,
		PoetryGroups:        doc.Tool.Poetry.Group,
		UvSources:           doc.Tool.UV.Sources,
	}, nil
}
