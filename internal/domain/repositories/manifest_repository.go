package repositories

import "github.com/rios0rios0/guardrails/internal/domain/entities"

// Manifest loaders return *entities.ParseError when the document is syntactically invalid.

// PyProjectRepository loads pyproject.toml documents.
type PyProjectRepository interface {
	Load(path string) (*entities.PyProject, error)
}

// GoModuleRepository loads go.mod files.
type GoModuleRepository interface {
	Load(path string) (*entities.GoModule, error)
}

// TerraformRepository lists the module blocks of the Terraform files in a directory.
type TerraformRepository interface {
	LoadModules(dir string) ([]entities.TerraformModule, error)
}
