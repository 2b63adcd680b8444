package commands

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/guardrails/internal/domain/entities"
	"github.com/rios0rios0/guardrails/internal/domain/repositories"
)

// ManifestOptions holds runtime options for the manifest checks.
type ManifestOptions struct {
	Dir string // directory holding the manifest, "." when empty
}

func (o ManifestOptions) path(file string) string {
	if o.Dir == "" {
		return file
	}
	return filepath.Join(o.Dir, file)
}

// CheckPoetryManifest is the interface for the poetry pyproject.toml check.
type CheckPoetryManifest interface {
	Execute(ctx context.Context, opts ManifestOptions) error
}

// CheckUvManifest is the interface for the uv pyproject.toml check.
type CheckUvManifest interface {
	Execute(ctx context.Context, opts ManifestOptions) error
}

// CheckGoModule is the interface for the go.mod check.
type CheckGoModule interface {
	Execute(ctx context.Context, opts ManifestOptions) error
}

// CheckTerraformSources is the interface for the Terraform module source check.
type CheckTerraformSources interface {
	Execute(ctx context.Context, opts ManifestOptions) error
}

// CheckPoetryManifestCommand rejects path dependencies declared for poetry.
type CheckPoetryManifestCommand struct {
	repository repositories.PyProjectRepository
}

// NewCheckPoetryManifestCommand creates a new CheckPoetryManifestCommand.
func NewCheckPoetryManifestCommand(repository repositories.PyProjectRepository) *CheckPoetryManifestCommand {
	return &CheckPoetryManifestCommand{repository: repository}
}

// Execute checks [tool.poetry.dependencies], the poetry dependency groups and
// [project].dependencies.
func (it *CheckPoetryManifestCommand) Execute(_ context.Context, opts ManifestOptions) error {
	project, err := it.repository.Load(opts.path(entities.PyProjectFile))
	if err != nil {
		return classifyManifestError(entities.PyProjectFile, err)
	}
	deps, err := project.PoetryPathDependencies()
	if err != nil {
		return classifyManifestError(entities.PyProjectFile, err)
	}
	return entities.NewPathDependencyError(deps)
}

// CheckUvManifestCommand rejects path sources declared for uv.
type CheckUvManifestCommand struct {
	repository repositories.PyProjectRepository
}

// NewCheckUvManifestCommand creates a new CheckUvManifestCommand.
func NewCheckUvManifestCommand(repository repositories.PyProjectRepository) *CheckUvManifestCommand {
	return &CheckUvManifestCommand{repository: repository}
}

// Execute checks [tool.uv.sources].
func (it *CheckUvManifestCommand) Execute(_ context.Context, opts ManifestOptions) error {
	project, err := it.repository.Load(opts.path(entities.PyProjectFile))
	if err != nil {
		return classifyManifestError(entities.PyProjectFile, err)
	}
	deps, err := project.UvPathDependencies()
	if err != nil {
		return classifyManifestError(entities.PyProjectFile, err)
	}
	return entities.NewPathDependencyError(deps)
}

// CheckGoModuleCommand rejects go.mod replace directives pointing at local directories.
type CheckGoModuleCommand struct {
	repository repositories.GoModuleRepository
}

// NewCheckGoModuleCommand creates a new CheckGoModuleCommand.
func NewCheckGoModuleCommand(repository repositories.GoModuleRepository) *CheckGoModuleCommand {
	return &CheckGoModuleCommand{repository: repository}
}

// Execute checks the replace directives of go.mod.
func (it *CheckGoModuleCommand) Execute(_ context.Context, opts ManifestOptions) error {
	module, err := it.repository.Load(opts.path(entities.GoModFile))
	if err != nil {
		return classifyManifestError(entities.GoModFile, err)
	}
	return entities.NewPathDependencyError(module.LocalReplacements())
}

// CheckTerraformSourcesCommand rejects Terraform modules sourced from outside the
// working directory.
type CheckTerraformSourcesCommand struct {
	repository repositories.TerraformRepository
}

// NewCheckTerraformSourcesCommand creates a new CheckTerraformSourcesCommand.
func NewCheckTerraformSourcesCommand(repository repositories.TerraformRepository) *CheckTerraformSourcesCommand {
	return &CheckTerraformSourcesCommand{repository: repository}
}

// Execute checks the module blocks of every *.tf file in the directory.
func (it *CheckTerraformSourcesCommand) Execute(_ context.Context, opts ManifestOptions) error {
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	modules, err := it.repository.LoadModules(dir)
	if err != nil {
		return classifyManifestError("*"+entities.TerraformExtension, err)
	}
	logger.Debugf("Found %d Terraform module blocks in %s", len(modules), dir)
	return entities.NewPathDependencyError(entities.EscapingTerraformModules(modules))
}

// classifyManifestError separates syntax errors from any other failure to load a manifest.
func classifyManifestError(file string, err error) error {
	var parseErr *entities.ParseError
	if errors.As(err, &parseErr) {
		return entities.NewMalformedError(parseErr.Error(), err)
	}
	return entities.NewUnexpectedError(fmt.Sprintf("%s: %v", file, err), err)
}
