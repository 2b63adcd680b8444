package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/guardrails/internal/domain/commands"
	"github.com/rios0rios0/guardrails/internal/domain/entities"
)

// manifestController is shared by the controllers checking a manifest in a directory.
type manifestController struct {
	bind    entities.ControllerBind
	subject string
	execute func(ctx context.Context, opts commands.ManifestOptions) error
}

func (it *manifestController) GetBind() entities.ControllerBind { return it.bind }

func (it *manifestController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("dir", "", "Directory holding the manifest (default: from settings, then .)")
}

func (it *manifestController) Execute(cmd *cobra.Command, _ []string) error {
	return runCheck(cmd, it.subject, func() error {
		settings, err := loadSettings(cmd)
		if err != nil {
			return err
		}

		return it.execute(context.Background(), commands.ManifestOptions{
			Dir: stringOption(cmd, "dir", settings.Manifests.Dir),
		})
	})
}

// PoetryManifestController rejects poetry path dependencies in pyproject.toml.
type PoetryManifestController struct{ manifestController }

// NewPoetryManifestController creates a new PoetryManifestController.
func NewPoetryManifestController(command commands.CheckPoetryManifest) *PoetryManifestController {
	return &PoetryManifestController{manifestController{
		bind: entities.ControllerBind{
			Use:        "poetry",
			Executable: "check-poetry-toml",
			Short:      "Reject path dependencies in the poetry sections of pyproject.toml",
			Long: `Reject [tool.poetry.dependencies] (and dependency group) entries declaring a
local "path", and [project].dependencies specifiers using a file:// URL.`,
			Args: cobra.ArbitraryArgs,
		},
		subject: entities.PyProjectFile,
		execute: command.Execute,
	}}
}

// UvManifestController rejects uv path sources in pyproject.toml.
type UvManifestController struct{ manifestController }

// NewUvManifestController creates a new UvManifestController.
func NewUvManifestController(command commands.CheckUvManifest) *UvManifestController {
	return &UvManifestController{manifestController{
		bind: entities.ControllerBind{
			Use:        "uv",
			Executable: "check-uv-toml",
			Short:      "Reject path sources in the uv section of pyproject.toml",
			Long:       `Reject [tool.uv.sources] entries declaring a local "path".`,
			Args:       cobra.ArbitraryArgs,
		},
		subject: entities.PyProjectFile,
		execute: command.Execute,
	}}
}

// GoModuleController rejects local replace directives in go.mod.
type GoModuleController struct{ manifestController }

// NewGoModuleController creates a new GoModuleController.
func NewGoModuleController(command commands.CheckGoModule) *GoModuleController {
	return &GoModuleController{manifestController{
		bind: entities.ControllerBind{
			Use:        "gomod",
			Executable: "check-go-mod",
			Short:      "Reject replace directives pointing at local directories in go.mod",
			Long:       `Reject go.mod replace directives whose target is a filesystem path.`,
			Args:       cobra.ArbitraryArgs,
		},
		subject: entities.GoModFile,
		execute: command.Execute,
	}}
}

// TerraformSourcesController rejects Terraform modules sourced from outside the directory.
type TerraformSourcesController struct{ manifestController }

// NewTerraformSourcesController creates a new TerraformSourcesController.
func NewTerraformSourcesController(command commands.CheckTerraformSources) *TerraformSourcesController {
	return &TerraformSourcesController{manifestController{
		bind: entities.ControllerBind{
			Use:        "terraform",
			Executable: "check-terraform-source",
			Short:      "Reject Terraform modules sourced from outside the working directory",
			Long: `Reject module blocks whose source is an absolute path or a relative path
leaving the directory. Registry, git and ./ sources inside the directory pass.`,
			Args: cobra.ArbitraryArgs,
		},
		subject: "terraform",
		execute: command.Execute,
	}}
}
