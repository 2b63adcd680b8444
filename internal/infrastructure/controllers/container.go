package controllers

import (
	"github.com/rios0rios0/guardrails/internal/domain/entities"
	"go.uber.org/dig"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	constructors := []any{
		NewBranchNameController,
		NewCommitMessageController,
		NewPoetryManifestController,
		NewUvManifestController,
		NewGoModuleController,
		NewTerraformSourcesController,
		NewControllers,
	}
	for _, constructor := range constructors {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}

	return nil
}

// NewControllers aggregates all controllers into a slice for the AppInternal.
func NewControllers(
	branchNameController *BranchNameController,
	commitMessageController *CommitMessageController,
	poetryController *PoetryManifestController,
	uvController *UvManifestController,
	goModuleController *GoModuleController,
	terraformController *TerraformSourcesController,
) *[]entities.Controller {
	return &[]entities.Controller{
		branchNameController,
		commitMessageController,
		poetryController,
		uvController,
		goModuleController,
		terraformController,
	}
}
