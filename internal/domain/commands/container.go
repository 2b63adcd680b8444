package commands

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register command constructors
	constructors := []any{
		NewCheckBranchNameCommand,
		NewCheckCommitMessageCommand,
		NewCheckPoetryManifestCommand,
		NewCheckUvManifestCommand,
		NewCheckGoModuleCommand,
		NewCheckTerraformSourcesCommand,
	}
	for _, constructor := range constructors {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}

	// Bind interfaces to implementations
	bindings := []any{
		func(impl *CheckBranchNameCommand) CheckBranchName { return impl },
		func(impl *CheckCommitMessageCommand) CheckCommitMessage { return impl },
		func(impl *CheckPoetryManifestCommand) CheckPoetryManifest { return impl },
		func(impl *CheckUvManifestCommand) CheckUvManifest { return impl },
		func(impl *CheckGoModuleCommand) CheckGoModule { return impl },
		func(impl *CheckTerraformSourcesCommand) CheckTerraformSources { return impl },
	}
	for _, binding := range bindings {
		if err := container.Provide(binding); err != nil {
			return err
		}
	}

	return nil
}
