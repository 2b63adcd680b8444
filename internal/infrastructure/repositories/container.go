package repositories

import (
	"github.com/rios0rios0/guardrails/internal/domain/entities"
	domainRepos "github.com/rios0rios0/guardrails/internal/domain/repositories"
	gitRepo "github.com/rios0rios0/guardrails/internal/infrastructure/repositories/git"
	modRepo "github.com/rios0rios0/guardrails/internal/infrastructure/repositories/gomod"
	procRepo "github.com/rios0rios0/guardrails/internal/infrastructure/repositories/process"
	pyRepo "github.com/rios0rios0/guardrails/internal/infrastructure/repositories/pyproject"
	spellRepo "github.com/rios0rios0/guardrails/internal/infrastructure/repositories/spelling"
	tfRepo "github.com/rios0rios0/guardrails/internal/infrastructure/repositories/terraform"
	"go.uber.org/dig"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(procRepo.NewExecProcessRepository); err != nil {
		return err
	}

	// Register branch registry with all resolver factories
	if err := container.Provide(func(process domainRepos.ProcessRepository) *BranchRegistry {
		reg := NewBranchRegistry()
		reg.Register(entities.ResolverGit, func(dir string) domainRepos.BranchRepository {
			return gitRepo.NewCLIBranchRepository(process, dir)
		})
		reg.Register(entities.ResolverGoGit, gitRepo.NewGoGitBranchRepository)
		return reg
	}); err != nil {
		return err
	}

	if err := container.Provide(spellRepo.NewProcessSpellCheckerRepository); err != nil {
		return err
	}
	if err := container.Provide(pyRepo.NewTOMLPyProjectRepository); err != nil {
		return err
	}
	if err := container.Provide(modRepo.NewModfileGoModuleRepository); err != nil {
		return err
	}
	if err := container.Provide(tfRepo.NewHCLTerraformRepository); err != nil {
		return err
	}

	return nil
}
