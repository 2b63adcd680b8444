package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/guardrails/internal/domain/entities"
	infraRepos "github.com/rios0rios0/guardrails/internal/infrastructure/repositories"
)

// CheckBranchName is the interface for the branch name check.
type CheckBranchName interface {
	Execute(ctx context.Context, opts BranchNameOptions) error
}

// BranchNameOptions holds runtime options for the branch name check.
type BranchNameOptions struct {
	Branch   string // empty: resolve the current branch
	Pattern  string // empty: entities.DefaultBranchPattern
	Resolver string // empty: entities.ResolverGit
	Dir      string // working copy used to resolve the current branch
}

// CheckBranchNameCommand validates a branch name against a naming pattern.
type CheckBranchNameCommand struct {
	branchRegistry *infraRepos.BranchRegistry
}

// NewCheckBranchNameCommand creates a new CheckBranchNameCommand.
func NewCheckBranchNameCommand(branchRegistry *infraRepos.BranchRegistry) *CheckBranchNameCommand {
	return &CheckBranchNameCommand{branchRegistry: branchRegistry}
}

// Execute returns nil when the branch name matches the pattern, otherwise an
// *entities.CheckError.
func (it *CheckBranchNameCommand) Execute(ctx context.Context, opts BranchNameOptions) error {
	expr := opts.Pattern
	if expr == "" {
		expr = entities.DefaultBranchPattern
	}
	pattern, err := entities.NewBranchPattern(expr)
	if err != nil {
		return err
	}

	name := opts.Branch
	if name == "" {
		name, err = it.currentBranch(ctx, opts)
		if err != nil {
			return err
		}
	}

	logger.Debugf("Validating branch %q against pattern %s", name, pattern)
	return entities.ValidateBranchName(name, pattern)
}

func (it *CheckBranchNameCommand) currentBranch(ctx context.Context, opts BranchNameOptions) (string, error) {
	resolverName := opts.Resolver
	if resolverName == "" {
		resolverName = entities.ResolverGit
	}
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}

	resolver, err := it.branchRegistry.Get(resolverName, dir)
	if err != nil {
		return "", entities.NewResolutionError(fmt.Sprintf("Failed to get current branch: %v", err), err)
	}

	name, err := resolver.CurrentBranch(ctx)
	if err != nil {
		return "", entities.NewResolutionError(fmt.Sprintf("Failed to get current branch: %v", err), err)
	}

	logger.Debugf("Resolved current branch %q with %s", name, resolver.Name())
	return name, nil
}
