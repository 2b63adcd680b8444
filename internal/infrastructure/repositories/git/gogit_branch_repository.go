package git

import (
	"context"
	"fmt"

	gogit "github.com/go-git/go-git/v5"

	"github.com/rios0rios0/guardrails/internal/domain/entities"
	"github.com/rios0rios0/guardrails/internal/domain/repositories"
)

// GoGitBranchRepository resolves the current branch by reading the repository with
// go-git, without spawning the git CLI.
type GoGitBranchRepository struct {
	dir string
}

// NewGoGitBranchRepository creates a resolver for the repository containing dir.
func NewGoGitBranchRepository(dir string) repositories.BranchRepository {
	return &GoGitBranchRepository{dir: dir}
}

func (it *GoGitBranchRepository) Name() string { return entities.ResolverGoGit }

// CurrentBranch returns the short name of HEAD, or "HEAD" when it is detached.
func (it *GoGitBranchRepository) CurrentBranch(_ context.Context) (string, error) {
	//nolint:exhaustruct // only .git discovery is needed
	repo, err := gogit.PlainOpenWithOptions(it.dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", fmt.Errorf("failed to open repository at %q: %w", it.dir, err)
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("failed to read HEAD: %w", err)
	}

	if !head.Name().IsBranch() {
		return entities.DetachedHead, nil
	}
	return head.Name().Short(), nil
}
