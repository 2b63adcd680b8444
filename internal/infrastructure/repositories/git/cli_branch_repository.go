package git

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rios0rios0/guardrails/internal/domain/entities"
	"github.com/rios0rios0/guardrails/internal/domain/repositories"
)

// CLIBranchRepository resolves the current branch with `git rev-parse --abbrev-ref HEAD`.
type CLIBranchRepository struct {
	process repositories.ProcessRepository
	dir     string
}

// NewCLIBranchRepository creates a resolver running git in dir.
func NewCLIBranchRepository(process repositories.ProcessRepository, dir string) repositories.BranchRepository {
	return &CLIBranchRepository{process: process, dir: dir}
}

func (it *CLIBranchRepository) Name() string { return entities.ResolverGit }

// CurrentBranch returns the trimmed stdout of git. On a non-zero exit the error text
// is git's stderr.
func (it *CLIBranchRepository) CurrentBranch(ctx context.Context) (string, error) {
	result, err := it.process.Run(ctx, it.dir, "git", "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", err
	}
	if !result.Succeeded() {
		if stderr := strings.TrimSpace(result.Stderr); stderr != "" {
			return "", errors.New(stderr)
		}
		return "", fmt.Errorf("git rev-parse exited with status %d", result.ExitCode)
	}
	return strings.TrimSpace(result.Stdout), nil
}
