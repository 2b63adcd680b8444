package repositories

import "context"

// BranchRepository resolves the branch checked out in a working copy.
type BranchRepository interface {
	// Name returns the resolver identifier (e.g. "git", "go-git").
	Name() string

	// CurrentBranch returns the abbreviated name of the checked out branch,
	// or "HEAD" when detached.
	CurrentBranch(ctx context.Context) (string, error)
}
