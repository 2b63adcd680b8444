//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/guardrails/internal/domain/repositories"
)

// StubBranchRepository implements repositories.BranchRepository with a fixed answer.
type StubBranchRepository struct {
	ResolverName string
	Branch       string
	BranchErr    error

	CurrentBranchCallCount int
}

var _ repositories.BranchRepository = (*StubBranchRepository)(nil)

func (s *StubBranchRepository) Name() string { return s.ResolverName }

func (s *StubBranchRepository) CurrentBranch(_ context.Context) (string, error) {
	s.CurrentBranchCallCount++
	return s.Branch, s.BranchErr
}
