//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/guardrails/internal/domain/commands"
)

// StubCheckBranchNameCommand is a stub implementation of commands.CheckBranchName.
type StubCheckBranchNameCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastOpts         commands.BranchNameOptions
}

var _ commands.CheckBranchName = (*StubCheckBranchNameCommand)(nil)

func (s *StubCheckBranchNameCommand) Execute(_ context.Context, opts commands.BranchNameOptions) error {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.ExecuteErr
}

// StubCheckCommitMessageCommand is a stub implementation of commands.CheckCommitMessage.
type StubCheckCommitMessageCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastOpts         commands.CommitMessageOptions
}

var _ commands.CheckCommitMessage = (*StubCheckCommitMessageCommand)(nil)

func (s *StubCheckCommitMessageCommand) Execute(_ context.Context, opts commands.CommitMessageOptions) error {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.ExecuteErr
}

// StubCheckManifestCommand is a stub implementation of every manifest check interface.
type StubCheckManifestCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	ExecutePanic     any
	LastOpts         commands.ManifestOptions
}

var (
	_ commands.CheckPoetryManifest   = (*StubCheckManifestCommand)(nil)
	_ commands.CheckUvManifest       = (*StubCheckManifestCommand)(nil)
	_ commands.CheckGoModule         = (*StubCheckManifestCommand)(nil)
	_ commands.CheckTerraformSources = (*StubCheckManifestCommand)(nil)
)

func (s *StubCheckManifestCommand) Execute(_ context.Context, opts commands.ManifestOptions) error {
	s.ExecuteCallCount++
	s.LastOpts = opts
	if s.ExecutePanic != nil {
		panic(s.ExecutePanic)
	}
	return s.ExecuteErr
}
