//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/guardrails/internal/domain/entities"
	"github.com/rios0rios0/guardrails/internal/domain/repositories"
)

// SpyProcessRepository implements repositories.ProcessRepository as a configurable spy.
type SpyProcessRepository struct {
	// --- Run ---
	Result entities.ProcessResult
	RunErr error
	// spy: invocations received
	Calls []ProcessCall
}

// ProcessCall records a single invocation of Run.
type ProcessCall struct {
	Dir  string
	Name string
	Args []string
}

var _ repositories.ProcessRepository = (*SpyProcessRepository)(nil)

func (p *SpyProcessRepository) Run(
	_ context.Context,
	dir, name string,
	args ...string,
) (entities.ProcessResult, error) {
	p.Calls = append(p.Calls, ProcessCall{Dir: dir, Name: name, Args: args})
	return p.Result, p.RunErr
}
