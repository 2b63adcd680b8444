package repositories

import (
	"context"

	"github.com/rios0rios0/guardrails/internal/domain/entities"
)

// ProcessRepository runs external programs and captures their output and exit code.
type ProcessRepository interface {
	// Run executes name with args in dir (the current directory when empty).
	// A non-zero exit status is reported through the result, not as an error; the
	// error is reserved for processes that could not be started.
	Run(ctx context.Context, dir, name string, args ...string) (entities.ProcessResult, error)
}
