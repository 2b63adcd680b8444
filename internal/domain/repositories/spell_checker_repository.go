package repositories

import (
	"context"

	"github.com/rios0rios0/guardrails/internal/domain/entities"
)

// SpellCheckerRepository runs an external spell checker against a file.
type SpellCheckerRepository interface {
	// Check returns the verdict of checker on the file at path. The error is only
	// set when the checker could not be run at all.
	Check(ctx context.Context, checker entities.SpellChecker, path string) (entities.SpellingReport, error)
}
