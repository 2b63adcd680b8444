//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/guardrails/internal/domain/entities"
	"github.com/rios0rios0/guardrails/internal/domain/repositories"
)

// SpySpellCheckerRepository implements repositories.SpellCheckerRepository as a configurable spy.
type SpySpellCheckerRepository struct {
	// --- Check ---
	Report   entities.SpellingReport
	CheckErr error
	// spy: inputs received
	CheckedPaths []string
	Checkers     []entities.SpellChecker
}

var _ repositories.SpellCheckerRepository = (*SpySpellCheckerRepository)(nil)

func (s *SpySpellCheckerRepository) Check(
	_ context.Context,
	checker entities.SpellChecker,
	path string,
) (entities.SpellingReport, error) {
	s.CheckedPaths = append(s.CheckedPaths, path)
	s.Checkers = append(s.Checkers, checker)
	return s.Report, s.CheckErr
}
