package spelling

import (
	"context"
	"errors"

	"github.com/rios0rios0/guardrails/internal/domain/entities"
	"github.com/rios0rios0/guardrails/internal/domain/repositories"
)

// ProcessSpellCheckerRepository runs a command line spell checker (typos by default)
// and treats a non-zero exit as spelling issues.
type ProcessSpellCheckerRepository struct {
	process repositories.ProcessRepository
}

// NewProcessSpellCheckerRepository creates a new ProcessSpellCheckerRepository.
func NewProcessSpellCheckerRepository(
	process repositories.ProcessRepository,
) repositories.SpellCheckerRepository {
	return &ProcessSpellCheckerRepository{process: process}
}

// Check runs `<command> <args...> <path>`.
func (it *ProcessSpellCheckerRepository) Check(
	ctx context.Context,
	checker entities.SpellChecker,
	path string,
) (entities.SpellingReport, error) {
	if checker.Command == "" {
		return entities.SpellingReport{}, errors.New("no spell checker command configured")
	}

	args := append(append([]string{}, checker.Args...), path)
	result, err := it.process.Run(ctx, "", checker.Command, args...)
	if err != nil {
		return entities.SpellingReport{}, err
	}

	return entities.SpellingReport{
		Clean:  result.Succeeded(),
		Output: result.CombinedOutput(),
	}, nil
}
