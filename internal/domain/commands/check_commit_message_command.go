package commands

import (
	"context"
	"fmt"
	"os"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/guardrails/internal/domain/entities"
	"github.com/rios0rios0/guardrails/internal/domain/repositories"
)

// CheckCommitMessage is the interface for the commit message check.
type CheckCommitMessage interface {
	Execute(ctx context.Context, opts CommitMessageOptions) error
}

// CommitMessageOptions holds runtime options for the commit message check.
type CommitMessageOptions struct {
	Path         string
	IssueTypes   []string // empty: entities.DefaultIssueTypes
	SpellChecker entities.SpellChecker
}

// CheckCommitMessageCommand checks a commit message file for an issue reference and
// then for spelling errors, stopping at the first failure.
type CheckCommitMessageCommand struct {
	spellChecker repositories.SpellCheckerRepository
}

// NewCheckCommitMessageCommand creates a new CheckCommitMessageCommand.
func NewCheckCommitMessageCommand(spellChecker repositories.SpellCheckerRepository) *CheckCommitMessageCommand {
	return &CheckCommitMessageCommand{spellChecker: spellChecker}
}

// Execute returns nil when both checks pass, otherwise an *entities.CheckError.
func (it *CheckCommitMessageCommand) Execute(ctx context.Context, opts CommitMessageOptions) error {
	data, err := os.ReadFile(opts.Path)
	if err != nil {
		return entities.NewResolutionError(
			fmt.Sprintf("Failed to read commit message '%s': %v", opts.Path, err), err,
		)
	}
	message := entities.NewCommitMessage(opts.Path, string(data))

	issueTypes := opts.IssueTypes
	if len(issueTypes) == 0 {
		issueTypes = entities.DefaultIssueTypes
	}
	if issueErr := entities.ValidateIssueReference(message, issueTypes); issueErr != nil {
		return issueErr
	}

	report, err := it.spellChecker.Check(ctx, opts.SpellChecker, opts.Path)
	if err != nil {
		return entities.NewResolutionError(
			fmt.Sprintf("Failed to run spell checker '%s': %v", opts.SpellChecker.Command, err), err,
		)
	}
	if !report.Clean {
		logger.Debugf("%s reported spelling issues in %s", opts.SpellChecker.Command, opts.Path)
		return entities.NewRejectionError(spellingDiagnostic(opts.SpellChecker.Command, report))
	}

	return nil
}

func spellingDiagnostic(command string, report entities.SpellingReport) string {
	if report.Output == "" {
		return fmt.Sprintf("Spelling errors in commit message (reported by %s)", command)
	}
	return fmt.Sprintf("Spelling errors in commit message (reported by %s):\n%s", command, report.Output)
}
