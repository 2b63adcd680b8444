package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/guardrails/internal/domain/commands"
	"github.com/rios0rios0/guardrails/internal/domain/entities"
)

// CommitMessageController checks a commit message file.
type CommitMessageController struct {
	command commands.CheckCommitMessage
}

// NewCommitMessageController creates a new CommitMessageController.
func NewCommitMessageController(command commands.CheckCommitMessage) *CommitMessageController {
	return &CommitMessageController{command: command}
}

// GetBind returns the Cobra command metadata for the commit message controller.
func (it *CommitMessageController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:        "commit-msg <commit-msg-file>",
		Executable: "check-commit-msg",
		Short:      "Check the commit message for an issue number and typos",
		Long: `Check a commit message file, as passed by the commit-msg hook.

feat, fix and refactor commits must reference an issue (e.g. "feat(api): add endpoint #101").
The message is then spell checked with an external tool (typos by default).`,
		Args: cobra.ExactArgs(1),
	}
}

// AddFlags adds no flags; the message file is positional.
func (it *CommitMessageController) AddFlags(_ *cobra.Command) {}

// Execute runs the commit message check.
func (it *CommitMessageController) Execute(cmd *cobra.Command, arguments []string) error {
	return runCheck(cmd, "commit message", func() error {
		settings, err := loadSettings(cmd)
		if err != nil {
			return err
		}

		return it.command.Execute(context.Background(), commands.CommitMessageOptions{
			Path:         arguments[0],
			IssueTypes:   settings.CommitMessage.IssueTypes,
			SpellChecker: settings.CommitMessage.SpellChecker,
		})
	})
}
