package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/guardrails/internal/domain/commands"
	"github.com/rios0rios0/guardrails/internal/domain/entities"
)

// BranchNameController validates the branch name.
type BranchNameController struct {
	command commands.CheckBranchName
}

// NewBranchNameController creates a new BranchNameController.
func NewBranchNameController(command commands.CheckBranchName) *BranchNameController {
	return &BranchNameController{command: command}
}

// GetBind returns the Cobra command metadata for the branch name controller.
func (it *BranchNameController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:        "branch",
		Executable: "check-branch-name",
		Short:      "Validate the git branch name against a pattern",
		Long: `Validate a git branch name against a configurable regular expression.

The whole name must match. Without --branch, the current branch is resolved
from the working copy. The default pattern accepts main, lts, develop, their
-fixes variants, HEAD, and <type>/<description> branches where type is one of
feat, fix, build, refactor, release, chore, docs, test.`,
		// pre-commit passes staged file names and its own flags, which are irrelevant here
		Args:               cobra.ArbitraryArgs,
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
	}
}

// AddFlags adds the branch name flags to the given Cobra command.
func (it *BranchNameController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("pattern", entities.DefaultBranchPattern, "Regex pattern for valid branch names")
	cmd.Flags().String("branch", "", "Branch name to validate (default: current branch)")
	cmd.Flags().String("resolver", "",
		"How to resolve the current branch: git or go-git (default: from settings, then git)")
}

// Execute runs the branch name check.
func (it *BranchNameController) Execute(cmd *cobra.Command, _ []string) error {
	return runCheck(cmd, "branch name", func() error {
		settings, err := loadSettings(cmd)
		if err != nil {
			return err
		}

		branch, _ := cmd.Flags().GetString("branch")
		return it.command.Execute(context.Background(), commands.BranchNameOptions{
			Branch:   branch,
			Pattern:  stringOption(cmd, "pattern", settings.Branch.Pattern),
			Resolver: stringOption(cmd, "resolver", settings.Branch.Resolver),
			Dir:      ".",
		})
	})
}
