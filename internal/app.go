package internal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/guardrails/internal/domain/entities"
)

// AppInternal holds every controller of the application.
type AppInternal struct {
	controllers []entities.Controller
}

// NewAppInternal creates the AppInternal from the aggregated controllers.
func NewAppInternal(controllers *[]entities.Controller) *AppInternal {
	return &AppInternal{controllers: *controllers}
}

// GetControllers returns the registered controllers.
func (it *AppInternal) GetControllers() []entities.Controller {
	return it.controllers
}

// ConfigureLogger sets the log format; DEBUG=true enables debug output.
func ConfigureLogger() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}
}

// BuildRootCommand builds the "guardrails" command with one subcommand per check.
func (it *AppInternal) BuildRootCommand() *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   "guardrails",
		Short: "Pre-commit checks for branch names, commit messages and manifests",
		Long: `A set of independent pre-commit checks:

  branch       validate the branch name against a naming pattern
  commit-msg   require issue numbers on feat/fix/refactor commits and spell check
  poetry, uv   reject path dependencies in pyproject.toml
  gomod        reject local replace directives in go.mod
  terraform    reject Terraform modules sourced from outside the directory

Each check is also shipped as a standalone executable for pre-commit hooks.`,
		Args: cobra.NoArgs,
		RunE: func(command *cobra.Command, _ []string) error {
			return command.Help()
		},
	}
	addGlobalFlags(cmd)

	for _, controller := range it.controllers {
		cmd.AddCommand(buildControllerCommand(controller, controller.GetBind().Use))
	}
	return cmd
}

// BuildStandaloneCommand builds the command of the check shipped as the given executable.
func (it *AppInternal) BuildStandaloneCommand(executable string) (*cobra.Command, error) {
	for _, controller := range it.controllers {
		bind := controller.GetBind()
		if bind.Executable != executable {
			continue
		}

		use := executable
		if _, arguments, found := strings.Cut(bind.Use, " "); found {
			use += " " + arguments
		}
		cmd := buildControllerCommand(controller, use)
		addGlobalFlags(cmd)
		return cmd, nil
	}
	return nil, fmt.Errorf("unknown check executable: %q", executable)
}

func buildControllerCommand(controller entities.Controller, use string) *cobra.Command {
	bind := controller.GetBind()
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   use,
		Short: bind.Short,
		Long:  bind.Long,
		Args:  bind.Args,
		RunE:  controller.Execute,

		FParseErrWhitelist: bind.FParseErrWhitelist,
	}
	controller.AddFlags(cmd)
	return cmd
}

func addGlobalFlags(cmd *cobra.Command) {
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	cmd.PersistentFlags().StringP("config", "c", "",
		"Path to settings file (default: auto-detect)")
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output")
	cmd.PersistentPreRun = func(command *cobra.Command, _ []string) {
		if verbose, _ := command.Flags().GetBool("verbose"); verbose {
			logger.SetLevel(logger.DebugLevel)
		}
	}
}

// Execute runs cmd with args and returns the process exit status: 0 when the check
// passed, 1 otherwise. Check diagnostics are already printed by the controllers;
// any other error (bad flags, missing arguments) is written to stderr.
func Execute(cmd *cobra.Command, args []string, stderr io.Writer) int {
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, entities.ErrCheckFailed) {
			_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

// RunStandalone is the entry point of a standalone check executable.
func RunStandalone(executable string, args []string) int {
	ConfigureLogger()

	cmd, err := InjectAppInternal().BuildStandaloneCommand(executable)
	if err != nil {
		logger.Errorf("Error executing '%s': %s", executable, err)
		return 1
	}
	return Execute(cmd, args, os.Stderr)
}
