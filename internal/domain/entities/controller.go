package entities

import "github.com/spf13/cobra"

// ControllerBind is the Cobra command metadata of a controller.
type ControllerBind struct {
	Use        string // subcommand of the umbrella binary
	Executable string // name of the standalone hook executable
	Short      string
	Long       string
	Args       cobra.PositionalArgs

	// FParseErrWhitelist lets a hook runner pass flags the check does not know.
	FParseErrWhitelist cobra.FParseErrWhitelist
}

// Controller adapts a check to the command line.
type Controller interface {
	GetBind() ControllerBind
	AddFlags(cmd *cobra.Command)
	Execute(cmd *cobra.Command, arguments []string) error
}
