package commands

import (
	"github.com/spf13/cobra"

	"github.com/patterncraft/patterncraft"
	"github.com/patterncraft/patterncraft/output"
)

// RootCmd creates and returns the root command for the patterncraft CLI
func RootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "patterncraft",
		Short: "Scaffold KivyMD application projects with clean architecture",
		Long: `Patterncraft creates GUI application projects from skeleton patterns.

It scaffolds a complete Model-View-Controller project for KivyMD, with
optional database wrappers, a hot-reload entry point, and localization,
then provisions a virtual environment with the declared dependencies.`,
		Version: patterncraft.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			output.SetVerbose(verbose)
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output for debugging")

	return cmd
}
