package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/patterncraft/patterncraft/exec"
	"github.com/patterncraft/patterncraft/internal/project"
	"github.com/patterncraft/patterncraft/output"
)

// NewCmd creates and returns the 'new' command for scaffolding projects
func NewCmd() *cobra.Command {
	defaults, err := loadDefaults()
	if err != nil {
		output.Error(fmt.Sprintf("Invalid .patterncraft.yaml: %v", err))
		os.Exit(1)
	}

	var (
		nameScreen   string
		database     string
		hotReload    string
		localization string
	)

	cmd := &cobra.Command{
		Use:   "new [pattern] [directory] [name] [python_version] [kivy_version]",
		Short: "Create a new application project from a pattern",
		Long: `Creates a new application project with:
• A Model-View-Controller skeleton
• Optional database wrapper (firebase or restdb)
• Optional hot-reload entry point
• Optional localization files
• A virtual environment with the declared dependencies

Example:
  patterncraft new MVC ~/Projects MyMVCProject python3.10 2.1.0 --database restdb`,
		Args: cobra.ExactArgs(5),
		Run: func(cmd *cobra.Command, args []string) {
			opts := project.Options{
				Pattern:       args[0],
				Directory:     args[1],
				Name:          args[2],
				PythonVersion: args[3],
				KivyVersion:   args[4],
				NameScreen:    nameScreen,
				Database:      database,
				HotReload:     hotReload,
				Localization:  localization,
			}

			spec, err := project.Validate(opts)
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			output.Verbose(fmt.Sprintf("Creating %s project: %s", spec.Pattern, spec.Path))

			scaffolder := project.NewScaffolder(exec.NewExecutor(nil))
			if err := scaffolder.Scaffold(cmd.Context(), spec); err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			output.Success(fmt.Sprintf("Created project: %s", spec.Path))
			output.Info("Next steps:")
			output.Step(fmt.Sprintf("cd %s", spec.Path))
			output.Step(fmt.Sprintf("source %s", filepath.Join("venv", "bin", "activate")))
			if spec.HotReload {
				output.Step("DEBUG=1 python main.py  # Start with hot reload")
			} else {
				output.Step("python main.py")
			}
		},
	}

	cmd.Flags().StringVar(&nameScreen, "name-screen", defaults.NameScreen,
		"Class name used for the project's screen (must end in 'Screen')")
	cmd.Flags().StringVar(&database, "database", defaults.Database,
		"Database wrapper to include: 'firebase' or 'restdb'")
	cmd.Flags().StringVar(&hotReload, "use-hotreload", defaults.HotReload,
		"Create a hot-reload entry point: 'yes' or 'no'")
	cmd.Flags().StringVar(&localization, "use-localization", defaults.Localization,
		"Create application localization files: 'yes' or 'no'")

	return cmd
}
