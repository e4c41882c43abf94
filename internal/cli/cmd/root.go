// Package cmd provides the Cobra commands of docklayout.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/docklayout/internal/cli"
	"github.com/bnema/docklayout/internal/domain/build"
)

var (
	app     *cli.App
	rootCmd = &cobra.Command{
		Use:   "docklayout",
		Short: "Inspect and edit docking layouts",
		Long: `docklayout manages docking layouts: a root panel of document and tool
panes, auto-hide sides, floating windows and hidden tools.

Layouts are stored by name in SQLite or as XML files, depending on
layout.storage in the configuration file. Use 'docklayout layouts' to
list, show, import and export them, and 'docklayout exec' to run a
content command such as float, hide or dock against a stored layout.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if skipsApp(cmd) {
				return nil
			}
			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

// skipsApp reports whether cmd runs without configuration and storage.
func skipsApp(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "help", "completion", "schema", "path":
		return true
	}
	return false
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app.
func GetApp() (*cli.App, error) {
	if app == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return app, nil
}

// SetBuildInfo sets the output of --version.
func SetBuildInfo(info build.Info) {
	rootCmd.Version = info.String()
}
