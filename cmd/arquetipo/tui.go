// TUI command launches the interactive shell.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/solmira/arquetipo/internal/logger"
	"github.com/solmira/arquetipo/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive report shell",
	Long: `Tui opens a terminal interface with the same capabilities as the
generate command: type a name and a birth date, generate the report,
scroll it, copy it to the clipboard or save it as a text file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}
		reportsDir, err := resolveReportsDir()
		if err != nil {
			return err
		}

		// The TUI owns stdout, so log to a file under the config dir.
		cleanup, err := logger.Setup(logger.Config{Dir: configDir, Debug: configDebug})
		if err != nil {
			return fmt.Errorf("set up logging: %w", err)
		}
		defer func() { _ = cleanup() }()

		return tui.Run(tui.Options{ReportsDir: reportsDir})
	},
}
