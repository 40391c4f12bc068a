// Root command for the arquetipo CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/solmira/arquetipo/internal/paths"
	"github.com/solmira/arquetipo/pkg/arquetipo"
)

// Global flag values.
var (
	flagConfigDir  string
	flagReportsDir string
	flagJSON       bool
)

// Values loaded from config.yaml by PersistentPreRunE, so all
// subcommands can use them.
var (
	configReportsDir string
	configDebug      bool
)

var rootCmd = &cobra.Command{
	Use:   "arquetipo",
	Short: "Arquetipo generates kabbalistic numerology reports",
	Long: `Arquetipo computes a numerology archetype and tikkun report from a
full name and a birth date, using the Pythagorean letter cipher and
digit-sum reduction with master numbers.

Accepted date formats: DD/MM/YYYY and YYYY-MM-DD.`,
	Version: arquetipo.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configReportsDir = cfg.GetString(cfgKeyReportsDir)
		configDebug = cfg.GetBool(cfgKeyDebug)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagReportsDir, "reports-dir", "", "directory saved reports are written to (default: $(CWD))")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output the computation as JSON instead of the report text")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(tuiCmd)
}

// resolveReportsDir returns the reports directory following the
// precedence chain: --reports-dir flag > config.yaml reports_dir >
// ARQUETIPO_REPORTS_DIR env > current working directory.
func resolveReportsDir() (string, error) {
	return paths.ResolveReportsDir(flagReportsDir, configReportsDir)
}

// resolveConfigDir returns the configuration directory following the
// precedence chain: --config-dir flag > ARQUETIPO_CONFIG_DIR env >
// platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}
