// Generate command computes a report from flags and prints or saves it.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/solmira/arquetipo/internal/report"
	"github.com/solmira/arquetipo/pkg/types"
)

var (
	flagName string
	flagDate string
	flagOut  string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate an archetype and tikkun report",
	Long: `Generate computes the full archetype and tikkun report for a name
and a birth date and prints it to stdout.

Example:
  arquetipo generate --name "María García" --date 25/12/1990
  arquetipo generate --name "María García" --date 1990-12-25 --json
  arquetipo generate --name "María García" --date 25/12/1990 --out informe.txt`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&flagName, "name", "n", "", "full name (required)")
	generateCmd.Flags().StringVarP(&flagDate, "date", "d", "", "birth date, DD/MM/YYYY or YYYY-MM-DD (required)")
	generateCmd.Flags().StringVarP(&flagOut, "out", "o", "", "write the report to this file instead of stdout")

	_ = generateCmd.MarkFlagRequired("name")
	_ = generateCmd.MarkFlagRequired("date")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if flagJSON {
		result, err := report.Compute(flagName, flagDate)
		if err != nil {
			return userError(err)
		}
		output, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal result: %w", err)
		}
		fmt.Println(string(output))
		return nil
	}

	out, err := report.Generate(flagName, flagDate)
	if err != nil {
		return userError(err)
	}

	if flagOut == "" {
		fmt.Println(out)
		return nil
	}

	path := flagOut
	if !filepath.IsAbs(path) {
		dir, err := resolveReportsDir()
		if err != nil {
			return fmt.Errorf("resolve reports dir: %w", err)
		}
		path = filepath.Join(dir, path)
	}
	if err := os.WriteFile(path, []byte(out+"\n"), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	fmt.Println("Informe guardado en:", path)
	return nil
}

// userError rephrases the engine's sentinel errors for the terminal;
// anything else passes through wrapped.
func userError(err error) error {
	switch {
	case errors.Is(err, types.ErrInvalidInput):
		return fmt.Errorf("invalid name: it contains no usable letters")
	case errors.Is(err, types.ErrInvalidDate):
		return fmt.Errorf("invalid date: use DD/MM/YYYY or YYYY-MM-DD")
	default:
		return fmt.Errorf("generate report: %w", err)
	}
}
