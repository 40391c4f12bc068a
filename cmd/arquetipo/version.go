// Version command for the arquetipo CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/solmira/arquetipo/pkg/arquetipo"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the arquetipo version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("arquetipo", arquetipo.Version)
	},
}
