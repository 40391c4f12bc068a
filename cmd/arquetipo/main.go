// Package main provides the arquetipo CLI: a numerology archetype and
// tikkun report generator driven by a full name and a birth date.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
