// Package main provides the entry point for the Decision Engine service.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "decision_engine",
	Short: "Decision Integrity Engine",
	Long:  "Decision Engine turns pre-computed risk findings about a candidate/role pairing into a bounded, policy-compliant, prioritized result bundle.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
