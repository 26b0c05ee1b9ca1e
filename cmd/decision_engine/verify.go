package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/decision-engine/internal/guardrails"
)

var verifyCheckOnly bool

var verifyCmd = &cobra.Command{
	Use:   "verify <file>",
	Short: "Structurally validate a stored decision file",
	Long: `Verify validates a serialized result bundle (or a single check, with
--check) against the engine's schemas and policy rules. Use this on data
round-tripped from storage before feeding it back into the system.`,
	Args: cobra.ExactArgs(1),
	RunE: runVerify,
}

func init() {
	verifyCmd.Flags().BoolVar(&verifyCheckOnly, "check", false, "Validate a single check instead of a full bundle")
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(_ *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	if verifyCheckOnly {
		err = guardrails.ValidateStoredCheck(data, "cli.verify")
	} else {
		err = guardrails.ValidateStoredBundle(data, "cli.verify")
	}
	if err != nil {
		return err
	}

	fmt.Println("ok")
	return nil
}
