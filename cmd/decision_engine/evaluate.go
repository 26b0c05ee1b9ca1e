package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/decision-engine/internal/config"
	"github.com/jonathan/decision-engine/internal/guardrails"
	"github.com/jonathan/decision-engine/internal/intel"
	"github.com/jonathan/decision-engine/internal/types"
)

var (
	evaluateInputPath string
	evaluateIntelPath string
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Run the engine over a request file",
	Long: `Evaluate reads an evaluation input from a JSON file, runs the decision
engine, and prints the result bundle. An optional saved HTML page can be
supplied to derive the company-health fragment.`,
	RunE: runEvaluate,
}

func init() {
	evaluateCmd.Flags().StringVar(&evaluateInputPath, "input", "", "Path to evaluation input JSON (required)")
	evaluateCmd.Flags().StringVar(&evaluateIntelPath, "intel", "", "Path to a saved HTML page for company-health extraction")
	_ = evaluateCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(evaluateCmd)
}

func runEvaluate(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	data, err := os.ReadFile(evaluateInputPath)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	var input types.EvaluationInput
	if err := json.Unmarshal(data, &input); err != nil {
		return fmt.Errorf("failed to parse input JSON: %w", err)
	}
	input.Enabled = cfg.GuardrailsEnabled
	if input.Caller == "" {
		input.Caller = "cli.evaluate"
	}

	if evaluateIntelPath != "" {
		page, err := os.ReadFile(evaluateIntelPath)
		if err != nil {
			return fmt.Errorf("failed to read intel page: %w", err)
		}
		health, err := intel.BuildCompanyHealth(string(page), input.Company)
		if err != nil {
			return fmt.Errorf("failed to extract company health: %w", err)
		}
		if input.CompanyHealth == nil {
			input.CompanyHealth = make(map[string]*types.CompanyHealth)
		}
		input.CompanyHealth[input.Company] = health
	}

	bundle, err := guardrails.New().Evaluate(cmd.Context(), &input)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(bundle, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
