package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-matcher/internal/observability"
	"github.com/jonathan/job-matcher/internal/schemas"
	"github.com/jonathan/job-matcher/internal/scoring"
	"github.com/jonathan/job-matcher/internal/types"
)

var (
	scoreInput   string
	scoreVerbose bool
	scoreExplain string
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a candidate against job postings from a JSON file",
	Long:  `Run the match engine once over an application-input JSON file ({"candidate": ..., "jobs": [...]}) and print the results, without starting the server.`,
	RunE:  runScore,
}

func init() {
	scoreCmd.Flags().StringVar(&scoreInput, "input", "", "Path to application input JSON file (required)")
	scoreCmd.Flags().BoolVar(&scoreVerbose, "verbose", false, "Print human-readable match summaries instead of JSON")
	scoreCmd.Flags().StringVar(&scoreExplain, "explain", "", "Print the plain-text explanation for one job id")
	_ = scoreCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	body, err := os.ReadFile(scoreInput)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	if err := schemas.ValidateApplicationInput(body); err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}

	var input types.ApplicationInput
	if err := json.Unmarshal(body, &input); err != nil {
		return fmt.Errorf("failed to parse input JSON: %w", err)
	}
	if err := input.Validate(); err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}

	if scoreExplain != "" {
		explanation, err := scoring.Explain(input.Candidate, input.Jobs, scoreExplain)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), explanation)
		return nil
	}

	matches := scoring.ScoreAll(input.Candidate, input.Jobs)

	if scoreVerbose {
		printer := observability.NewPrinter(cmd.OutOrStdout())
		printer.PrintMatches(matches)
		return nil
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(types.MatchesResponse{Matches: matches})
}
