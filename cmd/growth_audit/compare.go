package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/growth-audit/internal/gap"
	"github.com/jonathan/growth-audit/internal/observability"
	"github.com/jonathan/growth-audit/internal/schemas"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare two audits and recommend improvements",
	Long:  "Reads your ProfileAudit JSON and a competitor's, and writes a GapAnalysis JSON with prioritized recommendations.",
	RunE:  runCompare,
}

var (
	compareYours   string
	compareTheirs  string
	compareOutput  string
	compareVerbose bool
)

func init() {
	compareCmd.Flags().StringVar(&compareYours, "yours", "", "Path to your ProfileAudit JSON file (required)")
	compareCmd.Flags().StringVar(&compareTheirs, "theirs", "", "Path to the competitor's ProfileAudit JSON file (required)")
	compareCmd.Flags().StringVarP(&compareOutput, "out", "o", "", "Path to output GapAnalysis JSON file (required)")
	compareCmd.Flags().BoolVarP(&compareVerbose, "verbose", "v", false, "Print the recommendations")

	if err := compareCmd.MarkFlagRequired("yours"); err != nil {
		panic(fmt.Sprintf("failed to mark yours flag as required: %v", err))
	}
	if err := compareCmd.MarkFlagRequired("theirs"); err != nil {
		panic(fmt.Sprintf("failed to mark theirs flag as required: %v", err))
	}
	if err := compareCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(compareCmd)
}

func runCompare(_ *cobra.Command, _ []string) error {
	for _, path := range []string{compareYours, compareTheirs} {
		if err := schemas.ValidateAuditFile(path); err != nil {
			return fmt.Errorf("invalid audit %s: %w", path, err)
		}
	}

	yours, err := readAudit(compareYours)
	if err != nil {
		return err
	}
	theirs, err := readAudit(compareTheirs)
	if err != nil {
		return err
	}

	analysis := gap.Analyze(yours, theirs)
	if err := writeJSON(compareOutput, analysis); err != nil {
		return err
	}

	if compareVerbose {
		observability.NewPrinter(os.Stdout).PrintGapAnalysis(analysis)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully compared audits: %d recommendations to %s\n",
		len(analysis.Recommendations), compareOutput)
	return nil
}
