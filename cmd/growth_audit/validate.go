package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/growth-audit/internal/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate an audit JSON file against the ProfileAudit schema",
	RunE:  runValidate,
}

var validateJSONPath string

func init() {
	validateCmd.Flags().StringVar(&validateJSONPath, "json", "", "Path to the ProfileAudit JSON file (required)")

	if err := validateCmd.MarkFlagRequired("json"); err != nil {
		panic(fmt.Sprintf("failed to mark json flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	if err := schemas.ValidateAuditFile(validateJSONPath); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
		return err
	}
	_, _ = fmt.Fprintf(os.Stdout, "Validation passed: %s\n", validateJSONPath)
	return nil
}
