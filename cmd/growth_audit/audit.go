package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	"github.com/jonathan/growth-audit/internal/db"
	"github.com/jonathan/growth-audit/internal/logging"
	"github.com/jonathan/growth-audit/internal/observability"
	"github.com/jonathan/growth-audit/internal/pipeline"
	"github.com/jonathan/growth-audit/internal/types"
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Audit a scraped profile",
	Long: `Transforms a scraped profile and its posts into a scored ProfileAudit JSON.

The posts file holds a JSON array of raw post records as returned by the scraper.
Malformed records are skipped and counted in the audit's diagnostics.`,
	RunE: runAudit,
}

var (
	auditPlatform string
	auditProfile  string
	auditPosts    string
	auditOutput   string
	auditNow      string
	auditFallback bool
	auditSave     bool
	auditVerbose  bool
)

func init() {
	auditCmd.Flags().StringVarP(&auditPlatform, "platform", "p", "", "Platform of the scrape: linkedin or twitter (required)")
	auditCmd.Flags().StringVar(&auditProfile, "profile", "", "Path to the raw profile JSON file (optional for twitter)")
	auditCmd.Flags().StringVar(&auditPosts, "posts", "", "Path to the raw posts JSON array file (required)")
	auditCmd.Flags().StringVarP(&auditOutput, "out", "o", "", "Path to output ProfileAudit JSON file (required)")
	auditCmd.Flags().StringVar(&auditNow, "now", "", "Reference time in RFC3339 for weekly bucketing (defaults to the current time)")
	auditCmd.Flags().BoolVar(&auditFallback, "fallback", false, "Write a labeled placeholder audit when the scrape has no usable data")
	auditCmd.Flags().BoolVar(&auditSave, "save", false, "Store the audit as a snapshot (requires DATABASE_URL)")
	auditCmd.Flags().BoolVarP(&auditVerbose, "verbose", "v", false, "Print the audit summary")

	if err := auditCmd.MarkFlagRequired("platform"); err != nil {
		panic(fmt.Sprintf("failed to mark platform flag as required: %v", err))
	}
	if err := auditCmd.MarkFlagRequired("posts"); err != nil {
		panic(fmt.Sprintf("failed to mark posts flag as required: %v", err))
	}
	if err := auditCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(auditCmd)
}

func runAudit(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	clock := clockwork.NewRealClock()
	if auditNow != "" {
		now, err := time.Parse(time.RFC3339, auditNow)
		if err != nil {
			return fmt.Errorf("invalid --now value %q: %w", auditNow, err)
		}
		clock = clockwork.NewFakeClockAt(now)
	}

	req := types.AuditRequest{
		Platform: types.Platform(auditPlatform),
		Fallback: auditFallback,
	}
	if auditProfile != "" {
		if err := readJSON(auditProfile, &req.Profile); err != nil {
			return fmt.Errorf("failed to load profile: %w", err)
		}
	}
	var posts []json.RawMessage
	if err := readJSON(auditPosts, &posts); err != nil {
		return fmt.Errorf("failed to load posts: %w", err)
	}
	req.Posts = posts

	opts := pipeline.Options{
		Clock:  clock,
		Logger: logging.New(os.Getenv("LOG_LEVEL"), logging.FormatText),
	}
	if auditSave {
		databaseURL := os.Getenv("DATABASE_URL")
		if databaseURL == "" {
			return fmt.Errorf("DATABASE_URL environment variable is required with --save")
		}
		database, err := db.Connect(ctx, databaseURL)
		if err != nil {
			return err
		}
		defer database.Close()
		if err := database.Migrate(ctx); err != nil {
			return err
		}
		opts.Store = database
	}

	result, err := pipeline.NewAuditor(opts).Audit(ctx, req)
	if err != nil {
		return fmt.Errorf("audit failed: %w", err)
	}

	if err := writeJSON(auditOutput, result.Audit); err != nil {
		return err
	}

	if auditVerbose {
		observability.NewPrinter(os.Stdout).PrintAudit(result.Audit)
	}
	if result.SnapshotID != nil {
		_, _ = fmt.Fprintf(os.Stdout, "Saved snapshot %s\n", result.SnapshotID)
	}

	audit := result.Audit
	_, _ = fmt.Fprintf(os.Stdout, "Successfully audited %s (%d posts, %d skipped): score %d (%s) to %s\n",
		audit.Profile.Name, audit.Diagnostics.PostsAnalyzed, audit.Diagnostics.SkippedRecords,
		audit.OverallScore, audit.OverallGrade, auditOutput)
	return nil
}
