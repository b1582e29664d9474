package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/growth-audit/internal/db"
	"github.com/jonathan/growth-audit/internal/ingestion"
	"github.com/jonathan/growth-audit/internal/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show stored audit snapshots of a profile",
	Long:  "Lists a profile's audit snapshots, newest first, or with --trend its score series oldest first. Requires DATABASE_URL.",
	RunE:  runHistory,
}

var (
	historyURL      string
	historyPlatform string
	historyLimit    int
	historyTrend    bool
)

func init() {
	historyCmd.Flags().StringVar(&historyURL, "url", "", "Profile URL (required)")
	historyCmd.Flags().StringVarP(&historyPlatform, "platform", "p", "", "Platform: linkedin or twitter (inferred from --url when omitted)")
	historyCmd.Flags().IntVar(&historyLimit, "limit", db.DefaultListLimit, "Maximum snapshots to list")
	historyCmd.Flags().BoolVar(&historyTrend, "trend", false, "Show the score trend instead of the snapshot list")

	if err := historyCmd.MarkFlagRequired("url"); err != nil {
		panic(fmt.Sprintf("failed to mark url flag as required: %v", err))
	}

	rootCmd.AddCommand(historyCmd)
}

func runHistory(_ *cobra.Command, _ []string) error {
	profileURL := ingestion.CanonicalProfileURL(historyURL)
	platform := types.Platform(historyPlatform)
	if platform == "" {
		platform = ingestion.DetectPlatform(profileURL)
	}
	if !platform.Valid() {
		return fmt.Errorf("invalid platform %q: must be linkedin or twitter", platform)
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	ctx := context.Background()
	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	if historyTrend {
		points, err := database.Trend(ctx, profileURL, platform)
		if err != nil {
			return err
		}
		return printTrend(os.Stdout, points)
	}

	snapshots, err := database.ListSnapshots(ctx, db.SnapshotFilters{
		ProfileURL: profileURL,
		Platform:   platform,
		Limit:      historyLimit,
	})
	if err != nil {
		return err
	}
	return printSnapshots(os.Stdout, snapshots)
}

func printSnapshots(out io.Writer, snapshots []db.Snapshot) error {
	if len(snapshots) == 0 {
		_, err := fmt.Fprintln(out, "No snapshots found")
		return err
	}
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "CAPTURED\tWEEK\tSCORE\tGRADE\tID")
	for _, s := range snapshots {
		_, _ = fmt.Fprintf(w, "%s\t%d-W%02d\t%d\t%s\t%s\n",
			s.CapturedAt.Format(time.DateOnly), s.ISOYear, s.WeekNumber, s.OverallScore, s.Grade, s.ID)
	}
	return w.Flush()
}

func printTrend(out io.Writer, points []db.TrendPoint) error {
	if len(points) == 0 {
		_, err := fmt.Fprintln(out, "No snapshots found")
		return err
	}
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "WEEK\tSCORE\tGRADE\tDELTA")
	for i, p := range points {
		delta := "-"
		if i > 0 {
			delta = fmt.Sprintf("%+d", p.Delta)
		}
		_, _ = fmt.Fprintf(w, "%d-W%02d\t%d\t%s\t%s\n", p.ISOYear, p.WeekNumber, p.OverallScore, p.Grade, delta)
	}
	return w.Flush()
}
