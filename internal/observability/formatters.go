// Package observability provides verbose CLI output and Prometheus metrics.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/growth-audit/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", pad(title))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %s │\n", pad(clip(line, boxWidth-4)))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// pad right-pads s to the box's inner width counting runes, not bytes.
func pad(s string) string {
	if n := boxWidth - 4 - utf8.RuneCountInString(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}

func clip(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit-3]) + "..."
}

// PrintAudit outputs the profile, strategy and score summaries of an audit.
func (p *Printer) PrintAudit(audit *types.ProfileAudit) {
	if audit == nil {
		return
	}
	p.PrintProfileSummary(audit)
	p.PrintContentStrategy(&audit.ContentStrategy)
	p.PrintScoreBreakdown(audit)
}

// PrintProfileSummary outputs identity, audience and profile assessments.
func (p *Printer) PrintProfileSummary(audit *types.ProfileAudit) {
	if audit == nil {
		return
	}
	profile := audit.Profile

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:       %s\n", profile.Name))
	sb.WriteString(fmt.Sprintf("Platform:   %s\n", audit.Platform))
	if profile.URL != "" {
		sb.WriteString(fmt.Sprintf("URL:        %s\n", profile.URL))
	}
	sb.WriteString(fmt.Sprintf("Followers:  %d\n", profile.Followers))
	if audit.Diagnostics.Source == types.SourcePlaceholder {
		sb.WriteString("\n⚠ PLACEHOLDER DATA: live data was unavailable\n")
	}
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Completeness:  %d%%\n", profile.CompletenessScore))
	sb.WriteString(fmt.Sprintf("Headline:      %d (%s)\n", profile.HeadlineAnalysis.Effectiveness, profile.HeadlineAnalysis.Formula))
	sb.WriteString(fmt.Sprintf("About:         %d (%s)\n", profile.AboutAnalysis.Score, profile.AboutAnalysis.Structure))
	sb.WriteString(fmt.Sprintf("Experience:    %d\n", profile.ExperienceFraming.Score))
	sb.WriteString(fmt.Sprintf("Banner:        %s", profile.BannerAssessment.Quality))

	p.printBox("PROFILE SUMMARY", sb.String())
}

// PrintContentStrategy outputs cadence, format mix, pillars and hooks.
func (p *Printer) PrintContentStrategy(strategy *types.ContentStrategy) {
	if strategy == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Posts per week:  %.1f\n", strategy.PostsPerWeek))
	sb.WriteString(fmt.Sprintf("Hashtags/post:   %.1f\n", strategy.HashtagStrategy.AvgPerPost))
	sb.WriteString("\n")

	if len(strategy.ContentTypes) > 0 {
		sb.WriteString("Formats:\n")
		for i, share := range strategy.ContentTypes {
			if i == maxItemsToShow {
				sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(strategy.ContentTypes)-maxItemsToShow))
				break
			}
			sb.WriteString(fmt.Sprintf("  • %-12s %3d%%\n", share.Type, share.Percentage))
		}
		sb.WriteString("\n")
	}

	if len(strategy.ContentPillars) > 0 {
		sb.WriteString("Pillars:\n")
		for i, share := range strategy.ContentPillars {
			if i == maxItemsToShow {
				sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(strategy.ContentPillars)-maxItemsToShow))
				break
			}
			sb.WriteString(fmt.Sprintf("  • %-24s %3d%%\n", share.Topic, share.Percentage))
		}
		sb.WriteString("\n")
	}

	if len(strategy.HookPatterns) > 0 {
		sb.WriteString("Hooks:\n")
		count := min(len(strategy.HookPatterns), 3)
		for i := 0; i < count; i++ {
			share := strategy.HookPatterns[i]
			sb.WriteString(fmt.Sprintf("  • %-16s %3d%%\n", share.Pattern, share.Percentage))
		}
		if len(strategy.HookPatterns) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(strategy.HookPatterns)-3))
		}
	}

	p.printBox("CONTENT STRATEGY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintScoreBreakdown outputs the category scores with a bar per category.
func (p *Printer) PrintScoreBreakdown(audit *types.ProfileAudit) {
	if audit == nil || len(audit.Breakdown) == 0 {
		return
	}

	var sb strings.Builder
	for _, c := range audit.Breakdown {
		filled := c.Score / 5
		bar := strings.Repeat("█", filled) + strings.Repeat("░", 20-filled)
		sb.WriteString(fmt.Sprintf("%-12s %s %3d\n", c.Category, bar, c.Score))
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Overall: %d (%s)   Engagement rate: %.2f%%\n",
		audit.OverallScore, audit.OverallGrade, audit.Engagement.EngagementRate))
	sb.WriteString(fmt.Sprintf("Growth:  %s", audit.Engagement.GrowthEstimate))

	p.printBox("SCORE BREAKDOWN", sb.String())
}

// PrintGapAnalysis outputs prioritized recommendations from a comparison.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintGapAnalysis(analysis *types.GapAnalysis) {
	if analysis == nil {
		return
	}
	if len(analysis.Recommendations) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %s │\n", pad("✅ NO GAPS FOUND"))
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("You: %d   Them: %d\n", analysis.Summary.YourScore, analysis.Summary.TheirScore))
	if len(analysis.Summary.BiggestGaps) > 0 {
		gaps := make([]string, len(analysis.Summary.BiggestGaps))
		for i, c := range analysis.Summary.BiggestGaps {
			gaps[i] = string(c)
		}
		sb.WriteString(fmt.Sprintf("Biggest gaps: %s\n", strings.Join(gaps, ", ")))
	}
	sb.WriteString("\n")

	for i, rec := range analysis.Recommendations {
		sb.WriteString(fmt.Sprintf("[%s] %s (impact %d)\n", rec.Priority, rec.Signal, rec.Impact))
		sb.WriteString(fmt.Sprintf("  %s\n", rec.Action))
		if i < len(analysis.Recommendations)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("GAP ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}
