package observability

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/growth-audit/internal/transform"
	"github.com/jonathan/growth-audit/internal/types"
)

func TestPrintAudit(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	audit := transform.Placeholder(types.PlatformLinkedIn, "Ada Lovelace", "https://linkedin.com/in/ada")
	p.PrintAudit(audit)
	output := buf.String()

	assert.Contains(t, output, "PROFILE SUMMARY")
	assert.Contains(t, output, "Ada Lovelace")
	assert.Contains(t, output, "PLACEHOLDER DATA")
	assert.Contains(t, output, "CONTENT STRATEGY")
	assert.Contains(t, output, "Thought Leadership")
	assert.Contains(t, output, "SCORE BREAKDOWN")
	assert.Contains(t, output, "Engagement")
}

func TestPrintAudit_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintAudit(nil)
	p.PrintContentStrategy(nil)
	p.PrintGapAnalysis(nil)

	assert.Empty(t, buf.String())
}

func TestPrintBox_AlignsMultibyteLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", "Hook → Story → CTA\n"+strings.Repeat("é", 80))

	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		assert.Equal(t, boxWidth, utf8.RuneCountInString(line), "line %q", line)
	}
	assert.Contains(t, buf.String(), "...")
}

func TestPrintContentStrategy_TruncatesLists(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	strategy := &types.ContentStrategy{PostsPerWeek: 2.5}
	for _, pillar := range types.AllPillars()[:7] {
		strategy.ContentPillars = append(strategy.ContentPillars, types.PillarShare{Topic: pillar, Percentage: 14})
	}
	p.PrintContentStrategy(strategy)
	output := buf.String()

	assert.Contains(t, output, "Posts per week:  2.5")
	assert.Contains(t, output, "... and 2 more")
	assert.NotContains(t, output, string(types.AllPillars()[6]))
}

func TestPrintGapAnalysis(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintGapAnalysis(&types.GapAnalysis{
		Recommendations: []types.Recommendation{
			{Priority: types.PriorityCritical, Signal: "Posting frequency", Action: "Post more often", Impact: 90},
		},
		Summary: types.GapSummary{YourScore: 50, TheirScore: 75, BiggestGaps: []types.Category{types.CategoryContent}},
	})
	output := buf.String()

	assert.Contains(t, output, "GAP ANALYSIS")
	assert.Contains(t, output, "[Critical] Posting frequency (impact 90)")
	assert.Contains(t, output, "Biggest gaps: Content")
}

func TestPrintGapAnalysis_NoGaps(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintGapAnalysis(&types.GapAnalysis{Recommendations: []types.Recommendation{}})

	assert.Contains(t, buf.String(), "NO GAPS FOUND")
}
