// Package gap compares two audits and turns the areas where the second
// profile outperforms the first into prioritized recommendations.
package gap

import (
	"fmt"
	"math"
	"sort"

	"github.com/jonathan/growth-audit/internal/types"
)

const (
	// minImpact drops recommendations too small to act on.
	minImpact = 10

	// categorySpan is the score delta that counts as a full-magnitude gap.
	categorySpan = 50.0
	// replySpan is the reply-rate delta that counts as a full-magnitude gap.
	replySpan = 50.0
	// maxHealthyHashtags is the upper bound of a disciplined hashtag habit.
	maxHealthyHashtags = 5.0
)

// signal measures one dimension of the comparison.
type signal struct {
	name      string
	weight    float64
	magnitude func(yours, theirs *types.ProfileAudit) float64
	action    func(yours, theirs *types.ProfileAudit) string
}

var signals = []signal{
	{
		name:   "Posting frequency",
		weight: 1.00,
		magnitude: func(a, b *types.ProfileAudit) float64 {
			return relative(a.ContentStrategy.PostsPerWeek, b.ContentStrategy.PostsPerWeek)
		},
		action: func(a, b *types.ProfileAudit) string {
			return fmt.Sprintf("Post more often: they publish %.1f posts/week vs your %.1f",
				b.ContentStrategy.PostsPerWeek, a.ContentStrategy.PostsPerWeek)
		},
	},
	categorySignal(types.CategoryEngagement, 0.90, "Lift engagement with stronger hooks and direct questions that invite comments"),
	categorySignal(types.CategoryContent, 0.85, "Broaden your content mix across more formats and pillars"),
	categorySignal(types.CategoryConsistency, 0.80, "Post on a steady weekly rhythm instead of in bursts"),
	categorySignal(types.CategoryProfile, 0.75, "Complete your profile and sharpen your headline and about section"),
	{
		name:   "Format diversity",
		weight: 0.70,
		magnitude: func(a, b *types.ProfileAudit) float64 {
			return relative(float64(len(a.ContentStrategy.ContentTypes)), float64(len(b.ContentStrategy.ContentTypes)))
		},
		action: func(a, b *types.ProfileAudit) string {
			return fmt.Sprintf("Use more formats: they post %d content types vs your %d",
				len(b.ContentStrategy.ContentTypes), len(a.ContentStrategy.ContentTypes))
		},
	},
	categorySignal(types.CategoryStrategy, 0.65, "Define clear content pillars and rotate your opening hooks"),
	{
		name:   "Reply engagement",
		weight: 0.60,
		magnitude: func(a, b *types.ProfileAudit) float64 {
			return bounded(float64(b.Engagement.ReplyRate-a.Engagement.ReplyRate) / replySpan)
		},
		action: func(a, b *types.ProfileAudit) string {
			return fmt.Sprintf("Reply to comments faster: their reply rate is %d%% vs your %d%%",
				b.Engagement.ReplyRate, a.Engagement.ReplyRate)
		},
	},
	{
		name:   "Hashtag discipline",
		weight: 0.50,
		magnitude: func(a, b *types.ProfileAudit) float64 {
			if disciplined(b) && !disciplined(a) {
				return 1
			}
			return 0
		},
		action: func(a, _ *types.ProfileAudit) string {
			return fmt.Sprintf("Use 1-%d focused hashtags per post (you average %.1f)",
				int(maxHealthyHashtags), a.ContentStrategy.HashtagStrategy.AvgPerPost)
		},
	},
}

func categorySignal(c types.Category, weight float64, advice string) signal {
	return signal{
		name:   string(c),
		weight: weight,
		magnitude: func(a, b *types.ProfileAudit) float64 {
			return bounded(float64(b.Score(c)-a.Score(c)) / categorySpan)
		},
		action: func(a, b *types.ProfileAudit) string {
			return fmt.Sprintf("%s (%s score %d vs their %d)", advice, c, a.Score(c), b.Score(c))
		},
	}
}

// Analyze compares yours against theirs. It is pure and deterministic.
func Analyze(yours, theirs *types.ProfileAudit) *types.GapAnalysis {
	recs := make([]types.Recommendation, 0, len(signals))
	for _, s := range signals {
		impact := Impact(s.weight, s.magnitude(yours, theirs))
		if impact < minImpact {
			continue
		}
		recs = append(recs, types.Recommendation{
			Priority: PriorityFor(impact),
			Signal:   s.name,
			Action:   s.action(yours, theirs),
			Impact:   impact,
		})
	}
	sort.SliceStable(recs, func(i, j int) bool { return recs[i].Impact > recs[j].Impact })

	return &types.GapAnalysis{
		Recommendations: recs,
		Summary: types.GapSummary{
			YourScore:   yours.OverallScore,
			TheirScore:  theirs.OverallScore,
			BiggestGaps: BiggestGaps(yours, theirs),
		},
	}
}

// BiggestGaps lists categories where theirs scores higher, largest delta
// first; equal deltas keep category order.
func BiggestGaps(yours, theirs *types.ProfileAudit) []types.Category {
	type delta struct {
		category types.Category
		value    int
	}
	var deltas []delta
	for _, c := range types.AllCategories() {
		if d := theirs.Score(c) - yours.Score(c); d > 0 {
			deltas = append(deltas, delta{c, d})
		}
	}
	sort.SliceStable(deltas, func(i, j int) bool { return deltas[i].value > deltas[j].value })

	out := make([]types.Category, len(deltas))
	for i, d := range deltas {
		out[i] = d.category
	}
	return out
}

// Impact is round(100 × weight × magnitude) with magnitude clamped to [0, 1].
func Impact(weight, magnitude float64) int {
	return int(math.Round(100 * weight * bounded(magnitude)))
}

// PriorityFor maps an impact to a priority tier.
func PriorityFor(impact int) types.Priority {
	switch {
	case impact >= 80:
		return types.PriorityCritical
	case impact >= 60:
		return types.PriorityHigh
	case impact >= 40:
		return types.PriorityMedium
	default:
		return types.PriorityLow
	}
}

// relative is theirs' lead over yours as a share of theirs.
func relative(yours, theirs float64) float64 {
	if theirs <= 0 {
		return 0
	}
	return bounded((theirs - yours) / theirs)
}

func disciplined(a *types.ProfileAudit) bool {
	avg := a.ContentStrategy.HashtagStrategy.AvgPerPost
	return avg > 0 && avg <= maxHealthyHashtags
}

func bounded(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return math.Min(v, 1)
}
