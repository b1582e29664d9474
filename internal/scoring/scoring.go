// Package scoring turns audit signals into five category scores, an overall score and a grade.
package scoring

import (
	"math"

	"github.com/jonathan/growth-audit/internal/types"
)

// Category weights for the overall score. Both platforms share them so
// audits stay comparable across networks.
const (
	profileWeight     = 0.20
	contentWeight     = 0.25
	engagementWeight  = 0.25
	consistencyWeight = 0.15
	strategyWeight    = 0.15
)

// MaxScore is the upper bound of every score.
const MaxScore = 100

// Signals are the intermediate values the category scores are computed from.
type Signals struct {
	Completeness       int
	HeadlineScore      int
	AboutScore         int
	ExperienceScore    int
	PostsPerWeek       float64
	ContentTypeCount   int
	PillarCount        int
	HookCount          int
	EngagementRate     float64
	AvgLikes           int
	AvgComments        int
	AvgShares          int
	ActiveWeeks        int
	AvgHashtagsPerPost float64
}

// Result is the scored outcome of a set of signals.
type Result struct {
	Breakdown []types.CategoryScore
	Overall   int
	Grade     string
}

// Score computes every category score, the weighted overall score and the grade.
func Score(s Signals) Result {
	scores := map[types.Category]int{
		types.CategoryProfile:     Profile(s),
		types.CategoryContent:     Content(s),
		types.CategoryEngagement:  Engagement(s),
		types.CategoryConsistency: Consistency(s),
		types.CategoryStrategy:    Strategy(s),
	}

	breakdown := make([]types.CategoryScore, 0, len(scores))
	for _, c := range types.AllCategories() {
		breakdown = append(breakdown, types.CategoryScore{Category: c, Score: scores[c], Max: MaxScore})
	}

	overall := Overall(breakdown)
	return Result{Breakdown: breakdown, Overall: overall, Grade: Grade(overall)}
}

// Profile averages the four profile sub-assessments with equal weight.
func Profile(s Signals) int {
	sum := s.Completeness + s.HeadlineScore + s.AboutScore + s.ExperienceScore
	return clamp(math.Round(float64(sum) / 4))
}

// Content rewards posting frequency, format variety and pillar variety.
func Content(s Signals) int {
	frequency := math.Min(s.PostsPerWeek*10, 40)
	typeVariety := ratio(s.ContentTypeCount, 4) * 30
	pillarVariety := ratio(s.PillarCount, 5) * 30
	return clamp(math.Round(frequency + typeVariety + pillarVariety))
}

// Engagement sums tiered bonuses for rate, likes, comments and shares.
func Engagement(s Signals) int {
	rate := tier(s.EngagementRate, []float64{2, 1, 0.5}, []int{40, 30, 20}, 10)
	likes := tier(float64(s.AvgLikes), []float64{50, 20, 5}, []int{20, 15, 10}, 5)
	comments := tier(float64(s.AvgComments), []float64{10, 5, 2}, []int{20, 15, 10}, 5)
	shares := tier(float64(s.AvgShares), []float64{10, 5, 2}, []int{20, 15, 10}, 5)
	return clamp(float64(rate + likes + comments + shares))
}

// Consistency combines a cadence base with a bonus for active weeks in the trailing window.
func Consistency(s Signals) int {
	base := tier(s.PostsPerWeek, []float64{3, 1}, []int{70, 45}, 20)
	bonus := 0
	switch {
	case s.ActiveWeeks > 8:
		bonus = 30
	case s.ActiveWeeks > 4:
		bonus = 15
	}
	return clamp(float64(base + bonus))
}

// Strategy rewards pillar variety, hook variety and a moderate hashtag habit.
func Strategy(s Signals) int {
	pillars := ratio(s.PillarCount, 5) * 35
	hooks := ratio(s.HookCount, 4) * 35
	discipline := 10.0
	switch {
	case s.AvgHashtagsPerPost > 5:
		discipline = 5
	case s.AvgHashtagsPerPost > 0:
		discipline = 30
	}
	return clamp(math.Round(pillars + hooks + discipline))
}

// Overall is the weighted sum of the breakdown scores.
func Overall(breakdown []types.CategoryScore) int {
	weights := map[types.Category]float64{
		types.CategoryProfile:     profileWeight,
		types.CategoryContent:     contentWeight,
		types.CategoryEngagement:  engagementWeight,
		types.CategoryConsistency: consistencyWeight,
		types.CategoryStrategy:    strategyWeight,
	}
	total := 0.0
	for _, entry := range breakdown {
		total += float64(entry.Score) * weights[entry.Category]
	}
	return clamp(math.Round(total))
}

// Grade maps an overall score to a letter.
func Grade(score int) string {
	switch {
	case score >= 85:
		return "A"
	case score >= 70:
		return "B"
	case score >= 55:
		return "C"
	case score >= 40:
		return "D"
	default:
		return "F"
	}
}

// GrowthEstimate buckets cadence and engagement rate into a monthly follower growth label.
func GrowthEstimate(postsPerWeek, engagementRate float64) string {
	switch {
	case postsPerWeek >= 4 && engagementRate > 2:
		return "+15-25% / month"
	case postsPerWeek >= 2 && engagementRate > 1:
		return "+8-15% / month"
	case postsPerWeek >= 1:
		return "+3-8% / month"
	default:
		return "Stagnant"
	}
}

// tier returns the value of the first threshold v reaches, or fallback.
func tier(v float64, thresholds []float64, values []int, fallback int) int {
	for i, threshold := range thresholds {
		if v >= threshold {
			return values[i]
		}
	}
	return fallback
}

func ratio(n, full int) float64 {
	if n <= 0 || full <= 0 {
		return 0
	}
	return math.Min(float64(n)/float64(full), 1)
}

func clamp(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	return int(math.Max(0, math.Min(MaxScore, v)))
}
