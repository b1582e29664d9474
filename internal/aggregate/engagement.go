// Package aggregate computes profile-level statistics over enriched posts.
package aggregate

import (
	"math"
	"sort"
)

// maxEngagementRate caps the engagement rate; anything above it is a follower-count artifact.
const maxEngagementRate = 50.0

// Interactions holds the interaction counts of one post.
type Interactions struct {
	Likes    int
	Comments int
	Shares   int
	Quotes   int
}

// Total is the sum of every available interaction count.
func (i Interactions) Total() int {
	return i.Likes + i.Comments + i.Shares + i.Quotes
}

// EngagementStats summarizes interactions across a profile's posts.
type EngagementStats struct {
	AvgLikes       int
	AvgComments    int
	AvgShares      int
	MedianTotal    float64
	EngagementRate float64
	ReplyRate      int
}

// Engagement computes per-metric means and the median-based engagement rate.
// Callers guarantee at least one post; an empty slice yields zero stats.
func Engagement(posts []Interactions, followers int) EngagementStats {
	if len(posts) == 0 {
		return EngagementStats{}
	}

	var likes, comments, shares int
	totals := make([]float64, 0, len(posts))
	for _, p := range posts {
		likes += p.Likes
		comments += p.Comments
		shares += p.Shares
		totals = append(totals, float64(p.Total()))
	}

	n := float64(len(posts))
	meanLikes := float64(likes) / n
	meanComments := float64(comments) / n

	stats := EngagementStats{
		AvgLikes:    int(math.Round(meanLikes)),
		AvgComments: int(math.Round(meanComments)),
		AvgShares:   int(math.Round(float64(shares) / n)),
		MedianTotal: Median(totals),
		ReplyRate:   int(math.Min(100, math.Round(meanComments/(meanLikes+1)*100))),
	}
	stats.EngagementRate = Rate(stats.MedianTotal, followers)
	return stats
}

// Rate expresses interactions as a capped percentage of followers, rounded to 2 decimals.
func Rate(interactions float64, followers int) float64 {
	if followers <= 0 {
		return 0
	}
	rate := interactions / float64(followers) * 100
	return Round(math.Min(rate, maxEngagementRate), 2)
}

// Median returns the median of values, or 0 for an empty slice.
func Median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// Round rounds v to the given number of decimals.
func Round(v float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(v*pow) / pow
}
