package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEngagement_SinglePost(t *testing.T) {
	stats := Engagement([]Interactions{{Likes: 100, Comments: 10, Shares: 5}}, 1000)

	assert.Equal(t, 100, stats.AvgLikes)
	assert.Equal(t, 10, stats.AvgComments)
	assert.Equal(t, 5, stats.AvgShares)
	assert.InDelta(t, 115.0, stats.MedianTotal, 0.0001)
	assert.InDelta(t, 11.5, stats.EngagementRate, 0.0001)
	assert.Equal(t, 10, stats.ReplyRate)
}

func TestEngagement_MedianResistsOutliers(t *testing.T) {
	posts := []Interactions{
		{Likes: 10}, {Likes: 12}, {Likes: 11}, {Likes: 5000},
	}
	stats := Engagement(posts, 1000)

	assert.Equal(t, 1258, stats.AvgLikes)
	assert.InDelta(t, 11.5, stats.MedianTotal, 0.0001)
	assert.InDelta(t, 1.15, stats.EngagementRate, 0.0001)
}

func TestEngagement_ZeroFollowers(t *testing.T) {
	stats := Engagement([]Interactions{{Likes: 40, Comments: 2}}, 0)
	assert.Equal(t, 0.0, stats.EngagementRate)
}

func TestEngagement_Empty(t *testing.T) {
	assert.Equal(t, EngagementStats{}, Engagement(nil, 100))
}

func TestRate(t *testing.T) {
	tests := []struct {
		name         string
		interactions float64
		followers    int
		expected     float64
	}{
		{"normal", 25, 1000, 2.5},
		{"rounds to 2 decimals", 1, 3, 33.33},
		{"capped", 900, 100, 50},
		{"zero followers", 10, 0, 0},
		{"negative followers", 10, -5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Rate(tt.interactions, tt.followers)
			assert.InDelta(t, tt.expected, result, 0.0001, "Rate(%v, %d) = %v, want %v", tt.interactions, tt.followers, result, tt.expected)
		})
	}
}

func TestMedian(t *testing.T) {
	assert.Equal(t, 0.0, Median(nil))
	assert.Equal(t, 3.0, Median([]float64{5, 1, 3}))
	assert.Equal(t, 2.5, Median([]float64{4, 1, 2, 3}))

	in := []float64{3, 1, 2}
	Median(in)
	assert.Equal(t, []float64{3, 1, 2}, in, "Median must not reorder its input")
}

func TestReplyRateCapped(t *testing.T) {
	stats := Engagement([]Interactions{{Likes: 0, Comments: 50}}, 100)
	assert.Equal(t, 100, stats.ReplyRate)
}
