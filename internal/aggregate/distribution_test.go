package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistribution_SumsTo100(t *testing.T) {
	tests := []struct {
		name   string
		labels []string
	}{
		{"thirds", []string{"a", "b", "c"}},
		{"sevenths", []string{"a", "b", "c", "d", "e", "f", "g"}},
		{"skewed", []string{"a", "a", "a", "a", "a", "a", "b", "c", "d", "e", "f"}},
		{"single", []string{"a"}},
		{"eleven buckets", []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shares := Distribution(tt.labels, nil)
			total := 0
			for _, s := range shares {
				total += s.Percentage
			}
			assert.Equal(t, 100, total)
		})
	}
}

func TestDistribution_Ordering(t *testing.T) {
	order := []string{"x", "y", "z"}
	shares := Distribution([]string{"z", "y", "z", "y", "x"}, order)

	require.Len(t, shares, 3)
	// y and z tie on count; y comes first in the enumeration
	assert.Equal(t, "y", shares[0].Key)
	assert.Equal(t, "z", shares[1].Key)
	assert.Equal(t, "x", shares[2].Key)
	assert.Equal(t, 2, shares[0].Count)
	assert.Equal(t, 40, shares[0].Percentage)
	assert.Equal(t, 40, shares[1].Percentage)
	assert.Equal(t, 20, shares[2].Percentage)
}

func TestDistribution_UnknownLabelsSortLast(t *testing.T) {
	shares := Distribution([]string{"other", "x"}, []string{"x"})

	require.Len(t, shares, 2)
	assert.Equal(t, "x", shares[0].Key)
	assert.Equal(t, "other", shares[1].Key)
}

func TestDistribution_Empty(t *testing.T) {
	assert.Nil(t, Distribution[string](nil, nil))
}

func TestHashtags(t *testing.T) {
	texts := []string{
		"Shipping #Go and #golang today #go",
		"More #golang",
		"No tags here",
	}
	stats := Hashtags(texts, 10)

	assert.Equal(t, []string{"#go", "#golang"}, stats.Top)
	assert.InDelta(t, 1.3, stats.AvgPerPost, 0.0001)
}

func TestHashtags_TopN(t *testing.T) {
	stats := Hashtags([]string{"#a #b #c #d"}, 2)
	assert.Equal(t, []string{"#a", "#b"}, stats.Top)
	assert.InDelta(t, 4.0, stats.AvgPerPost, 0.0001)
}

func TestHashtags_None(t *testing.T) {
	stats := Hashtags([]string{"plain"}, 10)
	assert.Empty(t, stats.Top)
	assert.NotNil(t, stats.Top)
	assert.Equal(t, 0.0, stats.AvgPerPost)
}
