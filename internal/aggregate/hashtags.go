package aggregate

import (
	"regexp"
	"sort"
	"strings"
)

var hashtagRe = regexp.MustCompile(`#\w+`)

// HashtagStats summarizes hashtag usage across posts.
type HashtagStats struct {
	AvgPerPost float64
	Top        []string
}

// Hashtags extracts #tags from texts and ranks them by frequency; ties keep
// first-appearance order. Tags are lowercased.
func Hashtags(texts []string, top int) HashtagStats {
	if len(texts) == 0 {
		return HashtagStats{Top: []string{}}
	}

	counts := make(map[string]int)
	var order []string
	total := 0
	for _, text := range texts {
		for _, tag := range hashtagRe.FindAllString(text, -1) {
			tag = strings.ToLower(tag)
			if counts[tag] == 0 {
				order = append(order, tag)
			}
			counts[tag]++
			total++
		}
	}

	sort.SliceStable(order, func(i, j int) bool { return counts[order[i]] > counts[order[j]] })
	if len(order) > top {
		order = order[:top]
	}
	if order == nil {
		order = []string{}
	}
	return HashtagStats{
		AvgPerPost: Round(float64(total)/float64(len(texts)), 1),
		Top:        order,
	}
}
