package aggregate

import (
	"time"

	"github.com/jonathan/growth-audit/internal/types"
)

const week = 7 * 24 * time.Hour

// Schedule buckets timestamps into a Monday-first, UTC day-by-hour grid.
// Zero times are skipped.
func Schedule(times []time.Time) types.Schedule {
	var grid types.Schedule
	for _, t := range times {
		if t.IsZero() {
			continue
		}
		t = t.UTC()
		day := (int(t.Weekday()) + 6) % 7
		grid[day][t.Hour()]++
	}
	return grid
}

// WeeklyFrequency counts posts per week over the trailing window ending at now,
// oldest week first. Future and out-of-window timestamps are ignored.
func WeeklyFrequency(times []time.Time, now time.Time) []int {
	freq := make([]int, types.FrequencyWeeks)
	for _, t := range times {
		if t.IsZero() {
			continue
		}
		elapsed := now.Sub(t)
		if elapsed < 0 {
			continue
		}
		weeksAgo := int(elapsed / week)
		if weeksAgo < types.FrequencyWeeks {
			freq[types.FrequencyWeeks-1-weeksAgo]++
		}
	}
	return freq
}

// ActiveWeeks counts weeks with at least one post.
func ActiveWeeks(freq []int) int {
	active := 0
	for _, n := range freq {
		if n > 0 {
			active++
		}
	}
	return active
}

// PostsPerWeek divides timestamped posts by the number of weeks they span,
// counted the way WeeklyFrequency buckets them (the oldest post's week up to
// and including the current one), rounded to 1 decimal. Without any timestamp
// the cadence cannot be inferred and the result is 0.
func PostsPerWeek(times []time.Time, now time.Time) float64 {
	var oldest time.Time
	count := 0
	for _, t := range times {
		if t.IsZero() || t.After(now) {
			continue
		}
		count++
		if oldest.IsZero() || t.Before(oldest) {
			oldest = t
		}
	}
	if count == 0 {
		return 0
	}
	weeks := int(now.Sub(oldest)/week) + 1
	return Round(float64(count)/float64(weeks), 1)
}
