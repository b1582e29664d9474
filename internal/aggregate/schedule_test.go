package aggregate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/growth-audit/internal/types"
)

var fixedNow = time.Date(2025, time.March, 14, 12, 0, 0, 0, time.UTC) // a Friday

func TestSchedule_MondayFirstUTC(t *testing.T) {
	monday9 := time.Date(2025, time.March, 10, 9, 30, 0, 0, time.UTC)
	sunday23 := time.Date(2025, time.March, 16, 23, 5, 0, 0, time.UTC)
	// 01:00 in UTC+2 on Tuesday is 23:00 Monday UTC
	offset := time.Date(2025, time.March, 11, 1, 0, 0, 0, time.FixedZone("EET", 2*3600))

	grid := Schedule([]time.Time{monday9, monday9, sunday23, offset, {}})

	assert.Equal(t, 2, grid[0][9])
	assert.Equal(t, 1, grid[6][23])
	assert.Equal(t, 1, grid[0][23])
	assert.Equal(t, 4, sum(grid))
}

func TestSchedule_ShapeWithoutTimestamps(t *testing.T) {
	grid := Schedule([]time.Time{{}, {}})

	require.Len(t, grid, types.ScheduleDays)
	for _, row := range grid {
		require.Len(t, row, types.ScheduleHours)
		for _, n := range row {
			assert.Equal(t, 0, n)
		}
	}
}

func TestWeeklyFrequency_EvenlySpread(t *testing.T) {
	var times []time.Time
	for k := 0; k < 12; k++ {
		times = append(times, fixedNow.Add(-time.Duration(k)*week-time.Hour))
	}

	freq := WeeklyFrequency(times, fixedNow)

	assert.Equal(t, []int{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1}, freq)
	assert.Equal(t, 12, ActiveWeeks(freq))
	assert.InDelta(t, 1.0, PostsPerWeek(times, fixedNow), 0.0001)
}

func TestWeeklyFrequency_ExactWeekOffsets(t *testing.T) {
	var times []time.Time
	for k := 0; k < 12; k++ {
		times = append(times, fixedNow.Add(-time.Duration(k)*week))
	}

	freq := WeeklyFrequency(times, fixedNow)

	assert.Equal(t, []int{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1}, freq)
	assert.InDelta(t, 1.0, PostsPerWeek(times, fixedNow), 0.0001)
	assert.InDelta(t, 1.0, PostsPerWeek(shift(times, -3*24*time.Hour), fixedNow), 0.0001)
}

func shift(times []time.Time, d time.Duration) []time.Time {
	out := make([]time.Time, len(times))
	for i, t := range times {
		out[i] = t.Add(d)
	}
	return out
}

func TestWeeklyFrequency_OrderingAndWindow(t *testing.T) {
	times := []time.Time{
		fixedNow.Add(-time.Hour),          // this week, newest slot
		fixedNow.Add(-11*week - time.Hour), // oldest slot
		fixedNow.Add(-12 * week),           // outside the window
		fixedNow.Add(time.Hour),            // future
		{},
	}

	freq := WeeklyFrequency(times, fixedNow)

	require.Len(t, freq, types.FrequencyWeeks)
	assert.Equal(t, 1, freq[11])
	assert.Equal(t, 1, freq[0])
	assert.Equal(t, 2, ActiveWeeks(freq))
}

func TestPostsPerWeek(t *testing.T) {
	tests := []struct {
		name     string
		times    []time.Time
		expected float64
	}{
		{"no timestamps", []time.Time{{}, {}}, 0},
		{"empty", nil, 0},
		{"burst within one week", []time.Time{fixedNow.Add(-time.Hour), fixedNow.Add(-2 * time.Hour), fixedNow.Add(-3 * time.Hour)}, 3},
		{"two posts over four weeks", []time.Time{fixedNow.Add(-time.Hour), fixedNow.Add(-4*week + time.Hour)}, 0.5},
		{"oldest exactly one week ago", []time.Time{fixedNow, fixedNow.Add(-week)}, 1},
		{"post at now", []time.Time{fixedNow}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := PostsPerWeek(tt.times, fixedNow)
			assert.InDelta(t, tt.expected, result, 0.0001, "PostsPerWeek = %v, want %v", result, tt.expected)
		})
	}
}

func sum(grid types.Schedule) int {
	total := 0
	for _, row := range grid {
		for _, n := range row {
			total += n
		}
	}
	return total
}
