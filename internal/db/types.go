package db

import (
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/growth-audit/internal/types"
)

// DefaultListLimit caps snapshot listings when no limit is given.
const DefaultListLimit = 50

// trendLimit bounds a trend query to about ten years of weekly audits.
const trendLimit = 520

// ErrPlaceholderAudit is returned when a placeholder audit is offered for storage.
var ErrPlaceholderAudit = errors.New("placeholder audits are not stored")

// Snapshot is one stored audit of a profile at a point in time.
type Snapshot struct {
	ID           uuid.UUID           `json:"id"`
	ProfileURL   string              `json:"profile_url"`
	Platform     types.Platform      `json:"platform"`
	CapturedAt   time.Time           `json:"captured_at"`
	ISOYear      int                 `json:"iso_year"`
	WeekNumber   int                 `json:"week_number"`
	OverallScore int                 `json:"overall_score"`
	Grade        string              `json:"grade"`
	Audit        *types.ProfileAudit `json:"audit,omitempty"`
}

// SnapshotFilters selects snapshots of one profile.
type SnapshotFilters struct {
	ProfileURL string
	Platform   types.Platform
	Limit      int
}

// TrendPoint is one entry of a profile's score history.
type TrendPoint struct {
	SnapshotID   uuid.UUID `json:"snapshot_id"`
	CapturedAt   time.Time `json:"captured_at"`
	ISOYear      int       `json:"iso_year"`
	WeekNumber   int       `json:"week_number"`
	OverallScore int       `json:"overall_score"`
	Grade        string    `json:"grade"`
	Delta        int       `json:"delta"`
}

// Comparison is a stored gap analysis between two audits.
type Comparison struct {
	ID              uuid.UUID          `json:"id"`
	YourSnapshotID  *uuid.UUID         `json:"your_snapshot_id,omitempty"`
	TheirSnapshotID *uuid.UUID         `json:"their_snapshot_id,omitempty"`
	YourScore       int                `json:"your_score"`
	TheirScore      int                `json:"their_score"`
	Gap             *types.GapAnalysis `json:"gap"`
	CreatedAt       time.Time          `json:"created_at"`
}

// NewSnapshot prepares a snapshot of audit captured at capturedAt.
func NewSnapshot(audit *types.ProfileAudit, capturedAt time.Time) (*Snapshot, error) {
	if audit.Diagnostics.Source == types.SourcePlaceholder {
		return nil, ErrPlaceholderAudit
	}
	capturedAt = capturedAt.UTC()
	year, week := capturedAt.ISOWeek()
	return &Snapshot{
		ID:           uuid.New(),
		ProfileURL:   audit.Profile.URL,
		Platform:     audit.Platform,
		CapturedAt:   capturedAt,
		ISOYear:      year,
		WeekNumber:   week,
		OverallScore: audit.OverallScore,
		Grade:        audit.OverallGrade,
		Audit:        audit,
	}, nil
}

// BuildTrend turns snapshots into a score series, oldest first, each point
// carrying its change against the previous one.
func BuildTrend(snapshots []Snapshot) []TrendPoint {
	ordered := make([]Snapshot, len(snapshots))
	copy(ordered, snapshots)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].CapturedAt.Before(ordered[j].CapturedAt) })

	points := make([]TrendPoint, len(ordered))
	for i, s := range ordered {
		points[i] = TrendPoint{
			SnapshotID:   s.ID,
			CapturedAt:   s.CapturedAt,
			ISOYear:      s.ISOYear,
			WeekNumber:   s.WeekNumber,
			OverallScore: s.OverallScore,
			Grade:        s.Grade,
		}
		if i > 0 {
			points[i].Delta = s.OverallScore - ordered[i-1].OverallScore
		}
	}
	return points
}
