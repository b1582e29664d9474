package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/growth-audit/internal/types"
)

// SaveSnapshot stores audit as a snapshot captured at capturedAt.
// Placeholder audits are rejected with ErrPlaceholderAudit.
func (db *DB) SaveSnapshot(ctx context.Context, audit *types.ProfileAudit, capturedAt time.Time) (*Snapshot, error) {
	snap, err := NewSnapshot(audit, capturedAt)
	if err != nil {
		return nil, err
	}

	auditJSON, err := json.Marshal(audit)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal audit: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO audit_snapshots
		 (id, profile_url, platform, captured_at, iso_year, week_number, overall_score, grade, audit)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		snap.ID, snap.ProfileURL, string(snap.Platform), snap.CapturedAt, snap.ISOYear, snap.WeekNumber,
		snap.OverallScore, snap.Grade, auditJSON,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to save snapshot: %w", err)
	}
	return snap, nil
}

// GetSnapshot retrieves a snapshot with its audit by ID
func (db *DB) GetSnapshot(ctx context.Context, id uuid.UUID) (*Snapshot, error) {
	var snap Snapshot
	var platform string
	var auditJSON []byte

	err := db.pool.QueryRow(ctx,
		`SELECT id, profile_url, platform, captured_at, iso_year, week_number, overall_score, grade, audit
		 FROM audit_snapshots WHERE id = $1`,
		id,
	).Scan(&snap.ID, &snap.ProfileURL, &platform, &snap.CapturedAt, &snap.ISOYear, &snap.WeekNumber,
		&snap.OverallScore, &snap.Grade, &auditJSON)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}

	snap.Platform = types.Platform(platform)
	var audit types.ProfileAudit
	if err := json.Unmarshal(auditJSON, &audit); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot audit: %w", err)
	}
	snap.Audit = &audit
	return &snap, nil
}

// ListSnapshots retrieves a profile's snapshots, newest first, without their
// audit bodies.
func (db *DB) ListSnapshots(ctx context.Context, filters SnapshotFilters) ([]Snapshot, error) {
	if filters.Limit <= 0 {
		filters.Limit = DefaultListLimit
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, profile_url, platform, captured_at, iso_year, week_number, overall_score, grade
		 FROM audit_snapshots
		 WHERE profile_url = $1 AND platform = $2
		 ORDER BY captured_at DESC LIMIT $3`,
		filters.ProfileURL, string(filters.Platform), filters.Limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	defer rows.Close()

	snapshots := []Snapshot{}
	for rows.Next() {
		var snap Snapshot
		var platform string
		if err := rows.Scan(&snap.ID, &snap.ProfileURL, &platform, &snap.CapturedAt, &snap.ISOYear,
			&snap.WeekNumber, &snap.OverallScore, &snap.Grade); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot: %w", err)
		}
		snap.Platform = types.Platform(platform)
		snapshots = append(snapshots, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate snapshots: %w", err)
	}
	return snapshots, nil
}

// Trend returns the score history of a profile, oldest first.
func (db *DB) Trend(ctx context.Context, profileURL string, platform types.Platform) ([]TrendPoint, error) {
	snapshots, err := db.ListSnapshots(ctx, SnapshotFilters{ProfileURL: profileURL, Platform: platform, Limit: trendLimit})
	if err != nil {
		return nil, err
	}
	return BuildTrend(snapshots), nil
}

// SaveComparison stores a gap analysis. Snapshot IDs are optional.
func (db *DB) SaveComparison(ctx context.Context, yourSnapshot, theirSnapshot *uuid.UUID, gap *types.GapAnalysis) (*Comparison, error) {
	gapJSON, err := json.Marshal(gap)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal gap analysis: %w", err)
	}

	cmp := &Comparison{
		ID:              uuid.New(),
		YourSnapshotID:  yourSnapshot,
		TheirSnapshotID: theirSnapshot,
		YourScore:       gap.Summary.YourScore,
		TheirScore:      gap.Summary.TheirScore,
		Gap:             gap,
	}
	err = db.pool.QueryRow(ctx,
		`INSERT INTO audit_comparisons (id, your_snapshot_id, their_snapshot_id, your_score, their_score, gap)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at`,
		cmp.ID, yourSnapshot, theirSnapshot, cmp.YourScore, cmp.TheirScore, gapJSON,
	).Scan(&cmp.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to save comparison: %w", err)
	}
	return cmp, nil
}
