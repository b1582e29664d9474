// Package pipeline provides the high-level orchestration of audits and comparisons:
// transform, validate, cache and persist.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/growth-audit/internal/cache"
	"github.com/jonathan/growth-audit/internal/db"
	"github.com/jonathan/growth-audit/internal/gap"
	"github.com/jonathan/growth-audit/internal/logging"
	"github.com/jonathan/growth-audit/internal/observability"
	"github.com/jonathan/growth-audit/internal/schemas"
	"github.com/jonathan/growth-audit/internal/transform"
	"github.com/jonathan/growth-audit/internal/types"
)

// ErrNoStore is returned by history operations when no snapshot store is configured.
var ErrNoStore = errors.New("snapshot store not configured")

// AuditCache memoizes audits. *cache.AuditCache implements it.
type AuditCache interface {
	Get(ctx context.Context, key string) (*types.ProfileAudit, bool, error)
	Set(ctx context.Context, key string, audit *types.ProfileAudit) error
}

// SnapshotStore persists audits and comparisons. *db.DB implements it.
type SnapshotStore interface {
	SaveSnapshot(ctx context.Context, audit *types.ProfileAudit, capturedAt time.Time) (*db.Snapshot, error)
	GetSnapshot(ctx context.Context, id uuid.UUID) (*db.Snapshot, error)
	ListSnapshots(ctx context.Context, filters db.SnapshotFilters) ([]db.Snapshot, error)
	Trend(ctx context.Context, profileURL string, platform types.Platform) ([]db.TrendPoint, error)
	SaveComparison(ctx context.Context, yourSnapshot, theirSnapshot *uuid.UUID, gap *types.GapAnalysis) (*db.Comparison, error)
	Ping(ctx context.Context) error
}

// Recorder receives audit metrics. *observability.Metrics implements it.
type Recorder interface {
	transform.Recorder
	ObserveScore(platform types.Platform, score int)
	ObserveCache(result string)
}

// Options holds the Auditor's collaborators. Every field is optional.
type Options struct {
	Clock       clockwork.Clock
	Logger      *logrus.Logger
	Recorder    Recorder
	Cache       AuditCache
	Store       SnapshotStore
	TopPosts    int
	TopHashtags int
}

// AuditResult is one audit plus where it came from.
type AuditResult struct {
	Audit      *types.ProfileAudit
	SnapshotID *uuid.UUID
	Cached     bool
}

// CompareResult holds both audits, their gap analysis and the stored comparison ID, if any.
type CompareResult struct {
	types.CompareResponse
	ComparisonID *uuid.UUID `json:"comparisonId,omitempty"`
}

// Auditor runs audits and comparisons.
type Auditor struct {
	clock       clockwork.Clock
	logger      *logrus.Logger
	recorder    Recorder
	cache       AuditCache
	store       SnapshotStore
	topPosts    int
	topHashtags int
}

// NewAuditor creates an Auditor from opts.
func NewAuditor(opts Options) *Auditor {
	a := &Auditor{
		clock:       opts.Clock,
		logger:      opts.Logger,
		recorder:    opts.Recorder,
		cache:       opts.Cache,
		store:       opts.Store,
		topPosts:    opts.TopPosts,
		topHashtags: opts.TopHashtags,
	}
	if a.clock == nil {
		a.clock = clockwork.NewRealClock()
	}
	if a.logger == nil {
		a.logger = logging.Discard()
	}
	return a
}

// HasStore reports whether snapshots are persisted.
func (a *Auditor) HasStore() bool {
	return a.store != nil
}

// Ping checks that the snapshot store is reachable. It returns ErrNoStore
// when none is configured.
func (a *Auditor) Ping(ctx context.Context) error {
	if a.store == nil {
		return ErrNoStore
	}
	if err := a.store.Ping(ctx); err != nil {
		return fmt.Errorf("failed to reach snapshot store: %w", err)
	}
	return nil
}

// Audit transforms one scrape into a validated audit. Live audits are cached
// and stored as snapshots when those collaborators are configured; a cache
// hit is still stored, so every audit run is a point on the trend. Storage
// failures are logged and do not fail the audit.
func (a *Auditor) Audit(ctx context.Context, req types.AuditRequest) (*AuditResult, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid audit request: %w", err)
	}

	adapter, err := transform.New(req.Platform,
		transform.WithClock(a.clock),
		transform.WithLogger(a.logger),
		transform.WithRecorder(a.recorder),
		transform.WithTopPosts(a.topPosts),
		transform.WithTopHashtags(a.topHashtags),
	)
	if err != nil {
		return nil, err
	}

	name, profileURL := transform.Identity(req.Platform, req.Profile)
	key := cache.Key(req.Platform, profileURL, cache.Fingerprint(req.Profile, req.Posts))
	if audit := a.cached(ctx, key); audit != nil {
		result := &AuditResult{Audit: audit, Cached: true}
		a.saveSnapshot(ctx, result)
		return result, nil
	}

	audit, err := adapter.Transform(req.Profile, req.Posts)
	if err != nil {
		var insufficient *transform.InsufficientDataError
		if req.Fallback && errors.As(err, &insufficient) {
			a.logger.WithFields(logrus.Fields{
				"platform": req.Platform,
				"reason":   insufficient.Reason,
			}).Warn("serving placeholder audit")
			return &AuditResult{Audit: transform.Placeholder(req.Platform, name, profileURL)}, nil
		}
		return nil, err
	}

	if err := schemas.ValidateAudit(audit); err != nil {
		return nil, fmt.Errorf("audit failed schema validation: %w", err)
	}
	if a.recorder != nil {
		a.recorder.ObserveScore(audit.Platform, audit.OverallScore)
	}

	if a.cache != nil {
		if err := a.cache.Set(ctx, key, audit); err != nil {
			a.logger.WithError(err).Warn("failed to cache audit")
		}
	}

	result := &AuditResult{Audit: audit}
	a.saveSnapshot(ctx, result)
	return result, nil
}

// saveSnapshot stores result's audit and records the snapshot ID on result.
func (a *Auditor) saveSnapshot(ctx context.Context, result *AuditResult) {
	if a.store == nil {
		return
	}
	snap, err := a.store.SaveSnapshot(ctx, result.Audit, a.clock.Now())
	if err != nil {
		a.logger.WithError(err).WithField("profile_url", result.Audit.Profile.URL).Warn("failed to save snapshot")
		return
	}
	result.SnapshotID = &snap.ID
}

func (a *Auditor) cached(ctx context.Context, key string) *types.ProfileAudit {
	if a.cache == nil {
		return nil
	}
	audit, ok, err := a.cache.Get(ctx, key)
	switch {
	case err != nil:
		a.logger.WithError(err).Warn("audit cache lookup failed")
		a.observeCache(observability.CacheError)
		return nil
	case !ok:
		a.observeCache(observability.CacheMiss)
		return nil
	default:
		a.observeCache(observability.CacheHit)
		return audit
	}
}

func (a *Auditor) observeCache(result string) {
	if a.recorder != nil {
		a.recorder.ObserveCache(result)
	}
}

// Compare audits both scrapes concurrently and analyzes the gap between them.
func (a *Auditor) Compare(ctx context.Context, req types.CompareRequest) (*CompareResult, error) {
	g, gCtx := errgroup.WithContext(ctx)

	var yours, theirs *AuditResult
	var mu sync.Mutex

	g.Go(func() error {
		result, err := a.Audit(gCtx, req.Yours)
		if err != nil {
			return fmt.Errorf("your audit failed: %w", err)
		}
		mu.Lock()
		yours = result
		mu.Unlock()
		return nil
	})

	g.Go(func() error {
		result, err := a.Audit(gCtx, req.Theirs)
		if err != nil {
			return fmt.Errorf("their audit failed: %w", err)
		}
		mu.Lock()
		theirs = result
		mu.Unlock()
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &CompareResult{
		CompareResponse: types.CompareResponse{
			Yours:  yours.Audit,
			Theirs: theirs.Audit,
			Gap:    gap.Analyze(yours.Audit, theirs.Audit),
		},
	}

	if a.store != nil {
		cmp, err := a.store.SaveComparison(ctx, yours.SnapshotID, theirs.SnapshotID, result.Gap)
		if err != nil {
			a.logger.WithError(err).Warn("failed to save comparison")
		} else {
			result.ComparisonID = &cmp.ID
		}
	}
	return result, nil
}

// History lists stored snapshots of a profile, newest first.
func (a *Auditor) History(ctx context.Context, filters db.SnapshotFilters) ([]db.Snapshot, error) {
	if a.store == nil {
		return nil, ErrNoStore
	}
	return a.store.ListSnapshots(ctx, filters)
}

// Snapshot returns one stored snapshot, or nil when it does not exist.
func (a *Auditor) Snapshot(ctx context.Context, id uuid.UUID) (*db.Snapshot, error) {
	if a.store == nil {
		return nil, ErrNoStore
	}
	return a.store.GetSnapshot(ctx, id)
}

// Trend returns a profile's score series, oldest first.
func (a *Auditor) Trend(ctx context.Context, profileURL string, platform types.Platform) ([]db.TrendPoint, error) {
	if a.store == nil {
		return nil, ErrNoStore
	}
	return a.store.Trend(ctx, profileURL, platform)
}
