package observability

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/growth-audit/internal/transform"
	"github.com/jonathan/growth-audit/internal/types"
)

var _ transform.Recorder = (*Metrics)(nil)

func TestMetrics_Transform(t *testing.T) {
	m := NewMetrics()

	m.ObserveTransform(types.PlatformLinkedIn, transform.OutcomeOK, 3*time.Millisecond)
	m.ObserveTransform(types.PlatformLinkedIn, transform.OutcomeOK, time.Millisecond)
	m.ObserveTransform(types.PlatformTwitter, transform.OutcomeInsufficient, time.Millisecond)
	m.AddSkipped(types.PlatformLinkedIn, 3)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.TransformsTotal.WithLabelValues("linkedin", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.TransformsTotal.WithLabelValues("twitter", "insufficient_data")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.SkippedRecords.WithLabelValues("linkedin")))
}

func TestMetrics_CacheAndRequests(t *testing.T) {
	m := NewMetrics()

	m.ObserveCache(CacheHit)
	m.ObserveCache(CacheMiss)
	m.ObserveCache(CacheMiss)
	m.ObserveRequest(http.MethodPost, "/audits", http.StatusOK, 10*time.Millisecond)
	m.ObserveScore(types.PlatformTwitter, 72)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheRequests.WithLabelValues("hit")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.CacheRequests.WithLabelValues("miss")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("POST", "/audits", "200")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.OverallScores))
}

func TestMetrics_Handler(t *testing.T) {
	m := NewMetrics()
	m.ObserveTransform(types.PlatformLinkedIn, transform.OutcomeOK, time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `growth_audit_transforms_total{outcome="ok",platform="linkedin"} 1`)
}

func TestMetrics_IndependentRegistries(t *testing.T) {
	a, b := NewMetrics(), NewMetrics()
	a.AddSkipped(types.PlatformTwitter, 1)

	assert.Equal(t, 0.0, testutil.ToFloat64(b.SkippedRecords.WithLabelValues("twitter")))
	assert.NotSame(t, a.Registry(), b.Registry())
}
