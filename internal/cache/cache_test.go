package cache

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/growth-audit/internal/types"
)

func setupTestCache(t *testing.T, ttl time.Duration) (*AuditCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return New(client, ttl), mr
}

func liveAudit() *types.ProfileAudit {
	return &types.ProfileAudit{
		Platform:     types.PlatformTwitter,
		Profile:      types.ProfileSummary{Name: "Grace", URL: "https://x.com/grace"},
		OverallScore: 66,
		OverallGrade: "C",
		Diagnostics:  types.Diagnostics{Source: types.SourceLive, PostsAnalyzed: 4},
	}
}

func TestAuditCache_SetGet(t *testing.T) {
	c, mr := setupTestCache(t, time.Hour)
	ctx := context.Background()
	key := Key(types.PlatformTwitter, "https://x.com/grace", "abc")

	require.NoError(t, c.Set(ctx, key, liveAudit()))

	got, ok, err := c.Get(ctx, key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Grace", got.Profile.Name)
	assert.Equal(t, 66, got.OverallScore)
	assert.Equal(t, time.Hour, mr.TTL(key))
}

func TestAuditCache_Miss(t *testing.T) {
	c, _ := setupTestCache(t, 0)

	got, ok, err := c.Get(context.Background(), "growth-audit:audit:linkedin:none:none")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, got)
	assert.Equal(t, DefaultTTL, c.TTL())
}

func TestAuditCache_Expiry(t *testing.T) {
	c, mr := setupTestCache(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", liveAudit()))
	mr.FastForward(2 * time.Minute)

	_, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAuditCache_SkipsPlaceholder(t *testing.T) {
	c, mr := setupTestCache(t, time.Minute)
	audit := liveAudit()
	audit.Diagnostics.Source = types.SourcePlaceholder

	require.NoError(t, c.Set(context.Background(), "k", audit))
	assert.False(t, mr.Exists("k"))
}

func TestAuditCache_CorruptEntry(t *testing.T) {
	c, mr := setupTestCache(t, time.Minute)
	require.NoError(t, mr.Set("k", "{not json"))

	_, ok, err := c.Get(context.Background(), "k")
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestFingerprint(t *testing.T) {
	profile := json.RawMessage(`{"name":"Grace"}`)
	a := Fingerprint(profile, []json.RawMessage{json.RawMessage(`{"postText":"a"}`), json.RawMessage(`{"postText":"b"}`)})
	b := Fingerprint(profile, []json.RawMessage{json.RawMessage(`{"postText":"a"}`), json.RawMessage(`{"postText":"b"}`)})
	c := Fingerprint(profile, []json.RawMessage{json.RawMessage(`{"postText":"ab"}`)})

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64)
}

func TestKey(t *testing.T) {
	assert.Equal(t, "growth-audit:audit:linkedin:https://linkedin.com/in/ada:f00", Key(types.PlatformLinkedIn, "https://linkedin.com/in/ada", "f00"))
}

func TestConnect_BadURL(t *testing.T) {
	_, err := Connect(context.Background(), "not-a-url://")
	assert.Error(t, err)
}

func TestConnect_Miniredis(t *testing.T) {
	mr := miniredis.RunT(t)
	client, err := Connect(context.Background(), "redis://"+mr.Addr())
	require.NoError(t, err)
	defer client.Close()
}
