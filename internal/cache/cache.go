// Package cache memoizes audits in Redis, keyed by platform, profile and a
// fingerprint of the raw scrape so changed input never hits a stale entry.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jonathan/growth-audit/internal/types"
)

const (
	keyPrefix = "growth-audit:audit"

	// DefaultTTL is used when no TTL is configured.
	DefaultTTL = 6 * time.Hour
)

// AuditCache stores transformed audits in Redis.
type AuditCache struct {
	client goredis.UniversalClient
	ttl    time.Duration
}

// Connect creates a single-node Redis client from a URL and pings it.
func Connect(ctx context.Context, redisURL string) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}
	client := goredis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return client, nil
}

// New creates a cache backed by client. A non-positive ttl falls back to DefaultTTL.
func New(client goredis.UniversalClient, ttl time.Duration) *AuditCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &AuditCache{client: client, ttl: ttl}
}

// Fingerprint is the SHA-256 of the raw profile and post records.
func Fingerprint(profile json.RawMessage, posts []json.RawMessage) string {
	h := sha256.New()
	h.Write(profile)
	for _, p := range posts {
		h.Write([]byte{0})
		h.Write(p)
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Key builds the cache key for one audit input.
func Key(platform types.Platform, profileRef, fingerprint string) string {
	return fmt.Sprintf("%s:%s:%s:%s", keyPrefix, platform, profileRef, fingerprint)
}

// Get returns the cached audit for key. A miss returns nil, false, nil.
func (c *AuditCache) Get(ctx context.Context, key string) (*types.ProfileAudit, bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cached audit: %w", err)
	}

	var audit types.ProfileAudit
	if err := json.Unmarshal(data, &audit); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached audit: %w", err)
	}
	return &audit, true, nil
}

// Set stores audit under key. Placeholder audits are never cached.
func (c *AuditCache) Set(ctx context.Context, key string, audit *types.ProfileAudit) error {
	if audit.Diagnostics.Source == types.SourcePlaceholder {
		return nil
	}
	data, err := json.Marshal(audit)
	if err != nil {
		return fmt.Errorf("failed to encode audit: %w", err)
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache audit: %w", err)
	}
	return nil
}

// TTL returns the entry lifetime.
func (c *AuditCache) TTL() time.Duration {
	return c.ttl
}
