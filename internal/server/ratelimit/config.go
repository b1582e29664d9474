package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// catchAllRoute is the bucket shared by every path no route matches.
const catchAllRoute = "*"

// EndpointConfig is the limit applied to one route. A zero Limit means the
// route gets its own bucket at the default limit.
type EndpointConfig struct {
	Route     string // mux pattern, e.g. "POST /audits" or "GET /snapshots/{id}"
	Limit     int    // requests per Window
	Window    time.Duration
	Burst     int // defaults to Limit
	Unlimited bool
}

// LoadConfig builds the limiter configuration from RATE_LIMIT_* variables.
// defaultPerMinute applies to routes without their own entry.
func LoadConfig(defaultPerMinute int) *Config {
	if !envBool("RATE_LIMIT_ENABLED", true) {
		return &Config{Enabled: false}
	}
	if defaultPerMinute <= 0 {
		defaultPerMinute = 60
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    defaultPerMinute,
		DefaultWindow:   time.Minute,
		CleanupInterval: envDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		Whitelist:       clientSet(os.Getenv("RATE_LIMIT_WHITELIST")),
		Blacklist:       clientSet(os.Getenv("RATE_LIMIT_BLACKLIST")),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs lists the server's routes. Transforms get tighter
// limits; reads use the default limit.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		{Route: "POST /audits", Limit: 30, Window: time.Minute, Burst: 10},
		{Route: "POST /compare", Limit: 15, Window: time.Minute, Burst: 5},
		{Route: "GET /snapshots"},
		{Route: "GET /snapshots/{id}"},
		{Route: "GET /trend"},
	}
}

func envBool(key string, fallback bool) bool {
	if v, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(os.Getenv(key)); err == nil && d > 0 {
		return d
	}
	return fallback
}

// clientSet parses a comma or space separated list of client IDs.
func clientSet(list string) map[string]bool {
	set := make(map[string]bool)
	for _, id := range strings.FieldsFunc(list, func(r rune) bool { return r == ',' || unicode.IsSpace(r) }) {
		set[id] = true
	}
	return set
}
