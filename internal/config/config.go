// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config represents the service configuration that can be loaded from a JSON file
// and overlaid with environment variables. All fields are optional.
type Config struct {
	// Server
	Port               int    `json:"port,omitempty"`                  // HTTP listen port
	CORSOrigin         string `json:"cors_origin,omitempty"`           // Access-Control-Allow-Origin value
	RateLimitPerMinute int    `json:"rate_limit_per_minute,omitempty"` // Requests per client per minute, 0 uses the default

	// Storage
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL, snapshots are disabled when empty
	RedisURL    string `json:"redis_url,omitempty"`    // Redis URL, the audit cache is disabled when empty
	CacheTTL    string `json:"cache_ttl,omitempty"`    // Audit cache TTL as a Go duration ("6h")

	// Logging
	LogLevel  string `json:"log_level,omitempty"`  // debug, info, warn, error
	LogFormat string `json:"log_format,omitempty"` // json or text

	// Audit
	TopPosts    int `json:"top_posts,omitempty"`    // Posts ranked into topPosts
	TopHashtags int `json:"top_hashtags,omitempty"` // Hashtags reported per audit
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Port:               8080,
		CORSOrigin:         "*",
		RateLimitPerMinute: 60,
		CacheTTL:           "6h",
		LogLevel:           "info",
		LogFormat:          "json",
		TopPosts:           10,
		TopHashtags:        10,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv overlays environment variables onto c. Set variables win over file values.
func (c *Config) FromEnv() error {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.DatabaseURL = v
	}
	if v := os.Getenv("REDIS_URL"); v != "" {
		c.RedisURL = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		c.LogFormat = v
	}
	if v := os.Getenv("AUDIT_CACHE_TTL"); v != "" {
		c.CacheTTL = v
	}
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT: %v", err)
		}
		c.Port = port
	}
	if v := os.Getenv("RATE_LIMIT_PER_MINUTE"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid RATE_LIMIT_PER_MINUTE: %v", err)
		}
		c.RateLimitPerMinute = limit
	}
	return nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.RateLimitPerMinute < 0 {
		return fmt.Errorf("config error: 'rate_limit_per_minute' must be non-negative")
	}
	if c.TopPosts < 0 || c.TopHashtags < 0 {
		return fmt.Errorf("config error: 'top_posts' and 'top_hashtags' must be non-negative")
	}
	if c.CacheTTL != "" {
		if _, err := time.ParseDuration(c.CacheTTL); err != nil {
			return fmt.Errorf("config error: invalid 'cache_ttl': %v", err)
		}
	}
	switch c.LogFormat {
	case "", "json", "text":
	default:
		return fmt.Errorf("config error: 'log_format' must be json or text")
	}
	return nil
}

// CacheTTLDuration returns the parsed cache TTL, or zero when unset or invalid.
func (c *Config) CacheTTLDuration() time.Duration {
	d, err := time.ParseDuration(c.CacheTTL)
	if err != nil {
		return 0
	}
	return d
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.CORSOrigin == "" {
		result.CORSOrigin = defaults.CORSOrigin
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.RedisURL == "" {
		result.RedisURL = defaults.RedisURL
	}
	if result.CacheTTL == "" {
		result.CacheTTL = defaults.CacheTTL
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.LogFormat == "" {
		result.LogFormat = defaults.LogFormat
	}

	// Int fields: use default if zero
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.RateLimitPerMinute == 0 {
		result.RateLimitPerMinute = defaults.RateLimitPerMinute
	}
	if result.TopPosts == 0 {
		result.TopPosts = defaults.TopPosts
	}
	if result.TopHashtags == 0 {
		result.TopHashtags = defaults.TopHashtags
	}

	return result
}

// Load reads the optional config file at path, overlays the environment,
// fills defaults and validates the result.
func Load(path string) (Config, error) {
	cfg := &Config{}
	if path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return Config{}, err
		}
		cfg = loaded
	}
	if err := cfg.FromEnv(); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	merged := cfg.MergeWithDefaults(Defaults())
	if err := merged.Validate(); err != nil {
		return Config{}, err
	}
	return merged, nil
}
