package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"port": 9090,
		"database_url": "postgres://localhost/audits",
		"redis_url": "redis://localhost:6379/0",
		"cache_ttl": "30m",
		"log_format": "text",
		"top_posts": 5
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "postgres://localhost/audits", cfg.DatabaseURL)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
	assert.Equal(t, 30*time.Minute, cfg.CacheTTLDuration())
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 5, cfg.TopPosts)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(`{ invalid json }`), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{"port", Config{Port: 70000}, "'port'"},
		{"rate limit", Config{RateLimitPerMinute: -1}, "'rate_limit_per_minute'"},
		{"top posts", Config{TopPosts: -2}, "'top_posts'"},
		{"cache ttl", Config{CacheTTL: "six hours"}, "'cache_ttl'"},
		{"log format", Config{LogFormat: "xml"}, "'log_format'"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "config error")
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := Defaults()
	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := &Config{
		Port:     9000,
		LogLevel: "debug",
	}

	merged := cfg.MergeWithDefaults(Defaults())

	assert.Equal(t, 9000, merged.Port)
	assert.Equal(t, "debug", merged.LogLevel)
	assert.Equal(t, "json", merged.LogFormat)
	assert.Equal(t, 60, merged.RateLimitPerMinute)
	assert.Equal(t, "6h", merged.CacheTTL)
	assert.Equal(t, 10, merged.TopPosts)
	assert.Equal(t, 10, merged.TopHashtags)
	assert.Equal(t, "*", merged.CORSOrigin)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := &Config{Port: 9000}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, 9000, merged.Port)
	assert.Empty(t, merged.LogLevel)
	assert.Equal(t, 0, merged.TopPosts)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://env/db")
	t.Setenv("PORT", "7070")
	t.Setenv("AUDIT_CACHE_TTL", "1h")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "120")

	cfg := &Config{Port: 9000, DatabaseURL: "postgres://file/db"}
	require.NoError(t, cfg.FromEnv())

	assert.Equal(t, "postgres://env/db", cfg.DatabaseURL)
	assert.Equal(t, 7070, cfg.Port)
	assert.Equal(t, time.Hour, cfg.CacheTTLDuration())
	assert.Equal(t, 120, cfg.RateLimitPerMinute)
}

func TestFromEnv_InvalidPort(t *testing.T) {
	t.Setenv("PORT", "eighty")

	cfg := &Config{}
	err := cfg.FromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid PORT")
}

func TestLoad_NoFile(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 6*time.Hour, cfg.CacheTTLDuration())
}

func TestLoad_InvalidFileValue(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(tmpFile, []byte(`{"log_format": "yaml"}`), 0644))

	_, err := Load(tmpFile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'log_format'")
}
