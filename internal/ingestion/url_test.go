package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/growth-audit/internal/types"
)

func TestDetectPlatform(t *testing.T) {
	tests := []struct {
		url      string
		expected types.Platform
	}{
		{"https://www.linkedin.com/in/ada", types.PlatformLinkedIn},
		{"linkedin.com/in/ada", types.PlatformLinkedIn},
		{"https://uk.linkedin.com/in/ada", types.PlatformLinkedIn},
		{"https://x.com/grace", types.PlatformTwitter},
		{"https://twitter.com/grace", types.PlatformTwitter},
		{"https://mobile.twitter.com/grace", types.PlatformTwitter},
		{"https://example.com/ada", ""},
		{"https://notlinkedin.com/in/ada", ""},
		{"", ""},
		{"://", ""},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectPlatform(tt.url))
		})
	}
}

func TestCanonicalProfileURL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"linkedin canonical", "https://linkedin.com/in/ada", "https://linkedin.com/in/ada"},
		{"linkedin www and slash", "https://www.linkedin.com/in/ada/", "https://linkedin.com/in/ada"},
		{"linkedin query", "http://www.linkedin.com/in/ada?trk=feed", "https://linkedin.com/in/ada"},
		{"linkedin no scheme", "  linkedin.com/in/ada/details/experience ", "https://linkedin.com/in/ada"},
		{"linkedin company page", "https://www.linkedin.com/company/acme", "https://www.linkedin.com/company/acme"},
		{"twitter host", "https://twitter.com/grace", "https://x.com/grace"},
		{"x with at sign", "x.com/@grace/", "https://x.com/grace"},
		{"x status", "https://x.com/grace/status/1", "https://x.com/grace"},
		{"x root", "https://x.com/", "https://x.com/"},
		{"unknown host", "https://example.com/ada", "https://example.com/ada"},
		{"not a url", "x", "x"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CanonicalProfileURL(tt.input))
		})
	}
}
