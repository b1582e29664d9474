package ingestion

import (
	"net/url"
	"strings"

	"github.com/jonathan/growth-audit/internal/types"
)

const (
	linkedInBase = "https://linkedin.com/in/"
	xBase        = "https://x.com/"
)

// DetectPlatform identifies the social platform a profile URL points at.
// Unrecognized or unparseable URLs return the empty platform.
func DetectPlatform(urlStr string) types.Platform {
	parsed, ok := parseProfileURL(urlStr)
	if !ok {
		return ""
	}

	switch host := strings.TrimPrefix(strings.ToLower(parsed.Host), "www."); {
	case host == "linkedin.com" || strings.HasSuffix(host, ".linkedin.com"):
		return types.PlatformLinkedIn
	case host == "x.com" || host == "twitter.com" || host == "mobile.twitter.com":
		return types.PlatformTwitter
	}
	return ""
}

// CanonicalProfileURL rewrites a LinkedIn or X profile URL to the form
// audits store: https scheme, bare host, no query or trailing slash, and
// twitter.com folded into x.com. Other input is returned trimmed.
func CanonicalProfileURL(urlStr string) string {
	urlStr = strings.TrimSpace(urlStr)
	parsed, ok := parseProfileURL(urlStr)
	if !ok {
		return urlStr
	}

	segments := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	switch DetectPlatform(urlStr) {
	case types.PlatformLinkedIn:
		if len(segments) >= 2 && segments[0] == "in" && segments[1] != "" {
			return linkedInBase + segments[1]
		}
	case types.PlatformTwitter:
		if len(segments) >= 1 && segments[0] != "" {
			return xBase + strings.TrimPrefix(segments[0], "@")
		}
	}
	return urlStr
}

func parseProfileURL(urlStr string) (*url.URL, bool) {
	urlStr = strings.TrimSpace(urlStr)
	if urlStr == "" {
		return nil, false
	}
	if !strings.Contains(urlStr, "://") {
		urlStr = "https://" + urlStr
	}
	parsed, err := url.Parse(urlStr)
	if err != nil || parsed.Host == "" {
		return nil, false
	}
	return parsed, true
}
