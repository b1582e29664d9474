package ratelimit

import "strings"

// unlimitedRoutes are never throttled so health checks and scrapers keep working
// under load.
var unlimitedRoutes = []EndpointConfig{
	{Route: "GET /health", Unlimited: true},
	{Route: "GET /metrics", Unlimited: true},
}

// MatchEndpoint finds the configuration whose route matches method and path.
// Routes use the mux pattern form "METHOD /path/{param}": a {param} segment
// matches any single path segment and a trailing {rest...} matches the
// remainder. Returns nil when nothing matches.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	for _, group := range [][]EndpointConfig{unlimitedRoutes, configs} {
		for i := range group {
			if routeMatches(group[i].Route, method, path) {
				return &group[i]
			}
		}
	}
	return nil
}

func routeMatches(route, method, path string) bool {
	routeMethod, routePath, ok := strings.Cut(route, " ")
	if !ok || routeMethod != method {
		return false
	}

	want := strings.Split(strings.Trim(routePath, "/"), "/")
	got := strings.Split(strings.Trim(path, "/"), "/")
	for i, seg := range want {
		if strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "...}") {
			return i < len(got)
		}
		if i >= len(got) {
			return false
		}
		if strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}") {
			if got[i] == "" {
				return false
			}
			continue
		}
		if seg != got[i] {
			return false
		}
	}
	return len(got) == len(want)
}
