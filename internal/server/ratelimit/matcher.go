package ratelimit

import "strings"

// unlimited is returned for routes that are never throttled.
var unlimited = &EndpointConfig{}

// MatchEndpoint finds the configuration for a request. Exact paths win over
// prefixes ending in "/". Health and metrics scrapes are unlimited. Returns
// nil when nothing matches.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	if method == "GET" && (path == "/health" || path == "/metrics") {
		return unlimited
	}

	for i := range configs {
		if configs[i].Path == path && configs[i].Method == method {
			return &configs[i]
		}
	}

	for i := range configs {
		c := &configs[i]
		if c.Method == method && strings.HasSuffix(c.Path, "/") && strings.HasPrefix(path, c.Path) {
			return c
		}
	}

	return nil
}
