package ratelimit

import "strings"

// MatchEndpoint resolves the EndpointConfig for a request, or nil when
// only the default budget applies. Exact paths win over prefix entries;
// a config path ending in "/" matches any path below it, so "/export/"
// covers "/export/resume/pdf".
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	// The health check is never limited; probes may hit it at any rate.
	if path == "/health" && method == "GET" {
		return &EndpointConfig{}
	}

	for i := range configs {
		c := &configs[i]
		if c.Path == path && c.Method == method {
			return c
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
