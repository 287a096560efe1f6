package noproxy

import (
	"net/url"
	"os"
	"strings"

	"golang.org/x/net/idna"
)

// LookupEnvFunc resolves a single environment variable, following the
// os.LookupEnv contract.
type LookupEnvFunc func(key string) (string, bool)

// Config configures an Evaluator.
type Config struct {
	// LookupEnv resolves environment variables when reading the bypass
	// list. If nil, os.LookupEnv is used.
	LookupEnv LookupEnvFunc
}

// Evaluator decides whether an outgoing request should be routed through
// a forward proxy or contacted directly, based on the NO_PROXY / no_proxy
// bypass list. It holds no mutable state and is safe for concurrent use.
type Evaluator struct {
	lookupEnv LookupEnvFunc
}

// NewEvaluator creates a new Evaluator with the given configuration.
// If cfg is nil, default configuration is used.
func NewEvaluator(cfg *Config) *Evaluator {
	if cfg == nil {
		cfg = &Config{}
	}
	lookup := cfg.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	return &Evaluator{lookupEnv: lookup}
}

var defaultEvaluator = NewEvaluator(nil)

// ShouldUseProxy reports whether a request to target should be routed
// through the forward proxy, reading the bypass list from the process
// environment.
func ShouldUseProxy(target string) bool {
	return defaultEvaluator.ShouldUseProxy(target)
}

// ShouldUseProxy reports whether a request to target should be routed
// through the configured forward proxy. It returns false only when the
// bypass list explicitly covers the target; an empty target, an empty
// bypass list, and any malformed input all resolve to true.
//
// target may be empty, a full URL (scheme://host[:port][/path]), or a
// bare host[:port].
func (e *Evaluator) ShouldUseProxy(target string) bool {
	if target == "" {
		return true
	}

	entries := parseBypassList(e.bypassSource())
	if len(entries) == 0 {
		return true
	}

	// A lone "*" disables the proxy for every destination, regardless of
	// whether the target parses as a hostname.
	for _, entry := range entries {
		if entry == "*" {
			return false
		}
	}

	hostname := extractHostname(target)
	for _, entry := range entries {
		if matchesEntry(hostname, entry) {
			return false
		}
	}
	return true
}

// bypassSource reads the raw bypass list, preferring NO_PROXY over
// no_proxy. A variable that is blank after trimming is treated as unset.
func (e *Evaluator) bypassSource() string {
	for _, key := range []string{"NO_PROXY", "no_proxy"} {
		if v, ok := e.lookupEnv(key); ok && strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// parseBypassList splits a raw comma-separated bypass list into
// normalized entries: trimmed, lower-cased, non-empty.
func parseBypassList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var entries []string
	for _, piece := range strings.Split(raw, ",") {
		entry := normalizeHost(piece)
		if entry == "" {
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}

// extractHostname pulls the hostname out of target. It never fails: a
// string that cannot be parsed as a URL is returned whole, lower-cased,
// so that it is still compared literally against bypass entries.
func extractHostname(target string) string {
	raw := target
	if !hasHTTPScheme(raw) {
		// Bare host and host:port inputs parse uniformly once a scheme
		// is prepended.
		raw = "http://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return normalizeHost(target)
	}
	return normalizeHost(u.Hostname())
}

// hasHTTPScheme reports whether s starts with an http:// or https://
// prefix, case-insensitively.
func hasHTTPScheme(s string) bool {
	for _, scheme := range []string{"http://", "https://"} {
		if len(s) >= len(scheme) && strings.EqualFold(s[:len(scheme)], scheme) {
			return true
		}
	}
	return false
}

// normalizeHost lower-cases s and converts internationalized hostnames
// to their punycode form so that Unicode hosts and entries compare
// consistently. Anything idna rejects (wildcards, CIDR entries, raw
// garbage) is kept as the trimmed lower-cased original.
func normalizeHost(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if ascii, err := idna.Lookup.ToASCII(s); err == nil {
		return ascii
	}
	return s
}
