package noproxy

import (
	"strings"

	"golang.org/x/net/http/httpproxy"

	"github.com/zhangyunhao116/noproxy/internal/envutil"
)

// loopbackBypass lists destinations that always bypass the proxy in
// generated environments. Routing loopback traffic through a forward
// proxy is never useful.
var loopbackBypass = []string{"localhost", "127.0.0.1", "::1"}

// EnvConfig configures proxy environment variable generation.
type EnvConfig struct {
	// ProxyURL is the forward proxy URL applied to HTTP_PROXY and
	// HTTPS_PROXY (and their lower-case variants). If empty, the proxy
	// variables are left untouched.
	ProxyURL string

	// ExtraBypass lists additional bypass entries merged into the
	// generated NO_PROXY value.
	ExtraBypass []string
}

// GenerateProxyEnv returns a copy of base with proxy configuration
// applied: the HTTP_PROXY/HTTPS_PROXY pairs set to cfg.ProxyURL, and the
// NO_PROXY/no_proxy pair set to the bypass list already present in base
// merged with the loopback defaults and cfg.ExtraBypass. The result is
// suitable for exec.Cmd.Env. It returns nil for a nil cfg.
func GenerateProxyEnv(cfg *EnvConfig, base []string) []string {
	if cfg == nil {
		return nil
	}

	env := make([]string, len(base))
	copy(env, base)

	if cfg.ProxyURL != "" {
		env = envutil.SetPair(env, "HTTP_PROXY", cfg.ProxyURL)
		env = envutil.SetPair(env, "HTTPS_PROXY", cfg.ProxyURL)
	}

	required := make([]string, 0, len(loopbackBypass)+len(cfg.ExtraBypass))
	required = append(required, loopbackBypass...)
	required = append(required, cfg.ExtraBypass...)

	existing := envutil.First(env, "NO_PROXY", "no_proxy")
	return envutil.SetPair(env, "NO_PROXY", mergeBypass(existing, required))
}

// mergeBypass combines an existing comma-separated bypass list with
// required entries, dropping blanks and case-insensitive duplicates
// while preserving first-seen order and spelling.
func mergeBypass(existing string, required []string) string {
	seen := make(map[string]bool)
	var out []string

	add := func(v string) {
		v = strings.TrimSpace(v)
		if v == "" {
			return
		}
		key := strings.ToLower(v)
		if seen[key] {
			return
		}
		seen[key] = true
		out = append(out, v)
	}

	for _, part := range strings.Split(existing, ",") {
		add(part)
	}
	for _, req := range required {
		add(req)
	}

	return strings.Join(out, ",")
}

// ProxyConfigured reports whether any forward proxy is configured in the
// process environment. Callers can skip bypass evaluation entirely when
// no proxy exists.
func ProxyConfigured() bool {
	cfg := httpproxy.FromEnvironment()
	return cfg.HTTPProxy != "" || cfg.HTTPSProxy != ""
}
