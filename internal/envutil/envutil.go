// Package envutil manipulates KEY=VALUE environment slices without
// touching the process environment.
package envutil

import "strings"

// Get returns the value of key in env.
// Returns the value and true if found, or empty string and false if not.
func Get(env []string, key string) (string, bool) {
	prefix := key + "="
	for _, e := range env {
		if strings.HasPrefix(e, prefix) {
			return e[len(prefix):], true
		}
	}
	return "", false
}

// Set sets or replaces an environment variable in an env slice.
// Returns the modified slice. If the key already exists, its value is
// updated in place. Otherwise, the new entry is appended.
func Set(env []string, key, value string) []string {
	prefix := key + "="
	for i, e := range env {
		if strings.HasPrefix(e, prefix) {
			env[i] = prefix + value
			return env
		}
	}
	return append(env, prefix+value)
}

// SetPair sets both the upper-case and lower-case spellings of key.
// Proxy variables are conventionally consulted in both forms, so the two
// must agree.
func SetPair(env []string, key, value string) []string {
	env = Set(env, strings.ToUpper(key), value)
	return Set(env, strings.ToLower(key), value)
}

// First returns the value of the first listed key whose value is
// non-blank after trimming, or empty string if none qualifies.
func First(env []string, keys ...string) string {
	for _, key := range keys {
		if v, ok := Get(env, key); ok && strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
