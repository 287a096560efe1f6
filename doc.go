// Package noproxy decides whether an outgoing request should be routed
// through a configured forward proxy or contacted directly, based on a
// NO_PROXY-style bypass list.
//
// The bypass list is a comma-separated set of patterns: exact hostnames
// or IP literals ("localhost", "10.1.2.3"), domain suffixes
// ("example.com" or ".example.com", both matching "foo.example.com"),
// IPv4 CIDR ranges ("10.0.0.0/8"), and the global wildcard "*". Matching
// is case-insensitive, and malformed input always resolves toward using
// the proxy rather than silently bypassing it.
//
// Basic usage:
//
//	if noproxy.ShouldUseProxy("https://api.openai.com/v1/chat") {
//	    // route through the forward proxy
//	}
//
// The package also generates paired proxy environment variables for
// child processes and adapts the decision to the http.Transport.Proxy
// callback shape.
package noproxy
