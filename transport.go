package noproxy

import (
	"net/http"
	"net/url"
)

// ProxyFunc adapts the evaluator to the http.Transport.Proxy contract.
// The returned function yields nil for targets the bypass list covers
// and proxyURL for everything else. It never returns an error: a request
// without a usable URL falls back to the proxy, consistent with
// ShouldUseProxy.
func (e *Evaluator) ProxyFunc(proxyURL *url.URL) func(*http.Request) (*url.URL, error) {
	return func(req *http.Request) (*url.URL, error) {
		if proxyURL == nil {
			return nil, nil
		}
		var target string
		if req != nil && req.URL != nil {
			target = req.URL.String()
		}
		if !e.ShouldUseProxy(target) {
			return nil, nil
		}
		return proxyURL, nil
	}
}
