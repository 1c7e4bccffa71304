package util

import (
	"net/http"
	"net/url"
	"strings"
)

// NewProxyFunc builds the proxy selector for the fetcher's transport.
// Explicit proxy URLs take precedence over the environment; with neither
// configured the standard environment lookup applies. Hosts listed in
// noProxy (comma separated, matched exactly or as a domain suffix) bypass
// the proxy.
func NewProxyFunc(httpProxy, httpsProxy, noProxy string) func(*http.Request) (*url.URL, error) {
	if httpProxy == "" && httpsProxy == "" {
		return http.ProxyFromEnvironment
	}

	bypass := splitNoProxy(noProxy)

	return func(req *http.Request) (*url.URL, error) {
		if hostMatchesAny(req.URL.Hostname(), bypass) {
			return nil, nil
		}
		if req.URL.Scheme == "https" && httpsProxy != "" {
			return url.Parse(httpsProxy)
		}
		if httpProxy != "" {
			return url.Parse(httpProxy)
		}
		return http.ProxyFromEnvironment(req)
	}
}

// splitNoProxy parses a comma-separated NO_PROXY style host list
func splitNoProxy(noProxy string) []string {
	var hosts []string
	for _, entry := range strings.Split(noProxy, ",") {
		entry = strings.ToLower(strings.TrimSpace(entry))
		if entry != "" {
			hosts = append(hosts, strings.TrimPrefix(entry, "."))
		}
	}
	return hosts
}

// hostMatchesAny reports whether host equals an entry or is a subdomain of one
func hostMatchesAny(host string, entries []string) bool {
	host = strings.ToLower(host)
	for _, entry := range entries {
		if host == entry || strings.HasSuffix(host, "."+entry) {
			return true
		}
	}
	return false
}
