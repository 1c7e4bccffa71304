package util

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

func proxyFor(t *testing.T, fn func(*http.Request) (*url.URL, error), rawURL string) *url.URL {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, rawURL, nil)
	proxy, err := fn(req)
	if err != nil {
		t.Fatalf("proxy func error for %s: %v", rawURL, err)
	}
	return proxy
}

func TestNewProxyFunc_SchemeSelection(t *testing.T) {
	fn := NewProxyFunc("http://proxy-a:3128", "http://proxy-b:3128", "")

	if got := proxyFor(t, fn, "http://example.com/page"); got == nil || got.Host != "proxy-a:3128" {
		t.Errorf("http request got proxy %v, want proxy-a:3128", got)
	}
	if got := proxyFor(t, fn, "https://example.com/page"); got == nil || got.Host != "proxy-b:3128" {
		t.Errorf("https request got proxy %v, want proxy-b:3128", got)
	}
}

func TestNewProxyFunc_HTTPProxyCoversBothSchemes(t *testing.T) {
	fn := NewProxyFunc("http://proxy-a:3128", "", "")

	if got := proxyFor(t, fn, "https://example.com/"); got == nil || got.Host != "proxy-a:3128" {
		t.Errorf("https request got proxy %v, want fallback to proxy-a:3128", got)
	}
}

func TestNewProxyFunc_NoProxyBypass(t *testing.T) {
	fn := NewProxyFunc("http://proxy-a:3128", "", "internal.test, .corp.example")

	cases := []struct {
		url    string
		bypass bool
	}{
		{"http://internal.test/status", true},
		{"http://api.internal.test/status", true},
		{"http://wiki.corp.example/page", true},
		{"http://internal.test.evil.com/", false},
		{"http://example.com/", false},
	}
	for _, tc := range cases {
		got := proxyFor(t, fn, tc.url)
		if tc.bypass && got != nil {
			t.Errorf("%s went through proxy %v, want direct", tc.url, got)
		}
		if !tc.bypass && got == nil {
			t.Errorf("%s went direct, want proxy", tc.url)
		}
	}
}
