package httpclient

import (
	"net/http"
	"time"
)

// NewBrowserClient creates an HTTP client that stamps every outgoing request
// with userAgent. A single client is built at startup and shared by the
// upstream clients so connections are reused between requests.
func NewBrowserClient(userAgent string, timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &userAgentTransport{
			userAgent: userAgent,
			base:      http.DefaultTransport,
		},
	}
}

type userAgentTransport struct {
	userAgent string
	base      http.RoundTripper
}

// RoundTrip sets the User-Agent header unless the request already has one.
// The request is cloned; RoundTrippers must not modify the caller's request.
func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("User-Agent", t.userAgent)
	}
	return t.base.RoundTrip(req)
}
