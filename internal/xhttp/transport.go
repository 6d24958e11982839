package xhttp

import (
	"fmt"
	"net/http"

	"github.com/garrettladley/healthion/internal/version"
	"github.com/garrettladley/healthion/internal/xcontext"
)

type healthionTransport struct {
	base http.RoundTripper
}

var _ http.RoundTripper = (*healthionTransport)(nil)

func (t *healthionTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// RoundTrippers must not mutate the caller's request
	req = req.Clone(req.Context())

	v := version.Get()
	req.Header.Set(UserAgent, version.UserAgent(v))
	req.Header.Set(version.Header, v)
	if id, ok := xcontext.GetRequestID(req.Context()); ok {
		req.Header.Set(XRequestID, id)
	}

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("failed to perform round trip: %w", err)
	}
	return resp, nil
}

// NewTransport returns an http.RoundTripper with standard healthion headers.
func NewTransport() http.RoundTripper {
	return WrapTransport(http.DefaultTransport)
}

// WrapTransport layers the standard headers over base.
func WrapTransport(base http.RoundTripper) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	return &healthionTransport{base: base}
}
