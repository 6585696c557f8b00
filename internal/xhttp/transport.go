package xhttp

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/garrettladley/deadline/internal/version"
	"github.com/garrettladley/deadline/internal/xcontext"
)

type deadlineTransport struct {
	base   http.RoundTripper
	idFunc func() string
}

var _ http.RoundTripper = (*deadlineTransport)(nil)

type TransportOption func(*deadlineTransport)

// WithBase replaces the wrapped round tripper. Defaults to a clone of http.DefaultTransport.
func WithBase(rt http.RoundTripper) TransportOption {
	return func(t *deadlineTransport) { t.base = rt }
}

func WithRequestIDFunc(fn func() string) TransportOption {
	return func(t *deadlineTransport) { t.idFunc = fn }
}

func (t *deadlineTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// RoundTrippers must not mutate the caller's request.
	req = req.Clone(req.Context())
	req.Header.Set(UserAgent, version.UserAgent())
	req.Header.Set(version.Header, version.Get())
	if GetRequestHeaderRequestID(req) == "" {
		id := xcontext.RequestID(req.Context())
		if id == "" {
			id = t.idFunc()
		}
		SetRequestHeaderRequestID(req, id)
	}
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("failed to perform round trip: %w", err)
	}
	return resp, nil
}

// CloseIdleConnections forwards to the base transport so http.Client.CloseIdleConnections reaches it.
func (t *deadlineTransport) CloseIdleConnections() {
	type closeIdler interface{ CloseIdleConnections() }
	if ci, ok := t.base.(closeIdler); ok {
		ci.CloseIdleConnections()
	}
}

// NewTransport returns an http.RoundTripper with standard deadline headers.
func NewTransport(opts ...TransportOption) http.RoundTripper {
	t := &deadlineTransport{
		base:   http.DefaultTransport.(*http.Transport).Clone(),
		idFunc: func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}
