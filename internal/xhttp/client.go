package xhttp

import "net/http"

type ClientOption func(*http.Client)

func WithTransport(rt http.RoundTripper) ClientOption {
	return func(c *http.Client) { c.Transport = rt }
}

func NewHTTPClient(opts ...ClientOption) *http.Client {
	c := &http.Client{Transport: NewTransport()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
