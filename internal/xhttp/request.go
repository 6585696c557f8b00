package xhttp

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// NewGetRequest builds a GET request for an absolute http or https address.
// It performs no network I/O.
func NewGetRequest(ctx context.Context, address string) (*http.Request, error) {
	u, err := parseURL(address)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	return req, nil
}

func parseURL(address string) (*url.URL, error) {
	u, err := url.Parse(address)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidURL, address, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: %q: scheme must be http or https", ErrInvalidURL, address)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("%w: %q: missing host", ErrInvalidURL, address)
	}
	return u, nil
}
