// Package timeout provides an HTTP client whose every request is bounded by
// one timeout fixed at construction.
package timeout

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/garrettladley/deadline/internal/xhttp"
	"github.com/garrettladley/deadline/internal/xslog"
)

const defaultMaxBodyBytes = 10 << 20

type Client struct {
	httpClient   *http.Client
	timeout      time.Duration
	maxBodyBytes int64
	logger       *slog.Logger
}

var _ io.Closer = (*Client)(nil)

type clientConfig struct {
	httpClient   *http.Client
	transport    http.RoundTripper
	maxBodyBytes int64
	logger       *slog.Logger
}

type Option func(*clientConfig)

// WithHTTPClient replaces the underlying client. Its own Timeout, if any, still applies.
func WithHTTPClient(c *http.Client) Option {
	return func(cfg *clientConfig) { cfg.httpClient = c }
}

// WithTransport keeps the default client but swaps its round tripper.
func WithTransport(rt http.RoundTripper) Option {
	return func(cfg *clientConfig) { cfg.transport = rt }
}

// WithMaxBodyBytes bounds downloaded bodies. A value <= 0 disables the bound.
func WithMaxBodyBytes(n int64) Option {
	return func(cfg *clientConfig) { cfg.maxBodyBytes = n }
}

// WithLogger pins the logger. Without it the logger is taken from the request context.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *clientConfig) { cfg.logger = logger }
}

// New returns a client that stamps timeout on every request it builds.
// A zero timeout means requests have no deadline; a negative one is rejected.
func New(timeout time.Duration, opts ...Option) (*Client, error) {
	if timeout < 0 {
		return nil, fmt.Errorf("%w: timeout must not be negative, got %s", ErrInvalidArgument, timeout)
	}

	cfg := &clientConfig{maxBodyBytes: defaultMaxBodyBytes}
	for _, opt := range opts {
		opt(cfg)
	}

	httpClient := cfg.httpClient
	if httpClient == nil {
		clientOpts := []xhttp.ClientOption{}
		if cfg.transport != nil {
			clientOpts = append(clientOpts, xhttp.WithTransport(cfg.transport))
		}
		httpClient = xhttp.NewHTTPClient(clientOpts...)
	}

	return &Client{
		httpClient:   httpClient,
		timeout:      timeout,
		maxBodyBytes: cfg.maxBodyBytes,
		logger:       cfg.logger,
	}, nil
}

// NewMilliseconds is New with the timeout given in whole milliseconds.
func NewMilliseconds(ms int, opts ...Option) (*Client, error) {
	if ms < 0 {
		return nil, fmt.Errorf("%w: timeout must not be negative, got %dms", ErrInvalidArgument, ms)
	}
	return New(time.Duration(ms)*time.Millisecond, opts...)
}

func (c *Client) Timeout() time.Duration {
	return c.timeout
}

// Close releases idle connections held by the underlying transport.
func (c *Client) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

// Do sends req under a deadline of req.Timeout. The deadline also covers
// reading the body and is released when the body is closed.
func (c *Client) Do(req *Request) (*http.Response, error) {
	ctx, cancel := withTimeout(req.Context(), req.Timeout)

	resp, err := c.httpClient.Do(req.Request.WithContext(ctx))
	if err != nil {
		err = classify(ctx, req, err)
		cancel()
		return nil, err
	}

	resp.Body = &timeoutBody{ReadCloser: resp.Body, ctx: ctx, cancel: cancel, req: req}
	return resp, nil
}

func (c *Client) DownloadBytes(ctx context.Context, address string) ([]byte, error) {
	req, err := c.NewRequest(ctx, address)
	if err != nil {
		return nil, err
	}
	return c.download(req)
}

func (c *Client) DownloadString(ctx context.Context, address string) (string, error) {
	body, err := c.DownloadBytes(ctx, address)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func (c *Client) download(req *Request) ([]byte, error) {
	ctx := req.Context()
	logger := c.loggerFor(ctx)
	start := time.Now()

	body, status, err := c.exchange(req)
	if err != nil {
		logger.WarnContext(ctx, "http request failed",
			xslog.RequestGroup(req.Request, req.Timeout),
			xslog.Kind(Kind(err)),
			xslog.Duration(time.Since(start)),
			xslog.ErrorGroup(err),
		)
		return nil, err
	}

	logger.DebugContext(ctx, "http request",
		xslog.RequestGroup(req.Request, req.Timeout),
		xslog.ResponseGroup(status, time.Since(start)),
		xslog.Bytes(len(body)),
	)
	return body, nil
}

func (c *Client) exchange(req *Request) ([]byte, int, error) {
	resp, err := c.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer func() { _ = resp.Body.Close() }()

	if !xhttp.IsSuccess(resp.StatusCode) {
		return nil, resp.StatusCode, parseHTTPError(req.URL.String(), resp)
	}

	body, err := xhttp.ReadBody(resp.Body, c.maxBodyBytes)
	if err != nil {
		return nil, resp.StatusCode, err
	}
	return body, resp.StatusCode, nil
}

func (c *Client) loggerFor(ctx context.Context) *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	return xslog.FromContext(ctx)
}

func withTimeout(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout == 0 {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, timeout)
}

type timeoutBody struct {
	io.ReadCloser
	ctx    context.Context
	cancel context.CancelFunc
	req    *Request
}

func (b *timeoutBody) Read(p []byte) (int, error) {
	n, err := b.ReadCloser.Read(p)
	if err != nil && err != io.EOF {
		err = classify(b.ctx, b.req, err)
	}
	return n, err
}

func (b *timeoutBody) Close() error {
	err := b.ReadCloser.Close()
	b.cancel()
	return err
}
