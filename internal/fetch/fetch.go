// Package fetch downloads a list of URLs through one shared timeout client.
package fetch

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/garrettladley/deadline/internal/client/timeout"
	"github.com/garrettladley/deadline/internal/xslog"
)

const DefaultConcurrency = 4

type Downloader interface {
	DownloadBytes(ctx context.Context, address string) ([]byte, error)
}

type Options struct {
	// Concurrency caps in-flight downloads. Values below 1 mean DefaultConcurrency.
	Concurrency int
	// RatePerSecond paces request starts. Zero disables pacing.
	RatePerSecond float64
}

type Result struct {
	URL      string
	Body     []byte
	Duration time.Duration
	Err      error
}

func (r Result) OK() bool { return r.Err == nil }

func (r Result) Kind() string { return timeout.Kind(r.Err) }

// StatusCode is the response status when the server answered with a failure, otherwise 0.
func (r Result) StatusCode() int {
	if httpErr, ok := asHTTPError(r.Err); ok {
		return httpErr.StatusCode
	}
	return 0
}

// Run downloads every URL and returns results in input order.
// A failing URL never stops the others.
func Run(ctx context.Context, d Downloader, urls []string, opts Options) []Result {
	logger := xslog.FromContext(ctx)

	concurrency := opts.Concurrency
	if concurrency < 1 {
		concurrency = DefaultConcurrency
	}

	var limiter *rate.Limiter
	if opts.RatePerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.RatePerSecond), 1)
	}

	results := make([]Result, len(urls))

	var g errgroup.Group
	g.SetLimit(concurrency)
	for i, u := range urls {
		g.Go(func() error {
			if limiter != nil {
				if err := limiter.Wait(ctx); err != nil {
					results[i] = Result{URL: u, Err: fmt.Errorf("waiting for rate limiter: %w", waitErr(ctx, err))}
					return nil
				}
			}

			start := time.Now()
			body, err := d.DownloadBytes(ctx, u)
			results[i] = Result{URL: u, Body: body, Duration: time.Since(start), Err: err}
			return nil
		})
	}
	_ = g.Wait()

	summary := Summarize(results)
	logger.InfoContext(ctx, "fetch complete",
		xslog.Count(len(results)),
		xslog.Succeeded(summary.OK),
		xslog.Failed(summary.Failed),
	)

	return results
}

// waitErr prefers the context's own error so cancellation is classified as such.
func waitErr(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	return err
}
