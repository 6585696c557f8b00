package timeout

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	go_json "github.com/goccy/go-json"

	"github.com/garrettladley/deadline/internal/xhttp"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrTimeout         = errors.New("timeout")
	ErrNetwork         = errors.New("network error")
	ErrHTTP            = errors.New("http error")
	ErrBodyTooLarge    = xhttp.ErrBodyTooLarge
)

// TimeoutError reports that the deadline elapsed before the response completed.
type TimeoutError struct {
	URL     string
	Timeout time.Duration
	Err     error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("GET %s: timed out after %s: %v", e.URL, e.Timeout, e.Err)
}

func (e *TimeoutError) Unwrap() error        { return e.Err }
func (e *TimeoutError) Is(target error) bool { return target == ErrTimeout }

// NetworkError reports that the connection could not be made or was interrupted.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("GET %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error        { return e.Err }
func (e *NetworkError) Is(target error) bool { return target == ErrNetwork }

// HTTPError reports a non-2xx response.
type HTTPError struct {
	URL        string
	StatusCode int
	Status     string
	Message    string
}

func (e *HTTPError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("GET %s: %s", e.URL, e.Status)
	}
	return fmt.Sprintf("GET %s: %s: %s", e.URL, e.Status, e.Message)
}

func (e *HTTPError) Is(target error) bool { return target == ErrHTTP }

const (
	KindTimeout  = "timeout"
	KindNetwork  = "network"
	KindHTTP     = "http"
	KindInvalid  = "invalid"
	KindTooLarge = "too_large"
	KindCanceled = "canceled"
	KindUnknown  = "unknown"
)

// Kind names the taxonomy bucket of err, or "" for nil.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return KindTimeout
	case errors.Is(err, ErrNetwork):
		return KindNetwork
	case errors.Is(err, ErrHTTP):
		return KindHTTP
	case errors.Is(err, ErrInvalidArgument):
		return KindInvalid
	case errors.Is(err, ErrBodyTooLarge):
		return KindTooLarge
	case errors.Is(err, context.Canceled):
		return KindCanceled
	default:
		return KindUnknown
	}
}

// classify maps a transport error for req into the taxonomy.
// ctx is the deadline-bearing context the request ran under.
func classify(ctx context.Context, req *Request, err error) error {
	u := req.URL.String()
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		return &TimeoutError{URL: u, Timeout: req.Timeout, Err: err}
	case errors.Is(ctx.Err(), context.Canceled):
		return fmt.Errorf("GET %s: request canceled: %w", u, context.Canceled)
	case errors.Is(err, context.DeadlineExceeded) || isNetTimeout(err):
		return &TimeoutError{URL: u, Timeout: req.Timeout, Err: err}
	default:
		return &NetworkError{URL: u, Err: err}
	}
}

// isNetTimeout walks the whole chain: *url.Error.Timeout only looks one level
// down, so a timeout wrapped inside the transport would otherwise be missed.
func isNetTimeout(err error) bool {
	for err != nil {
		if t, ok := err.(interface{ Timeout() bool }); ok && t.Timeout() {
			return true
		}
		if multi, ok := err.(interface{ Unwrap() []error }); ok {
			for _, e := range multi.Unwrap() {
				if isNetTimeout(e) {
					return true
				}
			}
			return false
		}
		err = errors.Unwrap(err)
	}
	return false
}

func parseHTTPError(u string, resp *http.Response) error {
	const maxErrorBody = 4 << 10

	httpErr := &HTTPError{
		URL:        u,
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(body) == 0 {
		return httpErr
	}

	var errResp struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := go_json.Unmarshal(body, &errResp); err != nil {
		httpErr.Message = strings.TrimSpace(string(body))
		return httpErr
	}

	httpErr.Message = errResp.Message
	if httpErr.Message == "" {
		httpErr.Message = errResp.Error
	}
	if httpErr.Message == "" {
		httpErr.Message = strings.TrimSpace(string(body))
	}
	return httpErr
}
