package timeout

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "timeout", err: &TimeoutError{URL: "http://x", Err: context.DeadlineExceeded}, want: KindTimeout},
		{name: "network", err: &NetworkError{URL: "http://x", Err: errors.New("connection refused")}, want: KindNetwork},
		{name: "http", err: &HTTPError{URL: "http://x", StatusCode: 500, Status: "500 Internal Server Error"}, want: KindHTTP},
		{name: "wrapped http", err: fmt.Errorf("fetching: %w", &HTTPError{StatusCode: 404}), want: KindHTTP},
		{name: "invalid", err: fmt.Errorf("%w: bad url", ErrInvalidArgument), want: KindInvalid},
		{name: "too large", err: fmt.Errorf("%w: exceeds 4 bytes", ErrBodyTooLarge), want: KindTooLarge},
		{name: "canceled", err: fmt.Errorf("GET http://x: request canceled: %w", context.Canceled), want: KindCanceled},
		{name: "unknown", err: errors.New("something else"), want: KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Kind(tt.err); got != tt.want {
				t.Errorf("Kind(%v) = %q, want %q", tt.err, got, tt.want)
			}
		})
	}
}

func TestTimeoutErrorUnwrapsCause(t *testing.T) {
	t.Parallel()

	err := error(&TimeoutError{URL: "http://x", Err: context.DeadlineExceeded})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("errors.Is(%v, context.DeadlineExceeded) = false", err)
	}
	if errors.Is(err, ErrNetwork) {
		t.Errorf("timeout error must not match ErrNetwork")
	}
}

type timeoutOnly struct{}

func (timeoutOnly) Error() string { return "i/o timeout" }
func (timeoutOnly) Timeout() bool { return true }

func TestIsNetTimeoutWalksChain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "direct", err: timeoutOnly{}, want: true},
		{name: "wrapped twice", err: fmt.Errorf("get: %w", fmt.Errorf("round trip: %w", timeoutOnly{})), want: true},
		{name: "joined", err: errors.Join(errors.New("first"), timeoutOnly{}), want: true},
		{name: "no timeout", err: fmt.Errorf("get: %w", errors.New("connection refused")), want: false},
		{name: "nil", err: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := isNetTimeout(tt.err); got != tt.want {
				t.Errorf("isNetTimeout(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
