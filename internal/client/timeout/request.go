package timeout

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/garrettladley/deadline/internal/xhttp"
)

// Request is an outbound GET carrying the timeout Do will enforce.
type Request struct {
	*http.Request
	Timeout time.Duration
}

// NewRequest builds a request for address with the client's timeout.
// No network I/O happens here.
func (c *Client) NewRequest(ctx context.Context, address string) (*Request, error) {
	req, err := xhttp.NewGetRequest(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	return &Request{Request: req, Timeout: c.timeout}, nil
}
