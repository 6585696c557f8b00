package xcontext

import "context"

type requestIDKey struct{}

// WithRequestID pins the X-Request-ID sent by outbound requests made with ctx.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// RequestID returns the pinned id, or "" when none was set.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
