package xhttp

import (
	"fmt"
	"io"
	"net/http"
)

func IsSuccess(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}

// ReadBody reads the whole body, failing with ErrBodyTooLarge once more than limit bytes arrive.
// A limit <= 0 reads without bound.
func ReadBody(r io.Reader, limit int64) ([]byte, error) {
	if limit <= 0 {
		return io.ReadAll(r)
	}
	body, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(body)) > limit {
		return nil, fmt.Errorf("%w: exceeds %d bytes", ErrBodyTooLarge, limit)
	}
	return body, nil
}
