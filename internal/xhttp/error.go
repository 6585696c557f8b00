package xhttp

import "errors"

var (
	ErrInvalidURL   = errors.New("invalid url")
	ErrBodyTooLarge = errors.New("response body too large")
)
