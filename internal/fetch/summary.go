package fetch

import (
	"errors"

	"github.com/garrettladley/deadline/internal/client/timeout"
)

type Summary struct {
	OK     int
	Failed int
	ByKind map[string]int
}

func Summarize(results []Result) Summary {
	s := Summary{ByKind: make(map[string]int)}
	for _, r := range results {
		if r.OK() {
			s.OK++
			continue
		}
		s.Failed++
		s.ByKind[r.Kind()]++
	}
	return s
}

func asHTTPError(err error) (*timeout.HTTPError, bool) {
	var httpErr *timeout.HTTPError
	ok := errors.As(err, &httpErr)
	return httpErr, ok
}
