package xslog

import (
	"log/slog"
	"time"

	"github.com/garrettladley/deadline/internal/version"
)

func HTTPStatus(status int) slog.Attr {
	const statusKey = "status"
	return slog.Int(statusKey, status)
}

func Duration(duration time.Duration) slog.Attr {
	const durationKey = "duration"
	return slog.Duration(durationKey, duration)
}

func Timeout(timeout time.Duration) slog.Attr {
	const timeoutKey = "timeout"
	return slog.Duration(timeoutKey, timeout)
}

func Kind(kind string) slog.Attr {
	const kindKey = "kind"
	return slog.String(kindKey, kind)
}

func Bytes(n int) slog.Attr {
	const bytesKey = "bytes"
	return slog.Int(bytesKey, n)
}

func Count(count int) slog.Attr {
	const countKey = "count"
	return slog.Int(countKey, count)
}

func Succeeded(n int) slog.Attr {
	const succeededKey = "succeeded"
	return slog.Int(succeededKey, n)
}

func Failed(n int) slog.Attr {
	const failedKey = "failed"
	return slog.Int(failedKey, n)
}

func Version() slog.Attr {
	const versionKey = "version"
	return slog.String(versionKey, version.Get())
}
