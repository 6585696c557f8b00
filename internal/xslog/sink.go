package xslog

import (
	"io"

	"github.com/natefinch/lumberjack"
)

const (
	logMaxSizeMB  = 10
	logMaxAgeDays = 14
	logMaxBackups = 3
)

// Writer returns a rotating file writer for path, or fallback when path is empty.
// The returned closer must be called on shutdown.
func Writer(path string, fallback io.Writer) (io.Writer, func() error) {
	if path == "" {
		return fallback, func() error { return nil }
	}
	lj := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    logMaxSizeMB,
		MaxAge:     logMaxAgeDays,
		MaxBackups: logMaxBackups,
	}
	return lj, lj.Close
}
