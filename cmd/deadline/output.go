package main

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	go_json "github.com/goccy/go-json"

	"github.com/garrettladley/deadline/internal/client/timeout"
	"github.com/garrettladley/deadline/internal/fetch"
	"github.com/garrettladley/deadline/internal/theme"
)

type jsonLine struct {
	URL        string `json:"url"`
	OK         bool   `json:"ok"`
	Status     int    `json:"status,omitempty"`
	Bytes      int    `json:"bytes"`
	DurationMS int64  `json:"duration_ms"`
	Kind       string `json:"kind,omitempty"`
	Error      string `json:"error,omitempty"`
	Body       string `json:"body,omitempty"`
}

func writeJSONLines(w io.Writer, results []fetch.Result) error {
	enc := go_json.NewEncoder(w)
	for _, r := range results {
		line := jsonLine{
			URL:        r.URL,
			OK:         r.OK(),
			Status:     r.StatusCode(),
			Bytes:      len(r.Body),
			DurationMS: r.Duration.Milliseconds(),
			Kind:       r.Kind(),
			Body:       string(r.Body),
		}
		if r.Err != nil {
			line.Error = r.Err.Error()
		}
		if err := enc.Encode(line); err != nil {
			return err
		}
	}
	return nil
}

func writeStatusLines(w io.Writer, t theme.Theme, results []fetch.Result) {
	for _, r := range results {
		_, _ = lipgloss.Fprintln(w, statusLine(t, r))
	}
}

func statusLine(t theme.Theme, r fetch.Result) string {
	var label, detail string
	style := t.Failed()

	switch r.Kind() {
	case "":
		style = t.OK()
		label = "ok"
		detail = fmt.Sprintf("%d bytes", len(r.Body))
	case timeout.KindTimeout:
		style = t.Timeout()
		label = "timeout"
	case timeout.KindHTTP:
		label = fmt.Sprintf("%d", r.StatusCode())
		detail = http.StatusText(r.StatusCode())
	default:
		label = r.Kind()
		detail = r.Err.Error()
	}

	parts := []string{
		style.Width(8).Render(label),
		t.URL().Render(r.URL),
		t.Dim().Render(r.Duration.Round(time.Millisecond).String()),
	}
	if detail != "" {
		parts = append(parts, t.Base().Render(detail))
	}
	return strings.Join(parts, " ")
}
