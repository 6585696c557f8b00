package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/garrettladley/deadline/internal/client/github"
)

func newReleaseServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/repos/garrettladley/deadline/releases/latest", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestRunUpgradeUpToDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		current string
		latest  string
	}{
		{name: "same version", current: "v1.2.3", latest: "v1.2.3"},
		{name: "older release", current: "v1.3.0", latest: "v1.2.9"},
		{name: "development build", current: "devel", latest: "v9.9.9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := newReleaseServer(t, http.StatusOK, `{"tag_name":"`+tt.latest+`"}`)
			client := github.NewClient(github.WithBaseURL(srv.URL))
			t.Cleanup(func() { _ = client.Close() })

			var out, errOut bytes.Buffer
			if err := runUpgrade(t.Context(), &out, &errOut, client, tt.current); err != nil {
				t.Fatalf("runUpgrade() error = %v", err)
			}

			want := "deadline is up to date (" + tt.current + ")\n"
			if got := out.String(); got != want {
				t.Errorf("output = %q, want %q", got, want)
			}
		})
	}
}

func TestRunUpgradeReleaseLookupFails(t *testing.T) {
	t.Parallel()

	srv := newReleaseServer(t, http.StatusInternalServerError, `{"message":"boom"}`)
	client := github.NewClient(github.WithBaseURL(srv.URL))
	t.Cleanup(func() { _ = client.Close() })

	var out, errOut bytes.Buffer
	err := runUpgrade(t.Context(), &out, &errOut, client, "v1.0.0")
	if err == nil {
		t.Fatal("runUpgrade() error = nil, want failure")
	}
	if !strings.Contains(err.Error(), "failed to check for updates") {
		t.Errorf("error = %v, want failed to check for updates", err)
	}
	if out.Len() != 0 {
		t.Errorf("output = %q, want empty", out.String())
	}
}

func TestUpgradeCmdWritesToCommandOutput(t *testing.T) {
	t.Parallel()

	srv := newReleaseServer(t, http.StatusOK, `{"tag_name":"v0.0.1"}`)

	var out, errOut bytes.Buffer
	cmd := upgradeCmd(github.WithBaseURL(srv.URL))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(nil)

	// test binaries report a development version, which is never outdated.
	if err := cmd.ExecuteContext(t.Context()); err != nil {
		t.Fatalf("upgrade error = %v", err)
	}
	if got := out.String(); !strings.HasPrefix(got, "deadline is up to date (") {
		t.Errorf("output = %q, want up to date message", got)
	}
}
