package xhttp

import (
	"errors"
	"net/http"
	"testing"
)

func TestNewGetRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		address string
		wantURL string
		wantErr bool
	}{
		{
			name:    "http url",
			address: "http://example.com/path?q=1",
			wantURL: "http://example.com/path?q=1",
		},
		{
			name:    "https url with port",
			address: "https://example.com:8443/",
			wantURL: "https://example.com:8443/",
		},
		{
			name:    "ipv6 host",
			address: "http://[::1]:8080/x",
			wantURL: "http://[::1]:8080/x",
		},
		{
			name:    "missing scheme",
			address: "example.com/path",
			wantErr: true,
		},
		{
			name:    "unsupported scheme",
			address: "ftp://example.com/file",
			wantErr: true,
		},
		{
			name:    "missing host",
			address: "http:///path",
			wantErr: true,
		},
		{
			name:    "empty address",
			address: "",
			wantErr: true,
		},
		{
			name:    "unparseable address",
			address: "http://%zz",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req, err := NewGetRequest(t.Context(), tt.address)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidURL) {
					t.Fatalf("NewGetRequest(%q) error = %v, want ErrInvalidURL", tt.address, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewGetRequest(%q) unexpected error: %v", tt.address, err)
			}
			if req.Method != http.MethodGet {
				t.Errorf("Method = %q, want %q", req.Method, http.MethodGet)
			}
			if got := req.URL.String(); got != tt.wantURL {
				t.Errorf("URL = %q, want %q", got, tt.wantURL)
			}
		})
	}
}
