package entity

import (
	"errors"
	"net"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{"valid https", "https://example.com/feed", false},
		{"valid http", "http://example.com/feed", false},
		{"valid with port", "https://example.com:8080/feed", false},
		{"valid with query", "https://example.com/feed?param=value", false},
		{"valid with path and fragment", "https://example.com/path/to/page#section", false},
		{"empty", "", true},
		{"ftp scheme", "ftp://example.com/feed", true},
		{"file scheme", "file:///etc/passwd", true},
		{"javascript scheme", "javascript:alert(1)", true},
		{"no host", "https://", true},
		{"malformed", "ht!tp://example.com", true},
		{"no scheme", "example.com", true},
		{"exceeds max length", "https://example.com/" + strings.Repeat("a", maxURLLength), true},
		{"localhost", "http://localhost/feed", true},
		{"loopback", "http://127.0.0.1/feed", true},
		{"private 10.x", "http://10.0.0.1/feed", true},
		{"private 192.168.x", "http://192.168.1.1/feed", true},
		{"private 172.16.x", "http://172.16.0.1/feed", true},
		{"cloud metadata link-local", "http://169.254.169.254/latest/meta-data", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateURL(tt.url)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateURL_ReturnsValidationError(t *testing.T) {
	cases := []string{"", "ftp://example.com", "https://", "http://127.0.0.1"}
	for _, raw := range cases {
		err := ValidateURL(raw)
		require.Error(t, err)
		var ve *ValidationError
		assert.True(t, errors.As(err, &ve), "ValidateURL(%q) should return a *ValidationError", raw)
	}
}

func TestIsPrivateIP(t *testing.T) {
	tests := []struct {
		ip        string
		isPrivate bool
	}{
		{"127.0.0.1", true},
		{"127.1.2.3", true},
		{"::1", true},
		{"169.254.1.1", true},
		{"169.254.169.254", true},
		{"fe80::1", true},
		{"10.0.0.0", true},
		{"10.123.45.67", true},
		{"10.255.255.255", true},
		{"172.16.0.0", true},
		{"172.20.10.5", true},
		{"172.31.255.255", true},
		{"192.168.0.0", true},
		{"192.168.1.1", true},
		{"192.168.255.255", true},
		{"8.8.8.8", false},
		{"1.1.1.1", false},
		{"93.184.216.34", false},
		{"2001:4860:4860::8888", false},
		{"9.255.255.255", false},
		{"11.0.0.0", false},
		{"172.15.255.255", false},
		{"172.32.0.0", false},
		{"192.167.255.255", false},
		{"192.169.0.0", false},
	}

	for _, tt := range tests {
		t.Run(tt.ip, func(t *testing.T) {
			ip := net.ParseIP(tt.ip)
			require.NotNil(t, ip)
			assert.Equal(t, tt.isPrivate, isPrivateIP(ip))
		})
	}
}
