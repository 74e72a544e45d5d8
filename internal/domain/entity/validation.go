package entity

import (
	"fmt"
	"net"
	"net/url"
)

// maxURLLength bounds how much of a malformed or hostile feed/source URL
// PolicyRadar will even attempt to parse.
const maxURLLength = 2048

// ValidateURL checks that a curated or discovered source URL is well-formed,
// http(s)-only, and does not resolve to a private or link-local address —
// a crafted source entry in the registry (C1) could otherwise point the
// fetcher at an internal service (SSRF).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return &ValidationError{Field: "url", Message: "URL is required"}
	}
	if len(rawURL) > maxURLLength {
		return &ValidationError{Field: "url", Message: fmt.Sprintf("url must not exceed %d characters", maxURLLength)}
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("parse URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return &ValidationError{Field: "url", Message: "URL must use http or https scheme"}
	}
	if parsed.Host == "" {
		return &ValidationError{Field: "url", Message: "URL must have a valid host"}
	}

	if ips, err := net.LookupIP(parsed.Hostname()); err == nil {
		for _, ip := range ips {
			if isPrivateIP(ip) {
				return &ValidationError{Field: "url", Message: "url cannot point to private network"}
			}
		}
	}

	return nil
}

// privateIPv4Ranges are blocked alongside loopback and link-local addresses,
// the latter covering the 169.254.169.254 cloud metadata endpoint.
var privateIPv4Ranges = []string{
	"10.0.0.0/8",
	"172.16.0.0/12",
	"192.168.0.0/16",
	"169.254.0.0/16",
}

func isPrivateIP(ip net.IP) bool {
	if ip.IsLoopback() || ip.IsLinkLocalUnicast() {
		return true
	}
	for _, cidr := range privateIPv4Ranges {
		_, subnet, err := net.ParseCIDR(cidr)
		if err == nil && subnet.Contains(ip) {
			return true
		}
	}
	return false
}
