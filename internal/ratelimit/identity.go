package ratelimit

import (
	"net"
	"net/http"
	"strings"
)

// Identify derives the rate-limit identifier for a request: the originating
// network address when one is available, otherwise the submitter's email.
//
// The forwarded header is trusted as a network-identity proxy, which is only
// sound behind a reverse proxy that sets it itself. Deployed bare, the
// header is spoofable and the limit falls back to email identity in
// practice.
func Identify(r *http.Request, email string) string {
	if ip := clientIP(r); ip != "" {
		return ip
	}
	return strings.ToLower(strings.TrimSpace(email))
}

// clientIP extracts the originating address: first entry of X-Forwarded-For
// if present, else the connection's remote address with the port stripped.
func clientIP(r *http.Request) string {
	if xfwd := r.Header.Get("X-Forwarded-For"); xfwd != "" {
		first := xfwd
		if i := strings.Index(xfwd, ","); i >= 0 {
			first = xfwd[:i]
		}
		return strings.TrimSpace(first)
	}

	if r.RemoteAddr == "" {
		return ""
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
