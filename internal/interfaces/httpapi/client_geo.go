package httpapi

import (
	"context"
	"net"
	"net/http"
	"net/netip"
	"strings"
)

const unknownCountry = "ZZ"

// Proxy headers in trust order. The league front end is served from Vercel.
var (
	clientIPHeaders = []string{
		"X-Vercel-Forwarded-For",
		"X-Forwarded-For",
		"X-Real-IP",
		"Fly-Client-IP",
	}
	countryHeaders = []string{
		"X-Vercel-IP-Country",
		"CF-IPCountry",
		"Fly-Client-Country",
		"CloudFront-Viewer-Country",
	}
)

// resolveClientIP is used for request logs only. It never authorises.
func resolveClientIP(_ context.Context, r *http.Request) string {
	for _, header := range clientIPHeaders {
		if ip := normalizeIP(r.Header.Get(header)); ip != "" {
			return ip
		}
	}
	return normalizeIP(r.RemoteAddr)
}

func resolveCountryCode(_ context.Context, r *http.Request) string {
	for _, header := range countryHeaders {
		if code := normalizeCountry(r.Header.Get(header)); code != "" {
			return code
		}
	}
	return unknownCountry
}

// normalizeIP takes the first hop of a forwarded list and drops any port.
func normalizeIP(raw string) string {
	value, _, _ := strings.Cut(raw, ",")
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	if host, _, err := net.SplitHostPort(value); err == nil {
		value = host
	}
	addr, err := netip.ParseAddr(strings.Trim(value, "[]"))
	if err != nil {
		return ""
	}
	return addr.Unmap().String()
}

func normalizeCountry(raw string) string {
	code := strings.ToUpper(strings.TrimSpace(raw))
	if len(code) != 2 {
		return ""
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return ""
		}
	}
	return code
}
