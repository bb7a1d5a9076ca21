package middleware

import (
	"net/http"
)

// apiHeaders fit a JSON-only API: nothing may be framed, sniffed or loaded.
var apiHeaders = map[string]string{
	"X-Frame-Options":         "DENY",
	"X-Content-Type-Options":  "nosniff",
	"Referrer-Policy":         "no-referrer",
	"Content-Security-Policy": "default-src 'none'; frame-ancestors 'none'",
}

// SecurityHeaders sets apiHeaders on every response. Mutations are marked
// no-store since thread views change with every comment or delete.
// HSTS is only sent when the deployment terminates TLS (secure cookies on).
func SecurityHeaders(isHTTPS bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			for k, v := range apiHeaders {
				h.Set(k, v)
			}
			if r.Method != http.MethodGet && r.Method != http.MethodHead {
				h.Set("Cache-Control", "no-store")
			}
			if isHTTPS {
				h.Set("Strict-Transport-Security", "max-age=63072000")
			}
			next.ServeHTTP(w, r)
		})
	}
}
