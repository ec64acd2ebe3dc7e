// security.go
package middleware

import (
	"net/http"

	"github.com/unrolled/secure"
)

// SecureHeaders — заголовки безопасности для JSON/text API.
// HSTS только при hsts=true (сервер за HTTPS-прокси).
func SecureHeaders(hsts, isDevelopment bool) func(http.Handler) http.Handler {
	opts := secure.Options{
		FrameDeny:               true,
		ContentTypeNosniff:      true,
		ContentSecurityPolicy:   "default-src 'none'; frame-ancestors 'none'",
		ReferrerPolicy:          "no-referrer",
		PermissionsPolicy:       "camera=(), microphone=(), geolocation=(), payment=()",
		CrossOriginOpenerPolicy: "same-origin",
		IsDevelopment:           isDevelopment,
	}
	if hsts {
		opts.STSSeconds = 31536000
		opts.STSIncludeSubdomains = true
		opts.STSPreload = true
		opts.SSLProxyHeaders = map[string]string{"X-Forwarded-Proto": "https"}
	}
	return secure.New(opts).Handler
}
