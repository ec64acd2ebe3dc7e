// common.go
package middleware

import (
	"net/http"
	"time"

	"jokeApi/internal/core"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// UseCommon подключает общие middleware: request id, реальный IP (только от доверенных прокси),
// логирование, перехват паник, таймаут и gzip.
func UseCommon(r *chi.Mux, requestTimeout time.Duration, trustedProxies []string) {
	r.Use(middleware.RequestID)
	r.Use(TrustedRealIP(trustedProxies))
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)
	if requestTimeout > 0 {
		r.Use(middleware.Timeout(requestTimeout))
	}
	r.Use(middleware.Compress(5, "application/json", "text/plain"))
}

// RequestLogger — access-лог через zerolog вместо middleware.Logger из chi
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			core.L().Info().
				Str("request_id", middleware.GetReqID(r.Context())).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Str("remote", r.RemoteAddr).
				Int("status", status).
				Int("bytes", ww.BytesWritten()).
				Dur("duration", time.Since(start)).
				Msg("http request")
		}()

		next.ServeHTTP(ww, r)
	})
}
