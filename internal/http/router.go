package httpx

import (
	"net/http"

	"jokeApi/internal/core"
	"jokeApi/internal/http/handler"
	"jokeApi/internal/http/middleware"
	"jokeApi/internal/metrics"

	"github.com/go-chi/chi/v5"
)

// Deps — всё, что нужно роутеру
type Deps struct {
	Config  core.Config
	Jokes   handler.JokeSource
	Metrics *metrics.Metrics // nil — без /metrics
}

func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	middleware.UseCommon(r, d.Config.RequestTimeout, d.Config.TrustedProxies) // request id, real ip, лог, recover, timeout, gzip

	var obs handler.LookupObserver
	if d.Metrics != nil {
		r.Use(d.Metrics.Middleware)
		obs = d.Metrics
	}
	r.Use(middleware.SecureHeaders(d.Config.Secure, d.Config.Env == "dev"))

	// шутки
	r.Get("/", handler.Home())
	r.Get("/jokes", handler.JokesJSON(d.Jokes))
	r.Get("/joke/{id:[0-9]+}", handler.JokeJSON(d.Jokes, obs))

	// health
	r.Get("/healthz", handler.Health)
	r.Get("/readyz", handler.Ready(d.Jokes))

	if d.Metrics != nil {
		r.Handle("/metrics", d.Metrics.Handler())
	}

	r.NotFound(handler.NotFound)
	r.MethodNotAllowed(handler.MethodNotAllowed)
	return r
}
