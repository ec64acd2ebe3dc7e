package handler

// JSON-эндпоинты для liveness/readiness.

import (
	"net/http"

	"jokeApi/internal/core"
)

func Health(w http.ResponseWriter, r *http.Request) {
	core.JSON(w, http.StatusOK, map[string]any{"status": "ok"})
}

// Ready — готов, когда каталог шуток загружен и непуст
func Ready(src JokeSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := src.ListJokes(r.Context())
		if err != nil || len(items) == 0 {
			core.JSON(w, http.StatusServiceUnavailable, map[string]any{"ready": false})
			return
		}
		core.JSON(w, http.StatusOK, map[string]any{"ready": true, "jokes": len(items)})
	}
}
