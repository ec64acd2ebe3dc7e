package handler

import (
	"net/http"

	"jokeApi/internal/core"
)

// JokesJSON возвращает все шутки JSON-массивом (GET /jokes)
func JokesJSON(src JokeSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := src.ListJokes(r.Context())
		if err != nil {
			core.Fail(w, r, core.Internal("failed to list jokes", err))
			return
		}
		core.JSON(w, http.StatusOK, items)
	}
}
