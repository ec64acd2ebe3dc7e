package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"jokeApi/internal/core"
	"jokeApi/internal/metrics"
	"jokeApi/internal/storage"

	"github.com/go-chi/chi/v5"
)

// JokeJSON — одна шутка по id (GET /joke/{id}).
// Нечисловой id отсекает шаблон маршрута; числа вне int и отсутствующие id дают 404 текстом.
func JokeJSON(src JokeSource, obs LookupObserver) http.HandlerFunc {
	if obs == nil {
		obs = noopObserver{}
	}
	lo, hi := src.IDRange()
	notFoundMsg := fmt.Sprintf("Joke not found! Try IDs %d-%d", lo, hi)

	return func(w http.ResponseWriter, r *http.Request) {
		idStr := chi.URLParam(r, "id")
		id, err := strconv.Atoi(idStr)
		if err != nil {
			obs.ObserveLookup(metrics.LookupNotFound)
			core.FailText(w, r, core.NotFound(notFoundMsg, err))
			return
		}

		joke, err := src.JokeByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, storage.ErrJokeNotFound) {
				obs.ObserveLookup(metrics.LookupNotFound)
				core.FailText(w, r, core.NotFound(notFoundMsg, err))
				return
			}
			core.Fail(w, r, core.Internal("failed to load joke", err))
			return
		}

		obs.ObserveLookup(metrics.LookupFound)
		core.JSON(w, http.StatusOK, joke)
	}
}
