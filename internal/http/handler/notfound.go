package handler

import (
	"net/http"

	"jokeApi/internal/core"

	"github.com/microcosm-cc/bluemonday"
)

// Путь из запроса эхом уходит клиенту — чистим разметку (OWASP A03)
var pathSanitizer = bluemonday.StrictPolicy()

// NotFound — 404 для маршрутов, которых нет (в том числе /joke/abc)
func NotFound(w http.ResponseWriter, r *http.Request) {
	core.Text(w, http.StatusNotFound, "not found: "+pathSanitizer.Sanitize(r.URL.Path))
}

func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	core.Text(w, http.StatusMethodNotAllowed, "method not allowed")
}
