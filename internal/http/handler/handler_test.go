package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"jokeApi/internal/metrics"
	"jokeApi/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type brokenSource struct{}

func (brokenSource) ListJokes(context.Context) ([]storage.Joke, error) {
	return nil, errors.New("backend down")
}

func (brokenSource) JokeByID(context.Context, int) (storage.Joke, error) {
	return storage.Joke{}, errors.New("backend down")
}

func (brokenSource) IDRange() (int, int) { return 1, 3 }

type countingObserver map[string]int

func (c countingObserver) ObserveLookup(result string) { c[result]++ }

func serveJoke(t *testing.T, h http.HandlerFunc, path string) *httptest.ResponseRecorder {
	t.Helper()
	r := chi.NewRouter()
	r.Get("/joke/{id}", h)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHome(t *testing.T) {
	rec := httptest.NewRecorder()
	Home()(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, WelcomeMessage, rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
}

func TestJokeJSON_ObservesLookups(t *testing.T) {
	dir, err := storage.NewDirectory()
	require.NoError(t, err)
	obs := countingObserver{}
	h := JokeJSON(dir, obs)

	assert.Equal(t, http.StatusOK, serveJoke(t, h, "/joke/2").Code)
	assert.Equal(t, http.StatusNotFound, serveJoke(t, h, "/joke/4").Code)
	assert.Equal(t, http.StatusNotFound, serveJoke(t, h, "/joke/99999999999999999999999").Code)

	assert.Equal(t, 1, obs[metrics.LookupFound])
	assert.Equal(t, 2, obs[metrics.LookupNotFound])
}

func TestJokeJSON_NotFoundIsPlainText(t *testing.T) {
	dir, err := storage.NewDirectory()
	require.NoError(t, err)

	rec := serveJoke(t, JokeJSON(dir, nil), "/joke/0")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Joke not found! Try IDs 1-3", rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
}

func TestJokeJSON_SourceFailureIsProblemJSON(t *testing.T) {
	rec := serveJoke(t, JokeJSON(brokenSource{}, nil), "/joke/1")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/problem+json")
	assert.Contains(t, rec.Body.String(), `"code":"internal"`)
	assert.NotContains(t, rec.Body.String(), "backend down")
}

func TestJokesJSON_SourceFailure(t *testing.T) {
	rec := httptest.NewRecorder()
	JokesJSON(brokenSource{})(rec, httptest.NewRequest(http.MethodGet, "/jokes", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestReady(t *testing.T) {
	dir, err := storage.NewDirectory()
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	Ready(dir)(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ready":true,"jokes":3}`, rec.Body.String())

	rec = httptest.NewRecorder()
	Ready(brokenSource{})(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestNotFound_SanitizesPath(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.URL.Path = "/<script>alert(1)</script>"
	NotFound(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.NotContains(t, rec.Body.String(), "<script>")
}
