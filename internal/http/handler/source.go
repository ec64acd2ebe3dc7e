package handler

import (
	"context"

	"jokeApi/internal/storage"
)

// JokeSource — откуда обработчики берут шутки (реализует *storage.Directory)
type JokeSource interface {
	ListJokes(ctx context.Context) ([]storage.Joke, error)
	JokeByID(ctx context.Context, id int) (storage.Joke, error)
	IDRange() (lo, hi int)
}

// LookupObserver получает результат каждого поиска по id (метрики)
type LookupObserver interface {
	ObserveLookup(result string)
}

type noopObserver struct{}

func (noopObserver) ObserveLookup(string) {}
