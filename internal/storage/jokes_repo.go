package storage

// internal/storage/jokes_repo.go
import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"
)

// ErrJokeNotFound — шутки с таким id нет в каталоге
var ErrJokeNotFound = errors.New("joke not found")

type Joke struct {
	ID       int    `json:"id" validate:"gt=0"`
	Category string `json:"category" validate:"required"`
	Content  string `json:"content" validate:"required"`
}

// seedJokes — фиксированный набор шуток, из которого строится каталог
var seedJokes = [...]Joke{
	{ID: 1, Category: "Programming", Content: "Why do programmers prefer dark mode? Because light attracts bugs!"},
	{ID: 2, Category: "Programming", Content: "A SQL query walks into a bar, walks up to two tables and asks: 'Can I join you?'"},
	{ID: 3, Category: "General", Content: "Why did the scarecrow win an award? He was outstanding in his field!"},
}

// Directory — неизменяемый каталог шуток. После NewDirectory не меняется,
// поэтому безопасен для конкурентного чтения без блокировок.
type Directory struct {
	byID map[int]Joke
	ids  []int // по возрастанию
}

// NewDirectory строит каталог из фиксированного набора и проверяет его
func NewDirectory() (*Directory, error) {
	return newDirectory(seedJokes[:])
}

func newDirectory(jokes []Joke) (*Directory, error) {
	if len(jokes) == 0 {
		return nil, errors.New("storage: empty joke set")
	}

	v := validator.New()
	d := &Directory{
		byID: make(map[int]Joke, len(jokes)),
		ids:  make([]int, 0, len(jokes)),
	}
	for _, j := range jokes {
		if err := v.Struct(j); err != nil {
			return nil, fmt.Errorf("storage: invalid joke %d: %w", j.ID, err)
		}
		if _, dup := d.byID[j.ID]; dup {
			return nil, fmt.Errorf("storage: duplicate joke id %d", j.ID)
		}
		d.byID[j.ID] = j
		d.ids = append(d.ids, j.ID)
	}
	sort.Ints(d.ids)
	return d, nil
}

// ListJokes — все шутки по возрастанию id. Каждый вызов возвращает новый срез.
func (d *Directory) ListJokes(ctx context.Context) ([]Joke, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	items := make([]Joke, 0, len(d.ids))
	for _, id := range d.ids {
		items = append(items, d.byID[id])
	}
	return items, nil
}

// JokeByID — находим шутку по id; ErrJokeNotFound, если её нет
func (d *Directory) JokeByID(ctx context.Context, id int) (Joke, error) {
	if err := ctx.Err(); err != nil {
		return Joke{}, err
	}
	j, ok := d.byID[id]
	if !ok {
		return Joke{}, fmt.Errorf("id %d: %w", id, ErrJokeNotFound)
	}
	return j, nil
}

// Len — количество шуток в каталоге
func (d *Directory) Len() int {
	return len(d.ids)
}

// IDRange — минимальный и максимальный id (каталог непуст по построению)
func (d *Directory) IDRange() (lo, hi int) {
	return d.ids[0], d.ids[len(d.ids)-1]
}
