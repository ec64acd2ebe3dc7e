package handler

//home.go
import (
	"net/http"

	"jokeApi/internal/core"
)

const WelcomeMessage = "🎭 Welcome to the Joke API! Try /jokes or /joke/1"

// Home — приветствие на главной; заодно служит простой проверкой, что сервер жив
func Home() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		core.Text(w, http.StatusOK, WelcomeMessage)
	}
}
