package core

//errors.go
import (
	"errors"
	"fmt"
	"net/http"
)

// AppError — ошибка приложения с машинным кодом и HTTP-статусом
type AppError struct {
	Code    string // Машинный код ошибки ("not_found", "internal", ...)
	Status  int    // HTTP-статус для ответа клиенту
	Message string // Сообщение для клиента
	Err     error  // Внутренняя ошибка (если есть)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s (%d): %s: %v", e.Code, e.Status, e.Message, e.Err)
	}
	return fmt.Sprintf("%s (%d): %s", e.Code, e.Status, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Internal — HTTP 500
func Internal(msg string, err error) *AppError {
	return &AppError{Code: "internal", Status: http.StatusInternalServerError, Message: msg, Err: err}
}

// NotFound — HTTP 404
func NotFound(msg string, err error) *AppError {
	return &AppError{Code: "not_found", Status: http.StatusNotFound, Message: msg, Err: err}
}

// BadRequest — HTTP 400
func BadRequest(msg string, err error) *AppError {
	return &AppError{Code: "bad_request", Status: http.StatusBadRequest, Message: msg, Err: err}
}

// From преобразует ошибку в AppError, неизвестные ошибки становятся Internal (OWASP A09)
func From(err error) *AppError {
	if err == nil {
		return nil
	}
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return Internal("internal error", err)
}
