package core

// response.go
import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

// ProblemDetail — RFC 7807
type ProblemDetail struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail"`
	Instance string `json:"instance"`
	Code     string `json:"code"`
}

// JSON — сериализация v с заданным статусом
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Заголовки уже отправлены, остаётся только залогировать
		LogError("Ошибка кодирования JSON", map[string]interface{}{"error": err.Error()})
	}
}

// Text — ответ text/plain
func Text(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

// Fail — ошибка в формате problem+json с логированием
func Fail(w http.ResponseWriter, r *http.Request, err error) {
	ae := logFailure(r, err)

	problem := ProblemDetail{
		Type:     "/errors/" + ae.Code,
		Title:    http.StatusText(ae.Status),
		Status:   ae.Status,
		Detail:   ae.Message,
		Instance: r.URL.Path,
		Code:     ae.Code,
	}
	w.Header().Set("Content-Type", "application/problem+json; charset=utf-8")
	w.WriteHeader(ae.Status)
	_ = json.NewEncoder(w).Encode(problem)
}

// FailText — ошибка, отданная клиенту простым текстом (сообщение AppError как тело ответа)
func FailText(w http.ResponseWriter, r *http.Request, err error) {
	ae := logFailure(r, err)
	Text(w, ae.Status, ae.Message)
}

func logFailure(r *http.Request, err error) *AppError {
	ae := From(err)
	if ae == nil {
		ae = Internal("internal error", nil)
	}

	reqID := middleware.GetReqID(r.Context())
	if reqID == "" {
		reqID = "n/a"
	}

	fields := map[string]interface{}{
		"request_id": reqID,
		"path":       r.URL.Path,
		"code":       ae.Code,
		"status":     ae.Status,
		"message":    ae.Message,
	}
	if ae.Err != nil {
		fields["error"] = ae.Err.Error()
	}

	// 4xx — ожидаемый исход, не ошибка сервера
	if ae.Status >= http.StatusInternalServerError {
		LogError("Ошибка запроса", fields)
	} else {
		LogInfo("Запрос отклонён", fields)
	}
	return ae
}
