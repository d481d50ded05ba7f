package controller

import (
	"encoding/json"
	"net/http"
)

// Notice уведомление для тост-панели на клиенте
type Notice struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

const (
	NoticeSuccess = "success"
	NoticeError   = "error"
)

// envelope стандартный ответ API: данные плюс опциональное уведомление
type envelope struct {
	Data   interface{} `json:"data,omitempty"`
	Notice *Notice     `json:"notification,omitempty"`
	Errors interface{} `json:"errors,omitempty"`
}

// RespondWithJSON отправляет JSON-ответ
func RespondWithJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// RespondWithNotice отправляет данные вместе с уведомлением для клиента
func RespondWithNotice(w http.ResponseWriter, statusCode int, data interface{}, kind, message string) {
	RespondWithJSON(w, statusCode, envelope{
		Data:   data,
		Notice: &Notice{Kind: kind, Message: message},
	})
}

// RespondWithError отправляет уведомление об ошибке без данных
func RespondWithError(w http.ResponseWriter, statusCode int, message string) {
	RespondWithJSON(w, statusCode, envelope{
		Notice: &Notice{Kind: NoticeError, Message: message},
	})
}

// RespondWithFieldErrors отправляет ошибки валидации формы по полям
func RespondWithFieldErrors(w http.ResponseWriter, statusCode int, message string, fields interface{}) {
	RespondWithJSON(w, statusCode, envelope{
		Notice: &Notice{Kind: NoticeError, Message: message},
		Errors: fields,
	})
}
