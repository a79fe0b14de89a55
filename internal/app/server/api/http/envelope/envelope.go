// Package envelope формирует единый JSON-ответ сервиса:
// success с данными, fail для ошибок клиента, error для ошибок сервера.
package envelope

import (
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
)

const (
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusError   = "error"
)

// Error - тело ответа об ошибке; реализует huma.StatusError.
type Error struct {
	status  int
	Status  string `json:"status" enum:"fail,error" doc:"fail для 4xx, error для 5xx"`
	Message string `json:"message"`
}

func (e *Error) GetStatus() int {
	return e.status
}

func (e *Error) Error() string {
	return e.Message
}

// NewError подменяет huma.NewError. 422 от валидатора huma отдаётся как 400.
func NewError(status int, msg string, errs ...error) huma.StatusError {
	if status == http.StatusUnprocessableEntity {
		status = http.StatusBadRequest
	}

	details := make([]string, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			details = append(details, err.Error())
		}
	}
	if len(details) > 0 {
		if msg == "" {
			msg = strings.Join(details, "; ")
		} else {
			msg = msg + ": " + strings.Join(details, "; ")
		}
	}
	if msg == "" {
		msg = http.StatusText(status)
	}

	return &Error{
		status:  status,
		Status:  Word(status),
		Message: msg,
	}
}

// Word возвращает fail для 4xx и error для остального.
func Word(status int) string {
	if status >= 400 && status < 500 {
		return StatusFail
	}
	return StatusError
}
