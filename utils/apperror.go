package utils

import "net/http"

// AppError is an application-level failure carrying the HTTP status to
// respond with. It propagates untouched up to the error middleware, which is
// the single point translating it to the response envelope.
type AppError struct {
	Code    int
	Message string
	Data    interface{}
}

func (e *AppError) Error() string {
	return e.Message
}

func NewAppError(code int, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

func BadRequest(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message)
}

func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, message)
}

func Conflict(message string) *AppError {
	return NewAppError(http.StatusConflict, message)
}

// ValidationFailed carries the per-field violation messages; the envelope
// message is the generic invalid-data string.
func ValidationFailed(fields map[string][]string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: "Data yang dikirimkan tidak valid!",
		Data:    fields,
	}
}
