package api

import "net/http"

// Error is an API error with an HTTP status code attached.
type Error struct {
	Code    int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func NewBadRequestError(message string) *Error {
	return &Error{Code: http.StatusBadRequest, Message: message}
}

func NewNotFoundError(message string) *Error {
	return &Error{Code: http.StatusNotFound, Message: message}
}

func NewInternalServerError(message string) *Error {
	return &Error{Code: http.StatusInternalServerError, Message: message}
}

// StatusCode returns the HTTP status for err, defaulting to 500 for
// errors that are not API errors.
func StatusCode(err error) int {
	if apiErr, ok := err.(*Error); ok {
		return apiErr.Code
	}
	return http.StatusInternalServerError
}
