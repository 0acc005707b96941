package model

import (
	"fmt"
	"net/http"
)

// APIError is a domain error carrying the HTTP status the failure surfaces as.
// The three kinds used across the service are invalid input (400), not found (404)
// and upstream unavailable (503).
type APIError struct {
	Status  int    `json:"-"`
	Message string `json:"error"`
}

func (e *APIError) Error() string {
	return e.Message
}

// NewInvalidInputError reports a missing or malformed request field.
func NewInvalidInputError(format string, args ...interface{}) *APIError {
	return &APIError{Status: http.StatusBadRequest, Message: fmt.Sprintf(format, args...)}
}

// NewNotFoundError reports an identifier that does not resolve.
func NewNotFoundError(format string, args ...interface{}) *APIError {
	return &APIError{Status: http.StatusNotFound, Message: fmt.Sprintf(format, args...)}
}

// NewUnavailableError reports an upstream transport failure or non-2xx response
// blocking the pipeline.
func NewUnavailableError(format string, args ...interface{}) *APIError {
	return &APIError{Status: http.StatusServiceUnavailable, Message: fmt.Sprintf(format, args...)}
}
