package domain

import (
	"errors"
	"net/http"
)

// Error codes carried by AppError.
const (
	CodeNotFound      = 1
	CodeAlreadyExists = 2
	CodeValidation    = 3
	CodeInternal      = 4
	// CodeUnavailable marks a backend that could not be reached or answered 5xx.
	CodeUnavailable = 5
)

// codeStatus maps each code to the status the JSON API replies with.
var codeStatus = map[int]int{
	CodeNotFound:      http.StatusNotFound,
	CodeAlreadyExists: http.StatusConflict,
	CodeValidation:    http.StatusBadRequest,
	CodeInternal:      http.StatusInternalServerError,
	CodeUnavailable:   http.StatusBadGateway,
}

// AppError is the error type services and the backend client return.
// Message is safe to show to API clients; Err is kept for logs.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *AppError) Unwrap() error { return e.Err }

// Generic errors per code. Match with the Is* helpers, which compare codes,
// rather than errors.Is, which compares pointers.
var (
	ErrNotFound      = &AppError{Code: CodeNotFound, Message: "not found"}
	ErrAlreadyExists = &AppError{Code: CodeAlreadyExists, Message: "already exists"}
	ErrValidation    = &AppError{Code: CodeValidation, Message: "validation error"}
	ErrInternal      = &AppError{Code: CodeInternal, Message: "internal error"}
	ErrUnavailable   = &AppError{Code: CodeUnavailable, Message: "backend unavailable"}
)

// NewAppError returns an AppError with the given code and message wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func IsNotFound(err error) bool      { return codeOf(err) == CodeNotFound }
func IsAlreadyExists(err error) bool { return codeOf(err) == CodeAlreadyExists }
func IsValidation(err error) bool    { return codeOf(err) == CodeValidation }
func IsInternal(err error) bool      { return codeOf(err) == CodeInternal }
func IsUnavailable(err error) bool   { return codeOf(err) == CodeUnavailable }

// codeOf returns the code of the first AppError in err's chain, or 0.
func codeOf(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return 0
}

// HTTPStatusCode returns the status for err. Errors that are not AppErrors
// and unknown codes map to 500.
func HTTPStatusCode(err error) int {
	if status, ok := codeStatus[codeOf(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}
