package utils

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is a coded, user-presentable error. Two AppErrors match under
// errors.Is when their codes are equal.
type AppError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

const (
	CodeValidation        = "validationFailure"
	CodeAlreadyOccupied   = "alreadyOccupied"
	CodeNotFound          = "notFound"
	CodeIllegalTransition = "illegalTransition"
	CodeAuthFailed        = "authFailed"
)

var (
	ErrValidation        = &AppError{Code: CodeValidation, Message: "validation failed"}
	ErrAlreadyOccupied   = &AppError{Code: CodeAlreadyOccupied, Message: "slot already booked"}
	ErrNotFound          = &AppError{Code: CodeNotFound, Message: "not found"}
	ErrIllegalTransition = &AppError{Code: CodeIllegalTransition, Message: "illegal status transition"}
	ErrAuthFailed        = &AppError{Code: CodeAuthFailed, Message: "authentication failed"}
)

func NewValidationError(format string, args ...any) error {
	return &AppError{Code: CodeValidation, Message: fmt.Sprintf(format, args...)}
}

func NewAlreadyOccupiedError(date, time string) error {
	return &AppError{Code: CodeAlreadyOccupied, Message: fmt.Sprintf("the %s slot on %s is already booked", time, date)}
}

func NewNotFoundError(format string, args ...any) error {
	return &AppError{Code: CodeNotFound, Message: fmt.Sprintf(format, args...)}
}

func NewIllegalTransitionError(from, to string) error {
	return &AppError{Code: CodeIllegalTransition, Message: fmt.Sprintf("cannot move from %s to %s", from, to)}
}

// NewAuthError keeps the provider error for logs while exposing only msg.
func NewAuthError(msg string, cause error) error {
	return &AppError{Code: CodeAuthFailed, Message: msg, Err: cause}
}

// HTTPStatus maps an error to the response status the API uses for it.
func HTTPStatus(err error) int {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError
	}
	switch appErr.Code {
	case CodeValidation:
		return http.StatusBadRequest
	case CodeAlreadyOccupied, CodeIllegalTransition:
		return http.StatusConflict
	case CodeNotFound:
		return http.StatusNotFound
	case CodeAuthFailed:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage returns the text safe to show a client.
func PublicMessage(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "An unexpected error occurred. Please try again later."
}

func errorCode(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return "internal"
}
