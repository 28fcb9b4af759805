package apperrors

import (
	"errors"
	"fmt"
)

// Code classifies an application error.
type Code int

const (
	// Unauthenticated means no viewer identity was supplied.
	Unauthenticated Code = iota + 1000
	// NotFound covers both absent entities and entities outside the
	// caller's authorized scope; the two are deliberately conflated.
	NotFound
	// Validation is malformed input (empty content, unknown visibility).
	Validation
	// Conflict is a state collision (duplicate pending request,
	// responding to a resolved request).
	Conflict
	// Internal is a storage or infrastructure failure.
	Internal
)

// AppError carries a code, a human message and optional field messages.
type AppError struct {
	Code     Code
	Message  string
	Messages []string
	Err      error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates an application error with the given code and message.
func New(code Code, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// NewValidation creates a validation error carrying per-field messages.
func NewValidation(messages ...string) *AppError {
	msg := "validation failed"
	if len(messages) > 0 {
		msg = messages[0]
	}
	return &AppError{Code: Validation, Message: msg, Messages: messages}
}

// Wrap wraps an underlying error with a code and message.
func Wrap(code Code, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// CodeOf extracts the code from err, defaulting to Internal.
func CodeOf(err error) Code {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return Internal
}

// Is reports whether err carries the given code.
func Is(err error, code Code) bool {
	return CodeOf(err) == code
}

// MessagesOf returns the user-facing messages of err.
func MessagesOf(err error) []string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		if len(appErr.Messages) > 0 {
			return appErr.Messages
		}
		return []string{appErr.Message}
	}
	return []string{err.Error()}
}
