// Package errors provides application-level error types and utilities.
// It defines the store's error taxonomy: validation, not found, conflict,
// gating denied, unknown type, dangling reference, and internal errors.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrorTypeValidation        ErrorType = "validation_error"
	ErrorTypeNotFound          ErrorType = "not_found"
	ErrorTypeConflict          ErrorType = "conflict"
	ErrorTypeGatingDenied      ErrorType = "gating_denied"
	ErrorTypeUnknownType       ErrorType = "unknown_type"
	ErrorTypeDanglingReference ErrorType = "dangling_reference"
	ErrorTypeInternal          ErrorType = "internal_error"
)

// AppError represents an application error with additional context
type AppError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Code    int       `json:"code"`
	Details string    `json:"details,omitempty"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func newAppError(errType ErrorType, code int, message string, details ...string) *AppError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{
		Type:    errType,
		Message: message,
		Code:    code,
		Details: detail,
	}
}

// NewValidationError creates a new validation error
func NewValidationError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeValidation, http.StatusBadRequest, message, details...)
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeNotFound, http.StatusNotFound, message, details...)
}

// NewConflictError creates a new conflict error
func NewConflictError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeConflict, http.StatusConflict, message, details...)
}

// NewGatingDeniedError creates a new gating denied error. A gating denial is
// a normal control-flow outcome: an association hook vetoed the mutation and
// nothing was persisted. Callers are expected to branch on it, not crash.
func NewGatingDeniedError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeGatingDenied, http.StatusUnprocessableEntity, message, details...)
}

// NewUnknownTypeError creates a new unknown type error for a polymorphic
// discriminator outside the registered set.
func NewUnknownTypeError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeUnknownType, http.StatusBadRequest, message, details...)
}

// NewDanglingReferenceError creates a new dangling reference error for a
// polymorphic (type, id) pair whose target row does not exist.
func NewDanglingReferenceError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeDanglingReference, http.StatusUnprocessableEntity, message, details...)
}

// NewInternalError creates a new internal error
func NewInternalError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeInternal, http.StatusInternalServerError, message, details...)
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts AppError from error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

func isType(err error, t ErrorType) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == t
}

// IsValidationError checks if the error is a validation error
func IsValidationError(err error) bool {
	return isType(err, ErrorTypeValidation)
}

// IsNotFoundError checks if the error is a not found error
func IsNotFoundError(err error) bool {
	return isType(err, ErrorTypeNotFound)
}

// IsConflictError checks if the error is a conflict error
func IsConflictError(err error) bool {
	return isType(err, ErrorTypeConflict)
}

// IsGatingDeniedError checks if the error is a gating denial
func IsGatingDeniedError(err error) bool {
	return isType(err, ErrorTypeGatingDenied)
}

// IsUnknownTypeError checks if the error is an unknown type error
func IsUnknownTypeError(err error) bool {
	return isType(err, ErrorTypeUnknownType)
}

// IsDanglingReferenceError checks if the error is a dangling reference error
func IsDanglingReferenceError(err error) bool {
	return isType(err, ErrorTypeDanglingReference)
}

// IsDuplicateError checks if the error is a database duplicate key error
func IsDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	// MySQL duplicate entry error
	if strings.Contains(errStr, "Duplicate entry") || strings.Contains(errStr, "duplicate key") {
		return true
	}
	// SQLite unique violation
	if strings.Contains(errStr, "UNIQUE constraint failed") {
		return true
	}
	// PostgreSQL unique violation
	if strings.Contains(errStr, "unique constraint") || strings.Contains(errStr, "violates unique constraint") {
		return true
	}
	return false
}
