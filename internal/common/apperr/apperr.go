// Package apperr defines the typed errors surfaced by the activity log:
// validation, integrity, not-found and range failures, plus an internal
// kind for store unavailability.
package apperr

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// Error codes.
const (
	CodeValidation = "VALIDATION_ERROR"
	CodeIntegrity  = "INTEGRITY_ERROR"
	CodeNotFound   = "NOT_FOUND"
	CodeRange      = "RANGE_ERROR"
	CodeInternal   = "INTERNAL_ERROR"
)

// AppError carries an error code alongside a human-readable message.
type AppError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func (e *AppError) Error() string {
	if e.Details == "" {
		return fmt.Sprintf("[%s] %s", e.Code, e.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Details)
}

// Validation reports a request missing or carrying an unusable value.
func Validation(message string, details string) *AppError {
	return &AppError{Code: CodeValidation, Message: message, Details: details}
}

// Integrity reports a store-level constraint violation.
func Integrity(message string, details string) *AppError {
	return &AppError{Code: CodeIntegrity, Message: message, Details: details}
}

// NotFound reports a reference that resolved to no entity.
func NotFound(resource string) *AppError {
	return &AppError{Code: CodeNotFound, Message: fmt.Sprintf("%s not found", resource)}
}

// Range reports an invalid or unrecognized time range.
func Range(message string, details string) *AppError {
	return &AppError{Code: CodeRange, Message: message, Details: details}
}

// Internal reports an unrecoverable store failure.
func Internal(message string, details string) *AppError {
	return &AppError{Code: CodeInternal, Message: message, Details: details}
}

func hasCode(err error, code string) bool {
	var ae *AppError
	return errors.As(err, &ae) && ae.Code == code
}

// IsValidation reports whether err is a validation error.
func IsValidation(err error) bool { return hasCode(err, CodeValidation) }

// IsIntegrity reports whether err is an integrity error.
func IsIntegrity(err error) bool { return hasCode(err, CodeIntegrity) }

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool { return hasCode(err, CodeNotFound) }

// IsRange reports whether err is a range error.
func IsRange(err error) bool { return hasCode(err, CodeRange) }

// FromStore maps a storage-layer error to an AppError. Record-not-found
// becomes NOT_FOUND, constraint violations become INTEGRITY_ERROR, anything
// else is internal. The resource name contextualizes the message.
func FromStore(err error, resource string) *AppError {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFound(resource)
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) || isConstraintMessage(err) {
		return Integrity(fmt.Sprintf("constraint violated writing %s", resource), err.Error())
	}
	return Internal(fmt.Sprintf("store failure on %s", resource), err.Error())
}

// SQLite reports constraint failures as plain errors with these markers;
// the driver does not wrap them in gorm's sentinel errors.
func isConstraintMessage(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "FOREIGN KEY constraint failed") ||
		strings.Contains(msg, "NOT NULL constraint failed") ||
		strings.Contains(msg, "constraint failed")
}
