// Package shared contains common domain types and errors that are used
// across all domain packages. This package has zero external dependencies.
package shared

import (
	"errors"
	"fmt"
)

// Base domain errors that can be used for error checking with errors.Is().
var (
	// Entity errors
	ErrNotFound      = errors.New("entity not found")
	ErrInvalidEntity = errors.New("invalid entity")

	// Validation errors
	ErrValidation      = errors.New("validation error")
	ErrInvalidID       = errors.New("invalid ID")
	ErrInvalidInput    = errors.New("invalid input")
	ErrEmptyValue      = errors.New("value cannot be empty")
	ErrNegativeValue   = errors.New("value cannot be negative")
	ErrValueOutOfRange = errors.New("value out of range")
	ErrInvalidFormat   = errors.New("invalid format")

	// State errors
	ErrInvalidState = errors.New("invalid state")
	ErrExpired      = errors.New("expired")
)

// DomainError represents a domain-specific error with context.
type DomainError struct {
	Domain  string // e.g., "student", "noticeboard", "timetable"
	Op      string // Operation that failed, e.g., "Find", "Validate"
	Kind    error  // Base error type for errors.Is() checking
	Message string // Human-readable message
	Err     error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s.%s: %s: %v", e.Domain, e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s.%s: %s", e.Domain, e.Op, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap().
func (e *DomainError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return e.Kind
}

// Is implements errors.Is() matching.
func (e *DomainError) Is(target error) bool {
	if e.Kind != nil && errors.Is(e.Kind, target) {
		return true
	}
	if e.Err != nil && errors.Is(e.Err, target) {
		return true
	}
	return false
}

// NewDomainError creates a new domain error.
func NewDomainError(domain, op string, kind error, message string) *DomainError {
	return &DomainError{
		Domain:  domain,
		Op:      op,
		Kind:    kind,
		Message: message,
	}
}

// WrapError wraps an existing error with domain context.
func WrapError(domain, op string, kind error, message string, err error) *DomainError {
	return &DomainError{
		Domain:  domain,
		Op:      op,
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

// Student domain errors
var (
	ErrStudentNotFound   = NewDomainError("student", "Find", ErrNotFound, "student not found")
	ErrInvalidRollNumber = NewDomainError("student", "Validate", ErrInvalidID, "invalid roll number")
	ErrNoMarksRecorded   = NewDomainError("student", "Validate", ErrEmptyValue, "student has no recorded marks")
	ErrInvalidMark       = NewDomainError("student", "Validate", ErrValueOutOfRange, "mark outside the allowed range")
	ErrInvalidPayment    = NewDomainError("student", "Validate", ErrInvalidInput, "invalid fee payment")
)

// Notice board domain errors
var (
	ErrInvalidNoticePeriod = NewDomainError("noticeboard", "Validate", ErrInvalidInput, "notice expires before it is posted")
	ErrEmptyNoticeTitle    = NewDomainError("noticeboard", "Validate", ErrEmptyValue, "notice title is required")
)

// Exam domain errors
var (
	ErrInvalidMaxMarks = NewDomainError("exam", "Validate", ErrValueOutOfRange, "max marks must be positive")
	ErrEmptySubject    = NewDomainError("exam", "Validate", ErrEmptyValue, "exam subject is required")
)

// Timetable domain errors
var (
	ErrDayNotScheduled = NewDomainError("timetable", "Find", ErrNotFound, "no schedule for that day")
	ErrInvalidPeriod   = NewDomainError("timetable", "Validate", ErrValueOutOfRange, "period outside 1..9")
)

// IsNotFound checks if the error is a "not found" error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidation checks if the error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrInvalidID) ||
		errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrEmptyValue) ||
		errors.Is(err, ErrNegativeValue) ||
		errors.Is(err, ErrValueOutOfRange)
}
