package shtools

import (
	"fmt"
)

// Status is the numeric status code reported by the toolkit for a failed or
// successful call. StatusOK is never carried by an error; use StatusOf to map
// an error (or nil) to its code.
type Status int

const (
	// StatusOK indicates success
	StatusOK Status = iota
	// StatusBadDimensions indicates malformed input or output array dimensions
	StatusBadDimensions
	// StatusBadOption indicates an out-of-range option value
	StatusBadOption
	// StatusAllocFailed indicates a resource-allocation failure
	StatusAllocFailed
	// StatusIOFailed is reserved for I/O failures in the wider toolkit
	StatusIOFailed
)

// String returns the status as a string
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusBadDimensions:
		return "BadDimensions"
	case StatusBadOption:
		return "BadOption"
	case StatusAllocFailed:
		return "AllocFailed"
	case StatusIOFailed:
		return "IOFailed"
	default:
		return "Unknown"
	}
}

// Error represents a structured error with context
type Error struct {
	Status  Status
	Op      string // Operation that failed
	Message string // Human-readable message
	Err     error  // Underlying error if any
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("shtools %s error in %s: %s (caused by: %v)",
			e.Status.String(), e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("shtools %s error in %s: %s",
		e.Status.String(), e.Op, e.Message)
}

// Unwrap allows error chain inspection
func (e *Error) Unwrap() error {
	return e.Err
}

// StatusOf maps an error to its toolkit status code. A nil error maps to
// StatusOK; errors from outside this package map to StatusIOFailed.
func StatusOf(err error) Status {
	if err == nil {
		return StatusOK
	}
	if e, ok := err.(*Error); ok {
		return e.Status
	}
	return StatusIOFailed
}

// Common error constructors

// NewDimensionError creates an error for malformed array dimensions
func NewDimensionError(op string, message string) error {
	return &Error{
		Status:  StatusBadDimensions,
		Op:      op,
		Message: message,
	}
}

// NewOptionError creates an error for an out-of-range option value
func NewOptionError(op string, message string) error {
	return &Error{
		Status:  StatusBadOption,
		Op:      op,
		Message: message,
	}
}

// NewAllocError creates an error for a resource-allocation failure
func NewAllocError(op string, message string, err error) error {
	return &Error{
		Status:  StatusAllocFailed,
		Op:      op,
		Message: message,
		Err:     err,
	}
}

// IsDimensionError checks if an error is a dimension error
func IsDimensionError(err error) bool {
	return StatusOf(err) == StatusBadDimensions
}

// IsOptionError checks if an error is an out-of-range option error
func IsOptionError(err error) bool {
	return StatusOf(err) == StatusBadOption
}

// IsAllocError checks if an error is an allocation error
func IsAllocError(err error) bool {
	return StatusOf(err) == StatusAllocFailed
}
