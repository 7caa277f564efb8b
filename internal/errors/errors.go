package errors

import (
	"errors"
	"fmt"
)

// Exit codes for subnet-ctl
const (
	ExitSuccess      = 0
	ExitGeneralError = 1
	ExitInvalidInput = 2
	ExitOutOfSpace   = 3
	ExitConfigError  = 4
)

// PlanError is the base error type for subnet-ctl
type PlanError struct {
	Code    int
	Message string
	Cause   error
}

func (e *PlanError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *PlanError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the exit code for this error
func (e *PlanError) ExitCode() int {
	return e.Code
}

// New creates a new PlanError
func New(code int, message string) *PlanError {
	return &PlanError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a PlanError
func Wrap(code int, message string, cause error) *PlanError {
	return &PlanError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Common error constructors

// InvalidInput returns an error for malformed networks or host counts
func InvalidInput(message string, cause error) *PlanError {
	return Wrap(ExitInvalidInput, message, cause)
}

// OutOfSpace returns an error for a plan that exceeds its network
func OutOfSpace(cause error) *PlanError {
	return Wrap(ExitOutOfSpace, "network too small for the requested subnets", cause)
}

// ConfigError returns an error for configuration issues
func ConfigError(message string, cause error) *PlanError {
	return Wrap(ExitConfigError, message, cause)
}

// GetExitCode extracts the exit code from an error
func GetExitCode(err error) int {
	var planErr *PlanError
	if errors.As(err, &planErr) {
		return planErr.ExitCode()
	}
	return ExitGeneralError
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target any) bool {
	return errors.As(err, target)
}
