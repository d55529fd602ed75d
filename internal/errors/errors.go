// Package errors provides the error types used at the edges of the validator:
// configuration loading, tool argument decoding and command line usage.
// Business ID defects are never errors; they are reported as reasons.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ValidationError indicates an invalid setting or parameter.
type ValidationError struct {
	Field   string // setting or argument name that failed validation
	Value   string // the invalid value (may be empty for sensitive data)
	Message string // human-readable error message
}

func (e *ValidationError) Error() string {
	if e.Field != "" && e.Value != "" {
		return fmt.Sprintf("validation failed for %s=%q: %s", e.Field, e.Value, e.Message)
	}
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// NewValidationError creates a ValidationError.
func NewValidationError(field, value, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// SelfTestError reports that built-in self-test cases did not match their
// expected outcome.
type SelfTestError struct {
	Failed int
	Total  int
}

func (e *SelfTestError) Error() string {
	return fmt.Sprintf("self-test failed: %d of %d cases did not match", e.Failed, e.Total)
}

// NewSelfTestError creates a SelfTestError.
func NewSelfTestError(failed, total int) *SelfTestError {
	return &SelfTestError{Failed: failed, Total: total}
}

// IsValidation returns true if err is or wraps a ValidationError.
func IsValidation(err error) bool {
	var target *ValidationError
	return stderrors.As(err, &target)
}

// IsSelfTest returns true if err is or wraps a SelfTestError.
func IsSelfTest(err error) bool {
	var target *SelfTestError
	return stderrors.As(err, &target)
}
