package service

import "errors"

const msgMissingFields = "Missing required fields: temperature, humidity, dustDensity, gasValue"

// ValidationError means the reading cannot be evaluated: a field is absent
// or the payload is not a JSON object of numbers.
type ValidationError struct {
	Missing []string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return "Invalid request body: " + e.Err.Error()
	}
	return msgMissingFields
}

func (e *ValidationError) Unwrap() error { return e.Err }

// InternalError wraps any unexpected failure while building a report.
type InternalError struct {
	Err error
}

func (e *InternalError) Error() string {
	if e.Err == nil {
		return "internal error"
	}
	return e.Err.Error()
}

func (e *InternalError) Unwrap() error { return e.Err }

// NewMalformedInputError reports a body that could not be decoded.
func NewMalformedInputError(err error) error {
	return &ValidationError{Err: err}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}
