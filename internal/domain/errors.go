package domain

import (
	"errors"
	"fmt"
)

// Code is a machine-readable failure code surfaced to API clients.
type Code string

const (
	CodeDatasetNotFound  Code = "DATASET_NOT_FOUND"
	CodeInvalidStrike    Code = "INVALID_STRIKE"
	CodeNoPricingData    Code = "NO_PRICING_DATA"
	CodeInsufficientData Code = "INSUFFICIENT_DATA"
	CodeBacktestFailed   Code = "BACKTEST_FAILED"
)

// Error is an expected, recoverable-by-caller failure. These are
// returned as ordinary values, never used for control flow inside the
// engine; unexpected faults surface as plain errors or panics and are
// mapped to CodeBacktestFailed at the service boundary.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewError builds a typed failure with a formatted message.
func NewError(code Code, format string, args ...interface{}) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// CodeOf extracts the failure code from err, if it carries one.
func CodeOf(err error) (Code, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de.Code, true
	}
	return "", false
}

// MessageOf returns the human-readable message for err: the typed
// message when present, otherwise err.Error().
func MessageOf(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Message
	}
	return err.Error()
}
