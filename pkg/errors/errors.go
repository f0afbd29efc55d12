// Package errors provides structured error types for fitcatalog.
//
// Errors carry a code and a retryability flag so callers can decide
// between surfacing a failure, falling back to cached data, or retrying
// a fetch, without string-matching messages.
package errors

import (
	"fmt"
)

// ErrorCode represents a unique error identifier for categorization.
type ErrorCode string

// Error codes used throughout fitcatalog.
const (
	// Remote source errors
	CodeSourceUnavailable  ErrorCode = "SOURCE_UNAVAILABLE"
	CodeSourceFetchFailed  ErrorCode = "SOURCE_FETCH_FAILED"
	CodeSourceBadResponse  ErrorCode = "SOURCE_BAD_RESPONSE"
	CodeSourceUnconfigured ErrorCode = "SOURCE_UNCONFIGURED"

	// General errors
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
)

// CatalogError is the base error type for all fitcatalog errors.
type CatalogError struct {
	Code      ErrorCode         // Unique error code for categorization
	Message   string            // Human-readable error message
	Cause     error             // Underlying error (if any)
	Retryable bool              // Whether the operation can be retried
	Metadata  map[string]string // Additional context
}

// Error implements the error interface.
func (e *CatalogError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *CatalogError) Unwrap() error {
	return e.Cause
}

// WithCause wraps an underlying error.
func (e *CatalogError) WithCause(cause error) *CatalogError {
	return &CatalogError{
		Code:      e.Code,
		Message:   e.Message,
		Cause:     cause,
		Retryable: e.Retryable,
		Metadata:  e.Metadata,
	}
}

// WithMetadata adds contextual metadata.
func (e *CatalogError) WithMetadata(key, value string) *CatalogError {
	meta := make(map[string]string)
	for k, v := range e.Metadata {
		meta[k] = v
	}
	meta[key] = value
	return &CatalogError{
		Code:      e.Code,
		Message:   e.Message,
		Cause:     e.Cause,
		Retryable: e.Retryable,
		Metadata:  meta,
	}
}

// Pre-defined sentinel errors for common cases.
// Wrap them with .WithCause() or .WithMetadata() at the failure site.
var (
	ErrSourceUnavailable  = &CatalogError{Code: CodeSourceUnavailable, Message: "remote source unreachable", Retryable: true}
	ErrSourceFetchFailed  = &CatalogError{Code: CodeSourceFetchFailed, Message: "remote fetch failed", Retryable: true}
	ErrSourceBadResponse  = &CatalogError{Code: CodeSourceBadResponse, Message: "remote source returned an unusable response", Retryable: true}
	ErrSourceUnconfigured = &CatalogError{Code: CodeSourceUnconfigured, Message: "no remote source configured", Retryable: false}
)

// New creates a new CatalogError with the given code and message.
func New(code ErrorCode, message string) *CatalogError {
	return &CatalogError{
		Code:      code,
		Message:   message,
		Retryable: false,
	}
}

// Wrap wraps an error with a CatalogError.
func Wrap(cause error, code ErrorCode, message string) *CatalogError {
	return &CatalogError{
		Code:      code,
		Message:   message,
		Cause:     cause,
		Retryable: false,
	}
}

// IsRetryable checks if an error is retryable.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if cErr, ok := err.(*CatalogError); ok {
		return cErr.Retryable
	}
	return false
}

// GetCode extracts the error code from an error, if available.
func GetCode(err error) ErrorCode {
	if err == nil {
		return ""
	}
	if cErr, ok := err.(*CatalogError); ok {
		return cErr.Code
	}
	return CodeInternalError
}
