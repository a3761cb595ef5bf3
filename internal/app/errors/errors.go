package errors

import (
	stderrors "errors"
	"fmt"
)

// Common error types
var (
	// Configuration errors
	ErrMissingAPIKey = New("no API key configured")
	ErrInvalidConfig = New("invalid configuration")

	// File errors
	ErrFileNotFound    = New("file not found")
	ErrFileReadFailed  = New("file read failed")
	ErrFileWriteFailed = New("file write failed")

	// Transcription errors
	ErrRequestFailed = New("request failed")
	ErrExportFailed  = New("export failed")
)

// Error represents a standardized error
type Error struct {
	message string
	detail  string
	cause   error
}

// New creates a new error
func New(message string) *Error {
	return &Error{message: message}
}

// Newf creates a new formatted error
func Newf(format string, args ...interface{}) *Error {
	return &Error{message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		message: message,
		cause:   err,
	}
}

// Wrapf wraps an error with formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &Error{
		message: fmt.Sprintf(format, args...),
		cause:   err,
	}
}

// Error implements the error interface
func (e *Error) Error() string {
	msg := e.message
	if e.detail != "" {
		msg += ": " + e.detail
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.cause)
	}
	return msg
}

// WithDetail returns a copy of a sentinel carrying a detail string (a path, a
// field name) that still matches the sentinel under errors.Is.
func (e *Error) WithDetail(detail string) *Error {
	return &Error{message: e.message, detail: detail, cause: e.cause}
}

// WithCause returns a copy of e that wraps err.
func (e *Error) WithCause(err error) *Error {
	return &Error{message: e.message, detail: e.detail, cause: err}
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.cause
}

// Is checks if the error matches target
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.message == t.message
}

// APIError is a failure reported by the transcription endpoint itself
// (bad credentials, bad request, server error).
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("API error: %s", e.Message)
	}
	return fmt.Sprintf("API error (status %d): %s", e.Status, e.Message)
}

// Kind classifies a terminal error for reporting.
type Kind string

const (
	KindFile       Kind = "file"
	KindConfig     Kind = "config"
	KindAPI        Kind = "api"
	KindUnexpected Kind = "unexpected"
)

// Classify returns the reporting kind of err.
func Classify(err error) Kind {
	var apiErr *APIError
	switch {
	case err == nil:
		return ""
	case stderrors.As(err, &apiErr):
		return KindAPI
	case stderrors.Is(err, ErrFileNotFound), stderrors.Is(err, ErrFileReadFailed):
		return KindFile
	case stderrors.Is(err, ErrMissingAPIKey), stderrors.Is(err, ErrInvalidConfig):
		return KindConfig
	default:
		return KindUnexpected
	}
}

// Describe renders err as the single line printed before the process exits.
func Describe(err error) string {
	switch Classify(err) {
	case "":
		return ""
	case KindAPI:
		var apiErr *APIError
		stderrors.As(err, &apiErr)
		return apiErr.Error()
	case KindFile, KindConfig:
		return "Error: " + err.Error()
	default:
		return "Unexpected error: " + err.Error()
	}
}

// Helper functions for common patterns

// InvalidField returns an error for invalid field values
func InvalidField(field string, reason string) error {
	return ErrInvalidConfig.WithDetail(fmt.Sprintf("%s %s", field, reason))
}

// FileNotFound returns the file error for a missing or unusable path
func FileNotFound(path string) error {
	return ErrFileNotFound.WithDetail(path)
}
