// Package errors provides structured error handling for the Entrez SDK.
// It defines error types that carry a stable code, a category for
// programmatic handling, and request context for debugging.
package errors

import (
	"fmt"
	"time"
)

// Category classifies an error for handling and metrics labelling.
type Category string

const (
	CategoryValidation Category = "validation"
	CategoryTransport  Category = "transport"
	CategoryDecoding   Category = "decoding"
	CategoryHistory    Category = "history"
	CategoryInternal   Category = "internal"
)

// Severity indicates how critical an error is.
type Severity string

const (
	SeverityWarning  Severity = "warning"
	SeverityError    Severity = "error"
	SeverityCritical Severity = "critical"
)

// Context records where and when an error occurred.
type Context struct {
	RequestID string    `json:"request_id,omitempty"`
	Tool      string    `json:"tool,omitempty"`
	Database  string    `json:"database,omitempty"`
	Component string    `json:"component,omitempty"`
	Operation string    `json:"operation,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// EntrezError is the interface implemented by all SDK errors.
type EntrezError interface {
	error

	// Code returns the stable SDK error code.
	Code() int

	// Message returns a human-readable error message.
	Message() string

	// Category returns the error category for classification.
	Category() Category

	// Severity returns the error severity level.
	Severity() Severity

	// Context returns the error context information.
	Context() *Context

	// Data returns structured error data for programmatic handling.
	Data() interface{}

	// WithContext returns a copy of the error carrying ctx.
	WithContext(ctx *Context) EntrezError

	// WithData returns a copy of the error carrying structured data.
	WithData(data interface{}) EntrezError

	// Unwrap returns the underlying cause for error chain traversal.
	Unwrap() error
}

type baseError struct {
	code     int
	message  string
	category Category
	severity Severity
	context  *Context
	data     interface{}
	cause    error
}

func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s", e.message, e.cause.Error())
	}
	return e.message
}

func (e *baseError) Code() int          { return e.code }
func (e *baseError) Message() string    { return e.message }
func (e *baseError) Category() Category { return e.category }
func (e *baseError) Severity() Severity { return e.severity }
func (e *baseError) Context() *Context  { return e.context }
func (e *baseError) Data() interface{}  { return e.data }
func (e *baseError) Unwrap() error      { return e.cause }

func (e *baseError) WithContext(ctx *Context) EntrezError {
	out := *e
	if ctx != nil && ctx.Timestamp.IsZero() {
		ctx.Timestamp = time.Now()
	}
	out.context = ctx
	return &out
}

func (e *baseError) WithData(data interface{}) EntrezError {
	out := *e
	out.data = data
	return &out
}

// New creates a new EntrezError.
func New(code int, message string, category Category, severity Severity) EntrezError {
	return &baseError{
		code:     code,
		message:  message,
		category: category,
		severity: severity,
		context:  &Context{Timestamp: time.Now()},
	}
}

// Newf creates a new EntrezError with a formatted message.
func Newf(code int, category Category, severity Severity, format string, args ...interface{}) EntrezError {
	return New(code, fmt.Sprintf(format, args...), category, severity)
}

// Wrap wraps an existing error as an EntrezError.
func Wrap(err error, code int, message string, category Category, severity Severity) EntrezError {
	return &baseError{
		code:     code,
		message:  message,
		category: category,
		severity: severity,
		cause:    err,
		context:  &Context{Timestamp: time.Now()},
	}
}

// AsEntrezError extracts an EntrezError from err's chain.
func AsEntrezError(err error) (EntrezError, bool) {
	for err != nil {
		if ee, ok := err.(EntrezError); ok {
			return ee, true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}
		err = u.Unwrap()
	}
	return nil, false
}

// IsCategory reports whether err (or anything it wraps) is an
// EntrezError of the given category.
func IsCategory(err error, category Category) bool {
	if ee, ok := AsEntrezError(err); ok {
		return ee.Category() == category
	}
	return false
}

// IsCode reports whether err (or anything it wraps) carries the given code.
func IsCode(err error, code int) bool {
	if ee, ok := AsEntrezError(err); ok {
		return ee.Code() == code
	}
	return false
}
