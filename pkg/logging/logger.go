// Package logging provides structured logging for the Entrez SDK.
// It supports leveled output, key-value fields, and text or JSON
// formatting, and knows how to unpack SDK error context.
package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	entrezerrors "github.com/entrezutils/entrez-sdk-go/pkg/errors"
)

// Level represents the severity of a log message.
type Level int

const (
	DebugLevel Level = iota - 1
	InfoLevel
	WarnLevel
	ErrorLevel
)

// String returns the string representation of a log level.
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Field is a key-value pair attached to a log entry.
type Field struct {
	Key   string
	Value interface{}
}

// String creates a string field.
func String(key, value string) Field { return Field{Key: key, Value: value} }

// Int creates an integer field.
func Int(key string, value int) Field { return Field{Key: key, Value: value} }

// Bool creates a boolean field.
func Bool(key string, value bool) Field { return Field{Key: key, Value: value} }

// Duration creates a duration field.
func Duration(key string, value time.Duration) Field { return Field{Key: key, Value: value} }

// ErrorField creates an error field.
func ErrorField(err error) Field { return Field{Key: "error", Value: err} }

// Any creates a field with an arbitrary value.
func Any(key string, value interface{}) Field { return Field{Key: key, Value: value} }

// Logger is the interface for structured logging.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	// WithFields returns a new logger carrying additional fields.
	WithFields(fields ...Field) Logger
	// WithContext returns a new logger carrying the context request ID.
	WithContext(ctx context.Context) Logger
	// WithError returns a new logger carrying the error and, for SDK
	// errors, their code, category and context.
	WithError(err error) Logger

	SetLevel(level Level)
	GetLevel() Level
}

// Entry is one formatted log record.
type Entry struct {
	Level     Level
	Message   string
	Fields    map[string]interface{}
	Timestamp time.Time
	RequestID string
	Component string
}

// Formatter renders log entries.
type Formatter interface {
	Format(entry *Entry) ([]byte, error)
}

type baseLogger struct {
	mu        sync.RWMutex
	level     Level
	output    io.Writer
	formatter Formatter
	fields    map[string]interface{}
}

// New creates a structured logger writing to output. A nil output means
// os.Stderr; a nil formatter means text.
func New(output io.Writer, formatter Formatter) Logger {
	if output == nil {
		output = os.Stderr
	}
	if formatter == nil {
		formatter = NewTextFormatter()
	}
	return &baseLogger{
		level:     InfoLevel,
		output:    output,
		formatter: formatter,
		fields:    make(map[string]interface{}),
	}
}

func (l *baseLogger) Debug(msg string, fields ...Field) { l.log(DebugLevel, msg, fields...) }
func (l *baseLogger) Info(msg string, fields ...Field)  { l.log(InfoLevel, msg, fields...) }
func (l *baseLogger) Warn(msg string, fields ...Field)  { l.log(WarnLevel, msg, fields...) }
func (l *baseLogger) Error(msg string, fields ...Field) { l.log(ErrorLevel, msg, fields...) }

func (l *baseLogger) WithFields(fields ...Field) Logger {
	l.mu.RLock()
	defer l.mu.RUnlock()

	merged := make(map[string]interface{}, len(l.fields)+len(fields))
	for k, v := range l.fields {
		merged[k] = v
	}
	for _, f := range fields {
		merged[f.Key] = f.Value
	}

	return &baseLogger{
		level:     l.level,
		output:    l.output,
		formatter: l.formatter,
		fields:    merged,
	}
}

func (l *baseLogger) WithContext(ctx context.Context) Logger {
	if requestID := RequestIDFromContext(ctx); requestID != "" {
		return l.WithFields(String("request_id", requestID))
	}
	return l
}

func (l *baseLogger) WithError(err error) Logger {
	fields := []Field{ErrorField(err)}

	if ee, ok := entrezerrors.AsEntrezError(err); ok {
		fields = append(fields,
			String("error_code", entrezerrors.CodeName(ee.Code())),
			String("error_category", string(ee.Category())),
		)
		if ctx := ee.Context(); ctx != nil {
			if ctx.RequestID != "" {
				fields = append(fields, String("request_id", ctx.RequestID))
			}
			if ctx.Tool != "" {
				fields = append(fields, String("tool", ctx.Tool))
			}
			if ctx.Component != "" {
				fields = append(fields, String("component", ctx.Component))
			}
		}
	}

	return l.WithFields(fields...)
}

func (l *baseLogger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

func (l *baseLogger) GetLevel() Level {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.level
}

func (l *baseLogger) log(level Level, msg string, fields ...Field) {
	l.mu.RLock()
	if level < l.level {
		l.mu.RUnlock()
		return
	}
	l.mu.RUnlock()

	entry := &Entry{
		Level:     level,
		Message:   msg,
		Fields:    make(map[string]interface{}),
		Timestamp: time.Now(),
	}

	l.mu.RLock()
	for k, v := range l.fields {
		entry.Fields[k] = v
	}
	l.mu.RUnlock()

	for _, f := range fields {
		entry.Fields[f.Key] = f.Value
	}

	if requestID, ok := entry.Fields["request_id"].(string); ok {
		entry.RequestID = requestID
	}
	if component, ok := entry.Fields["component"].(string); ok {
		entry.Component = component
	}

	data, err := l.formatter.Format(entry)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to format log entry: %v\n", err)
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if _, err := l.output.Write(data); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write log entry: %v\n", err)
	}
}

// nopLogger discards everything.
type nopLogger struct{}

// Nop returns a logger that discards all output.
func Nop() Logger { return nopLogger{} }

func (nopLogger) Debug(string, ...Field)               {}
func (nopLogger) Info(string, ...Field)                {}
func (nopLogger) Warn(string, ...Field)                {}
func (nopLogger) Error(string, ...Field)               {}
func (n nopLogger) WithFields(...Field) Logger         { return n }
func (n nopLogger) WithContext(context.Context) Logger { return n }
func (n nopLogger) WithError(error) Logger             { return n }
func (nopLogger) SetLevel(Level)                       {}
func (nopLogger) GetLevel() Level                      { return InfoLevel }

type contextKey string

const requestIDKey contextKey = "request_id"

// ContextWithRequestID returns a context carrying a request ID.
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestIDFromContext extracts the request ID from a context.
func RequestIDFromContext(ctx context.Context) string {
	if requestID, ok := ctx.Value(requestIDKey).(string); ok {
		return requestID
	}
	return ""
}
