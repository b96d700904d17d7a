// Package logging provides structured logging for the graph core and its
// surrounding tooling.
package logging

// Logger provides structured logging
type Logger interface {
	// Debug logs a debug message
	Debug(msg string, fields ...Field)

	// Info logs an info message
	Info(msg string, fields ...Field)

	// Warn logs a warning message
	Warn(msg string, fields ...Field)

	// Error logs an error message
	Error(msg string, fields ...Field)

	// WithFields returns a new logger with the given fields attached to
	// every entry
	WithFields(fields ...Field) Logger
}

// Field represents a key-value pair in a log entry
type Field struct {
	// Key is the field name
	Key string

	// Value is the field value
	Value any
}

// F is shorthand for constructing a Field.
func F(key string, value any) Field {
	return Field{Key: key, Value: value}
}
