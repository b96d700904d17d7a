package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Config contains logger settings.
type Config struct {
	// Level is the minimum level to emit: debug, info, warn, or error
	Level string `json:"level"`

	// Format is "json" or "console"
	Format string `json:"format"`

	// Output is "stdout" or "stderr"
	Output string `json:"output"`
}

// ZerologLogger implements Logger on top of rs/zerolog.
type ZerologLogger struct {
	logger zerolog.Logger
}

// NewLogger creates a logger from config, falling back to sane defaults for
// unrecognized values.
func NewLogger(cfg Config) *ZerologLogger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	var output io.Writer = os.Stdout
	if cfg.Output == "stderr" {
		output = os.Stderr
	}
	if strings.ToLower(cfg.Format) == "console" {
		output = zerolog.ConsoleWriter{Out: output}
	}

	zl := zerolog.New(output).Level(level).With().Timestamp().Logger()
	return &ZerologLogger{logger: zl}
}

// NewDefaultLogger creates an info-level JSON logger on stdout.
func NewDefaultLogger() *ZerologLogger {
	return NewLogger(Config{Level: "info", Format: "json", Output: "stdout"})
}

// Debug logs a debug message
func (l *ZerologLogger) Debug(msg string, fields ...Field) {
	l.emit(l.logger.Debug(), msg, fields)
}

// Info logs an info message
func (l *ZerologLogger) Info(msg string, fields ...Field) {
	l.emit(l.logger.Info(), msg, fields)
}

// Warn logs a warning message
func (l *ZerologLogger) Warn(msg string, fields ...Field) {
	l.emit(l.logger.Warn(), msg, fields)
}

// Error logs an error message
func (l *ZerologLogger) Error(msg string, fields ...Field) {
	l.emit(l.logger.Error(), msg, fields)
}

// WithFields returns a new logger with the given fields attached to every
// entry
func (l *ZerologLogger) WithFields(fields ...Field) Logger {
	ctx := l.logger.With()
	for _, field := range fields {
		ctx = ctx.Interface(field.Key, field.Value)
	}
	return &ZerologLogger{logger: ctx.Logger()}
}

func (l *ZerologLogger) emit(event *zerolog.Event, msg string, fields []Field) {
	for _, field := range fields {
		event = event.Interface(field.Key, field.Value)
	}
	event.Msg(msg)
}
