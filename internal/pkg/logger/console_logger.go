package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// ConsoleLogger is an implementation of Logger that logs to the console.
type ConsoleLogger struct {
	logger *slog.Logger
}

// NewConsoleLogger creates a new console logger with the specified log level.
func NewConsoleLogger(level string) Logger {
	return newConsoleLogger(os.Stdout, level)
}

func newConsoleLogger(w io.Writer, level string) *ConsoleLogger {
	opts := handlerOptions(level)
	return &ConsoleLogger{logger: slog.New(slog.NewTextHandler(w, opts))}
}

// Debug logs a debug message to the console.
func (l *ConsoleLogger) Debug(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

// Info logs an informational message to the console.
func (l *ConsoleLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Info(msg, keysAndValues...)
}

// Warn logs a warning message to the console.
func (l *ConsoleLogger) Warn(msg string, keysAndValues ...any) {
	l.logger.Warn(msg, keysAndValues...)
}

// Error logs an error message to the console.
func (l *ConsoleLogger) Error(msg string, keysAndValues ...any) {
	l.logger.Error(msg, keysAndValues...)
}

// Fatal logs a fatal message and exits.
func (l *ConsoleLogger) Fatal(msg string, keysAndValues ...any) {
	l.logger.Log(context.Background(), levelCritical, msg, keysAndValues...)
	os.Exit(1)
}

// Panic logs a panic message and panics.
func (l *ConsoleLogger) Panic(msg string, keysAndValues ...any) {
	l.logger.Log(context.Background(), levelCritical, msg, keysAndValues...)
	panic(msg)
}
