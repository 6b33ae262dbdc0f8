package logger

import (
	"context"
	"log/slog"
	"os"

	"github.com/natefinch/lumberjack"
)

// FileLogger is an implementation of Logger that writes JSON lines to a rotated file.
type FileLogger struct {
	logger *slog.Logger
	writer *lumberjack.Logger
}

// NewFileLogger creates a new file logger with rotation settings.
func NewFileLogger(level string, filePath string, maxSize int, maxBackups int, maxAge int) Logger {
	writer := &lumberjack.Logger{
		Filename:   filePath,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     maxAge,
		Compress:   true,
	}

	opts := handlerOptions(level)

	return &FileLogger{
		logger: slog.New(slog.NewJSONHandler(writer, opts)),
		writer: writer,
	}
}

// Close flushes and closes the current log file.
func (l *FileLogger) Close() error {
	return l.writer.Close()
}

func (l *FileLogger) Debug(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l *FileLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Info(msg, keysAndValues...)
}

func (l *FileLogger) Warn(msg string, keysAndValues ...any) {
	l.logger.Warn(msg, keysAndValues...)
}

func (l *FileLogger) Error(msg string, keysAndValues ...any) {
	l.logger.Error(msg, keysAndValues...)
}

// Fatal logs a fatal message, closes the file and exits.
func (l *FileLogger) Fatal(msg string, keysAndValues ...any) {
	l.logger.Log(context.Background(), levelCritical, msg, keysAndValues...)
	_ = l.writer.Close()
	os.Exit(1)
}

// Panic logs a panic message and panics.
func (l *FileLogger) Panic(msg string, keysAndValues ...any) {
	l.logger.Log(context.Background(), levelCritical, msg, keysAndValues...)
	panic(msg)
}
