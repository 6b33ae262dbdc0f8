package logger

// Logger defines the logging interface.
// Every method takes a message followed by alternating keys and values.
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
	Fatal(msg string, keysAndValues ...any)
	Panic(msg string, keysAndValues ...any)
}
