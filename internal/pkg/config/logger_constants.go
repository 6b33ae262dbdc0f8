package config

// Log levels accepted by LoggerSettings. Critical is logged above error.
const (
	LogLevelDebug    = "debug"
	LogLevelInfo     = "info"
	LogLevelWarning  = "warning"
	LogLevelError    = "error"
	LogLevelCritical = "critical"
)

// Log outputs accepted by LoggerSettings
const (
	LogTypeConsole = "console"
	LogTypeFile    = "file"
)

// Rotation bounds for the file logger
const (
	maxLogFileSizeMB = 100
	maxLogBackups    = 10
	maxLogAgeDays    = 365
)
