package testutil

import (
	"testing"

	"github.com/AntrikshRawat/DocAI-Muj-hackx-3.0/internal/pkg/config"
	"github.com/AntrikshRawat/DocAI-Muj-hackx-3.0/internal/pkg/logger"
	"github.com/stretchr/testify/require"
)

// SetupTestLogger returns the process logger, initializing it as a debug console logger on first use.
// The logger is a singleton, so the first caller in a test binary fixes its settings.
func SetupTestLogger(t *testing.T) logger.Logger {
	t.Helper()

	require.NoError(t, logger.InitLogger(&config.LoggerSettings{
		LogLevel: config.LogLevelDebug,
		LogType:  config.LogTypeConsole,
	}))

	log, err := logger.GetLogger()
	require.NoError(t, err, "logger must be available after InitLogger")
	return log
}
