package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/AntrikshRawat/DocAI-Muj-hackx-3.0/internal/app"
	"github.com/AntrikshRawat/DocAI-Muj-hackx-3.0/internal/domain/crypto"
	"github.com/AntrikshRawat/DocAI-Muj-hackx-3.0/internal/domain/reports"
	"github.com/AntrikshRawat/DocAI-Muj-hackx-3.0/internal/infrastructure/cryptography"
	"github.com/AntrikshRawat/DocAI-Muj-hackx-3.0/internal/infrastructure/persistence"
	"github.com/AntrikshRawat/DocAI-Muj-hackx-3.0/internal/pkg/config"
	"github.com/AntrikshRawat/DocAI-Muj-hackx-3.0/internal/pkg/logger"

	"github.com/spf13/cobra"
)

func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: config.LogLevelInfo,
		LogType:  config.LogTypeConsole,
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// requiredString reads a string flag and rejects an empty value
func requiredString(cmd *cobra.Command, name string) (string, error) {
	value, err := cmd.Flags().GetString(name)
	if err != nil {
		return "", fmt.Errorf("invalid %s flag: %w", name, err)
	}
	if value == "" {
		return "", fmt.Errorf("flag --%s is required", name)
	}
	return value, nil
}

// newCipherFromKeyFile loads a base64 key file and returns a cipher bound to it
func newCipherFromKeyFile(keyFile string, log logger.Logger) (crypto.AuthenticatedCipher, error) {
	key, err := cryptography.LoadKey(config.EncryptionSettings{KeyFile: keyFile})
	if err != nil {
		return nil, err
	}
	defer cryptography.Zero(key)

	return cryptography.NewAESGCMCipher(key, log)
}

// writeOutputFile writes data with owner-only permissions
func writeOutputFile(path string, data []byte) error {
	if err := os.WriteFile(filepath.Clean(path), data, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// openReportStore builds the report store described by the REST config file at path
func openReportStore(path string, log logger.Logger) (reports.ReportStore, func() error, error) {
	cfg, err := config.InitializeRestConfig(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	key, err := cryptography.LoadKey(cfg.Encryption)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load encryption key: %w", err)
	}
	cipher, err := cryptography.NewAESGCMCipher(key, log)
	cryptography.Zero(key)
	if err != nil {
		return nil, nil, err
	}

	repo, closeFn, err := persistence.NewReportRepository(cfg.Database, log)
	if err != nil {
		return nil, nil, err
	}

	policy := reports.NewUploadPolicy(cfg.Reports.MaxPayloadSize, cfg.Reports.AllowedContentTypes, cfg.Reports.AllowedExtensions)
	store, err := app.NewReportStore(cipher, repo, policy, log)
	if err != nil {
		_ = closeFn()
		return nil, nil, err
	}

	return store, closeFn, nil
}
