package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable overriding a config key,
// e.g. REPORT_VAULT_ENCRYPTION_KEY overrides encryption.key
const EnvPrefix = "REPORT_VAULT"

// CORSSettings holds the origins allowed to call the REST API from a browser
type CORSSettings struct {
	AllowOrigins []string `mapstructure:"allow_origins" validate:"dive,required"`
}

// RestConfig holds the settings of the REST API binary
type RestConfig struct {
	Port       string             `mapstructure:"port" validate:"required,numeric"`
	Logger     LoggerSettings     `mapstructure:"logger"`
	Database   DatabaseSettings   `mapstructure:"database"`
	Reports    ReportSettings     `mapstructure:"reports"`
	Encryption EncryptionSettings `mapstructure:"encryption"`
	Auth       AuthSettings       `mapstructure:"auth"`
	CORS       CORSSettings       `mapstructure:"cors"`
}

// Validate checks the top level fields and every nested settings struct
func (c *RestConfig) Validate() error {
	validate := validator.New()

	if err := validate.Var(c.Port, "required,numeric"); err != nil {
		return fmt.Errorf("validation failed for RestConfig port: %w", err)
	}
	if err := validate.Struct(&c.CORS); err != nil {
		return fmt.Errorf("validation failed for CORSSettings: %w", err)
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Reports.Validate(); err != nil {
		return err
	}
	if err := c.Encryption.Validate(); err != nil {
		return err
	}
	return c.Auth.Validate()
}

// InitializeRestConfig reads the YAML file at path (skipped when path is empty),
// applies defaults and environment overrides and validates the result
func InitializeRestConfig(path string) (*RestConfig, error) {
	v := newViper()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// every key needs a default so AutomaticEnv can override it during Unmarshal
	v.SetDefault("port", "5000")
	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("logger.file_path", "")
	v.SetDefault("logger.max_size", 0)
	v.SetDefault("logger.max_backups", 0)
	v.SetDefault("logger.max_age", 0)
	v.SetDefault("database.type", SqliteDbType)
	v.SetDefault("database.dsn", "")
	v.SetDefault("database.name", "")
	v.SetDefault("reports.max_payload_size", DefaultMaxPayloadSize)
	v.SetDefault("reports.allowed_content_types", DefaultAllowedContentTypes)
	v.SetDefault("reports.allowed_extensions", DefaultAllowedExtensions)
	v.SetDefault("encryption.key", "")
	v.SetDefault("encryption.key_file", "")
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.issuer", "")
	v.SetDefault("cors.allow_origins", []string{"http://localhost:5173"})

	return v
}
