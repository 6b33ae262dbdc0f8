package config

import (
	"fmt"

	"github.com/AntrikshRawat/DocAI-Muj-hackx-3.0/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
)

// EncryptionSettings locates the 256-bit report encryption key.
// Exactly one of Key (base64) and KeyFile (path to a file holding the base64 key) must be set.
type EncryptionSettings struct {
	Key     string `mapstructure:"key" validate:"required_without=KeyFile,excluded_with=KeyFile"`
	KeyFile string `mapstructure:"key_file" validate:"required_without=Key,excluded_with=Key"`
}

// Validate checks that all fields in EncryptionSettings are valid
func (s *EncryptionSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for EncryptionSettings: %w", err)
	}

	if s.Key == "" {
		return nil
	}
	if err := validate.RegisterValidation(validators.EncryptionKeyTag, validators.EncryptionKeyValidation); err != nil {
		return fmt.Errorf("failed to register %s validation: %w", validators.EncryptionKeyTag, err)
	}
	if err := validate.Var(s.Key, validators.EncryptionKeyTag); err != nil {
		return fmt.Errorf("validation failed for EncryptionSettings: key must be a base64 encoded 256-bit key: %w", err)
	}
	return nil
}
