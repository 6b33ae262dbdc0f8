package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// AuthSettings configures bearer token verification for the REST API.
// Token verification is disabled while JWTSecret is empty.
type AuthSettings struct {
	JWTSecret string `mapstructure:"jwt_secret" validate:"omitempty,min=32"`
	Issuer    string `mapstructure:"issuer"`
}

// Enabled reports whether requests must carry a signed owner token
func (s *AuthSettings) Enabled() bool {
	return s.JWTSecret != ""
}

// Validate checks that all fields in AuthSettings are valid
func (s *AuthSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for AuthSettings: %w", err)
	}
	return nil
}
