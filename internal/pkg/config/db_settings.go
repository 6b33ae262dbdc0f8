package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Database type constants
const (
	PostgresDbType = "postgres"
	SqliteDbType   = "sqlite"
	BoltDbType     = "bolt"
)

// DatabaseSettings holds the connection settings of the report record store.
//
// DSN is a libpq connection string for postgres, a file path (or empty for an
// in-memory database) for sqlite and a file path for bolt. Name is the postgres
// database created on startup when it does not exist yet.
type DatabaseSettings struct {
	Type string `mapstructure:"type" validate:"required,oneof=postgres sqlite bolt"`
	DSN  string `mapstructure:"dsn" validate:"required_if=Type postgres,required_if=Type bolt"`
	Name string `mapstructure:"name" validate:"required_if=Type postgres"`
}

// Validate checks that all fields in DatabaseSettings are valid
func (s *DatabaseSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for DatabaseSettings: %w", err)
	}
	return nil
}
