package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// DefaultMaxPayloadSize is the largest report accepted when nothing else is configured (10 MiB)
const DefaultMaxPayloadSize int64 = 10 << 20

// DefaultAllowedContentTypes lists the report media types accepted by default
var DefaultAllowedContentTypes = []string{"application/pdf", "application/json"}

// DefaultAllowedExtensions lists the report file extensions accepted by default
var DefaultAllowedExtensions = []string{".pdf", ".json"}

// ReportSettings holds the upload policy applied before a report is sealed.
// A report is accepted when either its content type or its file extension is allowed.
type ReportSettings struct {
	MaxPayloadSize      int64    `mapstructure:"max_payload_size" validate:"required,min=1"`
	AllowedContentTypes []string `mapstructure:"allowed_content_types" validate:"dive,required"`
	AllowedExtensions   []string `mapstructure:"allowed_extensions" validate:"dive,required,startswith=."`
}

// Validate checks that all fields in ReportSettings are valid
func (s *ReportSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for ReportSettings: %w", err)
	}

	if len(s.AllowedContentTypes) == 0 && len(s.AllowedExtensions) == 0 {
		return fmt.Errorf("at least one allowed content type or extension is required")
	}

	return nil
}
