//go:build unit
// +build unit

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReportSettingsValidation(t *testing.T) {
	tests := []struct {
		name          string
		settings      *ReportSettings
		expectedError bool
	}{
		{
			name: "defaults",
			settings: &ReportSettings{
				MaxPayloadSize:      DefaultMaxPayloadSize,
				AllowedContentTypes: DefaultAllowedContentTypes,
				AllowedExtensions:   DefaultAllowedExtensions,
			},
		},
		{
			name: "content types only",
			settings: &ReportSettings{
				MaxPayloadSize:      1024,
				AllowedContentTypes: []string{"application/pdf"},
			},
		},
		{
			name: "zero max payload size",
			settings: &ReportSettings{
				AllowedContentTypes: DefaultAllowedContentTypes,
			},
			expectedError: true,
		},
		{
			name: "empty allow lists",
			settings: &ReportSettings{
				MaxPayloadSize: 1024,
			},
			expectedError: true,
		},
		{
			name: "extension without dot",
			settings: &ReportSettings{
				MaxPayloadSize:    1024,
				AllowedExtensions: []string{"pdf"},
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()
			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEncryptionSettingsValidation(t *testing.T) {
	tests := []struct {
		name          string
		settings      *EncryptionSettings
		expectedError bool
	}{
		{"inline key", &EncryptionSettings{Key: "AAECAwQFBgcICQoLDA0ODxAREhMUFRYXGBkaGxwdHh8="}, false},
		{"key file", &EncryptionSettings{KeyFile: "/run/secrets/report-key"}, false},
		{"neither", &EncryptionSettings{}, true},
		{"both", &EncryptionSettings{Key: "AAECAwQFBgcICQoLDA0ODxAREhMUFRYXGBkaGxwdHh8=", KeyFile: "/run/secrets/report-key"}, true},
		{"short inline key", &EncryptionSettings{Key: "AAECAwQFBgcICQoLDA0ODw=="}, true},
		{"inline key not base64", &EncryptionSettings{Key: "not-a-key"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()
			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthSettingsValidation(t *testing.T) {
	disabled := &AuthSettings{}
	assert.NoError(t, disabled.Validate())
	assert.False(t, disabled.Enabled())

	short := &AuthSettings{JWTSecret: "too-short"}
	assert.Error(t, short.Validate())

	enabled := &AuthSettings{JWTSecret: "0123456789abcdef0123456789abcdef", Issuer: "docai"}
	assert.NoError(t, enabled.Validate())
	assert.True(t, enabled.Enabled())
}
