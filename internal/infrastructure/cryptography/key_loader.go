package cryptography

import (
	"bytes"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"

	"github.com/AntrikshRawat/DocAI-Muj-hackx-3.0/internal/domain/crypto"
	"github.com/AntrikshRawat/DocAI-Muj-hackx-3.0/internal/pkg/config"
	"golang.org/x/crypto/argon2"
)

// argon2id parameters for passphrase derived keys
const (
	argon2Time    = 1
	argon2Memory  = 64 * 1024
	argon2Threads = 4

	// MinSaltSize is the shortest salt accepted for passphrase derivation
	MinSaltSize = 16
)

// LoadKey resolves the report encryption key from the inline base64 value or the key file.
// The decoded key must be exactly 32 bytes.
func LoadKey(settings config.EncryptionSettings) ([]byte, error) {
	encoded := []byte(settings.Key)

	if settings.KeyFile != "" {
		content, err := os.ReadFile(settings.KeyFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read key file: %w", err)
		}
		encoded = bytes.TrimSpace(content)
	}

	return DecodeKey(encoded)
}

// DecodeKey decodes a standard base64 key and checks its size
func DecodeKey(encoded []byte) ([]byte, error) {
	if len(encoded) == 0 {
		return nil, fmt.Errorf("%w: no key configured", crypto.ErrInvalidKey)
	}

	key := make([]byte, base64.StdEncoding.DecodedLen(len(encoded)))
	n, err := base64.StdEncoding.Decode(key, encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: key is not valid base64", crypto.ErrInvalidKey)
	}
	key = key[:n]

	if len(key) != crypto.AESKeySize256 {
		Zero(key)
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", crypto.ErrInvalidKey, crypto.AESKeySize256, n)
	}

	return key, nil
}

// GenerateKey returns 32 bytes from the system random source
func GenerateKey() ([]byte, error) {
	key := make([]byte, crypto.AESKeySize256)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("%w: %w", crypto.ErrRandomSource, err)
	}
	return key, nil
}

// DeriveKeyFromPassphrase stretches a passphrase into a 32 byte key with argon2id
func DeriveKeyFromPassphrase(passphrase, salt []byte) ([]byte, error) {
	if len(passphrase) == 0 {
		return nil, fmt.Errorf("%w: passphrase is empty", crypto.ErrInvalidKey)
	}
	if len(salt) < MinSaltSize {
		return nil, fmt.Errorf("%w: salt must be at least %d bytes", crypto.ErrInvalidKey, MinSaltSize)
	}
	return argon2.IDKey(passphrase, salt, argon2Time, argon2Memory, argon2Threads, crypto.AESKeySize256), nil
}

// Zero overwrites key material in place
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
