package cryptography

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"

	"github.com/AntrikshRawat/DocAI-Muj-hackx-3.0/internal/domain/crypto"
	"github.com/AntrikshRawat/DocAI-Muj-hackx-3.0/internal/pkg/logger"
)

// aesGCMCipher struct that implements the AuthenticatedCipher interface.
// Only the expanded key schedule inside aead is retained, never the raw key bytes.
type aesGCMCipher struct {
	aead   cipher.AEAD
	random io.Reader
	logger logger.Logger
}

// NewAESGCMCipher creates an AES-256-GCM cipher bound to key. The caller may zero key afterwards.
func NewAESGCMCipher(key []byte, logger logger.Logger) (crypto.AuthenticatedCipher, error) {
	if len(key) != crypto.AESKeySize256 {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", crypto.ErrInvalidKey, crypto.AESKeySize256, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}

	aead, err := cipher.NewGCMWithTagSize(block, crypto.GCMTagSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM mode: %w", err)
	}

	return &aesGCMCipher{
		aead:   aead,
		random: rand.Reader,
		logger: logger,
	}, nil
}

func (c *aesGCMCipher) Algorithm() string {
	return crypto.AlgorithmAES256GCM
}

// Seal encrypts plaintext under a fresh 96-bit nonce and splits the tag off the GCM output
func (c *aesGCMCipher) Seal(plaintext, associatedData []byte) (*crypto.SealedPayload, error) {
	nonce := make([]byte, crypto.GCMNonceSize)
	if _, err := io.ReadFull(c.random, nonce); err != nil {
		c.logger.Error("failed to draw nonce", "error", err)
		return nil, fmt.Errorf("%w: %w", crypto.ErrRandomSource, err)
	}

	sealed := c.aead.Seal(nil, nonce, plaintext, associatedData)
	split := len(sealed) - crypto.GCMTagSize

	return &crypto.SealedPayload{
		Algorithm:  crypto.AlgorithmAES256GCM,
		Ciphertext: sealed[:split:split],
		Nonce:      nonce,
		Tag:        sealed[split:],
	}, nil
}

// Open rejoins ciphertext and tag and verifies them in constant time.
// Nothing but ErrAuthenticationFailure leaves this function on a bad payload.
func (c *aesGCMCipher) Open(payload *crypto.SealedPayload, associatedData []byte) ([]byte, error) {
	if payload == nil {
		return nil, fmt.Errorf("%w: empty payload", crypto.ErrAuthenticationFailure)
	}
	if payload.Algorithm != crypto.AlgorithmAES256GCM {
		return nil, fmt.Errorf("%w: unsupported algorithm %q", crypto.ErrAuthenticationFailure, payload.Algorithm)
	}
	if len(payload.Nonce) != crypto.GCMNonceSize || len(payload.Tag) != crypto.GCMTagSize {
		return nil, fmt.Errorf("%w: malformed nonce or tag", crypto.ErrAuthenticationFailure)
	}

	sealed := make([]byte, 0, len(payload.Ciphertext)+crypto.GCMTagSize)
	sealed = append(sealed, payload.Ciphertext...)
	sealed = append(sealed, payload.Tag...)

	plaintext, err := c.aead.Open(nil, payload.Nonce, sealed, associatedData)
	if err != nil {
		return nil, crypto.ErrAuthenticationFailure
	}
	if plaintext == nil {
		plaintext = []byte{}
	}

	return plaintext, nil
}
