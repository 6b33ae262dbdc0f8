//go:build unit
// +build unit

package cryptography

import (
	"bytes"
	"errors"
	"testing"

	"github.com/AntrikshRawat/DocAI-Muj-hackx-3.0/internal/domain/crypto"
	"github.com/AntrikshRawat/DocAI-Muj-hackx-3.0/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCipher(t *testing.T, key []byte) crypto.AuthenticatedCipher {
	t.Helper()
	logger := testutil.SetupTestLogger(t)
	c, err := NewAESGCMCipher(key, logger)
	require.NoError(t, err)
	return c
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("entropy exhausted")
}

func TestAESGCMCipher(t *testing.T) {
	key := testutil.NewTestKey(t)
	c := setupCipher(t, key)
	ad := []byte("report-id|owner|group")

	t.Run("RoundTrip", func(t *testing.T) {
		for _, size := range []int{1, 15, 16, 17, 4096, 1 << 20} {
			plaintext := bytes.Repeat([]byte{0x5A}, size)

			payload, err := c.Seal(plaintext, ad)
			require.NoError(t, err)
			assert.Equal(t, crypto.AlgorithmAES256GCM, payload.Algorithm)
			assert.Len(t, payload.Ciphertext, size)
			assert.Len(t, payload.Nonce, crypto.GCMNonceSize)
			assert.Len(t, payload.Tag, crypto.GCMTagSize)

			opened, err := c.Open(payload, ad)
			require.NoError(t, err)
			assert.Equal(t, plaintext, opened)
		}
	})

	t.Run("EmptyPlaintext", func(t *testing.T) {
		payload, err := c.Seal(nil, ad)
		require.NoError(t, err)
		assert.Empty(t, payload.Ciphertext)

		opened, err := c.Open(payload, ad)
		require.NoError(t, err)
		assert.Empty(t, opened)
	})

	t.Run("NonceUniqueness", func(t *testing.T) {
		plaintext := []byte(`{"hemoglobin": 13.5}`)
		seen := make(map[string]struct{})

		for i := 0; i < 1000; i++ {
			payload, err := c.Seal(plaintext, ad)
			require.NoError(t, err)

			_, dup := seen[string(payload.Nonce)]
			require.False(t, dup, "nonce repeated after %d seals", i)
			seen[string(payload.Nonce)] = struct{}{}
		}
	})

	t.Run("TamperedCiphertext", func(t *testing.T) {
		plaintext := []byte("%PDF-1.7 lab results")
		payload, err := c.Seal(plaintext, ad)
		require.NoError(t, err)

		for i := range payload.Ciphertext {
			tampered := *payload
			tampered.Ciphertext = bytes.Clone(payload.Ciphertext)
			tampered.Ciphertext[i] ^= 0x01

			opened, err := c.Open(&tampered, ad)
			assert.ErrorIs(t, err, crypto.ErrAuthenticationFailure)
			assert.Nil(t, opened)
		}
	})

	t.Run("TamperedTag", func(t *testing.T) {
		payload, err := c.Seal([]byte("tag check"), ad)
		require.NoError(t, err)

		for i := 0; i < crypto.GCMTagSize*8; i++ {
			tampered := *payload
			tampered.Tag = bytes.Clone(payload.Tag)
			tampered.Tag[i/8] ^= 1 << (i % 8)

			opened, err := c.Open(&tampered, ad)
			assert.ErrorIs(t, err, crypto.ErrAuthenticationFailure)
			assert.Nil(t, opened)
		}
	})

	t.Run("TamperedNonce", func(t *testing.T) {
		payload, err := c.Seal([]byte("nonce check"), ad)
		require.NoError(t, err)

		tampered := *payload
		tampered.Nonce = bytes.Clone(payload.Nonce)
		tampered.Nonce[0] ^= 0x80

		_, err = c.Open(&tampered, ad)
		assert.ErrorIs(t, err, crypto.ErrAuthenticationFailure)
	})

	t.Run("AssociatedDataMismatch", func(t *testing.T) {
		payload, err := c.Seal([]byte("bound"), ad)
		require.NoError(t, err)

		_, err = c.Open(payload, []byte("report-id|owner|other-group"))
		assert.ErrorIs(t, err, crypto.ErrAuthenticationFailure)
	})

	t.Run("WrongKey", func(t *testing.T) {
		payload, err := c.Seal([]byte("wrong key"), ad)
		require.NoError(t, err)

		other := setupCipher(t, testutil.NewTestKey(t))
		opened, err := other.Open(payload, ad)
		assert.ErrorIs(t, err, crypto.ErrAuthenticationFailure)
		assert.Nil(t, opened)
	})

	t.Run("MalformedLengths", func(t *testing.T) {
		payload, err := c.Seal([]byte("lengths"), ad)
		require.NoError(t, err)

		shortNonce := *payload
		shortNonce.Nonce = payload.Nonce[:8]
		_, err = c.Open(&shortNonce, ad)
		assert.ErrorIs(t, err, crypto.ErrAuthenticationFailure)

		shortTag := *payload
		shortTag.Tag = payload.Tag[:12]
		_, err = c.Open(&shortTag, ad)
		assert.ErrorIs(t, err, crypto.ErrAuthenticationFailure)

		_, err = c.Open(nil, ad)
		assert.ErrorIs(t, err, crypto.ErrAuthenticationFailure)
	})

	t.Run("UnsupportedAlgorithm", func(t *testing.T) {
		payload, err := c.Seal([]byte("algorithm"), ad)
		require.NoError(t, err)

		payload.Algorithm = "AES-128-CBC"
		_, err = c.Open(payload, ad)
		assert.ErrorIs(t, err, crypto.ErrAuthenticationFailure)
	})

	t.Run("RandomSourceFailure", func(t *testing.T) {
		broken := setupCipher(t, key)
		broken.(*aesGCMCipher).random = failingReader{}

		payload, err := broken.Seal([]byte("no entropy"), ad)
		assert.ErrorIs(t, err, crypto.ErrRandomSource)
		assert.Nil(t, payload)
	})
}

func TestNewAESGCMCipher_InvalidKeySize(t *testing.T) {
	logger := testutil.SetupTestLogger(t)

	for _, size := range []int{0, 16, 24, 31, 33} {
		_, err := NewAESGCMCipher(make([]byte, size), logger)
		assert.ErrorIs(t, err, crypto.ErrInvalidKey, "key size %d", size)
	}
}

func TestNewAESGCMCipher_KeyCanBeZeroedAfterConstruction(t *testing.T) {
	key := testutil.NewTestKey(t)
	keyCopy := bytes.Clone(key)
	c := setupCipher(t, key)

	payload, err := c.Seal([]byte("zeroed"), nil)
	require.NoError(t, err)

	Zero(key)

	opened, err := c.Open(payload, nil)
	require.NoError(t, err)
	assert.Equal(t, []byte("zeroed"), opened)

	reopened, err := setupCipher(t, keyCopy).Open(payload, nil)
	require.NoError(t, err)
	assert.Equal(t, opened, reopened)
}
