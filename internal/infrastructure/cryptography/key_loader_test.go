//go:build unit
// +build unit

package cryptography

import (
	"bytes"
	"encoding/base64"
	"path/filepath"
	"testing"

	"github.com/AntrikshRawat/DocAI-Muj-hackx-3.0/internal/domain/crypto"
	"github.com/AntrikshRawat/DocAI-Muj-hackx-3.0/internal/pkg/config"
	"github.com/AntrikshRawat/DocAI-Muj-hackx-3.0/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadKey(t *testing.T) {
	key := testutil.NewTestKey(t)
	encoded := testutil.EncodeKey(key)

	t.Run("InlineKey", func(t *testing.T) {
		loaded, err := LoadKey(config.EncryptionSettings{Key: encoded})
		require.NoError(t, err)
		assert.Equal(t, key, loaded)
	})

	t.Run("KeyFileWithTrailingNewline", func(t *testing.T) {
		path := testutil.CreateTestFile(t, "report.key", []byte(encoded+"\n"))

		loaded, err := LoadKey(config.EncryptionSettings{KeyFile: path})
		require.NoError(t, err)
		assert.Equal(t, key, loaded)
	})

	t.Run("MissingKeyFile", func(t *testing.T) {
		_, err := LoadKey(config.EncryptionSettings{KeyFile: filepath.Join(t.TempDir(), "absent.key")})
		assert.Error(t, err)
	})

	t.Run("NoKey", func(t *testing.T) {
		_, err := LoadKey(config.EncryptionSettings{})
		assert.ErrorIs(t, err, crypto.ErrInvalidKey)
	})

	t.Run("ShortKey", func(t *testing.T) {
		_, err := LoadKey(config.EncryptionSettings{Key: base64.StdEncoding.EncodeToString(key[:16])})
		assert.ErrorIs(t, err, crypto.ErrInvalidKey)
	})

	t.Run("NotBase64", func(t *testing.T) {
		_, err := LoadKey(config.EncryptionSettings{Key: "not base64 at all!"})
		assert.ErrorIs(t, err, crypto.ErrInvalidKey)
	})
}

func TestGenerateKey(t *testing.T) {
	a, err := GenerateKey()
	require.NoError(t, err)
	assert.Len(t, a, crypto.AESKeySize256)

	b, err := GenerateKey()
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestDeriveKeyFromPassphrase(t *testing.T) {
	salt := bytes.Repeat([]byte{0x42}, MinSaltSize)

	a, err := DeriveKeyFromPassphrase([]byte("correct horse battery staple"), salt)
	require.NoError(t, err)
	assert.Len(t, a, crypto.AESKeySize256)

	b, err := DeriveKeyFromPassphrase([]byte("correct horse battery staple"), salt)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := DeriveKeyFromPassphrase([]byte("correct horse battery staple"), bytes.Repeat([]byte{0x43}, MinSaltSize))
	require.NoError(t, err)
	assert.NotEqual(t, a, c)

	_, err = DeriveKeyFromPassphrase(nil, salt)
	assert.ErrorIs(t, err, crypto.ErrInvalidKey)

	_, err = DeriveKeyFromPassphrase([]byte("pass"), salt[:8])
	assert.ErrorIs(t, err, crypto.ErrInvalidKey)
}

func TestZero(t *testing.T) {
	b := []byte{1, 2, 3}
	Zero(b)
	assert.Equal(t, []byte{0, 0, 0}, b)
}
