package testutil

import (
	"crypto/rand"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"
)

// NewTestKey returns a fresh random 256-bit key
func NewTestKey(t *testing.T) []byte {
	t.Helper()

	key := make([]byte, 32)
	_, err := rand.Read(key)
	require.NoError(t, err)
	return key
}

// EncodeKey returns the base64 form of key as it appears in configuration
func EncodeKey(key []byte) string {
	return base64.StdEncoding.EncodeToString(key)
}
