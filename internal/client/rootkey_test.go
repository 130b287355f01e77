package client

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/gitvault/internal/crypto"
	"github.com/MKhiriev/gitvault/internal/logger"
)

func TestLoadOrCreateRootKey_GeneratesOnFirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys", "root.key")
	keychain := crypto.NewKeyChainService()

	key, err := loadOrCreateRootKey(path, keychain, logger.Nop())
	require.NoError(t, err)
	require.Len(t, key, crypto.KeySize)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	// second load returns the same key instead of generating a new one
	again, err := loadOrCreateRootKey(path, keychain, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, key, again)
}

func TestReadRootKeyFile_RejectsBadContent(t *testing.T) {
	t.Run("not hex", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "root.key")
		require.NoError(t, os.WriteFile(path, []byte("not-hex-at-all"), 0o600))

		_, err := readRootKeyFile(path)
		require.Error(t, err)
	})

	t.Run("wrong length", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "root.key")
		require.NoError(t, os.WriteFile(path, []byte(hex.EncodeToString([]byte("short"))), 0o600))

		_, err := readRootKeyFile(path)
		require.ErrorIs(t, err, crypto.ErrInvalidKeyLength)
	})
}

func TestWriteRootKeyFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "root.key")
	key := make([]byte, crypto.KeySize)
	for i := range key {
		key[i] = byte(i)
	}

	require.NoError(t, writeRootKeyFile(path, key))

	got, err := readRootKeyFile(path)
	require.NoError(t, err)
	assert.Equal(t, key, got)
}
