package client

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/gitvault/internal/crypto"
	"github.com/MKhiriev/gitvault/internal/logger"
)

// loadOrCreateRootKey reads the hex-encoded root key from path. On first
// run, when the file does not exist, it generates a fresh key via the
// keychain and writes it to path with owner-only permissions.
func loadOrCreateRootKey(path string, keychain crypto.KeyChainService, logger *logger.Logger) ([]byte, error) {
	key, err := readRootKeyFile(path)
	if err == nil {
		return key, nil
	}
	if !os.IsNotExist(err) {
		return nil, err
	}

	logger.Info().Str("path", path).Msg("no root key file, generating a new root key")

	key, err = keychain.GenerateRootKey()
	if err != nil {
		return nil, fmt.Errorf("error generating root key: %w", err)
	}
	if err := writeRootKeyFile(path, key); err != nil {
		return nil, err
	}

	return key, nil
}

func readRootKeyFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	key, err := hex.DecodeString(strings.TrimSpace(string(data)))
	if err != nil {
		return nil, fmt.Errorf("error decoding root key file %s: %w", path, err)
	}
	if len(key) != crypto.KeySize {
		return nil, crypto.ErrInvalidKeyLength
	}

	return key, nil
}

func writeRootKeyFile(path string, key []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("error creating root key directory: %w", err)
		}
	}

	encoded := hex.EncodeToString(key) + "\n"
	if err := os.WriteFile(path, []byte(encoded), 0o600); err != nil {
		return fmt.Errorf("error writing root key file %s: %w", path, err)
	}

	return nil
}
