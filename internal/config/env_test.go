package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_ROOT_KEY_PATH": "/home/user/.gitvault/root.key",
		"APP_VERSION":       "1.2.3",

		"REMOTE_BASE_URL":        "https://files.example.com",
		"REMOTE_CREDENTIAL":      "bearer-secret",
		"REMOTE_REQUEST_TIMEOUT": "30s",

		// Storage has nested prefixes: STORAGE_ + DB_
		"STORAGE_DB_DATABASE_URI": "/home/user/.gitvault/vault.db",

		"SERVER_ADDRESS":         "localhost:8080",
		"SERVER_DATA_DIR":        "/var/blobs",
		"SERVER_TOKEN_SIGN_KEY":  "sign_secret",
		"SERVER_REQUEST_TIMEOUT": "15s",

		"SYNC_INTERVAL":   "5m",
		"SYNC_BLOCK_SIZE": "8192",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "/home/user/.gitvault/root.key", cfg.App.RootKeyPath)
	assert.Equal(t, "1.2.3", cfg.App.Version)

	assert.Equal(t, "https://files.example.com", cfg.Remote.BaseURL)
	assert.Equal(t, "bearer-secret", cfg.Remote.Credential)
	assert.Equal(t, 30*time.Second, cfg.Remote.RequestTimeout)

	assert.Equal(t, "/home/user/.gitvault/vault.db", cfg.Storage.DB.DSN)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "/var/blobs", cfg.Server.DataDir)
	assert.Equal(t, "sign_secret", cfg.Server.TokenSignKey)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)

	assert.Equal(t, 5*time.Minute, cfg.Sync.Interval)
	assert.Equal(t, 8192, cfg.Sync.BlockSize)
}

func TestParseEnv_PartialFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"REMOTE_BASE_URL": "http://localhost:8080",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", cfg.Remote.BaseURL)
	assert.Empty(t, cfg.Storage.DB.DSN)
	assert.Zero(t, cfg.Sync.Interval)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"SYNC_INTERVAL": "not-a-duration",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	assert.Error(t, err)
}
