package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func TestParseJSON_AllFields(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{
			"root_key_path": "/keys/root.key",
			"version":       "0.9.0",
		},
		"remote": map[string]any{
			"base_url":        "https://files.example.com",
			"credential":      "tok",
			"request_timeout": "45s",
		},
		"storage": map[string]any{
			"db": map[string]any{"dsn": "/data/vault.db"},
		},
		"server": map[string]any{
			"http_address":    "0.0.0.0:9000",
			"data_dir":        "/srv/blobs",
			"token_sign_key":  "sign",
			"request_timeout": "10s",
		},
		"sync": map[string]any{
			"interval":   "2m",
			"block_size": 4096,
		},
	})

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "/keys/root.key", cfg.App.RootKeyPath)
	assert.Equal(t, "0.9.0", cfg.App.Version)
	assert.Equal(t, "https://files.example.com", cfg.Remote.BaseURL)
	assert.Equal(t, "tok", cfg.Remote.Credential)
	assert.Equal(t, 45*time.Second, cfg.Remote.RequestTimeout)
	assert.Equal(t, "/data/vault.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "0.0.0.0:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, "/srv/blobs", cfg.Server.DataDir)
	assert.Equal(t, "sign", cfg.Server.TokenSignKey)
	assert.Equal(t, 10*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 2*time.Minute, cfg.Sync.Interval)
	assert.Equal(t, 4096, cfg.Sync.BlockSize)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON("/nonexistent/config.json")
	assert.Error(t, err)
}

func TestParseJSON_MalformedJSON(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.WriteString("{not valid json")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	_, err = parseJSON(f.Name())
	assert.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	var d Duration

	require.NoError(t, json.Unmarshal([]byte(`"1h30m"`), &d))
	assert.Equal(t, Duration(90*time.Minute), d)

	require.NoError(t, json.Unmarshal([]byte(`1000000000`), &d))
	assert.Equal(t, Duration(time.Second), d)

	assert.Error(t, json.Unmarshal([]byte(`"bogus"`), &d))
}
