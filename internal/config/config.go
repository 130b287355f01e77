package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for gitvault.
// It aggregates all sub-configurations and is populated by merging values
// from environment variables, command-line flags, and an optional JSON
// file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string and
	// the root key file location.
	App App `envPrefix:"APP_"`

	// Remote holds the connection settings for the remote blob store.
	Remote Remote `envPrefix:"REMOTE_"`

	// Storage holds configuration for the local persistence backends.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds settings for the development blob host.
	Server Server `envPrefix:"SERVER_"`

	// Sync holds synchronization tuning settings.
	Sync Sync `envPrefix:"SYNC_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// RootKeyPath is the path of the file holding the device's 32-byte
	// vault root key, hex-encoded. Created on first run if absent.
	// Env: APP_ROOT_KEY_PATH
	RootKeyPath string `env:"ROOT_KEY_PATH"`

	// Version is the semantic version string of the running application
	// (e.g. "1.2.3").
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Remote holds connection settings for the remote blob store.
type Remote struct {
	// BaseURL is the HTTP base URL of the blob store
	// (e.g. "https://files.example.com").
	// Env: REMOTE_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// Credential is the bearer credential presented to the blob store on
	// every request. It may arrive via the device-linking handshake
	// instead of configuration.
	// Env: REMOTE_CREDENTIAL
	Credential string `env:"CREDENTIAL"`

	// RequestTimeout is the maximum duration allowed for a single blob
	// store request (e.g. "30s", "1m").
	// Env: REMOTE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for local persistence backends.
type Storage struct {
	// DB holds the local database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite file path used to open the local database
	// (e.g. "/home/user/.gitvault/vault.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds settings for the development blob host.
type Server struct {
	// HTTPAddress is the TCP address on which the blob host listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// DataDir is the directory where the blob host stores uploaded
	// objects as flat files.
	// Env: SERVER_DATA_DIR
	DataDir string `env:"DATA_DIR"`

	// TokenSignKey is the secret key used to sign and verify the bearer
	// tokens accepted by the blob host. Must be kept confidential.
	// Env: SERVER_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Sync holds synchronization tuning settings.
type Sync struct {
	// Interval defines how often the background sync job runs.
	// Env: SYNC_INTERVAL
	Interval time.Duration `env:"INTERVAL"`

	// BlockSize is the padding granularity in bytes for objects uploaded
	// to the remote store. Defaults to 4096 when unset.
	// Env: SYNC_BLOCK_SIZE
	BlockSize int `env:"BLOCK_SIZE"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
