package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// RootKeyPath is the device root key file location.
	RootKeyPath string
	// Version is the application version string.
	Version string
}

// ClientRemote holds network settings used by the client blob-store adapter.
type ClientRemote struct {
	// BaseURL is the HTTP base URL of the remote blob store.
	BaseURL string
	// Credential is the bearer credential for the remote blob store.
	Credential string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientSync contains synchronization settings.
type ClientSync struct {
	// Interval defines how often the background sync job runs.
	Interval time.Duration
	// BlockSize is the padding granularity for remote objects.
	BlockSize int
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Remote contains blob-store addresses and timeouts.
	Remote ClientRemote
	// Storage contains client storage settings.
	Storage ClientStorage
	// Sync contains sync tuning settings.
	Sync ClientSync
}

// GetClientConfig builds and validates a client-specific config view from
// the merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting
// [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			RootKeyPath: cfg.App.RootKeyPath,
			Version:     cfg.App.Version,
		},
		Remote: ClientRemote{
			BaseURL:        cfg.Remote.BaseURL,
			Credential:     cfg.Remote.Credential,
			RequestTimeout: cfg.Remote.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Sync: ClientSync{
			Interval:  cfg.Sync.Interval,
			BlockSize: cfg.Sync.BlockSize,
		},
	}

	return clientCfg, clientCfg.validate()
}
