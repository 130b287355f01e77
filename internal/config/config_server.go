package config

import (
	"fmt"
	"time"
)

// BlobHostConfig is the configuration view for the development blob host.
type BlobHostConfig struct {
	// HTTPAddress is the listen address in "host:port" format.
	HTTPAddress string
	// DataDir is the directory holding uploaded objects.
	DataDir string
	// TokenSignKey signs and verifies bearer tokens.
	TokenSignKey string
	// RequestTimeout bounds a single inbound request.
	RequestTimeout time.Duration
}

// GetBlobHostConfig builds and validates the blob-host config view from the
// merged structured configuration.
func GetBlobHostConfig() (*BlobHostConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	hostCfg := &BlobHostConfig{
		HTTPAddress:    cfg.Server.HTTPAddress,
		DataDir:        cfg.Server.DataDir,
		TokenSignKey:   cfg.Server.TokenSignKey,
		RequestTimeout: cfg.Server.RequestTimeout,
	}

	return hostCfg, hostCfg.validate()
}
