package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Cross-source invariants are enforced on the per-role views instead
// ([ClientConfig.validate], [BlobHostConfig.validate]), because most fields
// are only required by one of the two binaries.
func (cfg *StructuredConfig) validate() error {
	if cfg.Sync.BlockSize < 0 {
		return ErrInvalidSyncConfigs
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Remote.BaseURL == "" || cfg.Remote.RequestTimeout == 0 {
		return ErrInvalidRemoteConfigs
	}

	if cfg.Sync.Interval == 0 {
		return ErrInvalidSyncConfigs
	}

	if cfg.App.RootKeyPath == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *BlobHostConfig) validate() error {
	if cfg.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.DataDir == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.TokenSignKey == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}
