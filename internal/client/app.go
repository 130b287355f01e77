package client

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/gitvault/internal/adapter"
	"github.com/MKhiriev/gitvault/internal/config"
	"github.com/MKhiriev/gitvault/internal/crypto"
	"github.com/MKhiriev/gitvault/internal/handshake"
	"github.com/MKhiriev/gitvault/internal/logger"
	"github.com/MKhiriev/gitvault/internal/service"
	"github.com/MKhiriev/gitvault/internal/store"
)

// App is the assembled client runtime. It owns the storage layer, the
// remote blob adapter, the client services, and the handshake service, and
// keeps the loaded root key for device-linking operations.
type App struct {
	cfg      *config.ClientConfig
	logger   *logger.Logger
	storages *store.ClientStorages
	blobs    adapter.BlobStore
	services *service.ClientServices

	handshake *handshake.Service
	keychain  crypto.KeyChainService
	rootKey   []byte
}

// NewApp wires the full client stack from the given configuration. The root
// key is loaded from cfg.App.RootKeyPath, or generated and written there on
// first run.
func NewApp(cfg *config.ClientConfig, logger *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating storages: %w", err)
	}

	blobs := adapter.NewHTTPBlobStore(adapter.HTTPBlobStoreConfig{
		BaseURL:    cfg.Remote.BaseURL,
		Credential: cfg.Remote.Credential,
		Timeout:    cfg.Remote.RequestTimeout,
	})

	services := service.NewClientServices(storages, blobs, cfg.Sync.BlockSize)
	keychain := crypto.NewKeyChainService()

	rootKey, err := loadOrCreateRootKey(cfg.App.RootKeyPath, keychain, logger)
	if err != nil {
		return nil, fmt.Errorf("error loading root key: %w", err)
	}
	if err := services.SetRootKey(rootKey); err != nil {
		return nil, fmt.Errorf("error setting root key: %w", err)
	}

	return &App{
		cfg:       cfg,
		logger:    logger,
		storages:  storages,
		blobs:     blobs,
		services:  services,
		handshake: handshake.NewService(keychain),
		keychain:  keychain,
		rootKey:   rootKey,
	}, nil
}

// Services exposes the wired client services to callers embedding the app
// in a larger program.
func (a *App) Services() *service.ClientServices {
	return a.services
}

// Run performs an initial full sync, starts the background sync job, and
// blocks until the process receives a stop signal.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	ctx = a.logger.WithContext(ctx)

	// a failed initial sync is not fatal, the background job retries
	if err := a.services.SyncEngine.FullSync(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("initial sync failed")
	}

	a.services.SyncJob.Start(ctx, a.cfg.Sync.Interval)
	defer a.services.SyncJob.Stop()

	a.logger.Info().Msg("client is running")
	<-ctx.Done()
	a.logger.Info().Msg("client shutdown")

	return nil
}
