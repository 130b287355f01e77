package server

import (
	"fmt"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/gitvault/internal/config"
	"github.com/MKhiriev/gitvault/internal/logger"
)

// tokenIssuer is the expected issuer claim of device credentials.
const tokenIssuer = "gitvault"

// Handler serves the blob-host HTTP API.
type Handler struct {
	storage *fileBlobStorage
	cfg     *config.BlobHostConfig

	logger *logger.Logger
}

func NewHandler(cfg *config.BlobHostConfig, logger *logger.Logger) (*Handler, error) {
	storage, err := newFileBlobStorage(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("error creating blob storage: %w", err)
	}

	logger.Info().Msg("blob host handler created")
	return &Handler{
		storage: storage,
		cfg:     cfg,
		logger:  logger,
	}, nil
}

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/ping", h.ping)
	})

	// blob routes require a device credential
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/blobs/*", h.getBlob)
		r.Put("/api/blobs/*", h.putBlob)
	})

	return router
}
