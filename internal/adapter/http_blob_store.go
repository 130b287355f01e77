package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sethvargo/go-retry"
)

type HTTPBlobStoreConfig struct {
	BaseURL    string
	Credential string
	Timeout    time.Duration
}

type httpBlobStore struct {
	client *resty.Client

	mu         sync.RWMutex
	credential string
}

func NewHTTPBlobStore(cfg HTTPBlobStoreConfig) BlobStore {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpBlobStore{client: cli, credential: strings.TrimSpace(cfg.Credential)}
}

func (h *httpBlobStore) SetCredential(credential string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.credential = strings.TrimSpace(credential)
}

func (h *httpBlobStore) Credential() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.credential
}

func (h *httpBlobStore) Download(ctx context.Context, name string) ([]byte, error) {
	var body []byte

	err := h.withRetry(ctx, func(ctx context.Context) error {
		resp, err := h.authedRequest(ctx).Get("/api/blobs/" + name)
		if err != nil {
			return retry.RetryableError(fmt.Errorf("download request: %w", err))
		}

		// a missing object is an empty remote, not a failure
		if resp.StatusCode() == http.StatusNotFound {
			body = nil
			return nil
		}

		if mapErr := mapHTTPError(resp); mapErr != nil {
			return retryableServerError(resp, mapErr)
		}

		body = resp.Body()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return body, nil
}

func (h *httpBlobStore) Upload(ctx context.Context, name string, data []byte) error {
	return h.withRetry(ctx, func(ctx context.Context) error {
		resp, err := h.authedRequest(ctx).
			SetHeader("Content-Type", "application/octet-stream").
			SetBody(data).
			Put("/api/blobs/" + name)
		if err != nil {
			return retry.RetryableError(fmt.Errorf("upload request: %w", err))
		}

		if mapErr := mapHTTPError(resp); mapErr != nil {
			return retryableServerError(resp, mapErr)
		}

		return nil
	})
}

func (h *httpBlobStore) Ping(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Get("/ping")
	if err != nil {
		return fmt.Errorf("ping request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpBlobStore) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if credential := h.Credential(); credential != "" {
		req.SetHeader("Authorization", "Bearer "+credential)
	}
	return req
}

func (h *httpBlobStore) withRetry(ctx context.Context, op func(context.Context) error) error {
	backoff := retry.WithMaxRetries(3, retry.NewFibonacci(250*time.Millisecond))
	return retry.Do(ctx, backoff, op)
}

// retryableServerError marks 5xx responses as retryable; client errors such
// as 401 or 404 are returned as-is because retrying cannot fix them.
func retryableServerError(resp *resty.Response, err error) error {
	if resp.StatusCode() >= http.StatusInternalServerError {
		return retry.RetryableError(err)
	}
	return err
}

// IsAuthError reports whether err indicates a rejected credential.
func IsAuthError(err error) bool {
	return errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrForbidden)
}
