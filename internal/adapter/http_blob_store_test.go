package adapter

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBlobStore(t *testing.T, handler http.Handler) BlobStore {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewHTTPBlobStore(HTTPBlobStoreConfig{
		BaseURL:    srv.URL,
		Credential: "test-credential",
		Timeout:    5 * time.Second,
	})
}

func TestDownload(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		store := newTestBlobStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/api/blobs/deadbeef", r.URL.Path)
			assert.Equal(t, "Bearer test-credential", r.Header.Get("Authorization"))
			w.Write([]byte("sealed-bytes"))
		}))

		data, err := store.Download(context.Background(), "deadbeef")

		require.NoError(t, err)
		assert.Equal(t, []byte("sealed-bytes"), data)
	})

	t.Run("absent object returns nil without error", func(t *testing.T) {
		store := newTestBlobStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		}))

		data, err := store.Download(context.Background(), "missing")

		require.NoError(t, err)
		assert.Nil(t, data)
	})

	t.Run("unauthorized", func(t *testing.T) {
		store := newTestBlobStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "bad token", http.StatusUnauthorized)
		}))

		_, err := store.Download(context.Background(), "deadbeef")

		require.ErrorIs(t, err, ErrUnauthorized)
		assert.True(t, IsAuthError(err))
	})

	t.Run("retries transient server errors", func(t *testing.T) {
		var calls atomic.Int32
		store := newTestBlobStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) == 1 {
				http.Error(w, "temporary", http.StatusInternalServerError)
				return
			}
			w.Write([]byte("recovered"))
		}))

		data, err := store.Download(context.Background(), "deadbeef")

		require.NoError(t, err)
		assert.Equal(t, []byte("recovered"), data)
		assert.Equal(t, int32(2), calls.Load())
	})
}

func TestUpload(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var received []byte
		store := newTestBlobStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)
			assert.Equal(t, "/api/blobs/cafebabe", r.URL.Path)

			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			received = body

			w.WriteHeader(http.StatusNoContent)
		}))

		err := store.Upload(context.Background(), "cafebabe", []byte("object-bytes"))

		require.NoError(t, err)
		assert.Equal(t, []byte("object-bytes"), received)
	})

	t.Run("forbidden is not retried", func(t *testing.T) {
		var calls atomic.Int32
		store := newTestBlobStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			http.Error(w, "read only", http.StatusForbidden)
		}))

		err := store.Upload(context.Background(), "cafebabe", []byte("data"))

		require.ErrorIs(t, err, ErrForbidden)
		assert.Equal(t, int32(1), calls.Load())
	})
}

func TestPing(t *testing.T) {
	t.Run("reachable", func(t *testing.T) {
		store := newTestBlobStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/ping", r.URL.Path)
			w.WriteHeader(http.StatusOK)
		}))

		require.NoError(t, store.Ping(context.Background()))
	})

	t.Run("rejected credential", func(t *testing.T) {
		store := newTestBlobStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "expired", http.StatusUnauthorized)
		}))

		err := store.Ping(context.Background())

		require.ErrorIs(t, err, ErrUnauthorized)
	})
}

func TestSetCredential(t *testing.T) {
	var gotAuth string
	store := newTestBlobStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))

	store.SetCredential("  rotated-credential  ")
	require.NoError(t, store.Ping(context.Background()))

	assert.Equal(t, "Bearer rotated-credential", gotAuth)
	assert.Equal(t, "rotated-credential", store.Credential())
}
