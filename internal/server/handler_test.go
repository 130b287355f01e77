package server

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/gitvault/internal/config"
	"github.com/MKhiriev/gitvault/internal/logger"
	"github.com/MKhiriev/gitvault/internal/utils"
)

const testSignKey = "test-sign-key"

func newTestHost(t *testing.T) *httptest.Server {
	t.Helper()

	cfg := &config.BlobHostConfig{
		HTTPAddress:    "localhost:0",
		DataDir:        t.TempDir(),
		TokenSignKey:   testSignKey,
		RequestTimeout: time.Second,
	}

	handler, err := NewHandler(cfg, logger.Nop())
	require.NoError(t, err)

	srv := httptest.NewServer(handler.Init())
	t.Cleanup(srv.Close)

	return srv
}

func testCredential(t *testing.T) string {
	t.Helper()

	cred, err := utils.GenerateJWTToken(tokenIssuer, "test-device", time.Hour, testSignKey)
	require.NoError(t, err)

	return "Bearer " + cred.SignedString
}

func doRequest(t *testing.T, method, url, authHeader string, body []byte) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	return resp
}

func TestPing_NoAuthRequired(t *testing.T) {
	srv := newTestHost(t)

	resp := doRequest(t, http.MethodGet, srv.URL+"/ping", "", nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestBlobs_RequireCredential(t *testing.T) {
	srv := newTestHost(t)
	url := srv.URL + "/api/blobs/index.bin"

	t.Run("missing header", func(t *testing.T) {
		resp := doRequest(t, http.MethodGet, url, "", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("malformed header", func(t *testing.T) {
		resp := doRequest(t, http.MethodGet, url, "Bearer", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("garbage token", func(t *testing.T) {
		resp := doRequest(t, http.MethodGet, url, "Bearer not.a.token", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("wrong sign key", func(t *testing.T) {
		cred, err := utils.GenerateJWTToken(tokenIssuer, "intruder", time.Hour, "other-key")
		require.NoError(t, err)

		resp := doRequest(t, http.MethodGet, url, "Bearer "+cred.SignedString, nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestBlobs_PutGetRoundTrip(t *testing.T) {
	srv := newTestHost(t)
	auth := testCredential(t)

	name := "data/" + strings.Repeat("ef", 32) + ".bin"
	content := []byte("opaque sealed bytes")

	putResp := doRequest(t, http.MethodPut, srv.URL+"/api/blobs/"+name, auth, content)
	require.Equal(t, http.StatusNoContent, putResp.StatusCode)

	getResp := doRequest(t, http.MethodGet, srv.URL+"/api/blobs/"+name, auth, nil)
	require.Equal(t, http.StatusOK, getResp.StatusCode)
	assert.Equal(t, "application/octet-stream", getResp.Header.Get("Content-Type"))

	got, err := io.ReadAll(getResp.Body)
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestBlobs_IndexObject(t *testing.T) {
	srv := newTestHost(t)
	auth := testCredential(t)
	url := srv.URL + "/api/blobs/index.bin"

	putResp := doRequest(t, http.MethodPut, url, auth, []byte("index v1"))
	require.Equal(t, http.StatusNoContent, putResp.StatusCode)

	putResp = doRequest(t, http.MethodPut, url, auth, []byte("index v2"))
	require.Equal(t, http.StatusNoContent, putResp.StatusCode)

	getResp := doRequest(t, http.MethodGet, url, auth, nil)
	require.Equal(t, http.StatusOK, getResp.StatusCode)

	got, err := io.ReadAll(getResp.Body)
	require.NoError(t, err)
	assert.Equal(t, []byte("index v2"), got, "uploads are last-write-wins")
}

func TestBlobs_GetMissing(t *testing.T) {
	srv := newTestHost(t)

	resp := doRequest(t, http.MethodGet, srv.URL+"/api/blobs/index.bin", testCredential(t), nil)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestBlobs_InvalidName(t *testing.T) {
	srv := newTestHost(t)
	auth := testCredential(t)

	getResp := doRequest(t, http.MethodGet, srv.URL+"/api/blobs/notes.txt", auth, nil)
	assert.Equal(t, http.StatusBadRequest, getResp.StatusCode)

	putResp := doRequest(t, http.MethodPut, srv.URL+"/api/blobs/data/not-hex.bin", auth, []byte("x"))
	assert.Equal(t, http.StatusBadRequest, putResp.StatusCode)
}
