package server

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/gitvault/internal/logger"
)

// maxObjectSize bounds a single uploaded object. Padded vault objects are
// small; anything beyond this is a misbehaving client.
const maxObjectSize = 32 << 20

// ping reports host liveness to syncing clients.
func (h *Handler) ping(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// getBlob returns the raw stored bytes of the named object.
//
// The object name is the full wildcard remainder of the URL, so both
// "index.bin" and "data/<hex>.bin" resolve through the same route. Content
// is served as an opaque octet stream; the host never looks inside.
func (h *Handler) getBlob(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	name := chi.URLParam(r, "*")

	data, err := h.storage.Get(name)
	switch {
	case errors.Is(err, ErrInvalidObjectName):
		log.Warn().Str("object", name).Err(err).Send()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case errors.Is(err, ErrObjectNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	case err != nil:
		log.Error().Str("object", name).Err(err).Msg("error reading object")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		log.Error().Str("object", name).Err(err).Msg("error writing response body")
	}
}

// putBlob stores the request body under the named object. Uploads are
// last-write-wins; the host keeps no version history.
func (h *Handler) putBlob(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	name := chi.URLParam(r, "*")

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxObjectSize))
	if err != nil {
		log.Warn().Str("object", name).Err(err).Msg("error reading request body")
		http.Error(w, "error reading request body", http.StatusBadRequest)
		return
	}

	err = h.storage.Put(name, data)
	switch {
	case errors.Is(err, ErrInvalidObjectName):
		log.Warn().Str("object", name).Err(err).Send()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case err != nil:
		log.Error().Str("object", name).Err(err).Msg("error storing object")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
