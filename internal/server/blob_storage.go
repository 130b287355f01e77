package server

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	indexObjectName  = "index.bin"
	dataObjectPrefix = "data/"
	dataObjectSuffix = ".bin"

	// object names under data/ are lowercase hex digests; 64 characters is
	// a 32-byte digest, shorter digests are tolerated down to 16 bytes.
	minHexNameLen = 32
	maxHexNameLen = 64
)

// fileBlobStorage keeps uploaded objects as flat files under a root
// directory. Writes are last-write-wins, matching the remote contract the
// sync engine is built around.
type fileBlobStorage struct {
	root string
}

func newFileBlobStorage(root string) (*fileBlobStorage, error) {
	if err := os.MkdirAll(filepath.Join(root, "data"), 0o700); err != nil {
		return nil, fmt.Errorf("error creating blob storage directory: %w", err)
	}
	return &fileBlobStorage{root: root}, nil
}

// Get returns the stored bytes of the named object or [ErrObjectNotFound].
func (s *fileBlobStorage) Get(name string) ([]byte, error) {
	if err := validateObjectName(name); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.objectPath(name))
	if os.IsNotExist(err) {
		return nil, ErrObjectNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error reading object %s: %w", name, err)
	}

	return data, nil
}

// Put stores the given bytes under the named object, replacing any previous
// content.
func (s *fileBlobStorage) Put(name string, data []byte) error {
	if err := validateObjectName(name); err != nil {
		return err
	}

	if err := os.WriteFile(s.objectPath(name), data, 0o600); err != nil {
		return fmt.Errorf("error writing object %s: %w", name, err)
	}

	return nil
}

func (s *fileBlobStorage) objectPath(name string) string {
	return filepath.Join(s.root, filepath.FromSlash(name))
}

// validateObjectName accepts exactly the names the client produces: the
// fixed index object and hex-named data objects. Everything else, path
// traversal attempts included, is rejected with [ErrInvalidObjectName].
func validateObjectName(name string) error {
	if name == indexObjectName {
		return nil
	}

	hexPart, ok := strings.CutPrefix(name, dataObjectPrefix)
	if !ok {
		return ErrInvalidObjectName
	}
	hexPart, ok = strings.CutSuffix(hexPart, dataObjectSuffix)
	if !ok {
		return ErrInvalidObjectName
	}

	if len(hexPart) < minHexNameLen || len(hexPart) > maxHexNameLen {
		return ErrInvalidObjectName
	}
	for _, r := range hexPart {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return ErrInvalidObjectName
		}
	}

	return nil
}
