package crypto

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// ObfuscateName derives the remote object name for a record identifier:
// keyed BLAKE2b-256 of the identifier under the root key, hex-encoded.
//
// The mapping is deterministic per (key, identifier) so re-uploads are
// idempotent and lookups need no reverse index, but without the key it is
// infeasible to invert a name or correlate names across different root
// keys.
func ObfuscateName(rootKey []byte, identifier string) (string, error) {
	if len(rootKey) != KeySize {
		return "", ErrInvalidKeyLength
	}

	h, err := blake2b.New256(rootKey)
	if err != nil {
		return "", fmt.Errorf("create keyed hash: %w", err)
	}
	h.Write([]byte(identifier))

	return hex.EncodeToString(h.Sum(nil)), nil
}
