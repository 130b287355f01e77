package crypto

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// contentHashPrefix domain-separates content hashes from obfuscated object
// names, which use the same keyed hash under the same root key.
var contentHashPrefix = []byte("gitvault/content-hash-v1\x00")

// ContentHash computes a keyed BLAKE2b-256 digest of a record's plaintext
// wire form. The push path compares it against the hash persisted after the
// last successful upload to skip records that have not changed, which is
// necessary because encryption itself is non-deterministic.
func ContentHash(rootKey, data []byte) (string, error) {
	if len(rootKey) != KeySize {
		return "", ErrInvalidKeyLength
	}

	h, err := blake2b.New256(rootKey)
	if err != nil {
		return "", fmt.Errorf("create keyed hash: %w", err)
	}
	h.Write(contentHashPrefix)
	h.Write(data)

	return hex.EncodeToString(h.Sum(nil)), nil
}
