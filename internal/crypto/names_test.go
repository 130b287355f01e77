package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObfuscateName_Deterministic(t *testing.T) {
	key := testKey(t)

	first, err := ObfuscateName(key, "record-1")
	require.NoError(t, err)
	second, err := ObfuscateName(key, "record-1")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, first, 64) // hex of a 32-byte digest
}

func TestObfuscateName_DistinctAcrossKeysAndIDs(t *testing.T) {
	k1 := testKey(t)
	k2 := testKey(t)

	n1, err := ObfuscateName(k1, "record-1")
	require.NoError(t, err)
	n2, err := ObfuscateName(k2, "record-1")
	require.NoError(t, err)
	assert.NotEqual(t, n1, n2, "same id under different keys must not correlate")

	n3, err := ObfuscateName(k1, "record-2")
	require.NoError(t, err)
	assert.NotEqual(t, n1, n3)
}

func TestObfuscateName_RejectsBadKey(t *testing.T) {
	_, err := ObfuscateName(make([]byte, 16), "record-1")
	assert.ErrorIs(t, err, ErrInvalidKeyLength)
}

func TestContentHash_StableAndDomainSeparated(t *testing.T) {
	key := testKey(t)

	h1, err := ContentHash(key, []byte("wire-bytes"))
	require.NoError(t, err)
	h2, err := ContentHash(key, []byte("wire-bytes"))
	require.NoError(t, err)
	assert.Equal(t, h1, h2)

	h3, err := ContentHash(key, []byte("other-bytes"))
	require.NoError(t, err)
	assert.NotEqual(t, h1, h3)

	// A content hash must never collide with the object name of the same
	// bytes under the same key.
	name, err := ObfuscateName(key, "wire-bytes")
	require.NoError(t, err)
	assert.NotEqual(t, name, h1)
}

func TestKeyChainService(t *testing.T) {
	kc := NewKeyChainService()

	k1, err := kc.GenerateRootKey()
	require.NoError(t, err)
	k2, err := kc.GenerateRootKey()
	require.NoError(t, err)

	assert.Len(t, k1, KeySize)
	assert.NotEqual(t, k1, k2)

	salt := []byte("fixed-test-salt")
	d1 := kc.DeriveKey("483921", salt)
	d2 := kc.DeriveKey("483921", salt)
	d3 := kc.DeriveKey("483922", salt)

	assert.Len(t, d1, KeySize)
	assert.Equal(t, d1, d2)
	assert.NotEqual(t, d1, d3)
}
