package crypto

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKey(t *testing.T) []byte {
	t.Helper()
	key := make([]byte, KeySize)
	_, err := rand.Read(key)
	require.NoError(t, err)
	return key
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	key := testKey(t)

	payloads := [][]byte{
		nil,
		{},
		[]byte("a"),
		[]byte("Hello, GitVault!"),
		bytes.Repeat([]byte{0x42}, 10_000),
	}

	for _, plaintext := range payloads {
		env, err := Encrypt(plaintext, key)
		require.NoError(t, err)

		got, err := Decrypt(env, key)
		require.NoError(t, err)
		assert.Equal(t, []byte(plaintext), append([]byte{}, got...))
	}
}

func TestEncrypt_FreshNoncePerCall(t *testing.T) {
	key := testKey(t)
	plaintext := []byte("same plaintext, same key")

	first, err := Encrypt(plaintext, key)
	require.NoError(t, err)
	second, err := Encrypt(plaintext, key)
	require.NoError(t, err)

	assert.NotEqual(t, first.Nonce, second.Nonce)
	assert.NotEqual(t, first.Ciphertext, second.Ciphertext)
}

func TestEncrypt_RejectsBadKeyLength(t *testing.T) {
	for _, n := range []int{0, 16, 31, 33, 64} {
		_, err := Encrypt([]byte("data"), make([]byte, n))
		assert.ErrorIs(t, err, ErrInvalidKeyLength, "key length %d", n)
	}

	_, err := Decrypt(Envelope{}, make([]byte, 16))
	assert.ErrorIs(t, err, ErrInvalidKeyLength)
}

func TestDecrypt_TamperDetection(t *testing.T) {
	key := testKey(t)

	for _, plaintext := range [][]byte{{}, []byte("Hello, GitVault!")} {
		env, err := Encrypt(plaintext, key)
		require.NoError(t, err)
		serialized := env.Serialize()

		// Flip every bit of the serialized envelope, one at a time.
		for i := range serialized {
			for bit := 0; bit < 8; bit++ {
				mutated := append([]byte{}, serialized...)
				mutated[i] ^= 1 << bit

				parsed, err := ParseEnvelope(mutated)
				require.NoError(t, err)

				_, err = Decrypt(parsed, key)
				assert.ErrorIs(t, err, ErrAuthenticationFailed,
					"byte %d bit %d accepted after mutation", i, bit)
			}
		}
	}
}

func TestDecrypt_WrongKey(t *testing.T) {
	env, err := Encrypt([]byte("secret"), testKey(t))
	require.NoError(t, err)

	_, err = Decrypt(env, testKey(t))
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestSerializeParse_RoundTrip(t *testing.T) {
	key := testKey(t)

	env, err := Encrypt([]byte("Hello, GitVault!"), key)
	require.NoError(t, err)

	parsed, err := ParseEnvelope(env.Serialize())
	require.NoError(t, err)
	assert.Equal(t, env.Nonce, parsed.Nonce)
	assert.Equal(t, env.Tag, parsed.Tag)
	assert.Equal(t, env.Ciphertext, parsed.Ciphertext)

	plaintext, err := Decrypt(parsed, key)
	require.NoError(t, err)
	assert.Equal(t, []byte("Hello, GitVault!"), plaintext)
}

func TestParseEnvelope_RejectsShortInput(t *testing.T) {
	for _, n := range []int{0, 1, NonceSize, NonceSize + TagSize - 1} {
		_, err := ParseEnvelope(make([]byte, n))
		assert.ErrorIs(t, err, ErrEnvelopeTooShort, "input length %d", n)
	}

	// Exactly nonce + tag is a valid envelope of an empty plaintext.
	env, err := Encrypt(nil, testKey(t))
	require.NoError(t, err)
	_, err = ParseEnvelope(env.Serialize())
	assert.NoError(t, err)
}
