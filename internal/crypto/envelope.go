// Package crypto implements the storage envelope used as the atomic unit of
// remote persistence: XChaCha20-Poly1305 authenticated encryption, block
// padding against size-based traffic analysis, keyed object-name
// obfuscation, and root-key handling.
package crypto

import (
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20poly1305"
)

const (
	// KeySize is the only accepted symmetric key length.
	KeySize = chacha20poly1305.KeySize

	// NonceSize is the XChaCha20-Poly1305 extended nonce length (24 bytes).
	NonceSize = chacha20poly1305.NonceSizeX

	// TagSize is the Poly1305 authentication tag length (16 bytes).
	TagSize = chacha20poly1305.Overhead
)

// Envelope is a sealed payload: a fresh random nonce, the Poly1305 tag and
// the ciphertext. Its serialized form is the flat concatenation
// nonce ‖ tag ‖ ciphertext.
type Envelope struct {
	Nonce      []byte
	Tag        []byte
	Ciphertext []byte
}

// Encrypt seals plaintext under key. The nonce is drawn from the OS CSPRNG
// on every call, never derived or counter-based, so two calls with the same
// plaintext and key produce different envelopes.
//
// Returns [ErrInvalidKeyLength] if key is not exactly 32 bytes.
func Encrypt(plaintext, key []byte) (Envelope, error) {
	if len(key) != KeySize {
		return Envelope{}, ErrInvalidKeyLength
	}

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return Envelope{}, fmt.Errorf("create aead: %w", err)
	}

	nonce := make([]byte, NonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return Envelope{}, fmt.Errorf("generate nonce: %w", err)
	}

	// Seal appends ciphertext ‖ tag; split the tag out so the envelope
	// keeps the three parts separately.
	sealed := aead.Seal(nil, nonce, plaintext, nil)
	split := len(sealed) - TagSize

	return Envelope{
		Nonce:      nonce,
		Tag:        sealed[split:],
		Ciphertext: sealed[:split],
	}, nil
}

// Decrypt opens the envelope under key. It fails closed: any single-bit
// mutation of the nonce, tag, or ciphertext yields
// [ErrAuthenticationFailed], never partial plaintext.
func Decrypt(env Envelope, key []byte) ([]byte, error) {
	if len(key) != KeySize {
		return nil, ErrInvalidKeyLength
	}
	if len(env.Nonce) != NonceSize || len(env.Tag) != TagSize {
		return nil, ErrEnvelopeTooShort
	}

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("create aead: %w", err)
	}

	// Open expects ciphertext ‖ tag.
	sealed := make([]byte, 0, len(env.Ciphertext)+TagSize)
	sealed = append(sealed, env.Ciphertext...)
	sealed = append(sealed, env.Tag...)

	plaintext, err := aead.Open(nil, env.Nonce, sealed, nil)
	if err != nil {
		return nil, ErrAuthenticationFailed
	}
	return plaintext, nil
}

// Serialize flattens the envelope into nonce ‖ tag ‖ ciphertext.
func (e Envelope) Serialize() []byte {
	out := make([]byte, 0, len(e.Nonce)+len(e.Tag)+len(e.Ciphertext))
	out = append(out, e.Nonce...)
	out = append(out, e.Tag...)
	out = append(out, e.Ciphertext...)
	return out
}

// ParseEnvelope splits a serialized envelope back into its three parts.
// Returns [ErrEnvelopeTooShort] for inputs shorter than nonce + tag. An
// empty ciphertext is valid: sealing an empty plaintext produces exactly
// nonce + tag bytes.
func ParseEnvelope(data []byte) (Envelope, error) {
	if len(data) < NonceSize+TagSize {
		return Envelope{}, ErrEnvelopeTooShort
	}

	return Envelope{
		Nonce:      data[:NonceSize],
		Tag:        data[NonceSize : NonceSize+TagSize],
		Ciphertext: data[NonceSize+TagSize:],
	}, nil
}
