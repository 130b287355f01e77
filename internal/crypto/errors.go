package crypto

import "errors"

var (
	// ErrInvalidKeyLength reports a key that is not exactly 32 bytes. It is
	// a caller error, raised before any cryptographic operation is
	// attempted.
	ErrInvalidKeyLength = errors.New("encryption key must be exactly 32 bytes")

	// ErrAuthenticationFailed reports a failed AEAD open: wrong key, or a
	// tampered nonce, tag, or ciphertext. The envelope layer never
	// distinguishes between those causes.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrEnvelopeTooShort reports a serialized envelope shorter than
	// nonce + tag.
	ErrEnvelopeTooShort = errors.New("serialized envelope too short")

	// ErrMalformedPadding reports a padded buffer whose length prefix is
	// missing or declares more bytes than the buffer holds.
	ErrMalformedPadding = errors.New("malformed padded payload")
)
