package handshake

import "errors"

var (
	// ErrHandshakeFailed is the single error returned for any failure to
	// open a linking payload. It deliberately does not distinguish a wrong
	// code from tampered ciphertext, so an observer learns nothing from
	// the error text.
	ErrHandshakeFailed = errors.New("wrong code or corrupted data")

	// ErrLinkingExpired reports a payload that decrypted correctly but
	// whose creation timestamp is older than the handshake TTL.
	ErrLinkingExpired = errors.New("linking payload expired")
)
