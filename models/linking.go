package models

import "time"

// LinkingPayload is the ephemeral bootstrap secret exchanged during device
// linking. It is never persisted: the source device creates it on demand,
// the target device consumes it once, and consumption must be rejected if
// CreatedAt is older than the handshake TTL.
type LinkingPayload struct {
	// RootKey is the 32-byte vault root key being handed to the new device.
	RootKey []byte `json:"root_key"`

	// StorageCredential optionally carries the bearer credential for the
	// remote blob store so the new device can sync immediately.
	StorageCredential string `json:"storage_credential,omitempty"`

	// CreatedAt is the payload creation time, checked against the TTL on
	// the consuming side after decryption succeeds.
	CreatedAt time.Time `json:"created_at"`
}

// LinkingTicket is what the source device hands to the user: the encrypted
// payload (rendered as a scannable code by the UI layer) and the short
// numeric code relayed over the second, human channel. The two travel over
// different channels; neither alone is sufficient to recover the root key.
type LinkingTicket struct {
	Payload []byte
	Code    string
}
