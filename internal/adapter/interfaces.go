// Package adapter provides transport-layer abstractions for communicating
// with the remote blob store.
//
// The primary abstraction is [BlobStore], which decouples the sync engine
// from the underlying protocol. The package ships an HTTP implementation
// ([NewHTTPBlobStore]) that treats the remote end as a dumb object store:
// opaque bytes in, opaque bytes out, no server-side interpretation.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401).
package adapter

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/blob_store_mock.go -package=mock

// BlobStore defines transport-agnostic access to the remote object store.
// Implementations are responsible for authentication header management,
// transient-failure retries, and mapping transport-level errors to the
// sentinel values defined in this package.
type BlobStore interface {
	// SetCredential stores the bearer credential attached to all subsequent
	// requests. It is called when a credential arrives via configuration or
	// through the device-linking handshake.
	SetCredential(credential string)

	// Credential returns the bearer credential currently stored in the
	// adapter, or an empty string if none has been set yet.
	Credential() string

	// Download fetches the object stored under name. A missing object is
	// not an error: Download returns (nil, nil) so callers can distinguish
	// first-run emptiness from transport failure.
	Download(ctx context.Context, name string) ([]byte, error)

	// Upload stores data under name, overwriting any existing object.
	Upload(ctx context.Context, name string, data []byte) error

	// Ping verifies that the remote store is reachable and the credential
	// is accepted.
	Ping(ctx context.Context) error
}
