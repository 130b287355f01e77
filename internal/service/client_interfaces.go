package service

import (
	"context"
	"time"

	"github.com/MKhiriev/gitvault/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// CryptoService is the client-side sealing facade over the storage envelope.
// The root key must be set via SetRootKey before calling any other method.
type CryptoService interface {
	// SetRootKey stores the 32-byte vault root key used for all subsequent
	// seal, open, naming, and hashing operations. It is called once at
	// startup or after the device-linking handshake completes.
	SetRootKey(key []byte) error

	// Initialized reports whether a root key has been set.
	Initialized() bool

	// SealRecord turns a plaintext wire payload into remote object bytes:
	// pad to the block size, encrypt, serialize the envelope.
	SealRecord(wire []byte) ([]byte, error)

	// OpenRecord reverses SealRecord: parse the envelope, decrypt,
	// strip padding. Returns an error on any authentication failure.
	OpenRecord(object []byte) ([]byte, error)

	// ObjectName derives the deterministic obfuscated remote name for a
	// record identifier.
	ObjectName(identifier string) (string, error)

	// ContentHash computes the keyed digest of a plaintext wire payload
	// used by the push path to detect unchanged records.
	ContentHash(wire []byte) (string, error)
}

// RecordService manages plaintext vault records against the local store.
// Records are sealed before they touch the database; reads unseal on the way
// out.
type RecordService interface {
	// Create assigns a fresh UUIDv7 identifier (unless rec already carries
	// one), stamps creation and modification times, seals the record, and
	// persists it. Returns the stored record with identifiers filled in.
	Create(ctx context.Context, rec models.Record) (models.Record, error)

	// Get loads and unseals the record identified by id.
	// Returns [store.ErrRecordNotFound] if no such record exists.
	Get(ctx context.Context, id string) (models.Record, error)

	// GetAll loads and unseals every record of the given type, newest
	// first. An empty recordType selects all families.
	GetAll(ctx context.Context, recordType models.RecordType) ([]models.Record, error)

	// Update bumps the record's modification time, reseals it, and
	// persists the new payload. Returns [store.ErrRecordNotFound] if the
	// record does not exist.
	Update(ctx context.Context, rec models.Record) error

	// Delete removes the record and its push bookkeeping from the local
	// store. The record disappears from the remote index on the next push.
	Delete(ctx context.Context, id string) error
}

// SyncEngine synchronises the local vault with the remote blob store. Only
// one cycle may be in flight per engine; concurrent calls fail with
// [ErrSyncInProgress].
type SyncEngine interface {
	// Pull downloads the remote index and merges remote records into the
	// local store. The index counter is checked against the last observed
	// value before any merge; a lower remote counter aborts the pull with
	// [ErrRollbackDetected]. Objects that fail to download, open, or
	// decode are skipped with a warning. The observed counter is persisted
	// only after the merge completes.
	Pull(ctx context.Context) error

	// Push uploads changed local records and then a rebuilt index with an
	// incremented counter. Records whose content hash matches the last
	// pushed value are skipped. An empty local vault makes Push a no-op.
	// If the remote counter moved since the last pull, Push fails with
	// [ErrRemoteChanged] before the index is uploaded so the caller can
	// pull and retry.
	Push(ctx context.Context) error

	// FullSync performs Pull followed by Push as a single in-flight cycle.
	FullSync(ctx context.Context) error
}

// SyncJob is a background worker that periodically runs FullSync.
type SyncJob interface {
	// Start launches the background sync goroutine. It syncs every
	// interval, defaulting to 5 minutes if interval is zero or negative.
	// Any previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it
	// has fully terminated.
	Stop()
}
