package store

import (
	"context"

	"github.com/MKhiriev/gitvault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// RecordRepository is the low-level local vault repository. Rows hold sealed
// payloads only; decryption happens in the service layer.
type RecordRepository interface {
	SaveRecord(ctx context.Context, rec models.StoredRecord) error
	GetRecord(ctx context.Context, id string) (models.StoredRecord, error)
	GetAllRecords(ctx context.Context, recordType models.RecordType) ([]models.StoredRecord, error)
	DeleteRecord(ctx context.Context, id string) error
}

// SyncStateRepository persists the synchronization bookkeeping: the last
// remote counter observed by this device and, per record, the content hash of
// the payload most recently pushed to the remote store.
type SyncStateRepository interface {
	LastCounter(ctx context.Context) (int64, error)
	SetLastCounter(ctx context.Context, counter int64) error
	PushedHash(ctx context.Context, recordID string) (string, error)
	SetPushedHash(ctx context.Context, recordID string, hash string) error
	DeletePushedHash(ctx context.Context, recordID string) error
}

// DeviceRepository is the local trust registry of linked devices.
type DeviceRepository interface {
	SaveDevice(ctx context.Context, device models.TrustedDevice) error
	GetAllDevices(ctx context.Context) ([]models.TrustedDevice, error)
	DeleteDevice(ctx context.Context, deviceID string) error
}
