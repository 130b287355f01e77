package service

import (
	"github.com/MKhiriev/gitvault/internal/adapter"
	"github.com/MKhiriev/gitvault/internal/store"
)

type ClientServices struct {
	CryptoService CryptoService
	RecordService RecordService
	SyncEngine    SyncEngine
	SyncJob       SyncJob
}

func NewClientServices(storages *store.ClientStorages, blobs adapter.BlobStore, blockSize int) *ClientServices {
	cryptoSvc := NewClientCryptoService(blockSize)
	recordSvc := NewClientRecordService(storages.RecordRepository, storages.SyncStateRepository, cryptoSvc)
	syncEngine := NewClientSyncEngine(storages.RecordRepository, storages.SyncStateRepository, blobs, cryptoSvc)

	return &ClientServices{
		CryptoService: cryptoSvc,
		RecordService: recordSvc,
		SyncEngine:    syncEngine,
		SyncJob:       NewClientSyncJob(syncEngine),
	}
}

// SetRootKey initialises the shared crypto facade used by every service.
func (s *ClientServices) SetRootKey(key []byte) error {
	return s.CryptoService.SetRootKey(key)
}
