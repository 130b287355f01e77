package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/gitvault/internal/adapter"
	"github.com/MKhiriev/gitvault/internal/logger"
	"github.com/MKhiriev/gitvault/internal/store"
	"github.com/MKhiriev/gitvault/models"
)

const (
	indexObjectName  = "index.bin"
	dataObjectPrefix = "data/"
	dataObjectSuffix = ".bin"
)

type clientSyncEngine struct {
	records   store.RecordRepository
	syncState store.SyncStateRepository
	blobs     adapter.BlobStore
	crypto    CryptoService
	now       func() time.Time

	busy sync.Mutex
}

func NewClientSyncEngine(records store.RecordRepository, syncState store.SyncStateRepository, blobs adapter.BlobStore, cryptoSvc CryptoService) SyncEngine {
	return &clientSyncEngine{
		records:   records,
		syncState: syncState,
		blobs:     blobs,
		crypto:    cryptoSvc,
		now:       time.Now,
	}
}

func (s *clientSyncEngine) Pull(ctx context.Context) error {
	if !s.busy.TryLock() {
		return ErrSyncInProgress
	}
	defer s.busy.Unlock()

	return s.pull(ctx)
}

func (s *clientSyncEngine) Push(ctx context.Context) error {
	if !s.busy.TryLock() {
		return ErrSyncInProgress
	}
	defer s.busy.Unlock()

	return s.push(ctx)
}

func (s *clientSyncEngine) FullSync(ctx context.Context) error {
	if !s.busy.TryLock() {
		return ErrSyncInProgress
	}
	defer s.busy.Unlock()

	if err := s.pull(ctx); err != nil {
		return fmt.Errorf("pull: %w", err)
	}
	if err := s.push(ctx); err != nil {
		return fmt.Errorf("push: %w", err)
	}

	return nil
}

func (s *clientSyncEngine) pull(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if !s.crypto.Initialized() {
		return ErrNotInitialized
	}

	indexBytes, err := s.blobs.Download(ctx, indexObjectName)
	if err != nil {
		return fmt.Errorf("download index: %w", err)
	}
	if indexBytes == nil {
		log.Debug().Msg("remote index is absent, nothing to pull")
		return nil
	}

	idx, err := s.openIndex(indexBytes)
	if err != nil {
		return fmt.Errorf("open remote index: %w", err)
	}

	lastCounter, err := s.syncState.LastCounter(ctx)
	if err != nil {
		return fmt.Errorf("load last observed counter: %w", err)
	}

	// anti-rollback: never merge state older than what this device has
	// already seen
	if idx.Counter < lastCounter {
		log.Warn().
			Int64("remote_counter", idx.Counter).
			Int64("observed_counter", lastCounter).
			Msg("remote index counter went backwards")
		return ErrRollbackDetected
	}

	for recordID, objectName := range idx.Objects {
		if err := s.pullObject(ctx, recordID, objectName); err != nil {
			return err
		}
	}

	// persisted only after the whole merge completed
	if err := s.syncState.SetLastCounter(ctx, idx.Counter); err != nil {
		return fmt.Errorf("persist observed counter: %w", err)
	}

	log.Debug().
		Int64("counter", idx.Counter).
		Int("objects", len(idx.Objects)).
		Msg("pull completed")

	return nil
}

// pullObject downloads, opens, and merges a single remote object. Corrupted
// or undecodable objects are skipped with a warning so one bad object cannot
// wedge the whole vault; only transport and local store failures propagate.
func (s *clientSyncEngine) pullObject(ctx context.Context, recordID string, objectName string) error {
	log := logger.FromContext(ctx)

	object, err := s.blobs.Download(ctx, dataObjectPrefix+objectName+dataObjectSuffix)
	if err != nil {
		return fmt.Errorf("download object for record %s: %w", recordID, err)
	}
	if object == nil {
		log.Warn().
			Str("record_id", recordID).
			Msg("object listed in index is absent on remote, skipping")
		return nil
	}

	wire, err := s.crypto.OpenRecord(object)
	if err != nil {
		log.Warn().Err(err).
			Str("record_id", recordID).
			Msg("failed to open remote object, skipping")
		return nil
	}

	remote, err := models.DecodeRecord(wire)
	if err != nil {
		log.Warn().Err(err).
			Str("record_id", recordID).
			Msg("failed to decode remote record, skipping")
		return nil
	}

	if remote.RecordID() != recordID {
		log.Warn().
			Str("record_id", recordID).
			Str("payload_record_id", remote.RecordID()).
			Msg("remote record identity mismatch, skipping")
		return nil
	}

	local, err := s.records.GetRecord(ctx, recordID)
	switch {
	case errors.Is(err, store.ErrRecordNotFound):
		// unknown locally, adopt the remote version
	case err != nil:
		return fmt.Errorf("load local record %s: %w", recordID, err)
	default:
		// last-write-wins: only a strictly later remote replaces local,
		// ties keep the local version
		if !remote.ModTime().After(local.ModifiedAt) {
			return nil
		}
	}

	return s.adoptRemote(ctx, remote, wire, object)
}

// adoptRemote stores the remote version locally and records its content hash
// as already pushed, so the next push does not re-upload what this device
// just downloaded.
func (s *clientSyncEngine) adoptRemote(ctx context.Context, remote models.Record, wire []byte, object []byte) error {
	stored := models.StoredRecord{
		ID:         remote.RecordID(),
		Type:       remote.RecordType(),
		Payload:    base64.StdEncoding.EncodeToString(object),
		CreatedAt:  remote.ModTime(),
		ModifiedAt: remote.ModTime(),
	}

	if err := s.records.SaveRecord(ctx, stored); err != nil {
		return fmt.Errorf("save merged record %s: %w", remote.RecordID(), err)
	}

	hash, err := s.crypto.ContentHash(wire)
	if err != nil {
		return fmt.Errorf("hash merged record %s: %w", remote.RecordID(), err)
	}
	if err := s.syncState.SetPushedHash(ctx, remote.RecordID(), hash); err != nil {
		return fmt.Errorf("persist push state for record %s: %w", remote.RecordID(), err)
	}

	return nil
}

func (s *clientSyncEngine) push(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if !s.crypto.Initialized() {
		return ErrNotInitialized
	}

	locals, err := s.records.GetAllRecords(ctx, "")
	if err != nil {
		return fmt.Errorf("load local records: %w", err)
	}

	// an empty local vault must never overwrite remote state
	if len(locals) == 0 {
		log.Debug().Msg("local vault is empty, skipping push")
		return nil
	}

	lastCounter, err := s.syncState.LastCounter(ctx)
	if err != nil {
		return fmt.Errorf("load last observed counter: %w", err)
	}

	objects := make(map[string]string, len(locals))
	for _, rec := range locals {
		objectName, err := s.pushRecord(ctx, rec)
		if err != nil {
			return err
		}
		objects[rec.ID] = objectName
	}

	// the index goes up last; verify no other device advanced the counter
	// while this push was in flight
	remoteCounter, err := s.remoteCounter(ctx)
	if err != nil {
		return err
	}
	if remoteCounter < lastCounter {
		return ErrRollbackDetected
	}
	if remoteCounter != lastCounter {
		log.Warn().
			Int64("remote_counter", remoteCounter).
			Int64("observed_counter", lastCounter).
			Msg("remote index advanced since last pull")
		return ErrRemoteChanged
	}

	idx := models.SyncIndex{
		LastUpdated: s.now().UTC(),
		Counter:     lastCounter + 1,
		Objects:     objects,
	}

	if err := s.uploadIndex(ctx, idx); err != nil {
		return err
	}

	if err := s.syncState.SetLastCounter(ctx, idx.Counter); err != nil {
		return fmt.Errorf("persist observed counter: %w", err)
	}

	log.Debug().
		Int64("counter", idx.Counter).
		Int("objects", len(objects)).
		Msg("push completed")

	return nil
}

// pushRecord uploads a single record unless its content hash matches the
// last pushed value. It returns the record's obfuscated object name for the
// index rebuild.
func (s *clientSyncEngine) pushRecord(ctx context.Context, rec models.StoredRecord) (string, error) {
	object, err := base64.StdEncoding.DecodeString(rec.Payload)
	if err != nil {
		return "", fmt.Errorf("decode stored payload for record %s: %w", rec.ID, err)
	}

	wire, err := s.crypto.OpenRecord(object)
	if err != nil {
		return "", fmt.Errorf("open local record %s: %w", rec.ID, err)
	}

	objectName, err := s.crypto.ObjectName(rec.ID)
	if err != nil {
		return "", fmt.Errorf("derive object name for record %s: %w", rec.ID, err)
	}

	hash, err := s.crypto.ContentHash(wire)
	if err != nil {
		return "", fmt.Errorf("hash local record %s: %w", rec.ID, err)
	}

	pushed, err := s.syncState.PushedHash(ctx, rec.ID)
	if err != nil {
		return "", fmt.Errorf("load push state for record %s: %w", rec.ID, err)
	}
	if pushed == hash {
		return objectName, nil
	}

	if err := s.blobs.Upload(ctx, dataObjectPrefix+objectName+dataObjectSuffix, object); err != nil {
		return "", fmt.Errorf("upload object for record %s: %w", rec.ID, err)
	}

	if err := s.syncState.SetPushedHash(ctx, rec.ID, hash); err != nil {
		return "", fmt.Errorf("persist push state for record %s: %w", rec.ID, err)
	}

	return objectName, nil
}

// remoteCounter reads the counter of the current remote index, or 0 when no
// index exists yet.
func (s *clientSyncEngine) remoteCounter(ctx context.Context) (int64, error) {
	indexBytes, err := s.blobs.Download(ctx, indexObjectName)
	if err != nil {
		return 0, fmt.Errorf("download index: %w", err)
	}
	if indexBytes == nil {
		return 0, nil
	}

	idx, err := s.openIndex(indexBytes)
	if err != nil {
		return 0, fmt.Errorf("open remote index: %w", err)
	}

	return idx.Counter, nil
}

func (s *clientSyncEngine) openIndex(object []byte) (models.SyncIndex, error) {
	wire, err := s.crypto.OpenRecord(object)
	if err != nil {
		return models.SyncIndex{}, err
	}

	var idx models.SyncIndex
	if err := json.Unmarshal(wire, &idx); err != nil {
		return models.SyncIndex{}, fmt.Errorf("unmarshal index: %w", err)
	}

	return idx, nil
}

func (s *clientSyncEngine) uploadIndex(ctx context.Context, idx models.SyncIndex) error {
	wire, err := json.Marshal(idx)
	if err != nil {
		return fmt.Errorf("marshal index: %w", err)
	}

	sealed, err := s.crypto.SealRecord(wire)
	if err != nil {
		return fmt.Errorf("seal index: %w", err)
	}

	if err := s.blobs.Upload(ctx, indexObjectName, sealed); err != nil {
		return fmt.Errorf("upload index: %w", err)
	}

	return nil
}
