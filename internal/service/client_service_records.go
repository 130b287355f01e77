package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/MKhiriev/gitvault/internal/store"
	"github.com/MKhiriev/gitvault/internal/utils"
	"github.com/MKhiriev/gitvault/internal/validators"
	"github.com/MKhiriev/gitvault/models"
)

type clientRecordService struct {
	records   store.RecordRepository
	syncState store.SyncStateRepository
	crypto    CryptoService
	validator validators.Validator
	uuid      *utils.UUIDGenerator
	now       func() time.Time
}

func NewClientRecordService(records store.RecordRepository, syncState store.SyncStateRepository, cryptoSvc CryptoService) RecordService {
	return &clientRecordService{
		records:   records,
		syncState: syncState,
		crypto:    cryptoSvc,
		validator: validators.NewRecordValidator(),
		uuid:      utils.NewUUIDGenerator(),
		now:       time.Now,
	}
}

func (s *clientRecordService) Create(ctx context.Context, rec models.Record) (models.Record, error) {
	if err := s.validator.Validate(ctx, rec); err != nil {
		return nil, fmt.Errorf("validate new record: %w", err)
	}

	now := s.now().UTC()

	id := rec.RecordID()
	if id == "" {
		id = s.uuid.Generate()
	}
	if err := stampRecord(rec, id, now, now); err != nil {
		return nil, err
	}

	stored, err := s.seal(rec)
	if err != nil {
		return nil, err
	}

	if err := s.records.SaveRecord(ctx, stored); err != nil {
		return nil, fmt.Errorf("save new record: %w", err)
	}

	return rec, nil
}

func (s *clientRecordService) Get(ctx context.Context, id string) (models.Record, error) {
	stored, err := s.records.GetRecord(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.open(stored)
}

func (s *clientRecordService) GetAll(ctx context.Context, recordType models.RecordType) ([]models.Record, error) {
	storedList, err := s.records.GetAllRecords(ctx, recordType)
	if err != nil {
		return nil, err
	}

	items := make([]models.Record, 0, len(storedList))
	for _, stored := range storedList {
		rec, err := s.open(stored)
		if err != nil {
			return nil, fmt.Errorf("open record %s: %w", stored.ID, err)
		}
		items = append(items, rec)
	}

	return items, nil
}

func (s *clientRecordService) Update(ctx context.Context, rec models.Record) error {
	if err := s.validator.Validate(ctx, rec); err != nil {
		return fmt.Errorf("validate updated record: %w", err)
	}

	existing, err := s.records.GetRecord(ctx, rec.RecordID())
	if err != nil {
		return err
	}

	if err := stampRecord(rec, existing.ID, existing.CreatedAt, s.now().UTC()); err != nil {
		return err
	}

	stored, err := s.seal(rec)
	if err != nil {
		return err
	}

	if err := s.records.SaveRecord(ctx, stored); err != nil {
		return fmt.Errorf("save updated record %s: %w", rec.RecordID(), err)
	}

	return nil
}

func (s *clientRecordService) Delete(ctx context.Context, id string) error {
	if err := s.records.DeleteRecord(ctx, id); err != nil {
		return err
	}

	if err := s.syncState.DeletePushedHash(ctx, id); err != nil {
		return fmt.Errorf("clear push state for record %s: %w", id, err)
	}

	return nil
}

func (s *clientRecordService) seal(rec models.Record) (models.StoredRecord, error) {
	wire, err := models.EncodeRecord(rec)
	if err != nil {
		return models.StoredRecord{}, fmt.Errorf("encode record: %w", err)
	}

	object, err := s.crypto.SealRecord(wire)
	if err != nil {
		return models.StoredRecord{}, fmt.Errorf("seal record: %w", err)
	}

	created, modified := recordTimes(rec)

	return models.StoredRecord{
		ID:         rec.RecordID(),
		Type:       rec.RecordType(),
		Payload:    base64.StdEncoding.EncodeToString(object),
		CreatedAt:  created,
		ModifiedAt: modified,
	}, nil
}

func (s *clientRecordService) open(stored models.StoredRecord) (models.Record, error) {
	object, err := base64.StdEncoding.DecodeString(stored.Payload)
	if err != nil {
		return nil, fmt.Errorf("decode stored payload: %w", err)
	}

	wire, err := s.crypto.OpenRecord(object)
	if err != nil {
		return nil, err
	}

	return models.DecodeRecord(wire)
}

// stampRecord writes identity and timestamps into the concrete record type.
func stampRecord(rec models.Record, id string, createdAt, modifiedAt time.Time) error {
	switch r := rec.(type) {
	case *models.LoginRecord:
		r.ID, r.CreatedAt, r.ModifiedAt = id, createdAt, modifiedAt
	case *models.NoteRecord:
		r.ID, r.CreatedAt, r.ModifiedAt = id, createdAt, modifiedAt
	case *models.SSHRecord:
		r.ID, r.CreatedAt, r.ModifiedAt = id, createdAt, modifiedAt
	default:
		return fmt.Errorf("%w: %T", models.ErrUnknownRecordType, rec)
	}
	return nil
}

func recordTimes(rec models.Record) (created, modified time.Time) {
	switch r := rec.(type) {
	case *models.LoginRecord:
		return r.CreatedAt, r.ModifiedAt
	case *models.NoteRecord:
		return r.CreatedAt, r.ModifiedAt
	case *models.SSHRecord:
		return r.CreatedAt, r.ModifiedAt
	default:
		return time.Time{}, rec.ModTime()
	}
}
