package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/gitvault/internal/logger"
	"github.com/MKhiriev/gitvault/models"
)

type recordRepository struct {
	*DB
	logger *logger.Logger
}

func NewRecordRepository(db *DB, logger *logger.Logger) RecordRepository {
	return &recordRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *recordRepository) SaveRecord(ctx context.Context, rec models.StoredRecord) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertRecordQuery(rec)
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.SaveRecord").
			Str("record_id", rec.ID).
			Msg("failed to build upsert query for record")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "recordRepository.SaveRecord").
			Str("record_id", rec.ID).
			Str("record_type", string(rec.Type)).
			Msg("failed to execute upsert for record")
		return fmt.Errorf("failed to save record (id=%s): %w", rec.ID, err)
	}

	return nil
}

func (r *recordRepository) GetRecord(ctx context.Context, id string) (models.StoredRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectRecordQuery(id)
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.GetRecord").
			Str("record_id", id).
			Msg("failed to build select query for record")
		return models.StoredRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var rec models.StoredRecord
	row := r.DB.QueryRowContext(ctx, query, args...)

	scanErr := row.Scan(&rec.ID, &rec.Type, &rec.Payload, &rec.CreatedAt, &rec.ModifiedAt)
	if scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return models.StoredRecord{}, ErrRecordNotFound
		}
		log.Err(scanErr).
			Str("func", "recordRepository.GetRecord").
			Str("record_id", id).
			Msg("failed to scan record row")
		return models.StoredRecord{}, fmt.Errorf("failed to scan record row: %w", scanErr)
	}

	return rec, nil
}

func (r *recordRepository) GetAllRecords(ctx context.Context, recordType models.RecordType) ([]models.StoredRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAllRecordsQuery(recordType)
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.GetAllRecords").
			Msg("failed to build select query for records")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.GetAllRecords").
			Str("record_type", string(recordType)).
			Msg("failed to execute query for getting all records")
		return nil, fmt.Errorf("failed to query all records: %w", err)
	}
	defer rows.Close()

	var items []models.StoredRecord

	for rows.Next() {
		var rec models.StoredRecord

		scanErr := rows.Scan(&rec.ID, &rec.Type, &rec.Payload, &rec.CreatedAt, &rec.ModifiedAt)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "recordRepository.GetAllRecords").
				Msg("failed to scan record row")
			return nil, fmt.Errorf("failed to scan record row: %w", scanErr)
		}

		items = append(items, rec)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "recordRepository.GetAllRecords").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating record rows: %w", rowsErr)
	}

	return items, nil
}

func (r *recordRepository) DeleteRecord(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteRecordQuery(id)
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.DeleteRecord").
			Str("record_id", id).
			Msg("failed to build delete query for record")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.DeleteRecord").
			Str("record_id", id).
			Msg("failed to execute delete for record")
		return fmt.Errorf("failed to delete record (id=%s): %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.DeleteRecord").
			Str("record_id", id).
			Msg("failed to get rows affected after delete")
		return fmt.Errorf("failed to get rows affected (id=%s): %w", id, err)
	}

	if rowsAffected == 0 {
		log.Warn().
			Str("func", "recordRepository.DeleteRecord").
			Str("record_id", id).
			Msg("no rows affected during delete: record not found")
		return ErrRecordNotFound
	}

	return nil
}
