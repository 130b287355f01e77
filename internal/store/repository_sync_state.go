package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/gitvault/internal/logger"
)

type syncStateRepository struct {
	*DB
	logger *logger.Logger
}

func NewSyncStateRepository(db *DB, logger *logger.Logger) SyncStateRepository {
	return &syncStateRepository{
		DB:     db,
		logger: logger,
	}
}

func (s *syncStateRepository) LastCounter(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectLastCounterQuery()
	if err != nil {
		log.Err(err).
			Str("func", "syncStateRepository.LastCounter").
			Msg("failed to build select query for last counter")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var counter int64
	row := s.DB.QueryRowContext(ctx, query, args...)
	if scanErr := row.Scan(&counter); scanErr != nil {
		log.Err(scanErr).
			Str("func", "syncStateRepository.LastCounter").
			Msg("failed to scan last counter row")
		return 0, fmt.Errorf("failed to scan last counter row: %w", scanErr)
	}

	return counter, nil
}

func (s *syncStateRepository) SetLastCounter(ctx context.Context, counter int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateLastCounterQuery(counter)
	if err != nil {
		log.Err(err).
			Str("func", "syncStateRepository.SetLastCounter").
			Msg("failed to build update query for last counter")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "syncStateRepository.SetLastCounter").
			Int64("counter", counter).
			Msg("failed to execute update for last counter")
		return fmt.Errorf("failed to set last counter: %w", err)
	}

	return nil
}

// PushedHash returns an empty string for a record that has never been pushed.
func (s *syncStateRepository) PushedHash(ctx context.Context, recordID string) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectPushedHashQuery(recordID)
	if err != nil {
		log.Err(err).
			Str("func", "syncStateRepository.PushedHash").
			Str("record_id", recordID).
			Msg("failed to build select query for pushed hash")
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var hash string
	row := s.DB.QueryRowContext(ctx, query, args...)
	if scanErr := row.Scan(&hash); scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return "", nil
		}
		log.Err(scanErr).
			Str("func", "syncStateRepository.PushedHash").
			Str("record_id", recordID).
			Msg("failed to scan pushed hash row")
		return "", fmt.Errorf("failed to scan pushed hash row: %w", scanErr)
	}

	return hash, nil
}

func (s *syncStateRepository) SetPushedHash(ctx context.Context, recordID string, hash string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertPushedHashQuery(recordID, hash)
	if err != nil {
		log.Err(err).
			Str("func", "syncStateRepository.SetPushedHash").
			Str("record_id", recordID).
			Msg("failed to build upsert query for pushed hash")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "syncStateRepository.SetPushedHash").
			Str("record_id", recordID).
			Msg("failed to execute upsert for pushed hash")
		return fmt.Errorf("failed to set pushed hash (record_id=%s): %w", recordID, err)
	}

	return nil
}

func (s *syncStateRepository) DeletePushedHash(ctx context.Context, recordID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeletePushedHashQuery(recordID)
	if err != nil {
		log.Err(err).
			Str("func", "syncStateRepository.DeletePushedHash").
			Str("record_id", recordID).
			Msg("failed to build delete query for pushed hash")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "syncStateRepository.DeletePushedHash").
			Str("record_id", recordID).
			Msg("failed to execute delete for pushed hash")
		return fmt.Errorf("failed to delete pushed hash (record_id=%s): %w", recordID, err)
	}

	return nil
}
