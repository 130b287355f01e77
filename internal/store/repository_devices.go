package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/gitvault/internal/logger"
	"github.com/MKhiriev/gitvault/models"
)

type deviceRepository struct {
	*DB
	logger *logger.Logger
}

func NewDeviceRepository(db *DB, logger *logger.Logger) DeviceRepository {
	return &deviceRepository{
		DB:     db,
		logger: logger,
	}
}

func (d *deviceRepository) SaveDevice(ctx context.Context, device models.TrustedDevice) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertDeviceQuery(device)
	if err != nil {
		log.Err(err).
			Str("func", "deviceRepository.SaveDevice").
			Str("device_id", device.DeviceID).
			Msg("failed to build upsert query for trusted device")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = d.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "deviceRepository.SaveDevice").
			Str("device_id", device.DeviceID).
			Msg("failed to execute upsert for trusted device")
		return fmt.Errorf("failed to save trusted device (device_id=%s): %w", device.DeviceID, err)
	}

	return nil
}

func (d *deviceRepository) GetAllDevices(ctx context.Context) ([]models.TrustedDevice, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAllDevicesQuery()
	if err != nil {
		log.Err(err).
			Str("func", "deviceRepository.GetAllDevices").
			Msg("failed to build select query for trusted devices")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := d.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "deviceRepository.GetAllDevices").
			Msg("failed to execute query for getting all trusted devices")
		return nil, fmt.Errorf("failed to query all trusted devices: %w", err)
	}
	defer rows.Close()

	var devices []models.TrustedDevice

	for rows.Next() {
		var device models.TrustedDevice

		scanErr := rows.Scan(&device.DeviceID, &device.Name, &device.LinkedAt)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "deviceRepository.GetAllDevices").
				Msg("failed to scan trusted device row")
			return nil, fmt.Errorf("failed to scan trusted device row: %w", scanErr)
		}

		devices = append(devices, device)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "deviceRepository.GetAllDevices").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating trusted device rows: %w", rowsErr)
	}

	return devices, nil
}

func (d *deviceRepository) DeleteDevice(ctx context.Context, deviceID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteDeviceQuery(deviceID)
	if err != nil {
		log.Err(err).
			Str("func", "deviceRepository.DeleteDevice").
			Str("device_id", deviceID).
			Msg("failed to build delete query for trusted device")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := d.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "deviceRepository.DeleteDevice").
			Str("device_id", deviceID).
			Msg("failed to execute delete for trusted device")
		return fmt.Errorf("failed to delete trusted device (device_id=%s): %w", deviceID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "deviceRepository.DeleteDevice").
			Str("device_id", deviceID).
			Msg("failed to get rows affected after delete")
		return fmt.Errorf("failed to get rows affected (device_id=%s): %w", deviceID, err)
	}

	if rowsAffected == 0 {
		log.Warn().
			Str("func", "deviceRepository.DeleteDevice").
			Str("device_id", deviceID).
			Msg("no rows affected during delete: device not found")
		return ErrDeviceNotFound
	}

	return nil
}
