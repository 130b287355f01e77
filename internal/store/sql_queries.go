package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/gitvault/models"
)

const (
	recordsTable        = "records"
	syncStateTable      = "sync_state"
	pushStateTable      = "push_state"
	trustedDevicesTable = "trusted_devices"
)

var recordColumns = []string{"id", "type", "payload", "created_at", "modified_at"}

func buildSelectRecordQuery(id string) (string, []any, error) {
	return sq.Select(recordColumns...).
		From(recordsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// buildSelectAllRecordsQuery lists records newest first. An empty recordType
// selects every type.
func buildSelectAllRecordsQuery(recordType models.RecordType) (string, []any, error) {
	builder := sq.Select(recordColumns...).From(recordsTable)

	if recordType != "" {
		builder = builder.Where(sq.Eq{"type": recordType})
	}

	return builder.OrderBy("modified_at DESC").ToSql()
}

func buildUpsertRecordQuery(rec models.StoredRecord) (string, []any, error) {
	return sq.Insert(recordsTable).
		Columns(recordColumns...).
		Values(rec.ID, rec.Type, rec.Payload, rec.CreatedAt, rec.ModifiedAt).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			type        = excluded.type,
			payload     = excluded.payload,
			modified_at = excluded.modified_at`).
		ToSql()
}

func buildDeleteRecordQuery(id string) (string, []any, error) {
	return sq.Delete(recordsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildSelectLastCounterQuery() (string, []any, error) {
	return sq.Select("last_counter").
		From(syncStateTable).
		Where(sq.Eq{"id": 1}).
		ToSql()
}

func buildUpdateLastCounterQuery(counter int64) (string, []any, error) {
	return sq.Update(syncStateTable).
		Set("last_counter", counter).
		Where(sq.Eq{"id": 1}).
		ToSql()
}

func buildSelectPushedHashQuery(recordID string) (string, []any, error) {
	return sq.Select("content_hash").
		From(pushStateTable).
		Where(sq.Eq{"record_id": recordID}).
		ToSql()
}

func buildUpsertPushedHashQuery(recordID string, hash string) (string, []any, error) {
	return sq.Insert(pushStateTable).
		Columns("record_id", "content_hash").
		Values(recordID, hash).
		Suffix(`ON CONFLICT (record_id) DO UPDATE SET content_hash = excluded.content_hash`).
		ToSql()
}

func buildDeletePushedHashQuery(recordID string) (string, []any, error) {
	return sq.Delete(pushStateTable).
		Where(sq.Eq{"record_id": recordID}).
		ToSql()
}

func buildInsertDeviceQuery(device models.TrustedDevice) (string, []any, error) {
	return sq.Insert(trustedDevicesTable).
		Columns("device_id", "name", "linked_at").
		Values(device.DeviceID, device.Name, device.LinkedAt).
		Suffix(`ON CONFLICT (device_id) DO UPDATE SET
			name      = excluded.name,
			linked_at = excluded.linked_at`).
		ToSql()
}

func buildSelectAllDevicesQuery() (string, []any, error) {
	return sq.Select("device_id", "name", "linked_at").
		From(trustedDevicesTable).
		OrderBy("linked_at").
		ToSql()
}

func buildDeleteDeviceQuery(deviceID string) (string, []any, error) {
	return sq.Delete(trustedDevicesTable).
		Where(sq.Eq{"device_id": deviceID}).
		ToSql()
}
