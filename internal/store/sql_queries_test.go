package store

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/gitvault/models"
)

func Test_buildSelectAllRecordsQuery_SQLContainsParts(t *testing.T) {
	query, args, err := buildSelectAllRecordsQuery(models.TypeLogin)
	require.NoError(t, err)

	// args checks
	require.Len(t, args, 1)
	require.Equal(t, models.TypeLogin, args[0])

	// query checks (contains parts)
	q := strings.ToLower(query)

	require.Contains(t, q, "select")
	require.Contains(t, q, "from records")
	require.Contains(t, q, "where")
	require.Contains(t, q, "type")
	require.Contains(t, q, "order by modified_at desc")

	// placeholder format should be ? (SQLite)
	require.Contains(t, query, "?")
}

func Test_buildSelectAllRecordsQuery_NoTypeFilter(t *testing.T) {
	query, args, err := buildSelectAllRecordsQuery("")
	require.NoError(t, err)

	require.Empty(t, args)
	require.NotContains(t, strings.ToLower(query), "where")
}

func Test_buildSelectAllRecordsQuery_SelectsAllExpectedColumns(t *testing.T) {
	query, _, err := buildSelectAllRecordsQuery("")
	require.NoError(t, err)

	q := strings.ToLower(query)

	cols := []string{"id", "type", "payload", "created_at", "modified_at"}
	for _, c := range cols {
		require.Contains(t, q, c)
	}
}

func Test_buildUpsertRecordQuery(t *testing.T) {
	now := time.Now()
	rec := models.StoredRecord{
		ID:         "id-1",
		Type:       models.TypeNote,
		Payload:    "c2VhbGVk",
		CreatedAt:  now,
		ModifiedAt: now,
	}

	query, args, err := buildUpsertRecordQuery(rec)
	require.NoError(t, err)

	require.Len(t, args, 5)
	require.Equal(t, rec.ID, args[0])
	require.Equal(t, rec.Type, args[1])
	require.Equal(t, rec.Payload, args[2])

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into records")
	require.Contains(t, q, "on conflict (id) do update set")
	// created_at must never be overwritten on conflict
	require.NotContains(t, q, "created_at = excluded")
}

func Test_buildUpsertPushedHashQuery(t *testing.T) {
	query, args, err := buildUpsertPushedHashQuery("id-1", "hash-1")
	require.NoError(t, err)

	require.Equal(t, []any{"id-1", "hash-1"}, args)

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into push_state")
	require.Contains(t, q, "on conflict (record_id) do update set")
}

func Test_buildUpdateLastCounterQuery(t *testing.T) {
	query, args, err := buildUpdateLastCounterQuery(99)
	require.NoError(t, err)

	require.Len(t, args, 2)
	require.Equal(t, int64(99), args[0])

	q := strings.ToLower(query)
	require.Contains(t, q, "update sync_state")
	require.Contains(t, q, "set last_counter")
}

func Test_buildInsertDeviceQuery(t *testing.T) {
	device := models.TrustedDevice{
		DeviceID: "dev-1",
		Name:     "laptop",
		LinkedAt: time.Now(),
	}

	query, args, err := buildInsertDeviceQuery(device)
	require.NoError(t, err)

	require.Len(t, args, 3)
	require.Equal(t, "dev-1", args[0])
	require.Equal(t, "laptop", args[1])

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into trusted_devices")
	require.Contains(t, q, "on conflict (device_id) do update set")
}
