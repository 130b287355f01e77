package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRecord_DispatchesOnTag(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)

	records := []Record{
		&LoginRecord{ID: "l1", Title: "example.com", Login: "user", Password: "pw", CreatedAt: now, ModifiedAt: now},
		&NoteRecord{ID: "n1", Title: "note", Text: "body", CreatedAt: now, ModifiedAt: now},
		&SSHRecord{ID: "s1", Title: "prod", Host: "host", Username: "root", PrivateKey: "---", CreatedAt: now, ModifiedAt: now},
	}

	for _, rec := range records {
		wire, err := EncodeRecord(rec)
		require.NoError(t, err)

		got, err := DecodeRecord(wire)
		require.NoError(t, err)
		assert.Equal(t, rec.RecordType(), got.RecordType())
		assert.Equal(t, rec, got)
	}
}

func TestDecodeRecord_UnknownTag(t *testing.T) {
	_, err := DecodeRecord([]byte(`{"type":"bank_card","record":{}}`))
	assert.ErrorIs(t, err, ErrUnknownRecordType)
}

func TestDecodeRecord_Malformed(t *testing.T) {
	_, err := DecodeRecord([]byte(`not json`))
	assert.Error(t, err)
}
