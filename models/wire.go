package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnknownRecordType is returned when a wire payload carries a type tag
// that does not match any known record family.
var ErrUnknownRecordType = errors.New("unknown record type")

// TaggedRecord is the wire form of a record: the record body prefixed with
// an explicit type tag. The tag lives inside the encrypted payload, so it is
// never visible to the remote store, but it lets the puller dispatch a
// decrypted object to the owning store directly.
type TaggedRecord struct {
	Type   RecordType      `json:"type"`
	Record json.RawMessage `json:"record"`
}

// EncodeRecord serializes rec into its tagged wire form.
func EncodeRecord(rec Record) ([]byte, error) {
	body, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("marshal record body: %w", err)
	}

	wire, err := json.Marshal(TaggedRecord{Type: rec.RecordType(), Record: body})
	if err != nil {
		return nil, fmt.Errorf("marshal tagged record: %w", err)
	}
	return wire, nil
}

// DecodeRecord parses a tagged wire payload back into a concrete record.
// Returns [ErrUnknownRecordType] if the tag names no known family.
func DecodeRecord(wire []byte) (Record, error) {
	var tagged TaggedRecord
	if err := json.Unmarshal(wire, &tagged); err != nil {
		return nil, fmt.Errorf("unmarshal tagged record: %w", err)
	}

	var rec Record
	switch tagged.Type {
	case TypeLogin:
		rec = &LoginRecord{}
	case TypeNote:
		rec = &NoteRecord{}
	case TypeSSH:
		rec = &SSHRecord{}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRecordType, tagged.Type)
	}

	if err := json.Unmarshal(tagged.Record, rec); err != nil {
		return nil, fmt.Errorf("unmarshal %s record: %w", tagged.Type, err)
	}
	return rec, nil
}
