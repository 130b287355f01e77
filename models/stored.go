package models

import "time"

// StoredRecord is the persistence form of a vault record in the local
// database. Payload is the record's tagged wire form sealed under the root
// key, so local rows never hold plaintext secrets. ModifiedAt is duplicated
// outside the sealed payload because sync ordering needs it without
// decrypting every row.
type StoredRecord struct {
	ID         string     `json:"id"`
	Type       RecordType `json:"type"`
	Payload    string     `json:"payload"`
	CreatedAt  time.Time  `json:"created_at"`
	ModifiedAt time.Time  `json:"modified_at"`
}

// TrustedDevice is an entry in the local trust registry: a device that
// completed the linking handshake and answered the proof-of-possession
// challenge correctly.
type TrustedDevice struct {
	DeviceID string    `json:"device_id"`
	Name     string    `json:"name"`
	LinkedAt time.Time `json:"linked_at"`
}
