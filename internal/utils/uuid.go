package utils

import "github.com/google/uuid"

// UUIDGenerator issues record identifiers. UUIDv7 keeps identifiers
// time-sortable, which makes local listings stable without an extra column.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a fresh UUIDv7 string, falling back to a random UUIDv4
// if the monotonic source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
