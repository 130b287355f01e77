package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrRecordNotFound is returned when a query or update targets a vault
	// record (identified by its id) that does not exist in the database.
	ErrRecordNotFound = errors.New("record was not found")

	// ErrDeviceNotFound is returned when a delete targets a trusted device
	// that is not present in the trust registry.
	ErrDeviceNotFound = errors.New("device was not found")

	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")
)
