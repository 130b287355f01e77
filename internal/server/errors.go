package server

import "errors"

// Sentinel errors used by the blob host. Callers can match against them
// with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but cannot be split into at least two space-separated
	// parts (i.e. the token value is missing entirely).
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header contains the
	// expected scheme prefix but the token value itself is an empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")

	// ErrInvalidObjectName is returned when a requested object name does not
	// follow the blob naming scheme.
	ErrInvalidObjectName = errors.New("invalid object name")

	// ErrObjectNotFound is returned by the storage when no object exists
	// under the requested name.
	ErrObjectNotFound = errors.New("object was not found")
)

var (
	errNoListenAddress = errors.New("no listen address is configured")
)
