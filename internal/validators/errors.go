package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyLogin      = errors.New("login is required")
	ErrEmptyPassword   = errors.New("password is required")
	ErrEmptyText       = errors.New("note text is required")
	ErrEmptyHost       = errors.New("host is required")
	ErrEmptyUsername   = errors.New("username is required")
	ErrEmptyPrivateKey = errors.New("private key is required")
)
