package validators

import (
	"context"

	"github.com/MKhiriev/gitvault/models"
)

const (
	FieldLogin      = "login"
	FieldPassword   = "password"
	FieldText       = "text"
	FieldHost       = "host"
	FieldUsername   = "username"
	FieldPrivateKey = "private_key"
)

// RecordValidator enforces the structural rules of vault records before
// they are sealed and persisted. Titles and notes are optional display
// metadata; only the secret-bearing fields are required.
type RecordValidator struct {
}

func NewRecordValidator() Validator {
	return &RecordValidator{}
}

func (v *RecordValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.LoginRecord:
		return v.validateLoginRecord(ctx, value, fields...)
	case *models.LoginRecord:
		return v.validateLoginRecord(ctx, *value, fields...)

	case models.NoteRecord:
		return v.validateNoteRecord(ctx, value, fields...)
	case *models.NoteRecord:
		return v.validateNoteRecord(ctx, *value, fields...)

	case models.SSHRecord:
		return v.validateSSHRecord(ctx, value, fields...)
	case *models.SSHRecord:
		return v.validateSSHRecord(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RecordValidator) validateLoginRecord(_ context.Context, rec models.LoginRecord, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLogin, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldLogin:
			if rec.Login == "" {
				return ErrEmptyLogin
			}
		case FieldPassword:
			if rec.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RecordValidator) validateNoteRecord(_ context.Context, rec models.NoteRecord, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldText}
	}

	for _, f := range fields {
		switch f {
		case FieldText:
			if rec.Text == "" {
				return ErrEmptyText
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RecordValidator) validateSSHRecord(_ context.Context, rec models.SSHRecord, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldHost, FieldUsername, FieldPrivateKey}
	}

	for _, f := range fields {
		switch f {
		case FieldHost:
			if rec.Host == "" {
				return ErrEmptyHost
			}
		case FieldUsername:
			if rec.Username == "" {
				return ErrEmptyUsername
			}
		case FieldPrivateKey:
			if rec.PrivateKey == "" {
				return ErrEmptyPrivateKey
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
