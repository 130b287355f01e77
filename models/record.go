package models

import "time"

// RecordType identifies a record family. The value is embedded as a plain
// tag in every record's wire form so that sync can dispatch a decrypted
// payload to the owning store without trial parsing.
type RecordType string

const (
	TypeLogin RecordType = "login_password"
	TypeNote  RecordType = "secure_note"
	TypeSSH   RecordType = "ssh_credential"
)

// RecordTypes lists every known record family in its fixed dispatch order.
var RecordTypes = []RecordType{TypeLogin, TypeNote, TypeSSH}

// Record is the common contract of all vault record families. Identifiers
// are immutable for the record's lifetime; ModTime is bumped on every local
// mutation and is the sole signal used for merge ordering.
type Record interface {
	RecordID() string
	RecordType() RecordType
	ModTime() time.Time
}

// LoginRecord is a stored website or application credential.
type LoginRecord struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	URL        string    `json:"url,omitempty"`
	Login      string    `json:"login"`
	Password   string    `json:"password"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	ModifiedAt time.Time `json:"modified_at"`
}

func (r *LoginRecord) RecordID() string       { return r.ID }
func (r *LoginRecord) RecordType() RecordType { return TypeLogin }
func (r *LoginRecord) ModTime() time.Time     { return r.ModifiedAt }

// NoteRecord is a free-form secure note.
type NoteRecord struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"created_at"`
	ModifiedAt time.Time `json:"modified_at"`
}

func (r *NoteRecord) RecordID() string       { return r.ID }
func (r *NoteRecord) RecordType() RecordType { return TypeNote }
func (r *NoteRecord) ModTime() time.Time     { return r.ModifiedAt }

// SSHRecord is a stored SSH credential: a private key plus the host it
// belongs to and the optional key passphrase.
type SSHRecord struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Host       string    `json:"host"`
	Username   string    `json:"username"`
	PrivateKey string    `json:"private_key"`
	Passphrase string    `json:"passphrase,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	ModifiedAt time.Time `json:"modified_at"`
}

func (r *SSHRecord) RecordID() string       { return r.ID }
func (r *SSHRecord) RecordType() RecordType { return TypeSSH }
func (r *SSHRecord) ModTime() time.Time     { return r.ModifiedAt }
