// Package handshake implements the two-channel device-linking protocol: an
// encrypted bootstrap payload carried over a high-bandwidth scannable
// channel, and a short numeric code relayed by a human over a second
// channel. An attacker who intercepts only one of the two channels can
// neither decrypt nor forge the exchange.
package handshake

import (
	"crypto/rand"
	"encoding/json"
	"fmt"
	"math/big"
	"time"

	"github.com/MKhiriev/gitvault/internal/crypto"
	"github.com/MKhiriev/gitvault/models"
)

const (
	// codeModulus bounds the numeric linking code at 6 uniform digits.
	codeModulus = 1_000_000

	// LinkingTTL is how long a linking payload stays consumable. Expiry is
	// enforced on the decrypted timestamp, not on the envelope.
	LinkingTTL = 5 * time.Minute
)

// linkingSalt is the fixed, protocol-wide Argon2id salt for the code-derived
// key. A fixed salt is acceptable here only because the 6-digit code is
// freshly random per handshake and the payload lives for five minutes; this
// is not a general KDF pattern and is not reused anywhere else.
var linkingSalt = []byte("gitvault/linking-kdf-v1")

// Service performs both sides of the blind handshake.
type Service struct {
	keychain crypto.KeyChainService

	// now is replaceable in tests.
	now func() time.Time
}

// NewService constructs a handshake [Service] on top of the given keychain.
func NewService(keychain crypto.KeyChainService) *Service {
	return &Service{keychain: keychain, now: time.Now}
}

// GenerateLinkingPayload builds a linking ticket for onboarding a new
// device: a fresh uniform 6-digit code, and the serialized envelope of
// {rootKey, storageCredential, createdAt} encrypted under the Argon2id
// stretch of that code. The two parts must travel over separate channels.
func (s *Service) GenerateLinkingPayload(rootKey []byte, storageCredential string) (models.LinkingTicket, error) {
	if len(rootKey) != crypto.KeySize {
		return models.LinkingTicket{}, crypto.ErrInvalidKeyLength
	}

	code, err := generateCode()
	if err != nil {
		return models.LinkingTicket{}, fmt.Errorf("generate linking code: %w", err)
	}

	payload := models.LinkingPayload{
		RootKey:           rootKey,
		StorageCredential: storageCredential,
		CreatedAt:         s.now().UTC(),
	}
	plaintext, err := json.Marshal(payload)
	if err != nil {
		return models.LinkingTicket{}, fmt.Errorf("marshal linking payload: %w", err)
	}

	key := s.keychain.DeriveKey(code, linkingSalt)
	env, err := crypto.Encrypt(plaintext, key)
	if err != nil {
		return models.LinkingTicket{}, fmt.Errorf("encrypt linking payload: %w", err)
	}

	return models.LinkingTicket{Payload: env.Serialize(), Code: code}, nil
}

// ConsumeLinkingPayload opens an encrypted linking payload with the code the
// user entered. Any parse or authentication failure collapses into
// [ErrHandshakeFailed]; a payload older than [LinkingTTL] is rejected with
// [ErrLinkingExpired] even though decryption succeeded.
func (s *Service) ConsumeLinkingPayload(encryptedPayload []byte, enteredCode string) (*models.LinkingPayload, error) {
	env, err := crypto.ParseEnvelope(encryptedPayload)
	if err != nil {
		return nil, ErrHandshakeFailed
	}

	key := s.keychain.DeriveKey(enteredCode, linkingSalt)
	plaintext, err := crypto.Decrypt(env, key)
	if err != nil {
		return nil, ErrHandshakeFailed
	}

	var payload models.LinkingPayload
	if err := json.Unmarshal(plaintext, &payload); err != nil {
		return nil, ErrHandshakeFailed
	}

	if s.now().Sub(payload.CreatedAt) > LinkingTTL {
		return nil, ErrLinkingExpired
	}

	return &payload, nil
}

// generateCode draws a uniform 6-digit code from the OS CSPRNG.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeModulus))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
