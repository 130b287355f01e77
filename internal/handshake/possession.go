package handshake

import (
	"crypto/hmac"
	"crypto/sha1"
	"crypto/subtle"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/MKhiriev/gitvault/internal/crypto"
)

const (
	// possessionSecretLen is the root-key prefix used as the shared
	// time-stepped secret.
	possessionSecretLen = 20

	possessionDigits = 6
	possessionPeriod = 30 * time.Second

	// possessionWindow is the accepted clock-drift tolerance in steps on
	// either side of the current one.
	possessionWindow = 1
)

// PossessionCode computes the time-stepped proof-of-possession code for the
// given root key at the given instant. Both devices compute it
// independently from the shared key; no key material crosses the wire.
func (s *Service) PossessionCode(rootKey []byte, at time.Time) (string, error) {
	if len(rootKey) != crypto.KeySize {
		return "", crypto.ErrInvalidKeyLength
	}
	return possessionCodeAt(rootKey[:possessionSecretLen], at), nil
}

// VerifyPossessionCode checks a code returned by the peer against the codes
// valid for the current step plus [possessionWindow] steps on either side.
// The comparison is constant-time per candidate step.
func (s *Service) VerifyPossessionCode(rootKey []byte, code string) (bool, error) {
	if len(rootKey) != crypto.KeySize {
		return false, crypto.ErrInvalidKeyLength
	}
	if !validPossessionCode(code) {
		return false, nil
	}

	now := s.now()
	secret := rootKey[:possessionSecretLen]
	for i := -possessionWindow; i <= possessionWindow; i++ {
		at := now.Add(time.Duration(i) * possessionPeriod)
		expected := possessionCodeAt(secret, at)
		if subtle.ConstantTimeCompare([]byte(expected), []byte(code)) == 1 {
			return true, nil
		}
	}
	return false, nil
}

func validPossessionCode(code string) bool {
	if len(code) != possessionDigits {
		return false
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// possessionCodeAt is the RFC 6238 code computation over 30-second steps.
func possessionCodeAt(secret []byte, at time.Time) string {
	counter := uint64(at.Unix() / int64(possessionPeriod/time.Second))
	var msg [8]byte
	binary.BigEndian.PutUint64(msg[:], counter)

	mac := hmac.New(sha1.New, secret)
	_, _ = mac.Write(msg[:])
	sum := mac.Sum(nil)

	offset := sum[len(sum)-1] & 0x0f
	binCode := (int(sum[offset])&0x7f)<<24 |
		(int(sum[offset+1])&0xff)<<16 |
		(int(sum[offset+2])&0xff)<<8 |
		(int(sum[offset+3]) & 0xff)

	return fmt.Sprintf("%06d", binCode%1_000_000)
}
