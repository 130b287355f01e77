package models

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Credential wraps a JWT bearer credential used against the development
// blob host.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [jwt.RegisteredClaims] for standard claim access (subject, expiry, etc.).
//
// SignedString holds the compact serialized form of the token (header.payload.signature)
// ready to be transmitted in the Authorization header or stored on the client side.
//
// DeviceID is a cached copy of the "sub" (subject) claim. It is typically
// populated after a successful call to [Credential.GetDeviceID] or during
// credential construction.
type Credential struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the host process.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides access to the standard JWT claim set
	// (sub, exp, iat, nbf, iss, aud, jti) as defined by RFC 7519.
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the credential
	// (base64url-encoded header.payload.signature).
	// Excluded from JSON serialization; use [Credential.String] to retrieve it.
	SignedString string `json:"-"`

	// DeviceID is the device identifier extracted from the "sub" claim.
	// Excluded from JSON serialization; it is an internal host-side cache.
	DeviceID string `json:"-"`
}

// GetDeviceID extracts the device identifier from the credential's "sub"
// (subject) claim.
//
// Returns an error if the subject claim is missing or empty.
func (c *Credential) GetDeviceID() (string, error) {
	deviceID, err := c.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting DeviceID from credential: %w", err)
	}
	if deviceID == "" {
		return "", errors.New("empty subject in credential")
	}

	return deviceID, nil
}

// String returns the compact JWS serialization of the credential
// (the signed, base64url-encoded header.payload.signature string).
// It implements the [fmt.Stringer] interface.
func (c *Credential) String() string {
	return c.SignedString
}
