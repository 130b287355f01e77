package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/gitvault/models"
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT credential for a device.
//
// The credential includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the credential
//   - Subject   (sub): the device ID
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// All parameters are required. Returns an error if any of them are empty or zero.
//
// Example usage:
//
//	cred, err := utils.GenerateJWTToken("gitvault", "laptop-1", time.Hour, "secret")
func GenerateJWTToken(issuer, deviceID string, tokenDuration time.Duration, signKey string) (models.Credential, error) {
	if issuer == "" || deviceID == "" || tokenDuration == 0 || signKey == "" {
		return models.Credential{}, errors.New("invalid params for generating JWT credential")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   deviceID,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Credential{}, fmt.Errorf("error occurred during signing JWT credential: %w", err)
	}

	return models.Credential{Token: token, SignedString: tokenString, DeviceID: deviceID}, nil
}

// ValidateAndParseJWTToken validates the given JWT credential string and
// extracts its claims.
//
// Validation includes:
//   - Signature verification using the provided sign key
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim check
//   - Subject (sub) claim presence
//
// Returns the parsed credential with the DeviceID field populated from the
// subject claim, or a non-nil error if validation fails or claims are missing.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Credential, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.Credential{}, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer))
	if err != nil {
		return models.Credential{}, fmt.Errorf("error occurred validating and parsing credential: %w", err)
	}

	deviceID, err := token.Claims.GetSubject()
	if err != nil {
		return models.Credential{}, fmt.Errorf("error occurred during getting subject from credential: %w", err)
	}
	if deviceID == "" {
		return models.Credential{}, errors.New("empty subject error")
	}

	return models.Credential{Token: token, DeviceID: deviceID}, nil
}

// ParseBearerToken extracts the token part from an Authorization header in
// "Bearer <token>" form.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
