package client

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/gitvault/internal/handshake"
	"github.com/MKhiriev/gitvault/models"
)

// GenerateLink builds a linking ticket for onboarding a new device: the
// encrypted bootstrap payload and the 6-digit code to relay over a second
// channel. The current storage credential rides along so the new device can
// sync immediately.
func (a *App) GenerateLink() (models.LinkingTicket, error) {
	return a.handshake.GenerateLinkingPayload(a.rootKey, a.cfg.Remote.Credential)
}

// ConsumeLink adopts the root key carried by a linking payload from another
// device. The adopted key replaces the local key file and reinitialises the
// crypto services; a storage credential in the payload replaces the one the
// blob adapter currently holds.
func (a *App) ConsumeLink(encryptedPayload []byte, code string) error {
	payload, err := a.handshake.ConsumeLinkingPayload(encryptedPayload, code)
	if err != nil {
		return err
	}

	if err := writeRootKeyFile(a.cfg.App.RootKeyPath, payload.RootKey); err != nil {
		return err
	}
	if err := a.services.SetRootKey(payload.RootKey); err != nil {
		return fmt.Errorf("error setting adopted root key: %w", err)
	}
	a.rootKey = payload.RootKey

	if payload.StorageCredential != "" {
		a.blobs.SetCredential(payload.StorageCredential)
	}

	a.logger.Info().Msg("device linked, root key adopted")
	return nil
}

// PossessionCode returns the current proof-of-possession code for this
// device's root key. The linking peer asks for it after the handshake to
// confirm both sides hold the same key.
func (a *App) PossessionCode() (string, error) {
	return a.handshake.PossessionCode(a.rootKey, time.Now())
}

// TrustDevice verifies the possession code reported by a freshly linked
// device and, on success, records the device in the local trust registry.
// A wrong code is rejected with [handshake.ErrHandshakeFailed].
func (a *App) TrustDevice(ctx context.Context, deviceID, name, possessionCode string) error {
	ok, err := a.handshake.VerifyPossessionCode(a.rootKey, possessionCode)
	if err != nil {
		return fmt.Errorf("error verifying possession code: %w", err)
	}
	if !ok {
		return handshake.ErrHandshakeFailed
	}

	device := models.TrustedDevice{
		DeviceID: deviceID,
		Name:     name,
		LinkedAt: time.Now().UTC(),
	}
	if err := a.storages.DeviceRepository.SaveDevice(ctx, device); err != nil {
		return fmt.Errorf("error saving trusted device: %w", err)
	}

	return nil
}

// TrustedDevices lists the local trust registry.
func (a *App) TrustedDevices(ctx context.Context) ([]models.TrustedDevice, error) {
	return a.storages.DeviceRepository.GetAllDevices(ctx)
}

// RevokeDevice removes a device from the local trust registry. Revocation
// is local bookkeeping only; rotating the root key is a separate, manual
// operation.
func (a *App) RevokeDevice(ctx context.Context, deviceID string) error {
	return a.storages.DeviceRepository.DeleteDevice(ctx, deviceID)
}
