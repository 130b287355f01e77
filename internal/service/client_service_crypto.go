package service

import (
	"fmt"
	"sync"

	"github.com/MKhiriev/gitvault/internal/crypto"
)

type clientCryptoService struct {
	blockSize int

	mu      sync.RWMutex
	rootKey []byte
}

// NewClientCryptoService creates a sealing facade that pads plaintexts to
// blockSize before encryption. blockSize values < 1 fall back to
// [crypto.DefaultBlockSize].
func NewClientCryptoService(blockSize int) CryptoService {
	if blockSize < 1 {
		blockSize = crypto.DefaultBlockSize
	}
	return &clientCryptoService{blockSize: blockSize}
}

func (c *clientCryptoService) SetRootKey(key []byte) error {
	if len(key) != crypto.KeySize {
		return crypto.ErrInvalidKeyLength
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.rootKey = append([]byte(nil), key...)
	return nil
}

func (c *clientCryptoService) Initialized() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.rootKey) == crypto.KeySize
}

func (c *clientCryptoService) SealRecord(wire []byte) ([]byte, error) {
	key, err := c.key()
	if err != nil {
		return nil, err
	}

	padded, err := crypto.Pad(wire, c.blockSize)
	if err != nil {
		return nil, fmt.Errorf("pad record: %w", err)
	}

	env, err := crypto.Encrypt(padded, key)
	if err != nil {
		return nil, fmt.Errorf("encrypt record: %w", err)
	}

	return env.Serialize(), nil
}

func (c *clientCryptoService) OpenRecord(object []byte) ([]byte, error) {
	key, err := c.key()
	if err != nil {
		return nil, err
	}

	env, err := crypto.ParseEnvelope(object)
	if err != nil {
		return nil, fmt.Errorf("parse envelope: %w", err)
	}

	padded, err := crypto.Decrypt(env, key)
	if err != nil {
		return nil, fmt.Errorf("decrypt record: %w", err)
	}

	wire, err := crypto.Unpad(padded)
	if err != nil {
		return nil, fmt.Errorf("unpad record: %w", err)
	}

	return wire, nil
}

func (c *clientCryptoService) ObjectName(identifier string) (string, error) {
	key, err := c.key()
	if err != nil {
		return "", err
	}
	return crypto.ObfuscateName(key, identifier)
}

func (c *clientCryptoService) ContentHash(wire []byte) (string, error) {
	key, err := c.key()
	if err != nil {
		return "", err
	}
	return crypto.ContentHash(key, wire)
}

func (c *clientCryptoService) key() ([]byte, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if len(c.rootKey) != crypto.KeySize {
		return nil, ErrNotInitialized
	}
	return c.rootKey, nil
}
