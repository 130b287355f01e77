package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// KeyChainService owns root-key material handling: generating fresh root
// keys and deriving symmetric keys from low-entropy linking codes.
type KeyChainService interface {
	// GenerateRootKey returns a fresh 32-byte root key from the OS CSPRNG.
	GenerateRootKey() ([]byte, error)

	// DeriveKey stretches a short secret (the numeric linking code) into a
	// 32-byte symmetric key using Argon2id with the given salt.
	DeriveKey(secret string, salt []byte) []byte
}
