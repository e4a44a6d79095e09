package encryption

import "errors"

var (
	ErrEmptyInput        = errors.New("encryption: input is empty")
	ErrInvalidKey        = errors.New("encryption: invalid key")
	ErrInvalidEncoding   = errors.New("encryption: invalid encoding")
	ErrEncryptionFailed  = errors.New("encryption: encryption failed")
	ErrDecryptionFailed  = errors.New("encryption: decryption failed")
	ErrInvalidCiphertext = errors.New("encryption: invalid ciphertext format")
	ErrAuthentication    = errors.New("encryption: authentication code mismatch")
	ErrInvalidSize       = errors.New("encryption: size must be positive")
	ErrRandomFailed      = errors.New("encryption: random source failed")

	ErrKeyDerivationFailed = errors.New("encryption: key derivation failed")
	ErrNotInitialized      = errors.New("encryption: key manager is not initialized")
	ErrKeyManagerInit      = errors.New("encryption: key manager initialization failed")
	ErrMasterKeyNotFound   = errors.New("encryption: master key not found")
	ErrMissingConfig       = errors.New("encryption: missing key configuration")
)
