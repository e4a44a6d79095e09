package encryption

import (
	"bytes"
	"encoding/base64"
	"errors"
)

// Config holds machine key material in hex, the way it appears in web server configuration.
type Config struct {
	EncryptionKey string `env:"ENCRYPTION_KEY"`                                 // EncryptionKey is the hex encoded AES key.
	ValidationKey string `env:"VALIDATION_KEY"`                                 // ValidationKey is the hex encoded HMAC key.
	MasterKeyName string `env:"ENCRYPTION_MASTER_KEY_NAME" envDefault:"master"` // MasterKeyName selects the row read by SQLKeyStore.
}

// MachineKey bundles an encryption key with a validation key and exposes
// authenticated encryption over them.
type MachineKey struct {
	encryptionKey []byte
	validationKey []byte
}

// FromConfig decodes the hex keys in cfg.
func FromConfig(cfg Config) (*MachineKey, error) {
	if cfg.EncryptionKey == "" || cfg.ValidationKey == "" {
		return nil, ErrMissingConfig
	}
	enc, err := HexToBytes(cfg.EncryptionKey)
	if err != nil {
		return nil, errors.Join(ErrInvalidKey, err)
	}
	val, err := HexToBytes(cfg.ValidationKey)
	if err != nil {
		return nil, errors.Join(ErrInvalidKey, err)
	}
	return NewMachineKey(enc, val)
}

// NewMachineKey validates the key sizes and copies both keys.
func NewMachineKey(encryptionKey, validationKey []byte) (*MachineKey, error) {
	switch len(encryptionKey) {
	case 16, 24, 32:
	default:
		return nil, ErrInvalidKey
	}
	if len(validationKey) == 0 {
		return nil, ErrInvalidKey
	}
	return &MachineKey{
		encryptionKey: bytes.Clone(encryptionKey),
		validationKey: bytes.Clone(validationKey),
	}, nil
}

// Encrypt returns ciphertext with an appended authentication code.
func (m *MachineKey) Encrypt(data []byte) ([]byte, error) {
	return AuthenticatedEncrypt(data, m.encryptionKey, m.validationKey)
}

// Decrypt verifies and decrypts data produced by Encrypt.
func (m *MachineKey) Decrypt(data []byte) ([]byte, error) {
	return AuthenticatedDecrypt(data, m.encryptionKey, m.validationKey)
}

// EncryptString is Encrypt over a string with base64 output.
func (m *MachineKey) EncryptString(s string) (string, error) {
	if s == "" {
		return "", ErrEmptyInput
	}
	out, err := m.Encrypt([]byte(s))
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(out), nil
}

// DecryptString reverses EncryptString.
func (m *MachineKey) DecryptString(s string) (string, error) {
	if s == "" {
		return "", ErrEmptyInput
	}
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return "", errors.Join(ErrInvalidEncoding, err)
	}
	out, err := m.Decrypt(data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Sign returns the authentication code for data.
func (m *MachineKey) Sign(data []byte) ([]byte, error) {
	return GenerateAuthenticationCode(data, m.validationKey)
}

// Verify reports whether code authenticates data.
func (m *MachineKey) Verify(data, code []byte) bool {
	return ValidateAuthenticationCode(data, code, m.validationKey)
}
