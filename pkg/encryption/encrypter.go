package encryption

import (
	"context"
	"encoding/base64"
	"errors"
)

// Encrypter encrypts short strings such as identifiers or tokens.
type Encrypter interface {
	Encrypt(data string) (string, error)
	Decrypt(data string) (string, error)
	EncryptToBytes(data string) ([]byte, error)
	DecryptBytes(data []byte) (string, error)
}

var (
	_ Encrypter = (*SimpleEncrypter)(nil)
	_ Encrypter = PassthroughEncrypter{}
)

// SimpleEncrypter encrypts with keys supplied by a KeyManager.
type SimpleEncrypter struct {
	keys *KeyManager
}

// NewSimpleEncrypter creates an encrypter backed by km.
func NewSimpleEncrypter(km *KeyManager) *SimpleEncrypter {
	return &SimpleEncrypter{keys: km}
}

// Initialize initializes the underlying key manager from store.
func (e *SimpleEncrypter) Initialize(ctx context.Context, store KeyStore) error {
	if e.keys == nil {
		return ErrNotInitialized
	}
	return e.keys.Initialize(ctx, store)
}

// Initialized reports whether the encrypter has usable keys.
func (e *SimpleEncrypter) Initialized() bool {
	return e.keys != nil && e.keys.Initialized()
}

func (e *SimpleEncrypter) Encrypt(data string) (string, error) {
	return e.EncryptWith(data)
}

func (e *SimpleEncrypter) Decrypt(data string) (string, error) {
	return e.DecryptWith(data)
}

func (e *SimpleEncrypter) EncryptToBytes(data string) ([]byte, error) {
	return e.EncryptToBytesWith(data)
}

func (e *SimpleEncrypter) DecryptBytes(data []byte) (string, error) {
	return e.DecryptBytesWith(data)
}

// EncryptWith encrypts under a key derived from the managed key and extra material.
func (e *SimpleEncrypter) EncryptWith(data string, extra ...[]byte) (string, error) {
	out, err := e.EncryptToBytesWith(data, extra...)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(out), nil
}

// DecryptWith reverses EncryptWith given the same extra material.
func (e *SimpleEncrypter) DecryptWith(data string, extra ...[]byte) (string, error) {
	if data == "" {
		return "", ErrEmptyInput
	}
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return "", errors.Join(ErrInvalidEncoding, err)
	}
	return e.DecryptBytesWith(raw, extra...)
}

// EncryptToBytesWith is EncryptWith without the base64 step.
func (e *SimpleEncrypter) EncryptToBytesWith(data string, extra ...[]byte) ([]byte, error) {
	if data == "" {
		return nil, ErrEmptyInput
	}
	key, err := e.key(extra)
	if err != nil {
		return nil, err
	}
	return Encrypt([]byte(data), key)
}

// DecryptBytesWith is DecryptWith for raw ciphertext.
func (e *SimpleEncrypter) DecryptBytesWith(data []byte, extra ...[]byte) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyInput
	}
	key, err := e.key(extra)
	if err != nil {
		return "", err
	}
	out, err := Decrypt(data, key)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func (e *SimpleEncrypter) key(extra [][]byte) ([]byte, error) {
	if e.keys == nil {
		return nil, ErrNotInitialized
	}
	var (
		kp  KeyPair
		err error
	)
	if len(extra) == 0 {
		kp, err = e.keys.Keys()
	} else {
		kp, err = e.keys.KeysWith(extra...)
	}
	if err != nil {
		return nil, err
	}
	return kp.EncryptionKey, nil
}

// PassthroughEncrypter returns its input unchanged. It stands in for a real
// Encrypter in tests and local development.
type PassthroughEncrypter struct{}

func (PassthroughEncrypter) Encrypt(data string) (string, error) {
	if data == "" {
		return "", ErrEmptyInput
	}
	return data, nil
}

func (PassthroughEncrypter) Decrypt(data string) (string, error) {
	if data == "" {
		return "", ErrEmptyInput
	}
	return data, nil
}

func (PassthroughEncrypter) EncryptToBytes(data string) ([]byte, error) {
	if data == "" {
		return nil, ErrEmptyInput
	}
	return []byte(data), nil
}

func (PassthroughEncrypter) DecryptBytes(data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyInput
	}
	return string(data), nil
}
