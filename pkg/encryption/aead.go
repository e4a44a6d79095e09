package encryption

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"io"

	"golang.org/x/crypto/hkdf"
)

const (
	KeySize = 32 // 256 bits for AES-256

	aeadInfo = "sharedkit-encryption-aead-v1"
)

// AEAD encrypts with AES-256-GCM under a key derived with HKDF-SHA256 from a
// master key and a scope key. Every call uses a fresh random nonce, which is
// prepended to the ciphertext.
type AEAD struct {
	gcm cipher.AEAD
}

// NewAEAD derives the working key from masterKey and scopeKey, both KeySize bytes.
// The derived key is wiped once the cipher is built.
func NewAEAD(masterKey, scopeKey []byte) (*AEAD, error) {
	if len(masterKey) != KeySize || len(scopeKey) != KeySize {
		return nil, ErrInvalidKey
	}

	key, err := deriveKey(masterKey, scopeKey)
	if err != nil {
		return nil, err
	}
	defer clear(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, errors.Join(ErrInvalidKey, err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, errors.Join(ErrInvalidKey, err)
	}
	return &AEAD{gcm: gcm}, nil
}

// GenerateKey returns a random KeySize key.
func GenerateKey() ([]byte, error) {
	return RandomBytes(KeySize)
}

// Seal encrypts and authenticates plaintext. Empty plaintext is allowed.
func (a *AEAD) Seal(plaintext []byte) ([]byte, error) {
	nonce := make([]byte, a.gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, errors.Join(ErrEncryptionFailed, err)
	}
	return a.gcm.Seal(nonce, nonce, plaintext, nil), nil
}

// Open authenticates and decrypts ciphertext produced by Seal.
func (a *AEAD) Open(ciphertext []byte) ([]byte, error) {
	nonceSize := a.gcm.NonceSize()
	if len(ciphertext) < nonceSize+a.gcm.Overhead() {
		return nil, ErrInvalidCiphertext
	}

	nonce, body := ciphertext[:nonceSize], ciphertext[nonceSize:]
	plaintext, err := a.gcm.Open(nil, nonce, body, nil)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	return plaintext, nil
}

// SealString is Seal with base64 output.
func (a *AEAD) SealString(plaintext string) (string, error) {
	out, err := a.Seal([]byte(plaintext))
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(out), nil
}

// OpenString reverses SealString.
func (a *AEAD) OpenString(ciphertext string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", errors.Join(ErrInvalidCiphertext, err)
	}
	out, err := a.Open(raw)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func deriveKey(masterKey, scopeKey []byte) ([]byte, error) {
	r := hkdf.New(sha256.New, masterKey, scopeKey, []byte(aeadInfo))

	key := make([]byte, KeySize)
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, errors.Join(ErrKeyDerivationFailed, err)
	}
	return key, nil
}
