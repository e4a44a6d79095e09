package encryption

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"encoding/base64"
	"errors"
)

// Encrypt encrypts data with AES in CBC mode using PKCS#7 padding.
// The IV is the first block of SHA-256(key), so equal inputs under the same
// key produce equal ciphertexts. Use AEAD when that property is unwanted.
func Encrypt(data, key []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}
	block, iv, err := newCBC(key)
	if err != nil {
		return nil, err
	}

	padded := pad(data, aes.BlockSize)
	out := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(out, padded)
	return out, nil
}

// Decrypt reverses Encrypt.
func Decrypt(data, key []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}
	block, iv, err := newCBC(key)
	if err != nil {
		return nil, err
	}
	if len(data)%aes.BlockSize != 0 {
		return nil, ErrInvalidCiphertext
	}

	out := make([]byte, len(data))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(out, data)
	plain, ok := unpad(out, aes.BlockSize)
	if !ok {
		return nil, ErrDecryptionFailed
	}
	return plain, nil
}

// EncryptString encrypts UTF-8 input with a base64 encoded key and returns base64 ciphertext.
func EncryptString(input, keyBase64 string) (string, error) {
	if input == "" {
		return "", ErrEmptyInput
	}
	key, err := decodeKey(keyBase64)
	if err != nil {
		return "", err
	}
	out, err := Encrypt([]byte(input), key)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(out), nil
}

// DecryptString reverses EncryptString.
func DecryptString(input, keyBase64 string) (string, error) {
	if input == "" {
		return "", ErrEmptyInput
	}
	key, err := decodeKey(keyBase64)
	if err != nil {
		return "", err
	}
	data, err := base64.StdEncoding.DecodeString(input)
	if err != nil {
		return "", errors.Join(ErrInvalidEncoding, err)
	}
	out, err := Decrypt(data, key)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func newCBC(key []byte) (cipher.Block, []byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, nil, errors.Join(ErrInvalidKey, err)
	}
	sum := sha256.Sum256(key)
	return block, sum[:aes.BlockSize], nil
}

func decodeKey(keyBase64 string) ([]byte, error) {
	if keyBase64 == "" {
		return nil, ErrInvalidKey
	}
	key, err := base64.StdEncoding.DecodeString(keyBase64)
	if err != nil {
		return nil, errors.Join(ErrInvalidKey, ErrInvalidEncoding, err)
	}
	return key, nil
}

func pad(data []byte, size int) []byte {
	n := size - len(data)%size
	return append(bytes.Clone(data), bytes.Repeat([]byte{byte(n)}, n)...)
}

func unpad(data []byte, size int) ([]byte, bool) {
	if len(data) == 0 || len(data)%size != 0 {
		return nil, false
	}
	n := int(data[len(data)-1])
	if n == 0 || n > size {
		return nil, false
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, false
		}
	}
	return data[:len(data)-n], true
}
