package encryption

import (
	"bytes"
	"encoding/base64"
	"errors"
)

// AuthenticatedEncrypt encrypts data and appends the HMAC-SHA1 of the ciphertext
// computed with validationKey.
func AuthenticatedEncrypt(data, encryptionKey, validationKey []byte) ([]byte, error) {
	if len(validationKey) == 0 {
		return nil, ErrInvalidKey
	}
	ciphertext, err := Encrypt(data, encryptionKey)
	if err != nil {
		return nil, err
	}
	code, err := GenerateAuthenticationCode(ciphertext, validationKey)
	if err != nil {
		return nil, errors.Join(ErrEncryptionFailed, err)
	}
	return append(ciphertext, code...), nil
}

// AuthenticatedDecrypt verifies the trailing authentication code before decrypting.
// Any tampering yields ErrAuthentication without attempting decryption.
func AuthenticatedDecrypt(data, encryptionKey, validationKey []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}
	if len(encryptionKey) == 0 || len(validationKey) == 0 {
		return nil, ErrInvalidKey
	}
	if len(data) <= AuthenticationCodeSize {
		return nil, ErrInvalidCiphertext
	}

	split := len(data) - AuthenticationCodeSize
	ciphertext, code := data[:split], data[split:]
	if !ValidateAuthenticationCode(ciphertext, code, validationKey) {
		return nil, ErrAuthentication
	}
	return Decrypt(bytes.Clone(ciphertext), encryptionKey)
}

// AuthenticatedEncryptString is AuthenticatedEncrypt over UTF-8 input and base64 keys and output.
func AuthenticatedEncryptString(input, encryptionKeyBase64, validationKeyBase64 string) (string, error) {
	if input == "" {
		return "", ErrEmptyInput
	}
	encKey, err := decodeKey(encryptionKeyBase64)
	if err != nil {
		return "", err
	}
	valKey, err := decodeKey(validationKeyBase64)
	if err != nil {
		return "", err
	}
	out, err := AuthenticatedEncrypt([]byte(input), encKey, valKey)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(out), nil
}

// AuthenticatedDecryptString reverses AuthenticatedEncryptString.
func AuthenticatedDecryptString(input, encryptionKeyBase64, validationKeyBase64 string) (string, error) {
	if input == "" {
		return "", ErrEmptyInput
	}
	encKey, err := decodeKey(encryptionKeyBase64)
	if err != nil {
		return "", err
	}
	valKey, err := decodeKey(validationKeyBase64)
	if err != nil {
		return "", err
	}
	data, err := base64.StdEncoding.DecodeString(input)
	if err != nil {
		return "", errors.Join(ErrInvalidEncoding, err)
	}
	out, err := AuthenticatedDecrypt(data, encKey, valKey)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
