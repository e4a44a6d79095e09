package encryption

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
)

// AuthenticationCodeSize is the length of an HMAC-SHA1 code in bytes.
const AuthenticationCodeSize = sha1.Size

// GenerateAuthenticationCode computes HMAC-SHA1 of data under key.
func GenerateAuthenticationCode(data, key []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}
	if len(key) == 0 {
		return nil, ErrInvalidKey
	}
	mac := hmac.New(sha1.New, key)
	mac.Write(data)
	return mac.Sum(nil), nil
}

// ValidateAuthenticationCode reports whether code is the HMAC-SHA1 of data under key.
// The comparison runs in constant time.
func ValidateAuthenticationCode(data, code, key []byte) bool {
	if len(code) == 0 {
		return false
	}
	expected, err := GenerateAuthenticationCode(data, key)
	if err != nil {
		return false
	}
	return hmac.Equal(expected, code)
}

// GenerateAuthenticationCodeString computes the base64 HMAC-SHA1 of UTF-8 input with a base64 key.
func GenerateAuthenticationCodeString(input, keyBase64 string) (string, error) {
	if input == "" {
		return "", ErrEmptyInput
	}
	key, err := decodeKey(keyBase64)
	if err != nil {
		return "", err
	}
	code, err := GenerateAuthenticationCode([]byte(input), key)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(code), nil
}

// ValidateAuthenticationCodeString is the string form of ValidateAuthenticationCode.
func ValidateAuthenticationCodeString(input, codeBase64, keyBase64 string) bool {
	if input == "" || codeBase64 == "" {
		return false
	}
	key, err := decodeKey(keyBase64)
	if err != nil {
		return false
	}
	code, err := base64.StdEncoding.DecodeString(codeBase64)
	if err != nil {
		return false
	}
	return ValidateAuthenticationCode([]byte(input), code, key)
}
