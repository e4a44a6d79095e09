package encryption

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/binary"
	"errors"
	"strings"
)

// RandomBytes returns n bytes from the system CSPRNG.
func RandomBytes(n int) ([]byte, error) {
	if n <= 0 {
		return nil, ErrInvalidSize
	}
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, errors.Join(ErrRandomFailed, err)
	}
	return b, nil
}

// RandomInt returns a random non-negative 32-bit integer.
func RandomInt() (int32, error) {
	b, err := RandomBytes(4)
	if err != nil {
		return 0, err
	}
	return int32(binary.LittleEndian.Uint32(b) & 0x7fffffff), nil
}

var tokenReplacer = strings.NewReplacer("+", "-", "/", "_")

// RandomStringToken returns a URL-safe random token of exactly n characters.
func RandomStringToken(n int) (string, error) {
	b, err := RandomBytes(n)
	if err != nil {
		return "", err
	}
	return tokenReplacer.Replace(base64.StdEncoding.EncodeToString(b)[:n]), nil
}
