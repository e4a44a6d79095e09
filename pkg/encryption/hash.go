package encryption

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
)

// ComputeHash returns the SHA-256 digest of data.
func ComputeHash(data []byte) []byte {
	sum := sha256.Sum256(data)
	return sum[:]
}

// ComputeSaltedHash returns SHA-256(salt || data).
func ComputeSaltedHash(data, salt []byte) []byte {
	h := sha256.New()
	h.Write(salt)
	h.Write(data)
	return h.Sum(nil)
}

// ComputeHashString hashes the UTF-8 bytes of s and returns lowercase hex.
func ComputeHashString(s string) string {
	return hex.EncodeToString(ComputeHash([]byte(s)))
}

// HexToBytes decodes a hex string. Case and an optional 0x prefix are ignored.
func HexToBytes(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(s), "0x"), "0X")
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Join(ErrInvalidEncoding, err)
	}
	return b, nil
}

// BytesToHex encodes b as uppercase hex, the format used in machine key configuration.
func BytesToHex(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}
