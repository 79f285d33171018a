package domain

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strings"
)

// GenerateKey returns KeySize bytes from the system CSPRNG.
func GenerateKey() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("failed to generate key: %w", err)
	}
	return key, nil
}

// ValidateKey checks only the length of key; content is opaque.
func ValidateKey(key []byte) error {
	if len(key) != KeySize {
		return ErrInvalidKeyLength
	}
	return nil
}

// DecodeKey parses a standard base64 key and checks its length. Invalid
// base64 and a wrong length both wrap ErrInvalidKeyLength. Callers must
// zero the result.
func DecodeKey(encoded string) ([]byte, error) {
	key, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		Zero(key)
		return nil, fmt.Errorf("key is not valid base64: %w", ErrInvalidKeyLength)
	}
	if err := ValidateKey(key); err != nil {
		Zero(key)
		return nil, err
	}
	return key, nil
}

// CloneKey returns an independent copy of key so that zeroing one never
// affects the other.
func CloneKey(key []byte) []byte {
	if key == nil {
		return nil
	}
	out := make([]byte, len(key))
	copy(out, key)
	return out
}
