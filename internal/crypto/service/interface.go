// Package service provides the authenticated ciphers used to seal text
// payloads under master and group keys, plus access to external KMS keepers.
package service

import (
	"context"

	cryptoDomain "github.com/worachetdee/lifenovelRN/internal/crypto/domain"
)

// AEAD seals and opens messages under a single key with random nonces.
type AEAD interface {
	// Encrypt seals plaintext under a fresh random nonce and returns both.
	// aad may be nil.
	Encrypt(plaintext, aad []byte) (ciphertext, nonce []byte, err error)

	// Decrypt verifies and opens ciphertext. Any verification failure is
	// reported as cryptoDomain.ErrAuthenticationFailed with no plaintext.
	Decrypt(ciphertext, nonce, aad []byte) ([]byte, error)

	// NonceSize returns the nonce length in bytes.
	NonceSize() int

	// Close wipes any key copy held by the cipher.
	Close()
}

// AEADManager builds AEAD instances for a key and algorithm.
type AEADManager interface {
	// CreateCipher validates key length and returns a cipher for alg.
	CreateCipher(key []byte, alg cryptoDomain.Algorithm) (AEAD, error)
}

// KMSService opens KMS keepers from gocloud.dev URLs.
type KMSService interface {
	// OpenKeeper opens the keeper identified by keyURI.
	OpenKeeper(ctx context.Context, keyURI string) (cryptoDomain.KMSKeeper, error)
}
