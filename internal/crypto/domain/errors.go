package domain

import (
	"github.com/worachetdee/lifenovelRN/internal/errors"
)

// Cryptographic failures. Each wraps errors.ErrInvalidInput so the HTTP layer
// answers 422 without knowing the specific cause.
var (
	// ErrUnsupportedAlgorithm indicates an unknown algorithm name.
	ErrUnsupportedAlgorithm = errors.Wrap(errors.ErrInvalidInput, "unsupported algorithm")

	// ErrInvalidKeyLength indicates a key that is not exactly KeySize bytes.
	// It is raised before any cipher work starts and is a caller
	// configuration error rather than a data error.
	ErrInvalidKeyLength = errors.Wrap(errors.ErrInvalidInput, "invalid key length")

	// ErrAuthenticationFailed indicates the ciphertext did not verify under
	// the key and nonce: wrong key, tampered data, or a mismatched nonce.
	// No partial plaintext is ever returned alongside it.
	//
	// HTTP Status: 422 Unprocessable Entity
	ErrAuthenticationFailed = errors.Wrap(errors.ErrInvalidInput, "decryption failed: invalid key or corrupted data")

	// ErrMalformed indicates the envelope could not be decoded (bad base64)
	// or the authenticated plaintext is not valid UTF-8.
	ErrMalformed = errors.Wrap(errors.ErrInvalidInput, "malformed envelope")

	// ErrUnsupportedAAD is returned by ciphers that cannot bind associated data.
	ErrUnsupportedAAD = errors.Wrap(errors.ErrInvalidInput, "associated data not supported by algorithm")
)
