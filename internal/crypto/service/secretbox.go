package service

import (
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/nacl/secretbox"

	cryptoDomain "github.com/worachetdee/lifenovelRN/internal/crypto/domain"
)

// SecretBoxCipher implements AEAD with NaCl secretbox (XSalsa20-Poly1305).
//
// Output layout is tag||ciphertext, the same as tweetnacl's secretbox, so
// envelopes written by the mobile client open here and vice versa.
// Associated data is not supported.
type SecretBoxCipher struct {
	key [cryptoDomain.KeySize]byte
}

// NewSecretBox copies key into a new cipher. The caller keeps ownership of
// key and may zero it once the cipher exists.
func NewSecretBox(key []byte) (*SecretBoxCipher, error) {
	if err := cryptoDomain.ValidateKey(key); err != nil {
		return nil, err
	}
	c := &SecretBoxCipher{}
	copy(c.key[:], key)
	return c, nil
}

// Encrypt seals plaintext under a fresh 24-byte nonce.
func (c *SecretBoxCipher) Encrypt(plaintext, aad []byte) (ciphertext, nonce []byte, err error) {
	if len(aad) > 0 {
		return nil, nil, cryptoDomain.ErrUnsupportedAAD
	}

	var n [cryptoDomain.NonceSize]byte
	if _, err := rand.Read(n[:]); err != nil {
		return nil, nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	ciphertext = secretbox.Seal(nil, plaintext, &n, &c.key)
	return ciphertext, n[:], nil
}

// Decrypt opens ciphertext. A nonce of the wrong length can never verify and
// is reported as an authentication failure.
func (c *SecretBoxCipher) Decrypt(ciphertext, nonce, aad []byte) ([]byte, error) {
	if len(aad) > 0 {
		return nil, cryptoDomain.ErrUnsupportedAAD
	}
	if len(nonce) != cryptoDomain.NonceSize {
		return nil, cryptoDomain.ErrAuthenticationFailed
	}

	var n [cryptoDomain.NonceSize]byte
	copy(n[:], nonce)

	plaintext, ok := secretbox.Open(nil, ciphertext, &n, &c.key)
	if !ok {
		return nil, cryptoDomain.ErrAuthenticationFailed
	}
	return plaintext, nil
}

// NonceSize returns 24.
func (c *SecretBoxCipher) NonceSize() int {
	return cryptoDomain.NonceSize
}

// Close wipes the cipher's key copy. The cipher must not be used afterwards.
func (c *SecretBoxCipher) Close() {
	cryptoDomain.Zero(c.key[:])
}
