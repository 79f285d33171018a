package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/worachetdee/lifenovelRN/internal/crypto/domain"
)

func TestNewXChaCha20Poly1305(t *testing.T) {
	t.Run("valid 256-bit key", func(t *testing.T) {
		c, err := NewXChaCha20Poly1305(randomKey(t))
		require.NoError(t, err)
		assert.Equal(t, 24, c.NonceSize())
	})

	t.Run("invalid key size", func(t *testing.T) {
		c, err := NewXChaCha20Poly1305(make([]byte, 16))
		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidKeyLength)
		assert.Nil(t, c)
	})
}

func TestXChaCha20Poly1305Cipher_AAD(t *testing.T) {
	c, err := NewXChaCha20Poly1305(randomKey(t))
	require.NoError(t, err)

	aad := []byte("circle:family")
	ciphertext, nonce, err := c.Encrypt([]byte("hello circle"), aad)
	require.NoError(t, err)

	t.Run("matching aad", func(t *testing.T) {
		plaintext, err := c.Decrypt(ciphertext, nonce, aad)
		require.NoError(t, err)
		assert.Equal(t, "hello circle", string(plaintext))
	})

	t.Run("different aad", func(t *testing.T) {
		_, err := c.Decrypt(ciphertext, nonce, []byte("circle:friends"))
		assert.ErrorIs(t, err, cryptoDomain.ErrAuthenticationFailed)
	})

	t.Run("missing aad", func(t *testing.T) {
		_, err := c.Decrypt(ciphertext, nonce, nil)
		assert.ErrorIs(t, err, cryptoDomain.ErrAuthenticationFailed)
	})
}
