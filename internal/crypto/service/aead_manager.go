package service

import (
	cryptoDomain "github.com/worachetdee/lifenovelRN/internal/crypto/domain"
)

// AEADManagerService implements AEADManager.
type AEADManagerService struct{}

// NewAEADManager creates a new AEADManagerService.
func NewAEADManager() *AEADManagerService {
	return &AEADManagerService{}
}

// CreateCipher returns ErrInvalidKeyLength if key is not 32 bytes and
// ErrUnsupportedAlgorithm if alg is unknown. Key length is checked first so a
// bad key never reaches cipher construction.
func (am *AEADManagerService) CreateCipher(key []byte, alg cryptoDomain.Algorithm) (AEAD, error) {
	if err := cryptoDomain.ValidateKey(key); err != nil {
		return nil, err
	}

	switch alg {
	case cryptoDomain.XSalsa20Poly1305:
		return NewSecretBox(key)
	case cryptoDomain.XChaCha20Poly1305:
		return NewXChaCha20Poly1305(key)
	default:
		return nil, cryptoDomain.ErrUnsupportedAlgorithm
	}
}
