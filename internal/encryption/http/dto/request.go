// Package dto provides data transfer objects for the encryption HTTP API.
package dto

import (
	validation "github.com/jellydator/validation"

	cryptoDomain "github.com/worachetdee/lifenovelRN/internal/crypto/domain"
	customValidation "github.com/worachetdee/lifenovelRN/internal/validation"
)

// MaxPlaintextBytes bounds the size of a single plaintext field.
const MaxPlaintextBytes = 1 << 20

// maxEncodedBytes bounds base64 fields that carry ciphertext of a maximal plaintext.
const maxEncodedBytes = (MaxPlaintextBytes + 64) * 4 / 3

// EncryptRequest contains the text to seal under the device master key.
// An empty plaintext is valid.
type EncryptRequest struct {
	Plaintext string `json:"plaintext"`
}

// Validate checks if the encrypt request is valid.
func (r *EncryptRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Plaintext,
			customValidation.UTF8,
			customValidation.MaxBytes(MaxPlaintextBytes),
		),
	)
}

// DecryptRequest contains an envelope produced under the device master key.
type DecryptRequest struct {
	Ciphertext string `json:"ciphertext"`
	Nonce      string `json:"nonce"`
}

// Validate checks if the decrypt request is valid.
func (r *DecryptRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Ciphertext,
			validation.Required,
			customValidation.NotBlank,
			customValidation.MaxBytes(maxEncodedBytes),
			customValidation.Base64,
		),
		validation.Field(&r.Nonce,
			validation.Required,
			customValidation.NotBlank,
			customValidation.Base64,
		),
	)
}

// GroupEncryptRequest contains the text to seal under a shared group key.
type GroupEncryptRequest struct {
	Plaintext string `json:"plaintext"`
	GroupKey  string `json:"group_key"` // Base64-encoded 32-byte key
}

// Validate checks if the group encrypt request is valid.
func (r *GroupEncryptRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Plaintext,
			customValidation.UTF8,
			customValidation.MaxBytes(MaxPlaintextBytes),
		),
		validation.Field(&r.GroupKey,
			validation.Required,
			customValidation.Base64Key(cryptoDomain.KeySize),
		),
	)
}

// DecodeGroupKey returns the raw group key. Callers must zero it.
func (r *GroupEncryptRequest) DecodeGroupKey() ([]byte, error) {
	return cryptoDomain.DecodeKey(r.GroupKey)
}

// GroupDecryptRequest contains an envelope produced under a shared group key.
type GroupDecryptRequest struct {
	Ciphertext string `json:"ciphertext"`
	Nonce      string `json:"nonce"`
	GroupKey   string `json:"group_key"` // Base64-encoded 32-byte key
}

// Validate checks if the group decrypt request is valid.
func (r *GroupDecryptRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Ciphertext,
			validation.Required,
			customValidation.NotBlank,
			customValidation.MaxBytes(maxEncodedBytes),
			customValidation.Base64,
		),
		validation.Field(&r.Nonce,
			validation.Required,
			customValidation.NotBlank,
			customValidation.Base64,
		),
		validation.Field(&r.GroupKey,
			validation.Required,
			customValidation.Base64Key(cryptoDomain.KeySize),
		),
	)
}

// DecodeGroupKey returns the raw group key. Callers must zero it.
func (r *GroupDecryptRequest) DecodeGroupKey() ([]byte, error) {
	return cryptoDomain.DecodeKey(r.GroupKey)
}
