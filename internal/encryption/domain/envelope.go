// Package domain defines the encrypted envelope exchanged with callers and
// the fixed secure store alias of the device master key.
package domain

import (
	"encoding/base64"
	"fmt"

	cryptoDomain "github.com/worachetdee/lifenovelRN/internal/crypto/domain"
)

// MasterKeyAlias is the secure store alias of the device master key.
const MasterKeyAlias = "lifenovel_master_key"

// Envelope is an authenticated ciphertext and the nonce it was sealed with,
// both standard base64 without line breaks. An envelope is only meaningful
// together with the key that produced it.
type Envelope struct {
	Ciphertext string `json:"ciphertext"`
	Nonce      string `json:"nonce"`
}

// NewEnvelope encodes raw cipher output.
func NewEnvelope(ciphertext, nonce []byte) *Envelope {
	return &Envelope{
		Ciphertext: base64.StdEncoding.EncodeToString(ciphertext),
		Nonce:      base64.StdEncoding.EncodeToString(nonce),
	}
}

// Decode returns the raw ciphertext and nonce. Invalid base64 in either
// field is reported as cryptoDomain.ErrMalformed.
func (e *Envelope) Decode() (ciphertext, nonce []byte, err error) {
	ciphertext, err = base64.StdEncoding.DecodeString(e.Ciphertext)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: ciphertext: %w", cryptoDomain.ErrMalformed, err)
	}
	nonce, err = base64.StdEncoding.DecodeString(e.Nonce)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: nonce: %w", cryptoDomain.ErrMalformed, err)
	}
	return ciphertext, nonce, nil
}
