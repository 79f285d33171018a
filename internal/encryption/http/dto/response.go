package dto

import (
	encryptionDomain "github.com/worachetdee/lifenovelRN/internal/encryption/domain"
)

// EnvelopeResponse is returned by both encrypt endpoints.
type EnvelopeResponse struct {
	Ciphertext string `json:"ciphertext"`
	Nonce      string `json:"nonce"`
}

// MapEnvelopeToResponse converts a domain envelope to an API response.
func MapEnvelopeToResponse(envelope *encryptionDomain.Envelope) EnvelopeResponse {
	return EnvelopeResponse{
		Ciphertext: envelope.Ciphertext,
		Nonce:      envelope.Nonce,
	}
}

// PlaintextResponse is returned by both decrypt endpoints.
// SECURITY: Plaintext should only travel over loopback or TLS.
type PlaintextResponse struct {
	Plaintext string `json:"plaintext"`
}
