// Package usecase implements the device master key lifecycle and the text
// encryption operations built on it.
package usecase

import (
	"context"

	encryptionDomain "github.com/worachetdee/lifenovelRN/internal/encryption/domain"
)

// SecureStore is the platform secret storage capability. Implementations
// live in internal/keystore/repository.
type SecureStore interface {
	// Put overwrites alias with secret. Fails with keystoreDomain.ErrWriteFailed.
	Put(ctx context.Context, alias string, secret []byte) error

	// Get returns a caller-owned copy of the secret. A missing entry and an
	// entry that cannot be read are both reported as absent.
	Get(ctx context.Context, alias string) ([]byte, bool)

	// Delete removes alias; deleting a missing alias succeeds.
	Delete(ctx context.Context, alias string) error
}

// EncryptionUseCase encrypts text under the device master key or under a
// caller supplied group key.
type EncryptionUseCase interface {
	// MasterKey returns a copy of the master key, creating and persisting one
	// on first use. Callers must zero the returned slice.
	MasterKey(ctx context.Context) ([]byte, error)

	Encrypt(ctx context.Context, plaintext string) (*encryptionDomain.Envelope, error)
	Decrypt(ctx context.Context, ciphertext, nonce string) (string, error)

	// EncryptWithGroupKey and DecryptWithGroupKey never touch the secure
	// store or the master key cache.
	EncryptWithGroupKey(ctx context.Context, plaintext string, groupKey []byte) (*encryptionDomain.Envelope, error)
	DecryptWithGroupKey(ctx context.Context, ciphertext, nonce string, groupKey []byte) (string, error)

	// ClearCache wipes the in-memory master key. The next operation reloads
	// it from the secure store.
	ClearCache()

	// ForgetMasterKey wipes the cache and deletes the stored master key.
	// Everything encrypted under it becomes unreadable.
	ForgetMasterKey(ctx context.Context) error
}
