package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"unicode/utf8"

	"golang.org/x/sync/singleflight"

	cryptoDomain "github.com/worachetdee/lifenovelRN/internal/crypto/domain"
	cryptoService "github.com/worachetdee/lifenovelRN/internal/crypto/service"
	encryptionDomain "github.com/worachetdee/lifenovelRN/internal/encryption/domain"
)

// encryptionUseCase holds the master key cell.
//
// mu guards masterKey. Readers hold the read lock for the whole time they use
// the key, so ClearCache (write lock) never wipes a key mid-operation. The
// load-or-create sequence runs under the write lock, and group collapses
// concurrent first callers onto a single execution of it.
type encryptionUseCase struct {
	store       SecureStore
	aeadManager cryptoService.AEADManager
	alg         cryptoDomain.Algorithm
	logger      *slog.Logger

	mu        sync.RWMutex
	masterKey []byte
	group     singleflight.Group
}

// NewEncryptionUseCase creates an EncryptionUseCase sealing with alg.
func NewEncryptionUseCase(
	store SecureStore,
	aeadManager cryptoService.AEADManager,
	alg cryptoDomain.Algorithm,
	logger *slog.Logger,
) EncryptionUseCase {
	return &encryptionUseCase{
		store:       store,
		aeadManager: aeadManager,
		alg:         alg,
		logger:      logger,
	}
}

// MasterKey returns a copy of the master key.
func (e *encryptionUseCase) MasterKey(ctx context.Context) ([]byte, error) {
	var out []byte
	err := e.withMasterKey(ctx, func(key []byte) error {
		out = cryptoDomain.CloneKey(key)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Encrypt seals plaintext under the master key.
func (e *encryptionUseCase) Encrypt(ctx context.Context, plaintext string) (*encryptionDomain.Envelope, error) {
	if !utf8.ValidString(plaintext) {
		return nil, encryptionDomain.ErrInvalidPlaintext
	}

	var envelope *encryptionDomain.Envelope
	err := e.withMasterKey(ctx, func(key []byte) error {
		var err error
		envelope, err = e.seal(key, plaintext)
		return err
	})
	if err != nil {
		return nil, err
	}
	return envelope, nil
}

// Decrypt opens an envelope sealed under the master key.
func (e *encryptionUseCase) Decrypt(ctx context.Context, ciphertext, nonce string) (string, error) {
	var plaintext string
	err := e.withMasterKey(ctx, func(key []byte) error {
		var err error
		plaintext, err = e.open(key, ciphertext, nonce)
		return err
	})
	if err != nil {
		return "", err
	}
	return plaintext, nil
}

// EncryptWithGroupKey seals plaintext under groupKey.
func (e *encryptionUseCase) EncryptWithGroupKey(
	ctx context.Context,
	plaintext string,
	groupKey []byte,
) (*encryptionDomain.Envelope, error) {
	if err := cryptoDomain.ValidateKey(groupKey); err != nil {
		return nil, err
	}
	if !utf8.ValidString(plaintext) {
		return nil, encryptionDomain.ErrInvalidPlaintext
	}
	return e.seal(groupKey, plaintext)
}

// DecryptWithGroupKey opens an envelope sealed under groupKey.
func (e *encryptionUseCase) DecryptWithGroupKey(
	ctx context.Context,
	ciphertext, nonce string,
	groupKey []byte,
) (string, error) {
	if err := cryptoDomain.ValidateKey(groupKey); err != nil {
		return "", err
	}
	return e.open(groupKey, ciphertext, nonce)
}

// ClearCache wipes and drops the cached master key.
func (e *encryptionUseCase) ClearCache() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.dropMasterKeyLocked()
}

// ForgetMasterKey wipes the cache and deletes the stored key under one lock,
// so no operation can recreate the key in between.
func (e *encryptionUseCase) ForgetMasterKey(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.dropMasterKeyLocked()
	if err := e.store.Delete(ctx, encryptionDomain.MasterKeyAlias); err != nil {
		return fmt.Errorf("failed to delete master key: %w", err)
	}

	e.logger.Info("master key deleted", slog.String("alias", encryptionDomain.MasterKeyAlias))
	return nil
}

func (e *encryptionUseCase) dropMasterKeyLocked() {
	if e.masterKey == nil {
		return
	}
	cryptoDomain.Zero(e.masterKey)
	e.masterKey = nil
	e.logger.Debug("master key cache cleared")
}

// withMasterKey runs fn with the cached master key under the read lock,
// loading or creating the key first when the cache is empty. fn must not
// retain key.
func (e *encryptionUseCase) withMasterKey(ctx context.Context, fn func(key []byte) error) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if ran, err := e.withCachedKey(fn); ran {
			return err
		}

		_, err, shared := e.group.Do(encryptionDomain.MasterKeyAlias, func() (any, error) {
			return nil, e.loadOrCreateMasterKey(ctx)
		})
		if err != nil {
			// A joined call may fail on the context of the caller that started it.
			if shared && isContextError(err) && ctx.Err() == nil {
				continue
			}
			return err
		}
		// A ClearCache may land between the load and the retry; loop.
	}
}

func isContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func (e *encryptionUseCase) withCachedKey(fn func(key []byte) error) (bool, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.masterKey == nil {
		return false, nil
	}
	return true, fn(e.masterKey)
}

// loadOrCreateMasterKey fills the cache from the store, or generates and
// persists a new key when the store has none.
func (e *encryptionUseCase) loadOrCreateMasterKey(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.masterKey != nil {
		return nil
	}

	if stored, ok := e.store.Get(ctx, encryptionDomain.MasterKeyAlias); ok {
		if err := cryptoDomain.ValidateKey(stored); err != nil {
			cryptoDomain.Zero(stored)
			e.logger.Error("stored master key has invalid length",
				slog.String("alias", encryptionDomain.MasterKeyAlias),
				slog.Int("length", len(stored)),
			)
			return encryptionDomain.ErrCorruptMasterKey
		}
		e.masterKey = stored
		return nil
	}

	key, err := cryptoDomain.GenerateKey()
	if err != nil {
		return err
	}
	if err := e.store.Put(ctx, encryptionDomain.MasterKeyAlias, key); err != nil {
		cryptoDomain.Zero(key)
		return fmt.Errorf("failed to persist master key: %w", err)
	}

	e.masterKey = key
	e.logger.Info("master key created",
		slog.String("alias", encryptionDomain.MasterKeyAlias),
		slog.String("algorithm", e.alg.String()),
	)
	return nil
}

func (e *encryptionUseCase) seal(key []byte, plaintext string) (*encryptionDomain.Envelope, error) {
	cipher, err := e.aeadManager.CreateCipher(key, e.alg)
	if err != nil {
		return nil, err
	}
	defer cipher.Close()

	buf := []byte(plaintext)
	defer cryptoDomain.Zero(buf)

	ciphertext, nonce, err := cipher.Encrypt(buf, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt: %w", err)
	}
	return encryptionDomain.NewEnvelope(ciphertext, nonce), nil
}

func (e *encryptionUseCase) open(key []byte, ciphertext, nonce string) (string, error) {
	rawCiphertext, rawNonce, err := (&encryptionDomain.Envelope{Ciphertext: ciphertext, Nonce: nonce}).Decode()
	if err != nil {
		return "", err
	}

	cipher, err := e.aeadManager.CreateCipher(key, e.alg)
	if err != nil {
		return "", err
	}
	defer cipher.Close()

	plaintext, err := cipher.Decrypt(rawCiphertext, rawNonce, nil)
	if err != nil {
		return "", err
	}
	defer cryptoDomain.Zero(plaintext)

	if !utf8.Valid(plaintext) {
		return "", cryptoDomain.ErrMalformed
	}
	return string(plaintext), nil
}
