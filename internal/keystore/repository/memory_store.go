package repository

import (
	"context"
	"fmt"
	"sync"

	cryptoDomain "github.com/worachetdee/lifenovelRN/internal/crypto/domain"
	keystoreDomain "github.com/worachetdee/lifenovelRN/internal/keystore/domain"
)

// MemorySecureStore keeps secrets in a map. Values are copied in and out so
// callers can zero their buffers freely, and replaced or deleted values are
// wiped.
type MemorySecureStore struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

// NewMemorySecureStore creates an empty store.
func NewMemorySecureStore() *MemorySecureStore {
	return &MemorySecureStore{entries: make(map[string][]byte)}
}

// Put stores a copy of secret under alias.
func (m *MemorySecureStore) Put(ctx context.Context, alias string, secret []byte) error {
	if err := keystoreDomain.ValidateAlias(alias); err != nil {
		return fmt.Errorf("%w: %w", keystoreDomain.ErrWriteFailed, err)
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", keystoreDomain.ErrWriteFailed, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if old, ok := m.entries[alias]; ok {
		cryptoDomain.Zero(old)
	}
	m.entries[alias] = cryptoDomain.CloneKey(secret)
	return nil
}

// Get returns a copy of the secret stored under alias.
func (m *MemorySecureStore) Get(ctx context.Context, alias string) ([]byte, bool) {
	if ctx.Err() != nil {
		return nil, false
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	secret, ok := m.entries[alias]
	if !ok {
		return nil, false
	}
	return cryptoDomain.CloneKey(secret), true
}

// Delete wipes and removes alias.
func (m *MemorySecureStore) Delete(ctx context.Context, alias string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if old, ok := m.entries[alias]; ok {
		cryptoDomain.Zero(old)
		delete(m.entries, alias)
	}
	return nil
}

// Len reports the number of stored entries.
func (m *MemorySecureStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// Close wipes every entry.
func (m *MemorySecureStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for alias, secret := range m.entries {
		cryptoDomain.Zero(secret)
		delete(m.entries, alias)
	}
	return nil
}
