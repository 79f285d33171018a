// Package mocks provides testify mocks for the encryption use case and its
// dependencies.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	encryptionDomain "github.com/worachetdee/lifenovelRN/internal/encryption/domain"
)

// MockSecureStore is a mock implementation of usecase.SecureStore.
type MockSecureStore struct {
	mock.Mock
}

// Put mocks the Put method of SecureStore.
func (m *MockSecureStore) Put(ctx context.Context, alias string, secret []byte) error {
	args := m.Called(ctx, alias, secret)
	return args.Error(0)
}

// Get mocks the Get method of SecureStore.
func (m *MockSecureStore) Get(ctx context.Context, alias string) ([]byte, bool) {
	args := m.Called(ctx, alias)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).([]byte), args.Bool(1)
}

// Delete mocks the Delete method of SecureStore.
func (m *MockSecureStore) Delete(ctx context.Context, alias string) error {
	args := m.Called(ctx, alias)
	return args.Error(0)
}

// MockEncryptionUseCase is a mock implementation of usecase.EncryptionUseCase.
type MockEncryptionUseCase struct {
	mock.Mock
}

// MasterKey mocks the MasterKey method of EncryptionUseCase.
func (m *MockEncryptionUseCase) MasterKey(ctx context.Context) ([]byte, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// Encrypt mocks the Encrypt method of EncryptionUseCase.
func (m *MockEncryptionUseCase) Encrypt(ctx context.Context, plaintext string) (*encryptionDomain.Envelope, error) {
	args := m.Called(ctx, plaintext)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*encryptionDomain.Envelope), args.Error(1)
}

// Decrypt mocks the Decrypt method of EncryptionUseCase.
func (m *MockEncryptionUseCase) Decrypt(ctx context.Context, ciphertext, nonce string) (string, error) {
	args := m.Called(ctx, ciphertext, nonce)
	return args.String(0), args.Error(1)
}

// EncryptWithGroupKey mocks the EncryptWithGroupKey method of EncryptionUseCase.
func (m *MockEncryptionUseCase) EncryptWithGroupKey(
	ctx context.Context,
	plaintext string,
	groupKey []byte,
) (*encryptionDomain.Envelope, error) {
	args := m.Called(ctx, plaintext, groupKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*encryptionDomain.Envelope), args.Error(1)
}

// DecryptWithGroupKey mocks the DecryptWithGroupKey method of EncryptionUseCase.
func (m *MockEncryptionUseCase) DecryptWithGroupKey(
	ctx context.Context,
	ciphertext, nonce string,
	groupKey []byte,
) (string, error) {
	args := m.Called(ctx, ciphertext, nonce, groupKey)
	return args.String(0), args.Error(1)
}

// ClearCache mocks the ClearCache method of EncryptionUseCase.
func (m *MockEncryptionUseCase) ClearCache() {
	m.Called()
}

// ForgetMasterKey mocks the ForgetMasterKey method of EncryptionUseCase.
func (m *MockEncryptionUseCase) ForgetMasterKey(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
