package usecase

import (
	"context"
	"time"

	encryptionDomain "github.com/worachetdee/lifenovelRN/internal/encryption/domain"
	"github.com/worachetdee/lifenovelRN/internal/metrics"
)

const metricsDomain = "encryption"

// encryptionUseCaseWithMetrics decorates EncryptionUseCase with metrics instrumentation.
type encryptionUseCaseWithMetrics struct {
	next    EncryptionUseCase
	metrics metrics.BusinessMetrics
}

// NewEncryptionUseCaseWithMetrics wraps an EncryptionUseCase with metrics recording.
func NewEncryptionUseCaseWithMetrics(useCase EncryptionUseCase, m metrics.BusinessMetrics) EncryptionUseCase {
	return &encryptionUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (e *encryptionUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	e.metrics.RecordOperation(ctx, metricsDomain, operation, status)
	e.metrics.RecordDuration(ctx, metricsDomain, operation, time.Since(start), status)
}

// MasterKey records metrics for master key resolution.
func (e *encryptionUseCaseWithMetrics) MasterKey(ctx context.Context) ([]byte, error) {
	start := time.Now()
	key, err := e.next.MasterKey(ctx)
	e.record(ctx, "master_key_get", start, err)
	return key, err
}

// Encrypt records metrics for master key encryption.
func (e *encryptionUseCaseWithMetrics) Encrypt(
	ctx context.Context,
	plaintext string,
) (*encryptionDomain.Envelope, error) {
	start := time.Now()
	envelope, err := e.next.Encrypt(ctx, plaintext)
	e.record(ctx, "encrypt", start, err)
	return envelope, err
}

// Decrypt records metrics for master key decryption.
func (e *encryptionUseCaseWithMetrics) Decrypt(ctx context.Context, ciphertext, nonce string) (string, error) {
	start := time.Now()
	plaintext, err := e.next.Decrypt(ctx, ciphertext, nonce)
	e.record(ctx, "decrypt", start, err)
	return plaintext, err
}

// EncryptWithGroupKey records metrics for group key encryption.
func (e *encryptionUseCaseWithMetrics) EncryptWithGroupKey(
	ctx context.Context,
	plaintext string,
	groupKey []byte,
) (*encryptionDomain.Envelope, error) {
	start := time.Now()
	envelope, err := e.next.EncryptWithGroupKey(ctx, plaintext, groupKey)
	e.record(ctx, "group_encrypt", start, err)
	return envelope, err
}

// DecryptWithGroupKey records metrics for group key decryption.
func (e *encryptionUseCaseWithMetrics) DecryptWithGroupKey(
	ctx context.Context,
	ciphertext, nonce string,
	groupKey []byte,
) (string, error) {
	start := time.Now()
	plaintext, err := e.next.DecryptWithGroupKey(ctx, ciphertext, nonce, groupKey)
	e.record(ctx, "group_decrypt", start, err)
	return plaintext, err
}

// ClearCache records a cache clear. It has no caller context.
func (e *encryptionUseCaseWithMetrics) ClearCache() {
	start := time.Now()
	e.next.ClearCache()
	e.record(context.Background(), "cache_clear", start, nil)
}

// ForgetMasterKey records metrics for master key deletion.
func (e *encryptionUseCaseWithMetrics) ForgetMasterKey(ctx context.Context) error {
	start := time.Now()
	err := e.next.ForgetMasterKey(ctx)
	e.record(ctx, "master_key_forget", start, err)
	return err
}
