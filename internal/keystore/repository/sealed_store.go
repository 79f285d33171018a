package repository

import (
	"context"
	"fmt"
	"log/slog"

	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	cryptoDomain "github.com/worachetdee/lifenovelRN/internal/crypto/domain"
	keystoreDomain "github.com/worachetdee/lifenovelRN/internal/keystore/domain"

	// Bucket drivers selectable through SEALED_STORE_BUCKET_URL.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
)

// sealedSupportedPolicy: the bucket is local to the host and the KMS key
// may be hardware backed, but there is no lock state or user prompt.
var sealedSupportedPolicy = keystoreDomain.AccessPolicy{
	ThisDeviceOnly: true,
	PreferHardware: true,
}

// SealedSecureStore wraps each secret with a KMS keeper and stores the
// wrapped bytes as one object per alias.
type SealedSecureStore struct {
	keeper      cryptoDomain.KMSKeeper
	bucket      *blob.Bucket
	serviceName string
	logger      *slog.Logger
}

// OpenBucket opens a gocloud.dev bucket URL such as file:///var/lib/lifenovel/keys
// or mem://.
func OpenBucket(ctx context.Context, bucketURL string) (*blob.Bucket, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open bucket: %w", err)
	}
	return bucket, nil
}

// NewSealedSecureStore takes ownership of keeper and bucket; Close releases both.
func NewSealedSecureStore(
	keeper cryptoDomain.KMSKeeper,
	bucket *blob.Bucket,
	serviceName string,
	policy keystoreDomain.AccessPolicy,
	logger *slog.Logger,
) *SealedSecureStore {
	if missing := policy.Unsupported(sealedSupportedPolicy); len(missing) > 0 {
		logger.Warn("sealed store cannot enforce requested access policy",
			slog.String("service", serviceName),
			slog.Any("unsupported", missing),
		)
	}
	return &SealedSecureStore{
		keeper:      keeper,
		bucket:      bucket,
		serviceName: serviceName,
		logger:      logger,
	}
}

// Put wraps secret and overwrites the object for alias.
func (s *SealedSecureStore) Put(ctx context.Context, alias string, secret []byte) error {
	if err := keystoreDomain.ValidateAlias(alias); err != nil {
		return fmt.Errorf("%w: %w", keystoreDomain.ErrWriteFailed, err)
	}

	wrapped, err := s.keeper.Encrypt(ctx, secret)
	if err != nil {
		return fmt.Errorf("%w: wrap: %w", keystoreDomain.ErrWriteFailed, err)
	}

	opts := &blob.WriterOptions{
		ContentType: "application/octet-stream",
		Metadata:    map[string]string{"service": s.serviceName},
	}
	if err := s.bucket.WriteAll(ctx, s.objectKey(alias), wrapped, opts); err != nil {
		return fmt.Errorf("%w: %w", keystoreDomain.ErrWriteFailed, err)
	}
	return nil
}

// Get reads and unwraps alias. Missing objects and unwrap failures are absent.
func (s *SealedSecureStore) Get(ctx context.Context, alias string) ([]byte, bool) {
	if keystoreDomain.ValidateAlias(alias) != nil {
		return nil, false
	}

	wrapped, err := s.bucket.ReadAll(ctx, s.objectKey(alias))
	if err != nil {
		if gcerrors.Code(err) != gcerrors.NotFound {
			s.logger.Debug("sealed store read failed",
				slog.String("alias", alias),
				slog.Any("error", err),
			)
		}
		return nil, false
	}

	secret, err := s.keeper.Decrypt(ctx, wrapped)
	if err != nil {
		s.logger.Debug("sealed store unwrap failed",
			slog.String("alias", alias),
			slog.Any("error", err),
		)
		return nil, false
	}
	return secret, true
}

// Delete removes the object for alias. Missing objects are not an error.
func (s *SealedSecureStore) Delete(ctx context.Context, alias string) error {
	if keystoreDomain.ValidateAlias(alias) != nil {
		return nil
	}

	err := s.bucket.Delete(ctx, s.objectKey(alias))
	if err == nil || gcerrors.Code(err) == gcerrors.NotFound {
		return nil
	}
	return fmt.Errorf("%w: %w", keystoreDomain.ErrDeleteFailed, err)
}

// Close releases the keeper and bucket.
func (s *SealedSecureStore) Close() error {
	keeperErr := s.keeper.Close()
	bucketErr := s.bucket.Close()
	if keeperErr != nil {
		return fmt.Errorf("failed to close keeper: %w", keeperErr)
	}
	if bucketErr != nil {
		return fmt.Errorf("failed to close bucket: %w", bucketErr)
	}
	return nil
}

func (s *SealedSecureStore) objectKey(alias string) string {
	return s.serviceName + "/" + alias + ".sealed"
}
