package repository

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/99designs/keyring"

	cryptoDomain "github.com/worachetdee/lifenovelRN/internal/crypto/domain"
	keystoreDomain "github.com/worachetdee/lifenovelRN/internal/keystore/domain"
)

// keyringSupportedPolicy lists what the keyring backends can enforce. Hardware
// placement and user-presence prompts are decided by the OS keychain and
// cannot be requested through the portable API.
var keyringSupportedPolicy = keystoreDomain.AccessPolicy{
	RequireUnlocked: true,
	ThisDeviceOnly:  true,
}

// KeyringConfig selects and configures the platform keychain.
type KeyringConfig struct {
	// ServiceName namespaces entries, e.g. "com.lifenovel.keys".
	ServiceName string

	// Backends restricts which keyring backends may be used, e.g.
	// ["keychain", "wincred", "secret-service", "file"]. Empty allows all.
	Backends []string

	// FileDir is where the encrypted-file backend keeps its entries.
	FileDir string

	// FilePassword unlocks the encrypted-file backend.
	FilePassword string

	// Policy is the requested protection.
	Policy keystoreDomain.AccessPolicy
}

// OpenKeyring opens the first available backend allowed by cfg.
func OpenKeyring(cfg KeyringConfig) (keyring.Keyring, error) {
	backends := make([]keyring.BackendType, 0, len(cfg.Backends))
	for _, b := range cfg.Backends {
		if b = strings.TrimSpace(b); b != "" {
			backends = append(backends, keyring.BackendType(b))
		}
	}

	ring, err := keyring.Open(keyring.Config{
		ServiceName:                    cfg.ServiceName,
		AllowedBackends:                backends,
		KeychainTrustApplication:       true,
		KeychainSynchronizable:         !cfg.Policy.ThisDeviceOnly,
		KeychainAccessibleWhenUnlocked: cfg.Policy.RequireUnlocked,
		KWalletAppID:                   cfg.ServiceName,
		KWalletFolder:                  cfg.ServiceName,
		WinCredPrefix:                  cfg.ServiceName,
		FileDir:                        cfg.FileDir,
		FilePasswordFunc:               keyring.FixedStringPrompt(cfg.FilePassword),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open keyring: %w", err)
	}
	return ring, nil
}

// KeyringSecureStore stores base64-encoded secrets in a keyring.Keyring.
type KeyringSecureStore struct {
	ring        keyring.Keyring
	serviceName string
	policy      keystoreDomain.AccessPolicy
	logger      *slog.Logger
}

// NewKeyringSecureStore wraps an opened keyring. Requested protections the
// keyring cannot enforce are logged once.
func NewKeyringSecureStore(
	ring keyring.Keyring,
	serviceName string,
	policy keystoreDomain.AccessPolicy,
	logger *slog.Logger,
) *KeyringSecureStore {
	if missing := policy.Unsupported(keyringSupportedPolicy); len(missing) > 0 {
		logger.Warn("keyring cannot enforce requested access policy",
			slog.String("service", serviceName),
			slog.Any("unsupported", missing),
		)
	}
	return &KeyringSecureStore{
		ring:        ring,
		serviceName: serviceName,
		policy:      policy,
		logger:      logger,
	}
}

// Put overwrites alias with secret.
func (k *KeyringSecureStore) Put(ctx context.Context, alias string, secret []byte) error {
	if err := keystoreDomain.ValidateAlias(alias); err != nil {
		return fmt.Errorf("%w: %w", keystoreDomain.ErrWriteFailed, err)
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", keystoreDomain.ErrWriteFailed, err)
	}

	encoded := make([]byte, base64.StdEncoding.EncodedLen(len(secret)))
	base64.StdEncoding.Encode(encoded, secret)

	// Backends may keep a reference to Data, so encoded is not wiped.

	err := k.ring.Set(keyring.Item{
		Key:                       alias,
		Data:                      encoded,
		Label:                     k.label(alias),
		Description:               "lifenovel device key",
		KeychainNotSynchronizable: k.policy.ThisDeviceOnly,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", keystoreDomain.ErrWriteFailed, err)
	}
	return nil
}

// Get reads alias. Missing entries, read errors and undecodable data are all
// reported as absent.
func (k *KeyringSecureStore) Get(ctx context.Context, alias string) ([]byte, bool) {
	if ctx.Err() != nil {
		return nil, false
	}

	item, err := k.ring.Get(alias)
	if err != nil {
		if !errors.Is(err, keyring.ErrKeyNotFound) {
			k.logger.Debug("keyring read failed",
				slog.String("alias", alias),
				slog.Any("error", err),
			)
		}
		return nil, false
	}

	secret := make([]byte, base64.StdEncoding.DecodedLen(len(item.Data)))
	n, err := base64.StdEncoding.Decode(secret, item.Data)
	if err != nil {
		cryptoDomain.Zero(secret)
		k.logger.Debug("keyring entry is not valid base64", slog.String("alias", alias))
		return nil, false
	}
	return secret[:n], true
}

// Delete removes alias. Missing entries are not an error.
func (k *KeyringSecureStore) Delete(ctx context.Context, alias string) error {
	err := k.ring.Remove(alias)
	if err == nil || errors.Is(err, keyring.ErrKeyNotFound) || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("%w: %w", keystoreDomain.ErrDeleteFailed, err)
}

func (k *KeyringSecureStore) label(alias string) string {
	return k.serviceName + "." + alias
}
