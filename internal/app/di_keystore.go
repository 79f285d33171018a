package app

import (
	"fmt"
	"log/slog"

	encryptionUsecase "github.com/worachetdee/lifenovelRN/internal/encryption/usecase"
	keystoreDomain "github.com/worachetdee/lifenovelRN/internal/keystore/domain"
	keystoreRepository "github.com/worachetdee/lifenovelRN/internal/keystore/repository"
)

// SecureStore returns the secure store selected by KEYSTORE_DRIVER, wrapped
// with metrics when they are enabled.
func (c *Container) SecureStore() (encryptionUsecase.SecureStore, error) {
	var err error
	c.secureStoreInit.Do(func() {
		c.secureStore, err = c.initSecureStore()
		if err != nil {
			c.setInitError("secureStore", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("secureStore"); storedErr != nil {
		return nil, storedErr
	}
	return c.secureStore, nil
}

// accessPolicy is the default policy with user presence taken from config.
func (c *Container) accessPolicy() keystoreDomain.AccessPolicy {
	policy := keystoreDomain.DefaultAccessPolicy()
	policy.RequireUserPresence = c.config.KeystoreRequireUserPresence
	return policy
}

func (c *Container) initSecureStore() (encryptionUsecase.SecureStore, error) {
	logger := c.Logger()

	driver, err := keystoreDomain.ParseDriver(c.config.KeystoreDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to select secure store %q: %w", c.config.KeystoreDriver, err)
	}

	var store keystoreRepository.Store
	switch driver {
	case keystoreDomain.DriverMemory:
		memoryStore := keystoreRepository.NewMemorySecureStore()
		c.secureStoreCloser = memoryStore
		store = memoryStore
		logger.Warn("using in-memory secure store, the master key will not survive a restart")

	case keystoreDomain.DriverKeyring:
		ring, err := keystoreRepository.OpenKeyring(keystoreRepository.KeyringConfig{
			ServiceName:  c.config.KeystoreServiceName,
			Backends:     c.config.KeyringBackendList(),
			FileDir:      c.config.KeyringFileDir,
			FilePassword: c.config.KeyringFilePassword,
			Policy:       c.accessPolicy(),
		})
		if err != nil {
			return nil, err
		}
		store = keystoreRepository.NewKeyringSecureStore(ring, c.config.KeystoreServiceName, c.accessPolicy(), logger)

	case keystoreDomain.DriverSealed:
		keeper, err := c.KMSService().OpenKeeper(c.background, c.config.KMSKeyURI)
		if err != nil {
			return nil, fmt.Errorf("failed to open kms keeper: %w", err)
		}
		bucket, err := keystoreRepository.OpenBucket(c.background, c.config.SealedStoreBucketURL)
		if err != nil {
			_ = keeper.Close()
			return nil, err
		}
		sealedStore := keystoreRepository.NewSealedSecureStore(
			keeper,
			bucket,
			c.config.KeystoreServiceName,
			c.accessPolicy(),
			logger,
		)
		c.secureStoreCloser = sealedStore
		store = sealedStore
	}

	logger.Info("secure store ready",
		slog.String("driver", string(driver)),
		slog.String("service", c.config.KeystoreServiceName),
	)

	if !c.config.MetricsEnabled {
		return store, nil
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for secure store: %w", err)
	}
	return keystoreRepository.NewStoreWithMetrics(store, businessMetrics), nil
}
