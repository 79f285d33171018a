package app

import (
	"fmt"

	cryptoDomain "github.com/worachetdee/lifenovelRN/internal/crypto/domain"
	encryptionHTTP "github.com/worachetdee/lifenovelRN/internal/encryption/http"
	encryptionUsecase "github.com/worachetdee/lifenovelRN/internal/encryption/usecase"
)

// EncryptionUseCase returns the master key and group key encryption use case.
func (c *Container) EncryptionUseCase() (encryptionUsecase.EncryptionUseCase, error) {
	var err error
	c.encryptionUseCaseInit.Do(func() {
		c.encryptionUseCase, err = c.initEncryptionUseCase()
		if err != nil {
			c.setInitError("encryptionUseCase", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("encryptionUseCase"); storedErr != nil {
		return nil, storedErr
	}
	return c.encryptionUseCase, nil
}

// EncryptionHandler returns the HTTP handler for the encryption endpoints.
func (c *Container) EncryptionHandler() (*encryptionHTTP.EncryptionHandler, error) {
	var err error
	c.encryptionHandlerInit.Do(func() {
		c.encryptionHandler, err = c.initEncryptionHandler()
		if err != nil {
			c.setInitError("encryptionHandler", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("encryptionHandler"); storedErr != nil {
		return nil, storedErr
	}
	return c.encryptionHandler, nil
}

func (c *Container) initEncryptionUseCase() (encryptionUsecase.EncryptionUseCase, error) {
	alg, err := cryptoDomain.ParseAlgorithm(c.config.EncryptionAlgorithm)
	if err != nil {
		return nil, fmt.Errorf("failed to select encryption algorithm: %w", err)
	}

	store, err := c.SecureStore()
	if err != nil {
		return nil, fmt.Errorf("failed to get secure store for encryption use case: %w", err)
	}

	useCase := encryptionUsecase.NewEncryptionUseCase(store, c.AEADManager(), alg, c.Logger())

	if !c.config.MetricsEnabled {
		return useCase, nil
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for encryption use case: %w", err)
	}
	return encryptionUsecase.NewEncryptionUseCaseWithMetrics(useCase, businessMetrics), nil
}

func (c *Container) initEncryptionHandler() (*encryptionHTTP.EncryptionHandler, error) {
	useCase, err := c.EncryptionUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get encryption use case for handler: %w", err)
	}
	return encryptionHTTP.NewEncryptionHandler(useCase, c.Logger()), nil
}
