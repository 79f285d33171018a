package commands

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"

	cryptoDomain "github.com/worachetdee/lifenovelRN/internal/crypto/domain"
	encryptionUsecase "github.com/worachetdee/lifenovelRN/internal/encryption/usecase"
)

// RunEncryptGroup seals plaintext under a shared group key. The secure
// store is never touched.
func RunEncryptGroup(
	ctx context.Context,
	useCase encryptionUsecase.EncryptionUseCase,
	logger *slog.Logger,
	writer io.Writer,
	plaintext, encodedGroupKey string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	groupKey, err := cryptoDomain.DecodeKey(encodedGroupKey)
	if err != nil {
		return err
	}
	defer cryptoDomain.Zero(groupKey)

	envelope, err := useCase.EncryptWithGroupKey(ctx, plaintext, groupKey)
	if err != nil {
		return fmt.Errorf("failed to encrypt with group key: %w", err)
	}

	logger.Debug("plaintext encrypted with group key", slog.Int("size", len(plaintext)))

	if format == "json" {
		return writeJSON(writer, envelope)
	}
	_, err = fmt.Fprintf(writer, "ciphertext: %s\nnonce: %s\n", envelope.Ciphertext, envelope.Nonce)
	return err
}

// RunDecryptGroup opens an envelope sealed under a shared group key.
func RunDecryptGroup(
	ctx context.Context,
	useCase encryptionUsecase.EncryptionUseCase,
	logger *slog.Logger,
	writer io.Writer,
	ciphertext, nonce, encodedGroupKey string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	groupKey, err := cryptoDomain.DecodeKey(encodedGroupKey)
	if err != nil {
		return err
	}
	defer cryptoDomain.Zero(groupKey)

	plaintext, err := useCase.DecryptWithGroupKey(ctx, ciphertext, nonce, groupKey)
	if err != nil {
		return fmt.Errorf("failed to decrypt with group key: %w", err)
	}

	logger.Debug("envelope decrypted with group key")

	return writePlaintext(writer, plaintext, format)
}

// RunCreateGroupKey prints a fresh random 32-byte group key in base64.
// Distributing it to group members is left to the caller.
func RunCreateGroupKey(writer io.Writer, format string) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	key, err := cryptoDomain.GenerateKey()
	if err != nil {
		return fmt.Errorf("failed to generate group key: %w", err)
	}
	defer cryptoDomain.Zero(key)

	encoded := base64.StdEncoding.EncodeToString(key)

	if format == "json" {
		return writeJSON(writer, map[string]string{"group_key": encoded})
	}
	_, err = fmt.Fprintln(writer, encoded)
	return err
}
