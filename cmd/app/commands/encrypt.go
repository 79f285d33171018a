package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	encryptionUsecase "github.com/worachetdee/lifenovelRN/internal/encryption/usecase"
)

// RunEncrypt seals plaintext under the device master key, creating the key
// on first use, and prints the envelope.
func RunEncrypt(
	ctx context.Context,
	useCase encryptionUsecase.EncryptionUseCase,
	logger *slog.Logger,
	writer io.Writer,
	plaintext string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	envelope, err := useCase.Encrypt(ctx, plaintext)
	if err != nil {
		return fmt.Errorf("failed to encrypt: %w", err)
	}

	logger.Debug("plaintext encrypted with master key", slog.Int("size", len(plaintext)))

	if format == "json" {
		return writeJSON(writer, envelope)
	}
	_, err = fmt.Fprintf(writer, "ciphertext: %s\nnonce: %s\n", envelope.Ciphertext, envelope.Nonce)
	return err
}

// RunDecrypt opens an envelope sealed under the device master key and
// prints the plaintext.
func RunDecrypt(
	ctx context.Context,
	useCase encryptionUsecase.EncryptionUseCase,
	logger *slog.Logger,
	writer io.Writer,
	ciphertext, nonce string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	plaintext, err := useCase.Decrypt(ctx, ciphertext, nonce)
	if err != nil {
		return fmt.Errorf("failed to decrypt: %w", err)
	}

	logger.Debug("envelope decrypted with master key")

	return writePlaintext(writer, plaintext, format)
}

func writePlaintext(writer io.Writer, plaintext, format string) error {
	if format == "json" {
		return writeJSON(writer, map[string]string{"plaintext": plaintext})
	}
	_, err := fmt.Fprintln(writer, plaintext)
	return err
}
