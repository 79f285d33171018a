package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	encryptionUsecase "github.com/worachetdee/lifenovelRN/internal/encryption/usecase"
)

// ErrAborted is returned when the operator declines a destructive action.
var ErrAborted = errors.New("aborted by operator")

// RunForgetMasterKey deletes the device master key from the secure store.
// Every envelope sealed under it becomes permanently unreadable. Without
// yes, the operator is asked to confirm on streams.
func RunForgetMasterKey(
	ctx context.Context,
	useCase encryptionUsecase.EncryptionUseCase,
	logger *slog.Logger,
	streams IOTuple,
	yes bool,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	if !yes {
		ok, err := confirm(streams, "Delete the master key? Data encrypted with it cannot be recovered")
		if err != nil {
			return err
		}
		if !ok {
			return ErrAborted
		}
	}

	if err := useCase.ForgetMasterKey(ctx); err != nil {
		return fmt.Errorf("failed to forget master key: %w", err)
	}

	logger.Warn("master key deleted from secure store")

	if format == "json" {
		return writeJSON(streams.Writer, map[string]bool{"deleted": true})
	}
	_, err := fmt.Fprintln(streams.Writer, "Master key deleted")
	return err
}
