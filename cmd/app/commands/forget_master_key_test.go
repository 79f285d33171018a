package commands

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	encryptionMocks "github.com/worachetdee/lifenovelRN/internal/encryption/usecase/mocks"
	keystoreDomain "github.com/worachetdee/lifenovelRN/internal/keystore/domain"
)

func TestRunForgetMasterKey(t *testing.T) {
	ctx := context.Background()

	t.Run("yes-flag-skips-prompt", func(t *testing.T) {
		mockUseCase := &encryptionMocks.MockEncryptionUseCase{}
		mockUseCase.On("ForgetMasterKey", ctx).Return(nil)

		var out bytes.Buffer
		err := RunForgetMasterKey(ctx, mockUseCase, discardLogger(), IOTuple{Reader: strings.NewReader(""), Writer: &out}, true, "text")

		require.NoError(t, err)
		require.Equal(t, "Master key deleted\n", out.String())
		mockUseCase.AssertExpectations(t)
	})

	t.Run("confirmed-interactively", func(t *testing.T) {
		mockUseCase := &encryptionMocks.MockEncryptionUseCase{}
		mockUseCase.On("ForgetMasterKey", ctx).Return(nil)

		var out bytes.Buffer
		err := RunForgetMasterKey(ctx, mockUseCase, discardLogger(), IOTuple{Reader: strings.NewReader("yes\n"), Writer: &out}, false, "json")

		require.NoError(t, err)
		require.Contains(t, out.String(), "[y/N]")
		require.Contains(t, out.String(), `"deleted": true`)
		mockUseCase.AssertExpectations(t)
	})

	t.Run("declined", func(t *testing.T) {
		mockUseCase := &encryptionMocks.MockEncryptionUseCase{}

		err := RunForgetMasterKey(ctx, mockUseCase, discardLogger(), IOTuple{Reader: strings.NewReader("n\n"), Writer: &bytes.Buffer{}}, false, "text")

		require.ErrorIs(t, err, ErrAborted)
		mockUseCase.AssertNotCalled(t, "ForgetMasterKey", ctx)
	})

	t.Run("empty-input-declines", func(t *testing.T) {
		mockUseCase := &encryptionMocks.MockEncryptionUseCase{}

		err := RunForgetMasterKey(ctx, mockUseCase, discardLogger(), IOTuple{Reader: strings.NewReader(""), Writer: &bytes.Buffer{}}, false, "text")

		require.ErrorIs(t, err, ErrAborted)
	})

	t.Run("delete-failed", func(t *testing.T) {
		mockUseCase := &encryptionMocks.MockEncryptionUseCase{}
		mockUseCase.On("ForgetMasterKey", ctx).Return(keystoreDomain.ErrDeleteFailed)

		err := RunForgetMasterKey(ctx, mockUseCase, discardLogger(), IOTuple{Reader: strings.NewReader(""), Writer: &bytes.Buffer{}}, true, "text")

		require.ErrorIs(t, err, keystoreDomain.ErrDeleteFailed)
	})
}
