package http

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/worachetdee/lifenovelRN/internal/crypto/domain"
	encryptionDomain "github.com/worachetdee/lifenovelRN/internal/encryption/domain"
	"github.com/worachetdee/lifenovelRN/internal/encryption/http/dto"
	"github.com/worachetdee/lifenovelRN/internal/encryption/usecase/mocks"
	"github.com/worachetdee/lifenovelRN/internal/httputil"
	keystoreDomain "github.com/worachetdee/lifenovelRN/internal/keystore/domain"
)

func setupTestEncryptionHandler(t *testing.T) (*EncryptionHandler, *mocks.MockEncryptionUseCase) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	mockUseCase := &mocks.MockEncryptionUseCase{}
	t.Cleanup(func() { mockUseCase.AssertExpectations(t) })
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewEncryptionHandler(mockUseCase, logger), mockUseCase
}

func decodeError(t *testing.T, body *bytes.Buffer) httputil.ErrorResponse {
	t.Helper()
	var response httputil.ErrorResponse
	require.NoError(t, json.Unmarshal(body.Bytes(), &response))
	return response
}

func testGroupKey() (raw []byte, encoded string) {
	raw = bytes.Repeat([]byte{0x42}, cryptoDomain.KeySize)
	return raw, base64.StdEncoding.EncodeToString(raw)
}

func TestEncryptionHandler_EncryptHandler(t *testing.T) {
	t.Run("Success_ValidRequest", func(t *testing.T) {
		handler, mockUseCase := setupTestEncryptionHandler(t)

		envelope := &encryptionDomain.Envelope{Ciphertext: "Y2lwaGVy", Nonce: "bm9uY2U="}
		mockUseCase.On("Encrypt", mock.Anything, "hello circle").Return(envelope, nil).Once()

		c, w := createTestContext(http.MethodPost, "/v1/encrypt", dto.EncryptRequest{Plaintext: "hello circle"})
		handler.EncryptHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var response dto.EnvelopeResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "Y2lwaGVy", response.Ciphertext)
		assert.Equal(t, "bm9uY2U=", response.Nonce)
	})

	t.Run("Success_EmptyPlaintext", func(t *testing.T) {
		handler, mockUseCase := setupTestEncryptionHandler(t)

		envelope := &encryptionDomain.Envelope{Ciphertext: "AAAA", Nonce: "BBBB"}
		mockUseCase.On("Encrypt", mock.Anything, "").Return(envelope, nil).Once()

		c, w := createTestContext(http.MethodPost, "/v1/encrypt", dto.EncryptRequest{})
		handler.EncryptHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Error_InvalidJSON", func(t *testing.T) {
		handler, _ := setupTestEncryptionHandler(t)

		c, w := createTestContext(http.MethodPost, "/v1/encrypt", "{not json")
		handler.EncryptHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "bad_request", decodeError(t, w.Body).Error)
	})

	t.Run("Error_PlaintextTooLarge", func(t *testing.T) {
		handler, _ := setupTestEncryptionHandler(t)

		request := dto.EncryptRequest{Plaintext: strings.Repeat("a", dto.MaxPlaintextBytes+1)}
		c, w := createTestContext(http.MethodPost, "/v1/encrypt", request)
		handler.EncryptHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, "validation_error", decodeError(t, w.Body).Error)
	})

	t.Run("Error_KeystoreWriteFailed", func(t *testing.T) {
		handler, mockUseCase := setupTestEncryptionHandler(t)

		mockUseCase.On("Encrypt", mock.Anything, "note").Return(nil, keystoreDomain.ErrWriteFailed).Once()

		c, w := createTestContext(http.MethodPost, "/v1/encrypt", dto.EncryptRequest{Plaintext: "note"})
		handler.EncryptHandler(c)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Equal(t, "keystore_unavailable", decodeError(t, w.Body).Error)
	})
}

func TestEncryptionHandler_DecryptHandler(t *testing.T) {
	t.Run("Success_ValidRequest", func(t *testing.T) {
		handler, mockUseCase := setupTestEncryptionHandler(t)

		mockUseCase.On("Decrypt", mock.Anything, "Y2lwaGVy", "bm9uY2U=").Return("hello circle", nil).Once()

		request := dto.DecryptRequest{Ciphertext: "Y2lwaGVy", Nonce: "bm9uY2U="}
		c, w := createTestContext(http.MethodPost, "/v1/decrypt", request)
		handler.DecryptHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var response dto.PlaintextResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "hello circle", response.Plaintext)
	})

	t.Run("Error_MissingNonce", func(t *testing.T) {
		handler, _ := setupTestEncryptionHandler(t)

		c, w := createTestContext(http.MethodPost, "/v1/decrypt", dto.DecryptRequest{Ciphertext: "Y2lwaGVy"})
		handler.DecryptHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, "validation_error", decodeError(t, w.Body).Error)
	})

	t.Run("Error_InvalidBase64", func(t *testing.T) {
		handler, _ := setupTestEncryptionHandler(t)

		request := dto.DecryptRequest{Ciphertext: "not base64!", Nonce: "bm9uY2U="}
		c, w := createTestContext(http.MethodPost, "/v1/decrypt", request)
		handler.DecryptHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Error_AuthenticationFailed", func(t *testing.T) {
		handler, mockUseCase := setupTestEncryptionHandler(t)

		mockUseCase.On("Decrypt", mock.Anything, "Y2lwaGVy", "bm9uY2U=").
			Return("", cryptoDomain.ErrAuthenticationFailed).
			Once()

		request := dto.DecryptRequest{Ciphertext: "Y2lwaGVy", Nonce: "bm9uY2U="}
		c, w := createTestContext(http.MethodPost, "/v1/decrypt", request)
		handler.DecryptHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		response := decodeError(t, w.Body)
		assert.Equal(t, "decryption_failed", response.Error)
		assert.NotContains(t, w.Body.String(), "hello")
	})
}

func TestEncryptionHandler_GroupEncryptHandler(t *testing.T) {
	t.Run("Success_ValidRequest", func(t *testing.T) {
		handler, mockUseCase := setupTestEncryptionHandler(t)

		rawKey, encodedKey := testGroupKey()
		envelope := &encryptionDomain.Envelope{Ciphertext: "Z3JvdXA=", Nonce: "bm9uY2U="}
		mockUseCase.On("EncryptWithGroupKey", mock.Anything, "for the circle", rawKey).
			Return(envelope, nil).
			Once()

		request := dto.GroupEncryptRequest{Plaintext: "for the circle", GroupKey: encodedKey}
		c, w := createTestContext(http.MethodPost, "/v1/groups/encrypt", request)
		handler.GroupEncryptHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var response dto.EnvelopeResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "Z3JvdXA=", response.Ciphertext)
	})

	t.Run("Error_ShortGroupKey", func(t *testing.T) {
		handler, _ := setupTestEncryptionHandler(t)

		request := dto.GroupEncryptRequest{
			Plaintext: "for the circle",
			GroupKey:  base64.StdEncoding.EncodeToString(make([]byte, 16)),
		}
		c, w := createTestContext(http.MethodPost, "/v1/groups/encrypt", request)
		handler.GroupEncryptHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, decodeError(t, w.Body).Message, "32-byte")
	})

	t.Run("Error_MissingGroupKey", func(t *testing.T) {
		handler, _ := setupTestEncryptionHandler(t)

		c, w := createTestContext(http.MethodPost, "/v1/groups/encrypt", dto.GroupEncryptRequest{Plaintext: "x"})
		handler.GroupEncryptHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestEncryptionHandler_GroupDecryptHandler(t *testing.T) {
	t.Run("Success_ValidRequest", func(t *testing.T) {
		handler, mockUseCase := setupTestEncryptionHandler(t)

		rawKey, encodedKey := testGroupKey()
		mockUseCase.On("DecryptWithGroupKey", mock.Anything, "Z3JvdXA=", "bm9uY2U=", rawKey).
			Return("for the circle", nil).
			Once()

		request := dto.GroupDecryptRequest{Ciphertext: "Z3JvdXA=", Nonce: "bm9uY2U=", GroupKey: encodedKey}
		c, w := createTestContext(http.MethodPost, "/v1/groups/decrypt", request)
		handler.GroupDecryptHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var response dto.PlaintextResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "for the circle", response.Plaintext)
	})

	t.Run("Error_WrongGroupKey", func(t *testing.T) {
		handler, mockUseCase := setupTestEncryptionHandler(t)

		_, encodedKey := testGroupKey()
		mockUseCase.On("DecryptWithGroupKey", mock.Anything, "Z3JvdXA=", "bm9uY2U=", mock.Anything).
			Return("", cryptoDomain.ErrAuthenticationFailed).
			Once()

		request := dto.GroupDecryptRequest{Ciphertext: "Z3JvdXA=", Nonce: "bm9uY2U=", GroupKey: encodedKey}
		c, w := createTestContext(http.MethodPost, "/v1/groups/decrypt", request)
		handler.GroupDecryptHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, "decryption_failed", decodeError(t, w.Body).Error)
	})
}

func TestEncryptionHandler_LogoutHandler(t *testing.T) {
	handler, mockUseCase := setupTestEncryptionHandler(t)

	mockUseCase.On("ClearCache").Return().Once()

	c, w := createTestContext(http.MethodPost, "/v1/session/logout", nil)
	handler.LogoutHandler(c)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestEncryptionHandler_LogoutHandler_LeavesLoggingToUseCase(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var logs bytes.Buffer
	mockUseCase := &mocks.MockEncryptionUseCase{}
	t.Cleanup(func() { mockUseCase.AssertExpectations(t) })
	handler := NewEncryptionHandler(mockUseCase, slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug})))

	mockUseCase.On("ClearCache").Return().Once()

	c, w := createTestContext(http.MethodPost, "/v1/session/logout", nil)
	handler.LogoutHandler(c)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, logs.String())
}
