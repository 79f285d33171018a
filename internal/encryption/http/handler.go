// Package http provides HTTP handlers for master key and group key text encryption.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	cryptoDomain "github.com/worachetdee/lifenovelRN/internal/crypto/domain"
	"github.com/worachetdee/lifenovelRN/internal/encryption/http/dto"
	"github.com/worachetdee/lifenovelRN/internal/encryption/usecase"
	"github.com/worachetdee/lifenovelRN/internal/httputil"
	customValidation "github.com/worachetdee/lifenovelRN/internal/validation"
)

// EncryptionHandler handles encryption HTTP requests.
type EncryptionHandler struct {
	encryptionUseCase usecase.EncryptionUseCase
	logger            *slog.Logger
}

// NewEncryptionHandler creates a new encryption handler.
func NewEncryptionHandler(
	encryptionUseCase usecase.EncryptionUseCase,
	logger *slog.Logger,
) *EncryptionHandler {
	return &EncryptionHandler{
		encryptionUseCase: encryptionUseCase,
		logger:            logger,
	}
}

// EncryptHandler seals plaintext under the device master key.
// POST /v1/encrypt
func (h *EncryptionHandler) EncryptHandler(c *gin.Context) {
	var req dto.EncryptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	envelope, err := h.encryptionUseCase.Encrypt(c.Request.Context(), req.Plaintext)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapEnvelopeToResponse(envelope))
}

// DecryptHandler opens an envelope sealed under the device master key.
// POST /v1/decrypt
func (h *EncryptionHandler) DecryptHandler(c *gin.Context) {
	var req dto.DecryptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	plaintext, err := h.encryptionUseCase.Decrypt(c.Request.Context(), req.Ciphertext, req.Nonce)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.PlaintextResponse{Plaintext: plaintext})
}

// GroupEncryptHandler seals plaintext under a caller supplied group key.
// POST /v1/groups/encrypt
func (h *EncryptionHandler) GroupEncryptHandler(c *gin.Context) {
	var req dto.GroupEncryptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	groupKey, err := req.DecodeGroupKey()
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	defer cryptoDomain.Zero(groupKey)

	envelope, err := h.encryptionUseCase.EncryptWithGroupKey(c.Request.Context(), req.Plaintext, groupKey)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapEnvelopeToResponse(envelope))
}

// GroupDecryptHandler opens an envelope sealed under a caller supplied group key.
// POST /v1/groups/decrypt
func (h *EncryptionHandler) GroupDecryptHandler(c *gin.Context) {
	var req dto.GroupDecryptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	groupKey, err := req.DecodeGroupKey()
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	defer cryptoDomain.Zero(groupKey)

	plaintext, err := h.encryptionUseCase.DecryptWithGroupKey(
		c.Request.Context(),
		req.Ciphertext,
		req.Nonce,
		groupKey,
	)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.PlaintextResponse{Plaintext: plaintext})
}

// LogoutHandler wipes the cached master key. The stored key is kept.
// POST /v1/session/logout
func (h *EncryptionHandler) LogoutHandler(c *gin.Context) {
	h.encryptionUseCase.ClearCache()
	c.Data(http.StatusNoContent, "application/json", nil)
}
