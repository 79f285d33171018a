package httputil

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	cryptoDomain "github.com/worachetdee/lifenovelRN/internal/crypto/domain"
	apperrors "github.com/worachetdee/lifenovelRN/internal/errors"
	keystoreDomain "github.com/worachetdee/lifenovelRN/internal/keystore/domain"
)

func newTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return c, w
}

func TestHandleErrorGin(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "authentication failure",
			err:            fmt.Errorf("decrypt: %w", cryptoDomain.ErrAuthenticationFailed),
			expectedStatus: http.StatusUnprocessableEntity,
			expectedCode:   "decryption_failed",
		},
		{
			name:           "malformed envelope",
			err:            cryptoDomain.ErrMalformed,
			expectedStatus: http.StatusUnprocessableEntity,
			expectedCode:   "malformed_envelope",
		},
		{
			name:           "invalid key length",
			err:            cryptoDomain.ErrInvalidKeyLength,
			expectedStatus: http.StatusUnprocessableEntity,
			expectedCode:   "invalid_key_length",
		},
		{
			name:           "generic invalid input",
			err:            apperrors.Wrap(apperrors.ErrInvalidInput, "plaintext: cannot be blank"),
			expectedStatus: http.StatusUnprocessableEntity,
			expectedCode:   "invalid_input",
		},
		{
			name:           "keystore write failed",
			err:            fmt.Errorf("failed to persist master key: %w", keystoreDomain.ErrWriteFailed),
			expectedStatus: http.StatusServiceUnavailable,
			expectedCode:   "keystore_unavailable",
		},
		{
			name:           "not found",
			err:            apperrors.ErrNotFound,
			expectedStatus: http.StatusNotFound,
			expectedCode:   "not_found",
		},
		{
			name:           "unknown error",
			err:            errors.New("boom"),
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   "internal_error",
		},
		{
			name:           "canceled",
			err:            context.Canceled,
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   "internal_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestContext()

			HandleErrorGin(c, tt.err, nil)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), `"error":"`+tt.expectedCode+`"`)
		})
	}

	t.Run("nil error writes nothing", func(t *testing.T) {
		c, w := newTestContext()
		HandleErrorGin(c, nil, nil)
		assert.Equal(t, 0, w.Body.Len())
	})

	t.Run("internal details are hidden", func(t *testing.T) {
		c, w := newTestContext()
		HandleErrorGin(c, errors.New("keyring: dbus connection refused"), nil)
		assert.NotContains(t, w.Body.String(), "dbus")
	})
}

func TestHandleBadRequestGin(t *testing.T) {
	c, w := newTestContext()

	HandleBadRequestGin(c, errors.New("unexpected EOF"), nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"bad_request","message":"unexpected EOF"}`, w.Body.String())
}

func TestHandleValidationErrorGin(t *testing.T) {
	c, w := newTestContext()

	HandleValidationErrorGin(c, errors.New("group_key: must decode to a 32-byte key."), nil)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.JSONEq(t,
		`{"error":"validation_error","message":"group_key: must decode to a 32-byte key."}`,
		w.Body.String(),
	)
}
