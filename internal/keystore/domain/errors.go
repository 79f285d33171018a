package domain

import (
	"github.com/worachetdee/lifenovelRN/internal/errors"
)

var (
	// ErrWriteFailed indicates the secure store refused or failed to persist
	// a secret. Callers must not assume the previous value is still intact.
	ErrWriteFailed = errors.Wrap(errors.ErrUnavailable, "secure store write failed")

	// ErrDeleteFailed indicates a delete reached the backend and the backend
	// reported an error other than "not found".
	ErrDeleteFailed = errors.Wrap(errors.ErrUnavailable, "secure store delete failed")

	// ErrInvalidAlias indicates an alias that cannot be used as a storage key.
	ErrInvalidAlias = errors.Wrap(errors.ErrInvalidInput, "invalid alias")

	// ErrUnsupportedDriver indicates an unknown KEYSTORE_DRIVER value.
	ErrUnsupportedDriver = errors.Wrap(errors.ErrInvalidInput, "unsupported keystore driver")
)
