package domain

import (
	"github.com/worachetdee/lifenovelRN/internal/errors"
)

var (
	// ErrInvalidPlaintext indicates plaintext that is not valid UTF-8 text.
	ErrInvalidPlaintext = errors.Wrap(errors.ErrInvalidInput, "plaintext is not valid UTF-8")

	// ErrCorruptMasterKey indicates the secure store returned a master key of
	// the wrong length. The entry is left untouched for inspection.
	ErrCorruptMasterKey = errors.Wrap(errors.ErrUnavailable, "stored master key is corrupt")
)
