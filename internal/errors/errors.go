// Package errors provides the base error kinds shared by every module.
// Domain packages wrap these sentinels so callers and the HTTP layer can
// classify a failure with Is without knowing which module produced it.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the requested item does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates the caller supplied data that cannot be processed
	// (bad encoding, wrong key length, failed authentication).
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnavailable indicates a backing capability (keychain, KMS, bucket)
	// rejected or could not complete the request.
	ErrUnavailable = errors.New("unavailable")
)

// New creates a new error with the given message.
func New(message string) error {
	return errors.New(message)
}

// Wrap adds context to err while preserving the chain. A nil err stays nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf is Wrap with a format string.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Join returns an error that wraps the given errors, discarding nils.
func Join(errs ...error) error {
	return errors.Join(errs...)
}
