// Package domain defines the secure store vocabulary: drivers, access
// policy, aliases and failures.
package domain

import (
	"strings"
)

// Driver selects the SecureStore implementation.
type Driver string

const (
	// DriverKeyring stores secrets in the platform keychain (macOS Keychain,
	// Windows Credential Manager, Secret Service, KWallet, keyctl, pass or an
	// encrypted file).
	DriverKeyring Driver = "keyring"

	// DriverSealed wraps secrets with a KMS key and writes them to a bucket.
	DriverSealed Driver = "sealed"

	// DriverMemory keeps secrets in process memory only.
	DriverMemory Driver = "memory"
)

// ParseDriver maps a configured name to a Driver.
func ParseDriver(name string) (Driver, error) {
	switch d := Driver(strings.ToLower(strings.TrimSpace(name))); d {
	case DriverKeyring, DriverSealed, DriverMemory:
		return d, nil
	default:
		return "", ErrUnsupportedDriver
	}
}

// DefaultServiceName namespaces every entry this application writes.
const DefaultServiceName = "com.lifenovel.keys"

// ValidateAlias rejects aliases that cannot round-trip through every
// backend: empty names, path separators and surrounding whitespace.
func ValidateAlias(alias string) error {
	if alias == "" || strings.TrimSpace(alias) != alias {
		return ErrInvalidAlias
	}
	if strings.ContainsAny(alias, `/\`) || alias == "." || alias == ".." {
		return ErrInvalidAlias
	}
	return nil
}
