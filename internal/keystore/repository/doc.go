// Package repository implements the secure store capability used to hold
// the device master key.
//
// Three backends are provided:
//   - KeyringSecureStore: the platform keychain via github.com/99designs/keyring
//   - SealedSecureStore: KMS-wrapped blobs via gocloud.dev/secrets and gocloud.dev/blob
//   - MemorySecureStore: process memory, for tests and ephemeral sessions
//
// Every backend shares the same contract:
//
//	Put(ctx, alias, secret) error      // overwrite, keystoreDomain.ErrWriteFailed on failure
//	Get(ctx, alias) ([]byte, bool)     // missing or unreadable entries are absent
//	Delete(ctx, alias) error           // deleting a missing alias succeeds
//
// Get never distinguishes "not found" from "access denied". Callers that
// find a key absent will create a new one; the read failure is logged at
// debug level so it can still be diagnosed.
package repository
