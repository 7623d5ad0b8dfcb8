// Package common defines shared constants and sentinel errors used across
// client and server layers of FraudDetect-Z. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Generic service-level errors.
	ErrInternal   = errors.New("internal error")
	ErrValidation = errors.New("validation error")

	// Lifecycle errors surfaced by the claim coordinator.
	ErrUnauthenticated        = errors.New("caller is not authenticated")
	ErrEncryptionFailed       = errors.New("encryption failed")
	ErrDecryptionFailed       = errors.New("decryption failed")
	ErrProofRejected          = errors.New("proof rejected by ledger")
	ErrTransactionRejected    = errors.New("transaction rejected by signer")
	ErrTransactionFailed      = errors.New("transaction failed on ledger")
	ErrLedgerUnreachable      = errors.New("ledger unreachable")
	ErrVerificationInProgress = errors.New("verification already in progress")

	// ErrAlreadyVerified is a protocol condition, not a failure: the ledger
	// reports it when a verification submission races an earlier one. The
	// coordinator absorbs it into the success path.
	ErrAlreadyVerified = errors.New("claim already verified")

	// Auth/token lifecycle errors.
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidToken        = errors.New("invalid token")
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)
