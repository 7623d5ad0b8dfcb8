// Package models defines the server-side persistence entities of the claim
// ledger.
package models

import "time"

// Claim is one ledger row. Rows are append-only: the single permitted
// mutation is the monotonic unverified-to-verified transition performed by
// the verification entry point.
type Claim struct {
	ID               string
	PolicyNumber     string
	Provider         string
	ClaimDate        string
	PublicAmountHint uint64
	Handle           []byte
	IsVerified       bool
	DecryptedValue   uint64
	Creator          string
	CreatedAt        time.Time
}
