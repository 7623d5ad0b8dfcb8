// Package models defines the client-side domain entities: claims tracked
// through their encrypted-to-verified lifecycle, operation statuses and
// aggregate fraud statistics.
package models

// Claim is one insurance-claim record as projected from the ledger.
//
// Invariants maintained by the coordinator and the ledger:
//   - ID is assigned once at creation and never changes.
//   - EncryptedAmountHandle is assigned once, at creation.
//   - IsVerified transitions monotonically false -> true, never back.
//   - DecryptedValue is meaningful if and only if IsVerified is true.
type Claim struct {
	ID           string
	PolicyNumber string
	Provider     string
	// ClaimDate is display-only and not cryptographically protected.
	ClaimDate string
	// PublicAmountHint is the plaintext amount submitted alongside the
	// ciphertext. It leaks the amount before verification; kept for
	// compatibility with the deployed ledger contract.
	PublicAmountHint      uint64
	EncryptedAmountHandle []byte
	IsVerified            bool
	DecryptedValue        uint64
	Creator               string
	// Timestamp is the ledger-assigned creation time, seconds since epoch.
	Timestamp int64
}

// ClaimInput is the caller-supplied payload for a new claim.
type ClaimInput struct {
	PolicyNumber string
	Provider     string
	ClaimDate    string
	Amount       uint64
}

// Submission is the fully prepared write payload for the ledger: the claim
// fields plus the sealed amount and its validity proof.
type Submission struct {
	ID               string
	PolicyNumber     string
	Provider         string
	ClaimDate        string
	PublicAmountHint uint64
	Ciphertext       []byte
	InputProof       []byte
}
