// Package gateway wraps the opaque encryption capability consumed by the
// claim coordinator. Implementations are stateless per call.
package gateway

import "context"

// Encrypted is the sealed form of an amount plus its validity proof, ready
// for submission to the ledger.
type Encrypted struct {
	Ciphertext []byte
	Proof      []byte
}

// Reveal is the outcome of the decryption-proof step: cleartext values and
// their on-ledger-checkable proofs, keyed by the hex encoding of each handle.
//
// The protocol is deliberately two-phase: the gateway only produces the
// reveal, and the coordinator owns the follow-up verification submission.
type Reveal struct {
	Values map[string]uint64
	Proofs map[string][]byte
}

type Gateway interface {
	// Encrypt seals a plaintext amount bound to the destination context and
	// the caller identity.
	Encrypt(ctx context.Context, destination, caller string, amount uint64) (*Encrypted, error)

	// ProveDecryption produces cleartext values and proofs for the given
	// ciphertext handles, scoped to the destination context.
	ProveDecryption(ctx context.Context, handles [][]byte, destination string) (*Reveal, error)
}
