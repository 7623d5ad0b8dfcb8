package models

// Phase is the progress state of one lifecycle operation.
type Phase string

const (
	PhasePending Phase = "pending"
	PhaseSuccess Phase = "success"
	PhaseError   Phase = "error"
)

// OperationKind names the lifecycle operation a status belongs to.
type OperationKind string

const (
	OpCreateClaim      OperationKind = "create_claim"
	OpDecryptAndVerify OperationKind = "decrypt_and_verify"
	OpRefreshClaims    OperationKind = "refresh_claims"
)

// OperationStatus is the ephemeral progress/result signal for one lifecycle
// call, consumed by the presentation layer. Every operation emits exactly one
// terminal phase (success or error) after its pending phase.
type OperationStatus struct {
	OperationID string
	Kind        OperationKind
	Phase       Phase
	Message     string
}
