// Package claims declares the ledger's persistence contract for claim rows.
// The ledger is append-only: rows are inserted once and the only permitted
// mutation is the unverified-to-verified transition.
package claims

import (
	"context"

	"github.com/camertanev/FraudDetect-Z/internal/server/models"
)

type Repository interface {
	// Create appends a new unverified claim row.
	Create(ctx context.Context, claim *models.Claim) error

	// ListIDs returns all claim ids in creation order.
	ListIDs(ctx context.Context) ([]string, error)

	// GetByID returns one claim, or common.ErrNotFound.
	GetByID(ctx context.Context, id string) (*models.Claim, error)

	// GetByIDForUpdate returns one claim with a row lock held for the
	// duration of the enclosing transaction.
	GetByIDForUpdate(ctx context.Context, id string) (*models.Claim, error)

	// MarkVerified flips is_verified and records the decrypted value.
	MarkVerified(ctx context.Context, id string, decryptedValue uint64) error
}
