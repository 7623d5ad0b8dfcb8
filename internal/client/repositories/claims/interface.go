// Package claims holds the client-side projections of the ledger's claim
// set: an in-memory snapshot repository the coordinator refreshes wholesale,
// and a SQLite cache that keeps the last snapshot available offline.
package claims

import (
	"context"

	"github.com/camertanev/FraudDetect-Z/internal/client/models"
)

// Repository is the in-memory projection of all claims known to the client.
// It is replaced wholesale on refresh; individual claims are never mutated
// in place.
type Repository interface {
	// ReplaceAll atomically swaps the whole snapshot. Readers never observe
	// a partially replaced set.
	ReplaceAll(claims []models.Claim)

	// List returns an independent copy of the current snapshot.
	List() []models.Claim

	// Get returns the claim with the given id, or ErrNotFound.
	Get(id string) (*models.Claim, error)

	// Len reports the current snapshot size.
	Len() int
}

// Cache persists claim snapshots locally so the client keeps a readable
// (stale-but-available) view while the ledger is unreachable.
type Cache interface {
	// Save replaces the cached snapshot.
	Save(ctx context.Context, claims []models.Claim) error

	// Load returns the cached snapshot.
	Load(ctx context.Context) ([]models.Claim, error)
}
