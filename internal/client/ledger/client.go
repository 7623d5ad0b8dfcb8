// Package ledger provides read and write access to the shared claim store.
// The Client interface is the coordinator's only view of the ledger; the
// gRPC implementation maps transport failures onto the shared sentinel
// errors so callers can match them with errors.Is.
package ledger

import (
	"context"

	"github.com/camertanev/FraudDetect-Z/internal/client/models"
)

type Client interface {
	Close() error

	// Auth.
	Register(ctx context.Context, username string, salt []byte, verifier []byte) error
	GetSalt(ctx context.Context, username string) ([]byte, error)
	Login(ctx context.Context, username string, verifier []byte) (address string, err error)

	// Availability probe.
	Ping(ctx context.Context) error

	// Claim store.
	ListClaimIDs(ctx context.Context) ([]string, error)
	GetClaim(ctx context.Context, id string) (*models.Claim, error)
	SubmitClaim(ctx context.Context, sub *models.Submission) (id string, timestamp int64, err error)
	GetEncryptedHandle(ctx context.Context, id string) ([]byte, error)
	SubmitVerification(ctx context.Context, id string, decryptedValue uint64, proof []byte) (uint64, error)

	// Attachments.
	GetAttachmentUploadURL(ctx context.Context, claimID, fileName string) (key string, url string, err error)
}
