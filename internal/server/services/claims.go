package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/camertanev/FraudDetect-Z/internal/common"
	"github.com/camertanev/FraudDetect-Z/internal/dbx"
	"github.com/camertanev/FraudDetect-Z/internal/sealing"
	"github.com/camertanev/FraudDetect-Z/internal/server/config"
	"github.com/camertanev/FraudDetect-Z/internal/server/models"
	"github.com/camertanev/FraudDetect-Z/internal/server/repositories/repomanager"
)

// ClaimService is the dev ledger: an append-only claim store that rechecks
// sealing proofs before accepting submissions and verifications. It derives
// the same sealing key as the dev gateway, so proofs produced client-side
// validate here without the amounts ever traveling in the clear.
type ClaimService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	sealingKey  []byte
	destination string
	now         func() time.Time
}

func NewClaimService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *ClaimService {
	return &ClaimService{
		db:          db,
		repomanager: m,
		sealingKey:  sealing.DeriveKey([]byte(cfg.SealingSecret), sealing.DevSalt),
		destination: cfg.Destination,
		now:         time.Now,
	}
}

func (s *ClaimService) validateSubmission(claim *models.Claim) error {
	if strings.TrimSpace(claim.ID) == "" ||
		strings.TrimSpace(claim.PolicyNumber) == "" ||
		strings.TrimSpace(claim.Provider) == "" ||
		strings.TrimSpace(claim.ClaimDate) == "" ||
		len(claim.Handle) == 0 {
		return common.ErrValidation
	}
	return nil
}

// Submit appends one claim row. The input proof must bind the handle to the
// creator and the configured destination; a mismatch rejects the write
// before anything is stored.
func (s *ClaimService) Submit(ctx context.Context, creator string, claim *models.Claim, inputProof []byte) (string, int64, error) {

	if err := s.validateSubmission(claim); err != nil {
		return "", 0, err
	}

	if !sealing.VerifySubmission(s.sealingKey, s.destination, creator, claim.Handle, inputProof) {
		return "", 0, common.ErrProofRejected
	}

	claim.Creator = creator
	claim.IsVerified = false
	claim.DecryptedValue = 0
	claim.CreatedAt = s.now()

	repo := s.repomanager.Claims(s.db)
	if err := repo.Create(ctx, claim); err != nil {
		return "", 0, fmt.Errorf("error creating claim: %v", err)
	}

	return claim.ID, claim.CreatedAt.Unix(), nil
}

func (s *ClaimService) ListIDs(ctx context.Context) ([]string, error) {
	return s.repomanager.Claims(s.db).ListIDs(ctx)
}

func (s *ClaimService) Get(ctx context.Context, id string) (*models.Claim, error) {
	return s.repomanager.Claims(s.db).GetByID(ctx, id)
}

func (s *ClaimService) GetHandle(ctx context.Context, id string) ([]byte, error) {
	claim, err := s.repomanager.Claims(s.db).GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return claim.Handle, nil
}

// SubmitVerification performs the single permitted mutation: it locks the
// row, rejects repeat verifications with ErrAlreadyVerified, rechecks the
// reveal proof against the stored handle and flips the row to verified.
func (s *ClaimService) SubmitVerification(ctx context.Context, id string, decryptedValue uint64, proof []byte) (uint64, error) {

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Claims(tx)

		claim, err := repo.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}

		if claim.IsVerified {
			return common.ErrAlreadyVerified
		}

		if !sealing.VerifyReveal(s.sealingKey, proof, s.destination, claim.Handle, decryptedValue) {
			return common.ErrProofRejected
		}

		if err := repo.MarkVerified(ctx, id, decryptedValue); err != nil {
			return err
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, common.ErrAlreadyVerified) ||
			errors.Is(err, common.ErrProofRejected) ||
			errors.Is(err, common.ErrNotFound) {
			return 0, err
		}
		return 0, fmt.Errorf("error verifying claim: %v", err)
	}

	return decryptedValue, nil
}
