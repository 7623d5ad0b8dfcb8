// Package services contains application services for the FraudDetect-Z
// client. This file defines the claim lifecycle coordinator: the state
// machine that turns plaintext claims into encrypted ledger submissions,
// drives the decrypt-and-verify protocol and keeps the local claim
// projection current.
package services

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/camertanev/FraudDetect-Z/internal/client/gateway"
	"github.com/camertanev/FraudDetect-Z/internal/client/ledger"
	"github.com/camertanev/FraudDetect-Z/internal/client/models"
	"github.com/camertanev/FraudDetect-Z/internal/client/repositories/claims"
	"github.com/camertanev/FraudDetect-Z/internal/client/signer"
	"github.com/camertanev/FraudDetect-Z/internal/common"
	"github.com/camertanev/FraudDetect-Z/internal/logging"
)

// ApproveFunc is consulted with the fully prepared submission before it is
// signed and sent to the ledger. Returning false aborts the write with
// ErrTransactionRejected. A nil ApproveFunc approves everything.
type ApproveFunc func(ctx context.Context, sub *models.Submission) bool

// CoordinatorParams carries the collaborators a Coordinator is built from.
// Ledger, Gateway, Signer, Repo and Logger are required; Cache and Approve
// are optional.
type CoordinatorParams struct {
	Ledger         ledger.Client
	Gateway        gateway.Gateway
	Signer         signer.Signer
	Repo           claims.Repository
	Cache          claims.Cache
	Logger         logging.Logger
	Destination    string
	FraudThreshold uint64
	Approve        ApproveFunc
}

// inflightVerification coalesces concurrent decrypt-and-verify calls for one
// claim id. value and err are written once, before done is closed.
type inflightVerification struct {
	done  chan struct{}
	value uint64
	err   error
}

// Coordinator orchestrates the claim lifecycle over the ledger client and
// the encryption gateway. All mutable claim state lives in the repository
// and is only ever updated via a full successful refresh, so readers never
// observe partial writes.
type Coordinator struct {
	ledger      ledger.Client
	gateway     gateway.Gateway
	signer      signer.Signer
	repo        claims.Repository
	cache       claims.Cache
	logger      logging.Logger
	destination string
	threshold   uint64
	approve     ApproveFunc

	// now is a seam for tests; defaults to time.Now.
	now func() time.Time

	mu       sync.Mutex
	inflight map[string]*inflightVerification

	subMu       sync.Mutex
	subscribers []chan models.OperationStatus
}

func NewCoordinator(p CoordinatorParams) *Coordinator {
	threshold := p.FraudThreshold
	if threshold == 0 {
		threshold = common.DefaultFraudThreshold
	}
	return &Coordinator{
		ledger:      p.Ledger,
		gateway:     p.Gateway,
		signer:      p.Signer,
		repo:        p.Repo,
		cache:       p.Cache,
		logger:      p.Logger,
		destination: p.Destination,
		threshold:   threshold,
		approve:     p.Approve,
		now:         time.Now,
		inflight:    make(map[string]*inflightVerification),
	}
}

// Subscribe returns a channel of operation statuses. Delivery is best-effort:
// a slow consumer drops updates instead of blocking lifecycle operations.
func (c *Coordinator) Subscribe() <-chan models.OperationStatus {
	ch := make(chan models.OperationStatus, 16)
	c.subMu.Lock()
	c.subscribers = append(c.subscribers, ch)
	c.subMu.Unlock()
	return ch
}

func (c *Coordinator) publish(st models.OperationStatus) {
	c.subMu.Lock()
	defer c.subMu.Unlock()
	for _, ch := range c.subscribers {
		select {
		case ch <- st:
		default:
		}
	}
}

// CreateClaim encrypts the amount, submits the claim to the ledger exactly
// once and refreshes the local projection. There is no automatic retry: an
// ambiguous failure is reported to the caller rather than risking a
// duplicate submission.
func (c *Coordinator) CreateClaim(ctx context.Context, input models.ClaimInput) (*models.Claim, error) {
	opID := uuid.NewString()
	c.publish(models.OperationStatus{OperationID: opID, Kind: models.OpCreateClaim, Phase: models.PhasePending, Message: "submitting claim"})

	claim, err := c.createClaim(ctx, input)
	if err != nil {
		c.publish(models.OperationStatus{OperationID: opID, Kind: models.OpCreateClaim, Phase: models.PhaseError, Message: err.Error()})
		return nil, err
	}

	c.publish(models.OperationStatus{OperationID: opID, Kind: models.OpCreateClaim, Phase: models.PhaseSuccess, Message: fmt.Sprintf("claim %s submitted", claim.ID)})
	return claim, nil
}

func (c *Coordinator) createClaim(ctx context.Context, input models.ClaimInput) (*models.Claim, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	addr, err := c.signer.Address()
	if err != nil {
		return nil, err
	}

	enc, err := c.gateway.Encrypt(ctx, c.destination, addr, input.Amount)
	if err != nil {
		if errors.Is(err, common.ErrEncryptionFailed) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", common.ErrEncryptionFailed, err)
	}

	sub := &models.Submission{
		ID:               fmt.Sprintf("%d-%s", c.now().UnixNano(), addr),
		PolicyNumber:     input.PolicyNumber,
		Provider:         input.Provider,
		ClaimDate:        input.ClaimDate,
		PublicAmountHint: input.Amount,
		Ciphertext:       enc.Ciphertext,
		InputProof:       enc.Proof,
	}

	if c.approve != nil && !c.approve(ctx, sub) {
		return nil, common.ErrTransactionRejected
	}

	// The one and only ledger write for this call.
	id, timestamp, err := c.ledger.SubmitClaim(ctx, sub)
	if err != nil {
		return nil, err
	}

	if err := c.refresh(ctx); err != nil {
		c.logger.Warn(ctx, "claim refresh after create failed", "error", err)
	}

	if claim, err := c.repo.Get(id); err == nil {
		return claim, nil
	}

	// Refresh failed; hand back the submission as the ledger accepted it.
	return &models.Claim{
		ID:                    id,
		PolicyNumber:          sub.PolicyNumber,
		Provider:              sub.Provider,
		ClaimDate:             sub.ClaimDate,
		PublicAmountHint:      sub.PublicAmountHint,
		EncryptedAmountHandle: sub.Ciphertext,
		Creator:               addr,
		Timestamp:             timestamp,
	}, nil
}

func validateInput(input models.ClaimInput) error {
	if strings.TrimSpace(input.PolicyNumber) == "" {
		return fmt.Errorf("%w: policy number is required", common.ErrValidation)
	}
	if strings.TrimSpace(input.Provider) == "" {
		return fmt.Errorf("%w: provider is required", common.ErrValidation)
	}
	if strings.TrimSpace(input.ClaimDate) == "" {
		return fmt.Errorf("%w: claim date is required", common.ErrValidation)
	}
	return nil
}

// DecryptAndVerify runs the two-phase reveal protocol for one claim and
// returns its cleartext amount. Verified claims short-circuit to the stored
// value. Concurrent calls for the same id coalesce onto a single ledger
// verification submission.
func (c *Coordinator) DecryptAndVerify(ctx context.Context, id string) (uint64, error) {
	opID := uuid.NewString()
	c.publish(models.OperationStatus{OperationID: opID, Kind: models.OpDecryptAndVerify, Phase: models.PhasePending, Message: fmt.Sprintf("verifying claim %s", id)})

	value, err := c.decryptAndVerify(ctx, id)
	if err != nil {
		c.publish(models.OperationStatus{OperationID: opID, Kind: models.OpDecryptAndVerify, Phase: models.PhaseError, Message: err.Error()})
		return 0, err
	}

	c.publish(models.OperationStatus{OperationID: opID, Kind: models.OpDecryptAndVerify, Phase: models.PhaseSuccess, Message: fmt.Sprintf("claim %s verified", id)})
	return value, nil
}

func (c *Coordinator) decryptAndVerify(ctx context.Context, id string) (uint64, error) {
	// Fast path: verification is monotonic and ledger-authoritative, so a
	// locally verified claim is final.
	if claim, err := c.repo.Get(id); err == nil && claim.IsVerified {
		return claim.DecryptedValue, nil
	}

	c.mu.Lock()
	if fl, ok := c.inflight[id]; ok {
		c.mu.Unlock()
		select {
		case <-fl.done:
			return fl.value, fl.err
		case <-ctx.Done():
			return 0, ctx.Err()
		}
	}
	fl := &inflightVerification{done: make(chan struct{})}
	c.inflight[id] = fl
	c.mu.Unlock()

	fl.value, fl.err = c.runVerification(ctx, id)

	c.mu.Lock()
	delete(c.inflight, id)
	c.mu.Unlock()
	close(fl.done)

	return fl.value, fl.err
}

func (c *Coordinator) runVerification(ctx context.Context, id string) (uint64, error) {
	handle, err := c.ledger.GetEncryptedHandle(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("fetch encrypted handle: %w", err)
	}

	reveal, err := c.gateway.ProveDecryption(ctx, [][]byte{handle}, c.destination)
	if err != nil {
		if errors.Is(err, common.ErrDecryptionFailed) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return 0, err
		}
		return 0, fmt.Errorf("%w: %v", common.ErrDecryptionFailed, err)
	}

	key := hex.EncodeToString(handle)
	value, okValue := reveal.Values[key]
	proof, okProof := reveal.Proofs[key]
	if !okValue || !okProof {
		return 0, fmt.Errorf("%w: gateway returned no result for handle", common.ErrDecryptionFailed)
	}

	stored, err := c.ledger.SubmitVerification(ctx, id, value, proof)
	if err != nil {
		if errors.Is(err, common.ErrAlreadyVerified) {
			// Someone else won the race; the ledger value is authoritative.
			return c.resolveVerified(ctx, id)
		}
		return 0, err
	}

	if rerr := c.refresh(ctx); rerr != nil {
		c.logger.Warn(ctx, "claim refresh after verification failed", "error", rerr)
	}
	return stored, nil
}

// resolveVerified re-fetches a claim the ledger reported as already verified
// and resolves with its stored value instead of surfacing an error.
func (c *Coordinator) resolveVerified(ctx context.Context, id string) (uint64, error) {
	claim, err := c.ledger.GetClaim(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("refetch verified claim: %w", err)
	}
	if !claim.IsVerified {
		return 0, fmt.Errorf("%w: ledger reports claim %s unverified after race", common.ErrInternal, id)
	}
	if rerr := c.refresh(ctx); rerr != nil {
		c.logger.Warn(ctx, "claim refresh after verification failed", "error", rerr)
	}
	return claim.DecryptedValue, nil
}

// RefreshClaims pulls the full claim set from the ledger and replaces the
// repository snapshot atomically. On a read error the previous snapshot is
// left intact (stale-but-available); if there is no snapshot yet, the local
// cache is consulted so the client still has something to show offline.
func (c *Coordinator) RefreshClaims(ctx context.Context) error {
	opID := uuid.NewString()
	c.publish(models.OperationStatus{OperationID: opID, Kind: models.OpRefreshClaims, Phase: models.PhasePending, Message: "refreshing claims"})

	if err := c.refresh(ctx); err != nil {
		c.publish(models.OperationStatus{OperationID: opID, Kind: models.OpRefreshClaims, Phase: models.PhaseError, Message: err.Error()})
		return err
	}

	c.publish(models.OperationStatus{OperationID: opID, Kind: models.OpRefreshClaims, Phase: models.PhaseSuccess, Message: fmt.Sprintf("%d claims", c.repo.Len())})
	return nil
}

func (c *Coordinator) refresh(ctx context.Context) error {
	ids, err := c.ledger.ListClaimIDs(ctx)
	if err != nil {
		c.loadCacheIfEmpty(ctx)
		return fmt.Errorf("list claims: %w", err)
	}

	fetched := make([]models.Claim, 0, len(ids))
	for _, id := range ids {
		claim, err := c.ledger.GetClaim(ctx, id)
		if err != nil {
			c.loadCacheIfEmpty(ctx)
			return fmt.Errorf("get claim %s: %w", id, err)
		}
		fetched = append(fetched, *claim)
	}

	c.repo.ReplaceAll(fetched)

	if c.cache != nil {
		if err := c.cache.Save(ctx, fetched); err != nil {
			c.logger.Warn(ctx, "claim cache save failed", "error", err)
		}
	}
	return nil
}

// loadCacheIfEmpty falls back to the persisted snapshot, but only when the
// repository has nothing at all; a stale in-memory snapshot always wins over
// a possibly staler cached one.
func (c *Coordinator) loadCacheIfEmpty(ctx context.Context) {
	if c.cache == nil || c.repo.Len() > 0 {
		return
	}
	cached, err := c.cache.Load(ctx)
	if err != nil {
		c.logger.Warn(ctx, "claim cache load failed", "error", err)
		return
	}
	if len(cached) > 0 {
		c.repo.ReplaceAll(cached)
		c.logger.Info(ctx, "serving cached claim snapshot", "claims", len(cached))
	}
}

// Claims returns a copy of the current claim snapshot.
func (c *Coordinator) Claims() []models.Claim {
	return c.repo.List()
}

// Claim returns one claim from the current snapshot.
func (c *Coordinator) Claim(id string) (*models.Claim, error) {
	return c.repo.Get(id)
}

// Stats derives fraud statistics from the current snapshot.
func (c *Coordinator) Stats() models.FraudStats {
	return ComputeFraudStats(c.repo.List(), c.threshold, c.now())
}

// Ping reports ledger reachability.
func (c *Coordinator) Ping(ctx context.Context) error {
	return c.ledger.Ping(ctx)
}
