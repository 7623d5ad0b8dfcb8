package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/camertanev/FraudDetect-Z/internal/common"
	"github.com/camertanev/FraudDetect-Z/internal/sealing"
	"github.com/camertanev/FraudDetect-Z/internal/server/config"
	"github.com/camertanev/FraudDetect-Z/internal/server/models"
)

type fakeClaimsRepo struct {
	claims map[string]*models.Claim
	order  []string

	createErr error
	getErr    error
	markErr   error
}

func newFakeClaimsRepo() *fakeClaimsRepo {
	return &fakeClaimsRepo{claims: make(map[string]*models.Claim)}
}

func (f *fakeClaimsRepo) Create(ctx context.Context, claim *models.Claim) error {
	if f.createErr != nil {
		return f.createErr
	}
	cp := *claim
	f.claims[claim.ID] = &cp
	f.order = append(f.order, claim.ID)
	return nil
}

func (f *fakeClaimsRepo) ListIDs(ctx context.Context) ([]string, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return append([]string(nil), f.order...), nil
}

func (f *fakeClaimsRepo) GetByID(ctx context.Context, id string) (*models.Claim, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	c, ok := f.claims[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeClaimsRepo) GetByIDForUpdate(ctx context.Context, id string) (*models.Claim, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeClaimsRepo) MarkVerified(ctx context.Context, id string, decryptedValue uint64) error {
	if f.markErr != nil {
		return f.markErr
	}
	c, ok := f.claims[id]
	if !ok {
		return common.ErrNotFound
	}
	if c.IsVerified {
		return common.ErrAlreadyVerified
	}
	c.IsVerified = true
	c.DecryptedValue = decryptedValue
	return nil
}

const (
	testSealingSecret = "dev-sealing-secret"
	testDestination   = "claims-test"
	testCreator       = "0xabc"
)

func newClaimService(t *testing.T, repo *fakeClaimsRepo) *ClaimService {
	t.Helper()
	db, mock := newSQLMockDB(t)
	t.Cleanup(func() { db.Close() })
	mock.MatchExpectationsInOrder(false)
	mock.ExpectBegin()
	mock.ExpectCommit()
	mock.ExpectRollback()

	cfg := &config.Config{
		SealingSecret: testSealingSecret,
		Destination:   testDestination,
	}
	s := NewClaimService(db, &fakeRepoManager{c: repo}, cfg)
	s.now = func() time.Time { return time.Unix(1700000000, 0) }
	return s
}

func sealedClaim(t *testing.T, id string, amount uint64) (*models.Claim, []byte, []byte) {
	t.Helper()
	key := sealing.DeriveKey([]byte(testSealingSecret), sealing.DevSalt)
	handle, inputProof, err := sealing.SealAmount(key, testDestination, testCreator, amount)
	if err != nil {
		t.Fatalf("SealAmount error: %v", err)
	}
	revealProof := sealing.ProveReveal(key, testDestination, handle, amount)
	claim := &models.Claim{
		ID:               id,
		PolicyNumber:     "POL-1",
		Provider:         "Acme Clinic",
		ClaimDate:        "2026-08-01",
		PublicAmountHint: amount,
		Handle:           handle,
	}
	return claim, inputProof, revealProof
}

func TestSubmit_AcceptsValidProof(t *testing.T) {
	repo := newFakeClaimsRepo()
	s := newClaimService(t, repo)

	claim, inputProof, _ := sealedClaim(t, "c1", 15000)

	id, ts, err := s.Submit(context.Background(), testCreator, claim, inputProof)
	if err != nil {
		t.Fatalf("Submit error: %v", err)
	}
	if id != "c1" || ts != 1700000000 {
		t.Fatalf("unexpected result: id=%q ts=%d", id, ts)
	}

	stored := repo.claims["c1"]
	if stored == nil || stored.Creator != testCreator || stored.IsVerified {
		t.Fatalf("unexpected stored row: %+v", stored)
	}
}

func TestSubmit_RejectsBadProof(t *testing.T) {
	repo := newFakeClaimsRepo()
	s := newClaimService(t, repo)

	claim, inputProof, _ := sealedClaim(t, "c1", 15000)
	inputProof[0] ^= 0xff

	_, _, err := s.Submit(context.Background(), testCreator, claim, inputProof)
	if !errors.Is(err, common.ErrProofRejected) {
		t.Fatalf("want ErrProofRejected, got %v", err)
	}
	if len(repo.claims) != 0 {
		t.Fatalf("rejected submission must not be stored")
	}
}

func TestSubmit_RejectsWrongCreator(t *testing.T) {
	repo := newFakeClaimsRepo()
	s := newClaimService(t, repo)

	claim, inputProof, _ := sealedClaim(t, "c1", 15000)

	_, _, err := s.Submit(context.Background(), "0xother", claim, inputProof)
	if !errors.Is(err, common.ErrProofRejected) {
		t.Fatalf("proof bound to another creator must be rejected, got %v", err)
	}
}

func TestSubmit_Validation(t *testing.T) {
	repo := newFakeClaimsRepo()
	s := newClaimService(t, repo)

	claim, inputProof, _ := sealedClaim(t, "c1", 15000)
	claim.PolicyNumber = "  "

	_, _, err := s.Submit(context.Background(), testCreator, claim, inputProof)
	if !errors.Is(err, common.ErrValidation) {
		t.Fatalf("want ErrValidation, got %v", err)
	}
}

func TestSubmitVerification_Succeeds(t *testing.T) {
	repo := newFakeClaimsRepo()
	s := newClaimService(t, repo)

	claim, inputProof, revealProof := sealedClaim(t, "c1", 15000)
	if _, _, err := s.Submit(context.Background(), testCreator, claim, inputProof); err != nil {
		t.Fatalf("Submit error: %v", err)
	}

	value, err := s.SubmitVerification(context.Background(), "c1", 15000, revealProof)
	if err != nil {
		t.Fatalf("SubmitVerification error: %v", err)
	}
	if value != 15000 {
		t.Fatalf("want 15000, got %d", value)
	}

	stored := repo.claims["c1"]
	if !stored.IsVerified || stored.DecryptedValue != 15000 {
		t.Fatalf("row not verified: %+v", stored)
	}
}

func TestSubmitVerification_AlreadyVerified(t *testing.T) {
	repo := newFakeClaimsRepo()
	s := newClaimService(t, repo)

	claim, inputProof, revealProof := sealedClaim(t, "c1", 900)
	if _, _, err := s.Submit(context.Background(), testCreator, claim, inputProof); err != nil {
		t.Fatalf("Submit error: %v", err)
	}
	if _, err := s.SubmitVerification(context.Background(), "c1", 900, revealProof); err != nil {
		t.Fatalf("first verification: %v", err)
	}

	// second verification attempt has to manage its own transaction
	s2 := newClaimService(t, repo)
	_, err := s2.SubmitVerification(context.Background(), "c1", 900, revealProof)
	if !errors.Is(err, common.ErrAlreadyVerified) {
		t.Fatalf("want ErrAlreadyVerified, got %v", err)
	}
}

func TestSubmitVerification_WrongValueRejected(t *testing.T) {
	repo := newFakeClaimsRepo()
	s := newClaimService(t, repo)

	claim, inputProof, revealProof := sealedClaim(t, "c1", 15000)
	if _, _, err := s.Submit(context.Background(), testCreator, claim, inputProof); err != nil {
		t.Fatalf("Submit error: %v", err)
	}

	_, err := s.SubmitVerification(context.Background(), "c1", 14999, revealProof)
	if !errors.Is(err, common.ErrProofRejected) {
		t.Fatalf("want ErrProofRejected, got %v", err)
	}
	if repo.claims["c1"].IsVerified {
		t.Fatalf("row must stay unverified after rejected proof")
	}
}

func TestSubmitVerification_NotFound(t *testing.T) {
	repo := newFakeClaimsRepo()
	s := newClaimService(t, repo)

	_, err := s.SubmitVerification(context.Background(), "ghost", 1, []byte("p"))
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestGetHandle(t *testing.T) {
	repo := newFakeClaimsRepo()
	s := newClaimService(t, repo)

	claim, inputProof, _ := sealedClaim(t, "c1", 100)
	if _, _, err := s.Submit(context.Background(), testCreator, claim, inputProof); err != nil {
		t.Fatalf("Submit error: %v", err)
	}

	handle, err := s.GetHandle(context.Background(), "c1")
	if err != nil || len(handle) == 0 {
		t.Fatalf("GetHandle: handle=%v err=%v", handle, err)
	}

	if _, err := s.GetHandle(context.Background(), "ghost"); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestListIDs_CreationOrder(t *testing.T) {
	repo := newFakeClaimsRepo()
	s := newClaimService(t, repo)

	for _, id := range []string{"c1", "c2", "c3"} {
		claim, inputProof, _ := sealedClaim(t, id, 10)
		if _, _, err := s.Submit(context.Background(), testCreator, claim, inputProof); err != nil {
			t.Fatalf("Submit %s: %v", id, err)
		}
	}

	ids, err := s.ListIDs(context.Background())
	if err != nil {
		t.Fatalf("ListIDs error: %v", err)
	}
	if len(ids) != 3 || ids[0] != "c1" || ids[2] != "c3" {
		t.Fatalf("unexpected ids: %v", ids)
	}
}
