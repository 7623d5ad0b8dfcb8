package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camertanev/FraudDetect-Z/internal/client/gateway"
	"github.com/camertanev/FraudDetect-Z/internal/client/ledger"
	"github.com/camertanev/FraudDetect-Z/internal/client/models"
	"github.com/camertanev/FraudDetect-Z/internal/client/repositories/claims"
	"github.com/camertanev/FraudDetect-Z/internal/client/signer"
	"github.com/camertanev/FraudDetect-Z/internal/common"
	"github.com/camertanev/FraudDetect-Z/internal/logging"
)

type fakeLedger struct {
	ledger.Client

	mu     sync.Mutex
	claims map[string]*models.Claim
	order  []string

	listErr   error
	getErr    error
	submitErr error
	handleErr error
	verifyErr error

	submitCalls int
	verifyCalls int
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{claims: make(map[string]*models.Claim)}
}

func (f *fakeLedger) Ping(context.Context) error { return nil }
func (f *fakeLedger) Close() error               { return nil }

func (f *fakeLedger) ListClaimIDs(ctx context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]string, len(f.order))
	copy(out, f.order)
	return out, nil
}

func (f *fakeLedger) GetClaim(ctx context.Context, id string) (*models.Claim, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
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

func (f *fakeLedger) SubmitClaim(ctx context.Context, sub *models.Submission) (string, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitCalls++
	if f.submitErr != nil {
		return "", 0, f.submitErr
	}
	ts := int64(1700000000)
	f.claims[sub.ID] = &models.Claim{
		ID:                    sub.ID,
		PolicyNumber:          sub.PolicyNumber,
		Provider:              sub.Provider,
		ClaimDate:             sub.ClaimDate,
		PublicAmountHint:      sub.PublicAmountHint,
		EncryptedAmountHandle: sub.Ciphertext,
		Creator:               "0xabc",
		Timestamp:             ts,
	}
	f.order = append(f.order, sub.ID)
	return sub.ID, ts, nil
}

func (f *fakeLedger) GetEncryptedHandle(ctx context.Context, id string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.handleErr != nil {
		return nil, f.handleErr
	}
	c, ok := f.claims[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return c.EncryptedAmountHandle, nil
}

func (f *fakeLedger) SubmitVerification(ctx context.Context, id string, value uint64, proof []byte) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.verifyCalls++
	if f.verifyErr != nil {
		return 0, f.verifyErr
	}
	c, ok := f.claims[id]
	if !ok {
		return 0, common.ErrNotFound
	}
	if c.IsVerified {
		return 0, common.ErrAlreadyVerified
	}
	c.IsVerified = true
	c.DecryptedValue = value
	return value, nil
}

// hookGateway wraps a real gateway with failure injection and a barrier
// hook used by the concurrency tests.
type hookGateway struct {
	inner       gateway.Gateway
	encryptErr  error
	proveErr    error
	beforeProve func()

	mu         sync.Mutex
	proveCalls int
}

func (g *hookGateway) Encrypt(ctx context.Context, destination, caller string, amount uint64) (*gateway.Encrypted, error) {
	if g.encryptErr != nil {
		return nil, g.encryptErr
	}
	return g.inner.Encrypt(ctx, destination, caller, amount)
}

func (g *hookGateway) ProveDecryption(ctx context.Context, handles [][]byte, destination string) (*gateway.Reveal, error) {
	g.mu.Lock()
	g.proveCalls++
	g.mu.Unlock()
	if g.beforeProve != nil {
		g.beforeProve()
	}
	if g.proveErr != nil {
		return nil, g.proveErr
	}
	return g.inner.ProveDecryption(ctx, handles, destination)
}

type fakeCache struct {
	mu      sync.Mutex
	stored  []models.Claim
	saveErr error
	loadErr error
}

func (c *fakeCache) Save(ctx context.Context, snapshot []models.Claim) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.saveErr != nil {
		return c.saveErr
	}
	c.stored = append([]models.Claim(nil), snapshot...)
	return nil
}

func (c *fakeCache) Load(ctx context.Context) ([]models.Claim, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.loadErr != nil {
		return nil, c.loadErr
	}
	return append([]models.Claim(nil), c.stored...), nil
}

const testDestination = "claims-test"

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newTestCoordinator(t *testing.T, fl *fakeLedger, gw gateway.Gateway, cache claims.Cache) (*Coordinator, *signer.LocalSigner) {
	t.Helper()
	sg := signer.NewLocalSigner()
	sg.SetIdentity("0xabc")
	c := NewCoordinator(CoordinatorParams{
		Ledger:      fl,
		Gateway:     gw,
		Signer:      sg,
		Repo:        claims.NewMemoryRepository(),
		Cache:       cache,
		Logger:      testLogger(),
		Destination: testDestination,
	})
	return c, sg
}

func devGateway() *hookGateway {
	return &hookGateway{inner: gateway.NewDevGateway([]byte("pass"), []byte("salt1234"))}
}

func validInput(amount uint64) models.ClaimInput {
	return models.ClaimInput{PolicyNumber: "POL-1", Provider: "acme clinic", ClaimDate: "2026-08-01", Amount: amount}
}

func TestCreateClaim_Success(t *testing.T) {
	fl := newFakeLedger()
	c, _ := newTestCoordinator(t, fl, devGateway(), nil)

	claim, err := c.CreateClaim(context.Background(), validInput(15000))
	require.NoError(t, err)

	assert.Contains(t, claim.ID, "-0xabc")
	assert.False(t, claim.IsVerified)
	assert.Equal(t, uint64(15000), claim.PublicAmountHint)
	assert.NotEmpty(t, claim.EncryptedAmountHandle)
	assert.Equal(t, 1, fl.submitCalls)

	snapshot := c.Claims()
	require.Len(t, snapshot, 1)
	assert.False(t, snapshot[0].IsVerified)
	assert.Equal(t, uint64(15000), snapshot[0].PublicAmountHint)
}

func TestCreateClaim_Unauthenticated(t *testing.T) {
	fl := newFakeLedger()
	c, sg := newTestCoordinator(t, fl, devGateway(), nil)
	sg.Clear()

	_, err := c.CreateClaim(context.Background(), validInput(100))
	require.ErrorIs(t, err, common.ErrUnauthenticated)
	assert.Equal(t, 0, fl.submitCalls)
}

func TestCreateClaim_Validation(t *testing.T) {
	fl := newFakeLedger()
	c, _ := newTestCoordinator(t, fl, devGateway(), nil)

	bad := validInput(100)
	bad.PolicyNumber = "  "
	_, err := c.CreateClaim(context.Background(), bad)
	require.ErrorIs(t, err, common.ErrValidation)
	assert.Equal(t, 0, fl.submitCalls)
}

func TestCreateClaim_EncryptionFailure_NoLedgerWrite(t *testing.T) {
	fl := newFakeLedger()
	gw := devGateway()
	gw.encryptErr = errors.New("hsm offline")
	c, _ := newTestCoordinator(t, fl, gw, nil)

	statuses := c.Subscribe()

	_, err := c.CreateClaim(context.Background(), validInput(100))
	require.ErrorIs(t, err, common.ErrEncryptionFailed)
	assert.Equal(t, 0, fl.submitCalls)
	assert.Equal(t, 0, c.repo.Len())

	st := <-statuses
	assert.Equal(t, models.PhasePending, st.Phase)
	st = <-statuses
	assert.Equal(t, models.PhaseError, st.Phase)
	assert.Equal(t, models.OpCreateClaim, st.Kind)
}

func TestCreateClaim_Rejected(t *testing.T) {
	fl := newFakeLedger()
	sg := signer.NewLocalSigner()
	sg.SetIdentity("0xabc")
	c := NewCoordinator(CoordinatorParams{
		Ledger:      fl,
		Gateway:     devGateway(),
		Signer:      sg,
		Repo:        claims.NewMemoryRepository(),
		Logger:      testLogger(),
		Destination: testDestination,
		Approve:     func(ctx context.Context, sub *models.Submission) bool { return false },
	})

	_, err := c.CreateClaim(context.Background(), validInput(100))
	require.ErrorIs(t, err, common.ErrTransactionRejected)
	assert.Equal(t, 0, fl.submitCalls)
}

func TestCreateClaim_LedgerFailure_NoRetry(t *testing.T) {
	fl := newFakeLedger()
	fl.submitErr = common.ErrTransactionFailed
	c, _ := newTestCoordinator(t, fl, devGateway(), nil)

	_, err := c.CreateClaim(context.Background(), validInput(100))
	require.ErrorIs(t, err, common.ErrTransactionFailed)
	assert.Equal(t, 1, fl.submitCalls, "ambiguous failures must not be retried")
}

func TestDecryptAndVerify_FullFlow(t *testing.T) {
	fl := newFakeLedger()
	c, _ := newTestCoordinator(t, fl, devGateway(), nil)
	ctx := context.Background()

	claim, err := c.CreateClaim(ctx, validInput(15000))
	require.NoError(t, err)

	value, err := c.DecryptAndVerify(ctx, claim.ID)
	require.NoError(t, err)
	assert.Equal(t, uint64(15000), value)
	assert.Equal(t, 1, fl.verifyCalls)

	got, err := c.Claim(claim.ID)
	require.NoError(t, err)
	assert.True(t, got.IsVerified)
	assert.Equal(t, uint64(15000), got.DecryptedValue)

	stats := c.Stats()
	assert.Equal(t, 1, stats.TotalClaims)
	assert.Equal(t, 1, stats.VerifiedClaims)
	assert.Equal(t, 1, stats.PotentialFrauds)
}

func TestDecryptAndVerify_Idempotent(t *testing.T) {
	fl := newFakeLedger()
	c, _ := newTestCoordinator(t, fl, devGateway(), nil)
	ctx := context.Background()

	claim, err := c.CreateClaim(ctx, validInput(500))
	require.NoError(t, err)

	first, err := c.DecryptAndVerify(ctx, claim.ID)
	require.NoError(t, err)
	second, err := c.DecryptAndVerify(ctx, claim.ID)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, fl.verifyCalls, "verified claims must short-circuit")
}

func TestDecryptAndVerify_Concurrent_SingleSubmission(t *testing.T) {
	fl := newFakeLedger()
	gw := devGateway()
	c, _ := newTestCoordinator(t, fl, gw, nil)
	ctx := context.Background()

	claim, err := c.CreateClaim(ctx, validInput(777))
	require.NoError(t, err)

	const callers = 8
	started := make(chan struct{})
	gw.beforeProve = func() {
		// Hold the leader inside the protocol until every caller has had
		// a chance to pile onto the in-flight verification.
		<-started
	}

	var wg sync.WaitGroup
	results := make([]uint64, callers)
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = c.DecryptAndVerify(ctx, claim.ID)
		}(i)
	}

	time.Sleep(50 * time.Millisecond)
	close(started)
	wg.Wait()

	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, uint64(777), results[i])
	}
	assert.Equal(t, 1, fl.verifyCalls, "concurrent calls must coalesce onto one submission")
	assert.Equal(t, 1, gw.proveCalls)
}

func TestDecryptAndVerify_AlreadyVerifiedMidflight(t *testing.T) {
	fl := newFakeLedger()
	c, _ := newTestCoordinator(t, fl, devGateway(), nil)
	ctx := context.Background()

	claim, err := c.CreateClaim(ctx, validInput(900))
	require.NoError(t, err)

	// Another participant verifies the claim behind our back.
	fl.mu.Lock()
	fl.claims[claim.ID].IsVerified = true
	fl.claims[claim.ID].DecryptedValue = 900
	fl.mu.Unlock()

	value, err := c.DecryptAndVerify(ctx, claim.ID)
	require.NoError(t, err, "mid-flight AlreadyVerified must resolve successfully")
	assert.Equal(t, uint64(900), value)
}

func TestDecryptAndVerify_DecryptionFailure(t *testing.T) {
	fl := newFakeLedger()
	gw := devGateway()
	c, _ := newTestCoordinator(t, fl, gw, nil)
	ctx := context.Background()

	claim, err := c.CreateClaim(ctx, validInput(100))
	require.NoError(t, err)

	gw.proveErr = errors.New("proof backend down")
	_, err = c.DecryptAndVerify(ctx, claim.ID)
	require.ErrorIs(t, err, common.ErrDecryptionFailed)

	got, gerr := c.Claim(claim.ID)
	require.NoError(t, gerr)
	assert.False(t, got.IsVerified)
}

func TestRefreshClaims_StaleSnapshotOnError(t *testing.T) {
	fl := newFakeLedger()
	c, _ := newTestCoordinator(t, fl, devGateway(), nil)
	ctx := context.Background()

	_, err := c.CreateClaim(ctx, validInput(100))
	require.NoError(t, err)
	require.Equal(t, 1, c.repo.Len())

	fl.mu.Lock()
	fl.listErr = common.ErrLedgerUnreachable
	fl.mu.Unlock()

	err = c.RefreshClaims(ctx)
	require.ErrorIs(t, err, common.ErrLedgerUnreachable)
	assert.Equal(t, 1, c.repo.Len(), "previous snapshot must remain readable")
}

func TestRefreshClaims_CacheFallbackWhenEmpty(t *testing.T) {
	fl := newFakeLedger()
	fl.listErr = common.ErrLedgerUnreachable
	cache := &fakeCache{stored: []models.Claim{{ID: "c1", PolicyNumber: "POL-9"}}}
	c, _ := newTestCoordinator(t, fl, devGateway(), cache)

	err := c.RefreshClaims(context.Background())
	require.ErrorIs(t, err, common.ErrLedgerUnreachable)

	snapshot := c.Claims()
	require.Len(t, snapshot, 1)
	assert.Equal(t, "c1", snapshot[0].ID)
}

func TestRefreshClaims_SavesCache(t *testing.T) {
	fl := newFakeLedger()
	cache := &fakeCache{}
	c, _ := newTestCoordinator(t, fl, devGateway(), cache)
	ctx := context.Background()

	_, err := c.CreateClaim(ctx, validInput(100))
	require.NoError(t, err)

	cache.mu.Lock()
	defer cache.mu.Unlock()
	require.Len(t, cache.stored, 1)
}

func TestOperationStatuses_CreateLifecycle(t *testing.T) {
	fl := newFakeLedger()
	c, _ := newTestCoordinator(t, fl, devGateway(), nil)

	statuses := c.Subscribe()

	_, err := c.CreateClaim(context.Background(), validInput(100))
	require.NoError(t, err)

	st := <-statuses
	assert.Equal(t, models.PhasePending, st.Phase)
	assert.Equal(t, models.OpCreateClaim, st.Kind)
	pendingID := st.OperationID

	st = <-statuses
	assert.Equal(t, models.PhaseSuccess, st.Phase)
	assert.Equal(t, pendingID, st.OperationID, "exactly one terminal status per operation")
}
