package claims

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/camertanev/FraudDetect-Z/internal/common"
	"github.com/camertanev/FraudDetect-Z/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func sampleClaim() *models.Claim {
	return &models.Claim{
		ID:               "1-0xabc",
		PolicyNumber:     "POL-1",
		Provider:         "acme clinic",
		ClaimDate:        "2026-08-01",
		PublicAmountHint: 15000,
		Handle:           []byte("handle"),
		Creator:          "0xabc",
		CreatedAt:        time.Unix(1700000000, 0),
	}
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	c := sampleClaim()
	mock.ExpectExec(`(?s)^\s*INSERT\s+INTO\s+claims`).
		WithArgs(c.ID, c.PolicyNumber, c.Provider, c.ClaimDate, c.PublicAmountHint, c.Handle, c.Creator, c.CreatedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), c); err != nil {
		t.Fatalf("Create error: %v", err)
	}
}

func TestListIDs(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id"}).AddRow("a").AddRow("b")
	mock.ExpectQuery(`(?s)^\s*SELECT\s+id\s+FROM\s+claims\s+ORDER\s+BY\s+created_at,\s*id`).
		WillReturnRows(rows)

	ids, err := repo.ListIDs(context.Background())
	if err != nil {
		t.Fatalf("ListIDs error: %v", err)
	}
	if len(ids) != 2 || ids[0] != "a" || ids[1] != "b" {
		t.Fatalf("unexpected ids: %v", ids)
	}
}

func TestGetByID_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	c := sampleClaim()
	rows := sqlmock.NewRows([]string{"id", "policy_number", "provider", "claim_date", "public_amount_hint", "handle", "is_verified", "decrypted_value", "creator", "created_at"}).
		AddRow(c.ID, c.PolicyNumber, c.Provider, c.ClaimDate, c.PublicAmountHint, c.Handle, false, 0, c.Creator, c.CreatedAt)
	mock.ExpectQuery(`(?s)^SELECT\s+.*\s+FROM\s+claims\s+WHERE\s+id\s*=\s*\$1$`).
		WithArgs(c.ID).
		WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), c.ID)
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if got.ID != c.ID || got.IsVerified {
		t.Fatalf("unexpected claim: %+v", got)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^SELECT\s+.*\s+FROM\s+claims`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "missing")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMarkVerified_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)^\s*UPDATE\s+claims\s+SET\s+is_verified\s*=\s*TRUE`).
		WithArgs("1-0xabc", uint64(15000)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.MarkVerified(context.Background(), "1-0xabc", 15000); err != nil {
		t.Fatalf("MarkVerified error: %v", err)
	}
}

func TestMarkVerified_AlreadyVerified(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)^\s*UPDATE\s+claims\s+SET\s+is_verified\s*=\s*TRUE`).
		WithArgs("1-0xabc", uint64(15000)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.MarkVerified(context.Background(), "1-0xabc", 15000)
	if !errors.Is(err, common.ErrAlreadyVerified) {
		t.Fatalf("expected ErrAlreadyVerified, got %v", err)
	}
}
