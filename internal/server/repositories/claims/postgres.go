package claims

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/camertanev/FraudDetect-Z/internal/common"
	"github.com/camertanev/FraudDetect-Z/internal/dbx"
	"github.com/camertanev/FraudDetect-Z/internal/server/models"
)

// PostgresRepository implements the claim ledger store over dbx.DBTX
// (satisfied by *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, claim *models.Claim) error {
	query := `
		INSERT INTO claims (id, policy_number, provider, claim_date, public_amount_hint, handle, creator, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		claim.ID, claim.PolicyNumber, claim.Provider, claim.ClaimDate,
		claim.PublicAmountHint, claim.Handle, claim.Creator, claim.CreatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) ListIDs(ctx context.Context) ([]string, error) {
	query := `
		SELECT id FROM claims
		ORDER BY created_at, id
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return ids, nil
}

const claimColumns = `id, policy_number, provider, claim_date, public_amount_hint, handle, is_verified, decrypted_value, creator, created_at`

func (r *PostgresRepository) scanClaim(row *sql.Row) (*models.Claim, error) {
	claim := &models.Claim{}
	err := row.Scan(&claim.ID, &claim.PolicyNumber, &claim.Provider, &claim.ClaimDate,
		&claim.PublicAmountHint, &claim.Handle, &claim.IsVerified, &claim.DecryptedValue,
		&claim.Creator, &claim.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return claim, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Claim, error) {
	query := `SELECT ` + claimColumns + ` FROM claims WHERE id = $1`
	return r.scanClaim(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) GetByIDForUpdate(ctx context.Context, id string) (*models.Claim, error) {
	query := `SELECT ` + claimColumns + ` FROM claims WHERE id = $1 FOR UPDATE`
	return r.scanClaim(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) MarkVerified(ctx context.Context, id string, decryptedValue uint64) error {
	query := `
		UPDATE claims SET is_verified = TRUE, decrypted_value = $2
		WHERE id = $1 AND NOT is_verified
	`
	result, err := r.db.ExecContext(ctx, query, id, decryptedValue)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrAlreadyVerified
	}
	return nil
}
