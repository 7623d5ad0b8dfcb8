package claims

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/camertanev/FraudDetect-Z/internal/client/models"
	"github.com/camertanev/FraudDetect-Z/internal/dbx"
)

// SQLiteCache persists the last refreshed claim snapshot in a local SQLite
// database. Save rewrites the whole table inside one transaction, mirroring
// the wholesale-replacement semantics of the in-memory repository.
type SQLiteCache struct {
	db *sql.DB
}

func NewSQLiteCache(db *sql.DB) *SQLiteCache {
	return &SQLiteCache{db: db}
}

func (c *SQLiteCache) Save(ctx context.Context, claims []models.Claim) error {
	return dbx.WithTx(ctx, c.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM claim_cache`); err != nil {
			return fmt.Errorf("failed to clear claim cache: %w", err)
		}

		query := `INSERT INTO claim_cache
			(id, policy_number, provider, claim_date, public_amount_hint, handle, is_verified, decrypted_value, creator, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

		for i := range claims {
			cl := &claims[i]
			_, err := tx.ExecContext(ctx, query,
				cl.ID, cl.PolicyNumber, cl.Provider, cl.ClaimDate,
				cl.PublicAmountHint, cl.EncryptedAmountHandle,
				cl.IsVerified, cl.DecryptedValue, cl.Creator, cl.Timestamp)
			if err != nil {
				return fmt.Errorf("failed to insert cached claim: %w", err)
			}
		}
		return nil
	})
}

func (c *SQLiteCache) Load(ctx context.Context) ([]models.Claim, error) {
	query := `SELECT id, policy_number, provider, claim_date, public_amount_hint,
		handle, is_verified, decrypted_value, creator, created_at
		FROM claim_cache ORDER BY created_at, id`

	rows, err := c.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select cached claims: %w", err)
	}
	defer rows.Close()

	var result []models.Claim
	for rows.Next() {
		var cl models.Claim
		if err := rows.Scan(&cl.ID, &cl.PolicyNumber, &cl.Provider, &cl.ClaimDate,
			&cl.PublicAmountHint, &cl.EncryptedAmountHandle,
			&cl.IsVerified, &cl.DecryptedValue, &cl.Creator, &cl.Timestamp); err != nil {
			return nil, err
		}
		result = append(result, cl)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
