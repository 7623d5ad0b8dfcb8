package repomanager

import (
	"context"
	"database/sql"

	"github.com/camertanev/FraudDetect-Z/internal/dbx"
	"github.com/camertanev/FraudDetect-Z/internal/server/repositories/claims"
	"github.com/camertanev/FraudDetect-Z/internal/server/repositories/refreshtokens"
	"github.com/camertanev/FraudDetect-Z/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Claims(db dbx.DBTX) claims.Repository
}
