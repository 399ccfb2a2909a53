package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager exposes storage-level transaction control so services
// can group multi-table mutations into one atomic unit.
type TransactionManager interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Commit(ctx context.Context, tx pgx.Tx) error
	Rollback(ctx context.Context, tx pgx.Tx) error
}
