package repositories

import (
	"context"

	"github.com/finledger/finance-ledger/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// TransactionReader defines read operations for ledger transactions.
type TransactionReader interface {
	// FindTransactionByGUID retrieves a single transaction.
	FindTransactionByGUID(ctx context.Context, guid string) (*domain.Transaction, error)

	// ListTransactionsByAccount retrieves transactions for one account,
	// newest first.
	ListTransactionsByAccount(ctx context.Context, accountNameOwner string, limit int, offset int) ([]domain.Transaction, error)

	// SumAmountByAccountAndState sums transaction amounts for an account
	// restricted to one state. Zero when no rows match; never an error for an
	// empty set.
	SumAmountByAccountAndState(ctx context.Context, accountNameOwner string, state domain.TransactionState) (decimal.Decimal, error)
}

// TransactionWriter defines write operations for ledger transactions.
type TransactionWriter interface {
	// SaveTransaction persists a new transaction. Returns
	// apperrors.ErrDuplicate on a dedupe-constraint violation.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// SaveTransactionInTx persists a new transaction inside tx.
	SaveTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error

	// UpdateTransaction updates mutable transaction fields.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error

	// DeleteTransactionByGUID hard-deletes a transaction.
	DeleteTransactionByGUID(ctx context.Context, guid string) error

	// DeleteTransactionsByGUIDsInTx hard-deletes a set of transactions inside tx.
	DeleteTransactionsByGUIDsInTx(ctx context.Context, tx pgx.Tx, guids []string) error
}

// TransactionAccountSupport defines ledger operations that participate in
// account lifecycle transactions.
type TransactionAccountSupport interface {
	// SumAmountByAccountAndStateInTx is SumAmountByAccountAndState executed
	// inside tx so the read is atomic with the subsequent totals write.
	SumAmountByAccountAndStateInTx(ctx context.Context, tx pgx.Tx, accountNameOwner string, state domain.TransactionState) (decimal.Decimal, error)

	// ReassignAccountInTx re-points every transaction owned by oldName to
	// newName and returns the number of rows moved.
	ReassignAccountInTx(ctx context.Context, tx pgx.Tx, oldName, newName string) (int64, error)

	// ReassignCategoryInTx rewrites the category on every transaction carrying
	// oldCategory and returns the number of rows changed.
	ReassignCategoryInTx(ctx context.Context, tx pgx.Tx, oldCategory, newCategory string) (int64, error)

	// RewriteDescription folds every transaction carrying oldDescription into
	// newDescription and returns the number of rows changed.
	RewriteDescription(ctx context.Context, oldDescription, newDescription string) (int64, error)

	// DeleteTransactionsByAccountInTx hard-deletes all transactions owned by
	// the account; used by the administrative purge path.
	DeleteTransactionsByAccountInTx(ctx context.Context, tx pgx.Tx, accountNameOwner string) (int64, error)
}

// TransactionRepositoryFacade combines all transaction repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
	TransactionAccountSupport
}
