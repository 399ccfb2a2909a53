package repositories

import (
	"context"
	"time"

	"github.com/finledger/finance-ledger/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// AccountReader defines read operations for account data.
type AccountReader interface {
	// FindAccountByNameOwner retrieves an account by its owner-qualified name.
	FindAccountByNameOwner(ctx context.Context, accountNameOwner string) (*domain.Account, error)

	// ListAccounts retrieves accounts ordered by name. Inactive accounts are
	// included only when includeInactive is set.
	ListAccounts(ctx context.Context, includeInactive bool, limit int, offset int) ([]domain.Account, error)

	// ListAccountNames returns the owner-qualified names of accounts, active
	// ones only unless includeInactive is set.
	ListAccountNames(ctx context.Context, includeInactive bool) ([]string, error)
}

// AccountWriter defines write operations for account data.
type AccountWriter interface {
	// SaveAccount persists a new account. Returns apperrors.ErrDuplicate when
	// the owner-qualified name is already taken.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount updates mutable account fields (moniker, type).
	UpdateAccount(ctx context.Context, account domain.Account) error

	// SetActiveStatus flips the account's active flag. Idempotent; returns
	// apperrors.ErrNotFound when the account does not exist.
	SetActiveStatus(ctx context.Context, accountNameOwner string, active bool, now time.Time) error

	// UpdateValidationDate writes the last-validated marker.
	UpdateValidationDate(ctx context.Context, accountNameOwner string, validationDate time.Time, now time.Time) error
}

// AccountTransactionSupport defines operations that run inside a storage
// transaction shared with other repositories.
type AccountTransactionSupport interface {
	// FindAccountForUpdate selects the account row and locks it for update.
	FindAccountForUpdate(ctx context.Context, tx pgx.Tx, accountNameOwner string) (*domain.Account, error)

	// UpdateAccountTotalsInTx writes the three per-state totals, their sum and
	// the payment-required flag in one statement.
	UpdateAccountTotalsInTx(ctx context.Context, tx pgx.Tx, accountNameOwner string, cleared, outstanding, future decimal.Decimal, paymentRequired bool, now time.Time) error

	// RenameAccountInTx re-keys the account row. Returns apperrors.ErrDuplicate
	// when the new name already exists (unique index is the arbiter).
	RenameAccountInTx(ctx context.Context, tx pgx.Tx, oldName, newName string, now time.Time) error

	// DeleteAccountInTx hard-deletes the account row.
	DeleteAccountInTx(ctx context.Context, tx pgx.Tx, accountNameOwner string) error
}

// AccountRepositoryFacade combines all account-related repository interfaces.
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
	AccountTransactionSupport
}

// AccountRepositoryWithTx extends the facade with transaction control.
type AccountRepositoryWithTx interface {
	AccountRepositoryFacade
	TransactionManager
}
