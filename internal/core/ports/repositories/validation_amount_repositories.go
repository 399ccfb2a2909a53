package repositories

import (
	"context"

	"github.com/finledger/finance-ledger/internal/core/domain"
)

// ValidationAmountRepository defines storage for expected-balance snapshots.
type ValidationAmountRepository interface {
	// SaveValidationAmount persists a new snapshot.
	SaveValidationAmount(ctx context.Context, va domain.ValidationAmount) error

	// ListValidationAmountsByAccount retrieves snapshots for one account,
	// newest first.
	ListValidationAmountsByAccount(ctx context.Context, accountNameOwner string) ([]domain.ValidationAmount, error)

	// LatestByAccountAndState retrieves the most recent snapshot per
	// (account, state). Returns apperrors.ErrNotFound when none exists.
	LatestByAccountAndState(ctx context.Context, accountNameOwner string, state domain.TransactionState) (*domain.ValidationAmount, error)
}
