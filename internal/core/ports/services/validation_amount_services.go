package services

import (
	"context"

	"github.com/finledger/finance-ledger/internal/core/domain"
	"github.com/finledger/finance-ledger/internal/dto"
)

// ValidationAmountSvc owns expected-balance snapshots and the reconciler
// that refreshes each account's last-validated marker.
type ValidationAmountSvc interface {
	CreateValidationAmount(ctx context.Context, req dto.CreateValidationAmountRequest) domain.ServiceResult[domain.ValidationAmount]
	ListValidationAmountsByAccount(ctx context.Context, accountNameOwner string) domain.ServiceResult[[]domain.ValidationAmount]

	// RefreshValidationDates writes the newest cleared-state snapshot
	// timestamp onto every account's validation_date. Idempotent; per-account
	// failures are logged and skipped.
	RefreshValidationDates(ctx context.Context)
}
