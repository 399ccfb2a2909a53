package services

import (
	"context"

	"github.com/finledger/finance-ledger/internal/core/domain"
	"github.com/finledger/finance-ledger/internal/dto"
	"github.com/shopspring/decimal"
)

// TransactionSvc owns ledger entry CRUD and the per-state aggregation the
// totals refresher builds on.
type TransactionSvc interface {
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) domain.ServiceResult[domain.Transaction]
	GetTransaction(ctx context.Context, guid string) domain.ServiceResult[domain.Transaction]
	ListTransactionsByAccount(ctx context.Context, accountNameOwner string, params dto.ListTransactionsParams) domain.ServiceResult[[]domain.Transaction]
	UpdateTransaction(ctx context.Context, guid string, req dto.UpdateTransactionRequest) domain.ServiceResult[domain.Transaction]
	DeleteTransaction(ctx context.Context, guid string) domain.ServiceResult[bool]

	// SumByState sums transaction amounts for one account restricted to one
	// summable state. A pure query: zero for no matches, never NotFound.
	SumByState(ctx context.Context, accountNameOwner string, state domain.TransactionState) domain.ServiceResult[decimal.Decimal]

	// MergeDescriptions folds every transaction carrying source into target
	// and returns the number of rows rewritten.
	MergeDescriptions(ctx context.Context, targetDescription, sourceDescription string) domain.ServiceResult[int64]
}
