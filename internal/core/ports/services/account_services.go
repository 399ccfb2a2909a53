package services

import (
	"context"

	"github.com/finledger/finance-ledger/internal/core/domain"
	"github.com/finledger/finance-ledger/internal/dto"
)

// AccountSvc owns account CRUD, the lifecycle state machine and the totals
// refresher. Every operation returns a ServiceResult variant; none surface
// raw errors to the caller.
type AccountSvc interface {
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) domain.ServiceResult[domain.Account]
	GetAccount(ctx context.Context, accountNameOwner string) domain.ServiceResult[domain.Account]
	ListAccounts(ctx context.Context, params dto.ListAccountsParams) domain.ServiceResult[[]domain.Account]
	UpdateAccount(ctx context.Context, accountNameOwner string, req dto.UpdateAccountRequest) domain.ServiceResult[domain.Account]

	// ActivateAccount transitions inactive -> active. Idempotent on an
	// already-active account.
	ActivateAccount(ctx context.Context, accountNameOwner string) domain.ServiceResult[domain.Account]
	// DeactivateAccount transitions active -> inactive without touching totals.
	DeactivateAccount(ctx context.Context, accountNameOwner string) domain.ServiceResult[domain.Account]
	// RenameAccount re-keys the account and all its transactions atomically.
	RenameAccount(ctx context.Context, oldName, newName string) domain.ServiceResult[domain.Account]
	// MergeAccounts folds source's ledger into target, removes source, and
	// recomputes target totals.
	MergeAccounts(ctx context.Context, targetName, sourceName string) domain.ServiceResult[domain.Account]
	// PurgeAccount hard-deletes the account and cascades to owned
	// transactions; the administrative delete path. Returns the number of
	// transactions removed.
	PurgeAccount(ctx context.Context, accountNameOwner string) domain.ServiceResult[int64]

	// RefreshTotalsAll recomputes totals for every active account. Per-account
	// failures are logged and do not abort the pass.
	RefreshTotalsAll(ctx context.Context)
	// RefreshTotalsOne recomputes totals for one account inside a single
	// storage transaction.
	RefreshTotalsOne(ctx context.Context, accountNameOwner string) domain.ServiceResult[domain.Account]
}
