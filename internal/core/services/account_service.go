package services

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/finledger/finance-ledger/internal/core/domain"
	portsrepo "github.com/finledger/finance-ledger/internal/core/ports/repositories"
	portssvc "github.com/finledger/finance-ledger/internal/core/ports/services"
	"github.com/finledger/finance-ledger/internal/dto"
	"github.com/finledger/finance-ledger/internal/platform/resilience"
)

type accountService struct {
	BaseService
	accountRepo        portsrepo.AccountRepositoryWithTx
	txnRepo            portsrepo.TransactionRepositoryFacade
	executor           resilience.Executor
	refreshConcurrency int
}

// NewAccountService creates the account service. refreshConcurrency bounds
// how many accounts the full totals refresh touches in parallel.
func NewAccountService(accountRepo portsrepo.AccountRepositoryWithTx, txnRepo portsrepo.TransactionRepositoryFacade, executor resilience.Executor, refreshConcurrency int) portssvc.AccountSvc {
	if refreshConcurrency < 1 {
		refreshConcurrency = 1
	}
	return &accountService{
		accountRepo:        accountRepo,
		txnRepo:            txnRepo,
		executor:           executor,
		refreshConcurrency: refreshConcurrency,
	}
}

func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) domain.ServiceResult[domain.Account] {
	if !req.AccountType.IsValid() {
		return domain.InvalidField[domain.Account]("accountType", "must be one of debit, credit, undefined")
	}

	now := time.Now().UTC()
	account := domain.Account{
		AccountNameOwner: req.AccountNameOwner,
		AccountType:      req.AccountType,
		ActiveStatus:     true,
		Moniker:          req.Moniker,
		Cleared:          decimal.Zero,
		Outstanding:      decimal.Zero,
		Future:           decimal.Zero,
		Totals:           decimal.Zero,
		AuditFields:      domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "failed to create account", "account_name_owner", req.AccountNameOwner)
		return domain.Classify[domain.Account](err)
	}

	s.LogInfo(ctx, "account created", "account_name_owner", account.AccountNameOwner)
	return domain.OK(account)
}

func (s *accountService) GetAccount(ctx context.Context, accountNameOwner string) domain.ServiceResult[domain.Account] {
	account, err := s.accountRepo.FindAccountByNameOwner(ctx, accountNameOwner)
	if err != nil {
		return domain.Classify[domain.Account](err)
	}
	return domain.OK(*account)
}

func (s *accountService) ListAccounts(ctx context.Context, params dto.ListAccountsParams) domain.ServiceResult[[]domain.Account] {
	accounts, err := s.accountRepo.ListAccounts(ctx, params.IncludeInactive, params.Limit, params.Offset)
	if err != nil {
		s.LogError(ctx, err, "failed to list accounts")
		return domain.Classify[[]domain.Account](err)
	}
	return domain.OK(accounts)
}

func (s *accountService) UpdateAccount(ctx context.Context, accountNameOwner string, req dto.UpdateAccountRequest) domain.ServiceResult[domain.Account] {
	account, err := s.accountRepo.FindAccountByNameOwner(ctx, accountNameOwner)
	if err != nil {
		return domain.Classify[domain.Account](err)
	}

	if req.AccountType != nil {
		if !req.AccountType.IsValid() {
			return domain.InvalidField[domain.Account]("accountType", "must be one of debit, credit, undefined")
		}
		account.AccountType = *req.AccountType
	}
	if req.Moniker != nil {
		account.Moniker = *req.Moniker
	}
	account.LastUpdatedAt = time.Now().UTC()

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "failed to update account", "account_name_owner", accountNameOwner)
		return domain.Classify[domain.Account](err)
	}
	return domain.OK(*account)
}

// ActivateAccount transitions the account to active. Runs under the retry
// executor; activating an already-active account is a no-op success.
func (s *accountService) ActivateAccount(ctx context.Context, accountNameOwner string) domain.ServiceResult[domain.Account] {
	return s.setActiveStatus(ctx, accountNameOwner, true, "activateAccount")
}

// DeactivateAccount transitions the account to inactive. Totals are preserved
// as-is until a later refresh.
func (s *accountService) DeactivateAccount(ctx context.Context, accountNameOwner string) domain.ServiceResult[domain.Account] {
	return s.setActiveStatus(ctx, accountNameOwner, false, "deactivateAccount")
}

func (s *accountService) setActiveStatus(ctx context.Context, accountNameOwner string, active bool, op string) domain.ServiceResult[domain.Account] {
	err := s.executor.Run(ctx, op, func(ctx context.Context) error {
		return s.accountRepo.SetActiveStatus(ctx, accountNameOwner, active, time.Now().UTC())
	})
	if err != nil {
		s.LogError(ctx, err, "lifecycle transition failed", "account_name_owner", accountNameOwner, "active", active)
		return domain.Classify[domain.Account](err)
	}

	account, err := s.accountRepo.FindAccountByNameOwner(ctx, accountNameOwner)
	if err != nil {
		return domain.Classify[domain.Account](err)
	}
	s.LogInfo(ctx, "account lifecycle transition", "account_name_owner", accountNameOwner, "active", active)
	return domain.OK(*account)
}

// RenameAccount re-keys the account and every transaction it owns in one
// storage transaction. The unique index on account_name_owner arbitrates
// collisions with concurrent creates or renames.
func (s *accountService) RenameAccount(ctx context.Context, oldName, newName string) domain.ServiceResult[domain.Account] {
	if oldName == newName {
		return domain.InvalidField[domain.Account]("newAccountNameOwner", "new name must differ from the current name")
	}

	tx, err := s.accountRepo.Begin(ctx)
	if err != nil {
		return domain.Classify[domain.Account](err)
	}
	defer func() { _ = s.accountRepo.Rollback(ctx, tx) }()

	now := time.Now().UTC()
	if err := s.accountRepo.RenameAccountInTx(ctx, tx, oldName, newName, now); err != nil {
		s.LogError(ctx, err, "failed to rename account", "old_name", oldName, "new_name", newName)
		return domain.Classify[domain.Account](err)
	}
	moved, err := s.txnRepo.ReassignAccountInTx(ctx, tx, oldName, newName)
	if err != nil {
		s.LogError(ctx, err, "failed to reassign transactions on rename", "old_name", oldName, "new_name", newName)
		return domain.Classify[domain.Account](err)
	}
	if err := s.accountRepo.Commit(ctx, tx); err != nil {
		return domain.Classify[domain.Account](err)
	}

	s.LogInfo(ctx, "account renamed", "old_name", oldName, "new_name", newName, "transactions_moved", moved)

	account, err := s.accountRepo.FindAccountByNameOwner(ctx, newName)
	if err != nil {
		return domain.Classify[domain.Account](err)
	}
	return domain.OK(*account)
}

// MergeAccounts folds source's ledger into target, deletes source, and
// recomputes target's totals, all in one storage transaction.
func (s *accountService) MergeAccounts(ctx context.Context, targetName, sourceName string) domain.ServiceResult[domain.Account] {
	if targetName == sourceName {
		return domain.InvalidField[domain.Account]("sourceAccountNameOwner", "cannot merge an account into itself")
	}

	tx, err := s.accountRepo.Begin(ctx)
	if err != nil {
		return domain.Classify[domain.Account](err)
	}
	defer func() { _ = s.accountRepo.Rollback(ctx, tx) }()

	// Lock both rows in a fixed order so concurrent merges cannot deadlock.
	first, second := targetName, sourceName
	if sourceName < targetName {
		first, second = sourceName, targetName
	}
	locked := make(map[string]*domain.Account, 2)
	for _, name := range []string{first, second} {
		account, err := s.accountRepo.FindAccountForUpdate(ctx, tx, name)
		if err != nil {
			return domain.Classify[domain.Account](err)
		}
		locked[name] = account
	}
	target := locked[targetName]

	moved, err := s.txnRepo.ReassignAccountInTx(ctx, tx, sourceName, targetName)
	if err != nil {
		s.LogError(ctx, err, "failed to fold ledger on merge", "target", targetName, "source", sourceName)
		return domain.Classify[domain.Account](err)
	}
	if err := s.accountRepo.DeleteAccountInTx(ctx, tx, sourceName); err != nil {
		return domain.Classify[domain.Account](err)
	}
	if err := s.writeTotalsInTx(ctx, tx, *target); err != nil {
		return domain.Classify[domain.Account](err)
	}
	if err := s.accountRepo.Commit(ctx, tx); err != nil {
		return domain.Classify[domain.Account](err)
	}

	s.LogInfo(ctx, "accounts merged", "target", targetName, "source", sourceName, "transactions_moved", moved)

	account, err := s.accountRepo.FindAccountByNameOwner(ctx, targetName)
	if err != nil {
		return domain.Classify[domain.Account](err)
	}
	return domain.OK(*account)
}

// PurgeAccount is the administrative hard delete: the account row and every
// transaction it owns are removed in one storage transaction. Returns the
// number of transactions deleted.
func (s *accountService) PurgeAccount(ctx context.Context, accountNameOwner string) domain.ServiceResult[int64] {
	tx, err := s.accountRepo.Begin(ctx)
	if err != nil {
		return domain.Classify[int64](err)
	}
	defer func() { _ = s.accountRepo.Rollback(ctx, tx) }()

	if _, err := s.accountRepo.FindAccountForUpdate(ctx, tx, accountNameOwner); err != nil {
		return domain.Classify[int64](err)
	}
	deleted, err := s.txnRepo.DeleteTransactionsByAccountInTx(ctx, tx, accountNameOwner)
	if err != nil {
		s.LogError(ctx, err, "failed to purge transactions", "account_name_owner", accountNameOwner)
		return domain.Classify[int64](err)
	}
	if err := s.accountRepo.DeleteAccountInTx(ctx, tx, accountNameOwner); err != nil {
		return domain.Classify[int64](err)
	}
	if err := s.accountRepo.Commit(ctx, tx); err != nil {
		return domain.Classify[int64](err)
	}

	s.LogInfo(ctx, "account purged", "account_name_owner", accountNameOwner, "transactions_deleted", deleted)
	return domain.OK(deleted)
}

// RefreshTotalsAll recomputes totals for every active account with bounded
// concurrency. Individual failures are logged and skipped; the pass is
// idempotent and safe to re-run at any time.
func (s *accountService) RefreshTotalsAll(ctx context.Context) {
	names, err := s.accountRepo.ListAccountNames(ctx, false)
	if err != nil {
		s.LogError(ctx, err, "totals refresh aborted, could not list accounts")
		return
	}

	var failures atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.refreshConcurrency)
	for _, name := range names {
		g.Go(func() error {
			err := s.executor.Run(gctx, "refreshAccountTotals", func(ctx context.Context) error {
				return s.refreshAccountTotals(ctx, name)
			})
			if err != nil {
				failures.Add(1)
				s.LogError(gctx, err, "totals refresh failed for account", "account_name_owner", name)
			}
			return nil
		})
	}
	_ = g.Wait()

	s.LogInfo(ctx, "totals refresh pass complete", "accounts", len(names), "failures", failures.Load())
}

// RefreshTotalsOne recomputes one account's totals inside a single storage
// transaction and returns the refreshed account.
func (s *accountService) RefreshTotalsOne(ctx context.Context, accountNameOwner string) domain.ServiceResult[domain.Account] {
	err := s.executor.Run(ctx, "refreshAccountTotals", func(ctx context.Context) error {
		return s.refreshAccountTotals(ctx, accountNameOwner)
	})
	if err != nil {
		s.LogError(ctx, err, "totals refresh failed", "account_name_owner", accountNameOwner)
		return domain.Classify[domain.Account](err)
	}

	account, err := s.accountRepo.FindAccountByNameOwner(ctx, accountNameOwner)
	if err != nil {
		return domain.Classify[domain.Account](err)
	}
	return domain.OK(*account)
}

// refreshAccountTotals locks the account row, sums its ledger per state and
// writes the new totals, all inside one storage transaction so the read and
// the write are atomic.
func (s *accountService) refreshAccountTotals(ctx context.Context, accountNameOwner string) error {
	tx, err := s.accountRepo.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = s.accountRepo.Rollback(ctx, tx) }()

	account, err := s.accountRepo.FindAccountForUpdate(ctx, tx, accountNameOwner)
	if err != nil {
		return err
	}
	if err := s.writeTotalsInTx(ctx, tx, *account); err != nil {
		return err
	}
	return s.accountRepo.Commit(ctx, tx)
}

// writeTotalsInTx sums the three summable states and persists the result for
// an already-locked account row.
func (s *accountService) writeTotalsInTx(ctx context.Context, tx pgx.Tx, account domain.Account) error {
	sums := make(map[domain.TransactionState]decimal.Decimal, 3)
	for _, state := range domain.SummableStates() {
		sum, err := s.txnRepo.SumAmountByAccountAndStateInTx(ctx, tx, account.AccountNameOwner, state)
		if err != nil {
			return fmt.Errorf("failed to sum %s transactions: %w", state, err)
		}
		sums[state] = sum
	}

	outstanding := sums[domain.TransactionStateOutstanding]
	paymentRequired := account.AccountType == domain.AccountTypeCredit && !outstanding.IsZero()

	return s.accountRepo.UpdateAccountTotalsInTx(ctx, tx,
		account.AccountNameOwner,
		sums[domain.TransactionStateCleared],
		outstanding,
		sums[domain.TransactionStateFuture],
		paymentRequired,
		time.Now().UTC(),
	)
}
