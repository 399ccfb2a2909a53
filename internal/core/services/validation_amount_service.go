package services

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/finledger/finance-ledger/internal/apperrors"
	"github.com/finledger/finance-ledger/internal/core/domain"
	portsrepo "github.com/finledger/finance-ledger/internal/core/ports/repositories"
	portssvc "github.com/finledger/finance-ledger/internal/core/ports/services"
	"github.com/finledger/finance-ledger/internal/dto"
	"github.com/finledger/finance-ledger/internal/platform/resilience"
)

type validationAmountService struct {
	BaseService
	vaRepo             portsrepo.ValidationAmountRepository
	accountRepo        portsrepo.AccountRepositoryWithTx
	executor           resilience.Executor
	refreshConcurrency int
}

// NewValidationAmountService creates the expected-balance snapshot service.
func NewValidationAmountService(vaRepo portsrepo.ValidationAmountRepository, accountRepo portsrepo.AccountRepositoryWithTx, executor resilience.Executor, refreshConcurrency int) portssvc.ValidationAmountSvc {
	if refreshConcurrency < 1 {
		refreshConcurrency = 1
	}
	return &validationAmountService{
		vaRepo:             vaRepo,
		accountRepo:        accountRepo,
		executor:           executor,
		refreshConcurrency: refreshConcurrency,
	}
}

func (s *validationAmountService) CreateValidationAmount(ctx context.Context, req dto.CreateValidationAmountRequest) domain.ServiceResult[domain.ValidationAmount] {
	if !req.TransactionState.IsSummable() {
		return domain.InvalidField[domain.ValidationAmount]("transactionState", "must be one of cleared, outstanding, future")
	}
	account, err := s.accountRepo.FindAccountByNameOwner(ctx, req.AccountNameOwner)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.InvalidField[domain.ValidationAmount]("accountNameOwner", "account does not exist")
		}
		return domain.Classify[domain.ValidationAmount](err)
	}

	now := time.Now().UTC()
	va := domain.ValidationAmount{
		ValidationID:     uuid.NewString(),
		AccountNameOwner: req.AccountNameOwner,
		TransactionState: req.TransactionState,
		Amount:           req.Amount,
		ValidationDate:   req.ValidationDate,
		ActiveStatus:     true,
		AuditFields:      domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}

	if err := s.vaRepo.SaveValidationAmount(ctx, va); err != nil {
		s.LogError(ctx, err, "failed to save validation amount", "account_name_owner", req.AccountNameOwner)
		return domain.Classify[domain.ValidationAmount](err)
	}

	// A cleared snapshot advances the account's last-validated marker right
	// away; the periodic reconciler would catch it on the next pass anyway.
	// A backdated snapshot must not regress the marker.
	if va.TransactionState == domain.TransactionStateCleared && va.ValidationDate.After(account.ValidationDate) {
		if err := s.accountRepo.UpdateValidationDate(ctx, va.AccountNameOwner, va.ValidationDate, now); err != nil {
			s.LogError(ctx, err, "failed to advance validation date", "account_name_owner", va.AccountNameOwner)
		}
	}

	s.LogInfo(ctx, "validation amount recorded", "account_name_owner", va.AccountNameOwner, "state", va.TransactionState)
	return domain.OK(va)
}

func (s *validationAmountService) ListValidationAmountsByAccount(ctx context.Context, accountNameOwner string) domain.ServiceResult[[]domain.ValidationAmount] {
	if _, err := s.accountRepo.FindAccountByNameOwner(ctx, accountNameOwner); err != nil {
		return domain.Classify[[]domain.ValidationAmount](err)
	}
	vas, err := s.vaRepo.ListValidationAmountsByAccount(ctx, accountNameOwner)
	if err != nil {
		s.LogError(ctx, err, "failed to list validation amounts", "account_name_owner", accountNameOwner)
		return domain.Classify[[]domain.ValidationAmount](err)
	}
	return domain.OK(vas)
}

// RefreshValidationDates writes the newest cleared-state snapshot timestamp
// onto every account's validation_date. Accounts without a cleared snapshot
// are skipped; failures are logged and do not abort the pass.
func (s *validationAmountService) RefreshValidationDates(ctx context.Context) {
	names, err := s.accountRepo.ListAccountNames(ctx, false)
	if err != nil {
		s.LogError(ctx, err, "validation date refresh aborted, could not list accounts")
		return
	}

	var failures atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.refreshConcurrency)
	for _, name := range names {
		g.Go(func() error {
			err := s.executor.Run(gctx, "refreshValidationDate", func(ctx context.Context) error {
				return s.refreshValidationDate(ctx, name)
			})
			if err != nil {
				var execErr *apperrors.ExecutionError
				if errors.As(err, &execErr) && errors.Is(execErr.Cause(), apperrors.ErrNotFound) {
					// No cleared snapshot for this account yet.
					return nil
				}
				failures.Add(1)
				s.LogError(gctx, err, "validation date refresh failed for account", "account_name_owner", name)
			}
			return nil
		})
	}
	_ = g.Wait()

	s.LogInfo(ctx, "validation date refresh pass complete", "accounts", len(names), "failures", failures.Load())
}

func (s *validationAmountService) refreshValidationDate(ctx context.Context, accountNameOwner string) error {
	latest, err := s.vaRepo.LatestByAccountAndState(ctx, accountNameOwner, domain.TransactionStateCleared)
	if err != nil {
		return err
	}
	return s.accountRepo.UpdateValidationDate(ctx, accountNameOwner, latest.ValidationDate, time.Now().UTC())
}
