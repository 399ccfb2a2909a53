package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finledger/finance-ledger/internal/apperrors"
	"github.com/finledger/finance-ledger/internal/core/domain"
	portsrepo "github.com/finledger/finance-ledger/internal/core/ports/repositories"
	portssvc "github.com/finledger/finance-ledger/internal/core/ports/services"
	"github.com/finledger/finance-ledger/internal/dto"
)

type transactionService struct {
	BaseService
	txnRepo      portsrepo.TransactionRepositoryFacade
	accountRepo  portsrepo.AccountReader
	categoryRepo portsrepo.CategoryRepositoryFacade
}

// NewTransactionService creates the ledger transaction service.
func NewTransactionService(txnRepo portsrepo.TransactionRepositoryFacade, accountRepo portsrepo.AccountReader, categoryRepo portsrepo.CategoryRepositoryFacade) portssvc.TransactionSvc {
	return &transactionService{
		txnRepo:      txnRepo,
		accountRepo:  accountRepo,
		categoryRepo: categoryRepo,
	}
}

func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) domain.ServiceResult[domain.Transaction] {
	if !req.TransactionState.IsValid() {
		return domain.InvalidField[domain.Transaction]("transactionState", "unknown transaction state")
	}
	if _, err := s.accountRepo.FindAccountByNameOwner(ctx, req.AccountNameOwner); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.InvalidField[domain.Transaction]("accountNameOwner", "account does not exist")
		}
		return domain.Classify[domain.Transaction](err)
	}
	if req.Category != "" {
		if err := s.ensureCategory(ctx, req.Category); err != nil {
			return domain.Classify[domain.Transaction](err)
		}
	}

	now := time.Now().UTC()
	txn := domain.Transaction{
		GUID:             uuid.NewString(),
		AccountNameOwner: req.AccountNameOwner,
		TransactionDate:  req.TransactionDate,
		Description:      req.Description,
		Category:         req.Category,
		Amount:           req.Amount,
		TransactionState: req.TransactionState,
		Notes:            req.Notes,
		ActiveStatus:     true,
		AuditFields:      domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "failed to create transaction", "account_name_owner", req.AccountNameOwner)
		return domain.Classify[domain.Transaction](err)
	}

	s.LogInfo(ctx, "transaction created", "guid", txn.GUID, "account_name_owner", txn.AccountNameOwner)
	return domain.OK(txn)
}

// ensureCategory creates the category on first use. A concurrent create
// surfacing as ErrDuplicate is fine; the category exists either way.
func (s *transactionService) ensureCategory(ctx context.Context, categoryName string) error {
	_, err := s.categoryRepo.FindCategoryByName(ctx, categoryName)
	if err == nil {
		return nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return err
	}

	now := time.Now().UTC()
	saveErr := s.categoryRepo.SaveCategory(ctx, domain.Category{
		CategoryName: categoryName,
		ActiveStatus: true,
		AuditFields:  domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	})
	if saveErr != nil && !errors.Is(saveErr, apperrors.ErrDuplicate) {
		return saveErr
	}
	return nil
}

func (s *transactionService) GetTransaction(ctx context.Context, guid string) domain.ServiceResult[domain.Transaction] {
	txn, err := s.txnRepo.FindTransactionByGUID(ctx, guid)
	if err != nil {
		return domain.Classify[domain.Transaction](err)
	}
	return domain.OK(*txn)
}

func (s *transactionService) ListTransactionsByAccount(ctx context.Context, accountNameOwner string, params dto.ListTransactionsParams) domain.ServiceResult[[]domain.Transaction] {
	if _, err := s.accountRepo.FindAccountByNameOwner(ctx, accountNameOwner); err != nil {
		return domain.Classify[[]domain.Transaction](err)
	}
	txns, err := s.txnRepo.ListTransactionsByAccount(ctx, accountNameOwner, params.Limit, params.Offset)
	if err != nil {
		s.LogError(ctx, err, "failed to list transactions", "account_name_owner", accountNameOwner)
		return domain.Classify[[]domain.Transaction](err)
	}
	return domain.OK(txns)
}

func (s *transactionService) UpdateTransaction(ctx context.Context, guid string, req dto.UpdateTransactionRequest) domain.ServiceResult[domain.Transaction] {
	txn, err := s.txnRepo.FindTransactionByGUID(ctx, guid)
	if err != nil {
		return domain.Classify[domain.Transaction](err)
	}

	if req.TransactionDate != nil {
		txn.TransactionDate = *req.TransactionDate
	}
	if req.Description != nil {
		txn.Description = *req.Description
	}
	if req.Category != nil {
		if *req.Category != "" {
			if err := s.ensureCategory(ctx, *req.Category); err != nil {
				return domain.Classify[domain.Transaction](err)
			}
		}
		txn.Category = *req.Category
	}
	if req.Amount != nil {
		txn.Amount = *req.Amount
	}
	if req.TransactionState != nil {
		if !req.TransactionState.IsValid() {
			return domain.InvalidField[domain.Transaction]("transactionState", "unknown transaction state")
		}
		txn.TransactionState = *req.TransactionState
	}
	if req.Notes != nil {
		txn.Notes = *req.Notes
	}
	txn.LastUpdatedAt = time.Now().UTC()

	if err := s.txnRepo.UpdateTransaction(ctx, *txn); err != nil {
		s.LogError(ctx, err, "failed to update transaction", "guid", guid)
		return domain.Classify[domain.Transaction](err)
	}
	return domain.OK(*txn)
}

func (s *transactionService) DeleteTransaction(ctx context.Context, guid string) domain.ServiceResult[bool] {
	if err := s.txnRepo.DeleteTransactionByGUID(ctx, guid); err != nil {
		return domain.Classify[bool](err)
	}
	s.LogInfo(ctx, "transaction deleted", "guid", guid)
	return domain.OK(true)
}

// SumByState is a pure aggregation query. An account with no matching
// transactions sums to zero; NotFound is reserved for a missing account.
func (s *transactionService) SumByState(ctx context.Context, accountNameOwner string, state domain.TransactionState) domain.ServiceResult[decimal.Decimal] {
	if !state.IsSummable() {
		return domain.InvalidField[decimal.Decimal]("transactionState", "must be one of cleared, outstanding, future")
	}
	if _, err := s.accountRepo.FindAccountByNameOwner(ctx, accountNameOwner); err != nil {
		return domain.Classify[decimal.Decimal](err)
	}

	sum, err := s.txnRepo.SumAmountByAccountAndState(ctx, accountNameOwner, state)
	if err != nil {
		s.LogError(ctx, err, "failed to sum transactions", "account_name_owner", accountNameOwner, "state", state)
		return domain.Classify[decimal.Decimal](err)
	}
	return domain.OK(sum)
}

// MergeDescriptions folds every transaction carrying source into target.
func (s *transactionService) MergeDescriptions(ctx context.Context, targetDescription, sourceDescription string) domain.ServiceResult[int64] {
	if targetDescription == sourceDescription {
		return domain.InvalidField[int64]("sourceDescription", "source and target descriptions must differ")
	}

	updated, err := s.txnRepo.RewriteDescription(ctx, sourceDescription, targetDescription)
	if err != nil {
		s.LogError(ctx, err, "failed to merge descriptions", "target", targetDescription, "source", sourceDescription)
		return domain.Classify[int64](err)
	}
	s.LogInfo(ctx, "descriptions merged", "target", targetDescription, "source", sourceDescription, "updated", updated)
	return domain.OK(updated)
}
