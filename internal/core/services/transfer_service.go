package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/finledger/finance-ledger/internal/apperrors"
	"github.com/finledger/finance-ledger/internal/core/domain"
	portsrepo "github.com/finledger/finance-ledger/internal/core/ports/repositories"
	portssvc "github.com/finledger/finance-ledger/internal/core/ports/services"
	"github.com/finledger/finance-ledger/internal/dto"
)

type transferService struct {
	BaseService
	transferRepo portsrepo.TransferRepositoryWithTx
	txnRepo      portsrepo.TransactionRepositoryFacade
	accountRepo  portsrepo.AccountReader
}

// NewTransferService creates the transfer service.
func NewTransferService(transferRepo portsrepo.TransferRepositoryWithTx, txnRepo portsrepo.TransactionRepositoryFacade, accountRepo portsrepo.AccountReader) portssvc.TransferSvc {
	return &transferService{transferRepo: transferRepo, txnRepo: txnRepo, accountRepo: accountRepo}
}

// CreateTransfer moves funds between two debit accounts via a matched pair of
// ledger transactions, inserted atomically with the transfer row.
func (s *transferService) CreateTransfer(ctx context.Context, req dto.CreateTransferRequest) domain.ServiceResult[domain.Transfer] {
	if req.SourceAccount == req.DestinationAccount {
		return domain.InvalidField[domain.Transfer]("destinationAccount", "source and destination accounts must differ")
	}
	if !req.Amount.IsPositive() {
		return domain.InvalidField[domain.Transfer]("amount", "amount must be positive")
	}

	for field, name := range map[string]string{
		"sourceAccount":      req.SourceAccount,
		"destinationAccount": req.DestinationAccount,
	} {
		account, err := s.accountRepo.FindAccountByNameOwner(ctx, name)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return domain.InvalidField[domain.Transfer](field, "account does not exist")
			}
			return domain.Classify[domain.Transfer](err)
		}
		if account.AccountType != domain.AccountTypeDebit {
			return domain.BusinessErr[domain.Transfer]("transfers move funds between debit accounts", "business_rule")
		}
	}

	now := time.Now().UTC()
	transfer := domain.Transfer{
		TransferID:         uuid.NewString(),
		SourceAccount:      req.SourceAccount,
		DestinationAccount: req.DestinationAccount,
		TransactionDate:    req.TransactionDate,
		Amount:             req.Amount,
		GUIDSource:         uuid.NewString(),
		GUIDDestination:    uuid.NewString(),
		ActiveStatus:       true,
		AuditFields:        domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}

	pair := pairedTransactions(transfer.GUIDSource, transfer.GUIDDestination,
		req.SourceAccount, req.DestinationAccount,
		req.TransactionDate, req.Amount, "transfer", "transfer", now)

	tx, err := s.transferRepo.Begin(ctx)
	if err != nil {
		return domain.Classify[domain.Transfer](err)
	}
	defer func() { _ = s.transferRepo.Rollback(ctx, tx) }()

	for _, txn := range pair {
		if err := s.txnRepo.SaveTransactionInTx(ctx, tx, txn); err != nil {
			s.LogError(ctx, err, "failed to save transfer transaction", "guid", txn.GUID)
			return domain.Classify[domain.Transfer](err)
		}
	}
	if err := s.transferRepo.SaveTransferInTx(ctx, tx, transfer); err != nil {
		s.LogError(ctx, err, "failed to save transfer", "transfer_id", transfer.TransferID)
		return domain.Classify[domain.Transfer](err)
	}
	if err := s.transferRepo.Commit(ctx, tx); err != nil {
		return domain.Classify[domain.Transfer](err)
	}

	s.LogInfo(ctx, "transfer created", "transfer_id", transfer.TransferID, "source", transfer.SourceAccount, "destination", transfer.DestinationAccount)
	return domain.OK(transfer)
}

func (s *transferService) ListTransfers(ctx context.Context, params dto.ListParams) domain.ServiceResult[[]domain.Transfer] {
	transfers, err := s.transferRepo.ListTransfers(ctx, params.Limit, params.Offset)
	if err != nil {
		s.LogError(ctx, err, "failed to list transfers")
		return domain.Classify[[]domain.Transfer](err)
	}
	return domain.OK(transfers)
}

// DeleteTransfer removes the transfer and both of its ledger transactions
// atomically.
func (s *transferService) DeleteTransfer(ctx context.Context, transferID string) domain.ServiceResult[bool] {
	transfer, err := s.transferRepo.FindTransferByID(ctx, transferID)
	if err != nil {
		return domain.Classify[bool](err)
	}

	tx, err := s.transferRepo.Begin(ctx)
	if err != nil {
		return domain.Classify[bool](err)
	}
	defer func() { _ = s.transferRepo.Rollback(ctx, tx) }()

	if err := s.txnRepo.DeleteTransactionsByGUIDsInTx(ctx, tx, []string{transfer.GUIDSource, transfer.GUIDDestination}); err != nil {
		s.LogError(ctx, err, "failed to delete transfer transactions", "transfer_id", transferID)
		return domain.Classify[bool](err)
	}
	if err := s.transferRepo.DeleteTransferInTx(ctx, tx, transferID); err != nil {
		return domain.Classify[bool](err)
	}
	if err := s.transferRepo.Commit(ctx, tx); err != nil {
		return domain.Classify[bool](err)
	}

	s.LogInfo(ctx, "transfer deleted", "transfer_id", transferID)
	return domain.OK(true)
}
