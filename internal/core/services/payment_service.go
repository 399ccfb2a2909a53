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

type paymentService struct {
	BaseService
	paymentRepo portsrepo.PaymentRepositoryWithTx
	txnRepo     portsrepo.TransactionRepositoryFacade
	accountRepo portsrepo.AccountReader
}

// NewPaymentService creates the payment service.
func NewPaymentService(paymentRepo portsrepo.PaymentRepositoryWithTx, txnRepo portsrepo.TransactionRepositoryFacade, accountRepo portsrepo.AccountReader) portssvc.PaymentSvc {
	return &paymentService{paymentRepo: paymentRepo, txnRepo: txnRepo, accountRepo: accountRepo}
}

// CreatePayment settles a credit account from a funding debit account by
// inserting a matched pair of ledger transactions and the payment row in one
// storage transaction.
func (s *paymentService) CreatePayment(ctx context.Context, req dto.CreatePaymentRequest) domain.ServiceResult[domain.Payment] {
	if req.SourceAccount == req.DestinationAccount {
		return domain.InvalidField[domain.Payment]("destinationAccount", "source and destination accounts must differ")
	}
	if !req.Amount.IsPositive() {
		return domain.InvalidField[domain.Payment]("amount", "amount must be positive")
	}

	source, err := s.accountRepo.FindAccountByNameOwner(ctx, req.SourceAccount)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.InvalidField[domain.Payment]("sourceAccount", "account does not exist")
		}
		return domain.Classify[domain.Payment](err)
	}
	destination, err := s.accountRepo.FindAccountByNameOwner(ctx, req.DestinationAccount)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.InvalidField[domain.Payment]("destinationAccount", "account does not exist")
		}
		return domain.Classify[domain.Payment](err)
	}
	if destination.AccountType != domain.AccountTypeCredit {
		return domain.BusinessErr[domain.Payment]("payment destination must be a credit account", "business_rule")
	}
	if source.AccountType != domain.AccountTypeDebit {
		return domain.BusinessErr[domain.Payment]("payment source must be a debit account", "business_rule")
	}

	now := time.Now().UTC()
	payment := domain.Payment{
		PaymentID:          uuid.NewString(),
		SourceAccount:      req.SourceAccount,
		DestinationAccount: req.DestinationAccount,
		TransactionDate:    req.TransactionDate,
		Amount:             req.Amount,
		GUIDSource:         uuid.NewString(),
		GUIDDestination:    uuid.NewString(),
		ActiveStatus:       true,
		AuditFields:        domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}

	pair := pairedTransactions(payment.GUIDSource, payment.GUIDDestination,
		req.SourceAccount, req.DestinationAccount,
		req.TransactionDate, req.Amount, "payment", "bill_pay", now)

	tx, err := s.paymentRepo.Begin(ctx)
	if err != nil {
		return domain.Classify[domain.Payment](err)
	}
	defer func() { _ = s.paymentRepo.Rollback(ctx, tx) }()

	for _, txn := range pair {
		if err := s.txnRepo.SaveTransactionInTx(ctx, tx, txn); err != nil {
			s.LogError(ctx, err, "failed to save payment transaction", "guid", txn.GUID)
			return domain.Classify[domain.Payment](err)
		}
	}
	if err := s.paymentRepo.SavePaymentInTx(ctx, tx, payment); err != nil {
		s.LogError(ctx, err, "failed to save payment", "payment_id", payment.PaymentID)
		return domain.Classify[domain.Payment](err)
	}
	if err := s.paymentRepo.Commit(ctx, tx); err != nil {
		return domain.Classify[domain.Payment](err)
	}

	s.LogInfo(ctx, "payment created", "payment_id", payment.PaymentID, "source", payment.SourceAccount, "destination", payment.DestinationAccount)
	return domain.OK(payment)
}

func (s *paymentService) ListPayments(ctx context.Context, params dto.ListParams) domain.ServiceResult[[]domain.Payment] {
	payments, err := s.paymentRepo.ListPayments(ctx, params.Limit, params.Offset)
	if err != nil {
		s.LogError(ctx, err, "failed to list payments")
		return domain.Classify[[]domain.Payment](err)
	}
	return domain.OK(payments)
}

// DeletePayment removes the payment and both of its ledger transactions
// atomically.
func (s *paymentService) DeletePayment(ctx context.Context, paymentID string) domain.ServiceResult[bool] {
	payment, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		return domain.Classify[bool](err)
	}

	tx, err := s.paymentRepo.Begin(ctx)
	if err != nil {
		return domain.Classify[bool](err)
	}
	defer func() { _ = s.paymentRepo.Rollback(ctx, tx) }()

	if err := s.txnRepo.DeleteTransactionsByGUIDsInTx(ctx, tx, []string{payment.GUIDSource, payment.GUIDDestination}); err != nil {
		s.LogError(ctx, err, "failed to delete payment transactions", "payment_id", paymentID)
		return domain.Classify[bool](err)
	}
	if err := s.paymentRepo.DeletePaymentInTx(ctx, tx, paymentID); err != nil {
		return domain.Classify[bool](err)
	}
	if err := s.paymentRepo.Commit(ctx, tx); err != nil {
		return domain.Classify[bool](err)
	}

	s.LogInfo(ctx, "payment deleted", "payment_id", paymentID)
	return domain.OK(true)
}

// pairedTransactions builds the matched ledger entries backing a payment or
// transfer. The source entry carries the negated amount, the destination the
// positive one, so both accounts' totals stay consistent after a refresh.
func pairedTransactions(guidSource, guidDestination, sourceAccount, destinationAccount string, date time.Time, amount decimal.Decimal, description, category string, now time.Time) [2]domain.Transaction {
	audit := domain.AuditFields{CreatedAt: now, LastUpdatedAt: now}
	return [2]domain.Transaction{
		{
			GUID:             guidSource,
			AccountNameOwner: sourceAccount,
			TransactionDate:  date,
			Description:      description,
			Category:         category,
			Amount:           amount.Neg(),
			TransactionState: domain.TransactionStateOutstanding,
			ActiveStatus:     true,
			AuditFields:      audit,
		},
		{
			GUID:             guidDestination,
			AccountNameOwner: destinationAccount,
			TransactionDate:  date,
			Description:      description,
			Category:         category,
			Amount:           amount,
			TransactionState: domain.TransactionStateOutstanding,
			ActiveStatus:     true,
			AuditFields:      audit,
		},
	}
}
