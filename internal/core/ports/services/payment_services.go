package services

import (
	"context"

	"github.com/finledger/finance-ledger/internal/core/domain"
	"github.com/finledger/finance-ledger/internal/dto"
)

// PaymentSvc creates and removes payments together with their paired ledger
// transactions.
type PaymentSvc interface {
	CreatePayment(ctx context.Context, req dto.CreatePaymentRequest) domain.ServiceResult[domain.Payment]
	ListPayments(ctx context.Context, params dto.ListParams) domain.ServiceResult[[]domain.Payment]
	DeletePayment(ctx context.Context, paymentID string) domain.ServiceResult[bool]
}

// TransferSvc creates and removes transfers together with their paired ledger
// transactions.
type TransferSvc interface {
	CreateTransfer(ctx context.Context, req dto.CreateTransferRequest) domain.ServiceResult[domain.Transfer]
	ListTransfers(ctx context.Context, params dto.ListParams) domain.ServiceResult[[]domain.Transfer]
	DeleteTransfer(ctx context.Context, transferID string) domain.ServiceResult[bool]
}
