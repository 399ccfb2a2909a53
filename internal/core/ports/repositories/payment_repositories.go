package repositories

import (
	"context"

	"github.com/finledger/finance-ledger/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// PaymentRepository defines storage for payments.
type PaymentRepository interface {
	SavePaymentInTx(ctx context.Context, tx pgx.Tx, payment domain.Payment) error
	FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error)
	ListPayments(ctx context.Context, limit int, offset int) ([]domain.Payment, error)
	DeletePaymentInTx(ctx context.Context, tx pgx.Tx, paymentID string) error
}

// PaymentRepositoryWithTx extends PaymentRepository with transaction control.
type PaymentRepositoryWithTx interface {
	PaymentRepository
	TransactionManager
}

// TransferRepository defines storage for transfers.
type TransferRepository interface {
	SaveTransferInTx(ctx context.Context, tx pgx.Tx, transfer domain.Transfer) error
	FindTransferByID(ctx context.Context, transferID string) (*domain.Transfer, error)
	ListTransfers(ctx context.Context, limit int, offset int) ([]domain.Transfer, error)
	DeleteTransferInTx(ctx context.Context, tx pgx.Tx, transferID string) error
}

// TransferRepositoryWithTx extends TransferRepository with transaction control.
type TransferRepositoryWithTx interface {
	TransferRepository
	TransactionManager
}
