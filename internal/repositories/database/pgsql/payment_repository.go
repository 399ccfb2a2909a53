package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/finledger/finance-ledger/internal/apperrors"
	"github.com/finledger/finance-ledger/internal/core/domain"
	portsrepo "github.com/finledger/finance-ledger/internal/core/ports/repositories"
	"github.com/finledger/finance-ledger/internal/models"
)

const paymentColumns = `payment_id, source_account, destination_account, transaction_date, amount, guid_source, guid_destination, active_status, created_at, last_updated_at`

type PgxPaymentRepository struct {
	BaseRepository
}

// NewPaymentRepository creates a new repository for payments.
func NewPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentRepositoryWithTx {
	return &PgxPaymentRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.PaymentRepositoryWithTx = (*PgxPaymentRepository)(nil)

func toDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID:          m.PaymentID,
		SourceAccount:      m.SourceAccount,
		DestinationAccount: m.DestinationAccount,
		TransactionDate:    m.TransactionDate,
		Amount:             m.Amount,
		GUIDSource:         m.GUIDSource,
		GUIDDestination:    m.GUIDDestination,
		ActiveStatus:       m.ActiveStatus,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

func scanPayment(row pgx.Row) (models.Payment, error) {
	var m models.Payment
	err := row.Scan(
		&m.PaymentID,
		&m.SourceAccount,
		&m.DestinationAccount,
		&m.TransactionDate,
		&m.Amount,
		&m.GUIDSource,
		&m.GUIDDestination,
		&m.ActiveStatus,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

// SavePaymentInTx inserts a payment row inside tx, alongside its paired
// ledger transactions.
func (r *PgxPaymentRepository) SavePaymentInTx(ctx context.Context, tx pgx.Tx, payment domain.Payment) error {
	query := `
		INSERT INTO payments (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := tx.Exec(ctx, query,
		payment.PaymentID,
		payment.SourceAccount,
		payment.DestinationAccount,
		payment.TransactionDate,
		payment.Amount,
		payment.GUIDSource,
		payment.GUIDDestination,
		payment.ActiveStatus,
		payment.CreatedAt,
		payment.LastUpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: payment %s already exists", apperrors.ErrDuplicate, payment.PaymentID)
		}
		return fmt.Errorf("failed to save payment %s: %w", payment.PaymentID, err)
	}
	return nil
}

// FindPaymentByID retrieves a payment.
func (r *PgxPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE payment_id = $1;
	`
	m, err := scanPayment(r.Pool.QueryRow(ctx, query, paymentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find payment %s: %w", paymentID, err)
	}
	p := toDomainPayment(m)
	return &p, nil
}

// ListPayments retrieves payments, newest first.
func (r *PgxPaymentRepository) ListPayments(ctx context.Context, limit int, offset int) ([]domain.Payment, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT ` + paymentColumns + `
		FROM payments
		ORDER BY transaction_date DESC, payment_id
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}
	defer rows.Close()

	payments := []domain.Payment{}
	for rows.Next() {
		m, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment row: %w", err)
		}
		payments = append(payments, toDomainPayment(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payment rows: %w", err)
	}
	return payments, nil
}

// DeletePaymentInTx removes a payment row inside tx, alongside its paired
// ledger transactions.
func (r *PgxPaymentRepository) DeletePaymentInTx(ctx context.Context, tx pgx.Tx, paymentID string) error {
	cmdTag, err := tx.Exec(ctx, `DELETE FROM payments WHERE payment_id = $1;`, paymentID)
	if err != nil {
		return fmt.Errorf("failed to delete payment %s: %w", paymentID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
