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

const transferColumns = `transfer_id, source_account, destination_account, transaction_date, amount, guid_source, guid_destination, active_status, created_at, last_updated_at`

type PgxTransferRepository struct {
	BaseRepository
}

// NewTransferRepository creates a new repository for transfers.
func NewTransferRepository(pool *pgxpool.Pool) portsrepo.TransferRepositoryWithTx {
	return &PgxTransferRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.TransferRepositoryWithTx = (*PgxTransferRepository)(nil)

func toDomainTransfer(m models.Transfer) domain.Transfer {
	return domain.Transfer{
		TransferID:         m.TransferID,
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

func scanTransfer(row pgx.Row) (models.Transfer, error) {
	var m models.Transfer
	err := row.Scan(
		&m.TransferID,
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

// SaveTransferInTx inserts a transfer row inside tx, alongside its paired
// ledger transactions.
func (r *PgxTransferRepository) SaveTransferInTx(ctx context.Context, tx pgx.Tx, transfer domain.Transfer) error {
	query := `
		INSERT INTO transfers (` + transferColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := tx.Exec(ctx, query,
		transfer.TransferID,
		transfer.SourceAccount,
		transfer.DestinationAccount,
		transfer.TransactionDate,
		transfer.Amount,
		transfer.GUIDSource,
		transfer.GUIDDestination,
		transfer.ActiveStatus,
		transfer.CreatedAt,
		transfer.LastUpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: transfer %s already exists", apperrors.ErrDuplicate, transfer.TransferID)
		}
		return fmt.Errorf("failed to save transfer %s: %w", transfer.TransferID, err)
	}
	return nil
}

// FindTransferByID retrieves a transfer.
func (r *PgxTransferRepository) FindTransferByID(ctx context.Context, transferID string) (*domain.Transfer, error) {
	query := `
		SELECT ` + transferColumns + `
		FROM transfers
		WHERE transfer_id = $1;
	`
	m, err := scanTransfer(r.Pool.QueryRow(ctx, query, transferID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transfer %s: %w", transferID, err)
	}
	t := toDomainTransfer(m)
	return &t, nil
}

// ListTransfers retrieves transfers, newest first.
func (r *PgxTransferRepository) ListTransfers(ctx context.Context, limit int, offset int) ([]domain.Transfer, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT ` + transferColumns + `
		FROM transfers
		ORDER BY transaction_date DESC, transfer_id
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query transfers: %w", err)
	}
	defer rows.Close()

	transfers := []domain.Transfer{}
	for rows.Next() {
		m, err := scanTransfer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transfer row: %w", err)
		}
		transfers = append(transfers, toDomainTransfer(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transfer rows: %w", err)
	}
	return transfers, nil
}

// DeleteTransferInTx removes a transfer row inside tx, alongside its paired
// ledger transactions.
func (r *PgxTransferRepository) DeleteTransferInTx(ctx context.Context, tx pgx.Tx, transferID string) error {
	cmdTag, err := tx.Exec(ctx, `DELETE FROM transfers WHERE transfer_id = $1;`, transferID)
	if err != nil {
		return fmt.Errorf("failed to delete transfer %s: %w", transferID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
