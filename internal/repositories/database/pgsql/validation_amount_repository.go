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

const validationAmountColumns = `validation_id, account_name_owner, transaction_state, amount, validation_date, active_status, created_at, last_updated_at`

type PgxValidationAmountRepository struct {
	BaseRepository
}

// NewValidationAmountRepository creates a new repository for expected-balance
// snapshots.
func NewValidationAmountRepository(pool *pgxpool.Pool) portsrepo.ValidationAmountRepository {
	return &PgxValidationAmountRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.ValidationAmountRepository = (*PgxValidationAmountRepository)(nil)

func toDomainValidationAmount(m models.ValidationAmount) domain.ValidationAmount {
	return domain.ValidationAmount{
		ValidationID:     m.ValidationID,
		AccountNameOwner: m.AccountNameOwner,
		TransactionState: domain.TransactionState(m.TransactionState),
		Amount:           m.Amount,
		ValidationDate:   m.ValidationDate,
		ActiveStatus:     m.ActiveStatus,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

func scanValidationAmount(row pgx.Row) (models.ValidationAmount, error) {
	var m models.ValidationAmount
	err := row.Scan(
		&m.ValidationID,
		&m.AccountNameOwner,
		&m.TransactionState,
		&m.Amount,
		&m.ValidationDate,
		&m.ActiveStatus,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

// SaveValidationAmount inserts a new snapshot.
func (r *PgxValidationAmountRepository) SaveValidationAmount(ctx context.Context, va domain.ValidationAmount) error {
	query := `
		INSERT INTO validation_amounts (` + validationAmountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		va.ValidationID,
		va.AccountNameOwner,
		va.TransactionState,
		va.Amount,
		va.ValidationDate,
		va.ActiveStatus,
		va.CreatedAt,
		va.LastUpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: validation amount %s already exists", apperrors.ErrDuplicate, va.ValidationID)
		}
		return fmt.Errorf("failed to save validation amount for account %s: %w", va.AccountNameOwner, err)
	}
	return nil
}

// ListValidationAmountsByAccount retrieves an account's snapshots, newest first.
func (r *PgxValidationAmountRepository) ListValidationAmountsByAccount(ctx context.Context, accountNameOwner string) ([]domain.ValidationAmount, error) {
	query := `
		SELECT ` + validationAmountColumns + `
		FROM validation_amounts
		WHERE account_name_owner = $1
		ORDER BY validation_date DESC, validation_id;
	`
	rows, err := r.Pool.Query(ctx, query, accountNameOwner)
	if err != nil {
		return nil, fmt.Errorf("failed to query validation amounts for account %s: %w", accountNameOwner, err)
	}
	defer rows.Close()

	vas := []domain.ValidationAmount{}
	for rows.Next() {
		m, err := scanValidationAmount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan validation amount row: %w", err)
		}
		vas = append(vas, toDomainValidationAmount(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating validation amount rows: %w", err)
	}
	return vas, nil
}

// LatestByAccountAndState retrieves the most recent active snapshot for one
// (account, state) pair.
func (r *PgxValidationAmountRepository) LatestByAccountAndState(ctx context.Context, accountNameOwner string, state domain.TransactionState) (*domain.ValidationAmount, error) {
	query := `
		SELECT ` + validationAmountColumns + `
		FROM validation_amounts
		WHERE account_name_owner = $1 AND transaction_state = $2 AND active_status = TRUE
		ORDER BY validation_date DESC, created_at DESC
		LIMIT 1;
	`
	m, err := scanValidationAmount(r.Pool.QueryRow(ctx, query, accountNameOwner, state))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find latest validation amount for account %s: %w", accountNameOwner, err)
	}
	va := toDomainValidationAmount(m)
	return &va, nil
}
