package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/finledger/finance-ledger/internal/apperrors"
	"github.com/finledger/finance-ledger/internal/core/domain"
	portsrepo "github.com/finledger/finance-ledger/internal/core/ports/repositories"
	"github.com/finledger/finance-ledger/internal/models"
)

// accountColumns is the canonical select list for account rows.
const accountColumns = `account_name_owner, account_type, active_status, moniker, cleared, outstanding, future, totals, payment_required, validation_date, created_at, last_updated_at`

type PgxAccountRepository struct {
	BaseRepository
}

// NewAccountRepository creates a new repository for account data.
func NewAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryWithTx {
	return &PgxAccountRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.AccountRepositoryWithTx = (*PgxAccountRepository)(nil)

func toModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountNameOwner: d.AccountNameOwner,
		AccountType:      models.AccountType(d.AccountType),
		ActiveStatus:     d.ActiveStatus,
		Moniker:          d.Moniker,
		Cleared:          d.Cleared,
		Outstanding:      d.Outstanding,
		Future:           d.Future,
		Totals:           d.Totals,
		PaymentRequired:  d.PaymentRequired,
		ValidationDate:   d.ValidationDate,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

func toDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountNameOwner: m.AccountNameOwner,
		AccountType:      domain.AccountType(m.AccountType),
		ActiveStatus:     m.ActiveStatus,
		Moniker:          m.Moniker,
		Cleared:          m.Cleared,
		Outstanding:      m.Outstanding,
		Future:           m.Future,
		Totals:           m.Totals,
		PaymentRequired:  m.PaymentRequired,
		ValidationDate:   m.ValidationDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

// scanAccount scans one account row in accountColumns order.
func scanAccount(row pgx.Row) (models.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountNameOwner,
		&m.AccountType,
		&m.ActiveStatus,
		&m.Moniker,
		&m.Cleared,
		&m.Outstanding,
		&m.Future,
		&m.Totals,
		&m.PaymentRequired,
		&m.ValidationDate,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

// SaveAccount inserts a new account.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := toModelAccount(account)

	query := `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.AccountNameOwner,
		m.AccountType,
		m.ActiveStatus,
		m.Moniker,
		m.Cleared,
		m.Outstanding,
		m.Future,
		m.Totals,
		m.PaymentRequired,
		m.ValidationDate,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: account %s already exists", apperrors.ErrDuplicate, m.AccountNameOwner)
		}
		return fmt.Errorf("failed to save account %s: %w", m.AccountNameOwner, err)
	}
	return nil
}

// FindAccountByNameOwner retrieves an account by its owner-qualified name.
func (r *PgxAccountRepository) FindAccountByNameOwner(ctx context.Context, accountNameOwner string) (*domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE account_name_owner = $1;
	`
	m, err := scanAccount(r.Pool.QueryRow(ctx, query, accountNameOwner))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account %s: %w", accountNameOwner, err)
	}
	acc := toDomainAccount(m)
	return &acc, nil
}

// ListAccounts retrieves accounts ordered by name.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, includeInactive bool, limit int, offset int) ([]domain.Account, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE active_status = TRUE OR $1
		ORDER BY account_name_owner
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, includeInactive, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, toDomainAccount(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}
	return accounts, nil
}

// ListAccountNames returns owner-qualified account names.
func (r *PgxAccountRepository) ListAccountNames(ctx context.Context, includeInactive bool) ([]string, error) {
	query := `
		SELECT account_name_owner
		FROM accounts
		WHERE active_status = TRUE OR $1
		ORDER BY account_name_owner;
	`
	rows, err := r.Pool.Query(ctx, query, includeInactive)
	if err != nil {
		return nil, fmt.Errorf("failed to query account names: %w", err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan account name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account names: %w", err)
	}
	return names, nil
}

// UpdateAccount updates mutable account fields. Totals and active status have
// dedicated paths and are not touched here.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	m := toModelAccount(account)

	query := `
		UPDATE accounts
		SET account_type = $2, moniker = $3, last_updated_at = $4
		WHERE account_name_owner = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, m.AccountNameOwner, m.AccountType, m.Moniker, m.LastUpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update account %s: %w", m.AccountNameOwner, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SetActiveStatus flips the active flag. Writing the current value again is
// not an error, which makes activate/deactivate idempotent.
func (r *PgxAccountRepository) SetActiveStatus(ctx context.Context, accountNameOwner string, active bool, now time.Time) error {
	query := `
		UPDATE accounts
		SET active_status = $2, last_updated_at = $3
		WHERE account_name_owner = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, accountNameOwner, active, now)
	if err != nil {
		return fmt.Errorf("failed to set active status for account %s: %w", accountNameOwner, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateValidationDate writes the last-validated marker.
func (r *PgxAccountRepository) UpdateValidationDate(ctx context.Context, accountNameOwner string, validationDate time.Time, now time.Time) error {
	query := `
		UPDATE accounts
		SET validation_date = $2, last_updated_at = $3
		WHERE account_name_owner = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, accountNameOwner, validationDate, now)
	if err != nil {
		return fmt.Errorf("failed to update validation date for account %s: %w", accountNameOwner, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindAccountForUpdate selects the account row and locks it for the duration
// of tx, serializing concurrent refreshes and lifecycle transitions.
func (r *PgxAccountRepository) FindAccountForUpdate(ctx context.Context, tx pgx.Tx, accountNameOwner string) (*domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE account_name_owner = $1
		FOR UPDATE;
	`
	m, err := scanAccount(tx.QueryRow(ctx, query, accountNameOwner))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock account %s: %w", accountNameOwner, err)
	}
	acc := toDomainAccount(m)
	return &acc, nil
}

// UpdateAccountTotalsInTx writes the three per-state totals, their sum and the
// payment-required flag in one statement.
func (r *PgxAccountRepository) UpdateAccountTotalsInTx(ctx context.Context, tx pgx.Tx, accountNameOwner string, cleared, outstanding, future decimal.Decimal, paymentRequired bool, now time.Time) error {
	query := `
		UPDATE accounts
		SET cleared = $2, outstanding = $3, future = $4, totals = $5, payment_required = $6, last_updated_at = $7
		WHERE account_name_owner = $1;
	`
	totals := cleared.Add(outstanding).Add(future)
	cmdTag, err := tx.Exec(ctx, query, accountNameOwner, cleared, outstanding, future, totals, paymentRequired, now)
	if err != nil {
		return fmt.Errorf("failed to update totals for account %s: %w", accountNameOwner, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// RenameAccountInTx re-keys the account row. The unique index on
// account_name_owner is the final arbiter: a concurrent insert or rename
// targeting the same name surfaces here as ErrDuplicate.
func (r *PgxAccountRepository) RenameAccountInTx(ctx context.Context, tx pgx.Tx, oldName, newName string, now time.Time) error {
	query := `
		UPDATE accounts
		SET account_name_owner = $2, last_updated_at = $3
		WHERE account_name_owner = $1;
	`
	cmdTag, err := tx.Exec(ctx, query, oldName, newName, now)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: account %s already exists", apperrors.ErrDuplicate, newName)
		}
		return fmt.Errorf("failed to rename account %s to %s: %w", oldName, newName, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteAccountInTx hard-deletes the account row. Owned transactions must be
// removed or re-pointed first within the same tx.
func (r *PgxAccountRepository) DeleteAccountInTx(ctx context.Context, tx pgx.Tx, accountNameOwner string) error {
	cmdTag, err := tx.Exec(ctx, `DELETE FROM accounts WHERE account_name_owner = $1;`, accountNameOwner)
	if err != nil {
		return fmt.Errorf("failed to delete account %s: %w", accountNameOwner, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
