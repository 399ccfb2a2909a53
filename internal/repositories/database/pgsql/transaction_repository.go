package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/finledger/finance-ledger/internal/apperrors"
	"github.com/finledger/finance-ledger/internal/core/domain"
	portsrepo "github.com/finledger/finance-ledger/internal/core/ports/repositories"
	"github.com/finledger/finance-ledger/internal/models"
)

const transactionColumns = `guid, account_name_owner, transaction_date, description, category, amount, transaction_state, notes, active_status, created_at, last_updated_at`

type PgxTransactionRepository struct {
	BaseRepository
}

// NewTransactionRepository creates a new repository for ledger transactions.
func NewTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

func toModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		GUID:             d.GUID,
		AccountNameOwner: d.AccountNameOwner,
		TransactionDate:  d.TransactionDate,
		Description:      d.Description,
		Category:         d.Category,
		Amount:           d.Amount,
		TransactionState: models.TransactionState(d.TransactionState),
		Notes:            d.Notes,
		ActiveStatus:     d.ActiveStatus,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

func toDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		GUID:             m.GUID,
		AccountNameOwner: m.AccountNameOwner,
		TransactionDate:  m.TransactionDate,
		Description:      m.Description,
		Category:         m.Category,
		Amount:           m.Amount,
		TransactionState: domain.TransactionState(m.TransactionState),
		Notes:            m.Notes,
		ActiveStatus:     m.ActiveStatus,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.GUID,
		&m.AccountNameOwner,
		&m.TransactionDate,
		&m.Description,
		&m.Category,
		&m.Amount,
		&m.TransactionState,
		&m.Notes,
		&m.ActiveStatus,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

// SaveTransaction inserts a new ledger entry.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	return r.saveTransaction(ctx, r.Pool, txn)
}

// SaveTransactionInTx inserts a new ledger entry inside tx.
func (r *PgxTransactionRepository) SaveTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error {
	return r.saveTransaction(ctx, tx, txn)
}

// execer is the common surface of pgxpool.Pool and pgx.Tx used for writes.
type execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

func (r *PgxTransactionRepository) saveTransaction(ctx context.Context, q execer, txn domain.Transaction) error {
	m := toModelTransaction(txn)

	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := q.Exec(ctx, query,
		m.GUID,
		m.AccountNameOwner,
		m.TransactionDate,
		m.Description,
		m.Category,
		m.Amount,
		m.TransactionState,
		m.Notes,
		m.ActiveStatus,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: duplicate ledger entry for account %s", apperrors.ErrDuplicate, m.AccountNameOwner)
		}
		return fmt.Errorf("failed to save transaction %s: %w", m.GUID, err)
	}
	return nil
}

// FindTransactionByGUID retrieves a single transaction.
func (r *PgxTransactionRepository) FindTransactionByGUID(ctx context.Context, guid string) (*domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE guid = $1;
	`
	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, guid))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", guid, err)
	}
	txn := toDomainTransaction(m)
	return &txn, nil
}

// ListTransactionsByAccount retrieves one account's transactions, newest first.
func (r *PgxTransactionRepository) ListTransactionsByAccount(ctx context.Context, accountNameOwner string, limit int, offset int) ([]domain.Transaction, error) {
	if limit <= 0 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE account_name_owner = $1
		ORDER BY transaction_date DESC, guid
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, accountNameOwner, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for account %s: %w", accountNameOwner, err)
	}
	defer rows.Close()

	txns := []domain.Transaction{}
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, toDomainTransaction(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}
	return txns, nil
}

// SumAmountByAccountAndState sums active transaction amounts for an account
// restricted to one state. COALESCE keeps the empty set at zero.
func (r *PgxTransactionRepository) SumAmountByAccountAndState(ctx context.Context, accountNameOwner string, state domain.TransactionState) (decimal.Decimal, error) {
	return sumAmount(ctx, r.Pool, accountNameOwner, state)
}

// SumAmountByAccountAndStateInTx is SumAmountByAccountAndState inside tx.
func (r *PgxTransactionRepository) SumAmountByAccountAndStateInTx(ctx context.Context, tx pgx.Tx, accountNameOwner string, state domain.TransactionState) (decimal.Decimal, error) {
	return sumAmount(ctx, tx, accountNameOwner, state)
}

type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func sumAmount(ctx context.Context, q rowQuerier, accountNameOwner string, state domain.TransactionState) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE account_name_owner = $1 AND transaction_state = $2 AND active_status = TRUE;
	`
	var sum decimal.Decimal
	if err := q.QueryRow(ctx, query, accountNameOwner, state).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum %s transactions for account %s: %w", state, accountNameOwner, err)
	}
	return sum, nil
}

// UpdateTransaction updates mutable transaction fields.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	m := toModelTransaction(txn)

	query := `
		UPDATE transactions
		SET transaction_date = $2, description = $3, category = $4, amount = $5, transaction_state = $6, notes = $7, last_updated_at = $8
		WHERE guid = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.GUID,
		m.TransactionDate,
		m.Description,
		m.Category,
		m.Amount,
		m.TransactionState,
		m.Notes,
		m.LastUpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: duplicate ledger entry for account %s", apperrors.ErrDuplicate, m.AccountNameOwner)
		}
		return fmt.Errorf("failed to update transaction %s: %w", m.GUID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteTransactionByGUID hard-deletes a transaction.
func (r *PgxTransactionRepository) DeleteTransactionByGUID(ctx context.Context, guid string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM transactions WHERE guid = $1;`, guid)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", guid, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteTransactionsByGUIDsInTx hard-deletes a set of transactions inside tx.
func (r *PgxTransactionRepository) DeleteTransactionsByGUIDsInTx(ctx context.Context, tx pgx.Tx, guids []string) error {
	if len(guids) == 0 {
		return nil
	}
	_, err := tx.Exec(ctx, `DELETE FROM transactions WHERE guid = ANY($1);`, guids)
	if err != nil {
		return fmt.Errorf("failed to delete transactions: %w", err)
	}
	return nil
}

// ReassignAccountInTx re-points every transaction owned by oldName to newName.
// The dedupe index can reject the move when both accounts carry an identical
// entry; that surfaces as ErrDuplicate and rolls the whole operation back.
func (r *PgxTransactionRepository) ReassignAccountInTx(ctx context.Context, tx pgx.Tx, oldName, newName string) (int64, error) {
	cmdTag, err := tx.Exec(ctx, `UPDATE transactions SET account_name_owner = $2 WHERE account_name_owner = $1;`, oldName, newName)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%w: account %s already holds an identical ledger entry", apperrors.ErrDuplicate, newName)
		}
		return 0, fmt.Errorf("failed to reassign transactions from %s to %s: %w", oldName, newName, err)
	}
	return cmdTag.RowsAffected(), nil
}

// ReassignCategoryInTx rewrites the category on matching transactions.
func (r *PgxTransactionRepository) ReassignCategoryInTx(ctx context.Context, tx pgx.Tx, oldCategory, newCategory string) (int64, error) {
	cmdTag, err := tx.Exec(ctx, `UPDATE transactions SET category = $2 WHERE category = $1;`, oldCategory, newCategory)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%w: category rewrite would duplicate a ledger entry", apperrors.ErrDuplicate)
		}
		return 0, fmt.Errorf("failed to reassign category %s to %s: %w", oldCategory, newCategory, err)
	}
	return cmdTag.RowsAffected(), nil
}

// RewriteDescription folds one description into another across the ledger.
func (r *PgxTransactionRepository) RewriteDescription(ctx context.Context, oldDescription, newDescription string) (int64, error) {
	cmdTag, err := r.Pool.Exec(ctx, `UPDATE transactions SET description = $2 WHERE description = $1;`, oldDescription, newDescription)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%w: description rewrite would duplicate a ledger entry", apperrors.ErrDuplicate)
		}
		return 0, fmt.Errorf("failed to rewrite description %q to %q: %w", oldDescription, newDescription, err)
	}
	return cmdTag.RowsAffected(), nil
}

// DeleteTransactionsByAccountInTx removes all of an account's transactions.
func (r *PgxTransactionRepository) DeleteTransactionsByAccountInTx(ctx context.Context, tx pgx.Tx, accountNameOwner string) (int64, error) {
	cmdTag, err := tx.Exec(ctx, `DELETE FROM transactions WHERE account_name_owner = $1;`, accountNameOwner)
	if err != nil {
		return 0, fmt.Errorf("failed to delete transactions for account %s: %w", accountNameOwner, err)
	}
	return cmdTag.RowsAffected(), nil
}
