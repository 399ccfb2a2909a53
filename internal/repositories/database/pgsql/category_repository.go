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

type PgxCategoryRepository struct {
	BaseRepository
}

// NewCategoryRepository creates a new repository for transaction categories.
func NewCategoryRepository(pool *pgxpool.Pool) portsrepo.CategoryRepositoryFacade {
	return &PgxCategoryRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.CategoryRepositoryFacade = (*PgxCategoryRepository)(nil)

func toDomainCategory(m models.Category) domain.Category {
	return domain.Category{
		CategoryName: m.CategoryName,
		ActiveStatus: m.ActiveStatus,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

// SaveCategory inserts a new category.
func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	query := `
		INSERT INTO categories (category_name, active_status, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4);
	`
	_, err := r.Pool.Exec(ctx, query, category.CategoryName, category.ActiveStatus, category.CreatedAt, category.LastUpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: category %s already exists", apperrors.ErrDuplicate, category.CategoryName)
		}
		return fmt.Errorf("failed to save category %s: %w", category.CategoryName, err)
	}
	return nil
}

// FindCategoryByName retrieves a category by its unique name.
func (r *PgxCategoryRepository) FindCategoryByName(ctx context.Context, categoryName string) (*domain.Category, error) {
	query := `
		SELECT category_name, active_status, created_at, last_updated_at
		FROM categories
		WHERE category_name = $1;
	`
	var m models.Category
	err := r.Pool.QueryRow(ctx, query, categoryName).Scan(&m.CategoryName, &m.ActiveStatus, &m.CreatedAt, &m.LastUpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find category %s: %w", categoryName, err)
	}
	cat := toDomainCategory(m)
	return &cat, nil
}

// ListCategories retrieves categories ordered by name.
func (r *PgxCategoryRepository) ListCategories(ctx context.Context, includeInactive bool) ([]domain.Category, error) {
	query := `
		SELECT category_name, active_status, created_at, last_updated_at
		FROM categories
		WHERE active_status = TRUE OR $1
		ORDER BY category_name;
	`
	rows, err := r.Pool.Query(ctx, query, includeInactive)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var m models.Category
		if err := rows.Scan(&m.CategoryName, &m.ActiveStatus, &m.CreatedAt, &m.LastUpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		categories = append(categories, toDomainCategory(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category rows: %w", err)
	}
	return categories, nil
}

// DeleteCategoryByName hard-deletes a category.
func (r *PgxCategoryRepository) DeleteCategoryByName(ctx context.Context, categoryName string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM categories WHERE category_name = $1;`, categoryName)
	if err != nil {
		return fmt.Errorf("failed to delete category %s: %w", categoryName, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteCategoryInTx hard-deletes a category inside tx, used by merges after
// the category's transactions have been re-pointed.
func (r *PgxCategoryRepository) DeleteCategoryInTx(ctx context.Context, tx pgx.Tx, categoryName string) error {
	cmdTag, err := tx.Exec(ctx, `DELETE FROM categories WHERE category_name = $1;`, categoryName)
	if err != nil {
		return fmt.Errorf("failed to delete category %s: %w", categoryName, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
