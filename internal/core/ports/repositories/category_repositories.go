package repositories

import (
	"context"

	"github.com/finledger/finance-ledger/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// CategoryReader defines read operations for categories.
type CategoryReader interface {
	FindCategoryByName(ctx context.Context, categoryName string) (*domain.Category, error)
	ListCategories(ctx context.Context, includeInactive bool) ([]domain.Category, error)
}

// CategoryWriter defines write operations for categories.
type CategoryWriter interface {
	// SaveCategory persists a new category. Returns apperrors.ErrDuplicate on
	// a name collision.
	SaveCategory(ctx context.Context, category domain.Category) error
	DeleteCategoryByName(ctx context.Context, categoryName string) error
	DeleteCategoryInTx(ctx context.Context, tx pgx.Tx, categoryName string) error
}

// CategoryRepositoryFacade combines category interfaces with transaction control.
type CategoryRepositoryFacade interface {
	CategoryReader
	CategoryWriter
	TransactionManager
}
