package services

import (
	"context"

	"github.com/finledger/finance-ledger/internal/core/domain"
	"github.com/finledger/finance-ledger/internal/dto"
)

// CategorySvc owns category CRUD and the category merge, which follows the
// same atomic fold-then-remove pattern as the account merge.
type CategorySvc interface {
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) domain.ServiceResult[domain.Category]
	GetCategory(ctx context.Context, categoryName string) domain.ServiceResult[domain.Category]
	ListCategories(ctx context.Context, includeInactive bool) domain.ServiceResult[[]domain.Category]
	DeleteCategory(ctx context.Context, categoryName string) domain.ServiceResult[bool]
	MergeCategories(ctx context.Context, targetCategory, sourceCategory string) domain.ServiceResult[domain.Category]
}
