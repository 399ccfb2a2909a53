package dto

import (
	"time"

	"github.com/finledger/finance-ledger/internal/core/domain"
)

// CreateCategoryRequest defines the data needed to create a category.
type CreateCategoryRequest struct {
	CategoryName string `json:"categoryName" binding:"required"`
}

// MergeCategoriesRequest folds sourceCategory into targetCategory.
type MergeCategoriesRequest struct {
	TargetCategory string `json:"targetCategory" binding:"required"`
	SourceCategory string `json:"sourceCategory" binding:"required"`
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	CategoryName  string    `json:"categoryName"`
	ActiveStatus  bool      `json:"activeStatus"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToCategoryResponse converts a domain.Category to its response DTO.
func ToCategoryResponse(cat domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryName:  cat.CategoryName,
		ActiveStatus:  cat.ActiveStatus,
		CreatedAt:     cat.CreatedAt,
		LastUpdatedAt: cat.LastUpdatedAt,
	}
}

// ToListCategoriesResponse converts a slice of categories to DTOs.
func ToListCategoriesResponse(cats []domain.Category) []CategoryResponse {
	res := make([]CategoryResponse, len(cats))
	for i, cat := range cats {
		res[i] = ToCategoryResponse(cat)
	}
	return res
}
