package services

import (
	"context"
	"time"

	"github.com/finledger/finance-ledger/internal/core/domain"
	portsrepo "github.com/finledger/finance-ledger/internal/core/ports/repositories"
	portssvc "github.com/finledger/finance-ledger/internal/core/ports/services"
	"github.com/finledger/finance-ledger/internal/dto"
)

type categoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepositoryFacade
	txnRepo      portsrepo.TransactionRepositoryFacade
}

// NewCategoryService creates the category service.
func NewCategoryService(categoryRepo portsrepo.CategoryRepositoryFacade, txnRepo portsrepo.TransactionRepositoryFacade) portssvc.CategorySvc {
	return &categoryService{categoryRepo: categoryRepo, txnRepo: txnRepo}
}

func (s *categoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) domain.ServiceResult[domain.Category] {
	now := time.Now().UTC()
	category := domain.Category{
		CategoryName: req.CategoryName,
		ActiveStatus: true,
		AuditFields:  domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		s.LogError(ctx, err, "failed to create category", "category_name", req.CategoryName)
		return domain.Classify[domain.Category](err)
	}
	return domain.OK(category)
}

func (s *categoryService) GetCategory(ctx context.Context, categoryName string) domain.ServiceResult[domain.Category] {
	category, err := s.categoryRepo.FindCategoryByName(ctx, categoryName)
	if err != nil {
		return domain.Classify[domain.Category](err)
	}
	return domain.OK(*category)
}

func (s *categoryService) ListCategories(ctx context.Context, includeInactive bool) domain.ServiceResult[[]domain.Category] {
	categories, err := s.categoryRepo.ListCategories(ctx, includeInactive)
	if err != nil {
		s.LogError(ctx, err, "failed to list categories")
		return domain.Classify[[]domain.Category](err)
	}
	return domain.OK(categories)
}

func (s *categoryService) DeleteCategory(ctx context.Context, categoryName string) domain.ServiceResult[bool] {
	if err := s.categoryRepo.DeleteCategoryByName(ctx, categoryName); err != nil {
		return domain.Classify[bool](err)
	}
	s.LogInfo(ctx, "category deleted", "category_name", categoryName)
	return domain.OK(true)
}

// MergeCategories re-points source's transactions at target and removes
// source, atomically. Both categories must exist before the fold starts.
func (s *categoryService) MergeCategories(ctx context.Context, targetCategory, sourceCategory string) domain.ServiceResult[domain.Category] {
	if targetCategory == sourceCategory {
		return domain.InvalidField[domain.Category]("sourceCategory", "cannot merge a category into itself")
	}
	target, err := s.categoryRepo.FindCategoryByName(ctx, targetCategory)
	if err != nil {
		return domain.Classify[domain.Category](err)
	}
	if _, err := s.categoryRepo.FindCategoryByName(ctx, sourceCategory); err != nil {
		return domain.Classify[domain.Category](err)
	}

	tx, err := s.categoryRepo.Begin(ctx)
	if err != nil {
		return domain.Classify[domain.Category](err)
	}
	defer func() { _ = s.categoryRepo.Rollback(ctx, tx) }()

	moved, err := s.txnRepo.ReassignCategoryInTx(ctx, tx, sourceCategory, targetCategory)
	if err != nil {
		s.LogError(ctx, err, "failed to fold category", "target", targetCategory, "source", sourceCategory)
		return domain.Classify[domain.Category](err)
	}
	if err := s.categoryRepo.DeleteCategoryInTx(ctx, tx, sourceCategory); err != nil {
		return domain.Classify[domain.Category](err)
	}
	if err := s.categoryRepo.Commit(ctx, tx); err != nil {
		return domain.Classify[domain.Category](err)
	}

	s.LogInfo(ctx, "categories merged", "target", targetCategory, "source", sourceCategory, "transactions_moved", moved)
	return domain.OK(*target)
}
