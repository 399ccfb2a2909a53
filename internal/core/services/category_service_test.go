package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/finledger/finance-ledger/internal/apperrors"
	"github.com/finledger/finance-ledger/internal/core/domain"
	portssvc "github.com/finledger/finance-ledger/internal/core/ports/services"
	"github.com/finledger/finance-ledger/internal/core/services"
	"github.com/finledger/finance-ledger/internal/dto"
)

type CategoryServiceTestSuite struct {
	suite.Suite
	categoryRepo *MockCategoryRepository
	txnRepo      *MockTransactionRepository
	service      portssvc.CategorySvc
}

func (s *CategoryServiceTestSuite) SetupTest() {
	s.categoryRepo = new(MockCategoryRepository)
	s.txnRepo = new(MockTransactionRepository)
	s.service = services.NewCategoryService(s.categoryRepo, s.txnRepo)
}

func TestCategoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CategoryServiceTestSuite))
}

func (s *CategoryServiceTestSuite) TestCreateCategory_Success() {
	ctx := context.Background()
	s.categoryRepo.On("SaveCategory", ctx, mock.AnythingOfType("domain.Category")).Return(nil).Once()

	res := s.service.CreateCategory(ctx, dto.CreateCategoryRequest{CategoryName: "groceries"})

	s.Require().True(res.IsSuccess())
	s.Equal("groceries", res.Data().CategoryName)
	s.True(res.Data().ActiveStatus)
}

func (s *CategoryServiceTestSuite) TestCreateCategory_Duplicate() {
	ctx := context.Background()
	s.categoryRepo.On("SaveCategory", ctx, mock.AnythingOfType("domain.Category")).
		Return(apperrors.ErrDuplicate).Once()

	res := s.service.CreateCategory(ctx, dto.CreateCategoryRequest{CategoryName: "groceries"})

	s.Equal(domain.ResultBusinessError, res.Kind())
	s.Equal("conflict", res.Code())
}

func (s *CategoryServiceTestSuite) TestMergeCategories_Success() {
	ctx := context.Background()
	tx := stubTx{}
	target := &domain.Category{CategoryName: "dining", ActiveStatus: true}
	source := &domain.Category{CategoryName: "restaurants", ActiveStatus: true}

	s.categoryRepo.On("FindCategoryByName", ctx, "dining").Return(target, nil).Once()
	s.categoryRepo.On("FindCategoryByName", ctx, "restaurants").Return(source, nil).Once()
	s.categoryRepo.On("Begin", ctx).Return(tx, nil).Once()
	s.txnRepo.On("ReassignCategoryInTx", ctx, tx, "restaurants", "dining").
		Return(int64(14), nil).Once()
	s.categoryRepo.On("DeleteCategoryInTx", ctx, tx, "restaurants").Return(nil).Once()
	s.categoryRepo.On("Commit", ctx, tx).Return(nil).Once()
	s.categoryRepo.On("Rollback", ctx, tx).Return(nil).Once()

	res := s.service.MergeCategories(ctx, "dining", "restaurants")

	s.Require().True(res.IsSuccess())
	s.Equal("dining", res.Data().CategoryName)
	s.categoryRepo.AssertExpectations(s.T())
	s.txnRepo.AssertExpectations(s.T())
}

func (s *CategoryServiceTestSuite) TestMergeCategories_MissingSource() {
	ctx := context.Background()
	target := &domain.Category{CategoryName: "dining"}

	s.categoryRepo.On("FindCategoryByName", ctx, "dining").Return(target, nil).Once()
	s.categoryRepo.On("FindCategoryByName", ctx, "restaurants").
		Return(nil, apperrors.ErrNotFound).Once()

	res := s.service.MergeCategories(ctx, "dining", "restaurants")

	s.Equal(domain.ResultNotFound, res.Kind())
	s.categoryRepo.AssertNotCalled(s.T(), "Begin", ctx)
}

func (s *CategoryServiceTestSuite) TestMergeCategories_SelfMergeRejected() {
	res := s.service.MergeCategories(context.Background(), "dining", "dining")

	s.Equal(domain.ResultValidationError, res.Kind())
}
