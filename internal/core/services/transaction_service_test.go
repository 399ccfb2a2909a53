package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/finledger/finance-ledger/internal/apperrors"
	"github.com/finledger/finance-ledger/internal/core/domain"
	portssvc "github.com/finledger/finance-ledger/internal/core/ports/services"
	"github.com/finledger/finance-ledger/internal/core/services"
	"github.com/finledger/finance-ledger/internal/dto"
)

type TransactionServiceTestSuite struct {
	suite.Suite
	txnRepo      *MockTransactionRepository
	accountRepo  *MockAccountRepository
	categoryRepo *MockCategoryRepository
	service      portssvc.TransactionSvc
}

func (s *TransactionServiceTestSuite) SetupTest() {
	s.txnRepo = new(MockTransactionRepository)
	s.accountRepo = new(MockAccountRepository)
	s.categoryRepo = new(MockCategoryRepository)
	s.service = services.NewTransactionService(s.txnRepo, s.accountRepo, s.categoryRepo)
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_Success() {
	ctx := context.Background()
	account := &domain.Account{AccountNameOwner: "chase_brian", ActiveStatus: true}
	req := dto.CreateTransactionRequest{
		AccountNameOwner: "chase_brian",
		TransactionDate:  time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Description:      "grocery store",
		Category:         "groceries",
		Amount:           decimal.NewFromFloat(-42.17),
		TransactionState: domain.TransactionStateOutstanding,
	}

	s.accountRepo.On("FindAccountByNameOwner", ctx, "chase_brian").Return(account, nil).Once()
	s.categoryRepo.On("FindCategoryByName", ctx, "groceries").
		Return(&domain.Category{CategoryName: "groceries", ActiveStatus: true}, nil).Once()
	s.txnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()

	res := s.service.CreateTransaction(ctx, req)

	s.Require().True(res.IsSuccess())
	s.NotEmpty(res.Data().GUID)
	s.Equal("grocery store", res.Data().Description)
	s.True(res.Data().ActiveStatus)
	s.txnRepo.AssertExpectations(s.T())
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_AutoCreatesCategory() {
	ctx := context.Background()
	account := &domain.Account{AccountNameOwner: "chase_brian", ActiveStatus: true}
	req := dto.CreateTransactionRequest{
		AccountNameOwner: "chase_brian",
		TransactionDate:  time.Now(),
		Description:      "new cafe",
		Category:         "dining",
		Amount:           decimal.NewFromFloat(-8.00),
		TransactionState: domain.TransactionStateOutstanding,
	}

	s.accountRepo.On("FindAccountByNameOwner", ctx, "chase_brian").Return(account, nil).Once()
	s.categoryRepo.On("FindCategoryByName", ctx, "dining").Return(nil, apperrors.ErrNotFound).Once()
	s.categoryRepo.On("SaveCategory", ctx, mock.AnythingOfType("domain.Category")).Return(nil).Once()
	s.txnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()

	res := s.service.CreateTransaction(ctx, req)

	s.Require().True(res.IsSuccess())
	s.categoryRepo.AssertExpectations(s.T())
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_UnknownAccount() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		AccountNameOwner: "ghost_nobody",
		TransactionDate:  time.Now(),
		Description:      "orphan",
		Amount:           decimal.NewFromFloat(1.00),
		TransactionState: domain.TransactionStateFuture,
	}

	s.accountRepo.On("FindAccountByNameOwner", ctx, "ghost_nobody").
		Return(nil, apperrors.ErrNotFound).Once()

	res := s.service.CreateTransaction(ctx, req)

	s.Equal(domain.ResultValidationError, res.Kind())
	s.Contains(res.FieldErrors(), "accountNameOwner")
	s.txnRepo.AssertNotCalled(s.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_DuplicateEntry() {
	ctx := context.Background()
	account := &domain.Account{AccountNameOwner: "chase_brian", ActiveStatus: true}
	req := dto.CreateTransactionRequest{
		AccountNameOwner: "chase_brian",
		TransactionDate:  time.Now(),
		Description:      "same again",
		Amount:           decimal.NewFromFloat(-5.00),
		TransactionState: domain.TransactionStateCleared,
	}

	s.accountRepo.On("FindAccountByNameOwner", ctx, "chase_brian").Return(account, nil).Once()
	s.txnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).
		Return(apperrors.ErrDuplicate).Once()

	res := s.service.CreateTransaction(ctx, req)

	s.Equal(domain.ResultBusinessError, res.Kind())
	s.Equal("conflict", res.Code())
}

func (s *TransactionServiceTestSuite) TestUpdateTransaction_StateCorrection() {
	ctx := context.Background()
	existing := &domain.Transaction{
		GUID:             "guid-1",
		AccountNameOwner: "chase_brian",
		Description:      "grocery store",
		Amount:           decimal.NewFromFloat(-42.17),
		TransactionState: domain.TransactionStateOutstanding,
		ActiveStatus:     true,
	}
	cleared := domain.TransactionStateCleared

	s.txnRepo.On("FindTransactionByGUID", ctx, "guid-1").Return(existing, nil).Once()
	s.txnRepo.On("UpdateTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.GUID == "guid-1" && txn.TransactionState == domain.TransactionStateCleared
	})).Return(nil).Once()

	res := s.service.UpdateTransaction(ctx, "guid-1", dto.UpdateTransactionRequest{TransactionState: &cleared})

	s.Require().True(res.IsSuccess())
	s.Equal(domain.TransactionStateCleared, res.Data().TransactionState)
}

func (s *TransactionServiceTestSuite) TestSumByState_ZeroForNoMatches() {
	ctx := context.Background()
	account := &domain.Account{AccountNameOwner: "chase_brian"}

	s.accountRepo.On("FindAccountByNameOwner", ctx, "chase_brian").Return(account, nil).Once()
	s.txnRepo.On("SumAmountByAccountAndState", ctx, "chase_brian", domain.TransactionStateFuture).
		Return(decimal.Zero, nil).Once()

	res := s.service.SumByState(ctx, "chase_brian", domain.TransactionStateFuture)

	s.Require().True(res.IsSuccess())
	s.True(res.Data().IsZero())
}

func (s *TransactionServiceTestSuite) TestSumByState_RejectsUndefinedState() {
	res := s.service.SumByState(context.Background(), "chase_brian", domain.TransactionStateUndefined)

	s.Equal(domain.ResultValidationError, res.Kind())
	s.Contains(res.FieldErrors(), "transactionState")
}

func (s *TransactionServiceTestSuite) TestMergeDescriptions_Success() {
	ctx := context.Background()
	s.txnRepo.On("RewriteDescription", ctx, "amazon.com", "amazon").
		Return(int64(9), nil).Once()

	res := s.service.MergeDescriptions(ctx, "amazon", "amazon.com")

	s.Require().True(res.IsSuccess())
	s.Equal(int64(9), res.Data())
}

func (s *TransactionServiceTestSuite) TestMergeDescriptions_SameDescriptionRejected() {
	res := s.service.MergeDescriptions(context.Background(), "amazon", "amazon")

	s.Equal(domain.ResultValidationError, res.Kind())
}
