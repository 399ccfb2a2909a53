package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/finledger/finance-ledger/internal/apperrors"
	"github.com/finledger/finance-ledger/internal/core/domain"
	portssvc "github.com/finledger/finance-ledger/internal/core/ports/services"
	"github.com/finledger/finance-ledger/internal/core/services"
	"github.com/finledger/finance-ledger/internal/dto"
	"github.com/finledger/finance-ledger/internal/platform/resilience"
)

type AccountServiceTestSuite struct {
	suite.Suite
	accountRepo *MockAccountRepository
	txnRepo     *MockTransactionRepository
	service     portssvc.AccountSvc
}

func (s *AccountServiceTestSuite) SetupTest() {
	s.accountRepo = new(MockAccountRepository)
	s.txnRepo = new(MockTransactionRepository)
	s.service = services.NewAccountService(s.accountRepo, s.txnRepo, resilience.Executor{Attempts: 1}, 2)
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}

func (s *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		AccountNameOwner: "chase_brian",
		AccountType:      domain.AccountTypeCredit,
		Moniker:          "0435",
	}

	s.accountRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	res := s.service.CreateAccount(ctx, req)

	s.Require().True(res.IsSuccess())
	account := res.Data()
	s.Equal("chase_brian", account.AccountNameOwner)
	s.Equal(domain.AccountTypeCredit, account.AccountType)
	s.True(account.ActiveStatus)
	s.True(account.Totals.IsZero())
	s.accountRepo.AssertExpectations(s.T())
}

func (s *AccountServiceTestSuite) TestCreateAccount_DuplicateName() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		AccountNameOwner: "chase_brian",
		AccountType:      domain.AccountTypeDebit,
	}

	s.accountRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).
		Return(apperrors.ErrDuplicate).Once()

	res := s.service.CreateAccount(ctx, req)

	s.Equal(domain.ResultBusinessError, res.Kind())
	s.Equal("conflict", res.Code())
}

func (s *AccountServiceTestSuite) TestGetAccount_NotFound() {
	ctx := context.Background()
	s.accountRepo.On("FindAccountByNameOwner", ctx, "missing_nobody").
		Return(nil, apperrors.ErrNotFound).Once()

	res := s.service.GetAccount(ctx, "missing_nobody")

	s.Equal(domain.ResultNotFound, res.Kind())
}

func (s *AccountServiceTestSuite) TestListAccounts_EmptyIsSuccess() {
	ctx := context.Background()
	s.accountRepo.On("ListAccounts", ctx, false, 50, 0).
		Return([]domain.Account{}, nil).Once()

	res := s.service.ListAccounts(ctx, dto.ListAccountsParams{Limit: 50})

	s.Require().True(res.IsSuccess())
	s.Empty(res.Data())
}

func (s *AccountServiceTestSuite) TestActivateAccount_Idempotent() {
	ctx := context.Background()
	active := &domain.Account{AccountNameOwner: "chase_brian", ActiveStatus: true}

	// Writing the current value again is not an error at the repository, so
	// a second activation succeeds the same way the first did.
	s.accountRepo.On("SetActiveStatus", ctx, "chase_brian", true, mock.AnythingOfType("time.Time")).
		Return(nil).Twice()
	s.accountRepo.On("FindAccountByNameOwner", ctx, "chase_brian").
		Return(active, nil).Twice()

	first := s.service.ActivateAccount(ctx, "chase_brian")
	second := s.service.ActivateAccount(ctx, "chase_brian")

	s.True(first.IsSuccess())
	s.True(second.IsSuccess())
	s.True(second.Data().ActiveStatus)
	s.accountRepo.AssertExpectations(s.T())
}

func (s *AccountServiceTestSuite) TestDeactivateAccount_NotFoundSurvivesExecutor() {
	ctx := context.Background()

	// The retry executor wraps the failure; the NotFound sentinel must still
	// classify as NotFound rather than degrading to a system error.
	s.accountRepo.On("SetActiveStatus", ctx, "ghost_nobody", false, mock.AnythingOfType("time.Time")).
		Return(apperrors.ErrNotFound).Once()

	res := s.service.DeactivateAccount(ctx, "ghost_nobody")

	s.Equal(domain.ResultNotFound, res.Kind())
}

func (s *AccountServiceTestSuite) TestRenameAccount_Success() {
	ctx := context.Background()
	tx := stubTx{}
	renamed := &domain.Account{AccountNameOwner: "boa_brian", ActiveStatus: true}

	s.accountRepo.On("Begin", ctx).Return(tx, nil).Once()
	s.accountRepo.On("RenameAccountInTx", ctx, tx, "chase_brian", "boa_brian", mock.AnythingOfType("time.Time")).
		Return(nil).Once()
	s.txnRepo.On("ReassignAccountInTx", ctx, tx, "chase_brian", "boa_brian").
		Return(int64(12), nil).Once()
	s.accountRepo.On("Commit", ctx, tx).Return(nil).Once()
	s.accountRepo.On("Rollback", ctx, tx).Return(nil).Once()
	s.accountRepo.On("FindAccountByNameOwner", ctx, "boa_brian").Return(renamed, nil).Once()

	res := s.service.RenameAccount(ctx, "chase_brian", "boa_brian")

	s.Require().True(res.IsSuccess())
	s.Equal("boa_brian", res.Data().AccountNameOwner)
	s.accountRepo.AssertExpectations(s.T())
	s.txnRepo.AssertExpectations(s.T())
}

func (s *AccountServiceTestSuite) TestRenameAccount_TargetTaken() {
	ctx := context.Background()
	tx := stubTx{}

	s.accountRepo.On("Begin", ctx).Return(tx, nil).Once()
	s.accountRepo.On("RenameAccountInTx", ctx, tx, "chase_brian", "boa_brian", mock.AnythingOfType("time.Time")).
		Return(apperrors.ErrDuplicate).Once()
	s.accountRepo.On("Rollback", ctx, tx).Return(nil).Once()

	res := s.service.RenameAccount(ctx, "chase_brian", "boa_brian")

	s.Equal(domain.ResultBusinessError, res.Kind())
	s.Equal("conflict", res.Code())
	s.accountRepo.AssertNotCalled(s.T(), "Commit", ctx, tx)
}

func (s *AccountServiceTestSuite) TestRenameAccount_SameNameRejected() {
	res := s.service.RenameAccount(context.Background(), "chase_brian", "chase_brian")

	s.Equal(domain.ResultValidationError, res.Kind())
	s.Contains(res.FieldErrors(), "newAccountNameOwner")
}

func (s *AccountServiceTestSuite) TestMergeAccounts_Success() {
	ctx := context.Background()
	tx := stubTx{}
	target := &domain.Account{AccountNameOwner: "boa_brian", AccountType: domain.AccountTypeDebit, ActiveStatus: true}
	source := &domain.Account{AccountNameOwner: "chase_brian", AccountType: domain.AccountTypeDebit, ActiveStatus: true}
	cleared := decimal.NewFromFloat(25.50)
	outstanding := decimal.Zero
	future := decimal.NewFromFloat(3.00)

	s.accountRepo.On("Begin", ctx).Return(tx, nil).Once()
	// Lock order is alphabetical: boa_brian before chase_brian.
	s.accountRepo.On("FindAccountForUpdate", ctx, tx, "boa_brian").Return(target, nil).Once()
	s.accountRepo.On("FindAccountForUpdate", ctx, tx, "chase_brian").Return(source, nil).Once()
	s.txnRepo.On("ReassignAccountInTx", ctx, tx, "chase_brian", "boa_brian").
		Return(int64(7), nil).Once()
	s.accountRepo.On("DeleteAccountInTx", ctx, tx, "chase_brian").Return(nil).Once()
	s.txnRepo.On("SumAmountByAccountAndStateInTx", ctx, tx, "boa_brian", domain.TransactionStateCleared).
		Return(cleared, nil).Once()
	s.txnRepo.On("SumAmountByAccountAndStateInTx", ctx, tx, "boa_brian", domain.TransactionStateOutstanding).
		Return(outstanding, nil).Once()
	s.txnRepo.On("SumAmountByAccountAndStateInTx", ctx, tx, "boa_brian", domain.TransactionStateFuture).
		Return(future, nil).Once()
	s.accountRepo.On("UpdateAccountTotalsInTx", ctx, tx, "boa_brian", cleared, outstanding, future, false, mock.AnythingOfType("time.Time")).
		Return(nil).Once()
	s.accountRepo.On("Commit", ctx, tx).Return(nil).Once()
	s.accountRepo.On("Rollback", ctx, tx).Return(nil).Once()
	s.accountRepo.On("FindAccountByNameOwner", ctx, "boa_brian").Return(target, nil).Once()

	res := s.service.MergeAccounts(ctx, "boa_brian", "chase_brian")

	s.Require().True(res.IsSuccess())
	s.accountRepo.AssertExpectations(s.T())
	s.txnRepo.AssertExpectations(s.T())
}

func (s *AccountServiceTestSuite) TestMergeAccounts_SelfMergeRejected() {
	res := s.service.MergeAccounts(context.Background(), "chase_brian", "chase_brian")

	s.Equal(domain.ResultValidationError, res.Kind())
}

func (s *AccountServiceTestSuite) TestMergeAccounts_DuplicateLedgerEntry() {
	ctx := context.Background()
	tx := stubTx{}
	target := &domain.Account{AccountNameOwner: "boa_brian", AccountType: domain.AccountTypeDebit}
	source := &domain.Account{AccountNameOwner: "chase_brian", AccountType: domain.AccountTypeDebit}

	s.accountRepo.On("Begin", ctx).Return(tx, nil).Once()
	s.accountRepo.On("FindAccountForUpdate", ctx, tx, "boa_brian").Return(target, nil).Once()
	s.accountRepo.On("FindAccountForUpdate", ctx, tx, "chase_brian").Return(source, nil).Once()
	s.txnRepo.On("ReassignAccountInTx", ctx, tx, "chase_brian", "boa_brian").
		Return(int64(0), apperrors.ErrDuplicate).Once()
	s.accountRepo.On("Rollback", ctx, tx).Return(nil).Once()

	res := s.service.MergeAccounts(ctx, "boa_brian", "chase_brian")

	s.Equal(domain.ResultBusinessError, res.Kind())
	s.accountRepo.AssertNotCalled(s.T(), "Commit", ctx, tx)
}

func (s *AccountServiceTestSuite) TestPurgeAccount_Success() {
	ctx := context.Background()
	tx := stubTx{}
	account := &domain.Account{AccountNameOwner: "chase_brian"}

	s.accountRepo.On("Begin", ctx).Return(tx, nil).Once()
	s.accountRepo.On("FindAccountForUpdate", ctx, tx, "chase_brian").Return(account, nil).Once()
	s.txnRepo.On("DeleteTransactionsByAccountInTx", ctx, tx, "chase_brian").
		Return(int64(42), nil).Once()
	s.accountRepo.On("DeleteAccountInTx", ctx, tx, "chase_brian").Return(nil).Once()
	s.accountRepo.On("Commit", ctx, tx).Return(nil).Once()
	s.accountRepo.On("Rollback", ctx, tx).Return(nil).Once()

	res := s.service.PurgeAccount(ctx, "chase_brian")

	s.Require().True(res.IsSuccess())
	s.Equal(int64(42), res.Data())
}

func (s *AccountServiceTestSuite) TestRefreshTotalsOne_ComputesTotalsAndPaymentRequired() {
	ctx := context.Background()
	tx := stubTx{}
	account := &domain.Account{
		AccountNameOwner: "chase_brian",
		AccountType:      domain.AccountTypeCredit,
		ActiveStatus:     true,
	}
	cleared := decimal.NewFromFloat(10.00)
	outstanding := decimal.NewFromFloat(5.00)
	future := decimal.NewFromFloat(0.00)

	s.accountRepo.On("Begin", mock.Anything).Return(tx, nil).Once()
	s.accountRepo.On("FindAccountForUpdate", mock.Anything, tx, "chase_brian").Return(account, nil).Once()
	s.txnRepo.On("SumAmountByAccountAndStateInTx", mock.Anything, tx, "chase_brian", domain.TransactionStateCleared).
		Return(cleared, nil).Once()
	s.txnRepo.On("SumAmountByAccountAndStateInTx", mock.Anything, tx, "chase_brian", domain.TransactionStateOutstanding).
		Return(outstanding, nil).Once()
	s.txnRepo.On("SumAmountByAccountAndStateInTx", mock.Anything, tx, "chase_brian", domain.TransactionStateFuture).
		Return(future, nil).Once()
	// Credit account with a non-zero outstanding balance requires payment.
	s.accountRepo.On("UpdateAccountTotalsInTx", mock.Anything, tx, "chase_brian", cleared, outstanding, future, true, mock.AnythingOfType("time.Time")).
		Return(nil).Once()
	s.accountRepo.On("Commit", mock.Anything, tx).Return(nil).Once()
	s.accountRepo.On("Rollback", mock.Anything, tx).Return(nil).Once()

	refreshed := &domain.Account{
		AccountNameOwner: "chase_brian",
		AccountType:      domain.AccountTypeCredit,
		Cleared:          cleared,
		Outstanding:      outstanding,
		Future:           future,
		Totals:           decimal.NewFromFloat(15.00),
		PaymentRequired:  true,
	}
	s.accountRepo.On("FindAccountByNameOwner", ctx, "chase_brian").Return(refreshed, nil).Once()

	res := s.service.RefreshTotalsOne(ctx, "chase_brian")

	s.Require().True(res.IsSuccess())
	s.True(res.Data().Totals.Equal(decimal.NewFromFloat(15.00)))
	s.True(res.Data().PaymentRequired)
	s.accountRepo.AssertExpectations(s.T())
	s.txnRepo.AssertExpectations(s.T())
}

func (s *AccountServiceTestSuite) TestRefreshTotalsOne_NotFoundSurvivesExecutor() {
	ctx := context.Background()
	tx := stubTx{}

	s.accountRepo.On("Begin", mock.Anything).Return(tx, nil).Once()
	s.accountRepo.On("FindAccountForUpdate", mock.Anything, tx, "ghost_nobody").
		Return(nil, apperrors.ErrNotFound).Once()
	s.accountRepo.On("Rollback", mock.Anything, tx).Return(nil).Once()

	res := s.service.RefreshTotalsOne(ctx, "ghost_nobody")

	s.Equal(domain.ResultNotFound, res.Kind())
}

func (s *AccountServiceTestSuite) TestRefreshTotalsAll_PartialFailureDoesNotAbort() {
	ctx := context.Background()
	tx := stubTx{}
	healthy := &domain.Account{AccountNameOwner: "boa_brian", AccountType: domain.AccountTypeDebit}

	s.accountRepo.On("ListAccountNames", ctx, false).
		Return([]string{"broken_brian", "boa_brian"}, nil).Once()

	s.accountRepo.On("Begin", mock.Anything).Return(tx, nil).Twice()
	s.accountRepo.On("FindAccountForUpdate", mock.Anything, tx, "broken_brian").
		Return(nil, errors.New("connection reset")).Once()
	s.accountRepo.On("FindAccountForUpdate", mock.Anything, tx, "boa_brian").
		Return(healthy, nil).Once()
	s.txnRepo.On("SumAmountByAccountAndStateInTx", mock.Anything, tx, "boa_brian", mock.AnythingOfType("domain.TransactionState")).
		Return(decimal.Zero, nil).Times(3)
	s.accountRepo.On("UpdateAccountTotalsInTx", mock.Anything, tx, "boa_brian", decimal.Zero, decimal.Zero, decimal.Zero, false, mock.AnythingOfType("time.Time")).
		Return(nil).Once()
	s.accountRepo.On("Commit", mock.Anything, tx).Return(nil).Once()
	s.accountRepo.On("Rollback", mock.Anything, tx).Return(nil).Twice()

	s.service.RefreshTotalsAll(ctx)

	s.accountRepo.AssertExpectations(s.T())
	s.txnRepo.AssertExpectations(s.T())
}
