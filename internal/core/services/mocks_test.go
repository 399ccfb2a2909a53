package services_test

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/finledger/finance-ledger/internal/core/domain"
)

// stubTx stands in for a pgx.Tx handed between repositories. Services only
// pass it through, so the zero value is enough.
type stubTx struct {
	pgx.Tx
}

// MockAccountRepository is a mock for the AccountRepositoryWithTx interface.
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByNameOwner(ctx context.Context, accountNameOwner string) (*domain.Account, error) {
	args := m.Called(ctx, accountNameOwner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, includeInactive bool, limit int, offset int) ([]domain.Account, error) {
	args := m.Called(ctx, includeInactive, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccountNames(ctx context.Context, includeInactive bool) ([]string, error) {
	args := m.Called(ctx, includeInactive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) SetActiveStatus(ctx context.Context, accountNameOwner string, active bool, now time.Time) error {
	args := m.Called(ctx, accountNameOwner, active, now)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateValidationDate(ctx context.Context, accountNameOwner string, validationDate time.Time, now time.Time) error {
	args := m.Called(ctx, accountNameOwner, validationDate, now)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountForUpdate(ctx context.Context, tx pgx.Tx, accountNameOwner string) (*domain.Account, error) {
	args := m.Called(ctx, tx, accountNameOwner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) UpdateAccountTotalsInTx(ctx context.Context, tx pgx.Tx, accountNameOwner string, cleared, outstanding, future decimal.Decimal, paymentRequired bool, now time.Time) error {
	args := m.Called(ctx, tx, accountNameOwner, cleared, outstanding, future, paymentRequired, now)
	return args.Error(0)
}

func (m *MockAccountRepository) RenameAccountInTx(ctx context.Context, tx pgx.Tx, oldName, newName string, now time.Time) error {
	args := m.Called(ctx, tx, oldName, newName, now)
	return args.Error(0)
}

func (m *MockAccountRepository) DeleteAccountInTx(ctx context.Context, tx pgx.Tx, accountNameOwner string) error {
	args := m.Called(ctx, tx, accountNameOwner)
	return args.Error(0)
}

func (m *MockAccountRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockAccountRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockAccountRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// MockTransactionRepository is a mock for the TransactionRepositoryFacade
// interface.
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindTransactionByGUID(ctx context.Context, guid string) (*domain.Transaction, error) {
	args := m.Called(ctx, guid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactionsByAccount(ctx context.Context, accountNameOwner string, limit int, offset int) ([]domain.Transaction, error) {
	args := m.Called(ctx, accountNameOwner, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) SumAmountByAccountAndState(ctx context.Context, accountNameOwner string, state domain.TransactionState) (decimal.Decimal, error) {
	args := m.Called(ctx, accountNameOwner, state)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) SaveTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error {
	args := m.Called(ctx, tx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransactionByGUID(ctx context.Context, guid string) error {
	args := m.Called(ctx, guid)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransactionsByGUIDsInTx(ctx context.Context, tx pgx.Tx, guids []string) error {
	args := m.Called(ctx, tx, guids)
	return args.Error(0)
}

func (m *MockTransactionRepository) SumAmountByAccountAndStateInTx(ctx context.Context, tx pgx.Tx, accountNameOwner string, state domain.TransactionState) (decimal.Decimal, error) {
	args := m.Called(ctx, tx, accountNameOwner, state)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockTransactionRepository) ReassignAccountInTx(ctx context.Context, tx pgx.Tx, oldName, newName string) (int64, error) {
	args := m.Called(ctx, tx, oldName, newName)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTransactionRepository) ReassignCategoryInTx(ctx context.Context, tx pgx.Tx, oldCategory, newCategory string) (int64, error) {
	args := m.Called(ctx, tx, oldCategory, newCategory)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTransactionRepository) RewriteDescription(ctx context.Context, oldDescription, newDescription string) (int64, error) {
	args := m.Called(ctx, oldDescription, newDescription)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTransactionRepository) DeleteTransactionsByAccountInTx(ctx context.Context, tx pgx.Tx, accountNameOwner string) (int64, error) {
	args := m.Called(ctx, tx, accountNameOwner)
	return args.Get(0).(int64), args.Error(1)
}

// MockCategoryRepository is a mock for the CategoryRepositoryFacade interface.
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) FindCategoryByName(ctx context.Context, categoryName string) (*domain.Category, error) {
	args := m.Called(ctx, categoryName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) ListCategories(ctx context.Context, includeInactive bool) ([]domain.Category, error) {
	args := m.Called(ctx, includeInactive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) DeleteCategoryByName(ctx context.Context, categoryName string) error {
	args := m.Called(ctx, categoryName)
	return args.Error(0)
}

func (m *MockCategoryRepository) DeleteCategoryInTx(ctx context.Context, tx pgx.Tx, categoryName string) error {
	args := m.Called(ctx, tx, categoryName)
	return args.Error(0)
}

func (m *MockCategoryRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockCategoryRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockCategoryRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// MockValidationAmountRepository is a mock for the ValidationAmountRepository
// interface.
type MockValidationAmountRepository struct {
	mock.Mock
}

func (m *MockValidationAmountRepository) SaveValidationAmount(ctx context.Context, va domain.ValidationAmount) error {
	args := m.Called(ctx, va)
	return args.Error(0)
}

func (m *MockValidationAmountRepository) ListValidationAmountsByAccount(ctx context.Context, accountNameOwner string) ([]domain.ValidationAmount, error) {
	args := m.Called(ctx, accountNameOwner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ValidationAmount), args.Error(1)
}

func (m *MockValidationAmountRepository) LatestByAccountAndState(ctx context.Context, accountNameOwner string, state domain.TransactionState) (*domain.ValidationAmount, error) {
	args := m.Called(ctx, accountNameOwner, state)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ValidationAmount), args.Error(1)
}

// MockPaymentRepository is a mock for the PaymentRepositoryWithTx interface.
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) SavePaymentInTx(ctx context.Context, tx pgx.Tx, payment domain.Payment) error {
	args := m.Called(ctx, tx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ListPayments(ctx context.Context, limit int, offset int) ([]domain.Payment, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) DeletePaymentInTx(ctx context.Context, tx pgx.Tx, paymentID string) error {
	args := m.Called(ctx, tx, paymentID)
	return args.Error(0)
}

func (m *MockPaymentRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockPaymentRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockPaymentRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// MockTransferRepository is a mock for the TransferRepositoryWithTx interface.
type MockTransferRepository struct {
	mock.Mock
}

func (m *MockTransferRepository) SaveTransferInTx(ctx context.Context, tx pgx.Tx, transfer domain.Transfer) error {
	args := m.Called(ctx, tx, transfer)
	return args.Error(0)
}

func (m *MockTransferRepository) FindTransferByID(ctx context.Context, transferID string) (*domain.Transfer, error) {
	args := m.Called(ctx, transferID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transfer), args.Error(1)
}

func (m *MockTransferRepository) ListTransfers(ctx context.Context, limit int, offset int) ([]domain.Transfer, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transfer), args.Error(1)
}

func (m *MockTransferRepository) DeleteTransferInTx(ctx context.Context, tx pgx.Tx, transferID string) error {
	args := m.Called(ctx, tx, transferID)
	return args.Error(0)
}

func (m *MockTransferRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockTransferRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTransferRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// MockUserRepository is a mock for the UserRepository interface.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
