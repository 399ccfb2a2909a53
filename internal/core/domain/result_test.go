package domain_test

import (
	"fmt"
	"testing"

	"github.com/finledger/finance-ledger/internal/apperrors"
	"github.com/finledger/finance-ledger/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceResult_ExactlyOneVariant(t *testing.T) {
	acct := domain.Account{AccountNameOwner: "chase_brian"}

	ok := domain.OK(acct)
	assert.Equal(t, domain.ResultSuccess, ok.Kind())
	assert.True(t, ok.IsSuccess())
	assert.Equal(t, "chase_brian", ok.Data().AccountNameOwner)
	assert.Nil(t, ok.FieldErrors())
	assert.Empty(t, ok.Message())
	assert.NoError(t, ok.Err())

	nf := domain.NotFound[domain.Account]()
	assert.Equal(t, domain.ResultNotFound, nf.Kind())
	assert.False(t, nf.IsSuccess())
	assert.Empty(t, nf.Data().AccountNameOwner)

	inv := domain.InvalidField[domain.Account]("accountNameOwner", "must not be empty")
	assert.Equal(t, domain.ResultValidationError, inv.Kind())
	assert.Equal(t, "must not be empty", inv.FieldErrors()["accountNameOwner"])

	biz := domain.BusinessErr[domain.Account]("account name already exists", "conflict")
	assert.Equal(t, domain.ResultBusinessError, biz.Kind())
	assert.Equal(t, "conflict", biz.Code())

	sys := domain.SystemErr[domain.Account](assert.AnError)
	assert.Equal(t, domain.ResultSystemError, sys.Kind())
	assert.ErrorIs(t, sys.Err(), assert.AnError)
}

func TestServiceResult_EmptyCollectionIsSuccess(t *testing.T) {
	res := domain.OK([]domain.Account{})
	assert.Equal(t, domain.ResultSuccess, res.Kind())
	assert.NotNil(t, res.Data())
	assert.Empty(t, res.Data())
}

func TestClassify_SentinelErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind domain.ResultKind
	}{
		{"not found", apperrors.ErrNotFound, domain.ResultNotFound},
		{"wrapped not found", fmt.Errorf("lookup failed: %w", apperrors.ErrNotFound), domain.ResultNotFound},
		{"validation", apperrors.ErrValidation, domain.ResultValidationError},
		{"duplicate", fmt.Errorf("%w: chase_brian", apperrors.ErrDuplicate), domain.ResultBusinessError},
		{"business rule", apperrors.ErrBusiness, domain.ResultBusinessError},
		{"opaque", assert.AnError, domain.ResultSystemError},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := domain.Classify[domain.Account](tc.err)
			assert.Equal(t, tc.kind, res.Kind())
		})
	}
}

func TestClassify_DuplicateMapsToConflictCode(t *testing.T) {
	res := domain.Classify[domain.Account](fmt.Errorf("%w: account chase_brian already exists", apperrors.ErrDuplicate))
	require.Equal(t, domain.ResultBusinessError, res.Kind())
	assert.Equal(t, "conflict", res.Code())
}

func TestClassify_UnwrapsExecutionError(t *testing.T) {
	inner := fmt.Errorf("find account: %w", apperrors.ErrNotFound)
	wrapped := apperrors.NewExecutionError("activate account", inner)

	res := domain.Classify[domain.Account](wrapped)
	assert.Equal(t, domain.ResultNotFound, res.Kind())
}

func TestClassify_UnwrapsNestedExecutionErrors(t *testing.T) {
	inner := fmt.Errorf("%w: duplicate ledger entry", apperrors.ErrDuplicate)
	wrapped := apperrors.NewExecutionError("retry", apperrors.NewExecutionError("timeout", inner))

	res := domain.Classify[domain.Account](wrapped)
	require.Equal(t, domain.ResultBusinessError, res.Kind())
	assert.Equal(t, "conflict", res.Code())
	assert.NotContains(t, res.Message(), "execution of")
}

func TestClassify_OpaqueExecutionErrorIsSystemError(t *testing.T) {
	wrapped := apperrors.NewExecutionError("refresh totals", assert.AnError)

	res := domain.Classify[domain.Account](wrapped)
	assert.Equal(t, domain.ResultSystemError, res.Kind())
}
