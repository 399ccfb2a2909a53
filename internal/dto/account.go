package dto

import (
	"time"

	"github.com/finledger/finance-ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	AccountNameOwner string             `json:"accountNameOwner" binding:"required,accountname"`
	AccountType      domain.AccountType `json:"accountType" binding:"required,oneof=debit credit undefined"`
	Moniker          string             `json:"moniker"`
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Pointers distinguish zero-value updates from fields not provided.
type UpdateAccountRequest struct {
	AccountType *domain.AccountType `json:"accountType" binding:"omitempty,oneof=debit credit undefined"`
	Moniker     *string             `json:"moniker"`
}

// RenameAccountRequest carries the new owner-qualified name for a rename.
type RenameAccountRequest struct {
	NewAccountNameOwner string `json:"newAccountNameOwner" binding:"required,accountname"`
}

// MergeAccountsRequest folds sourceAccountNameOwner into targetAccountNameOwner.
type MergeAccountsRequest struct {
	TargetAccountNameOwner string `json:"targetAccountNameOwner" binding:"required,accountname"`
	SourceAccountNameOwner string `json:"sourceAccountNameOwner" binding:"required,accountname"`
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	IncludeInactive bool `form:"includeInactive,default=false"`
	Limit           int  `form:"limit,default=50"`
	Offset          int  `form:"offset,default=0"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountNameOwner string             `json:"accountNameOwner"`
	AccountType      domain.AccountType `json:"accountType"`
	ActiveStatus     bool               `json:"activeStatus"`
	Moniker          string             `json:"moniker"`
	Cleared          decimal.Decimal    `json:"cleared"`
	Outstanding      decimal.Decimal    `json:"outstanding"`
	Future           decimal.Decimal    `json:"future"`
	Totals           decimal.Decimal    `json:"totals"`
	PaymentRequired  bool               `json:"paymentRequired"`
	ValidationDate   time.Time          `json:"validationDate"`
	CreatedAt        time.Time          `json:"createdAt"`
	LastUpdatedAt    time.Time          `json:"lastUpdatedAt"`
}

// AccountTotalsResponse defines the data returned for a totals query.
type AccountTotalsResponse struct {
	AccountNameOwner string          `json:"accountNameOwner"`
	Cleared          decimal.Decimal `json:"cleared"`
	Outstanding      decimal.Decimal `json:"outstanding"`
	Future           decimal.Decimal `json:"future"`
	Totals           decimal.Decimal `json:"totals"`
}

// ToAccountResponse converts a domain.Account to its response DTO.
func ToAccountResponse(acc domain.Account) AccountResponse {
	return AccountResponse{
		AccountNameOwner: acc.AccountNameOwner,
		AccountType:      acc.AccountType,
		ActiveStatus:     acc.ActiveStatus,
		Moniker:          acc.Moniker,
		Cleared:          acc.Cleared,
		Outstanding:      acc.Outstanding,
		Future:           acc.Future,
		Totals:           acc.Totals,
		PaymentRequired:  acc.PaymentRequired,
		ValidationDate:   acc.ValidationDate,
		CreatedAt:        acc.CreatedAt,
		LastUpdatedAt:    acc.LastUpdatedAt,
	}
}

// ToAccountTotalsResponse projects just the totals fields of an account.
func ToAccountTotalsResponse(acc domain.Account) AccountTotalsResponse {
	return AccountTotalsResponse{
		AccountNameOwner: acc.AccountNameOwner,
		Cleared:          acc.Cleared,
		Outstanding:      acc.Outstanding,
		Future:           acc.Future,
		Totals:           acc.Totals,
	}
}

// ToListAccountsResponse converts a slice of accounts to response DTOs.
func ToListAccountsResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(acc)
	}
	return res
}
