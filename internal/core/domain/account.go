package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType distinguishes debit accounts (checking, savings) from credit
// accounts (cards, lines of credit).
type AccountType string

const (
	AccountTypeDebit     AccountType = "debit"
	AccountTypeCredit    AccountType = "credit"
	AccountTypeUndefined AccountType = "undefined"
)

// IsValid reports whether t is a known account type.
func (t AccountType) IsValid() bool {
	switch t {
	case AccountTypeDebit, AccountTypeCredit, AccountTypeUndefined:
		return true
	}
	return false
}

// Account represents a financial account within the core domain.
// AccountNameOwner is the owner-qualified natural key (e.g. "chase_brian");
// it is unique among all accounts regardless of active status.
type Account struct {
	AccountNameOwner string          `json:"accountNameOwner"`
	AccountType      AccountType     `json:"accountType"`
	ActiveStatus     bool            `json:"activeStatus"`
	Moniker          string          `json:"moniker"`
	Cleared          decimal.Decimal `json:"cleared"`
	Outstanding      decimal.Decimal `json:"outstanding"`
	Future           decimal.Decimal `json:"future"`
	Totals           decimal.Decimal `json:"totals"` // cleared + outstanding + future, maintained by the refresher
	PaymentRequired  bool            `json:"paymentRequired"`
	ValidationDate   time.Time       `json:"validationDate"`
	AuditFields
}
