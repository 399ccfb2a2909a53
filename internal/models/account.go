package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType mirrors the account_type column values.
type AccountType string

const (
	AccountTypeDebit     AccountType = "debit"
	AccountTypeCredit    AccountType = "credit"
	AccountTypeUndefined AccountType = "undefined"
)

// Account is the DB row shape for the accounts table. The owner-qualified
// name is the natural key; totals columns are written only by the refresher.
type Account struct {
	AccountNameOwner string          `db:"account_name_owner"`
	AccountType      AccountType     `db:"account_type"`
	ActiveStatus     bool            `db:"active_status"`
	Moniker          string          `db:"moniker"`
	Cleared          decimal.Decimal `db:"cleared"`
	Outstanding      decimal.Decimal `db:"outstanding"`
	Future           decimal.Decimal `db:"future"`
	Totals           decimal.Decimal `db:"totals"`
	PaymentRequired  bool            `db:"payment_required"`
	ValidationDate   time.Time       `db:"validation_date"`
	AuditFields
}
