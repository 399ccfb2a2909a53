package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a single ledger entry owned by exactly one account.
// The tuple (account, date, description, category, amount, notes) is unique
// at the storage layer to prevent duplicate ledger entries.
type Transaction struct {
	GUID             string           `json:"guid"`
	AccountNameOwner string           `json:"accountNameOwner"`
	TransactionDate  time.Time        `json:"transactionDate"`
	Description      string           `json:"description"`
	Category         string           `json:"category"`
	Amount           decimal.Decimal  `json:"amount"`
	TransactionState TransactionState `json:"transactionState"`
	Notes            string           `json:"notes"`
	ActiveStatus     bool             `json:"activeStatus"`
	AuditFields
}
