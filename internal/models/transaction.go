package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the DB row shape for the transactions table. A unique index
// over (account_name_owner, transaction_date, description, category, amount,
// notes) rejects duplicate ledger entries.
type Transaction struct {
	GUID             string           `db:"guid"`
	AccountNameOwner string           `db:"account_name_owner"`
	TransactionDate  time.Time        `db:"transaction_date"`
	Description      string           `db:"description"`
	Category         string           `db:"category"`
	Amount           decimal.Decimal  `db:"amount"`
	TransactionState TransactionState `db:"transaction_state"`
	Notes            string           `db:"notes"`
	ActiveStatus     bool             `db:"active_status"`
	AuditFields
}
