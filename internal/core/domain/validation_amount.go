package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ValidationAmount is a point-in-time snapshot of an expected balance for an
// account at a given transaction state, used to cross-check computed totals.
type ValidationAmount struct {
	ValidationID     string           `json:"validationId"`
	AccountNameOwner string           `json:"accountNameOwner"`
	TransactionState TransactionState `json:"transactionState"`
	Amount           decimal.Decimal  `json:"amount"`
	ValidationDate   time.Time        `json:"validationDate"`
	ActiveStatus     bool             `json:"activeStatus"`
	AuditFields
}
