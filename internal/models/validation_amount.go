package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ValidationAmount is the DB row shape for the validation_amounts table.
type ValidationAmount struct {
	ValidationID     string           `db:"validation_id"`
	AccountNameOwner string           `db:"account_name_owner"`
	TransactionState TransactionState `db:"transaction_state"`
	Amount           decimal.Decimal  `db:"amount"`
	ValidationDate   time.Time        `db:"validation_date"`
	ActiveStatus     bool             `db:"active_status"`
	AuditFields
}
