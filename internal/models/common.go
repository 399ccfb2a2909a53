package models

import "time"

// AuditFields holds standard audit columns shared by all tables.
type AuditFields struct {
	CreatedAt     time.Time `db:"created_at"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
}

// TransactionState mirrors the transaction_state column values.
type TransactionState string

const (
	TransactionStateCleared     TransactionState = "cleared"
	TransactionStateOutstanding TransactionState = "outstanding"
	TransactionStateFuture      TransactionState = "future"
	TransactionStateUndefined   TransactionState = "undefined"
)
