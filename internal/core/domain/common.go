package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// TransactionState is the ledger status of a transaction at the time totals
// are computed.
type TransactionState string

const (
	TransactionStateCleared     TransactionState = "cleared"
	TransactionStateOutstanding TransactionState = "outstanding"
	TransactionStateFuture      TransactionState = "future"
	TransactionStateUndefined   TransactionState = "undefined"
)

// SummableStates lists the three states that participate in account totals.
// Undefined transactions are excluded from aggregation.
func SummableStates() []TransactionState {
	return []TransactionState{
		TransactionStateCleared,
		TransactionStateOutstanding,
		TransactionStateFuture,
	}
}

// IsSummable reports whether s is one of the three aggregatable states.
func (s TransactionState) IsSummable() bool {
	switch s {
	case TransactionStateCleared, TransactionStateOutstanding, TransactionStateFuture:
		return true
	}
	return false
}

// IsValid reports whether s is a known transaction state.
func (s TransactionState) IsValid() bool {
	return s.IsSummable() || s == TransactionStateUndefined
}
