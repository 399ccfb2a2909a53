package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transfer moves funds between two debit accounts via a matched pair of
// ledger transactions.
type Transfer struct {
	TransferID         string          `json:"transferId"`
	SourceAccount      string          `json:"sourceAccount"`
	DestinationAccount string          `json:"destinationAccount"`
	TransactionDate    time.Time       `json:"transactionDate"`
	Amount             decimal.Decimal `json:"amount"`
	GUIDSource         string          `json:"guidSource"`
	GUIDDestination    string          `json:"guidDestination"`
	ActiveStatus       bool            `json:"activeStatus"`
	AuditFields
}
