package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment settles a credit account from a funding debit account. Creating one
// inserts a matched pair of ledger transactions, tracked here by GUID.
type Payment struct {
	PaymentID          string          `json:"paymentId"`
	SourceAccount      string          `json:"sourceAccount"`
	DestinationAccount string          `json:"destinationAccount"`
	TransactionDate    time.Time       `json:"transactionDate"`
	Amount             decimal.Decimal `json:"amount"`
	GUIDSource         string          `json:"guidSource"`
	GUIDDestination    string          `json:"guidDestination"`
	ActiveStatus       bool            `json:"activeStatus"`
	AuditFields
}
