package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is the DB row shape for the payments table.
type Payment struct {
	PaymentID          string          `db:"payment_id"`
	SourceAccount      string          `db:"source_account"`
	DestinationAccount string          `db:"destination_account"`
	TransactionDate    time.Time       `db:"transaction_date"`
	Amount             decimal.Decimal `db:"amount"`
	GUIDSource         string          `db:"guid_source"`
	GUIDDestination    string          `db:"guid_destination"`
	ActiveStatus       bool            `db:"active_status"`
	AuditFields
}
