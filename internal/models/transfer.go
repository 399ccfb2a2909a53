package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transfer is the DB row shape for the transfers table.
type Transfer struct {
	TransferID         string          `db:"transfer_id"`
	SourceAccount      string          `db:"source_account"`
	DestinationAccount string          `db:"destination_account"`
	TransactionDate    time.Time       `db:"transaction_date"`
	Amount             decimal.Decimal `db:"amount"`
	GUIDSource         string          `db:"guid_source"`
	GUIDDestination    string          `db:"guid_destination"`
	ActiveStatus       bool            `db:"active_status"`
	AuditFields
}
