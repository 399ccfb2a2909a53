package dto

import (
	"time"

	"github.com/finledger/finance-ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to insert a ledger entry.
type CreateTransactionRequest struct {
	AccountNameOwner string                  `json:"accountNameOwner" binding:"required,accountname"`
	TransactionDate  time.Time               `json:"transactionDate" binding:"required"`
	Description      string                  `json:"description" binding:"required"`
	Category         string                  `json:"category"`
	Amount           decimal.Decimal         `json:"amount" binding:"required"`
	TransactionState domain.TransactionState `json:"transactionState" binding:"required,oneof=cleared outstanding future undefined"`
	Notes            string                  `json:"notes"`
}

// UpdateTransactionRequest defines the data allowed for correcting a
// transaction. Pointers distinguish omitted fields.
type UpdateTransactionRequest struct {
	TransactionDate  *time.Time               `json:"transactionDate"`
	Description      *string                  `json:"description"`
	Category         *string                  `json:"category"`
	Amount           *decimal.Decimal         `json:"amount"`
	TransactionState *domain.TransactionState `json:"transactionState" binding:"omitempty,oneof=cleared outstanding future undefined"`
	Notes            *string                  `json:"notes"`
}

// MergeDescriptionsRequest folds every transaction carrying sourceDescription
// into targetDescription.
type MergeDescriptionsRequest struct {
	TargetDescription string `json:"targetDescription" binding:"required"`
	SourceDescription string `json:"sourceDescription" binding:"required"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	Limit  int `form:"limit,default=100"`
	Offset int `form:"offset,default=0"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	GUID             string                  `json:"guid"`
	AccountNameOwner string                  `json:"accountNameOwner"`
	TransactionDate  time.Time               `json:"transactionDate"`
	Description      string                  `json:"description"`
	Category         string                  `json:"category"`
	Amount           decimal.Decimal         `json:"amount"`
	TransactionState domain.TransactionState `json:"transactionState"`
	Notes            string                  `json:"notes"`
	ActiveStatus     bool                    `json:"activeStatus"`
	CreatedAt        time.Time               `json:"createdAt"`
	LastUpdatedAt    time.Time               `json:"lastUpdatedAt"`
}

// StateSumResponse defines the data returned for a per-state sum query.
type StateSumResponse struct {
	AccountNameOwner string                  `json:"accountNameOwner"`
	TransactionState domain.TransactionState `json:"transactionState"`
	Amount           decimal.Decimal         `json:"amount"`
}

// MergeCountResponse reports how many rows a merge/rewrite touched.
type MergeCountResponse struct {
	Updated int64 `json:"updated"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(txn domain.Transaction) TransactionResponse {
	return TransactionResponse{
		GUID:             txn.GUID,
		AccountNameOwner: txn.AccountNameOwner,
		TransactionDate:  txn.TransactionDate,
		Description:      txn.Description,
		Category:         txn.Category,
		Amount:           txn.Amount,
		TransactionState: txn.TransactionState,
		Notes:            txn.Notes,
		ActiveStatus:     txn.ActiveStatus,
		CreatedAt:        txn.CreatedAt,
		LastUpdatedAt:    txn.LastUpdatedAt,
	}
}

// ToListTransactionsResponse converts a slice of transactions to DTOs.
func ToListTransactionsResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		res[i] = ToTransactionResponse(txn)
	}
	return res
}
