package dto

import (
	"time"

	"github.com/finledger/finance-ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateValidationAmountRequest records an expected-balance snapshot.
type CreateValidationAmountRequest struct {
	AccountNameOwner string                  `json:"accountNameOwner" binding:"required,accountname"`
	TransactionState domain.TransactionState `json:"transactionState" binding:"required,oneof=cleared outstanding future"`
	Amount           decimal.Decimal         `json:"amount" binding:"required"`
	ValidationDate   time.Time               `json:"validationDate" binding:"required"`
}

// ValidationAmountResponse defines the data returned for a snapshot.
type ValidationAmountResponse struct {
	ValidationID     string                  `json:"validationId"`
	AccountNameOwner string                  `json:"accountNameOwner"`
	TransactionState domain.TransactionState `json:"transactionState"`
	Amount           decimal.Decimal         `json:"amount"`
	ValidationDate   time.Time               `json:"validationDate"`
	ActiveStatus     bool                    `json:"activeStatus"`
}

// ToValidationAmountResponse converts a domain.ValidationAmount to its DTO.
func ToValidationAmountResponse(va domain.ValidationAmount) ValidationAmountResponse {
	return ValidationAmountResponse{
		ValidationID:     va.ValidationID,
		AccountNameOwner: va.AccountNameOwner,
		TransactionState: va.TransactionState,
		Amount:           va.Amount,
		ValidationDate:   va.ValidationDate,
		ActiveStatus:     va.ActiveStatus,
	}
}

// ToListValidationAmountsResponse converts a slice of snapshots to DTOs.
func ToListValidationAmountsResponse(vas []domain.ValidationAmount) []ValidationAmountResponse {
	res := make([]ValidationAmountResponse, len(vas))
	for i, va := range vas {
		res[i] = ToValidationAmountResponse(va)
	}
	return res
}
