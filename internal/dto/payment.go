package dto

import (
	"time"

	"github.com/finledger/finance-ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePaymentRequest settles a credit account from a funding debit account.
type CreatePaymentRequest struct {
	SourceAccount      string          `json:"sourceAccount" binding:"required,accountname"`
	DestinationAccount string          `json:"destinationAccount" binding:"required,accountname"`
	TransactionDate    time.Time       `json:"transactionDate" binding:"required"`
	Amount             decimal.Decimal `json:"amount" binding:"required"`
}

// CreateTransferRequest moves funds between two debit accounts.
type CreateTransferRequest struct {
	SourceAccount      string          `json:"sourceAccount" binding:"required,accountname"`
	DestinationAccount string          `json:"destinationAccount" binding:"required,accountname"`
	TransactionDate    time.Time       `json:"transactionDate" binding:"required"`
	Amount             decimal.Decimal `json:"amount" binding:"required"`
}

// ListParams defines generic limit/offset query parameters.
type ListParams struct {
	Limit  int `form:"limit,default=50"`
	Offset int `form:"offset,default=0"`
}

// PaymentResponse defines the data returned for a payment.
type PaymentResponse struct {
	PaymentID          string          `json:"paymentId"`
	SourceAccount      string          `json:"sourceAccount"`
	DestinationAccount string          `json:"destinationAccount"`
	TransactionDate    time.Time       `json:"transactionDate"`
	Amount             decimal.Decimal `json:"amount"`
	GUIDSource         string          `json:"guidSource"`
	GUIDDestination    string          `json:"guidDestination"`
}

// TransferResponse defines the data returned for a transfer.
type TransferResponse struct {
	TransferID         string          `json:"transferId"`
	SourceAccount      string          `json:"sourceAccount"`
	DestinationAccount string          `json:"destinationAccount"`
	TransactionDate    time.Time       `json:"transactionDate"`
	Amount             decimal.Decimal `json:"amount"`
	GUIDSource         string          `json:"guidSource"`
	GUIDDestination    string          `json:"guidDestination"`
}

// ToPaymentResponse converts a domain.Payment to its response DTO.
func ToPaymentResponse(p domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:          p.PaymentID,
		SourceAccount:      p.SourceAccount,
		DestinationAccount: p.DestinationAccount,
		TransactionDate:    p.TransactionDate,
		Amount:             p.Amount,
		GUIDSource:         p.GUIDSource,
		GUIDDestination:    p.GUIDDestination,
	}
}

// ToListPaymentsResponse converts a slice of payments to DTOs.
func ToListPaymentsResponse(ps []domain.Payment) []PaymentResponse {
	res := make([]PaymentResponse, len(ps))
	for i, p := range ps {
		res[i] = ToPaymentResponse(p)
	}
	return res
}

// ToTransferResponse converts a domain.Transfer to its response DTO.
func ToTransferResponse(tr domain.Transfer) TransferResponse {
	return TransferResponse{
		TransferID:         tr.TransferID,
		SourceAccount:      tr.SourceAccount,
		DestinationAccount: tr.DestinationAccount,
		TransactionDate:    tr.TransactionDate,
		Amount:             tr.Amount,
		GUIDSource:         tr.GUIDSource,
		GUIDDestination:    tr.GUIDDestination,
	}
}

// ToListTransfersResponse converts a slice of transfers to DTOs.
func ToListTransfersResponse(trs []domain.Transfer) []TransferResponse {
	res := make([]TransferResponse, len(trs))
	for i, tr := range trs {
		res[i] = ToTransferResponse(tr)
	}
	return res
}
