package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/finledger/finance-ledger/internal/core/domain"
	portssvc "github.com/finledger/finance-ledger/internal/core/ports/services"
	"github.com/finledger/finance-ledger/internal/dto"
)

// transactionHandler handles HTTP requests related to ledger transactions.
type transactionHandler struct {
	transactionService portssvc.TransactionSvc
}

// registerTransactionRoutes registers routes related to transactions.
func registerTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvc) {
	h := &transactionHandler{transactionService: transactionService}

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.createTransaction)
		transactions.GET("/:guid", h.getTransaction)
		transactions.PUT("/:guid", h.updateTransaction)
		transactions.DELETE("/:guid", h.deleteTransaction)
		transactions.POST("/merge-descriptions", h.mergeDescriptions)
	}

	accounts := rg.Group("/accounts/:accountNameOwner")
	{
		accounts.GET("/transactions", h.listTransactionsByAccount)
		accounts.GET("/transactions/sum/:state", h.sumByState)
	}
}

func (h *transactionHandler) createTransaction(c *gin.Context) {
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	res := h.transactionService.CreateTransaction(c.Request.Context(), req)
	respond(c, res, http.StatusCreated, dto.ToTransactionResponse)
}

func (h *transactionHandler) getTransaction(c *gin.Context) {
	res := h.transactionService.GetTransaction(c.Request.Context(), c.Param("guid"))
	respond(c, res, http.StatusOK, dto.ToTransactionResponse)
}

func (h *transactionHandler) listTransactionsByAccount(c *gin.Context) {
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}
	res := h.transactionService.ListTransactionsByAccount(c.Request.Context(), c.Param("accountNameOwner"), params)
	respond(c, res, http.StatusOK, dto.ToListTransactionsResponse)
}

func (h *transactionHandler) updateTransaction(c *gin.Context) {
	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	res := h.transactionService.UpdateTransaction(c.Request.Context(), c.Param("guid"), req)
	respond(c, res, http.StatusOK, dto.ToTransactionResponse)
}

func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	res := h.transactionService.DeleteTransaction(c.Request.Context(), c.Param("guid"))
	respond(c, res, http.StatusNoContent, func(bool) any { return nil })
}

func (h *transactionHandler) sumByState(c *gin.Context) {
	accountNameOwner := c.Param("accountNameOwner")
	state := domain.TransactionState(c.Param("state"))

	res := h.transactionService.SumByState(c.Request.Context(), accountNameOwner, state)
	respond(c, res, http.StatusOK, func(sum decimal.Decimal) dto.StateSumResponse {
		return dto.StateSumResponse{
			AccountNameOwner: accountNameOwner,
			TransactionState: state,
			Amount:           sum,
		}
	})
}

func (h *transactionHandler) mergeDescriptions(c *gin.Context) {
	var req dto.MergeDescriptionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	res := h.transactionService.MergeDescriptions(c.Request.Context(), req.TargetDescription, req.SourceDescription)
	respond(c, res, http.StatusOK, func(updated int64) dto.MergeCountResponse {
		return dto.MergeCountResponse{Updated: updated}
	})
}
