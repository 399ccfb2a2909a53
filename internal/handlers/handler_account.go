package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finledger/finance-ledger/internal/core/domain"
	portssvc "github.com/finledger/finance-ledger/internal/core/ports/services"
	"github.com/finledger/finance-ledger/internal/dto"
)

// accountHandler handles HTTP requests related to accounts.
type accountHandler struct {
	accountService portssvc.AccountSvc
}

// registerAccountRoutes registers routes related to accounts.
func registerAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvc) {
	h := &accountHandler{accountService: accountService}

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.GET("", h.listAccounts)
		accounts.GET("/:accountNameOwner", h.getAccount)
		accounts.PUT("/:accountNameOwner", h.updateAccount)
		accounts.PUT("/:accountNameOwner/activate", h.activateAccount)
		accounts.PUT("/:accountNameOwner/deactivate", h.deactivateAccount)
		accounts.PUT("/:accountNameOwner/rename", h.renameAccount)
		accounts.POST("/:accountNameOwner/totals/refresh", h.refreshTotals)
		accounts.GET("/:accountNameOwner/totals", h.getTotals)
		accounts.POST("/merge", h.mergeAccounts)
		accounts.POST("/totals/refresh", h.refreshAllTotals)
		// DELETE deactivates; the row and its ledger survive. The purge path
		// is the only hard delete.
		accounts.DELETE("/:accountNameOwner", h.deleteAccount)
		accounts.DELETE("/:accountNameOwner/purge", h.purgeAccount)
	}
}

func (h *accountHandler) createAccount(c *gin.Context) {
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	res := h.accountService.CreateAccount(c.Request.Context(), req)
	respond(c, res, http.StatusCreated, dto.ToAccountResponse)
}

func (h *accountHandler) getAccount(c *gin.Context) {
	res := h.accountService.GetAccount(c.Request.Context(), c.Param("accountNameOwner"))
	respond(c, res, http.StatusOK, dto.ToAccountResponse)
}

func (h *accountHandler) listAccounts(c *gin.Context) {
	var params dto.ListAccountsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}
	res := h.accountService.ListAccounts(c.Request.Context(), params)
	respond(c, res, http.StatusOK, dto.ToListAccountsResponse)
}

func (h *accountHandler) updateAccount(c *gin.Context) {
	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	res := h.accountService.UpdateAccount(c.Request.Context(), c.Param("accountNameOwner"), req)
	respond(c, res, http.StatusOK, dto.ToAccountResponse)
}

func (h *accountHandler) activateAccount(c *gin.Context) {
	res := h.accountService.ActivateAccount(c.Request.Context(), c.Param("accountNameOwner"))
	respond(c, res, http.StatusOK, dto.ToAccountResponse)
}

func (h *accountHandler) deactivateAccount(c *gin.Context) {
	res := h.accountService.DeactivateAccount(c.Request.Context(), c.Param("accountNameOwner"))
	respond(c, res, http.StatusOK, dto.ToAccountResponse)
}

func (h *accountHandler) renameAccount(c *gin.Context) {
	var req dto.RenameAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	res := h.accountService.RenameAccount(c.Request.Context(), c.Param("accountNameOwner"), req.NewAccountNameOwner)
	respond(c, res, http.StatusOK, dto.ToAccountResponse)
}

func (h *accountHandler) mergeAccounts(c *gin.Context) {
	var req dto.MergeAccountsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	res := h.accountService.MergeAccounts(c.Request.Context(), req.TargetAccountNameOwner, req.SourceAccountNameOwner)
	respond(c, res, http.StatusOK, dto.ToAccountResponse)
}

func (h *accountHandler) deleteAccount(c *gin.Context) {
	res := h.accountService.DeactivateAccount(c.Request.Context(), c.Param("accountNameOwner"))
	respond(c, res, http.StatusOK, dto.ToAccountResponse)
}

func (h *accountHandler) purgeAccount(c *gin.Context) {
	res := h.accountService.PurgeAccount(c.Request.Context(), c.Param("accountNameOwner"))
	respond(c, res, http.StatusOK, func(deleted int64) gin.H {
		return gin.H{"transactionsDeleted": deleted}
	})
}

func (h *accountHandler) refreshTotals(c *gin.Context) {
	res := h.accountService.RefreshTotalsOne(c.Request.Context(), c.Param("accountNameOwner"))
	respond(c, res, http.StatusOK, dto.ToAccountResponse)
}

// refreshAllTotals kicks off a full refresh pass synchronously. The pass is
// failure-tolerant, so the endpoint always reports acceptance.
func (h *accountHandler) refreshAllTotals(c *gin.Context) {
	h.accountService.RefreshTotalsAll(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"status": "completed"})
}

func (h *accountHandler) getTotals(c *gin.Context) {
	res := h.accountService.GetAccount(c.Request.Context(), c.Param("accountNameOwner"))
	respond(c, res, http.StatusOK, func(acc domain.Account) dto.AccountTotalsResponse {
		return dto.ToAccountTotalsResponse(acc)
	})
}
