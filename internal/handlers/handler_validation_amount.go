package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/finledger/finance-ledger/internal/core/ports/services"
	"github.com/finledger/finance-ledger/internal/dto"
)

// validationAmountHandler handles HTTP requests for expected-balance snapshots.
type validationAmountHandler struct {
	validationAmountService portssvc.ValidationAmountSvc
}

// registerValidationAmountRoutes registers routes related to validation amounts.
func registerValidationAmountRoutes(rg *gin.RouterGroup, validationAmountService portssvc.ValidationAmountSvc) {
	h := &validationAmountHandler{validationAmountService: validationAmountService}

	validation := rg.Group("/validation")
	{
		validation.POST("/amounts", h.createValidationAmount)
		validation.GET("/amounts/:accountNameOwner", h.listValidationAmounts)
		validation.POST("/refresh", h.refreshValidationDates)
	}
}

func (h *validationAmountHandler) createValidationAmount(c *gin.Context) {
	var req dto.CreateValidationAmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	res := h.validationAmountService.CreateValidationAmount(c.Request.Context(), req)
	respond(c, res, http.StatusCreated, dto.ToValidationAmountResponse)
}

func (h *validationAmountHandler) listValidationAmounts(c *gin.Context) {
	res := h.validationAmountService.ListValidationAmountsByAccount(c.Request.Context(), c.Param("accountNameOwner"))
	respond(c, res, http.StatusOK, dto.ToListValidationAmountsResponse)
}

func (h *validationAmountHandler) refreshValidationDates(c *gin.Context) {
	h.validationAmountService.RefreshValidationDates(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"status": "completed"})
}
