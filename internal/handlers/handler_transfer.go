package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/finledger/finance-ledger/internal/core/ports/services"
	"github.com/finledger/finance-ledger/internal/dto"
)

// transferHandler handles HTTP requests related to transfers.
type transferHandler struct {
	transferService portssvc.TransferSvc
}

// registerTransferRoutes registers routes related to transfers.
func registerTransferRoutes(rg *gin.RouterGroup, transferService portssvc.TransferSvc) {
	h := &transferHandler{transferService: transferService}

	transfers := rg.Group("/transfers")
	{
		transfers.POST("", h.createTransfer)
		transfers.GET("", h.listTransfers)
		transfers.DELETE("/:transferId", h.deleteTransfer)
	}
}

func (h *transferHandler) createTransfer(c *gin.Context) {
	var req dto.CreateTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	res := h.transferService.CreateTransfer(c.Request.Context(), req)
	respond(c, res, http.StatusCreated, dto.ToTransferResponse)
}

func (h *transferHandler) listTransfers(c *gin.Context) {
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}
	res := h.transferService.ListTransfers(c.Request.Context(), params)
	respond(c, res, http.StatusOK, dto.ToListTransfersResponse)
}

func (h *transferHandler) deleteTransfer(c *gin.Context) {
	res := h.transferService.DeleteTransfer(c.Request.Context(), c.Param("transferId"))
	respond(c, res, http.StatusNoContent, func(bool) any { return nil })
}
