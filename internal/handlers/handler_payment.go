package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/finledger/finance-ledger/internal/core/ports/services"
	"github.com/finledger/finance-ledger/internal/dto"
)

// paymentHandler handles HTTP requests related to payments.
type paymentHandler struct {
	paymentService portssvc.PaymentSvc
}

// registerPaymentRoutes registers routes related to payments.
func registerPaymentRoutes(rg *gin.RouterGroup, paymentService portssvc.PaymentSvc) {
	h := &paymentHandler{paymentService: paymentService}

	payments := rg.Group("/payments")
	{
		payments.POST("", h.createPayment)
		payments.GET("", h.listPayments)
		payments.DELETE("/:paymentId", h.deletePayment)
	}
}

func (h *paymentHandler) createPayment(c *gin.Context) {
	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	res := h.paymentService.CreatePayment(c.Request.Context(), req)
	respond(c, res, http.StatusCreated, dto.ToPaymentResponse)
}

func (h *paymentHandler) listPayments(c *gin.Context) {
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}
	res := h.paymentService.ListPayments(c.Request.Context(), params)
	respond(c, res, http.StatusOK, dto.ToListPaymentsResponse)
}

func (h *paymentHandler) deletePayment(c *gin.Context) {
	res := h.paymentService.DeletePayment(c.Request.Context(), c.Param("paymentId"))
	respond(c, res, http.StatusNoContent, func(bool) any { return nil })
}
