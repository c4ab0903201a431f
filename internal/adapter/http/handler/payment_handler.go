package handler

import (
	"yield-spend-gateway/internal/adapter/http/dto"
	"yield-spend-gateway/internal/adapter/http/middleware"
	"yield-spend-gateway/internal/core/ports"
	"yield-spend-gateway/pkg/apperror"
	"yield-spend-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles the two-phase payment endpoints.
type PaymentHandler struct {
	paymentSvc ports.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(paymentSvc ports.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentSvc: paymentSvc}
}

// Prepare handles POST /api/v1/payments/prepare.
// A yield reservation answers 402 Payment Required carrying the settlement
// descriptor; prepaid and subscription cover the cost at execute time and
// answer 200.
func (h *PaymentHandler) Prepare(c *gin.Context) {
	wallet, ok := middleware.WalletFromContext(c)
	if !ok {
		return
	}

	var req dto.PrepareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	descriptor, err := h.paymentSvc.Prepare(c.Request.Context(), ports.PrepareRequest{
		ServiceID:          req.ServiceID,
		WalletAddress:      wallet,
		UsePrepaid:         req.UsePrepaid,
		SubscriptionActive: middleware.SubscriptionAsserted(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	if descriptor.PaymentMethod == ports.PaymentMethodYield {
		response.PaymentRequired(c, descriptor)
		return
	}
	response.OK(c, descriptor)
}

// Execute handles POST /api/v1/payments/execute.
func (h *PaymentHandler) Execute(c *gin.Context) {
	wallet, ok := middleware.WalletFromContext(c)
	if !ok {
		return
	}

	var req dto.ExecuteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	receipt, err := h.paymentSvc.Execute(c.Request.Context(), ports.ExecuteRequest{
		ServiceID:          req.ServiceID,
		PaymentID:          req.PaymentID,
		WalletAddress:      wallet,
		UsePrepaid:         req.UsePrepaid,
		SubscriptionActive: middleware.SubscriptionAsserted(c),
		Input:              req.Input,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ToReceiptResponse(receipt))
}
