package handler

import (
	"yield-spend-gateway/internal/adapter/http/dto"
	"yield-spend-gateway/internal/core/ports"
	"yield-spend-gateway/pkg/apperror"
	"yield-spend-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// YieldHandler handles yield query endpoints.
type YieldHandler struct {
	yieldSvc ports.YieldService
}

// NewYieldHandler creates a new YieldHandler.
func NewYieldHandler(yieldSvc ports.YieldService) *YieldHandler {
	return &YieldHandler{yieldSvc: yieldSvc}
}

// GetYield handles GET /api/v1/yield/:wallet.
func (h *YieldHandler) GetYield(c *gin.Context) {
	wallet := c.Param("wallet")
	if !dto.ValidWalletAddress(wallet) {
		response.Error(c, apperror.ErrInvalidWalletAddress())
		return
	}

	snapshot := h.yieldSvc.GetYieldInfo(c.Request.Context(), wallet)
	spendable, err := h.yieldSvc.GetSpendableYield(c.Request.Context(), wallet)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ToYieldResponse(snapshot, spendable))
}
