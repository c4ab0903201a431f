package handler

import (
	"strconv"

	"yield-spend-gateway/internal/adapter/http/dto"
	"yield-spend-gateway/internal/adapter/http/middleware"
	"yield-spend-gateway/internal/core/domain"
	"yield-spend-gateway/internal/core/ports"
	"yield-spend-gateway/pkg/apperror"
	"yield-spend-gateway/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// PrepaidHandler handles prepaid balance endpoints.
type PrepaidHandler struct {
	prepaidSvc ports.PrepaidService
}

// NewPrepaidHandler creates a new PrepaidHandler.
func NewPrepaidHandler(prepaidSvc ports.PrepaidService) *PrepaidHandler {
	return &PrepaidHandler{prepaidSvc: prepaidSvc}
}

// GetBalance handles GET /api/v1/prepaid/balance.
func (h *PrepaidHandler) GetBalance(c *gin.Context) {
	wallet, ok := middleware.WalletFromContext(c)
	if !ok {
		return
	}

	balance, err := h.prepaidSvc.GetBalance(c.Request.Context(), wallet)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ToBalanceResponse(balance))
}

// Topup handles POST /api/v1/prepaid/topup.
func (h *PrepaidHandler) Topup(c *gin.Context) {
	wallet, ok := middleware.WalletFromContext(c)
	if !ok {
		return
	}

	var req dto.TopupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	// The money validator guarantees this parses.
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		response.Error(c, apperror.ErrInvalidAmount())
		return
	}

	result, err := h.prepaidSvc.Topup(c.Request.Context(), ports.TopupRequest{
		WalletAddress:   wallet,
		Amount:          amount,
		PaymentProofRef: req.PaymentProofRef,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.PrepaidResultResponse{
		NewBalance:  domain.MoneyString(result.NewBalance),
		Transaction: dto.ToTransactionResponse(result.Transaction),
	})
}

// ListTransactions handles GET /api/v1/prepaid/transactions?limit=<n>.
func (h *PrepaidHandler) ListTransactions(c *gin.Context) {
	wallet, ok := middleware.WalletFromContext(c)
	if !ok {
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(c, apperror.Validation("invalid limit"))
			return
		}
		limit = n
	}

	txns, err := h.prepaidSvc.ListTransactions(c.Request.Context(), wallet, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.TransactionResponse, 0, len(txns))
	for i := range txns {
		items = append(items, dto.ToTransactionResponse(&txns[i]))
	}
	response.OK(c, dto.TransactionListResponse{Items: items, Count: len(items)})
}
