package handler

import (
	"net/http"

	"yield-spend-gateway/internal/adapter/http/dto"
	"yield-spend-gateway/internal/adapter/http/middleware"
	"yield-spend-gateway/internal/core/ports"
	"yield-spend-gateway/pkg/apperror"
	"yield-spend-gateway/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuthHandler handles wallet authentication endpoints.
type AuthHandler struct {
	sessionSvc ports.SessionService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(sessionSvc ports.SessionService) *AuthHandler {
	return &AuthHandler{sessionSvc: sessionSvc}
}

// IssueNonce handles GET /api/v1/auth/nonce?wallet=<address>.
func (h *AuthHandler) IssueNonce(c *gin.Context) {
	wallet := c.Query("wallet")
	if !dto.ValidWalletAddress(wallet) {
		response.Error(c, apperror.ErrInvalidWalletAddress())
		return
	}

	challenge, err := h.sessionSvc.IssueNonce(c.Request.Context(), wallet)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.NonceResponse{
		Nonce:     challenge.Nonce,
		Message:   challenge.Message,
		ExpiresAt: challenge.ExpiresAt.Format("2006-01-02T15:04:05Z07:00"),
	})
}

// Authenticate handles POST /api/v1/auth.
func (h *AuthHandler) Authenticate(c *gin.Context) {
	var req dto.AuthenticateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.sessionSvc.Authenticate(c.Request.Context(), ports.AuthenticateRequest{
		WalletAddress: req.WalletAddress,
		Signature:     req.Signature,
		Message:       req.Message,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.AuthResponse{
		Token:         result.Token,
		WalletAddress: result.WalletAddress,
		ExpiresAt:     result.ExpiresAt.Format("2006-01-02T15:04:05Z07:00"),
	})
}

// Revoke handles POST /api/v1/auth/revoke — ends the current session.
func (h *AuthHandler) Revoke(c *gin.Context) {
	v, ok := c.Get(middleware.CtxSessionID)
	if !ok {
		response.Error(c, apperror.ErrInvalidSession())
		return
	}
	sessionID, ok := v.(uuid.UUID)
	if !ok {
		response.Error(c, apperror.ErrInvalidSession())
		return
	}

	if err := h.sessionSvc.Revoke(c.Request.Context(), sessionID); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"revoked": true})
}

// RevokeAll handles POST /api/v1/auth/revoke-all — ends every session of the
// authenticated wallet.
func (h *AuthHandler) RevokeAll(c *gin.Context) {
	wallet, ok := middleware.WalletFromContext(c)
	if !ok {
		return
	}

	if err := h.sessionSvc.RevokeAll(c.Request.Context(), wallet); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"revoked": true})
}

// HealthCheck handles GET /health — deep health check verifying all dependencies.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus)
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Check(c.Request.Context()); err != nil {
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = depStatus{Status: "healthy"}
			}
		}

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}
