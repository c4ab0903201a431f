package middleware

import (
	"net/http"
	"strings"
	"time"

	"yield-spend-gateway/internal/core/ports"
	"yield-spend-gateway/pkg/apperror"
	"yield-spend-gateway/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	// HeaderSubscriptionActive asserts an active subscription for the wallet.
	// It is verified by the upstream gateway that terminates subscriptions;
	// this service trusts it.
	HeaderSubscriptionActive = "X-Subscription-Active"

	// Context keys
	CtxWalletAddress = "wallet_address"
	CtxSessionID     = "session_id"
	CtxRequestID     = "request_id"
)

// SessionAuth validates the Bearer session token and loads the session's
// wallet into the request context. Both the token signature and the session
// row must check out; a revoked session fails even with a valid token.
func SessionAuth(sessionSvc ports.SessionService, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || token == "" {
			response.Error(c, apperror.ErrInvalidSession())
			c.Abort()
			return
		}

		session, err := sessionSvc.Validate(c.Request.Context(), token)
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}

		c.Set(CtxWalletAddress, session.WalletAddress)
		c.Set(CtxSessionID, session.ID)
		c.Next()
	}
}

// WalletFromContext returns the authenticated wallet, or aborts with 401.
func WalletFromContext(c *gin.Context) (string, bool) {
	v, ok := c.Get(CtxWalletAddress)
	if !ok {
		response.Error(c, apperror.ErrInvalidSession())
		return "", false
	}
	wallet, ok := v.(string)
	if !ok || wallet == "" {
		response.Error(c, apperror.ErrInvalidSession())
		return "", false
	}
	return wallet, true
}

// SubscriptionAsserted reports whether the caller asserted an active
// subscription for this request.
func SubscriptionAsserted(c *gin.Context) bool {
	return strings.EqualFold(c.GetHeader(HeaderSubscriptionActive), "true")
}

// RequestID attaches a request ID to the context and response headers.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(CtxRequestID, id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// RequestLogger creates a middleware that logs every HTTP request.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		} else if status >= http.StatusBadRequest && status != http.StatusPaymentRequired {
			event = log.Warn()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", latency).
			Str("client_ip", c.ClientIP()).
			Msg("http request")
	}
}

// Recovery creates a panic recovery middleware.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Str("path", c.Request.URL.Path).Msg("panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error_code": "SYS_001",
					"message":    "Internal server error",
				})
			}
		}()
		c.Next()
	}
}

// MaxBodySize returns middleware that limits the request body size.
// Once the limit is exceeded the reader returns an error and the
// request is rejected with 413 Payload Too Large.
func MaxBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}
