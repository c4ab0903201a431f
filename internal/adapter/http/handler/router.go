package handler

import (
	"yield-spend-gateway/internal/adapter/http/middleware"
	redisStore "yield-spend-gateway/internal/adapter/storage/redis"
	"yield-spend-gateway/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	SessionSvc     ports.SessionService
	YieldSvc       ports.YieldService
	CatalogSvc     ports.CatalogService
	PrepaidSvc     ports.PrepaidService
	PaymentSvc     ports.PaymentService
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Public routes (no auth) ---
	authHandler := NewAuthHandler(deps.SessionSvc)
	auth := v1.Group("/auth")
	{
		auth.GET("/nonce", rl("auth_nonce"), authHandler.IssueNonce)
		auth.POST("", rl("auth"), authHandler.Authenticate)
	}

	yieldHandler := NewYieldHandler(deps.YieldSvc)
	v1.GET("/yield/:wallet", rl("yield"), yieldHandler.GetYield)

	discoveryHandler := NewDiscoveryHandler(deps.CatalogSvc)
	v1.GET("/discover", rl("discover"), discoveryHandler.Discover)
	v1.GET("/discover/categories", rl("discover"), discoveryHandler.ListCategories)
	v1.GET("/discover/pricing", rl("discover"), discoveryHandler.PricingSummary)
	v1.GET("/services/:id", rl("discover"), discoveryHandler.GetService)

	// --- Session-authenticated routes ---
	sessionAuth := middleware.SessionAuth(deps.SessionSvc, deps.Logger)

	authed := v1.Group("/auth", sessionAuth)
	{
		authed.POST("/revoke", rl("auth"), authHandler.Revoke)
		authed.POST("/revoke-all", rl("auth"), authHandler.RevokeAll)
	}

	prepaidHandler := NewPrepaidHandler(deps.PrepaidSvc)
	prepaid := v1.Group("/prepaid", sessionAuth)
	{
		prepaid.GET("/balance", rl("prepaid"), prepaidHandler.GetBalance)
		prepaid.POST("/topup", rl("prepaid_topup"), prepaidHandler.Topup)
		prepaid.GET("/transactions", rl("prepaid"), prepaidHandler.ListTransactions)
	}

	paymentHandler := NewPaymentHandler(deps.PaymentSvc)
	payments := v1.Group("/payments", sessionAuth)
	{
		payments.POST("/prepare", rl("payments"), paymentHandler.Prepare)
		payments.POST("/execute", rl("payments"), paymentHandler.Execute)
	}

	return r
}
