package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"yield-spend-gateway/internal/adapter/http/middleware"
	redisStore "yield-spend-gateway/internal/adapter/storage/redis"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func setupRateLimitRouter(store *redisStore.RateLimitStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	rule := middleware.RateLimitRule{Limit: 3, Window: time.Minute}
	log := zerolog.Nop()

	r.GET("/test", middleware.RateLimiter(store, "test", rule, log), func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	return r
}

func TestRateLimiter_AllowsWithinLimit(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	defer client.Close()

	store := redisStore.NewRateLimitStore(client)
	router := setupRateLimitRouter(store)

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req, _ := http.NewRequestWithContext(context.Background(), "GET", "/test", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, 200, w.Code, "request %d should succeed", i+1)
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Limit"))
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Remaining"))
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Reset"))
	}
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	defer client.Close()

	store := redisStore.NewRateLimitStore(client)
	router := setupRateLimitRouter(store)

	// Use up the limit
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req, _ := http.NewRequestWithContext(context.Background(), "GET", "/test", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, 200, w.Code)
	}

	// 4th request should be blocked
	w := httptest.NewRecorder()
	req, _ := http.NewRequestWithContext(context.Background(), "GET", "/test", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, 429, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}

func TestRateLimiter_KeysByAuthenticatedWallet(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	defer client.Close()

	store := redisStore.NewRateLimitStore(client)
	gin.SetMode(gin.TestMode)
	r := gin.New()

	rule := middleware.RateLimitRule{Limit: 3, Window: time.Minute}
	setWallet := func(wallet string) gin.HandlerFunc {
		return func(c *gin.Context) {
			c.Set(middleware.CtxWalletAddress, wallet)
			c.Next()
		}
	}
	r.GET("/a", setWallet("walletA"), middleware.RateLimiter(store, "test", rule, zerolog.Nop()), func(c *gin.Context) { c.Status(200) })
	r.GET("/b", setWallet("walletB"), middleware.RateLimiter(store, "test", rule, zerolog.Nop()), func(c *gin.Context) { c.Status(200) })

	// Wallet A uses up the limit
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req, _ := http.NewRequestWithContext(context.Background(), "GET", "/a", nil)
		r.ServeHTTP(w, req)
		assert.Equal(t, 200, w.Code)
	}

	// Wallet B has an independent counter
	w := httptest.NewRecorder()
	req, _ := http.NewRequestWithContext(context.Background(), "GET", "/b", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, 200, w.Code)
}

func TestRateLimiter_DegradedModeAllows(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})

	store := redisStore.NewRateLimitStore(client)
	router := setupRateLimitRouter(store)

	// Kill the backing store; requests must still pass.
	mr.Close()
	client.Close()

	w := httptest.NewRecorder()
	req, _ := http.NewRequestWithContext(context.Background(), "GET", "/test", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, 200, w.Code)
}

func TestDefaultRateLimitRules(t *testing.T) {
	rules := middleware.DefaultRateLimitRules()
	assert.Equal(t, int64(20), rules["auth_nonce"].Limit)
	assert.Equal(t, int64(10), rules["auth"].Limit)
	assert.Equal(t, int64(60), rules["yield"].Limit)
	assert.Equal(t, int64(120), rules["discover"].Limit)
	assert.Equal(t, int64(100), rules["payments"].Limit)
	assert.Equal(t, int64(20), rules["prepaid_topup"].Limit)
}
