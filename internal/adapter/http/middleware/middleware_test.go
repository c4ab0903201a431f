package middleware_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"yield-spend-gateway/internal/adapter/http/middleware"
	"yield-spend-gateway/internal/core/domain"
	"yield-spend-gateway/internal/core/ports/mocks"
	"yield-spend-gateway/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const testWallet = "9WzDXwBbmkg8ZTbNMqUxvQRAyrZzDsGYdLVL9zYtAWWM"

func init() {
	gin.SetMode(gin.TestMode)
}

func setupSessionAuthRouter(t *testing.T) (*gin.Engine, *mocks.MockSessionService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	sessionSvc := mocks.NewMockSessionService(ctrl)

	r := gin.New()
	r.GET("/protected", middleware.SessionAuth(sessionSvc, zerolog.Nop()), func(c *gin.Context) {
		wallet, ok := middleware.WalletFromContext(c)
		if !ok {
			return
		}
		c.JSON(200, gin.H{"wallet": wallet})
	})
	return r, sessionSvc
}

func TestSessionAuth_Success(t *testing.T) {
	r, sessionSvc := setupSessionAuthRouter(t)

	sessionSvc.EXPECT().Validate(gomock.Any(), "valid-token").Return(&domain.Session{
		ID:            uuid.New(),
		WalletAddress: testWallet,
		ExpiresAt:     time.Now().Add(time.Hour),
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), testWallet)
}

func TestSessionAuth_MissingHeader(t *testing.T) {
	r, _ := setupSessionAuthRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSessionAuth_MalformedHeader(t *testing.T) {
	r, _ := setupSessionAuthRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSessionAuth_RevokedSession(t *testing.T) {
	r, sessionSvc := setupSessionAuthRouter(t)

	sessionSvc.EXPECT().Validate(gomock.Any(), "revoked-token").
		Return(nil, apperror.ErrInvalidSession())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer revoked-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "AUTH_003")
}

func TestSubscriptionAsserted(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	assert.False(t, middleware.SubscriptionAsserted(c))

	c.Request.Header.Set(middleware.HeaderSubscriptionActive, "true")
	assert.True(t, middleware.SubscriptionAsserted(c))

	c.Request.Header.Set(middleware.HeaderSubscriptionActive, "TRUE")
	assert.True(t, middleware.SubscriptionAsserted(c))

	c.Request.Header.Set(middleware.HeaderSubscriptionActive, "1")
	assert.False(t, middleware.SubscriptionAsserted(c))
}

func TestRequestID_GeneratedWhenAbsent(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/", func(c *gin.Context) { c.Status(200) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	r.ServeHTTP(w, req)

	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRequestID_Propagated(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/", func(c *gin.Context) { c.Status(200) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "req-abc-123")
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-abc-123", w.Header().Get("X-Request-ID"))
}

func TestRecovery_CatchesPanic(t *testing.T) {
	r := gin.New()
	r.Use(middleware.Recovery(zerolog.Nop()))
	r.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "SYS_001")
}

func TestMaxBodySize_RejectsOversized(t *testing.T) {
	r := gin.New()
	r.Use(middleware.MaxBodySize(16))
	r.POST("/", func(c *gin.Context) {
		var body map[string]interface{}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "too large"})
			return
		}
		c.Status(200)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte(`{"key":"a very long value exceeding the limit"}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}
