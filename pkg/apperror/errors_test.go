package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	e := New("AUTH_001", "Invalid or expired nonce", http.StatusUnauthorized)
	assert.Equal(t, "[AUTH_001] Invalid or expired nonce", e.Error())
}

func TestAppError_ErrorWithWrapped(t *testing.T) {
	inner := fmt.Errorf("connection refused")
	e := Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, inner)
	assert.Contains(t, e.Error(), "connection refused")
	assert.Equal(t, inner, errors.Unwrap(e))
}

func TestAppError_As(t *testing.T) {
	var target *AppError
	err := fmt.Errorf("outer: %w", ErrInvalidSession())
	require.True(t, errors.As(err, &target))
	assert.Equal(t, "AUTH_003", target.Code)
	assert.Equal(t, http.StatusUnauthorized, target.HTTPStatus)
}

func TestErrInsufficientYield_Details(t *testing.T) {
	e := ErrInsufficientYield("0.030000", "0.010000")
	assert.Equal(t, "FUND_001", e.Code)
	assert.Equal(t, http.StatusPaymentRequired, e.HTTPStatus)
	assert.Equal(t, "0.030000", e.Details["required"])
	assert.Equal(t, "0.010000", e.Details["available"])
}

func TestErrUpstreamServiceFailed_RefundedFlag(t *testing.T) {
	e := ErrUpstreamServiceFailed(fmt.Errorf("503 from provider"), true)
	assert.Equal(t, "SVC_002", e.Code)
	assert.Equal(t, http.StatusBadGateway, e.HTTPStatus)
	assert.Equal(t, true, e.Details["refunded"])
}

func TestErrPaymentLifecycleCodes(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, ErrPaymentNotPrepared().HTTPStatus)
	assert.Equal(t, http.StatusGone, ErrPaymentExpired().HTTPStatus)
	assert.Equal(t, http.StatusNotFound, ErrUnknownService("gpt-4").HTTPStatus)
}
