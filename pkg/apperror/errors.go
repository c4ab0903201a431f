package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string                 `json:"error_code"`
	Message    string                 `json:"message"`
	HTTPStatus int                    `json:"-"`
	Details    map[string]interface{} `json:"details,omitempty"`
	Err        error                  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WithDetails attaches structured detail fields to the error.
func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	e.Details = details
	return e
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Validation (VAL) ----

// Validation returns a malformed-input error.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}

func ErrInvalidWalletAddress() *AppError {
	return New("VAL_002", "Invalid wallet address", http.StatusBadRequest)
}

func ErrInvalidAmount() *AppError {
	return New("VAL_003", "Invalid amount", http.StatusBadRequest)
}

// ---- Authentication (AUTH) ----

func ErrInvalidNonce() *AppError {
	return New("AUTH_001", "Invalid or expired nonce", http.StatusUnauthorized)
}

func ErrInvalidSignature() *AppError {
	return New("AUTH_002", "Invalid wallet signature", http.StatusUnauthorized)
}

func ErrInvalidSession() *AppError {
	return New("AUTH_003", "Invalid, expired or revoked session", http.StatusUnauthorized)
}

// ---- Funds (FUND) ----

// ErrInsufficientYield reports a yield shortfall with the amounts the caller
// needs to retry correctly.
func ErrInsufficientYield(required, available string) *AppError {
	return New("FUND_001", "Insufficient spendable yield", http.StatusPaymentRequired).
		WithDetails(map[string]interface{}{"required": required, "available": available})
}

func ErrInsufficientPrepaidBalance(required, available string) *AppError {
	return New("FUND_002", "Insufficient prepaid balance", http.StatusPaymentRequired).
		WithDetails(map[string]interface{}{"required": required, "available": available})
}

// ---- Allocations (ALLOC) ----

func ErrPaymentNotPrepared() *AppError {
	return New("ALLOC_001", "Payment not prepared", http.StatusNotFound)
}

func ErrPaymentExpired() *AppError {
	return New("ALLOC_002", "Payment expired", http.StatusGone)
}

// ---- Services (SVC) ----

func ErrUnknownService(id string) *AppError {
	return New("SVC_001", fmt.Sprintf("Unknown service: %s", id), http.StatusNotFound)
}

// ErrUpstreamServiceFailed reports an external invocation failure after funds
// were committed. refunded tells the caller what was actually reversed.
func ErrUpstreamServiceFailed(err error, refunded bool) *AppError {
	return Wrap("SVC_002", "External service invocation failed", http.StatusBadGateway, err).
		WithDetails(map[string]interface{}{"refunded": refunded})
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_002", "Internal database error", http.StatusInternalServerError, err)
}
