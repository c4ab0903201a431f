package dto

import (
	"encoding/json"

	"yield-spend-gateway/internal/core/domain"
	"yield-spend-gateway/internal/core/ports"

	"github.com/shopspring/decimal"
)

// NonceResponse is the response body for a nonce challenge.
type NonceResponse struct {
	Nonce     string `json:"nonce"`
	Message   string `json:"message"`
	ExpiresAt string `json:"expires_at"`
}

// AuthenticateRequest is the request body for session authentication.
type AuthenticateRequest struct {
	WalletAddress string `json:"wallet_address" binding:"required,wallet_addr"`
	Signature     string `json:"signature" binding:"required,max=128"`
	Message       string `json:"message" binding:"required,max=1024"`
}

// AuthResponse is the response body for a successful authentication.
type AuthResponse struct {
	Token         string `json:"token"`
	WalletAddress string `json:"wallet_address"`
	ExpiresAt     string `json:"expires_at"`
}

// YieldResponse is the response body for a yield query.
type YieldResponse struct {
	WalletAddress       string  `json:"wallet_address"`
	StakedAmount        string  `json:"staked_amount"`
	ImpliedExchangeRate string  `json:"implied_exchange_rate"`
	GrossYield          string  `json:"gross_yield"`
	SpendableYield      string  `json:"spendable_yield"`
	APY                 float64 `json:"apy"`
	ComputedAt          string  `json:"computed_at"`
}

// ServiceResponse describes one catalog entry.
type ServiceResponse struct {
	ID                     string `json:"id"`
	Name                   string `json:"name"`
	Description            string `json:"description,omitempty"`
	Category               string `json:"category"`
	Price                  string `json:"price"`
	PlatformFee            string `json:"platform_fee"`
	TotalCost              string `json:"total_cost"`
	PricingScheme          string `json:"pricing_scheme"`
	PrepaidDiscountPercent string `json:"prepaid_discount_percent"`
}

// DiscoveryResponse wraps the filtered catalog listing.
type DiscoveryResponse struct {
	Services []ServiceResponse `json:"services"`
	Count    int               `json:"count"`
}

// PricingSummaryResponse aggregates catalog prices.
type PricingSummaryResponse struct {
	Min   string `json:"min"`
	Max   string `json:"max"`
	Avg   string `json:"avg"`
	Count int    `json:"count"`
}

// TopupRequest is the request body for a prepaid top-up.
type TopupRequest struct {
	Amount          string `json:"amount" binding:"required,money"`
	PaymentProofRef string `json:"payment_proof_ref,omitempty" binding:"omitempty,max=128"`
}

// PrepaidBalanceResponse is the response body for a balance query.
type PrepaidBalanceResponse struct {
	WalletAddress string  `json:"wallet_address"`
	Balance       string  `json:"balance"`
	LastTopup     *string `json:"last_topup,omitempty"`
	UpdatedAt     string  `json:"updated_at"`
}

// PrepaidResultResponse is the response body for a balance mutation.
type PrepaidResultResponse struct {
	NewBalance  string              `json:"new_balance"`
	Transaction TransactionResponse `json:"transaction"`
}

// TransactionResponse is one prepaid ledger entry.
type TransactionResponse struct {
	ID           string  `json:"id"`
	Type         string  `json:"type"`
	Amount       string  `json:"amount"`
	ServiceID    *string `json:"service_id,omitempty"`
	PaymentTx    *string `json:"payment_tx,omitempty"`
	BalanceAfter string  `json:"balance_after"`
	CreatedAt    string  `json:"created_at"`
}

// TransactionListResponse wraps the prepaid ledger listing.
type TransactionListResponse struct {
	Items []TransactionResponse `json:"items"`
	Count int                   `json:"count"`
}

// PrepareRequest is the request body for payment preparation.
type PrepareRequest struct {
	ServiceID  string `json:"service_id" binding:"required,safe_id,max=64"`
	UsePrepaid bool   `json:"use_prepaid"`
}

// ExecuteRequest is the request body for payment execution.
type ExecuteRequest struct {
	ServiceID  string          `json:"service_id" binding:"required,safe_id,max=64"`
	PaymentID  string          `json:"payment_id,omitempty" binding:"omitempty,uuid"`
	UsePrepaid bool            `json:"use_prepaid"`
	Input      json.RawMessage `json:"input,omitempty"`
}

// ReceiptResponse is the response body for a settled payment.
type ReceiptResponse struct {
	PaymentID     string          `json:"payment_id,omitempty"`
	ServiceID     string          `json:"service_id"`
	BaseCost      string          `json:"base_cost"`
	PlatformFee   string          `json:"platform_fee"`
	TotalCost     string          `json:"total_cost"`
	Currency      string          `json:"currency"`
	PaymentMethod string          `json:"payment_method"`
	Timestamp     string          `json:"timestamp"`
	Result        json.RawMessage `json:"result,omitempty"`
}

const timeLayout = "2006-01-02T15:04:05Z07:00"

// ToYieldResponse converts a yield snapshot to its wire form. spendable is
// the snapshot's gross yield net of active reservations.
func ToYieldResponse(s *domain.YieldSnapshot, spendable decimal.Decimal) YieldResponse {
	return YieldResponse{
		WalletAddress:       s.WalletAddress,
		StakedAmount:        domain.MoneyString(s.StakedAmount),
		ImpliedExchangeRate: s.ImpliedExchangeRate.String(),
		GrossYield:          domain.MoneyString(s.SpendableYield),
		SpendableYield:      domain.MoneyString(spendable),
		APY:                 s.APY,
		ComputedAt:          s.ComputedAt.Format(timeLayout),
	}
}

// ToServiceResponse converts a catalog entry to its wire form.
func ToServiceResponse(s *domain.ServiceDescriptor) ServiceResponse {
	return ServiceResponse{
		ID:                     s.ID,
		Name:                   s.Name,
		Description:            s.Description,
		Category:               s.Category,
		Price:                  domain.MoneyString(s.Price),
		PlatformFee:            domain.MoneyString(s.PlatformFee),
		TotalCost:              domain.MoneyString(s.TotalCost()),
		PricingScheme:          string(s.PricingScheme),
		PrepaidDiscountPercent: s.PrepaidDiscountPercent.String(),
	}
}

// ToBalanceResponse converts a prepaid balance to its wire form.
func ToBalanceResponse(b *domain.PrepaidBalance) PrepaidBalanceResponse {
	resp := PrepaidBalanceResponse{
		WalletAddress: b.WalletAddress,
		Balance:       domain.MoneyString(b.Balance),
		UpdatedAt:     b.UpdatedAt.Format(timeLayout),
	}
	if b.LastTopup != nil {
		s := b.LastTopup.Format(timeLayout)
		resp.LastTopup = &s
	}
	return resp
}

// ToTransactionResponse converts a ledger entry to its wire form.
func ToTransactionResponse(t *domain.PrepaidTransaction) TransactionResponse {
	return TransactionResponse{
		ID:           t.ID.String(),
		Type:         string(t.Type),
		Amount:       domain.MoneyString(t.Amount),
		ServiceID:    t.ServiceID,
		PaymentTx:    t.PaymentTx,
		BalanceAfter: domain.MoneyString(t.BalanceAfter),
		CreatedAt:    t.CreatedAt.Format(timeLayout),
	}
}

// ToReceiptResponse converts a receipt to its wire form.
func ToReceiptResponse(r *ports.Receipt) ReceiptResponse {
	return ReceiptResponse{
		PaymentID:     r.PaymentID,
		ServiceID:     r.ServiceID,
		BaseCost:      domain.MoneyString(r.BaseCost),
		PlatformFee:   domain.MoneyString(r.PlatformFee),
		TotalCost:     domain.MoneyString(r.TotalCost),
		Currency:      r.Currency,
		PaymentMethod: r.PaymentMethod,
		Timestamp:     r.Timestamp.Format(timeLayout),
		Result:        r.Result,
	}
}
