package ports

import (
	"context"
	"encoding/json"
	"time"

	"yield-spend-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TokenService mints and validates integrity-protected session tokens.
// A token check alone is stateless; revocation requires the session row.
type TokenService interface {
	Generate(sessionID uuid.UUID, wallet string, expiresAt time.Time) (string, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed session token claims.
type TokenClaims struct {
	SessionID     uuid.UUID
	WalletAddress string
	ExpiresAt     time.Time
}

// SignatureVerifier verifies a wallet's native signature over exact message
// bytes.
type SignatureVerifier interface {
	Verify(wallet string, message []byte, signature string) error
}

// StakedBalanceSource reads a wallet's staked principal from upstream.
// Implementations are expected to be slow and rate-limited; callers cache.
type StakedBalanceSource interface {
	GetStakedBalance(ctx context.Context, wallet string) (decimal.Decimal, error)
}

// YieldCache stores computed yield snapshots. Get returns nil, nil on miss.
// Entries are retained past their freshness window so degraded reads can
// fall back to stale data.
type YieldCache interface {
	Get(ctx context.Context, wallet string) (*domain.YieldSnapshot, error)
	Set(ctx context.Context, wallet string, snapshot *domain.YieldSnapshot) error
}

// ServiceInvoker calls the external metered service a payment was made for.
type ServiceInvoker interface {
	Invoke(ctx context.Context, svc *domain.ServiceDescriptor, input json.RawMessage) (json.RawMessage, error)
}

// --- Service Ports (Business Logic) ---

// SessionService is the wallet-signature challenge/response authority.
type SessionService interface {
	IssueNonce(ctx context.Context, wallet string) (*NonceChallenge, error)
	Authenticate(ctx context.Context, req AuthenticateRequest) (*AuthResult, error)
	Validate(ctx context.Context, token string) (*domain.Session, error)
	Revoke(ctx context.Context, sessionID uuid.UUID) error
	RevokeAll(ctx context.Context, wallet string) error
}

// NonceChallenge is the issued challenge plus the exact message to sign.
type NonceChallenge struct {
	Nonce     string
	Message   string
	ExpiresAt time.Time
}

// AuthenticateRequest holds a signed challenge exchange.
type AuthenticateRequest struct {
	WalletAddress string
	Signature     string
	Message       string
}

// AuthResult is a freshly minted session.
type AuthResult struct {
	Token         string
	WalletAddress string
	ExpiresAt     time.Time
}

// YieldService derives spendable yield from staked balances.
type YieldService interface {
	// GetYieldInfo never fails: on upstream trouble it degrades to the last
	// cached snapshot, or a zero snapshot.
	GetYieldInfo(ctx context.Context, wallet string) *domain.YieldSnapshot
	// GetSpendableYield is gross yield minus active allocations, floored at zero.
	GetSpendableYield(ctx context.Context, wallet string) (decimal.Decimal, error)
}

// AllocationService reserves spendable yield for bounded time windows.
type AllocationService interface {
	Allocate(ctx context.Context, wallet string, amount decimal.Decimal, serviceID string) (*domain.Allocation, error)
	Consume(ctx context.Context, id uuid.UUID) (*domain.Allocation, error)
	Release(ctx context.Context, id uuid.UUID) (*domain.Allocation, error)
	ReclaimExpired(ctx context.Context) (int64, error)
}

// PrepaidService manages the per-wallet prepaid balance ledger.
type PrepaidService interface {
	Topup(ctx context.Context, req TopupRequest) (*PrepaidResult, error)
	Deduct(ctx context.Context, wallet string, amount decimal.Decimal, serviceID string) (*PrepaidResult, error)
	Refund(ctx context.Context, wallet string, amount decimal.Decimal, serviceID string) (*PrepaidResult, error)
	GetBalance(ctx context.Context, wallet string) (*domain.PrepaidBalance, error)
	ListTransactions(ctx context.Context, wallet string, limit int) ([]domain.PrepaidTransaction, error)
	CalculatePrepaidPrice(svc *domain.ServiceDescriptor, basePrice decimal.Decimal) decimal.Decimal
}

// TopupRequest holds validated input for a prepaid top-up.
type TopupRequest struct {
	WalletAddress   string
	Amount          decimal.Decimal
	PaymentProofRef string
}

// PrepaidResult is the outcome of a prepaid balance mutation.
type PrepaidResult struct {
	NewBalance  decimal.Decimal
	Transaction *domain.PrepaidTransaction
}

// CatalogService is the read-only service registry with filtered discovery.
type CatalogService interface {
	Discover(ctx context.Context, filters DiscoveryFilters) ([]domain.ServiceDescriptor, error)
	GetByID(ctx context.Context, id string) (*domain.ServiceDescriptor, error)
	ListCategories(ctx context.Context) ([]string, error)
	PricingSummary(ctx context.Context) (*PricingSummary, error)
}

// DiscoveryFilters compose in-memory predicates over the active-service set.
type DiscoveryFilters struct {
	Category      *string
	MaxPrice      *decimal.Decimal
	PricingScheme *domain.PricingScheme
}

// PricingSummary aggregates catalog prices.
type PricingSummary struct {
	Min   decimal.Decimal
	Max   decimal.Decimal
	Avg   decimal.Decimal
	Count int
}

// PaymentService is the prepare/execute facade over the two-phase protocol.
type PaymentService interface {
	Prepare(ctx context.Context, req PrepareRequest) (*PaymentDescriptor, error)
	Execute(ctx context.Context, req ExecuteRequest) (*Receipt, error)
}

// PrepareRequest holds validated input for payment preparation.
type PrepareRequest struct {
	ServiceID     string
	WalletAddress string
	UsePrepaid    bool
	// SubscriptionActive is asserted by the caller and trusted at this layer;
	// it is verified upstream.
	SubscriptionActive bool
}

// PaymentMethod labels how a purchase is funded.
const (
	PaymentMethodYield        = "yield"
	PaymentMethodPrepaid      = "prepaid"
	PaymentMethodSubscription = "subscription"
)

// PaymentRequirements is the settlement envelope of a 402-style descriptor.
type PaymentRequirements struct {
	Scheme            string          `json:"scheme"`
	Asset             string          `json:"asset"`
	PayTo             string          `json:"pay_to"`
	Amount            decimal.Decimal `json:"amount"`
	MaxTimeoutSeconds int             `json:"max_timeout_seconds"`
}

// FundsInfo reports the shortfall arithmetic for a prepared payment.
type FundsInfo struct {
	Required  decimal.Decimal `json:"required"`
	Available decimal.Decimal `json:"available"`
}

// PaymentDescriptor is the outcome of Prepare. PaymentID is set only when a
// yield allocation was reserved.
type PaymentDescriptor struct {
	PaymentID     string               `json:"payment_id,omitempty"`
	PaymentMethod string               `json:"payment_method"`
	Requirements  *PaymentRequirements `json:"requirements,omitempty"`
	Funds         FundsInfo            `json:"funds"`
	ExpiresAt     *time.Time           `json:"expires_at,omitempty"`
}

// ExecuteRequest holds validated input for payment execution.
type ExecuteRequest struct {
	ServiceID          string
	PaymentID          string
	WalletAddress      string
	UsePrepaid         bool
	SubscriptionActive bool
	Input              json.RawMessage
}

// Receipt is emitted on successful execution.
type Receipt struct {
	PaymentID     string          `json:"payment_id,omitempty"`
	ServiceID     string          `json:"service_id"`
	BaseCost      decimal.Decimal `json:"base_cost"`
	PlatformFee   decimal.Decimal `json:"platform_fee"`
	TotalCost     decimal.Decimal `json:"total_cost"`
	Currency      string          `json:"currency"`
	PaymentMethod string          `json:"payment_method"`
	Timestamp     time.Time       `json:"timestamp"`
	Result        json.RawMessage `json:"result,omitempty"`
}
