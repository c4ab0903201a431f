package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// YieldSnapshot is a derived, cached view of a wallet's staked balance and
// its spendable appreciation. It is recomputed from the upstream balance
// source on cache miss and never written by more than one path.
type YieldSnapshot struct {
	WalletAddress       string          `json:"wallet_address"`
	StakedAmount        decimal.Decimal `json:"staked_amount"`
	ImpliedExchangeRate decimal.Decimal `json:"implied_exchange_rate"`
	SpendableYield      decimal.Decimal `json:"spendable_yield"`
	APY                 float64         `json:"apy"`
	ComputedAt          time.Time       `json:"computed_at"`
}

// IsFresh reports whether the snapshot is within the freshness window.
func (y *YieldSnapshot) IsFresh(now time.Time, ttl time.Duration) bool {
	return now.Before(y.ComputedAt.Add(ttl))
}

// ZeroYieldSnapshot is the conservative fallback when the upstream balance
// source is unreachable and no cached value exists: downstream affordability
// checks fail toward "insufficient funds" instead of crashing.
func ZeroYieldSnapshot(wallet string, apy float64, now time.Time) *YieldSnapshot {
	return &YieldSnapshot{
		WalletAddress:       wallet,
		StakedAmount:        decimal.Zero,
		ImpliedExchangeRate: decimal.NewFromInt(1),
		SpendableYield:      decimal.Zero,
		APY:                 apy,
		ComputedAt:          now,
	}
}
