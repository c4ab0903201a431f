package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRoundMoney_HalfUp(t *testing.T) {
	cases := map[string]string{
		"1.2345675":  "1.234568",
		"1.2345674":  "1.234567",
		"0.0000005":  "0.000001",
		"3":          "3",
		"10.1234561": "10.123456",
	}
	for in, want := range cases {
		d := decimal.RequireFromString(in)
		assert.Equal(t, want, RoundMoney(d).String(), "input %s", in)
	}
}

func TestMoneyString_SixDecimals(t *testing.T) {
	assert.Equal(t, "3.000000", MoneyString(decimal.NewFromInt(3)))
	assert.Equal(t, "0.030000", MoneyString(decimal.RequireFromString("0.03")))
}

func TestNonce_IsUsable(t *testing.T) {
	now := time.Now()
	n := &Nonce{Value: "abc", ExpiresAt: now.Add(10 * time.Minute)}
	assert.True(t, n.IsUsable(now))

	used := now
	n.UsedAt = &used
	assert.False(t, n.IsUsable(now), "used nonce is never usable again")

	n.UsedAt = nil
	assert.False(t, n.IsUsable(now.Add(11*time.Minute)), "expired nonce is unusable")
}

func TestSession_IsActive(t *testing.T) {
	now := time.Now()
	s := &Session{ExpiresAt: now.Add(24 * time.Hour)}
	assert.True(t, s.IsActive(now))

	revoked := now
	s.RevokedAt = &revoked
	assert.False(t, s.IsActive(now))

	s.RevokedAt = nil
	assert.False(t, s.IsActive(now.Add(25*time.Hour)))
}

func TestAllocation_Lifecycle(t *testing.T) {
	now := time.Now()
	a := &Allocation{Status: AllocationStatusPending, ExpiresAt: now.Add(5 * time.Minute)}
	assert.True(t, a.IsActive())
	assert.False(t, a.IsTerminal())
	assert.False(t, a.IsExpired(now))

	a.Status = AllocationStatusSpent
	assert.False(t, a.IsActive())
	assert.True(t, a.IsTerminal())

	a.Status = AllocationStatusReturned
	assert.True(t, a.IsTerminal())

	a.Status = AllocationStatusAllocated
	assert.True(t, a.IsActive())
	assert.True(t, a.IsExpired(now.Add(5*time.Minute)))
}

func TestServiceDescriptor_TotalCost(t *testing.T) {
	s := &ServiceDescriptor{
		Price:       decimal.RequireFromString("0.03"),
		PlatformFee: decimal.RequireFromString("0.001"),
	}
	assert.Equal(t, "0.031", s.TotalCost().String())
}

func TestYieldSnapshot_Freshness(t *testing.T) {
	now := time.Now()
	y := &YieldSnapshot{ComputedAt: now.Add(-2 * time.Minute)}
	assert.True(t, y.IsFresh(now, 5*time.Minute))
	assert.False(t, y.IsFresh(now, time.Minute))
}

func TestZeroYieldSnapshot(t *testing.T) {
	now := time.Now()
	y := ZeroYieldSnapshot("wallet1", 8.0, now)
	assert.True(t, y.SpendableYield.IsZero())
	assert.True(t, y.StakedAmount.IsZero())
	assert.Equal(t, "1", y.ImpliedExchangeRate.String())
	assert.Equal(t, 8.0, y.APY)
}
