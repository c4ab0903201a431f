package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"yield-spend-gateway/internal/core/domain"
	"yield-spend-gateway/internal/core/ports"
	"yield-spend-gateway/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// YieldServiceImpl implements ports.YieldService. Yield is modeled as
// compound appreciation of the staked principal since a fixed reference date:
//
//	rate = (1 + apy/100)^(elapsedDays/365)
//	yield = staked * (rate - 1)
//
// The exchange rate is computed in float (it is a model parameter, not
// money); everything multiplied against balances is decimal.
type YieldServiceImpl struct {
	balanceSource ports.StakedBalanceSource
	cache         ports.YieldCache
	allocRepo     ports.AllocationRepository
	apy           float64
	referenceDate time.Time
	cacheTTL      time.Duration
	log           zerolog.Logger
}

// NewYieldService creates a new YieldServiceImpl.
func NewYieldService(
	balanceSource ports.StakedBalanceSource,
	cache ports.YieldCache,
	allocRepo ports.AllocationRepository,
	apy float64,
	referenceDate time.Time,
	cacheTTL time.Duration,
	log zerolog.Logger,
) *YieldServiceImpl {
	return &YieldServiceImpl{
		balanceSource: balanceSource,
		cache:         cache,
		allocRepo:     allocRepo,
		apy:           apy,
		referenceDate: referenceDate,
		cacheTTL:      cacheTTL,
		log:           log,
	}
}

// GetYieldInfo returns the wallet's yield snapshot. It never fails: fresh
// cache wins, then a recompute from upstream, then stale cache, then a zero
// snapshot. Degradation always errs toward showing less spendable yield.
func (s *YieldServiceImpl) GetYieldInfo(ctx context.Context, wallet string) *domain.YieldSnapshot {
	now := time.Now().UTC()

	cached, err := s.cache.Get(ctx, wallet)
	if err != nil {
		s.log.Warn().Err(err).Str("wallet", wallet).Msg("yield cache read failed")
		cached = nil
	}
	if cached != nil && cached.IsFresh(now, s.cacheTTL) {
		return cached
	}

	snapshot, err := s.compute(ctx, wallet, now)
	if err != nil {
		s.log.Warn().Err(err).Str("wallet", wallet).Msg("yield recompute failed")
		if cached != nil {
			return cached
		}
		return domain.ZeroYieldSnapshot(wallet, s.apy, now)
	}

	if err := s.cache.Set(ctx, wallet, snapshot); err != nil {
		s.log.Warn().Err(err).Str("wallet", wallet).Msg("yield cache write failed")
	}
	return snapshot
}

// GetSpendableYield is gross yield minus active allocations, floored at zero.
func (s *YieldServiceImpl) GetSpendableYield(ctx context.Context, wallet string) (decimal.Decimal, error) {
	snapshot := s.GetYieldInfo(ctx, wallet)

	reserved, err := s.allocRepo.SumActive(ctx, wallet, time.Now().UTC())
	if err != nil {
		return decimal.Zero, apperror.ErrDatabaseError(fmt.Errorf("sum active allocations: %w", err))
	}

	spendable := snapshot.SpendableYield.Sub(reserved)
	if spendable.IsNegative() {
		return decimal.Zero, nil
	}
	return domain.RoundMoney(spendable), nil
}

func (s *YieldServiceImpl) compute(ctx context.Context, wallet string, now time.Time) (*domain.YieldSnapshot, error) {
	staked, err := s.balanceSource.GetStakedBalance(ctx, wallet)
	if err != nil {
		return nil, fmt.Errorf("staked balance: %w", err)
	}

	rate := s.exchangeRate(now)
	yield := staked.Mul(rate.Sub(decimal.NewFromInt(1)))
	if yield.IsNegative() {
		yield = decimal.Zero
	}

	return &domain.YieldSnapshot{
		WalletAddress:       wallet,
		StakedAmount:        domain.RoundMoney(staked),
		ImpliedExchangeRate: rate,
		SpendableYield:      domain.RoundMoney(yield),
		APY:                 s.apy,
		ComputedAt:          now,
	}, nil
}

// exchangeRate is the modeled principal-to-value rate at t, >= 1 for any
// t at or after the reference date.
func (s *YieldServiceImpl) exchangeRate(now time.Time) decimal.Decimal {
	elapsed := now.Sub(s.referenceDate)
	if elapsed < 0 {
		return decimal.NewFromInt(1)
	}
	elapsedDays := elapsed.Hours() / 24
	rate := math.Pow(1+s.apy/100, elapsedDays/365)
	return decimal.NewFromFloat(rate).Round(12)
}
