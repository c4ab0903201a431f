package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"yield-spend-gateway/internal/core/domain"
	"yield-spend-gateway/internal/core/ports/mocks"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type yieldTestDeps struct {
	svc           *YieldServiceImpl
	balanceSource *mocks.MockStakedBalanceSource
	cache         *mocks.MockYieldCache
	allocRepo     *mocks.MockAllocationRepository
	ctrl          *gomock.Controller
}

func setupYieldService(t *testing.T) *yieldTestDeps {
	ctrl := gomock.NewController(t)
	d := &yieldTestDeps{
		balanceSource: mocks.NewMockStakedBalanceSource(ctrl),
		cache:         mocks.NewMockYieldCache(ctrl),
		allocRepo:     mocks.NewMockAllocationRepository(ctrl),
		ctrl:          ctrl,
	}
	// Reference date one year back: the implied exchange rate is (1 + apy/100)
	// to within float tolerance, so yield on 1000 staked is close to 80.
	d.svc = NewYieldService(
		d.balanceSource, d.cache, d.allocRepo,
		8.0, time.Now().UTC().Add(-365*24*time.Hour), 5*time.Minute, zerolog.Nop(),
	)
	return d
}

func TestYieldService_GetYieldInfo_FreshCacheHit(t *testing.T) {
	d := setupYieldService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	cached := &domain.YieldSnapshot{
		WalletAddress:  testWallet,
		SpendableYield: decimal.RequireFromString("13.150000"),
		ComputedAt:     time.Now().UTC(),
	}
	d.cache.EXPECT().Get(ctx, testWallet).Return(cached, nil)

	snapshot := d.svc.GetYieldInfo(ctx, testWallet)
	assert.Equal(t, cached, snapshot)
}

func TestYieldService_GetYieldInfo_ComputeOnMiss(t *testing.T) {
	d := setupYieldService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.cache.EXPECT().Get(ctx, testWallet).Return(nil, nil)
	d.balanceSource.EXPECT().GetStakedBalance(ctx, testWallet).
		Return(decimal.NewFromInt(1000), nil)
	d.cache.EXPECT().Set(ctx, testWallet, gomock.Any()).Return(nil)

	snapshot := d.svc.GetYieldInfo(ctx, testWallet)
	require.NotNil(t, snapshot)
	assert.Equal(t, testWallet, snapshot.WalletAddress)
	assert.True(t, snapshot.StakedAmount.Equal(decimal.NewFromInt(1000)))
	// One year at 8% APY on 1000 staked.
	assert.True(t, snapshot.SpendableYield.GreaterThan(decimal.RequireFromString("79")),
		"got %s", snapshot.SpendableYield)
	assert.True(t, snapshot.SpendableYield.LessThan(decimal.RequireFromString("81")),
		"got %s", snapshot.SpendableYield)
}

func TestYieldService_GetYieldInfo_StaleCacheOnUpstreamFailure(t *testing.T) {
	d := setupYieldService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	stale := &domain.YieldSnapshot{
		WalletAddress:  testWallet,
		SpendableYield: decimal.RequireFromString("10.000000"),
		ComputedAt:     time.Now().UTC().Add(-time.Hour),
	}
	d.cache.EXPECT().Get(ctx, testWallet).Return(stale, nil)
	d.balanceSource.EXPECT().GetStakedBalance(ctx, testWallet).
		Return(decimal.Zero, errors.New("rpc unreachable"))

	snapshot := d.svc.GetYieldInfo(ctx, testWallet)
	assert.Equal(t, stale, snapshot)
}

func TestYieldService_GetYieldInfo_ZeroFallback(t *testing.T) {
	d := setupYieldService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.cache.EXPECT().Get(ctx, testWallet).Return(nil, nil)
	d.balanceSource.EXPECT().GetStakedBalance(ctx, testWallet).
		Return(decimal.Zero, errors.New("rpc unreachable"))

	snapshot := d.svc.GetYieldInfo(ctx, testWallet)
	require.NotNil(t, snapshot)
	assert.True(t, snapshot.SpendableYield.IsZero())
	assert.True(t, snapshot.StakedAmount.IsZero())
}

func TestYieldService_GetYieldInfo_CacheErrorDegradesToCompute(t *testing.T) {
	d := setupYieldService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.cache.EXPECT().Get(ctx, testWallet).Return(nil, errors.New("redis down"))
	d.balanceSource.EXPECT().GetStakedBalance(ctx, testWallet).
		Return(decimal.NewFromInt(500), nil)
	d.cache.EXPECT().Set(ctx, testWallet, gomock.Any()).Return(errors.New("redis down"))

	snapshot := d.svc.GetYieldInfo(ctx, testWallet)
	require.NotNil(t, snapshot)
	assert.True(t, snapshot.SpendableYield.IsPositive())
}

func TestYieldService_GetSpendableYield_SubtractsReservations(t *testing.T) {
	d := setupYieldService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	cached := &domain.YieldSnapshot{
		WalletAddress:  testWallet,
		SpendableYield: decimal.RequireFromString("13.150000"),
		ComputedAt:     time.Now().UTC(),
	}
	d.cache.EXPECT().Get(ctx, testWallet).Return(cached, nil)
	d.allocRepo.EXPECT().SumActive(ctx, testWallet, gomock.Any()).
		Return(decimal.RequireFromString("3.150000"), nil)

	spendable, err := d.svc.GetSpendableYield(ctx, testWallet)
	require.NoError(t, err)
	assert.True(t, spendable.Equal(decimal.NewFromInt(10)), "got %s", spendable)
}

func TestYieldService_GetSpendableYield_FloorsAtZero(t *testing.T) {
	d := setupYieldService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	cached := &domain.YieldSnapshot{
		WalletAddress:  testWallet,
		SpendableYield: decimal.RequireFromString("1.000000"),
		ComputedAt:     time.Now().UTC(),
	}
	d.cache.EXPECT().Get(ctx, testWallet).Return(cached, nil)
	d.allocRepo.EXPECT().SumActive(ctx, testWallet, gomock.Any()).
		Return(decimal.RequireFromString("5.000000"), nil)

	spendable, err := d.svc.GetSpendableYield(ctx, testWallet)
	require.NoError(t, err)
	assert.True(t, spendable.IsZero())
}

func TestYieldService_ExchangeRate_BeforeReference(t *testing.T) {
	d := setupYieldService(t)
	defer d.ctrl.Finish()

	svc := NewYieldService(
		d.balanceSource, d.cache, d.allocRepo,
		8.0, time.Now().UTC().Add(24*time.Hour), 5*time.Minute, zerolog.Nop(),
	)
	rate := svc.exchangeRate(time.Now().UTC())
	assert.True(t, rate.Equal(decimal.NewFromInt(1)))
}
