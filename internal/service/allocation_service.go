package service

import (
	"context"
	"fmt"
	"time"

	"yield-spend-gateway/internal/core/domain"
	"yield-spend-gateway/internal/core/ports"
	"yield-spend-gateway/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// AllocationServiceImpl implements ports.AllocationService. Reservations are
// serialised per wallet with an advisory lock, so the affordability check and
// the insert are atomic: the sum of live reservations can never exceed the
// wallet's gross yield at check time.
type AllocationServiceImpl struct {
	transactor    ports.DBTransactor
	allocRepo     ports.AllocationRepository
	yieldSvc      ports.YieldService
	allocationTTL time.Duration
	log           zerolog.Logger
}

// NewAllocationService creates a new AllocationServiceImpl.
func NewAllocationService(
	transactor ports.DBTransactor,
	allocRepo ports.AllocationRepository,
	yieldSvc ports.YieldService,
	allocationTTL time.Duration,
	log zerolog.Logger,
) *AllocationServiceImpl {
	return &AllocationServiceImpl{
		transactor:    transactor,
		allocRepo:     allocRepo,
		yieldSvc:      yieldSvc,
		allocationTTL: allocationTTL,
		log:           log,
	}
}

// Allocate reserves spendable yield for a bounded window.
func (s *AllocationServiceImpl) Allocate(ctx context.Context, wallet string, amount decimal.Decimal, serviceID string) (*domain.Allocation, error) {
	if !amount.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}
	amount = domain.RoundMoney(amount)

	// Gross yield is read outside the transaction; only the reservation sum
	// needs lock protection.
	gross := s.yieldSvc.GetYieldInfo(ctx, wallet).SpendableYield

	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("begin allocation tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if err := s.allocRepo.LockWallet(ctx, tx, wallet); err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}

	now := time.Now().UTC()
	reserved, err := s.allocRepo.SumActiveTx(ctx, tx, wallet, now)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}

	available := gross.Sub(reserved)
	if available.IsNegative() {
		available = decimal.Zero
	}
	if amount.GreaterThan(available) {
		return nil, apperror.ErrInsufficientYield(domain.MoneyString(amount), domain.MoneyString(available))
	}

	alloc := &domain.Allocation{
		ID:            uuid.New(),
		WalletAddress: wallet,
		Amount:        amount,
		ServiceID:     serviceID,
		Status:        domain.AllocationStatusPending,
		CreatedAt:     now,
		ExpiresAt:     now.Add(s.allocationTTL),
	}
	if err := s.allocRepo.Create(ctx, tx, alloc); err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("commit allocation: %w", err))
	}

	s.log.Info().
		Str("wallet", wallet).
		Str("allocation_id", alloc.ID.String()).
		Str("amount", domain.MoneyString(amount)).
		Str("service_id", serviceID).
		Msg("yield allocated")

	return alloc, nil
}

// Consume transitions a live reservation to spent. Exactly one of N
// concurrent consumers wins; the rest see not-prepared or expired.
func (s *AllocationServiceImpl) Consume(ctx context.Context, id uuid.UUID) (*domain.Allocation, error) {
	now := time.Now().UTC()
	alloc, err := s.allocRepo.Consume(ctx, id, now)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if alloc != nil {
		return alloc, nil
	}

	// Distinguish missing from expired/terminal for the caller.
	existing, err := s.allocRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if existing == nil {
		return nil, apperror.ErrPaymentNotPrepared()
	}
	if existing.IsExpired(now) && !existing.IsTerminal() {
		return nil, apperror.ErrPaymentExpired()
	}
	return nil, apperror.ErrPaymentNotPrepared()
}

// Release refunds a consumed reservation after a downstream failure.
func (s *AllocationServiceImpl) Release(ctx context.Context, id uuid.UUID) (*domain.Allocation, error) {
	alloc, err := s.allocRepo.Release(ctx, id)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if alloc == nil {
		return nil, apperror.ErrPaymentNotPrepared()
	}
	s.log.Info().Str("allocation_id", id.String()).Msg("allocation released")
	return alloc, nil
}

// ReclaimExpired returns every timed-out reservation to the spendable pool.
func (s *AllocationServiceImpl) ReclaimExpired(ctx context.Context) (int64, error) {
	count, err := s.allocRepo.ReclaimExpired(ctx, time.Now().UTC())
	if err != nil {
		return 0, apperror.ErrDatabaseError(err)
	}
	if count > 0 {
		s.log.Info().Int64("count", count).Msg("expired allocations reclaimed")
	}
	return count, nil
}
