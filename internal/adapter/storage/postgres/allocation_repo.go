package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"yield-spend-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// AllocationRepo implements ports.AllocationRepository. Amounts are NUMERIC
// columns read back as text so money never passes through binary floats.
type AllocationRepo struct {
	pool Pool
}

// NewAllocationRepo creates a new AllocationRepo.
func NewAllocationRepo(pool Pool) *AllocationRepo {
	return &AllocationRepo{pool: pool}
}

const allocationColumns = `id, wallet_address, amount::text, service_id, status, created_at, expires_at`

func scanAllocation(row pgx.Row) (*domain.Allocation, error) {
	a := &domain.Allocation{}
	var amount string
	err := row.Scan(&a.ID, &a.WalletAddress, &amount, &a.ServiceID, &a.Status, &a.CreatedAt, &a.ExpiresAt)
	if err != nil {
		return nil, err
	}
	a.Amount, err = decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("parse allocation amount: %w", err)
	}
	return a, nil
}

// LockWallet takes a transaction-scoped advisory lock keyed on the wallet
// address. All allocators for one wallet serialise here; the lock is released
// when the transaction commits or rolls back.
func (r *AllocationRepo) LockWallet(ctx context.Context, tx pgx.Tx, wallet string) error {
	_, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`, wallet)
	if err != nil {
		return fmt.Errorf("lock wallet %s: %w", wallet, err)
	}
	return nil
}

// SumActiveTx sums unexpired pending/allocated amounts inside the allocation
// transaction, after LockWallet.
func (r *AllocationRepo) SumActiveTx(ctx context.Context, tx pgx.Tx, wallet string, now time.Time) (decimal.Decimal, error) {
	return sumActive(ctx, tx, wallet, now)
}

// SumActive sums unexpired pending/allocated amounts without locking.
func (r *AllocationRepo) SumActive(ctx context.Context, wallet string, now time.Time) (decimal.Decimal, error) {
	return sumActive(ctx, r.pool, wallet, now)
}

type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func sumActive(ctx context.Context, q rowQuerier, wallet string, now time.Time) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(amount), 0)::text FROM allocations
		WHERE wallet_address = $1 AND status IN ('pending', 'allocated') AND expires_at > $2`

	var sum string
	if err := q.QueryRow(ctx, query, wallet, now).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("sum active allocations: %w", err)
	}
	d, err := decimal.NewFromString(sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse allocation sum: %w", err)
	}
	return d, nil
}

// Create inserts a reservation within the allocation transaction.
func (r *AllocationRepo) Create(ctx context.Context, tx pgx.Tx, a *domain.Allocation) error {
	query := `INSERT INTO allocations (id, wallet_address, amount, service_id, status, created_at, expires_at)
		VALUES ($1, $2, $3::numeric, $4, $5, $6, $7)`

	_, err := tx.Exec(ctx, query,
		a.ID, a.WalletAddress, a.Amount.String(), a.ServiceID, a.Status, a.CreatedAt, a.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("insert allocation: %w", err)
	}
	return nil
}

// GetByID fetches an allocation regardless of state.
func (r *AllocationRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Allocation, error) {
	query := `SELECT ` + allocationColumns + ` FROM allocations WHERE id = $1`

	a, err := scanAllocation(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get allocation by id: %w", err)
	}
	return a, nil
}

// Consume transitions a reservable allocation to spent. The status and
// expiry predicates make the transition a single compare-and-swap: a consume
// racing a reclaim (or a second consume) resolves to exactly one winner.
func (r *AllocationRepo) Consume(ctx context.Context, id uuid.UUID, now time.Time) (*domain.Allocation, error) {
	query := `UPDATE allocations SET status = 'spent'
		WHERE id = $1 AND status IN ('pending', 'allocated') AND expires_at > $2
		RETURNING ` + allocationColumns

	a, err := scanAllocation(r.pool.QueryRow(ctx, query, id, now))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("consume allocation: %w", err)
	}
	return a, nil
}

// Release undoes a consumption whose purchase failed downstream: spent
// becomes returned, putting the amount back outside the reserved set.
func (r *AllocationRepo) Release(ctx context.Context, id uuid.UUID) (*domain.Allocation, error) {
	query := `UPDATE allocations SET status = 'returned'
		WHERE id = $1 AND status = 'spent'
		RETURNING ` + allocationColumns

	a, err := scanAllocation(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("release allocation: %w", err)
	}
	return a, nil
}

// ReclaimExpired returns every expired, still-active reservation in one
// conditional update. Safe to call repeatedly and concurrently with Consume.
func (r *AllocationRepo) ReclaimExpired(ctx context.Context, now time.Time) (int64, error) {
	query := `UPDATE allocations SET status = 'returned'
		WHERE status IN ('pending', 'allocated') AND expires_at <= $1`

	tag, err := r.pool.Exec(ctx, query, now)
	if err != nil {
		return 0, fmt.Errorf("reclaim expired allocations: %w", err)
	}
	return tag.RowsAffected(), nil
}
