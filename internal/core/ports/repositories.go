package ports

import (
	"context"
	"time"

	"yield-spend-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// NonceRepository defines persistence for single-use challenges.
type NonceRepository interface {
	Create(ctx context.Context, nonce *domain.Nonce) error
	// Consume atomically marks the nonce used. Returns nil (no error) when the
	// nonce does not exist, was already used, or is expired — the three cases
	// are indistinguishable to the caller on purpose.
	Consume(ctx context.Context, value, wallet string, now time.Time) (*domain.Nonce, error)
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// SessionRepository defines persistence for authenticated sessions.
type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Session, error)
	// Revoke marks a single session revoked. Returns false (no error) when no
	// live session matched the id.
	Revoke(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)
	RevokeAllForWallet(ctx context.Context, wallet string, at time.Time) (int64, error)
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// AllocationRepository defines persistence for yield reservations.
// Methods accepting pgx.Tx run inside the allocation transaction so the
// per-wallet lock covers the check-and-insert sequence.
type AllocationRepository interface {
	// LockWallet serialises concurrent allocators for one wallet via a
	// transaction-scoped advisory lock. Released on commit/rollback.
	LockWallet(ctx context.Context, tx pgx.Tx, wallet string) error
	SumActiveTx(ctx context.Context, tx pgx.Tx, wallet string, now time.Time) (decimal.Decimal, error)
	SumActive(ctx context.Context, wallet string, now time.Time) (decimal.Decimal, error)
	Create(ctx context.Context, tx pgx.Tx, alloc *domain.Allocation) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Allocation, error)
	// Consume transitions a reservable allocation to spent in one conditional
	// update. Returns nil when no row matched (missing, expired, or already
	// terminal) — the caller disambiguates via GetByID.
	Consume(ctx context.Context, id uuid.UUID, now time.Time) (*domain.Allocation, error)
	// Release transitions a spent allocation back to returned, undoing a
	// consumption whose downstream purchase failed.
	Release(ctx context.Context, id uuid.UUID) (*domain.Allocation, error)
	ReclaimExpired(ctx context.Context, now time.Time) (int64, error)
}

// PrepaidRepository defines persistence for prepaid balances and their
// append-only transaction log. Tx-scoped methods are used with FOR UPDATE
// row locking so read-compute-write-append is one atomic unit.
type PrepaidRepository interface {
	// LockWallet serialises concurrent balance mutators for one wallet via a
	// transaction-scoped advisory lock. Row locks alone cannot do this: with
	// no balance row yet, FOR UPDATE has nothing to lock and two first
	// top-ups would race into duplicate inserts.
	LockWallet(ctx context.Context, tx pgx.Tx, wallet string) error
	GetBalance(ctx context.Context, wallet string) (*domain.PrepaidBalance, error)
	GetBalanceForUpdate(ctx context.Context, tx pgx.Tx, wallet string) (*domain.PrepaidBalance, error)
	CreateBalance(ctx context.Context, tx pgx.Tx, balance *domain.PrepaidBalance) error
	UpdateBalance(ctx context.Context, tx pgx.Tx, balance *domain.PrepaidBalance) error
	AppendTransaction(ctx context.Context, tx pgx.Tx, txn *domain.PrepaidTransaction) error
	ListTransactions(ctx context.Context, wallet string, limit int) ([]domain.PrepaidTransaction, error)
}

// ServiceRepository defines read access to the service registry.
type ServiceRepository interface {
	ListActive(ctx context.Context) ([]domain.ServiceDescriptor, error)
	GetByID(ctx context.Context, id string) (*domain.ServiceDescriptor, error)
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
