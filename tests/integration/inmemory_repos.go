package integration

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"yield-spend-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

// --- In-Memory Nonce Repo ---

type inMemoryNonceRepo struct {
	mu     sync.Mutex
	nonces map[string]*domain.Nonce
}

func newInMemoryNonceRepo() *inMemoryNonceRepo {
	return &inMemoryNonceRepo{nonces: make(map[string]*domain.Nonce)}
}

func (r *inMemoryNonceRepo) Create(ctx context.Context, nonce *domain.Nonce) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := *nonce
	r.nonces[n.Value] = &n
	return nil
}

func (r *inMemoryNonceRepo) Consume(ctx context.Context, value, wallet string, now time.Time) (*domain.Nonce, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n, ok := r.nonces[value]
	if !ok || n.WalletAddress != wallet || !n.IsUsable(now) {
		return nil, nil
	}
	used := now
	n.UsedAt = &used
	out := *n
	return &out, nil
}

func (r *inMemoryNonceRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for value, n := range r.nonces {
		if !now.Before(n.ExpiresAt) {
			delete(r.nonces, value)
			count++
		}
	}
	return count, nil
}

// --- In-Memory Session Repo ---

type inMemorySessionRepo struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*domain.Session
}

func newInMemorySessionRepo() *inMemorySessionRepo {
	return &inMemorySessionRepo{sessions: make(map[uuid.UUID]*domain.Session)}
}

func (r *inMemorySessionRepo) Create(ctx context.Context, session *domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := *session
	r.sessions[s.ID] = &s
	return nil
}

func (r *inMemorySessionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, nil
	}
	out := *s
	return &out, nil
}

func (r *inMemorySessionRepo) Revoke(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok || s.RevokedAt != nil {
		return false, nil
	}
	revoked := at
	s.RevokedAt = &revoked
	return true, nil
}

func (r *inMemorySessionRepo) RevokeAllForWallet(ctx context.Context, wallet string, at time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, s := range r.sessions {
		if s.WalletAddress == wallet && s.RevokedAt == nil {
			revoked := at
			s.RevokedAt = &revoked
			count++
		}
	}
	return count, nil
}

func (r *inMemorySessionRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for id, s := range r.sessions {
		if !now.Before(s.ExpiresAt) {
			delete(r.sessions, id)
			count++
		}
	}
	return count, nil
}

// --- In-Memory Allocation Repo ---

type inMemoryAllocationRepo struct {
	mu          sync.Mutex
	allocations map[uuid.UUID]*domain.Allocation
}

func newInMemoryAllocationRepo() *inMemoryAllocationRepo {
	return &inMemoryAllocationRepo{allocations: make(map[uuid.UUID]*domain.Allocation)}
}

// LockWallet is a no-op: the in-memory transactor serialises all allocation
// transactions globally, which subsumes the per-wallet advisory lock.
func (r *inMemoryAllocationRepo) LockWallet(ctx context.Context, tx pgx.Tx, wallet string) error {
	return nil
}

func (r *inMemoryAllocationRepo) SumActiveTx(ctx context.Context, tx pgx.Tx, wallet string, now time.Time) (decimal.Decimal, error) {
	return r.SumActive(ctx, wallet, now)
}

func (r *inMemoryAllocationRepo) SumActive(ctx context.Context, wallet string, now time.Time) (decimal.Decimal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sum := decimal.Zero
	for _, a := range r.allocations {
		if a.WalletAddress == wallet && a.IsActive() && !a.IsExpired(now) {
			sum = sum.Add(a.Amount)
		}
	}
	return sum, nil
}

func (r *inMemoryAllocationRepo) Create(ctx context.Context, tx pgx.Tx, alloc *domain.Allocation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a := *alloc
	r.allocations[a.ID] = &a
	return nil
}

func (r *inMemoryAllocationRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Allocation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.allocations[id]
	if !ok {
		return nil, nil
	}
	out := *a
	return &out, nil
}

func (r *inMemoryAllocationRepo) Consume(ctx context.Context, id uuid.UUID, now time.Time) (*domain.Allocation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.allocations[id]
	if !ok || !a.IsActive() || a.IsExpired(now) {
		return nil, nil
	}
	a.Status = domain.AllocationStatusSpent
	out := *a
	return &out, nil
}

func (r *inMemoryAllocationRepo) Release(ctx context.Context, id uuid.UUID) (*domain.Allocation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.allocations[id]
	if !ok || a.Status != domain.AllocationStatusSpent {
		return nil, nil
	}
	a.Status = domain.AllocationStatusReturned
	out := *a
	return &out, nil
}

func (r *inMemoryAllocationRepo) ReclaimExpired(ctx context.Context, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, a := range r.allocations {
		if a.IsActive() && a.IsExpired(now) {
			a.Status = domain.AllocationStatusReturned
			count++
		}
	}
	return count, nil
}

// --- In-Memory Prepaid Repo ---

type inMemoryPrepaidRepo struct {
	mu       sync.Mutex
	balances map[string]*domain.PrepaidBalance
	ledger   []domain.PrepaidTransaction
}

func newInMemoryPrepaidRepo() *inMemoryPrepaidRepo {
	return &inMemoryPrepaidRepo{balances: make(map[string]*domain.PrepaidBalance)}
}

func (r *inMemoryPrepaidRepo) GetBalance(ctx context.Context, wallet string) (*domain.PrepaidBalance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.balances[wallet]
	if !ok {
		return nil, nil
	}
	out := *b
	return &out, nil
}

// LockWallet is a no-op: the in-memory transactor serialises all prepaid
// transactions globally, which subsumes the per-wallet advisory lock.
func (r *inMemoryPrepaidRepo) LockWallet(ctx context.Context, tx pgx.Tx, wallet string) error {
	return nil
}

func (r *inMemoryPrepaidRepo) GetBalanceForUpdate(ctx context.Context, tx pgx.Tx, wallet string) (*domain.PrepaidBalance, error) {
	return r.GetBalance(ctx, wallet)
}

func (r *inMemoryPrepaidRepo) CreateBalance(ctx context.Context, tx pgx.Tx, balance *domain.PrepaidBalance) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b := *balance
	r.balances[b.WalletAddress] = &b
	return nil
}

func (r *inMemoryPrepaidRepo) UpdateBalance(ctx context.Context, tx pgx.Tx, balance *domain.PrepaidBalance) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.balances[balance.WalletAddress]; !ok {
		return fmt.Errorf("prepaid balance not found")
	}
	b := *balance
	r.balances[b.WalletAddress] = &b
	return nil
}

func (r *inMemoryPrepaidRepo) AppendTransaction(ctx context.Context, tx pgx.Tx, txn *domain.PrepaidTransaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ledger = append(r.ledger, *txn)
	return nil
}

func (r *inMemoryPrepaidRepo) ListTransactions(ctx context.Context, wallet string, limit int) ([]domain.PrepaidTransaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []domain.PrepaidTransaction
	// Newest first.
	for i := len(r.ledger) - 1; i >= 0 && len(result) < limit; i-- {
		if r.ledger[i].WalletAddress == wallet {
			result = append(result, r.ledger[i])
		}
	}
	return result, nil
}

// --- In-Memory Service Repo ---

type inMemoryServiceRepo struct {
	mu       sync.RWMutex
	services map[string]domain.ServiceDescriptor
}

func newInMemoryServiceRepo(seed ...domain.ServiceDescriptor) *inMemoryServiceRepo {
	r := &inMemoryServiceRepo{services: make(map[string]domain.ServiceDescriptor)}
	for _, s := range seed {
		r.services[s.ID] = s
	}
	return r
}

func (r *inMemoryServiceRepo) ListActive(ctx context.Context) ([]domain.ServiceDescriptor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.ServiceDescriptor
	for _, s := range r.services {
		if s.IsActive {
			result = append(result, s)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *inMemoryServiceRepo) GetByID(ctx context.Context, id string) (*domain.ServiceDescriptor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.services[id]
	if !ok {
		return nil, nil
	}
	out := s
	return &out, nil
}

// --- In-Memory Transactor ---

// inMemoryTransactor serialises every transaction behind one mutex. That is
// stricter than per-wallet advisory locks or row-level FOR UPDATE locks, but
// it preserves the atomicity the services rely on: check-and-mutate sequences
// between Begin and Commit never interleave.
type inMemoryTransactor struct {
	mu sync.Mutex
}

func newInMemoryTransactor() *inMemoryTransactor {
	return &inMemoryTransactor{}
}

func (t *inMemoryTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	t.mu.Lock()
	return &lockedTx{unlock: t.mu.Unlock}, nil
}

// lockedTx holds the transactor's lock until Commit or Rollback. Services
// call both (Commit plus a deferred Rollback), so the release is one-shot.
type lockedTx struct {
	noopTx
	once   sync.Once
	unlock func()
}

func (t *lockedTx) Commit(ctx context.Context) error {
	t.once.Do(t.unlock)
	return nil
}

func (t *lockedTx) Rollback(ctx context.Context) error {
	t.once.Do(t.unlock)
	return nil
}

// noopTx is a no-op pgx.Tx implementation for in-memory testing.
type noopTx struct{}

func (t *noopTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *noopTx) Commit(ctx context.Context) error          { return nil }
func (t *noopTx) Rollback(ctx context.Context) error        { return nil }
func (t *noopTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *noopTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *noopTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *noopTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *noopTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *noopTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *noopTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
func (t *noopTx) Conn() *pgx.Conn { return nil }
