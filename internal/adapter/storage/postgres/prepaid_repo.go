package postgres

import (
	"context"
	"errors"
	"fmt"

	"yield-spend-gateway/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// PrepaidRepo implements ports.PrepaidRepository.
type PrepaidRepo struct {
	pool Pool
}

// NewPrepaidRepo creates a new PrepaidRepo.
func NewPrepaidRepo(pool Pool) *PrepaidRepo {
	return &PrepaidRepo{pool: pool}
}

const prepaidBalanceColumns = `wallet_address, balance::text, last_topup, updated_at`

// LockWallet takes a transaction-scoped advisory lock keyed on the wallet
// address. The row lock in GetBalanceForUpdate locks nothing when the wallet
// has no balance row yet, so every mutation serialises here first. Seed 1
// keeps the keyspace disjoint from the allocation wallet lock.
func (r *PrepaidRepo) LockWallet(ctx context.Context, tx pgx.Tx, wallet string) error {
	_, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1, 1))`, wallet)
	if err != nil {
		return fmt.Errorf("lock wallet %s: %w", wallet, err)
	}
	return nil
}

func scanPrepaidBalance(row pgx.Row) (*domain.PrepaidBalance, error) {
	b := &domain.PrepaidBalance{}
	var balance string
	err := row.Scan(&b.WalletAddress, &balance, &b.LastTopup, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	b.Balance, err = decimal.NewFromString(balance)
	if err != nil {
		return nil, fmt.Errorf("parse prepaid balance: %w", err)
	}
	return b, nil
}

// GetBalance fetches a wallet's balance row without locking.
func (r *PrepaidRepo) GetBalance(ctx context.Context, wallet string) (*domain.PrepaidBalance, error) {
	query := `SELECT ` + prepaidBalanceColumns + ` FROM prepaid_balances WHERE wallet_address = $1`

	b, err := scanPrepaidBalance(r.pool.QueryRow(ctx, query, wallet))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get prepaid balance: %w", err)
	}
	return b, nil
}

// GetBalanceForUpdate fetches a wallet's balance row with pessimistic
// locking. MUST be called within a transaction, after LockWallet.
func (r *PrepaidRepo) GetBalanceForUpdate(ctx context.Context, tx pgx.Tx, wallet string) (*domain.PrepaidBalance, error) {
	query := `SELECT ` + prepaidBalanceColumns + ` FROM prepaid_balances WHERE wallet_address = $1 FOR UPDATE`

	b, err := scanPrepaidBalance(tx.QueryRow(ctx, query, wallet))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get prepaid balance for update: %w", err)
	}
	return b, nil
}

// CreateBalance inserts the wallet's balance row on first top-up.
func (r *PrepaidRepo) CreateBalance(ctx context.Context, tx pgx.Tx, b *domain.PrepaidBalance) error {
	query := `INSERT INTO prepaid_balances (wallet_address, balance, last_topup, updated_at)
		VALUES ($1, $2::numeric, $3, $4)`

	_, err := tx.Exec(ctx, query, b.WalletAddress, b.Balance.String(), b.LastTopup, b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert prepaid balance: %w", err)
	}
	return nil
}

// UpdateBalance writes the new balance within a transaction.
func (r *PrepaidRepo) UpdateBalance(ctx context.Context, tx pgx.Tx, b *domain.PrepaidBalance) error {
	query := `UPDATE prepaid_balances SET balance = $2::numeric, last_topup = $3, updated_at = $4
		WHERE wallet_address = $1`

	tag, err := tx.Exec(ctx, query, b.WalletAddress, b.Balance.String(), b.LastTopup, b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update prepaid balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("prepaid balance not found: %s", b.WalletAddress)
	}
	return nil
}

// AppendTransaction inserts one immutable log row within the same
// transaction as the balance mutation it records.
func (r *PrepaidRepo) AppendTransaction(ctx context.Context, tx pgx.Tx, t *domain.PrepaidTransaction) error {
	query := `INSERT INTO prepaid_transactions (id, wallet_address, type, amount, service_id, payment_tx, balance_after, created_at)
		VALUES ($1, $2, $3, $4::numeric, $5, $6, $7::numeric, $8)`

	_, err := tx.Exec(ctx, query,
		t.ID, t.WalletAddress, t.Type, t.Amount.String(),
		t.ServiceID, t.PaymentTx, t.BalanceAfter.String(), t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert prepaid transaction: %w", err)
	}
	return nil
}

// ListTransactions returns a wallet's log, newest first.
func (r *PrepaidRepo) ListTransactions(ctx context.Context, wallet string, limit int) ([]domain.PrepaidTransaction, error) {
	query := `SELECT id, wallet_address, type, amount::text, service_id, payment_tx, balance_after::text, created_at
		FROM prepaid_transactions WHERE wallet_address = $1 ORDER BY created_at DESC LIMIT $2`

	rows, err := r.pool.Query(ctx, query, wallet, limit)
	if err != nil {
		return nil, fmt.Errorf("list prepaid transactions: %w", err)
	}
	defer rows.Close()

	var txns []domain.PrepaidTransaction
	for rows.Next() {
		var t domain.PrepaidTransaction
		var amount, balanceAfter string
		if err := rows.Scan(&t.ID, &t.WalletAddress, &t.Type, &amount, &t.ServiceID, &t.PaymentTx, &balanceAfter, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan prepaid transaction: %w", err)
		}
		if t.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("parse transaction amount: %w", err)
		}
		if t.BalanceAfter, err = decimal.NewFromString(balanceAfter); err != nil {
			return nil, fmt.Errorf("parse transaction balance_after: %w", err)
		}
		txns = append(txns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate prepaid transactions: %w", err)
	}
	return txns, nil
}
