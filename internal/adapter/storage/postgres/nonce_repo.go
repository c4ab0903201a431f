package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"yield-spend-gateway/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// NonceRepo implements ports.NonceRepository.
type NonceRepo struct {
	pool Pool
}

// NewNonceRepo creates a new NonceRepo.
func NewNonceRepo(pool Pool) *NonceRepo {
	return &NonceRepo{pool: pool}
}

// Create inserts a new challenge nonce.
func (r *NonceRepo) Create(ctx context.Context, n *domain.Nonce) error {
	query := `INSERT INTO nonces (value, wallet_address, expires_at, used_at, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.pool.Exec(ctx, query, n.Value, n.WalletAddress, n.ExpiresAt, n.UsedAt, n.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert nonce: %w", err)
	}
	return nil
}

// Consume marks the nonce used in a single conditional update. The WHERE
// clause is the replay guard: only an unused, unexpired nonce matches, so
// concurrent consumers race on one row and exactly one wins.
func (r *NonceRepo) Consume(ctx context.Context, value, wallet string, now time.Time) (*domain.Nonce, error) {
	query := `UPDATE nonces SET used_at = $3
		WHERE value = $1 AND wallet_address = $2 AND used_at IS NULL AND expires_at > $3
		RETURNING value, wallet_address, expires_at, used_at, created_at`

	n := &domain.Nonce{}
	err := r.pool.QueryRow(ctx, query, value, wallet, now).Scan(
		&n.Value, &n.WalletAddress, &n.ExpiresAt, &n.UsedAt, &n.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("consume nonce: %w", err)
	}
	return n, nil
}

// DeleteExpired removes nonces whose window has passed, used or not.
func (r *NonceRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM nonces WHERE expires_at <= $1`, now)
	if err != nil {
		return 0, fmt.Errorf("delete expired nonces: %w", err)
	}
	return tag.RowsAffected(), nil
}
