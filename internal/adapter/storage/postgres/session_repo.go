package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"yield-spend-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SessionRepo implements ports.SessionRepository.
type SessionRepo struct {
	pool Pool
}

// NewSessionRepo creates a new SessionRepo.
func NewSessionRepo(pool Pool) *SessionRepo {
	return &SessionRepo{pool: pool}
}

// Create inserts a new session.
func (r *SessionRepo) Create(ctx context.Context, s *domain.Session) error {
	query := `INSERT INTO sessions (id, wallet_address, nonce, expires_at, revoked_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.pool.Exec(ctx, query, s.ID, s.WalletAddress, s.Nonce, s.ExpiresAt, s.RevokedAt, s.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

// GetByID fetches a session by its UUID.
func (r *SessionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	query := `SELECT id, wallet_address, nonce, expires_at, revoked_at, created_at
		FROM sessions WHERE id = $1`

	s := &domain.Session{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.WalletAddress, &s.Nonce, &s.ExpiresAt, &s.RevokedAt, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get session by id: %w", err)
	}
	return s, nil
}

// Revoke sets revoked_at on a single session. Returns false when no live
// session matched, so callers can tell a miss from a database failure.
func (r *SessionRepo) Revoke(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	query := `UPDATE sessions SET revoked_at = $2 WHERE id = $1 AND revoked_at IS NULL`

	tag, err := r.pool.Exec(ctx, query, id, at)
	if err != nil {
		return false, fmt.Errorf("revoke session: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// RevokeAllForWallet revokes every live session of a wallet.
func (r *SessionRepo) RevokeAllForWallet(ctx context.Context, wallet string, at time.Time) (int64, error) {
	query := `UPDATE sessions SET revoked_at = $2 WHERE wallet_address = $1 AND revoked_at IS NULL`

	tag, err := r.pool.Exec(ctx, query, wallet, at)
	if err != nil {
		return 0, fmt.Errorf("revoke wallet sessions: %w", err)
	}
	return tag.RowsAffected(), nil
}

// DeleteExpired removes sessions past their server-side expiry.
func (r *SessionRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM sessions WHERE expires_at <= $1`, now)
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}
	return tag.RowsAffected(), nil
}
