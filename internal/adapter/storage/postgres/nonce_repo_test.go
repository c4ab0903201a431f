package postgres

import (
	"context"
	"testing"
	"time"

	"yield-spend-gateway/internal/core/domain"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestNonce(wallet string) *domain.Nonce {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.Nonce{
		Value:         "a1b2c3d4e5f6",
		WalletAddress: wallet,
		ExpiresAt:     now.Add(10 * time.Minute),
		UsedAt:        nil,
		CreatedAt:     now,
	}
}

func TestNonceRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewNonceRepo(mock)
	n := newTestNonce("9WzDXwBbmkg8ZTbNMqUxvQRAyrZzDsGYdLVL9zYtAWWM")

	mock.ExpectExec("INSERT INTO nonces").
		WithArgs(n.Value, n.WalletAddress, n.ExpiresAt, n.UsedAt, n.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Create(context.Background(), n)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNonceRepo_Consume(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewNonceRepo(mock)
	n := newTestNonce("9WzDXwBbmkg8ZTbNMqUxvQRAyrZzDsGYdLVL9zYtAWWM")
	now := time.Now().UTC().Truncate(time.Microsecond)
	used := now

	mock.ExpectQuery("UPDATE nonces SET used_at").
		WithArgs(n.Value, n.WalletAddress, now).
		WillReturnRows(pgxmock.NewRows([]string{"value", "wallet_address", "expires_at", "used_at", "created_at"}).
			AddRow(n.Value, n.WalletAddress, n.ExpiresAt, &used, n.CreatedAt))

	result, err := repo.Consume(context.Background(), n.Value, n.WalletAddress, now)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, n.Value, result.Value)
	assert.NotNil(t, result.UsedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNonceRepo_Consume_AlreadyUsed(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewNonceRepo(mock)
	now := time.Now().UTC()

	mock.ExpectQuery("UPDATE nonces SET used_at").
		WithArgs("stale", "wallet", now).
		WillReturnRows(pgxmock.NewRows([]string{"value", "wallet_address", "expires_at", "used_at", "created_at"}))

	result, err := repo.Consume(context.Background(), "stale", "wallet", now)
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNonceRepo_DeleteExpired(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewNonceRepo(mock)
	now := time.Now().UTC()

	mock.ExpectExec("DELETE FROM nonces WHERE expires_at").
		WithArgs(now).
		WillReturnResult(pgxmock.NewResult("DELETE", 3))

	count, err := repo.DeleteExpired(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
