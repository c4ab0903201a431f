package postgres

import (
	"context"
	"testing"
	"time"

	"yield-spend-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBalance(wallet string) *domain.PrepaidBalance {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.PrepaidBalance{
		WalletAddress: wallet,
		Balance:       decimal.RequireFromString("25.500000"),
		LastTopup:     &now,
		UpdatedAt:     now,
	}
}

func balanceRow(b *domain.PrepaidBalance) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"wallet_address", "balance", "last_topup", "updated_at"}).
		AddRow(b.WalletAddress, b.Balance.String(), b.LastTopup, b.UpdatedAt)
}

func TestPrepaidRepo_LockWallet(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPrepaidRepo(mock)

	mock.ExpectBegin()
	mock.ExpectExec("SELECT pg_advisory_xact_lock").
		WithArgs("wallet").
		WillReturnResult(pgxmock.NewResult("SELECT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.LockWallet(context.Background(), tx, "wallet")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPrepaidRepo_GetBalance(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPrepaidRepo(mock)
	b := newTestBalance("wallet")

	mock.ExpectQuery("SELECT .+ FROM prepaid_balances WHERE wallet_address").
		WithArgs(b.WalletAddress).
		WillReturnRows(balanceRow(b))

	result, err := repo.GetBalance(context.Background(), b.WalletAddress)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.Balance.Equal(b.Balance))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPrepaidRepo_GetBalance_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPrepaidRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM prepaid_balances WHERE wallet_address").
		WithArgs("unknown").
		WillReturnRows(pgxmock.NewRows([]string{"wallet_address", "balance", "last_topup", "updated_at"}))

	result, err := repo.GetBalance(context.Background(), "unknown")
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPrepaidRepo_GetBalanceForUpdate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPrepaidRepo(mock)
	b := newTestBalance("wallet")

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .+ FROM prepaid_balances WHERE wallet_address .+ FOR UPDATE").
		WithArgs(b.WalletAddress).
		WillReturnRows(balanceRow(b))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	result, err := repo.GetBalanceForUpdate(context.Background(), tx, b.WalletAddress)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.Balance.Equal(b.Balance))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPrepaidRepo_CreateBalance(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPrepaidRepo(mock)
	b := newTestBalance("wallet")

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO prepaid_balances").
		WithArgs(b.WalletAddress, b.Balance.String(), b.LastTopup, b.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.CreateBalance(context.Background(), tx, b)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPrepaidRepo_UpdateBalance(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPrepaidRepo(mock)
	b := newTestBalance("wallet")

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE prepaid_balances SET balance").
		WithArgs(b.WalletAddress, b.Balance.String(), b.LastTopup, b.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.UpdateBalance(context.Background(), tx, b)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPrepaidRepo_UpdateBalance_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPrepaidRepo(mock)
	b := newTestBalance("wallet")

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE prepaid_balances SET balance").
		WithArgs(b.WalletAddress, b.Balance.String(), b.LastTopup, b.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.UpdateBalance(context.Background(), tx, b)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPrepaidRepo_AppendTransaction(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPrepaidRepo(mock)
	svcID := "svc-translate"
	txn := &domain.PrepaidTransaction{
		ID:            uuid.New(),
		WalletAddress: "wallet",
		Type:          domain.PrepaidTxDeduction,
		Amount:        decimal.RequireFromString("0.945000"),
		ServiceID:     &svcID,
		PaymentTx:     nil,
		BalanceAfter:  decimal.RequireFromString("24.555000"),
		CreatedAt:     time.Now().UTC().Truncate(time.Microsecond),
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO prepaid_transactions").
		WithArgs(txn.ID, txn.WalletAddress, txn.Type, txn.Amount.String(),
			txn.ServiceID, txn.PaymentTx, txn.BalanceAfter.String(), txn.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.AppendTransaction(context.Background(), tx, txn)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPrepaidRepo_ListTransactions(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPrepaidRepo(mock)
	now := time.Now().UTC().Truncate(time.Microsecond)

	rows := pgxmock.NewRows([]string{"id", "wallet_address", "type", "amount", "service_id", "payment_tx", "balance_after", "created_at"}).
		AddRow(uuid.New(), "wallet", domain.PrepaidTxDeduction, "0.945000", ptr("svc-translate"), (*string)(nil), "24.555000", now).
		AddRow(uuid.New(), "wallet", domain.PrepaidTxTopup, "25.500000", (*string)(nil), ptr("5k3j...sig"), "25.500000", now.Add(-time.Hour))

	mock.ExpectQuery("SELECT .+ FROM prepaid_transactions WHERE wallet_address").
		WithArgs("wallet", 50).
		WillReturnRows(rows)

	txns, err := repo.ListTransactions(context.Background(), "wallet", 50)
	require.NoError(t, err)
	require.Len(t, txns, 2)
	assert.Equal(t, domain.PrepaidTxDeduction, txns[0].Type)
	assert.True(t, txns[1].Amount.Equal(decimal.RequireFromString("25.5")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func ptr(s string) *string { return &s }
