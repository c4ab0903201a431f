package service

import (
	"context"
	"fmt"
	"time"

	"yield-spend-gateway/internal/core/domain"
	"yield-spend-gateway/internal/core/ports"
	"yield-spend-gateway/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// PrepaidServiceImpl implements ports.PrepaidService. Every balance mutation
// runs read-compute-write-append inside one transaction holding a per-wallet
// advisory lock, and emits exactly one ledger row carrying the post-mutation
// balance.
type PrepaidServiceImpl struct {
	transactor  ports.DBTransactor
	prepaidRepo ports.PrepaidRepository
	log         zerolog.Logger
}

// NewPrepaidService creates a new PrepaidServiceImpl.
func NewPrepaidService(transactor ports.DBTransactor, prepaidRepo ports.PrepaidRepository, log zerolog.Logger) *PrepaidServiceImpl {
	return &PrepaidServiceImpl{
		transactor:  transactor,
		prepaidRepo: prepaidRepo,
		log:         log,
	}
}

// Topup credits the wallet's balance. The first top-up creates the row.
func (s *PrepaidServiceImpl) Topup(ctx context.Context, req ports.TopupRequest) (*ports.PrepaidResult, error) {
	if !req.Amount.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}
	amount := domain.RoundMoney(req.Amount)

	var proofRef *string
	if req.PaymentProofRef != "" {
		proofRef = &req.PaymentProofRef
	}

	result, err := s.mutate(ctx, req.WalletAddress, func(balance *domain.PrepaidBalance, tx pgx.Tx, now time.Time) (*domain.PrepaidTransaction, error) {
		balance.Balance = domain.RoundMoney(balance.Balance.Add(amount))
		balance.LastTopup = &now

		return &domain.PrepaidTransaction{
			ID:            uuid.New(),
			WalletAddress: req.WalletAddress,
			Type:          domain.PrepaidTxTopup,
			Amount:        amount,
			PaymentTx:     proofRef,
			BalanceAfter:  balance.Balance,
			CreatedAt:     now,
		}, nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("wallet", req.WalletAddress).
		Str("amount", domain.MoneyString(amount)).
		Str("balance", domain.MoneyString(result.NewBalance)).
		Msg("prepaid topup")
	return result, nil
}

// Deduct debits the wallet's balance for a purchase. Fails without mutation
// when the balance cannot cover the amount.
func (s *PrepaidServiceImpl) Deduct(ctx context.Context, wallet string, amount decimal.Decimal, serviceID string) (*ports.PrepaidResult, error) {
	if !amount.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}
	amount = domain.RoundMoney(amount)

	result, err := s.mutate(ctx, wallet, func(balance *domain.PrepaidBalance, tx pgx.Tx, now time.Time) (*domain.PrepaidTransaction, error) {
		if balance.Balance.LessThan(amount) {
			return nil, apperror.ErrInsufficientPrepaidBalance(
				domain.MoneyString(amount), domain.MoneyString(balance.Balance))
		}
		balance.Balance = domain.RoundMoney(balance.Balance.Sub(amount))

		return &domain.PrepaidTransaction{
			ID:            uuid.New(),
			WalletAddress: wallet,
			Type:          domain.PrepaidTxDeduction,
			Amount:        amount,
			ServiceID:     &serviceID,
			BalanceAfter:  balance.Balance,
			CreatedAt:     now,
		}, nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("wallet", wallet).
		Str("amount", domain.MoneyString(amount)).
		Str("service_id", serviceID).
		Msg("prepaid deduction")
	return result, nil
}

// Refund credits back a prior deduction after a failed purchase.
func (s *PrepaidServiceImpl) Refund(ctx context.Context, wallet string, amount decimal.Decimal, serviceID string) (*ports.PrepaidResult, error) {
	if !amount.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}
	amount = domain.RoundMoney(amount)

	result, err := s.mutate(ctx, wallet, func(balance *domain.PrepaidBalance, tx pgx.Tx, now time.Time) (*domain.PrepaidTransaction, error) {
		balance.Balance = domain.RoundMoney(balance.Balance.Add(amount))

		return &domain.PrepaidTransaction{
			ID:            uuid.New(),
			WalletAddress: wallet,
			Type:          domain.PrepaidTxRefund,
			Amount:        amount,
			ServiceID:     &serviceID,
			BalanceAfter:  balance.Balance,
			CreatedAt:     now,
		}, nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("wallet", wallet).
		Str("amount", domain.MoneyString(amount)).
		Str("service_id", serviceID).
		Msg("prepaid refund")
	return result, nil
}

// GetBalance returns the wallet's balance, zero-valued when no row exists.
func (s *PrepaidServiceImpl) GetBalance(ctx context.Context, wallet string) (*domain.PrepaidBalance, error) {
	balance, err := s.prepaidRepo.GetBalance(ctx, wallet)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if balance == nil {
		return &domain.PrepaidBalance{
			WalletAddress: wallet,
			Balance:       decimal.Zero,
			UpdatedAt:     time.Now().UTC(),
		}, nil
	}
	return balance, nil
}

// ListTransactions returns the wallet's ledger, newest first.
func (s *PrepaidServiceImpl) ListTransactions(ctx context.Context, wallet string, limit int) ([]domain.PrepaidTransaction, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	txns, err := s.prepaidRepo.ListTransactions(ctx, wallet, limit)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	return txns, nil
}

// CalculatePrepaidPrice applies the service's prepaid discount to a base price.
func (s *PrepaidServiceImpl) CalculatePrepaidPrice(svc *domain.ServiceDescriptor, basePrice decimal.Decimal) decimal.Decimal {
	if svc.PrepaidDiscountPercent.IsZero() {
		return domain.RoundMoney(basePrice)
	}
	factor := decimal.NewFromInt(1).Sub(svc.PrepaidDiscountPercent.Div(decimal.NewFromInt(100)))
	return domain.RoundMoney(basePrice.Mul(factor))
}

// mutate runs one locked balance mutation. fn adjusts the balance in place
// and returns the ledger row to append; a nil existing row starts from zero.
func (s *PrepaidServiceImpl) mutate(ctx context.Context, wallet string, fn func(*domain.PrepaidBalance, pgx.Tx, time.Time) (*domain.PrepaidTransaction, error)) (*ports.PrepaidResult, error) {
	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("begin prepaid tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	// Advisory lock first: FOR UPDATE cannot serialise two first mutations
	// when the balance row does not exist yet.
	if err := s.prepaidRepo.LockWallet(ctx, tx, wallet); err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}

	now := time.Now().UTC()
	balance, err := s.prepaidRepo.GetBalanceForUpdate(ctx, tx, wallet)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}

	isNew := balance == nil
	if isNew {
		balance = &domain.PrepaidBalance{
			WalletAddress: wallet,
			Balance:       decimal.Zero,
		}
	}
	balance.UpdatedAt = now

	txn, err := fn(balance, tx, now)
	if err != nil {
		return nil, err
	}

	if isNew {
		err = s.prepaidRepo.CreateBalance(ctx, tx, balance)
	} else {
		err = s.prepaidRepo.UpdateBalance(ctx, tx, balance)
	}
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}

	if err := s.prepaidRepo.AppendTransaction(ctx, tx, txn); err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("commit prepaid tx: %w", err))
	}

	return &ports.PrepaidResult{
		NewBalance:  balance.Balance,
		Transaction: txn,
	}, nil
}
