package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PrepaidTransactionType is the kind of prepaid balance movement.
type PrepaidTransactionType string

const (
	PrepaidTxTopup     PrepaidTransactionType = "topup"
	PrepaidTxDeduction PrepaidTransactionType = "deduction"
	PrepaidTxRefund    PrepaidTransactionType = "refund"
)

// PrepaidBalance is the directly-funded spending balance of a wallet,
// independent of yield. One row per wallet; balance never goes negative.
type PrepaidBalance struct {
	WalletAddress string          `json:"wallet_address"`
	Balance       decimal.Decimal `json:"balance"`
	LastTopup     *time.Time      `json:"last_topup,omitempty"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// PrepaidTransaction is an append-only ledger entry. Every balance mutation
// produces exactly one row carrying the post-mutation balance, so the full
// history reconstructs the balance at any point.
type PrepaidTransaction struct {
	ID            uuid.UUID              `json:"id"`
	WalletAddress string                 `json:"wallet_address"`
	Type          PrepaidTransactionType `json:"type"`
	Amount        decimal.Decimal        `json:"amount"`
	ServiceID     *string                `json:"service_id,omitempty"`
	PaymentTx     *string                `json:"payment_tx,omitempty"`
	BalanceAfter  decimal.Decimal        `json:"balance_after"`
	CreatedAt     time.Time              `json:"created_at"`
}
