package solana

import (
	"context"
	"fmt"
	"strings"
	"time"

	"yield-spend-gateway/config"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/shopspring/decimal"
)

const (
	usdcMintAddressMainnet = "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v" // mainnet only
	usdcDecimals           = 6
)

// StakedBalanceClient implements ports.StakedBalanceSource against Solana RPC.
// A wallet's staked principal is read as its USDC token account balance; the
// associated token account is derived from the wallet address on every call.
type StakedBalanceClient struct {
	rpcClient *rpc.Client
	mint      solana.PublicKey
	timeout   time.Duration
}

// NewStakedBalanceClient creates a Solana RPC balance reader.
func NewStakedBalanceClient(cfg config.SolanaConfig) (*StakedBalanceClient, error) {
	mint, err := solana.PublicKeyFromBase58(usdcMintAddressMainnet)
	if err != nil {
		return nil, fmt.Errorf("invalid mint address: %w", err)
	}

	return &StakedBalanceClient{
		rpcClient: rpc.New(cfg.RPCURL),
		mint:      mint,
		timeout:   cfg.Timeout,
	}, nil
}

// GetStakedBalance reads the wallet's token balance in whole units.
// A wallet with no token account holds zero, not an error.
func (c *StakedBalanceClient) GetStakedBalance(ctx context.Context, wallet string) (decimal.Decimal, error) {
	owner, err := solana.PublicKeyFromBase58(wallet)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid wallet address: %w", err)
	}

	ata, _, err := solana.FindAssociatedTokenAddress(owner, c.mint)
	if err != nil {
		return decimal.Zero, fmt.Errorf("derive token account: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	balance, err := c.rpcClient.GetTokenAccountBalance(ctx, ata, rpc.CommitmentConfirmed)
	if err != nil {
		// Wallets that never received the token have no account at the
		// derived address.
		if isAccountNotFoundError(err) {
			return decimal.Zero, nil
		}
		return decimal.Zero, fmt.Errorf("get token account balance: %w", err)
	}

	if balance.Value == nil || balance.Value.Amount == "" {
		return decimal.Zero, nil
	}

	micro, err := decimal.NewFromString(balance.Value.Amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse token balance %q: %w", balance.Value.Amount, err)
	}
	return micro.Shift(-usdcDecimals), nil
}

func isAccountNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "could not find account") || strings.Contains(msg, "Invalid param")
}
