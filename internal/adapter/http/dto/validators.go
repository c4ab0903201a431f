package dto

import (
	"regexp"

	"yield-spend-gateway/internal/core/domain"

	"github.com/gagliardetto/solana-go"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var safeIDRe = regexp.MustCompile(`^[a-zA-Z0-9_\-\.]+$`)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("safe_id", validateSafeID)
		_ = v.RegisterValidation("wallet_addr", validateWalletAddr)
		_ = v.RegisterValidation("money", validateMoney)
	}
}

// validateSafeID allows alphanumeric, underscore, dash, and dot.
func validateSafeID(fl validator.FieldLevel) bool {
	return safeIDRe.MatchString(fl.Field().String())
}

// validateWalletAddr accepts base58-encoded ed25519 public keys.
func validateWalletAddr(fl validator.FieldLevel) bool {
	return ValidWalletAddress(fl.Field().String())
}

// validateMoney accepts positive decimal strings within the money scale.
func validateMoney(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	if !d.IsPositive() {
		return false
	}
	return d.Exponent() >= -domain.MoneyScale
}

// ValidWalletAddress reports whether s parses as a wallet public key.
func ValidWalletAddress(s string) bool {
	_, err := solana.PublicKeyFromBase58(s)
	return err == nil
}
