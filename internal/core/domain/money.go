package domain

import "github.com/shopspring/decimal"

// MoneyScale is the number of fractional digits carried by every monetary
// value in the system.
const MoneyScale = 6

// RoundMoney normalises a monetary value to MoneyScale fractional digits,
// rounding half away from zero.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyScale)
}

// MoneyString renders a monetary value with exactly MoneyScale fractional
// digits, e.g. "3.000000".
func MoneyString(d decimal.Decimal) string {
	return d.StringFixed(MoneyScale)
}
