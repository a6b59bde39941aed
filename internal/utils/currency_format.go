package utils

import "github.com/shopspring/decimal"

// CurrencyPrecision is the number of decimal places carried by displayed or
// aggregated currency amounts.
const CurrencyPrecision = 2

// RoundCurrency rounds an amount to currency precision (half away from zero).
func RoundCurrency(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(CurrencyPrecision)
}

// FormatWithPrecision formats an amount with the given number of decimal places.
// Example: amount 12.3456 with precision 2 returns "12.35".
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.Round(int32(precision)).String()
}
