package finmath

import (
	"github.com/shopspring/decimal"
	"github.com/wealthsight/wealth_projection_app/internal/core/domain"
)

var monthsPerYear = decimal.NewFromInt(12)

// ToAnnual converts an amount stated at the given payment cadence to its
// annual equivalent (amount × periods per year). All frequency conversions go
// through the annual basis; chained approximate multipliers are never used.
func ToAnnual(amount decimal.Decimal, frequency domain.PaymentFrequency) decimal.Decimal {
	return amount.Mul(decimal.NewFromInt(frequency.PeriodsPerYear()))
}

// ToMonthly converts an amount stated at the given payment cadence to its
// monthly equivalent. The result is left unrounded; callers round at display
// or aggregation boundaries.
func ToMonthly(amount decimal.Decimal, frequency domain.PaymentFrequency) decimal.Decimal {
	return ToAnnual(amount, frequency).Div(monthsPerYear)
}

// PerPeriod converts an amount stated at the given payment cadence into the
// amount attributable to one projection period of n periods per year.
func PerPeriod(amount decimal.Decimal, frequency domain.PaymentFrequency, periodsPerYear int) decimal.Decimal {
	return ToAnnual(amount, frequency).Div(decimal.NewFromInt(int64(periodsPerYear)))
}
