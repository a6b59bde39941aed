package finmath

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/wealthsight/wealth_projection_app/internal/utils"
)

var one = decimal.NewFromInt(1)

// growthPrecision is the number of significant decimal places used when
// raising a growth factor to a fractional period exponent. Twelve places keeps
// sub-cent accuracy across a 100-year horizon while staying cheap to compute.
const growthPrecision = 12

// MonthlyRate converts an annual rate (decimal fraction) to its monthly
// equivalent. Left unrounded so schedule generation does not accumulate
// truncation error.
func MonthlyRate(annualRate decimal.Decimal) decimal.Decimal {
	return annualRate.Div(monthsPerYear)
}

// AnnuityPayment computes the fixed periodic payment for a fully amortizing
// loan using the standard annuity formula
//
//	payment = P·r·(1+r)^n / ((1+r)^n − 1)
//
// with r the monthly rate and n the term in months. A zero rate degenerates to
// straight-line repayment P/n. The result is rounded to currency precision.
// The caller is responsible for validating termMonths > 0.
func AnnuityPayment(principal, annualRate decimal.Decimal, termMonths int) decimal.Decimal {
	n := decimal.NewFromInt(int64(termMonths))
	if annualRate.IsZero() {
		return principal.DivRound(n, utils.CurrencyPrecision)
	}
	r := MonthlyRate(annualRate)
	factor := compoundFactor(r, termMonths)
	return principal.Mul(r).Mul(factor).DivRound(factor.Sub(one), utils.CurrencyPrecision)
}

// compoundFactor computes (1+r)^n for an integer number of periods.
func compoundFactor(periodicRate decimal.Decimal, periods int) decimal.Decimal {
	// Integer exponent with a positive base cannot fail.
	factor, _ := one.Add(periodicRate).PowInt32(int32(periods))
	return factor
}

// GrowthFactor computes (1+annualRate)^(t/periodsPerYear), the compound growth
// multiplier for period t of a projection bucketed into periodsPerYear periods
// per year. annualRate must be greater than -1.
func GrowthFactor(annualRate decimal.Decimal, t, periodsPerYear int) (decimal.Decimal, error) {
	base := one.Add(annualRate)
	if base.Sign() <= 0 {
		return decimal.Zero, fmt.Errorf("growth rate %s is at or below -100%%", annualRate)
	}
	exponent := decimal.NewFromInt(int64(t)).Div(decimal.NewFromInt(int64(periodsPerYear)))
	factor, err := base.PowWithPrecision(exponent, growthPrecision)
	if err != nil {
		return decimal.Zero, fmt.Errorf("computing growth factor: %w", err)
	}
	return factor, nil
}
