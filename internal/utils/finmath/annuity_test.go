package finmath_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wealthsight/wealth_projection_app/internal/core/domain"
	"github.com/wealthsight/wealth_projection_app/internal/utils/finmath"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestAnnuityPayment(t *testing.T) {
	testCases := []struct {
		name       string
		principal  string
		annualRate string
		termMonths int
		expected   string
	}{
		{
			name:       "30 year mortgage at 6 percent",
			principal:  "300000",
			annualRate: "0.06",
			termMonths: 360,
			expected:   "1798.65",
		},
		{
			name:       "30 year mortgage at 3.5 percent",
			principal:  "250000",
			annualRate: "0.035",
			termMonths: 360,
			expected:   "1122.61",
		},
		{
			name:       "zero rate is straight line repayment",
			principal:  "12000",
			annualRate: "0",
			termMonths: 12,
			expected:   "1000",
		},
		{
			name:       "zero rate with rounding",
			principal:  "10000",
			annualRate: "0",
			termMonths: 3,
			expected:   "3333.33",
		},
		{
			name:       "single payment loan",
			principal:  "5000",
			annualRate: "0.12",
			termMonths: 1,
			expected:   "5050",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			payment := finmath.AnnuityPayment(dec(tc.principal), dec(tc.annualRate), tc.termMonths)
			assert.True(t, dec(tc.expected).Equal(payment), "expected %s, got %s", tc.expected, payment)
		})
	}
}

func TestToAnnual(t *testing.T) {
	testCases := []struct {
		frequency domain.PaymentFrequency
		amount    string
		expected  string
	}{
		{domain.Weekly, "100", "5200"},
		{domain.Fortnightly, "100", "2600"},
		{domain.Monthly, "100", "1200"},
		{domain.Quarterly, "100", "400"},
		{domain.Annually, "100", "100"},
	}

	for _, tc := range testCases {
		t.Run(string(tc.frequency), func(t *testing.T) {
			annual := finmath.ToAnnual(dec(tc.amount), tc.frequency)
			assert.True(t, dec(tc.expected).Equal(annual), "expected %s, got %s", tc.expected, annual)
		})
	}
}

func TestToMonthlyGoesViaAnnualBasis(t *testing.T) {
	// 120 per week is 6240 per year, i.e. 520 per month exactly. The
	// approximate weeks-per-month multipliers of spreadsheet lore (x4.33)
	// would give 519.60 instead.
	monthly := finmath.ToMonthly(dec("120"), domain.Weekly)
	assert.True(t, dec("520").Equal(monthly), "got %s", monthly)
}

func TestPerPeriod(t *testing.T) {
	// 300 quarterly = 1200 annually = 100 per monthly period
	perPeriod := finmath.PerPeriod(dec("300"), domain.Quarterly, 12)
	assert.True(t, dec("100").Equal(perPeriod), "got %s", perPeriod)

	// and 1200 per annual period
	perYear := finmath.PerPeriod(dec("300"), domain.Quarterly, 1)
	assert.True(t, dec("1200").Equal(perYear), "got %s", perYear)
}

func TestGrowthFactor(t *testing.T) {
	t.Run("zero periods is identity", func(t *testing.T) {
		factor, err := finmath.GrowthFactor(dec("0.05"), 0, 12)
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(1).Equal(factor), "got %s", factor)
	})

	t.Run("full year of monthly periods compounds to the annual rate", func(t *testing.T) {
		factor, err := finmath.GrowthFactor(dec("0.05"), 12, 12)
		require.NoError(t, err)
		diff := factor.Sub(dec("1.05")).Abs()
		assert.True(t, diff.LessThan(dec("0.0000001")), "got %s", factor)
	})

	t.Run("negative growth shrinks the factor", func(t *testing.T) {
		factor, err := finmath.GrowthFactor(dec("-0.10"), 12, 12)
		require.NoError(t, err)
		diff := factor.Sub(dec("0.9")).Abs()
		assert.True(t, diff.LessThan(dec("0.0000001")), "got %s", factor)
	})

	t.Run("rate at -100 percent is rejected", func(t *testing.T) {
		_, err := finmath.GrowthFactor(dec("-1"), 1, 12)
		assert.Error(t, err)
	})
}
