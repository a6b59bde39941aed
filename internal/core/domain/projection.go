package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Granularity is the bucket size of a projection time series.
type Granularity string

const (
	GranularityMonthly Granularity = "MONTHLY"
	GranularityAnnual  Granularity = "ANNUAL"
)

// PeriodsPerYear returns the number of projection periods in one year.
func (g Granularity) PeriodsPerYear() int {
	switch g {
	case GranularityMonthly:
		return 12
	case GranularityAnnual:
		return 1
	default:
		panic(fmt.Sprintf("unknown granularity %q", string(g)))
	}
}

// DateLayout is the time layout used for this granularity's period labels.
func (g Granularity) DateLayout() string {
	switch g {
	case GranularityMonthly:
		return "2006-01"
	case GranularityAnnual:
		return "2006"
	default:
		panic(fmt.Sprintf("unknown granularity %q", string(g)))
	}
}

// AddPeriods advances a date by t periods of this granularity.
func (g Granularity) AddPeriods(from time.Time, t int) time.Time {
	if g == GranularityAnnual {
		return from.AddDate(t, 0, 0)
	}
	return from.AddDate(0, t, 0)
}

// ParseGranularity converts an external string ("monthly"/"annual", any case)
// into a Granularity.
func ParseGranularity(s string) (Granularity, error) {
	switch strings.ToUpper(s) {
	case string(GranularityMonthly), "MONTH":
		return GranularityMonthly, nil
	case string(GranularityAnnual), "ANNUALLY", "YEARLY":
		return GranularityAnnual, nil
	default:
		return "", fmt.Errorf("unrecognised granularity %q", s)
	}
}

// ProjectionSnapshot is the complete, immutable input to a projection run.
// Callers must pass everything explicitly; the engine reads no ambient state.
type ProjectionSnapshot struct {
	AsOf        time.Time              `json:"asOf"`
	Assets      []AssetProjectionInput `json:"assets"`
	Liabilities []LoanTerms            `json:"liabilities"`
	Expenses    []RecurringExpense     `json:"expenses"`
}

// CashflowSeries holds the per-period income and expense totals of a
// projection, aligned index-for-index with ProjectionResult.Dates.
type CashflowSeries struct {
	TotalIncome   []decimal.Decimal `json:"totalIncome"`
	TotalExpenses []decimal.Decimal `json:"totalExpenses"`
	NetCashflow   []decimal.Decimal `json:"netCashflow"`
}

// AssetClassSeries is the per-period value of all assets sharing one class label.
type AssetClassSeries struct {
	AssetClass string            `json:"assetClass"`
	Values     []decimal.Decimal `json:"values"`
}

// ProjectionResult is the output of one projection run. All series have
// identical length and NetWorth[i] equals TotalAssetValue[i] minus
// TotalLiabilityValue[i] for every i.
type ProjectionResult struct {
	Dates               []string           `json:"dates"`
	TotalAssetValue     []decimal.Decimal  `json:"totalAssetValue"`
	TotalLiabilityValue []decimal.Decimal  `json:"totalLiabilityValue"`
	NetWorth            []decimal.Decimal  `json:"netWorth"`
	Cashflow            CashflowSeries     `json:"cashflow"`
	AssetBreakdown      []AssetClassSeries `json:"assetBreakdown"`
}
