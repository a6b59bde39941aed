package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wealthsight/wealth_projection_app/internal/apperrors"
	"github.com/wealthsight/wealth_projection_app/internal/core/domain"
	portssvc "github.com/wealthsight/wealth_projection_app/internal/core/ports/services"
	"github.com/wealthsight/wealth_projection_app/internal/utils"
	"github.com/wealthsight/wealth_projection_app/internal/utils/finmath"
)

// defaultMaxHorizonYears bounds the projection horizon when no configured
// maximum is supplied.
const defaultMaxHorizonYears = 100

var minusOne = decimal.NewFromInt(-1)

// projectionService implements the net worth / cashflow projector.
type projectionService struct {
	BaseService
	amortization    portssvc.AmortizationSvcFacade
	maxHorizonYears int
}

// ProjectionServiceOption configures optional dependencies of the projection service.
type ProjectionServiceOption func(*projectionService)

// WithMaxHorizonYears overrides the maximum accepted projection horizon.
func WithMaxHorizonYears(years int) ProjectionServiceOption {
	return func(s *projectionService) {
		if years > 0 {
			s.maxHorizonYears = years
		}
	}
}

// NewProjectionService creates a new projection service backed by the given
// amortization calculator.
func NewProjectionService(amortization portssvc.AmortizationSvcFacade, opts ...ProjectionServiceOption) portssvc.ProjectionSvcFacade {
	s := &projectionService{
		amortization:    amortization,
		maxHorizonYears: defaultMaxHorizonYears,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *projectionService) Project(ctx context.Context, snapshot domain.ProjectionSnapshot, horizonYears int, granularity domain.Granularity) (*domain.ProjectionResult, error) {
	if horizonYears <= 0 || horizonYears > s.maxHorizonYears {
		return nil, fmt.Errorf("%w: horizonYears must be between 1 and %d, got %d", apperrors.ErrInvalidHorizon, s.maxHorizonYears, horizonYears)
	}
	if err := validateSnapshot(snapshot); err != nil {
		return nil, err
	}

	asOf := snapshot.AsOf
	if asOf.IsZero() {
		asOf = time.Now()
	}

	periodsPerYear := granularity.PeriodsPerYear()
	perYear := decimal.NewFromInt(int64(periodsPerYear))

	// Series carry the baseline at t=0 plus one point per period of the horizon.
	points := horizonYears*periodsPerYear + 1

	result := &domain.ProjectionResult{
		Dates:               make([]string, points),
		TotalAssetValue:     make([]decimal.Decimal, points),
		TotalLiabilityValue: make([]decimal.Decimal, points),
		NetWorth:            make([]decimal.Decimal, points),
		Cashflow: domain.CashflowSeries{
			TotalIncome:   make([]decimal.Decimal, points),
			TotalExpenses: make([]decimal.Decimal, points),
			NetCashflow:   make([]decimal.Decimal, points),
		},
	}

	// Asset classes keep first-seen order in the breakdown.
	classIndex := make(map[string]int)
	for _, asset := range snapshot.Assets {
		if _, seen := classIndex[asset.AssetClass]; !seen {
			classIndex[asset.AssetClass] = len(result.AssetBreakdown)
			result.AssetBreakdown = append(result.AssetBreakdown, domain.AssetClassSeries{
				AssetClass: asset.AssetClass,
				Values:     make([]decimal.Decimal, points),
			})
		}
	}

	// Each liability's schedule and regular payment are computed once and
	// indexed per period; interest-only loans need no schedule.
	schedules := make([][]domain.AmortizationEntry, len(snapshot.Liabilities))
	payments := make([]decimal.Decimal, len(snapshot.Liabilities))
	for i, loan := range snapshot.Liabilities {
		payment, err := s.amortization.ComputePayment(ctx, loan.Principal, loan.AnnualInterestRate, loan.TermMonths)
		if err != nil {
			return nil, err
		}
		payments[i] = payment
		if loan.InterestOnly {
			continue
		}
		schedule, err := s.amortization.GenerateSchedule(ctx, loan)
		if err != nil {
			return nil, err
		}
		schedules[i] = schedule
	}

	classTotals := make([]decimal.Decimal, len(result.AssetBreakdown))

	for t := 0; t < points; t++ {
		periodDate := granularity.AddPeriods(asOf, t)
		result.Dates[t] = periodDate.Format(granularity.DateLayout())

		// Sums accumulate unrounded; rounding happens on the final
		// per-period totals only, so input order cannot shift the output.
		assetTotal := decimal.Zero
		income := decimal.Zero
		for c := range classTotals {
			classTotals[c] = decimal.Zero
		}
		for _, asset := range snapshot.Assets {
			factor, err := finmath.GrowthFactor(asset.AnnualGrowthRate, t, periodsPerYear)
			if err != nil {
				return nil, fmt.Errorf("asset class %q: %w", asset.AssetClass, err)
			}
			value := asset.CurrentValue.Mul(factor)
			assetTotal = assetTotal.Add(value)
			classTotals[classIndex[asset.AssetClass]] = classTotals[classIndex[asset.AssetClass]].Add(value)
			if !asset.AnnualIncomeYield.IsZero() {
				income = income.Add(value.Mul(asset.AnnualIncomeYield).Div(perYear))
			}
		}

		liabilityTotal := decimal.Zero
		expenses := decimal.Zero
		for i, loan := range snapshot.Liabilities {
			elapsed := wholeMonthsBetween(loan.StartDate, periodDate)
			balance := scheduleBalanceAt(loan, schedules[i], elapsed)
			liabilityTotal = liabilityTotal.Add(balance)
			if balance.Sign() <= 0 {
				continue
			}
			monthlyDue := payments[i]
			if loan.InterestOnly {
				split := s.amortization.CurrentPaymentSplit(ctx, balance, loan.AnnualInterestRate, decimal.Zero)
				monthlyDue = split.Interest
			}
			expenses = expenses.Add(loanOutlayPerPeriod(monthlyDue, loan.PaymentFrequency, periodsPerYear))
		}
		for _, expense := range snapshot.Expenses {
			expenses = expenses.Add(finmath.PerPeriod(expense.Amount, expense.Frequency, periodsPerYear))
		}

		assets := utils.RoundCurrency(assetTotal)
		liabilities := utils.RoundCurrency(liabilityTotal)
		result.TotalAssetValue[t] = assets
		result.TotalLiabilityValue[t] = liabilities
		result.NetWorth[t] = assets.Sub(liabilities)

		periodIncome := utils.RoundCurrency(income)
		periodExpenses := utils.RoundCurrency(expenses)
		result.Cashflow.TotalIncome[t] = periodIncome
		result.Cashflow.TotalExpenses[t] = periodExpenses
		result.Cashflow.NetCashflow[t] = periodIncome.Sub(periodExpenses)

		for c := range classTotals {
			result.AssetBreakdown[c].Values[t] = utils.RoundCurrency(classTotals[c])
		}
	}

	s.LogInfo(ctx, "Projection completed",
		slog.Int("horizon_years", horizonYears),
		slog.String("granularity", string(granularity)),
		slog.Int("assets", len(snapshot.Assets)),
		slog.Int("liabilities", len(snapshot.Liabilities)),
		slog.Int("periods", points),
	)
	return result, nil
}

// loanOutlayPerPeriod restates a loan's monthly amount due as the instalment
// the borrower actually pays at the loan's own cadence, rounded to the cent,
// then attributes that outlay to one projection period. An unset cadence
// means monthly.
func loanOutlayPerPeriod(monthlyDue decimal.Decimal, frequency domain.PaymentFrequency, periodsPerYear int) decimal.Decimal {
	if frequency == "" {
		frequency = domain.Monthly
	}
	instalment := utils.RoundCurrency(finmath.ToAnnual(monthlyDue, domain.Monthly).Div(decimal.NewFromInt(frequency.PeriodsPerYear())))
	return finmath.PerPeriod(instalment, frequency, periodsPerYear)
}

// validateSnapshot rejects records with nonsensical numeric fields before any
// series is computed; the projector never returns a partially filled result.
func validateSnapshot(snapshot domain.ProjectionSnapshot) error {
	for i, asset := range snapshot.Assets {
		if asset.CurrentValue.IsNegative() {
			return fmt.Errorf("%w: asset %d has negative current value %s", apperrors.ErrMalformedInput, i, asset.CurrentValue)
		}
		if asset.AnnualGrowthRate.LessThanOrEqual(minusOne) {
			return fmt.Errorf("%w: asset %d growth rate %s is at or below -100%%", apperrors.ErrMalformedInput, i, asset.AnnualGrowthRate)
		}
		if asset.AnnualIncomeYield.IsNegative() {
			return fmt.Errorf("%w: asset %d has negative income yield %s", apperrors.ErrMalformedInput, i, asset.AnnualIncomeYield)
		}
	}
	for i, expense := range snapshot.Expenses {
		if expense.Amount.IsNegative() {
			return fmt.Errorf("%w: expense %d (%s) has negative amount %s", apperrors.ErrMalformedInput, i, expense.Name, expense.Amount)
		}
	}
	return nil
}
