package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/wealthsight/wealth_projection_app/internal/apperrors"
	"github.com/wealthsight/wealth_projection_app/internal/core/domain"
	portssvc "github.com/wealthsight/wealth_projection_app/internal/core/ports/services"
	"github.com/wealthsight/wealth_projection_app/internal/core/services"
)

type ProjectionServiceTestSuite struct {
	suite.Suite
	amortization portssvc.AmortizationSvcFacade
	service      portssvc.ProjectionSvcFacade
	ctx          context.Context
	asOf         time.Time
}

func (s *ProjectionServiceTestSuite) SetupTest() {
	s.amortization = services.NewAmortizationService()
	s.service = services.NewProjectionService(s.amortization)
	s.ctx = context.Background()
	s.asOf = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
}

func TestProjectionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectionServiceTestSuite))
}

func (s *ProjectionServiceTestSuite) emptySnapshot() domain.ProjectionSnapshot {
	return domain.ProjectionSnapshot{AsOf: s.asOf}
}

func (s *ProjectionServiceTestSuite) TestEmptySnapshotProducesZeroSeries() {
	result, err := s.service.Project(s.ctx, s.emptySnapshot(), 5, domain.GranularityAnnual)
	s.Require().NoError(err)

	// Baseline plus one point per period of the horizon.
	expectedLen := 5 + 1
	s.Len(result.Dates, expectedLen)
	s.Len(result.TotalAssetValue, expectedLen)
	s.Len(result.TotalLiabilityValue, expectedLen)
	s.Len(result.NetWorth, expectedLen)
	s.Len(result.Cashflow.TotalIncome, expectedLen)
	s.Len(result.Cashflow.TotalExpenses, expectedLen)
	s.Len(result.Cashflow.NetCashflow, expectedLen)
	s.Empty(result.AssetBreakdown)

	for t := 0; t < expectedLen; t++ {
		s.True(result.TotalAssetValue[t].IsZero())
		s.True(result.TotalLiabilityValue[t].IsZero())
		s.True(result.NetWorth[t].IsZero())
		s.True(result.Cashflow.NetCashflow[t].IsZero())
	}

	s.Equal("2025", result.Dates[0])
	s.Equal("2030", result.Dates[5])
}

func (s *ProjectionServiceTestSuite) TestSingleAssetGrowth() {
	snapshot := s.emptySnapshot()
	snapshot.Assets = []domain.AssetProjectionInput{{
		CurrentValue:     dec("100000"),
		AnnualGrowthRate: dec("0.05"),
		AssetClass:       "Shares",
	}}

	result, err := s.service.Project(s.ctx, snapshot, 1, domain.GranularityMonthly)
	s.Require().NoError(err)
	s.Require().Len(result.TotalAssetValue, 13)

	s.True(dec("100000").Equal(result.TotalAssetValue[0]), "got %s", result.TotalAssetValue[0])

	// After a full year the asset has grown by exactly the annual rate.
	diff := result.TotalAssetValue[12].Sub(dec("105000")).Abs()
	s.True(diff.LessThanOrEqual(oneCent), "got %s", result.TotalAssetValue[12])

	// Intermediate months are strictly between the endpoints.
	s.True(result.TotalAssetValue[6].GreaterThan(dec("100000")))
	s.True(result.TotalAssetValue[6].LessThan(dec("105000")))

	s.Equal("2025-01", result.Dates[0])
	s.Equal("2026-01", result.Dates[12])
}

func (s *ProjectionServiceTestSuite) TestNetWorthIdentity() {
	snapshot := s.emptySnapshot()
	snapshot.Assets = []domain.AssetProjectionInput{
		{CurrentValue: dec("650000"), AnnualGrowthRate: dec("0.03"), AnnualIncomeYield: dec("0.04"), AssetClass: "Property"},
		{CurrentValue: dec("80000"), AnnualGrowthRate: dec("0.07"), AnnualIncomeYield: dec("0.02"), AssetClass: "Shares"},
	}
	snapshot.Liabilities = []domain.LoanTerms{{
		Principal:          dec("400000"),
		AnnualInterestRate: dec("0.055"),
		TermMonths:         300,
		StartDate:          s.asOf.AddDate(-2, 0, 0),
		RateType:           domain.VariableRate,
		PaymentFrequency:   domain.Monthly,
	}}

	result, err := s.service.Project(s.ctx, snapshot, 10, domain.GranularityAnnual)
	s.Require().NoError(err)

	for t := range result.Dates {
		expected := result.TotalAssetValue[t].Sub(result.TotalLiabilityValue[t])
		s.True(expected.Equal(result.NetWorth[t]),
			"period %d: netWorth %s != assets %s - liabilities %s",
			t, result.NetWorth[t], result.TotalAssetValue[t], result.TotalLiabilityValue[t])
	}

	// The mortgage balance shrinks every year while it remains active.
	s.True(result.TotalLiabilityValue[1].LessThan(result.TotalLiabilityValue[0]))
	s.True(result.TotalLiabilityValue[10].LessThan(result.TotalLiabilityValue[5]))
}

func (s *ProjectionServiceTestSuite) TestLiabilityExpenseIsThePayment() {
	payment, err := s.amortization.ComputePayment(s.ctx, dec("300000"), dec("0.06"), 360)
	s.Require().NoError(err)

	snapshot := s.emptySnapshot()
	snapshot.Liabilities = []domain.LoanTerms{{
		Principal:          dec("300000"),
		AnnualInterestRate: dec("0.06"),
		TermMonths:         360,
		StartDate:          s.asOf,
		PaymentFrequency:   domain.Monthly,
	}}

	result, err := s.service.Project(s.ctx, snapshot, 1, domain.GranularityMonthly)
	s.Require().NoError(err)

	// Every monthly period while the loan is active costs one payment.
	s.True(payment.Equal(result.Cashflow.TotalExpenses[0]), "got %s", result.Cashflow.TotalExpenses[0])
	s.True(payment.Equal(result.Cashflow.TotalExpenses[12]), "got %s", result.Cashflow.TotalExpenses[12])
	s.True(result.Cashflow.NetCashflow[0].Equal(payment.Neg()))
}

func (s *ProjectionServiceTestSuite) TestLiabilityExpenseFollowsPaymentCadence() {
	snapshot := s.emptySnapshot()
	snapshot.Liabilities = []domain.LoanTerms{{
		Principal:          dec("300000"),
		AnnualInterestRate: dec("0.06"),
		TermMonths:         360,
		StartDate:          s.asOf,
		PaymentFrequency:   domain.Weekly,
	}}

	result, err := s.service.Project(s.ctx, snapshot, 1, domain.GranularityMonthly)
	s.Require().NoError(err)

	// The monthly amount due of 1798.65 restated at a weekly cadence is
	// round(1798.65 x 12 / 52) = 415.07, so one monthly period carries
	// 415.07 x 52 / 12 = 1798.64 once the instalment is rounded.
	s.True(dec("1798.64").Equal(result.Cashflow.TotalExpenses[1]), "got %s", result.Cashflow.TotalExpenses[1])
	s.False(dec("1798.65").Equal(result.Cashflow.TotalExpenses[1]))
}

func (s *ProjectionServiceTestSuite) TestInterestOnlyLiability() {
	snapshot := s.emptySnapshot()
	snapshot.Liabilities = []domain.LoanTerms{{
		Principal:          dec("200000"),
		AnnualInterestRate: dec("0.06"),
		TermMonths:         120,
		StartDate:          s.asOf,
		PaymentFrequency:   domain.Monthly,
		InterestOnly:       true,
	}}

	result, err := s.service.Project(s.ctx, snapshot, 2, domain.GranularityMonthly)
	s.Require().NoError(err)

	// The balance never amortizes and the expense is interest only:
	// 200000 x 0.06/12 = 1000 per month.
	s.True(dec("200000").Equal(result.TotalLiabilityValue[0]))
	s.True(dec("200000").Equal(result.TotalLiabilityValue[24]))
	s.True(dec("1000").Equal(result.Cashflow.TotalExpenses[1]), "got %s", result.Cashflow.TotalExpenses[1])
}

func (s *ProjectionServiceTestSuite) TestAssetIncomeAndRecurringExpenses() {
	snapshot := s.emptySnapshot()
	snapshot.Assets = []domain.AssetProjectionInput{{
		CurrentValue:      dec("600000"),
		AnnualIncomeYield: dec("0.04"),
		AssetClass:        "Property",
	}}
	snapshot.Expenses = []domain.RecurringExpense{{
		Name:      "Landlord insurance",
		Amount:    dec("300"),
		Frequency: domain.Quarterly,
	}}

	result, err := s.service.Project(s.ctx, snapshot, 1, domain.GranularityMonthly)
	s.Require().NoError(err)

	// 600000 x 0.04 / 12 = 2000 rental income per month at the baseline.
	s.True(dec("2000").Equal(result.Cashflow.TotalIncome[0]), "got %s", result.Cashflow.TotalIncome[0])

	// 300 quarterly = 100 per monthly period.
	s.True(dec("100").Equal(result.Cashflow.TotalExpenses[0]), "got %s", result.Cashflow.TotalExpenses[0])
	s.True(dec("1900").Equal(result.Cashflow.NetCashflow[0]), "got %s", result.Cashflow.NetCashflow[0])
}

func (s *ProjectionServiceTestSuite) TestAssetBreakdownGroupsByClass() {
	snapshot := s.emptySnapshot()
	snapshot.Assets = []domain.AssetProjectionInput{
		{CurrentValue: dec("500000"), AssetClass: "Property"},
		{CurrentValue: dec("30000"), AssetClass: "Shares"},
		{CurrentValue: dec("100000"), AssetClass: "Property"},
	}

	result, err := s.service.Project(s.ctx, snapshot, 1, domain.GranularityAnnual)
	s.Require().NoError(err)
	s.Require().Len(result.AssetBreakdown, 2)

	// First-seen order is preserved and same-class assets are summed.
	s.Equal("Property", result.AssetBreakdown[0].AssetClass)
	s.Equal("Shares", result.AssetBreakdown[1].AssetClass)
	s.True(dec("600000").Equal(result.AssetBreakdown[0].Values[0]), "got %s", result.AssetBreakdown[0].Values[0])
	s.True(dec("30000").Equal(result.AssetBreakdown[1].Values[0]))

	// Breakdown values sum to the asset total per period.
	for t := range result.Dates {
		sum := result.AssetBreakdown[0].Values[t].Add(result.AssetBreakdown[1].Values[t])
		s.True(sum.Sub(result.TotalAssetValue[t]).Abs().LessThanOrEqual(oneCent))
	}
}

func (s *ProjectionServiceTestSuite) TestProjectionIsDeterministic() {
	snapshot := s.emptySnapshot()
	snapshot.Assets = []domain.AssetProjectionInput{
		{CurrentValue: dec("123456.78"), AnnualGrowthRate: dec("0.0635"), AnnualIncomeYield: dec("0.021"), AssetClass: "Shares"},
	}
	snapshot.Liabilities = []domain.LoanTerms{{
		Principal:          dec("98765.43"),
		AnnualInterestRate: dec("0.0499"),
		TermMonths:         240,
		StartDate:          s.asOf.AddDate(-3, -5, 0),
		PaymentFrequency:   domain.Fortnightly,
	}}

	first, err := s.service.Project(s.ctx, snapshot, 20, domain.GranularityMonthly)
	s.Require().NoError(err)
	second, err := s.service.Project(s.ctx, snapshot, 20, domain.GranularityMonthly)
	s.Require().NoError(err)

	s.Equal(first.Dates, second.Dates)
	for t := range first.Dates {
		s.True(first.TotalAssetValue[t].Equal(second.TotalAssetValue[t]))
		s.True(first.NetWorth[t].Equal(second.NetWorth[t]))
		s.True(first.Cashflow.NetCashflow[t].Equal(second.Cashflow.NetCashflow[t]))
	}
}

func (s *ProjectionServiceTestSuite) TestInvalidHorizon() {
	for _, horizon := range []int{0, -1, 101} {
		_, err := s.service.Project(s.ctx, s.emptySnapshot(), horizon, domain.GranularityAnnual)
		s.Require().ErrorIs(err, apperrors.ErrInvalidHorizon, "horizon %d", horizon)
	}
}

func (s *ProjectionServiceTestSuite) TestConfiguredHorizonMaximum() {
	shortService := services.NewProjectionService(s.amortization, services.WithMaxHorizonYears(30))

	_, err := shortService.Project(s.ctx, s.emptySnapshot(), 31, domain.GranularityAnnual)
	s.Require().ErrorIs(err, apperrors.ErrInvalidHorizon)

	_, err = shortService.Project(s.ctx, s.emptySnapshot(), 30, domain.GranularityAnnual)
	s.Require().NoError(err)
}

func (s *ProjectionServiceTestSuite) TestMalformedSnapshot() {
	snapshot := s.emptySnapshot()
	snapshot.Assets = []domain.AssetProjectionInput{{
		CurrentValue:     dec("-1"),
		AssetClass:       "Shares",
		AnnualGrowthRate: dec("0.05"),
	}}
	_, err := s.service.Project(s.ctx, snapshot, 1, domain.GranularityAnnual)
	s.Require().ErrorIs(err, apperrors.ErrMalformedInput)

	snapshot = s.emptySnapshot()
	snapshot.Assets = []domain.AssetProjectionInput{{
		CurrentValue:     dec("1000"),
		AssetClass:       "Shares",
		AnnualGrowthRate: dec("-1"),
	}}
	_, err = s.service.Project(s.ctx, snapshot, 1, domain.GranularityAnnual)
	s.Require().ErrorIs(err, apperrors.ErrMalformedInput)

	snapshot = s.emptySnapshot()
	snapshot.Liabilities = []domain.LoanTerms{{
		Principal:          dec("1000"),
		AnnualInterestRate: dec("0.05"),
		TermMonths:         0,
		StartDate:          s.asOf,
	}}
	_, err = s.service.Project(s.ctx, snapshot, 1, domain.GranularityAnnual)
	s.Require().ErrorIs(err, apperrors.ErrInvalidTerm)
}
