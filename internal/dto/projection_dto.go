package dto

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wealthsight/wealth_projection_app/internal/apperrors"
	"github.com/wealthsight/wealth_projection_app/internal/core/domain"
)

// AssetInputRequest is the wire shape of one asset in a projection snapshot.
type AssetInputRequest struct {
	CurrentValue      decimal.Decimal `json:"currentValue" binding:"required"`
	AnnualGrowthRate  decimal.Decimal `json:"annualGrowthRate"`
	AnnualIncomeYield decimal.Decimal `json:"annualIncomeYield"`
	AssetClass        string          `json:"assetClass" binding:"required"`
}

// ExpenseCategoryRequest is the normalized category shape accepted at the
// boundary; string-only category inputs are upgraded to this by clients.
type ExpenseCategoryRequest struct {
	CategoryID       string `json:"categoryID"`
	Name             string `json:"name" binding:"required"`
	Description      string `json:"description"`
	DefaultFrequency string `json:"defaultFrequency" binding:"omitempty,paymentfrequency"`
}

// RecurringExpenseRequest is one externally supplied recurring outgoing.
type RecurringExpenseRequest struct {
	Name      string                  `json:"name" binding:"required"`
	Amount    decimal.Decimal         `json:"amount" binding:"required"`
	Frequency string                  `json:"frequency" binding:"omitempty,paymentfrequency"`
	Category  *ExpenseCategoryRequest `json:"category"`
}

// ProjectionRequest is the payload of the projection endpoint.
type ProjectionRequest struct {
	Assets       []AssetInputRequest       `json:"assets" binding:"dive"`
	Liabilities  []LoanTermsRequest        `json:"liabilities" binding:"dive"`
	Expenses     []RecurringExpenseRequest `json:"expenses" binding:"dive"`
	HorizonYears int                       `json:"horizonYears" binding:"required"`
	Granularity  string                    `json:"granularity" binding:"omitempty,oneof=monthly annual MONTHLY ANNUAL"`
	AsOf         string                    `json:"asOf" binding:"omitempty,datetime=2006-01-02"`
}

// ToSnapshot converts the request into an immutable domain snapshot.
func (r ProjectionRequest) ToSnapshot() (domain.ProjectionSnapshot, error) {
	snapshot := domain.ProjectionSnapshot{
		Assets:      make([]domain.AssetProjectionInput, len(r.Assets)),
		Liabilities: make([]domain.LoanTerms, len(r.Liabilities)),
		Expenses:    make([]domain.RecurringExpense, len(r.Expenses)),
	}

	if r.AsOf != "" {
		asOf, err := time.Parse("2006-01-02", r.AsOf)
		if err != nil {
			return domain.ProjectionSnapshot{}, fmt.Errorf("%w: invalid asOf %q", apperrors.ErrMalformedInput, r.AsOf)
		}
		snapshot.AsOf = asOf
	}

	for i, asset := range r.Assets {
		snapshot.Assets[i] = domain.AssetProjectionInput{
			CurrentValue:      asset.CurrentValue,
			AnnualGrowthRate:  asset.AnnualGrowthRate,
			AnnualIncomeYield: asset.AnnualIncomeYield,
			AssetClass:        asset.AssetClass,
		}
	}

	for i, liability := range r.Liabilities {
		terms, err := liability.ToDomain()
		if err != nil {
			return domain.ProjectionSnapshot{}, fmt.Errorf("liability %d: %w", i, err)
		}
		snapshot.Liabilities[i] = terms
	}

	for i, expense := range r.Expenses {
		converted, err := expense.toDomain()
		if err != nil {
			return domain.ProjectionSnapshot{}, fmt.Errorf("expense %d: %w", i, err)
		}
		snapshot.Expenses[i] = converted
	}

	return snapshot, nil
}

func (r RecurringExpenseRequest) toDomain() (domain.RecurringExpense, error) {
	expense := domain.RecurringExpense{
		Name:      r.Name,
		Amount:    r.Amount,
		Frequency: domain.Monthly,
	}

	if r.Frequency != "" {
		frequency, err := domain.ParsePaymentFrequency(r.Frequency)
		if err != nil {
			return domain.RecurringExpense{}, fmt.Errorf("%w: %v", apperrors.ErrMalformedInput, err)
		}
		expense.Frequency = frequency
	}

	if r.Category != nil {
		category := domain.ExpenseCategory{
			CategoryID:       r.Category.CategoryID,
			Name:             r.Category.Name,
			Description:      r.Category.Description,
			DefaultFrequency: domain.Monthly,
		}
		if r.Category.DefaultFrequency != "" {
			frequency, err := domain.ParsePaymentFrequency(r.Category.DefaultFrequency)
			if err != nil {
				return domain.RecurringExpense{}, fmt.Errorf("%w: %v", apperrors.ErrMalformedInput, err)
			}
			category.DefaultFrequency = frequency
		}
		expense.Category = &category
		// An expense with no explicit cadence inherits its category default.
		if r.Frequency == "" {
			expense.Frequency = category.DefaultFrequency
		}
	}

	return expense, nil
}

// CashflowResponse holds the per-period cashflow totals of a projection.
type CashflowResponse struct {
	TotalIncome   []decimal.Decimal `json:"totalIncome"`
	TotalExpenses []decimal.Decimal `json:"totalExpenses"`
	NetCashflow   []decimal.Decimal `json:"netCashflow"`
}

// AssetBreakdownResponse is the per-period value series of one asset class.
type AssetBreakdownResponse struct {
	AssetClass string            `json:"assetClass"`
	Values     []decimal.Decimal `json:"values"`
}

// ProjectionResponse is the projection endpoint's response body.
type ProjectionResponse struct {
	Dates               []string                 `json:"dates"`
	TotalAssetValue     []decimal.Decimal        `json:"totalAssetValue"`
	TotalLiabilityValue []decimal.Decimal        `json:"totalLiabilityValue"`
	NetWorth            []decimal.Decimal        `json:"netWorth"`
	Cashflow            CashflowResponse         `json:"cashflow"`
	AssetBreakdown      []AssetBreakdownResponse `json:"assetBreakdown"`
}

// ToProjectionResponse converts a domain projection result to a DTO response
func ToProjectionResponse(result *domain.ProjectionResult) ProjectionResponse {
	response := ProjectionResponse{
		Dates:               result.Dates,
		TotalAssetValue:     result.TotalAssetValue,
		TotalLiabilityValue: result.TotalLiabilityValue,
		NetWorth:            result.NetWorth,
		Cashflow: CashflowResponse{
			TotalIncome:   result.Cashflow.TotalIncome,
			TotalExpenses: result.Cashflow.TotalExpenses,
			NetCashflow:   result.Cashflow.NetCashflow,
		},
		AssetBreakdown: make([]AssetBreakdownResponse, len(result.AssetBreakdown)),
	}

	for i, series := range result.AssetBreakdown {
		response.AssetBreakdown[i] = AssetBreakdownResponse{
			AssetClass: series.AssetClass,
			Values:     series.Values,
		}
	}

	return response
}
