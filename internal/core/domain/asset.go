package domain

import "github.com/shopspring/decimal"

// AssetProjectionInput is the snapshot of a single asset at projection time.
// Each asset is grown independently; no cross-asset correlation is modelled.
type AssetProjectionInput struct {
	CurrentValue      decimal.Decimal `json:"currentValue"`
	AnnualGrowthRate  decimal.Decimal `json:"annualGrowthRate"`  // Decimal fraction; may be negative for depreciating assets
	AnnualIncomeYield decimal.Decimal `json:"annualIncomeYield"` // Rental/dividend yield as a fraction of value
	AssetClass        string          `json:"assetClass"`        // Grouping label for the projection breakdown
}

// ExpenseCategory is the normalized category shape. All category inputs are
// coerced to this form at the system boundary, never inside the engine.
type ExpenseCategory struct {
	CategoryID       string           `json:"categoryID"`
	Name             string           `json:"name"`
	Description      string           `json:"description,omitempty"`
	DefaultFrequency PaymentFrequency `json:"defaultFrequency"`
}

// RecurringExpense is an externally supplied outgoing (property costs,
// investment fees) stated at its own payment cadence.
type RecurringExpense struct {
	Name      string           `json:"name"`
	Amount    decimal.Decimal  `json:"amount"`
	Frequency PaymentFrequency `json:"frequency"`
	Category  *ExpenseCategory `json:"category,omitempty"`
}
