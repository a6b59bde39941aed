package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InterestRateType indicates whether a loan's rate is fixed or variable.
// Variable rates are held constant for the life of a generated schedule;
// rate-change events are not modelled.
type InterestRateType string

const (
	FixedRate    InterestRateType = "FIXED"
	VariableRate InterestRateType = "VARIABLE"
)

// LoanTerms captures everything needed to amortize a single liability.
// It is constructed once from a liability record at projection time and is
// immutable for the duration of an amortization run.
type LoanTerms struct {
	Principal          decimal.Decimal  `json:"principal"`
	AnnualInterestRate decimal.Decimal  `json:"annualInterestRate"` // Decimal fraction, e.g. 0.055 for 5.5%
	TermMonths         int              `json:"termMonths"`
	StartDate          time.Time        `json:"startDate"`
	RateType           InterestRateType `json:"interestRateType"`
	PaymentFrequency   PaymentFrequency `json:"paymentFrequency"` // Cadence instalments are paid at; the schedule itself is always monthly
	InterestOnly       bool             `json:"interestOnly"` // Interest-only loans never reduce principal
}

// AmortizationEntry is one row of a payment schedule.
// PrincipalPortion + InterestPortion always equals Payment; RemainingBalance
// is non-increasing and reaches exactly zero on the final entry.
type AmortizationEntry struct {
	Index            int             `json:"index"` // 1-based payment number
	Payment          decimal.Decimal `json:"payment"`
	PrincipalPortion decimal.Decimal `json:"principalPortion"`
	InterestPortion  decimal.Decimal `json:"interestPortion"`
	RemainingBalance decimal.Decimal `json:"remainingBalance"`
}

// PaymentSplit is the principal/interest breakdown of a single payment.
type PaymentSplit struct {
	Principal decimal.Decimal `json:"principal"`
	Interest  decimal.Decimal `json:"interest"`
}
