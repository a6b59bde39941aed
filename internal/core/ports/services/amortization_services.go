package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wealthsight/wealth_projection_app/internal/core/domain"
)

// AmortizationSvcFacade defines the amortization calculator operations.
type AmortizationSvcFacade interface {
	// ComputePayment returns the fixed periodic payment for a fully
	// amortizing loan. Returns apperrors.ErrInvalidTerm for a non-positive
	// term and apperrors.ErrInvalidRate for a negative rate.
	ComputePayment(ctx context.Context, principal, annualRate decimal.Decimal, termMonths int) (decimal.Decimal, error)

	// GenerateSchedule materializes the full payment-by-payment schedule for
	// the given terms, one entry per month of the term.
	GenerateSchedule(ctx context.Context, terms domain.LoanTerms) ([]domain.AmortizationEntry, error)

	// CurrentBalance reconstructs the outstanding balance as of a date from
	// the loan's fixed schedule: the full principal before the start date,
	// zero once the schedule is exhausted.
	CurrentBalance(ctx context.Context, terms domain.LoanTerms, asOf time.Time) (decimal.Decimal, error)

	// CurrentPaymentSplit splits a payment against the given balance into
	// its interest and principal portions. The principal portion is floored
	// at zero for a loan that is already paid off.
	CurrentPaymentSplit(ctx context.Context, currentBalance, annualRate, payment decimal.Decimal) domain.PaymentSplit
}
