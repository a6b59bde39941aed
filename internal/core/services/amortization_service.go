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

// amortizationService implements the amortization calculator operations.
// It is stateless; every run is computed fresh from its immutable inputs.
type amortizationService struct {
	BaseService
}

// NewAmortizationService creates a new amortization service.
func NewAmortizationService() portssvc.AmortizationSvcFacade {
	return &amortizationService{}
}

// validateLoanInputs checks the shared preconditions of the calculator operations.
func validateLoanInputs(principal, annualRate decimal.Decimal, termMonths int) error {
	if termMonths <= 0 {
		return fmt.Errorf("%w: term must be a positive number of months, got %d", apperrors.ErrInvalidTerm, termMonths)
	}
	if annualRate.IsNegative() {
		return fmt.Errorf("%w: annual rate %s is negative", apperrors.ErrInvalidRate, annualRate)
	}
	if principal.IsNegative() {
		return fmt.Errorf("%w: principal %s is negative", apperrors.ErrMalformedInput, principal)
	}
	return nil
}

func (s *amortizationService) ComputePayment(ctx context.Context, principal, annualRate decimal.Decimal, termMonths int) (decimal.Decimal, error) {
	if err := validateLoanInputs(principal, annualRate, termMonths); err != nil {
		return decimal.Zero, err
	}
	return finmath.AnnuityPayment(principal, annualRate, termMonths), nil
}

func (s *amortizationService) GenerateSchedule(ctx context.Context, terms domain.LoanTerms) ([]domain.AmortizationEntry, error) {
	payment, err := s.ComputePayment(ctx, terms.Principal, terms.AnnualInterestRate, terms.TermMonths)
	if err != nil {
		return nil, err
	}

	monthlyRate := finmath.MonthlyRate(terms.AnnualInterestRate)
	balance := utils.RoundCurrency(terms.Principal)
	entries := make([]domain.AmortizationEntry, 0, terms.TermMonths)

	for i := 1; i <= terms.TermMonths; i++ {
		interest := utils.RoundCurrency(balance.Mul(monthlyRate))
		principalPortion := payment.Sub(interest)
		if i == terms.TermMonths || principalPortion.GreaterThan(balance) {
			// The final payment absorbs residual rounding so the balance
			// lands on exactly zero and never goes negative.
			principalPortion = balance
		}
		balance = balance.Sub(principalPortion)
		entries = append(entries, domain.AmortizationEntry{
			Index:            i,
			Payment:          principalPortion.Add(interest),
			PrincipalPortion: principalPortion,
			InterestPortion:  interest,
			RemainingBalance: balance,
		})
	}

	s.LogDebug(ctx, "Generated amortization schedule",
		slog.Int("term_months", terms.TermMonths),
		slog.String("payment", payment.String()),
	)
	return entries, nil
}

func (s *amortizationService) CurrentBalance(ctx context.Context, terms domain.LoanTerms, asOf time.Time) (decimal.Decimal, error) {
	if err := validateLoanInputs(terms.Principal, terms.AnnualInterestRate, terms.TermMonths); err != nil {
		return decimal.Zero, err
	}

	var schedule []domain.AmortizationEntry
	if !terms.InterestOnly {
		var err error
		schedule, err = s.GenerateSchedule(ctx, terms)
		if err != nil {
			return decimal.Zero, err
		}
	}
	return scheduleBalanceAt(terms, schedule, wholeMonthsBetween(terms.StartDate, asOf)), nil
}

func (s *amortizationService) CurrentPaymentSplit(ctx context.Context, currentBalance, annualRate, payment decimal.Decimal) domain.PaymentSplit {
	if currentBalance.Sign() <= 0 {
		// Loan already paid off, nothing due.
		return domain.PaymentSplit{Principal: decimal.Zero, Interest: decimal.Zero}
	}
	interest := utils.RoundCurrency(currentBalance.Mul(finmath.MonthlyRate(annualRate)))
	principal := payment.Sub(interest)
	if principal.IsNegative() {
		principal = decimal.Zero
	}
	if principal.GreaterThan(currentBalance) {
		principal = currentBalance
	}
	return domain.PaymentSplit{Principal: principal, Interest: interest}
}

// scheduleBalanceAt reads the outstanding balance after elapsedMonths whole
// months from a loan's fixed schedule: the full principal before the first
// payment, zero once the term is exhausted. Interest-only loans carry the full
// principal until maturity (schedule may be nil for them).
func scheduleBalanceAt(terms domain.LoanTerms, schedule []domain.AmortizationEntry, elapsedMonths int) decimal.Decimal {
	if elapsedMonths <= 0 {
		return utils.RoundCurrency(terms.Principal)
	}
	if terms.InterestOnly {
		if elapsedMonths >= terms.TermMonths {
			return decimal.Zero
		}
		return utils.RoundCurrency(terms.Principal)
	}
	if elapsedMonths >= len(schedule) {
		return decimal.Zero
	}
	return schedule[elapsedMonths-1].RemainingBalance
}

// wholeMonthsBetween returns the number of whole calendar months elapsed from
// start to end, negative when end precedes start.
func wholeMonthsBetween(start, end time.Time) int {
	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	if end.Day() < start.Day() {
		months--
	}
	return months
}
