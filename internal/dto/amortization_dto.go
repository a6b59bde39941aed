package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wealthsight/wealth_projection_app/internal/apperrors"
	"github.com/wealthsight/wealth_projection_app/internal/core/domain"
)

// LoanTermsRequest defines the wire shape of a single liability's loan terms.
// Validation of numeric semantics (positive term, non-negative rate) belongs
// to the engine; binding only enforces shape.
type LoanTermsRequest struct {
	Principal          decimal.Decimal `json:"principal" binding:"required"`
	AnnualInterestRate decimal.Decimal `json:"annualInterestRate"` // Decimal fraction, e.g. 0.055 for 5.5%
	TermMonths         int             `json:"termMonths"`
	StartDate          string          `json:"startDate" binding:"omitempty,datetime=2006-01-02"`
	InterestRateType   string          `json:"interestRateType" binding:"omitempty,oneof=FIXED VARIABLE fixed variable"`
	PaymentFrequency   string          `json:"paymentFrequency" binding:"omitempty,paymentfrequency"`
	InterestOnly       bool            `json:"interestOnly"`
}

// ToDomain converts the request into immutable domain loan terms, applying
// defaults (monthly payments, fixed rate, start today) for omitted fields.
func (r LoanTermsRequest) ToDomain() (domain.LoanTerms, error) {
	terms := domain.LoanTerms{
		Principal:          r.Principal,
		AnnualInterestRate: r.AnnualInterestRate,
		TermMonths:         r.TermMonths,
		RateType:           domain.FixedRate,
		PaymentFrequency:   domain.Monthly,
		InterestOnly:       r.InterestOnly,
	}

	if r.StartDate != "" {
		startDate, err := time.Parse("2006-01-02", r.StartDate)
		if err != nil {
			return domain.LoanTerms{}, fmt.Errorf("%w: invalid startDate %q", apperrors.ErrMalformedInput, r.StartDate)
		}
		terms.StartDate = startDate
	}

	if r.InterestRateType != "" {
		switch rt := domain.InterestRateType(strings.ToUpper(r.InterestRateType)); rt {
		case domain.FixedRate, domain.VariableRate:
			terms.RateType = rt
		default:
			return domain.LoanTerms{}, fmt.Errorf("%w: invalid interestRateType %q", apperrors.ErrMalformedInput, r.InterestRateType)
		}
	}

	if r.PaymentFrequency != "" {
		frequency, err := domain.ParsePaymentFrequency(r.PaymentFrequency)
		if err != nil {
			return domain.LoanTerms{}, fmt.Errorf("%w: %v", apperrors.ErrMalformedInput, err)
		}
		terms.PaymentFrequency = frequency
	}

	return terms, nil
}

// ComputePaymentRequest defines the payload for the payment calculation endpoint.
type ComputePaymentRequest struct {
	Principal          decimal.Decimal `json:"principal" binding:"required"`
	AnnualInterestRate decimal.Decimal `json:"annualInterestRate"`
	TermMonths         int             `json:"termMonths"`
}

// ComputePaymentResponse carries the periodic payment and its first-period split.
type ComputePaymentResponse struct {
	Payment          decimal.Decimal `json:"payment"`
	PrincipalPortion decimal.Decimal `json:"principalPortion"`
	InterestPortion  decimal.Decimal `json:"interestPortion"`
}

// AmortizationEntryResponse is one row of a schedule response.
type AmortizationEntryResponse struct {
	Index            int             `json:"index"`
	Payment          decimal.Decimal `json:"payment"`
	PrincipalPortion decimal.Decimal `json:"principalPortion"`
	InterestPortion  decimal.Decimal `json:"interestPortion"`
	RemainingBalance decimal.Decimal `json:"remainingBalance"`
}

// ScheduleResponse is the full amortization schedule for a loan.
type ScheduleResponse struct {
	Payment       decimal.Decimal             `json:"payment"`
	TotalInterest decimal.Decimal             `json:"totalInterest"`
	Entries       []AmortizationEntryResponse `json:"entries"`
}

// CurrentBalanceRequest asks for a loan's outstanding balance as of a date.
type CurrentBalanceRequest struct {
	LoanTermsRequest
	AsOf string `json:"asOf" binding:"omitempty,datetime=2006-01-02"`
}

// CurrentBalanceResponse carries the reconstructed balance and the
// principal/interest split of the payment due against it.
type CurrentBalanceResponse struct {
	AsOf             string          `json:"asOf"`
	Balance          decimal.Decimal `json:"balance"`
	Payment          decimal.Decimal `json:"payment"`
	PrincipalPortion decimal.Decimal `json:"principalPortion"`
	InterestPortion  decimal.Decimal `json:"interestPortion"`
}

// ToScheduleResponse converts domain schedule entries to the wire shape.
func ToScheduleResponse(payment decimal.Decimal, entries []domain.AmortizationEntry) ScheduleResponse {
	response := ScheduleResponse{
		Payment: payment,
		Entries: make([]AmortizationEntryResponse, len(entries)),
	}

	totalInterest := decimal.Zero
	for i, entry := range entries {
		response.Entries[i] = AmortizationEntryResponse{
			Index:            entry.Index,
			Payment:          entry.Payment,
			PrincipalPortion: entry.PrincipalPortion,
			InterestPortion:  entry.InterestPortion,
			RemainingBalance: entry.RemainingBalance,
		}
		totalInterest = totalInterest.Add(entry.InterestPortion)
	}
	response.TotalInterest = totalInterest

	return response
}
