package domain

import (
	"fmt"
	"strings"
)

// PaymentFrequency enumerates the supported payment cadences.
type PaymentFrequency string

const (
	Weekly      PaymentFrequency = "WEEKLY"
	Fortnightly PaymentFrequency = "FORTNIGHTLY"
	Monthly     PaymentFrequency = "MONTHLY"
	Quarterly   PaymentFrequency = "QUARTERLY"
	Annually    PaymentFrequency = "ANNUALLY"
)

// PeriodsPerYear returns the fixed number of payment periods per year for the frequency.
// The enumeration is closed; an unknown value is a programming error and panics.
func (f PaymentFrequency) PeriodsPerYear() int64 {
	switch f {
	case Weekly:
		return 52
	case Fortnightly:
		return 26
	case Monthly:
		return 12
	case Quarterly:
		return 4
	case Annually:
		return 1
	default:
		panic(fmt.Sprintf("unknown payment frequency %q", string(f)))
	}
}

// ParsePaymentFrequency converts an external string into a PaymentFrequency.
// Matching is case-insensitive to accept both API-style lowercase and the
// canonical uppercase values.
func ParsePaymentFrequency(s string) (PaymentFrequency, error) {
	switch PaymentFrequency(strings.ToUpper(s)) {
	case Weekly:
		return Weekly, nil
	case Fortnightly:
		return Fortnightly, nil
	case Monthly:
		return Monthly, nil
	case Quarterly:
		return Quarterly, nil
	case Annually:
		return Annually, nil
	default:
		return "", fmt.Errorf("unrecognised payment frequency %q", s)
	}
}
