package valueobject

import (
	"fmt"
	"time"
)

// ---------------------------------------------------------------------------
// PaymentFrequency – immutable value object
// ---------------------------------------------------------------------------

// PaymentFrequency represents how often scheduled loan payments fall due.
// The zero value means the loan has no payment schedule and is tracked as a
// lump balance only.
type PaymentFrequency struct {
	value string
}

const (
	frequencyWeekly    = "WEEKLY"
	frequencyBiweekly  = "BIWEEKLY"
	frequencyMonthly   = "MONTHLY"
	frequencyQuarterly = "QUARTERLY"
	frequencyAnnually  = "ANNUALLY"
)

var (
	FrequencyWeekly    = PaymentFrequency{value: frequencyWeekly}
	FrequencyBiweekly  = PaymentFrequency{value: frequencyBiweekly}
	FrequencyMonthly   = PaymentFrequency{value: frequencyMonthly}
	FrequencyQuarterly = PaymentFrequency{value: frequencyQuarterly}
	FrequencyAnnually  = PaymentFrequency{value: frequencyAnnually}
)

var validFrequencies = map[string]PaymentFrequency{
	frequencyWeekly:    FrequencyWeekly,
	frequencyBiweekly:  FrequencyBiweekly,
	frequencyMonthly:   FrequencyMonthly,
	frequencyQuarterly: FrequencyQuarterly,
	frequencyAnnually:  FrequencyAnnually,
}

// NewPaymentFrequency creates a PaymentFrequency from a raw string. The empty
// string yields the zero value (no schedule).
func NewPaymentFrequency(s string) (PaymentFrequency, error) {
	if s == "" {
		return PaymentFrequency{}, nil
	}
	v, ok := validFrequencies[s]
	if !ok {
		return PaymentFrequency{}, fmt.Errorf("invalid payment frequency: %q", s)
	}
	return v, nil
}

// String returns the string representation of the frequency.
func (f PaymentFrequency) String() string { return f.value }

// IsZero returns true when no frequency is set (no schedule).
func (f PaymentFrequency) IsZero() bool { return f.value == "" }

// Equal returns true when both frequencies carry the same value.
func (f PaymentFrequency) Equal(other PaymentFrequency) bool { return f.value == other.value }

// PeriodsPerYear returns the number of payment periods per year.
func (f PaymentFrequency) PeriodsPerYear() int {
	switch f.value {
	case frequencyWeekly:
		return 52
	case frequencyBiweekly:
		return 26
	case frequencyMonthly:
		return 12
	case frequencyQuarterly:
		return 4
	case frequencyAnnually:
		return 1
	default:
		return 0
	}
}

// DueDate returns the date of the n-th payment (1-based) after start.
// Monthly, quarterly and annual stepping is calendar-accurate so due dates
// land on the same day of month rather than drifting by fixed 30-day blocks.
func (f PaymentFrequency) DueDate(start time.Time, n int) time.Time {
	switch f.value {
	case frequencyWeekly:
		return start.AddDate(0, 0, 7*n)
	case frequencyBiweekly:
		return start.AddDate(0, 0, 14*n)
	case frequencyMonthly:
		return start.AddDate(0, n, 0)
	case frequencyQuarterly:
		return start.AddDate(0, 3*n, 0)
	case frequencyAnnually:
		return start.AddDate(n, 0, 0)
	default:
		return start
	}
}
