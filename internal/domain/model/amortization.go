package model

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finbooks/loan-service/internal/domain/valueobject"
)

// ScheduleEntry is an immutable value object representing one period in a
// projected amortization schedule. Schedules are derived on demand and never
// persisted.
type ScheduleEntry struct {
	DueDate          time.Time
	Payment          decimal.Decimal
	Principal        decimal.Decimal
	Interest         decimal.Decimal
	RemainingBalance decimal.Decimal
	Period           int
}

// TotalPeriods returns the number of payment periods a term of the given
// length produces at the given frequency, never less than one.
func TotalPeriods(termMonths int, frequency valueobject.PaymentFrequency) int {
	n := int(math.Round(float64(termMonths) / 12.0 * float64(frequency.PeriodsPerYear())))
	if n < 1 {
		n = 1
	}
	return n
}

// PeriodicPayment computes the level payment that retires the principal over
// the loan term at the given annual rate and payment frequency.
//
// The calculation uses the standard annuity formula
//
//	payment = P * r / (1 - (1+r)^-n)
//
// with r the periodic rate (annualRate / periodsPerYear) and n the total
// number of periods. A zero rate degenerates to an even split. The power
// term is computed in float64 and the result switched back to decimal for
// monetary rounding, half-up to cents.
func PeriodicPayment(
	principal decimal.Decimal,
	annualRate decimal.Decimal,
	termMonths int,
	frequency valueobject.PaymentFrequency,
) (decimal.Decimal, error) {
	if err := validateLoanTerms(principal, annualRate, termMonths); err != nil {
		return decimal.Zero, err
	}
	if frequency.IsZero() {
		return decimal.Zero, ErrNoPaymentFrequency
	}

	n := TotalPeriods(termMonths, frequency)
	periodicRate := annualRate.InexactFloat64() / float64(frequency.PeriodsPerYear())

	if periodicRate == 0 {
		return principal.Div(decimal.NewFromInt(int64(n))).Round(2), nil
	}

	factor := math.Pow(1+periodicRate, float64(n))
	payment := principal.InexactFloat64() * periodicRate * factor / (factor - 1)
	return decimal.NewFromFloat(payment).Round(2), nil
}

// GenerateSchedule computes the full projected amortization schedule for the
// given loan terms. It is a pure function: same inputs, same schedule.
//
// Each entry's interest is the periodic rate applied to the running balance,
// rounded to cents; the principal portion is the payment remainder. The
// principal portion is capped at the running balance, and the final period
// absorbs whatever balance is left, so the schedule always terminates at
// exactly zero and the principal portions sum to the original principal
// exactly.
func GenerateSchedule(
	principal decimal.Decimal,
	annualRate decimal.Decimal,
	termMonths int,
	startDate time.Time,
	frequency valueobject.PaymentFrequency,
) ([]ScheduleEntry, error) {
	payment, err := PeriodicPayment(principal, annualRate, termMonths, frequency)
	if err != nil {
		return nil, err
	}

	n := TotalPeriods(termMonths, frequency)
	periodicRate := decimal.NewFromFloat(
		annualRate.InexactFloat64() / float64(frequency.PeriodsPerYear()),
	)

	schedule := make([]ScheduleEntry, 0, n)
	remaining := principal

	for period := 1; period <= n; period++ {
		interest := remaining.Mul(periodicRate).Round(2)
		principalPart := payment.Sub(interest)

		// The last period absorbs rounding residue; intermediate periods
		// never amortize past zero.
		if period == n || principalPart.GreaterThan(remaining) {
			principalPart = remaining
		}

		remaining = remaining.Sub(principalPart)

		schedule = append(schedule, ScheduleEntry{
			Period:           period,
			DueDate:          frequency.DueDate(startDate, period),
			Payment:          principalPart.Add(interest),
			Principal:        principalPart,
			Interest:         interest,
			RemainingBalance: remaining,
		})
	}

	return schedule, nil
}

func validateLoanTerms(principal, annualRate decimal.Decimal, termMonths int) error {
	if principal.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidPrincipal
	}
	if annualRate.IsNegative() || annualRate.GreaterThan(decimal.NewFromInt(1)) {
		return ErrInvalidRate
	}
	if termMonths < 1 {
		return ErrInvalidTerm
	}
	return nil
}
