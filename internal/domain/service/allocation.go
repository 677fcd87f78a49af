package service

import (
	"github.com/shopspring/decimal"

	"github.com/finbooks/loan-service/internal/domain/model"
)

// DefaultPeriodsPerYear is the interest-accrual convention applied to ad-hoc
// payments when the caller does not override it: interest on a manual
// payment is computed with a monthly periodic rate regardless of the loan's
// payment cadence.
const DefaultPeriodsPerYear = 12

// PaymentSplit is the division of a single payment into principal and
// interest portions.
type PaymentSplit struct {
	Principal decimal.Decimal
	Interest  decimal.Decimal
}

// AllocatePayment splits an ad-hoc payment into principal and interest
// against the current outstanding balance. Interest is one period's accrual
// on the balance, capped at the payment itself so it can never exceed the
// total; the remainder goes to principal.
//
// The split is a sensible default only. Callers recording a payment may
// bypass it entirely with a custom split; no check is made that a supplied
// split matches this formula.
func AllocatePayment(
	outstandingBalance decimal.Decimal,
	annualRate decimal.Decimal,
	proposedTotal decimal.Decimal,
	periodsPerYearForInterest int,
) (PaymentSplit, error) {
	if proposedTotal.LessThanOrEqual(decimal.Zero) {
		return PaymentSplit{}, model.ErrInvalidPayment
	}
	if annualRate.IsNegative() || annualRate.GreaterThan(decimal.NewFromInt(1)) {
		return PaymentSplit{}, model.ErrInvalidRate
	}
	if periodsPerYearForInterest < 1 {
		periodsPerYearForInterest = DefaultPeriodsPerYear
	}

	balance := outstandingBalance
	if balance.IsNegative() {
		balance = decimal.Zero
	}

	periodicRate := annualRate.Div(decimal.NewFromInt(int64(periodsPerYearForInterest)))
	interest := balance.Mul(periodicRate).Round(2)
	if interest.GreaterThan(proposedTotal) {
		interest = proposedTotal
	}

	return PaymentSplit{
		Principal: proposedTotal.Sub(interest).Round(2),
		Interest:  interest,
	}, nil
}
