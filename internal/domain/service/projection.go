package service

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finbooks/loan-service/internal/domain/model"
	"github.com/finbooks/loan-service/internal/domain/valueobject"
)

// PaymentBalance pairs a payment with the running balance after it is
// applied in date order.
type PaymentBalance struct {
	PaymentID    string
	PaymentDate  time.Time
	Principal    decimal.Decimal
	Interest     decimal.Decimal
	BalanceAfter decimal.Decimal
}

// Projection is the derived financial state of a loan: the reconciliation
// authority's answer, recomputed from the full payment history on every
// read.
type Projection struct {
	RemainingBalance   decimal.Decimal
	TotalPrincipalPaid decimal.Decimal
	TotalInterestPaid  decimal.Decimal
	RunningBalances    []PaymentBalance
	Status             valueobject.LoanStatus
}

// Project replays the loan's payment history, in payment-date order, against
// the original principal and returns the remaining balance, paid totals and
// a per-payment running balance.
//
// The function is pure: it sorts a copy of the input, has no side effects
// and is idempotent. Ties on payment date are broken by recording time and
// then by id, so the output depends only on the content of the history,
// never on the order callers supply it in. The running balance is clamped
// at zero on every step; an overpaying entry is tolerated, not rejected,
// and can never surface a negative balance.
func Project(loan model.Loan, payments []model.LoanPayment) Projection {
	ordered := make([]model.LoanPayment, len(payments))
	copy(ordered, payments)
	sort.Slice(ordered, func(i, j int) bool {
		if !ordered[i].PaymentDate().Equal(ordered[j].PaymentDate()) {
			return ordered[i].PaymentDate().Before(ordered[j].PaymentDate())
		}
		if !ordered[i].RecordedAt().Equal(ordered[j].RecordedAt()) {
			return ordered[i].RecordedAt().Before(ordered[j].RecordedAt())
		}
		return ordered[i].ID() < ordered[j].ID()
	})

	balance := loan.Principal()
	totalPrincipal := decimal.Zero
	totalInterest := decimal.Zero
	running := make([]PaymentBalance, 0, len(ordered))

	for _, p := range ordered {
		balance = balance.Sub(p.Principal())
		if balance.IsNegative() {
			balance = decimal.Zero
		}
		totalPrincipal = totalPrincipal.Add(p.Principal())
		totalInterest = totalInterest.Add(p.Interest())

		running = append(running, PaymentBalance{
			PaymentID:    p.ID(),
			PaymentDate:  p.PaymentDate(),
			Principal:    p.Principal(),
			Interest:     p.Interest(),
			BalanceAfter: balance,
		})
	}

	return Projection{
		RemainingBalance:   balance,
		TotalPrincipalPaid: totalPrincipal,
		TotalInterestPaid:  totalInterest,
		RunningBalances:    running,
		Status:             valueobject.StatusForBalance(balance),
	}
}

// PaymentSuggestion is a proposed next payment for a loan.
type PaymentSuggestion struct {
	Total     decimal.Decimal
	Principal decimal.Decimal
	Interest  decimal.Decimal
	Remaining decimal.Decimal
	PaidOff   bool
}

// SuggestNextPayment composes the balance projector with the allocation
// engine to propose the next due amount. The proposal is the loan's
// periodic payment, capped at remaining balance plus one period's interest
// so the final payment retires the loan exactly; lump-balance loans get a
// full-payoff suggestion. A paid-off loan yields a zero suggestion.
func SuggestNextPayment(
	loan model.Loan,
	payments []model.LoanPayment,
	periodsPerYearForInterest int,
) (PaymentSuggestion, error) {
	if periodsPerYearForInterest < 1 {
		periodsPerYearForInterest = DefaultPeriodsPerYear
	}

	projection := Project(loan, payments)
	remaining := projection.RemainingBalance
	if remaining.IsZero() {
		return PaymentSuggestion{
			Total:     decimal.Zero,
			Principal: decimal.Zero,
			Interest:  decimal.Zero,
			Remaining: decimal.Zero,
			PaidOff:   true,
		}, nil
	}

	periodicRate := loan.AnnualRate().Div(decimal.NewFromInt(int64(periodsPerYearForInterest)))
	interest := remaining.Mul(periodicRate).Round(2)
	payoff := remaining.Add(interest)

	proposed := payoff
	if !loan.Frequency().IsZero() {
		periodic := loan.SuggestedPayment()
		if periodic.LessThanOrEqual(decimal.Zero) {
			var err error
			periodic, err = model.PeriodicPayment(
				loan.Principal(), loan.AnnualRate(), loan.TermMonths(), loan.Frequency(),
			)
			if err != nil {
				return PaymentSuggestion{}, err
			}
		}
		if periodic.LessThan(payoff) {
			proposed = periodic
		}
	}

	split, err := AllocatePayment(remaining, loan.AnnualRate(), proposed, periodsPerYearForInterest)
	if err != nil {
		return PaymentSuggestion{}, err
	}

	return PaymentSuggestion{
		Total:     proposed,
		Principal: split.Principal,
		Interest:  split.Interest,
		Remaining: remaining,
	}, nil
}
