package event

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finbooks/loan-service/pkg/events"
)

// DomainEvent is an alias for the shared pkg/events.DomainEvent interface.
type DomainEvent = events.DomainEvent

// ---------------------------------------------------------------------------
// Loan events
// ---------------------------------------------------------------------------

// LoanCreated is raised when a loan is created and its principal disbursed.
type LoanCreated struct {
	events.BaseEvent
	CashAccountID    string          `json:"cash_account_id"`
	Kind             string          `json:"kind"`
	Principal        decimal.Decimal `json:"principal"`
	Currency         string          `json:"currency"`
	AnnualRate       decimal.Decimal `json:"annual_rate"`
	TermMonths       int             `json:"term_months"`
	Frequency        string          `json:"payment_frequency,omitempty"`
	StartDate        time.Time       `json:"start_date"`
	SuggestedPayment decimal.Decimal `json:"suggested_payment"`
}

func NewLoanCreated(
	loanID, tenantID, cashAccountID, kind string,
	principal decimal.Decimal, currency string,
	annualRate decimal.Decimal, termMonths int,
	frequency string, startDate time.Time,
	suggestedPayment decimal.Decimal,
) LoanCreated {
	return LoanCreated{
		BaseEvent:        events.NewBaseEvent("loan.created", loanID, "Loan", tenantID),
		CashAccountID:    cashAccountID,
		Kind:             kind,
		Principal:        principal,
		Currency:         currency,
		AnnualRate:       annualRate,
		TermMonths:       termMonths,
		Frequency:        frequency,
		StartDate:        startDate,
		SuggestedPayment: suggestedPayment,
	}
}

// LoanPaidOff is raised when the projected remaining balance reaches zero.
type LoanPaidOff struct {
	events.BaseEvent
	TotalPrincipalPaid decimal.Decimal `json:"total_principal_paid"`
	TotalInterestPaid  decimal.Decimal `json:"total_interest_paid"`
}

func NewLoanPaidOff(loanID, tenantID string, totalPrincipal, totalInterest decimal.Decimal) LoanPaidOff {
	return LoanPaidOff{
		BaseEvent:          events.NewBaseEvent("loan.paid_off", loanID, "Loan", tenantID),
		TotalPrincipalPaid: totalPrincipal,
		TotalInterestPaid:  totalInterest,
	}
}

// ---------------------------------------------------------------------------
// Payment events
// ---------------------------------------------------------------------------

// PaymentRecorded is raised when a payment is recorded against a loan.
type PaymentRecorded struct {
	events.BaseEvent
	PaymentID        string          `json:"payment_id"`
	AccountID        string          `json:"account_id"`
	PaymentDate      time.Time       `json:"payment_date"`
	Total            decimal.Decimal `json:"total_amount"`
	Principal        decimal.Decimal `json:"principal_amount"`
	Interest         decimal.Decimal `json:"interest_amount"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
}

func NewPaymentRecorded(
	loanID, tenantID, paymentID, accountID string,
	paymentDate time.Time,
	total, principal, interest, remaining decimal.Decimal,
) PaymentRecorded {
	return PaymentRecorded{
		BaseEvent:        events.NewBaseEvent("loan.payment.recorded", loanID, "Loan", tenantID),
		PaymentID:        paymentID,
		AccountID:        accountID,
		PaymentDate:      paymentDate,
		Total:            total,
		Principal:        principal,
		Interest:         interest,
		RemainingBalance: remaining,
	}
}

// PaymentUpdated is raised when a recorded payment is amended.
type PaymentUpdated struct {
	events.BaseEvent
	PaymentID        string          `json:"payment_id"`
	PaymentDate      time.Time       `json:"payment_date"`
	Total            decimal.Decimal `json:"total_amount"`
	Principal        decimal.Decimal `json:"principal_amount"`
	Interest         decimal.Decimal `json:"interest_amount"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
}

func NewPaymentUpdated(
	loanID, tenantID, paymentID string,
	paymentDate time.Time,
	total, principal, interest, remaining decimal.Decimal,
) PaymentUpdated {
	return PaymentUpdated{
		BaseEvent:        events.NewBaseEvent("loan.payment.updated", loanID, "Loan", tenantID),
		PaymentID:        paymentID,
		PaymentDate:      paymentDate,
		Total:            total,
		Principal:        principal,
		Interest:         interest,
		RemainingBalance: remaining,
	}
}

// PaymentDeleted is raised when a recorded payment is removed.
type PaymentDeleted struct {
	events.BaseEvent
	PaymentID        string          `json:"payment_id"`
	Total            decimal.Decimal `json:"total_amount"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
}

func NewPaymentDeleted(loanID, tenantID, paymentID string, total, remaining decimal.Decimal) PaymentDeleted {
	return PaymentDeleted{
		BaseEvent:        events.NewBaseEvent("loan.payment.deleted", loanID, "Loan", tenantID),
		PaymentID:        paymentID,
		Total:            total,
		RemainingBalance: remaining,
	}
}
