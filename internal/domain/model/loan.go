package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finbooks/loan-service/internal/domain/event"
	"github.com/finbooks/loan-service/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Loan aggregate root
// ---------------------------------------------------------------------------

// Loan is an immutable aggregate. Mutations return a new copy.
//
// A loan carries its contractual terms only. The outstanding balance, paid
// totals and status are always derived by replaying the payment history
// through the balance projector; no stored counter is trusted by business
// logic. The suggested payment is a cached convenience figure and is never
// authoritative for balance math.
type Loan struct {
	id               string
	tenantID         string
	cashAccountID    string
	name             string
	kind             valueobject.LoanKind
	principal        decimal.Decimal
	currency         string
	annualRate       decimal.Decimal
	termMonths       int
	frequency        valueobject.PaymentFrequency
	startDate        time.Time
	suggestedPayment decimal.Decimal
	version          int
	createdAt        time.Time
	updatedAt        time.Time
	domainEvents     []event.DomainEvent
}

// NewLoan creates a loan from validated terms. When a payment frequency is
// set, the advisory suggested payment is computed up front; without one the
// loan is tracked as a lump balance only.
func NewLoan(
	tenantID, cashAccountID, name string,
	kind valueobject.LoanKind,
	principal decimal.Decimal,
	currency string,
	annualRate decimal.Decimal,
	termMonths int,
	frequency valueobject.PaymentFrequency,
	startDate time.Time,
	now time.Time,
) (Loan, error) {
	if tenantID == "" {
		return Loan{}, ErrTenantRequired
	}
	if cashAccountID == "" {
		return Loan{}, ErrAccountRequired
	}
	if kind.IsZero() {
		return Loan{}, ErrKindRequired
	}
	if currency == "" {
		return Loan{}, ErrCurrencyRequired
	}
	if err := validateLoanTerms(principal, annualRate, termMonths); err != nil {
		return Loan{}, err
	}

	suggested := decimal.Zero
	if !frequency.IsZero() {
		var err error
		suggested, err = PeriodicPayment(principal, annualRate, termMonths, frequency)
		if err != nil {
			return Loan{}, err
		}
	}

	id := uuid.New().String()
	loan := Loan{
		id:               id,
		tenantID:         tenantID,
		cashAccountID:    cashAccountID,
		name:             name,
		kind:             kind,
		principal:        principal,
		currency:         currency,
		annualRate:       annualRate,
		termMonths:       termMonths,
		frequency:        frequency,
		startDate:        startDate,
		suggestedPayment: suggested,
		version:          1,
		createdAt:        now,
		updatedAt:        now,
	}

	loan.domainEvents = append(loan.domainEvents, event.NewLoanCreated(
		id, tenantID, cashAccountID, kind.String(),
		principal, currency, annualRate, termMonths,
		frequency.String(), startDate, suggested,
	))

	return loan, nil
}

// ReconstructLoan rebuilds a Loan aggregate from persistence.
func ReconstructLoan(
	id, tenantID, cashAccountID, name string,
	kind valueobject.LoanKind,
	principal decimal.Decimal,
	currency string,
	annualRate decimal.Decimal,
	termMonths int,
	frequency valueobject.PaymentFrequency,
	startDate time.Time,
	suggestedPayment decimal.Decimal,
	version int,
	createdAt, updatedAt time.Time,
) Loan {
	return Loan{
		id:               id,
		tenantID:         tenantID,
		cashAccountID:    cashAccountID,
		name:             name,
		kind:             kind,
		principal:        principal,
		currency:         currency,
		annualRate:       annualRate,
		termMonths:       termMonths,
		frequency:        frequency,
		startDate:        startDate,
		suggestedPayment: suggestedPayment,
		version:          version,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

// Schedule returns the full projected amortization schedule for the loan's
// terms, or ErrNoPaymentFrequency for lump-balance loans.
func (l Loan) Schedule() ([]ScheduleEntry, error) {
	if l.frequency.IsZero() {
		return nil, ErrNoPaymentFrequency
	}
	return GenerateSchedule(l.principal, l.annualRate, l.termMonths, l.startDate, l.frequency)
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (l Loan) ID() string                                  { return l.id }
func (l Loan) TenantID() string                            { return l.tenantID }
func (l Loan) CashAccountID() string                       { return l.cashAccountID }
func (l Loan) Name() string                                { return l.name }
func (l Loan) Kind() valueobject.LoanKind                  { return l.kind }
func (l Loan) Principal() decimal.Decimal                  { return l.principal }
func (l Loan) Currency() string                            { return l.currency }
func (l Loan) AnnualRate() decimal.Decimal                 { return l.annualRate }
func (l Loan) TermMonths() int                             { return l.termMonths }
func (l Loan) Frequency() valueobject.PaymentFrequency     { return l.frequency }
func (l Loan) StartDate() time.Time                        { return l.startDate }
func (l Loan) SuggestedPayment() decimal.Decimal           { return l.suggestedPayment }
func (l Loan) Version() int                                { return l.version }
func (l Loan) CreatedAt() time.Time                        { return l.createdAt }
func (l Loan) UpdatedAt() time.Time                        { return l.updatedAt }
func (l Loan) DomainEvents() []event.DomainEvent           { return l.domainEvents }

// ClearEvents returns a copy with an empty event list.
func (l Loan) ClearEvents() Loan {
	next := l
	next.domainEvents = nil
	return next
}
