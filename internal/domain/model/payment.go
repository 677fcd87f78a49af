package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// splitEpsilon is the rounding tolerance, in currency units, allowed between
// a payment total and the sum of its principal and interest portions.
var splitEpsilon = decimal.NewFromFloat(0.01)

// LoanPayment is a recorded payment against a loan. Payments can be created,
// edited and deleted out of temporal order; the balance projector re-sorts
// the full history on every read, so a payment row never carries a stored
// running balance.
type LoanPayment struct {
	id          string
	loanID      string
	tenantID    string
	accountID   string
	paymentDate time.Time
	total       decimal.Decimal
	principal   decimal.Decimal
	interest    decimal.Decimal
	notes       string
	recordedAt  time.Time
	updatedAt   time.Time
	version     int
}

// NewLoanPayment creates a payment after validating the split invariant:
// the total must be positive and principal + interest must equal it within
// the rounding epsilon. A principal portion that overshoots the loan's
// remaining balance is deliberately NOT rejected here; the projector clamps
// the running balance at zero instead.
func NewLoanPayment(
	loanID, tenantID, accountID string,
	paymentDate time.Time,
	total, principal, interest decimal.Decimal,
	notes string,
	now time.Time,
) (LoanPayment, error) {
	if loanID == "" || tenantID == "" {
		return LoanPayment{}, ErrTenantRequired
	}
	if accountID == "" {
		return LoanPayment{}, ErrAccountRequired
	}
	if total.LessThanOrEqual(decimal.Zero) {
		return LoanPayment{}, ErrInvalidPayment
	}
	if principal.Add(interest).Sub(total).Abs().GreaterThan(splitEpsilon) {
		return LoanPayment{}, ErrSplitMismatch
	}

	return LoanPayment{
		id:          uuid.New().String(),
		loanID:      loanID,
		tenantID:    tenantID,
		accountID:   accountID,
		paymentDate: paymentDate,
		total:       total,
		principal:   principal,
		interest:    interest,
		notes:       notes,
		recordedAt:  now,
		updatedAt:   now,
		version:     1,
	}, nil
}

// ReconstructLoanPayment rebuilds a LoanPayment from persistence.
func ReconstructLoanPayment(
	id, loanID, tenantID, accountID string,
	paymentDate time.Time,
	total, principal, interest decimal.Decimal,
	notes string,
	version int,
	recordedAt, updatedAt time.Time,
) LoanPayment {
	return LoanPayment{
		id:          id,
		loanID:      loanID,
		tenantID:    tenantID,
		accountID:   accountID,
		paymentDate: paymentDate,
		total:       total,
		principal:   principal,
		interest:    interest,
		notes:       notes,
		recordedAt:  recordedAt,
		updatedAt:   updatedAt,
		version:     version,
	}
}

// Amend returns a copy with a new date, split and notes. The split
// invariant is re-validated; the version is left for the repository's
// optimistic locking to advance.
func (p LoanPayment) Amend(
	paymentDate time.Time,
	total, principal, interest decimal.Decimal,
	notes string,
	now time.Time,
) (LoanPayment, error) {
	if total.LessThanOrEqual(decimal.Zero) {
		return p, ErrInvalidPayment
	}
	if principal.Add(interest).Sub(total).Abs().GreaterThan(splitEpsilon) {
		return p, ErrSplitMismatch
	}

	next := p
	next.paymentDate = paymentDate
	next.total = total
	next.principal = principal
	next.interest = interest
	next.notes = notes
	next.updatedAt = now
	return next, nil
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (p LoanPayment) ID() string                 { return p.id }
func (p LoanPayment) LoanID() string             { return p.loanID }
func (p LoanPayment) TenantID() string           { return p.tenantID }
func (p LoanPayment) AccountID() string          { return p.accountID }
func (p LoanPayment) PaymentDate() time.Time     { return p.paymentDate }
func (p LoanPayment) Total() decimal.Decimal     { return p.total }
func (p LoanPayment) Principal() decimal.Decimal { return p.principal }
func (p LoanPayment) Interest() decimal.Decimal  { return p.interest }
func (p LoanPayment) Notes() string              { return p.notes }
func (p LoanPayment) RecordedAt() time.Time      { return p.recordedAt }
func (p LoanPayment) UpdatedAt() time.Time       { return p.updatedAt }
func (p LoanPayment) Version() int               { return p.version }
