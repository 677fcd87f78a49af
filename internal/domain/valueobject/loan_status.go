package valueobject

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// LoanStatus – immutable value object
// ---------------------------------------------------------------------------

// LoanStatus represents the lifecycle stage of a loan. It is always derived
// from the projected remaining balance, never stored as authoritative state.
type LoanStatus struct {
	value string
}

const (
	loanStatusActive  = "ACTIVE"
	loanStatusPaidOff = "PAID_OFF"
)

var (
	LoanStatusActive  = LoanStatus{value: loanStatusActive}
	LoanStatusPaidOff = LoanStatus{value: loanStatusPaidOff}
)

var validLoanStatuses = map[string]LoanStatus{
	loanStatusActive:  LoanStatusActive,
	loanStatusPaidOff: LoanStatusPaidOff,
}

// NewLoanStatus creates a LoanStatus from a raw string.
func NewLoanStatus(s string) (LoanStatus, error) {
	v, ok := validLoanStatuses[s]
	if !ok {
		return LoanStatus{}, fmt.Errorf("invalid loan status: %q", s)
	}
	return v, nil
}

// StatusForBalance derives the status from a projected remaining balance.
func StatusForBalance(remaining decimal.Decimal) LoanStatus {
	if remaining.LessThanOrEqual(decimal.Zero) {
		return LoanStatusPaidOff
	}
	return LoanStatusActive
}

// String returns the string representation of the status.
func (s LoanStatus) String() string { return s.value }

// IsZero returns true if the status has not been initialised.
func (s LoanStatus) IsZero() bool { return s.value == "" }

// Equal returns true when both statuses carry the same value.
func (s LoanStatus) Equal(other LoanStatus) bool { return s.value == other.value }
