package valueobject

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// LoanKind – immutable value object
// ---------------------------------------------------------------------------

// LoanKind distinguishes money borrowed (payable) from money lent
// (receivable). The kind only changes the direction of the associated cash
// movements; the amortization math is direction-agnostic.
type LoanKind struct {
	value string
}

const (
	loanKindPayable    = "PAYABLE"
	loanKindReceivable = "RECEIVABLE"
)

var (
	LoanKindPayable    = LoanKind{value: loanKindPayable}
	LoanKindReceivable = LoanKind{value: loanKindReceivable}
)

var validLoanKinds = map[string]LoanKind{
	loanKindPayable:    LoanKindPayable,
	loanKindReceivable: LoanKindReceivable,
}

// NewLoanKind creates a LoanKind from a raw string.
func NewLoanKind(s string) (LoanKind, error) {
	v, ok := validLoanKinds[s]
	if !ok {
		return LoanKind{}, fmt.Errorf("invalid loan kind: %q", s)
	}
	return v, nil
}

// String returns the string representation of the kind.
func (k LoanKind) String() string { return k.value }

// IsZero returns true if the kind has not been initialised.
func (k LoanKind) IsZero() bool { return k.value == "" }

// Equal returns true when both kinds carry the same value.
func (k LoanKind) Equal(other LoanKind) bool { return k.value == other.value }

// DisbursementCashDelta returns the signed cash-account movement caused by
// disbursing the given principal: borrowing increases cash, lending
// decreases it.
func (k LoanKind) DisbursementCashDelta(principal decimal.Decimal) decimal.Decimal {
	if k.value == loanKindReceivable {
		return principal.Neg()
	}
	return principal
}

// PaymentCashDelta returns the signed cash-account movement caused by a
// payment of the given total: repaying a borrowed loan decreases cash,
// receiving a payment on a lent loan increases it.
func (k LoanKind) PaymentCashDelta(total decimal.Decimal) decimal.Decimal {
	if k.value == loanKindReceivable {
		return total
	}
	return total.Neg()
}
