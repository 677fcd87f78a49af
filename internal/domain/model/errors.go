package model

import "errors"

// Validation errors returned by the pure calculation functions before any
// computation proceeds.
var (
	ErrInvalidPrincipal   = errors.New("principal must be positive")
	ErrInvalidRate        = errors.New("annual interest rate must be within [0, 1]")
	ErrInvalidTerm        = errors.New("term must be at least one month")
	ErrInvalidPayment     = errors.New("payment amount must be positive")
	ErrSplitMismatch      = errors.New("principal and interest portions must sum to the payment total")
	ErrNoPaymentFrequency = errors.New("loan has no payment frequency")
	ErrTenantRequired     = errors.New("tenant ID is required")
	ErrAccountRequired    = errors.New("cash account ID is required")
	ErrKindRequired       = errors.New("loan kind is required")
	ErrCurrencyRequired   = errors.New("currency is required")
)

// Collaborator-boundary errors. Repositories map missing rows to ErrNotFound;
// the cash ledger returns ErrInsufficientFunds when a posting would overdraw
// a non-credit account.
var (
	ErrNotFound          = errors.New("not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
)
