package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Request DTOs
// ---------------------------------------------------------------------------

// CreateLoanRequest carries the data needed to create and disburse a loan.
type CreateLoanRequest struct {
	TenantID      string          `json:"tenant_id"`
	CashAccountID string          `json:"cash_account_id"`
	Name          string          `json:"name"`
	Kind          string          `json:"kind"`
	Principal     decimal.Decimal `json:"principal"`
	Currency      string          `json:"currency"`
	AnnualRate    decimal.Decimal `json:"annual_rate"`
	TermMonths    int             `json:"term_months"`
	Frequency     string          `json:"payment_frequency,omitempty"`
	StartDate     time.Time       `json:"start_date"`
}

// RecordPaymentRequest carries the data for recording a loan payment.
// Principal and Interest are optional: when both are set they form a custom
// split that bypasses the allocation engine; otherwise the engine computes
// the default split. PeriodsPerYearForInterest overrides the monthly
// accrual convention when positive.
type RecordPaymentRequest struct {
	TenantID                  string           `json:"tenant_id"`
	LoanID                    string           `json:"loan_id"`
	AccountID                 string           `json:"account_id,omitempty"`
	PaymentDate               time.Time        `json:"payment_date"`
	Total                     decimal.Decimal  `json:"total_amount"`
	Principal                 *decimal.Decimal `json:"principal_amount,omitempty"`
	Interest                  *decimal.Decimal `json:"interest_amount,omitempty"`
	Notes                     string           `json:"notes,omitempty"`
	PeriodsPerYearForInterest int              `json:"periods_per_year_for_interest,omitempty"`
}

// UpdatePaymentRequest carries amendments to a recorded payment. Split
// semantics match RecordPaymentRequest.
type UpdatePaymentRequest struct {
	TenantID                  string           `json:"tenant_id"`
	PaymentID                 string           `json:"payment_id"`
	PaymentDate               time.Time        `json:"payment_date"`
	Total                     decimal.Decimal  `json:"total_amount"`
	Principal                 *decimal.Decimal `json:"principal_amount,omitempty"`
	Interest                  *decimal.Decimal `json:"interest_amount,omitempty"`
	Notes                     string           `json:"notes,omitempty"`
	PeriodsPerYearForInterest int              `json:"periods_per_year_for_interest,omitempty"`
}

// DeletePaymentRequest identifies a payment to remove.
type DeletePaymentRequest struct {
	TenantID  string `json:"tenant_id"`
	PaymentID string `json:"payment_id"`
}

// GetLoanRequest identifies a loan to retrieve.
type GetLoanRequest struct {
	TenantID string `json:"tenant_id"`
	LoanID   string `json:"loan_id"`
}

// ListLoansRequest identifies a tenant whose loans to list.
type ListLoansRequest struct {
	TenantID string `json:"tenant_id"`
}

// GetScheduleRequest identifies a loan whose projected schedule to generate.
type GetScheduleRequest struct {
	TenantID string `json:"tenant_id"`
	LoanID   string `json:"loan_id"`
}

// SuggestPaymentRequest identifies a loan to propose the next payment for.
type SuggestPaymentRequest struct {
	TenantID                  string `json:"tenant_id"`
	LoanID                    string `json:"loan_id"`
	PeriodsPerYearForInterest int    `json:"periods_per_year_for_interest,omitempty"`
}

// ---------------------------------------------------------------------------
// Response DTOs
// ---------------------------------------------------------------------------

// PaymentResponse is the external representation of a recorded payment,
// including its projector-derived running balance.
type PaymentResponse struct {
	ID           string          `json:"id"`
	LoanID       string          `json:"loan_id"`
	AccountID    string          `json:"account_id"`
	PaymentDate  time.Time       `json:"payment_date"`
	Total        decimal.Decimal `json:"total_amount"`
	Principal    decimal.Decimal `json:"principal_amount"`
	Interest     decimal.Decimal `json:"interest_amount"`
	Notes        string          `json:"notes,omitempty"`
	BalanceAfter decimal.Decimal `json:"balance_after"`
}

// LoanResponse is the external representation of a loan. Balance, totals
// and status are always derived from the payment history at read time.
type LoanResponse struct {
	ID                 string            `json:"id"`
	TenantID           string            `json:"tenant_id"`
	CashAccountID      string            `json:"cash_account_id"`
	Name               string            `json:"name"`
	Kind               string            `json:"kind"`
	Principal          decimal.Decimal   `json:"principal"`
	Currency           string            `json:"currency"`
	AnnualRate         decimal.Decimal   `json:"annual_rate"`
	TermMonths         int               `json:"term_months"`
	Frequency          string            `json:"payment_frequency,omitempty"`
	StartDate          time.Time         `json:"start_date"`
	SuggestedPayment   decimal.Decimal   `json:"suggested_payment"`
	Status             string            `json:"status"`
	RemainingBalance   decimal.Decimal   `json:"remaining_balance"`
	TotalPrincipalPaid decimal.Decimal   `json:"total_principal_paid"`
	TotalInterestPaid  decimal.Decimal   `json:"total_interest_paid"`
	Payments           []PaymentResponse `json:"payments,omitempty"`
	CreatedAt          time.Time         `json:"created_at"`
	UpdatedAt          time.Time         `json:"updated_at"`
}

// ScheduleEntryResponse represents a single projected schedule entry.
type ScheduleEntryResponse struct {
	Period           int             `json:"period"`
	DueDate          time.Time       `json:"due_date"`
	Payment          decimal.Decimal `json:"payment_amount"`
	Principal        decimal.Decimal `json:"principal_amount"`
	Interest         decimal.Decimal `json:"interest_amount"`
	RemainingBalance decimal.Decimal `json:"remaining_balance_after"`
}

// ScheduleResponse is the full projected amortization schedule of a loan.
type ScheduleResponse struct {
	LoanID  string                  `json:"loan_id"`
	Entries []ScheduleEntryResponse `json:"entries"`
}

// PaymentSuggestionResponse is the proposed next payment for a loan.
type PaymentSuggestionResponse struct {
	LoanID           string          `json:"loan_id"`
	Total            decimal.Decimal `json:"total_amount"`
	Principal        decimal.Decimal `json:"principal_amount"`
	Interest         decimal.Decimal `json:"interest_amount"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
	PaidOff          bool            `json:"paid_off"`
}
