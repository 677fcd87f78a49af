package port

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finbooks/loan-service/internal/domain/event"
	"github.com/finbooks/loan-service/internal/domain/model"
)

// ---------------------------------------------------------------------------
// Repository ports (driven/secondary adapters)
// ---------------------------------------------------------------------------

// LoanRepository persists and retrieves loans.
type LoanRepository interface {
	Save(ctx context.Context, loan model.Loan) error
	FindByID(ctx context.Context, tenantID, id string) (model.Loan, error)
	FindByTenant(ctx context.Context, tenantID string) ([]model.Loan, error)
}

// PaymentRepository persists and retrieves loan payments. ListByLoan makes
// no ordering promise; the balance projector re-sorts the history itself.
type PaymentRepository interface {
	Save(ctx context.Context, payment model.LoanPayment) error
	FindByID(ctx context.Context, tenantID, id string) (model.LoanPayment, error)
	ListByLoan(ctx context.Context, tenantID, loanID string) ([]model.LoanPayment, error)
	Delete(ctx context.Context, tenantID, id string) error
}

// ---------------------------------------------------------------------------
// Cash ledger port
// ---------------------------------------------------------------------------

// FundsCheck reports whether a cash account can cover an outgoing amount.
// For credit accounts the available figure includes the credit limit.
type FundsCheck struct {
	HasFunds  bool
	Available decimal.Decimal
}

// CashLedger posts offsetting double-entry cash movements when a loan is
// disbursed or paid. Implemented by the transaction/account ledger, outside
// this core; errors (including model.ErrInsufficientFunds) are surfaced
// unchanged.
type CashLedger interface {
	CheckFunds(ctx context.Context, tenantID, accountID string, amount decimal.Decimal) (FundsCheck, error)
	PostTransaction(ctx context.Context, tenantID, accountID string, amount decimal.Decimal, date time.Time, description string) error
}

// ---------------------------------------------------------------------------
// Event publisher port
// ---------------------------------------------------------------------------

// EventPublisher publishes domain events to external consumers.
type EventPublisher interface {
	Publish(ctx context.Context, events ...event.DomainEvent) error
}
