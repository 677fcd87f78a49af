package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/finbooks/loan-service/internal/application/dto"
	"github.com/finbooks/loan-service/internal/domain/model"
	"github.com/finbooks/loan-service/internal/domain/port"
	"github.com/finbooks/loan-service/internal/domain/valueobject"
)

// CreateLoanUseCase creates a loan and posts the disbursement cash movement:
// a payable loan increases the linked cash account, a receivable loan
// decreases it (and is funds-checked first).
type CreateLoanUseCase struct {
	loanRepo  port.LoanRepository
	ledger    port.CashLedger
	publisher port.EventPublisher
}

// NewCreateLoanUseCase wires dependencies.
func NewCreateLoanUseCase(
	loanRepo port.LoanRepository,
	ledger port.CashLedger,
	publisher port.EventPublisher,
) *CreateLoanUseCase {
	return &CreateLoanUseCase{
		loanRepo:  loanRepo,
		ledger:    ledger,
		publisher: publisher,
	}
}

// Execute validates the loan terms, disburses the principal and persists
// the loan.
func (uc *CreateLoanUseCase) Execute(
	ctx context.Context,
	req dto.CreateLoanRequest,
) (dto.LoanResponse, error) {
	now := time.Now().UTC()

	kind, err := valueobject.NewLoanKind(req.Kind)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("parse kind: %w", err)
	}
	frequency, err := valueobject.NewPaymentFrequency(req.Frequency)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("parse frequency: %w", err)
	}

	// 1. Build the aggregate (validates terms, computes the suggested payment).
	loan, err := model.NewLoan(
		req.TenantID, req.CashAccountID, req.Name,
		kind, req.Principal, req.Currency,
		req.AnnualRate, req.TermMonths, frequency,
		req.StartDate, now,
	)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("create loan: %w", err)
	}

	// 2. Funds check when the disbursement takes cash out (money lent).
	delta := kind.DisbursementCashDelta(loan.Principal())
	if delta.IsNegative() {
		check, err := uc.ledger.CheckFunds(ctx, req.TenantID, req.CashAccountID, delta.Neg())
		if err != nil {
			return dto.LoanResponse{}, fmt.Errorf("check funds: %w", err)
		}
		if !check.HasFunds {
			return dto.LoanResponse{}, fmt.Errorf("disburse loan: %w", model.ErrInsufficientFunds)
		}
	}

	// 3. Persist the loan.
	if err := uc.loanRepo.Save(ctx, loan); err != nil {
		return dto.LoanResponse{}, fmt.Errorf("save loan: %w", err)
	}

	// 4. Post the disbursement to the cash ledger.
	if err := uc.ledger.PostTransaction(
		ctx, req.TenantID, req.CashAccountID, delta, req.StartDate,
		fmt.Sprintf("loan disbursement: %s", loan.Name()),
	); err != nil {
		return dto.LoanResponse{}, fmt.Errorf("post disbursement: %w", err)
	}

	// 5. Publish domain events.
	if err := uc.publisher.Publish(ctx, loan.DomainEvents()...); err != nil {
		return dto.LoanResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toLoanResponse(loan, nil), nil
}
