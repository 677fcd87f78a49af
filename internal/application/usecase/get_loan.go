package usecase

import (
	"context"
	"fmt"

	"github.com/finbooks/loan-service/internal/application/dto"
	"github.com/finbooks/loan-service/internal/domain/model"
	"github.com/finbooks/loan-service/internal/domain/port"
	"github.com/finbooks/loan-service/internal/domain/service"
)

// GetLoanUseCase retrieves a loan with its projector-derived balance,
// totals and per-payment running balances.
type GetLoanUseCase struct {
	loanRepo    port.LoanRepository
	paymentRepo port.PaymentRepository
}

// NewGetLoanUseCase wires dependencies.
func NewGetLoanUseCase(loanRepo port.LoanRepository, paymentRepo port.PaymentRepository) *GetLoanUseCase {
	return &GetLoanUseCase{loanRepo: loanRepo, paymentRepo: paymentRepo}
}

// Execute returns a loan response for the given ID.
func (uc *GetLoanUseCase) Execute(
	ctx context.Context,
	req dto.GetLoanRequest,
) (dto.LoanResponse, error) {
	loan, err := uc.loanRepo.FindByID(ctx, req.TenantID, req.LoanID)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("find loan: %w", err)
	}
	payments, err := uc.paymentRepo.ListByLoan(ctx, req.TenantID, loan.ID())
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("list payments: %w", err)
	}
	return toLoanResponse(loan, payments), nil
}

// ListLoansUseCase retrieves all loans of a tenant, each with derived
// figures.
type ListLoansUseCase struct {
	loanRepo    port.LoanRepository
	paymentRepo port.PaymentRepository
}

// NewListLoansUseCase wires dependencies.
func NewListLoansUseCase(loanRepo port.LoanRepository, paymentRepo port.PaymentRepository) *ListLoansUseCase {
	return &ListLoansUseCase{loanRepo: loanRepo, paymentRepo: paymentRepo}
}

// Execute returns loan responses for every loan of the tenant.
func (uc *ListLoansUseCase) Execute(
	ctx context.Context,
	req dto.ListLoansRequest,
) ([]dto.LoanResponse, error) {
	loans, err := uc.loanRepo.FindByTenant(ctx, req.TenantID)
	if err != nil {
		return nil, fmt.Errorf("list loans: %w", err)
	}

	out := make([]dto.LoanResponse, 0, len(loans))
	for _, loan := range loans {
		payments, err := uc.paymentRepo.ListByLoan(ctx, req.TenantID, loan.ID())
		if err != nil {
			return nil, fmt.Errorf("list payments for %s: %w", loan.ID(), err)
		}
		out = append(out, toLoanResponse(loan, payments))
	}
	return out, nil
}

// toLoanResponse projects the payment history and maps the loan to its
// external representation.
func toLoanResponse(loan model.Loan, payments []model.LoanPayment) dto.LoanResponse {
	return toLoanResponseWithProjection(loan, payments, service.Project(loan, payments))
}

func toLoanResponseWithProjection(
	loan model.Loan,
	payments []model.LoanPayment,
	projection service.Projection,
) dto.LoanResponse {
	byID := make(map[string]model.LoanPayment, len(payments))
	for _, p := range payments {
		byID[p.ID()] = p
	}

	// Payments are returned in applied (date) order, each with its running
	// balance.
	responses := make([]dto.PaymentResponse, 0, len(projection.RunningBalances))
	for _, rb := range projection.RunningBalances {
		p := byID[rb.PaymentID]
		responses = append(responses, dto.PaymentResponse{
			ID:           p.ID(),
			LoanID:       p.LoanID(),
			AccountID:    p.AccountID(),
			PaymentDate:  p.PaymentDate(),
			Total:        p.Total(),
			Principal:    p.Principal(),
			Interest:     p.Interest(),
			Notes:        p.Notes(),
			BalanceAfter: rb.BalanceAfter,
		})
	}

	return dto.LoanResponse{
		ID:                 loan.ID(),
		TenantID:           loan.TenantID(),
		CashAccountID:      loan.CashAccountID(),
		Name:               loan.Name(),
		Kind:               loan.Kind().String(),
		Principal:          loan.Principal(),
		Currency:           loan.Currency(),
		AnnualRate:         loan.AnnualRate(),
		TermMonths:         loan.TermMonths(),
		Frequency:          loan.Frequency().String(),
		StartDate:          loan.StartDate(),
		SuggestedPayment:   loan.SuggestedPayment(),
		Status:             projection.Status.String(),
		RemainingBalance:   projection.RemainingBalance,
		TotalPrincipalPaid: projection.TotalPrincipalPaid,
		TotalInterestPaid:  projection.TotalInterestPaid,
		Payments:           responses,
		CreatedAt:          loan.CreatedAt(),
		UpdatedAt:          loan.UpdatedAt(),
	}
}
