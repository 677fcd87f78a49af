package usecase

import (
	"context"
	"fmt"

	"github.com/finbooks/loan-service/internal/application/dto"
	"github.com/finbooks/loan-service/internal/domain/port"
	"github.com/finbooks/loan-service/internal/domain/service"
)

// SuggestPaymentUseCase proposes the next payment for a loan by composing
// the balance projector with the allocation engine.
type SuggestPaymentUseCase struct {
	loanRepo    port.LoanRepository
	paymentRepo port.PaymentRepository
}

// NewSuggestPaymentUseCase wires dependencies.
func NewSuggestPaymentUseCase(
	loanRepo port.LoanRepository,
	paymentRepo port.PaymentRepository,
) *SuggestPaymentUseCase {
	return &SuggestPaymentUseCase{loanRepo: loanRepo, paymentRepo: paymentRepo}
}

// Execute returns the suggested next payment for the loan.
func (uc *SuggestPaymentUseCase) Execute(
	ctx context.Context,
	req dto.SuggestPaymentRequest,
) (dto.PaymentSuggestionResponse, error) {
	loan, err := uc.loanRepo.FindByID(ctx, req.TenantID, req.LoanID)
	if err != nil {
		return dto.PaymentSuggestionResponse{}, fmt.Errorf("find loan: %w", err)
	}
	payments, err := uc.paymentRepo.ListByLoan(ctx, req.TenantID, loan.ID())
	if err != nil {
		return dto.PaymentSuggestionResponse{}, fmt.Errorf("list payments: %w", err)
	}

	suggestion, err := service.SuggestNextPayment(loan, payments, req.PeriodsPerYearForInterest)
	if err != nil {
		return dto.PaymentSuggestionResponse{}, fmt.Errorf("suggest payment: %w", err)
	}

	return dto.PaymentSuggestionResponse{
		LoanID:           loan.ID(),
		Total:            suggestion.Total,
		Principal:        suggestion.Principal,
		Interest:         suggestion.Interest,
		RemainingBalance: suggestion.Remaining,
		PaidOff:          suggestion.PaidOff,
	}, nil
}
