package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/finbooks/loan-service/internal/application/dto"
	"github.com/finbooks/loan-service/internal/domain/event"
	"github.com/finbooks/loan-service/internal/domain/port"
	"github.com/finbooks/loan-service/internal/domain/service"
)

// DeletePaymentUseCase removes a recorded payment and posts the reversing
// cash movement. The loan's balance needs no bookkeeping of its own: the
// next projection simply no longer sees the payment.
type DeletePaymentUseCase struct {
	loanRepo    port.LoanRepository
	paymentRepo port.PaymentRepository
	ledger      port.CashLedger
	publisher   port.EventPublisher
}

// NewDeletePaymentUseCase wires dependencies.
func NewDeletePaymentUseCase(
	loanRepo port.LoanRepository,
	paymentRepo port.PaymentRepository,
	ledger port.CashLedger,
	publisher port.EventPublisher,
) *DeletePaymentUseCase {
	return &DeletePaymentUseCase{
		loanRepo:    loanRepo,
		paymentRepo: paymentRepo,
		ledger:      ledger,
		publisher:   publisher,
	}
}

// Execute deletes the payment and returns the freshly projected loan.
func (uc *DeletePaymentUseCase) Execute(
	ctx context.Context,
	req dto.DeletePaymentRequest,
) (dto.LoanResponse, error) {
	now := time.Now().UTC()

	// 1. Retrieve the payment and its loan.
	payment, err := uc.paymentRepo.FindByID(ctx, req.TenantID, req.PaymentID)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("find payment: %w", err)
	}
	loan, err := uc.loanRepo.FindByID(ctx, req.TenantID, payment.LoanID())
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("find loan: %w", err)
	}

	// 2. Delete, then reverse the original cash movement.
	if err := uc.paymentRepo.Delete(ctx, req.TenantID, payment.ID()); err != nil {
		return dto.LoanResponse{}, fmt.Errorf("delete payment: %w", err)
	}

	reversal := loan.Kind().PaymentCashDelta(payment.Total()).Neg()
	if err := uc.ledger.PostTransaction(
		ctx, req.TenantID, payment.AccountID(), reversal, now,
		fmt.Sprintf("loan payment reversal: %s", loan.Name()),
	); err != nil {
		return dto.LoanResponse{}, fmt.Errorf("post reversal: %w", err)
	}

	// 3. Re-project from the remaining history and publish.
	history, err := uc.paymentRepo.ListByLoan(ctx, req.TenantID, loan.ID())
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("list payments: %w", err)
	}
	projection := service.Project(loan, history)

	evt := event.NewPaymentDeleted(
		loan.ID(), loan.TenantID(), payment.ID(),
		payment.Total(), projection.RemainingBalance,
	)
	if err := uc.publisher.Publish(ctx, evt); err != nil {
		return dto.LoanResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toLoanResponseWithProjection(loan, history, projection), nil
}
