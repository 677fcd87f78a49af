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

// UpdatePaymentUseCase amends a recorded payment. Because the balance is
// projected from the full history on read, editing a months-old payment
// needs no incremental balance maintenance; only the cash-account delta is
// posted to the ledger.
type UpdatePaymentUseCase struct {
	loanRepo    port.LoanRepository
	paymentRepo port.PaymentRepository
	ledger      port.CashLedger
	publisher   port.EventPublisher
}

// NewUpdatePaymentUseCase wires dependencies.
func NewUpdatePaymentUseCase(
	loanRepo port.LoanRepository,
	paymentRepo port.PaymentRepository,
	ledger port.CashLedger,
	publisher port.EventPublisher,
) *UpdatePaymentUseCase {
	return &UpdatePaymentUseCase{
		loanRepo:    loanRepo,
		paymentRepo: paymentRepo,
		ledger:      ledger,
		publisher:   publisher,
	}
}

// Execute applies the amendment and returns the freshly projected loan.
func (uc *UpdatePaymentUseCase) Execute(
	ctx context.Context,
	req dto.UpdatePaymentRequest,
) (dto.LoanResponse, error) {
	now := time.Now().UTC()

	// 1. Retrieve the payment, its loan and the remaining history.
	existing, err := uc.paymentRepo.FindByID(ctx, req.TenantID, req.PaymentID)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("find payment: %w", err)
	}
	loan, err := uc.loanRepo.FindByID(ctx, req.TenantID, existing.LoanID())
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("find loan: %w", err)
	}
	history, err := uc.paymentRepo.ListByLoan(ctx, req.TenantID, loan.ID())
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("list payments: %w", err)
	}

	others := history[:0:0]
	for _, p := range history {
		if p.ID() != existing.ID() {
			others = append(others, p)
		}
	}

	// 2. Re-split against the balance excluding the edited payment.
	outstanding := service.Project(loan, others).RemainingBalance
	split, err := resolveSplit(
		outstanding, loan.AnnualRate(),
		req.Total, req.Principal, req.Interest,
		req.PeriodsPerYearForInterest,
	)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("allocate payment: %w", err)
	}

	amended, err := existing.Amend(req.PaymentDate, req.Total, split.Principal, split.Interest, req.Notes, now)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("amend payment: %w", err)
	}

	// 3. Persist and post the cash delta, if the total changed.
	if err := uc.paymentRepo.Save(ctx, amended); err != nil {
		return dto.LoanResponse{}, fmt.Errorf("save payment: %w", err)
	}

	cashDelta := loan.Kind().PaymentCashDelta(amended.Total()).
		Sub(loan.Kind().PaymentCashDelta(existing.Total()))
	if !cashDelta.IsZero() {
		if err := uc.ledger.PostTransaction(
			ctx, req.TenantID, amended.AccountID(), cashDelta, amended.PaymentDate(),
			fmt.Sprintf("loan payment adjustment: %s", loan.Name()),
		); err != nil {
			return dto.LoanResponse{}, fmt.Errorf("post adjustment: %w", err)
		}
	}

	// 4. Re-project and publish.
	history = append(others, amended)
	projection := service.Project(loan, history)

	evts := []event.DomainEvent{
		event.NewPaymentUpdated(
			loan.ID(), loan.TenantID(), amended.ID(),
			amended.PaymentDate(), amended.Total(), amended.Principal(), amended.Interest(),
			projection.RemainingBalance,
		),
	}
	if projection.RemainingBalance.IsZero() {
		evts = append(evts, event.NewLoanPaidOff(
			loan.ID(), loan.TenantID(),
			projection.TotalPrincipalPaid, projection.TotalInterestPaid,
		))
	}
	if err := uc.publisher.Publish(ctx, evts...); err != nil {
		return dto.LoanResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toLoanResponseWithProjection(loan, history, projection), nil
}
