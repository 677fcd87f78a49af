package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finbooks/loan-service/internal/application/dto"
	"github.com/finbooks/loan-service/internal/domain/event"
	"github.com/finbooks/loan-service/internal/domain/model"
	"github.com/finbooks/loan-service/internal/domain/port"
	"github.com/finbooks/loan-service/internal/domain/service"
)

// RecordPaymentUseCase records a payment against a loan. The split into
// principal and interest comes from the allocation engine by default; a
// caller-supplied custom split bypasses it. The caller-facing outstanding
// balance is always re-projected from the full history, never read from a
// stored counter.
type RecordPaymentUseCase struct {
	loanRepo    port.LoanRepository
	paymentRepo port.PaymentRepository
	ledger      port.CashLedger
	publisher   port.EventPublisher
}

// NewRecordPaymentUseCase wires dependencies.
func NewRecordPaymentUseCase(
	loanRepo port.LoanRepository,
	paymentRepo port.PaymentRepository,
	ledger port.CashLedger,
	publisher port.EventPublisher,
) *RecordPaymentUseCase {
	return &RecordPaymentUseCase{
		loanRepo:    loanRepo,
		paymentRepo: paymentRepo,
		ledger:      ledger,
		publisher:   publisher,
	}
}

// Execute records the payment and posts its cash movement.
func (uc *RecordPaymentUseCase) Execute(
	ctx context.Context,
	req dto.RecordPaymentRequest,
) (dto.LoanResponse, error) {
	now := time.Now().UTC()

	// 1. Retrieve the loan and its full payment history.
	loan, err := uc.loanRepo.FindByID(ctx, req.TenantID, req.LoanID)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("find loan: %w", err)
	}
	history, err := uc.paymentRepo.ListByLoan(ctx, req.TenantID, loan.ID())
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("list payments: %w", err)
	}

	// 2. Split the payment: custom split when supplied, engine default otherwise.
	outstanding := service.Project(loan, history).RemainingBalance
	split, err := resolveSplit(
		outstanding, loan.AnnualRate(),
		req.Total, req.Principal, req.Interest,
		req.PeriodsPerYearForInterest,
	)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("allocate payment: %w", err)
	}

	accountID := req.AccountID
	if accountID == "" {
		accountID = loan.CashAccountID()
	}

	payment, err := model.NewLoanPayment(
		loan.ID(), req.TenantID, accountID,
		req.PaymentDate, req.Total, split.Principal, split.Interest,
		req.Notes, now,
	)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("build payment: %w", err)
	}

	// 3. Funds check when the payment takes cash out (repaying a debt).
	cashDelta := loan.Kind().PaymentCashDelta(payment.Total())
	if cashDelta.IsNegative() {
		check, err := uc.ledger.CheckFunds(ctx, req.TenantID, accountID, cashDelta.Neg())
		if err != nil {
			return dto.LoanResponse{}, fmt.Errorf("check funds: %w", err)
		}
		if !check.HasFunds {
			return dto.LoanResponse{}, fmt.Errorf("record payment: %w", model.ErrInsufficientFunds)
		}
	}

	// 4. Persist the payment, then post the cash movement.
	if err := uc.paymentRepo.Save(ctx, payment); err != nil {
		return dto.LoanResponse{}, fmt.Errorf("save payment: %w", err)
	}
	if err := uc.ledger.PostTransaction(
		ctx, req.TenantID, accountID, cashDelta, payment.PaymentDate(),
		fmt.Sprintf("loan payment: %s", loan.Name()),
	); err != nil {
		return dto.LoanResponse{}, fmt.Errorf("post payment: %w", err)
	}

	// 5. Re-project the balance and publish.
	history = append(history, payment)
	projection := service.Project(loan, history)

	evts := []event.DomainEvent{
		event.NewPaymentRecorded(
			loan.ID(), loan.TenantID(), payment.ID(), accountID,
			payment.PaymentDate(), payment.Total(), payment.Principal(), payment.Interest(),
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

// resolveSplit returns the caller's custom split when both portions are
// supplied, otherwise the allocation engine's default against the projected
// outstanding balance. Custom splits are accepted as-is; only the
// sum-invariant is enforced later at payment construction.
func resolveSplit(
	outstanding, annualRate, total decimal.Decimal,
	principal, interest *decimal.Decimal,
	periodsPerYear int,
) (service.PaymentSplit, error) {
	if principal != nil && interest != nil {
		if total.LessThanOrEqual(decimal.Zero) {
			return service.PaymentSplit{}, model.ErrInvalidPayment
		}
		return service.PaymentSplit{Principal: *principal, Interest: *interest}, nil
	}
	return service.AllocatePayment(outstanding, annualRate, total, periodsPerYear)
}
