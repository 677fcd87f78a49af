package usecase

import (
	"context"
	"fmt"

	"github.com/finbooks/loan-service/internal/application/dto"
	"github.com/finbooks/loan-service/internal/domain/port"
)

// GetScheduleUseCase generates the full projected amortization schedule for
// a loan. The schedule is derived from the loan terms on every call and
// never persisted.
type GetScheduleUseCase struct {
	loanRepo port.LoanRepository
}

// NewGetScheduleUseCase wires dependencies.
func NewGetScheduleUseCase(loanRepo port.LoanRepository) *GetScheduleUseCase {
	return &GetScheduleUseCase{loanRepo: loanRepo}
}

// Execute returns the projected schedule, or model.ErrNoPaymentFrequency
// for a lump-balance loan.
func (uc *GetScheduleUseCase) Execute(
	ctx context.Context,
	req dto.GetScheduleRequest,
) (dto.ScheduleResponse, error) {
	loan, err := uc.loanRepo.FindByID(ctx, req.TenantID, req.LoanID)
	if err != nil {
		return dto.ScheduleResponse{}, fmt.Errorf("find loan: %w", err)
	}

	schedule, err := loan.Schedule()
	if err != nil {
		return dto.ScheduleResponse{}, fmt.Errorf("generate schedule: %w", err)
	}

	entries := make([]dto.ScheduleEntryResponse, len(schedule))
	for i, e := range schedule {
		entries[i] = dto.ScheduleEntryResponse{
			Period:           e.Period,
			DueDate:          e.DueDate,
			Payment:          e.Payment,
			Principal:        e.Principal,
			Interest:         e.Interest,
			RemainingBalance: e.RemainingBalance,
		}
	}

	return dto.ScheduleResponse{LoanID: loan.ID(), Entries: entries}, nil
}
