package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finbooks/loan-service/internal/application/dto"
	"github.com/finbooks/loan-service/internal/application/usecase"
	"github.com/finbooks/loan-service/internal/domain/model"
	"github.com/finbooks/loan-service/internal/domain/valueobject"
)

func TestGetSchedule(t *testing.T) {
	loan := activeTestLoan(t)
	loanRepo := &mockLoanRepository{
		findByIDFunc: func(_ context.Context, _, _ string) (model.Loan, error) {
			return loan, nil
		},
	}
	uc := usecase.NewGetScheduleUseCase(loanRepo)

	resp, err := uc.Execute(context.Background(), dto.GetScheduleRequest{
		TenantID: loan.TenantID(),
		LoanID:   loan.ID(),
	})
	require.NoError(t, err)

	assert.Equal(t, loan.ID(), resp.LoanID)
	require.Len(t, resp.Entries, 24)

	first := resp.Entries[0]
	assert.Equal(t, 1, first.Period)
	assert.Equal(t, time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC), first.DueDate)
	assert.Equal(t, "443.21", first.Payment.String())
	assert.Equal(t, "50", first.Interest.String())

	last := resp.Entries[23]
	assert.True(t, last.RemainingBalance.IsZero())

	// Principal portions across the schedule retire the loan exactly.
	total := decimal.Zero
	for _, e := range resp.Entries {
		total = total.Add(e.Principal)
	}
	assert.True(t, total.Equal(loan.Principal()))
}

func TestGetSchedule_LumpBalance(t *testing.T) {
	lump, err := model.NewLoan(
		"tenant-1", "acct-1", "Bridge note",
		valueobject.LoanKindPayable,
		decimal.NewFromInt(5000),
		"USD",
		decimal.NewFromFloat(0.12),
		6,
		valueobject.PaymentFrequency{},
		time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)

	loanRepo := &mockLoanRepository{
		findByIDFunc: func(_ context.Context, _, _ string) (model.Loan, error) {
			return lump, nil
		},
	}
	uc := usecase.NewGetScheduleUseCase(loanRepo)

	_, err = uc.Execute(context.Background(), dto.GetScheduleRequest{
		TenantID: "tenant-1",
		LoanID:   lump.ID(),
	})
	assert.ErrorIs(t, err, model.ErrNoPaymentFrequency)
}

func TestGetSchedule_NotFound(t *testing.T) {
	uc := usecase.NewGetScheduleUseCase(&mockLoanRepository{})

	_, err := uc.Execute(context.Background(), dto.GetScheduleRequest{
		TenantID: "tenant-1",
		LoanID:   "missing",
	})
	assert.ErrorIs(t, err, model.ErrNotFound)
}
