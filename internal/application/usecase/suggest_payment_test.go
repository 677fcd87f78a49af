package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finbooks/loan-service/internal/application/dto"
	"github.com/finbooks/loan-service/internal/application/usecase"
	"github.com/finbooks/loan-service/internal/domain/model"
)

func TestSuggestPayment(t *testing.T) {
	loan := activeTestLoan(t)

	loanRepo := &mockLoanRepository{
		findByIDFunc: func(_ context.Context, _, _ string) (model.Loan, error) {
			return loan, nil
		},
	}

	t.Run("fresh loan gets the periodic payment", func(t *testing.T) {
		uc := usecase.NewSuggestPaymentUseCase(loanRepo, &mockPaymentRepository{})

		resp, err := uc.Execute(context.Background(), dto.SuggestPaymentRequest{
			TenantID: loan.TenantID(),
			LoanID:   loan.ID(),
		})
		require.NoError(t, err)

		assert.Equal(t, loan.ID(), resp.LoanID)
		assert.Equal(t, "443.21", resp.Total.String())
		assert.Equal(t, "50", resp.Interest.String())
		assert.Equal(t, "393.21", resp.Principal.String())
		assert.Equal(t, "10000", resp.RemainingBalance.String())
		assert.False(t, resp.PaidOff)
	})

	t.Run("paid-off loan gets a zero suggestion", func(t *testing.T) {
		paymentRepo := &mockPaymentRepository{
			listByLoanFunc: func(_ context.Context, _, _ string) ([]model.LoanPayment, error) {
				return []model.LoanPayment{
					historyPayment(t, loan, time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC), 10000, 50),
				}, nil
			},
		}
		uc := usecase.NewSuggestPaymentUseCase(loanRepo, paymentRepo)

		resp, err := uc.Execute(context.Background(), dto.SuggestPaymentRequest{
			TenantID: loan.TenantID(),
			LoanID:   loan.ID(),
		})
		require.NoError(t, err)
		assert.True(t, resp.PaidOff)
		assert.True(t, resp.Total.IsZero())
	})

	t.Run("near payoff the suggestion retires the loan", func(t *testing.T) {
		paymentRepo := &mockPaymentRepository{
			listByLoanFunc: func(_ context.Context, _, _ string) ([]model.LoanPayment, error) {
				return []model.LoanPayment{
					historyPayment(t, loan, time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC), 9900, 50),
				}, nil
			},
		}
		uc := usecase.NewSuggestPaymentUseCase(loanRepo, paymentRepo)

		resp, err := uc.Execute(context.Background(), dto.SuggestPaymentRequest{
			TenantID: loan.TenantID(),
			LoanID:   loan.ID(),
		})
		require.NoError(t, err)
		assert.Equal(t, "100.5", resp.Total.String())
		assert.Equal(t, "100", resp.RemainingBalance.String())
	})
}

func TestSuggestPayment_NotFound(t *testing.T) {
	uc := usecase.NewSuggestPaymentUseCase(&mockLoanRepository{}, &mockPaymentRepository{})

	_, err := uc.Execute(context.Background(), dto.SuggestPaymentRequest{
		TenantID: "tenant-1",
		LoanID:   "missing",
	})
	assert.ErrorIs(t, err, model.ErrNotFound)
}
