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

func TestGetLoan(t *testing.T) {
	loan := activeTestLoan(t)
	feb := historyPayment(t, loan, time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC), 393.21, 50.00)
	mar := historyPayment(t, loan, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), 395.18, 48.03)

	loanRepo := &mockLoanRepository{
		findByIDFunc: func(_ context.Context, tenantID, id string) (model.Loan, error) {
			if tenantID == loan.TenantID() && id == loan.ID() {
				return loan, nil
			}
			return model.Loan{}, model.ErrNotFound
		},
	}
	paymentRepo := &mockPaymentRepository{
		listByLoanFunc: func(_ context.Context, _, _ string) ([]model.LoanPayment, error) {
			// Unordered on purpose; the projector sorts.
			return []model.LoanPayment{mar, feb}, nil
		},
	}
	uc := usecase.NewGetLoanUseCase(loanRepo, paymentRepo)

	resp, err := uc.Execute(context.Background(), dto.GetLoanRequest{
		TenantID: loan.TenantID(),
		LoanID:   loan.ID(),
	})
	require.NoError(t, err)

	assert.Equal(t, loan.ID(), resp.ID)
	assert.Equal(t, "9211.61", resp.RemainingBalance.String())
	assert.Equal(t, "788.39", resp.TotalPrincipalPaid.String())
	assert.Equal(t, "98.03", resp.TotalInterestPaid.String())

	// Payments come back in applied order with running balances.
	require.Len(t, resp.Payments, 2)
	assert.Equal(t, feb.ID(), resp.Payments[0].ID)
	assert.Equal(t, "9606.79", resp.Payments[0].BalanceAfter.String())
	assert.Equal(t, mar.ID(), resp.Payments[1].ID)
	assert.Equal(t, "9211.61", resp.Payments[1].BalanceAfter.String())
}

func TestGetLoan_NotFound(t *testing.T) {
	uc := usecase.NewGetLoanUseCase(&mockLoanRepository{}, &mockPaymentRepository{})

	_, err := uc.Execute(context.Background(), dto.GetLoanRequest{
		TenantID: "tenant-1",
		LoanID:   "missing",
	})
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestListLoans(t *testing.T) {
	first := activeTestLoan(t)
	second := activeTestLoan(t)
	payment := historyPayment(t, first, time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC), 393.21, 50.00)

	loanRepo := &mockLoanRepository{
		findByTenantFunc: func(_ context.Context, tenantID string) ([]model.Loan, error) {
			assert.Equal(t, "tenant-1", tenantID)
			return []model.Loan{first, second}, nil
		},
	}
	paymentRepo := &mockPaymentRepository{
		listByLoanFunc: func(_ context.Context, _, loanID string) ([]model.LoanPayment, error) {
			if loanID == first.ID() {
				return []model.LoanPayment{payment}, nil
			}
			return nil, nil
		},
	}
	uc := usecase.NewListLoansUseCase(loanRepo, paymentRepo)

	resp, err := uc.Execute(context.Background(), dto.ListLoansRequest{TenantID: "tenant-1"})
	require.NoError(t, err)

	require.Len(t, resp, 2)
	assert.Equal(t, "9606.79", resp[0].RemainingBalance.String())
	assert.True(t, resp[1].RemainingBalance.Equal(second.Principal()))
	assert.Empty(t, resp[1].Payments)
}

func TestListLoans_Empty(t *testing.T) {
	uc := usecase.NewListLoansUseCase(&mockLoanRepository{}, &mockPaymentRepository{})

	resp, err := uc.Execute(context.Background(), dto.ListLoansRequest{TenantID: "tenant-1"})
	require.NoError(t, err)
	assert.Empty(t, resp)
}
