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
	"github.com/finbooks/loan-service/internal/domain/event"
	"github.com/finbooks/loan-service/internal/domain/model"
	"github.com/finbooks/loan-service/internal/domain/port"
	"github.com/finbooks/loan-service/internal/domain/valueobject"
)

// --- Mock implementations ---

type mockLoanRepository struct {
	saveFunc         func(ctx context.Context, loan model.Loan) error
	findByIDFunc     func(ctx context.Context, tenantID, id string) (model.Loan, error)
	findByTenantFunc func(ctx context.Context, tenantID string) ([]model.Loan, error)
	saved            []model.Loan
}

func (m *mockLoanRepository) Save(ctx context.Context, loan model.Loan) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, loan)
	}
	m.saved = append(m.saved, loan)
	return nil
}

func (m *mockLoanRepository) FindByID(ctx context.Context, tenantID, id string) (model.Loan, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, tenantID, id)
	}
	return model.Loan{}, model.ErrNotFound
}

func (m *mockLoanRepository) FindByTenant(ctx context.Context, tenantID string) ([]model.Loan, error) {
	if m.findByTenantFunc != nil {
		return m.findByTenantFunc(ctx, tenantID)
	}
	return nil, nil
}

type mockPaymentRepository struct {
	saveFunc       func(ctx context.Context, payment model.LoanPayment) error
	findByIDFunc   func(ctx context.Context, tenantID, id string) (model.LoanPayment, error)
	listByLoanFunc func(ctx context.Context, tenantID, loanID string) ([]model.LoanPayment, error)
	deleteFunc     func(ctx context.Context, tenantID, id string) error
	saved          []model.LoanPayment
	deletedIDs     []string
}

func (m *mockPaymentRepository) Save(ctx context.Context, payment model.LoanPayment) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, payment)
	}
	m.saved = append(m.saved, payment)
	return nil
}

func (m *mockPaymentRepository) FindByID(ctx context.Context, tenantID, id string) (model.LoanPayment, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, tenantID, id)
	}
	return model.LoanPayment{}, model.ErrNotFound
}

func (m *mockPaymentRepository) ListByLoan(ctx context.Context, tenantID, loanID string) ([]model.LoanPayment, error) {
	if m.listByLoanFunc != nil {
		return m.listByLoanFunc(ctx, tenantID, loanID)
	}
	return nil, nil
}

func (m *mockPaymentRepository) Delete(ctx context.Context, tenantID, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, tenantID, id)
	}
	m.deletedIDs = append(m.deletedIDs, id)
	return nil
}

type ledgerPosting struct {
	AccountID   string
	Amount      decimal.Decimal
	Date        time.Time
	Description string
}

type mockCashLedger struct {
	checkFundsFunc      func(ctx context.Context, tenantID, accountID string, amount decimal.Decimal) (port.FundsCheck, error)
	postTransactionFunc func(ctx context.Context, tenantID, accountID string, amount decimal.Decimal, date time.Time, description string) error
	checkedAmounts      []decimal.Decimal
	postings            []ledgerPosting
}

func (m *mockCashLedger) CheckFunds(ctx context.Context, tenantID, accountID string, amount decimal.Decimal) (port.FundsCheck, error) {
	if m.checkFundsFunc != nil {
		return m.checkFundsFunc(ctx, tenantID, accountID, amount)
	}
	m.checkedAmounts = append(m.checkedAmounts, amount)
	return port.FundsCheck{HasFunds: true, Available: decimal.NewFromInt(1000000)}, nil
}

func (m *mockCashLedger) PostTransaction(ctx context.Context, tenantID, accountID string, amount decimal.Decimal, date time.Time, description string) error {
	if m.postTransactionFunc != nil {
		return m.postTransactionFunc(ctx, tenantID, accountID, amount, date, description)
	}
	m.postings = append(m.postings, ledgerPosting{
		AccountID:   accountID,
		Amount:      amount,
		Date:        date,
		Description: description,
	})
	return nil
}

type mockEventPublisher struct {
	publishFunc func(ctx context.Context, events ...event.DomainEvent) error
	published   []event.DomainEvent
}

func (m *mockEventPublisher) Publish(ctx context.Context, evts ...event.DomainEvent) error {
	if m.publishFunc != nil {
		return m.publishFunc(ctx, evts...)
	}
	m.published = append(m.published, evts...)
	return nil
}

// --- Shared fixtures ---

func validCreateLoanRequest() dto.CreateLoanRequest {
	return dto.CreateLoanRequest{
		TenantID:      "tenant-1",
		CashAccountID: "acct-1",
		Name:          "Equipment loan",
		Kind:          "PAYABLE",
		Principal:     decimal.NewFromInt(10000),
		Currency:      "USD",
		AnnualRate:    decimal.NewFromFloat(0.06),
		TermMonths:    24,
		Frequency:     "MONTHLY",
		StartDate:     time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
	}
}

func activeTestLoan(t *testing.T) model.Loan {
	t.Helper()
	loan, err := model.NewLoan(
		"tenant-1", "acct-1", "Equipment loan",
		valueobject.LoanKindPayable,
		decimal.NewFromInt(10000),
		"USD",
		decimal.NewFromFloat(0.06),
		24,
		valueobject.FrequencyMonthly,
		time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return loan.ClearEvents()
}

func historyPayment(t *testing.T, loan model.Loan, date time.Time, principal, interest float64) model.LoanPayment {
	t.Helper()
	p := decimal.NewFromFloat(principal)
	i := decimal.NewFromFloat(interest)
	payment, err := model.NewLoanPayment(
		loan.ID(), loan.TenantID(), loan.CashAccountID(),
		date, p.Add(i), p, i, "", date,
	)
	require.NoError(t, err)
	return payment
}

// --- Tests ---

func TestCreateLoan_Payable(t *testing.T) {
	loanRepo := &mockLoanRepository{}
	ledger := &mockCashLedger{}
	publisher := &mockEventPublisher{}
	uc := usecase.NewCreateLoanUseCase(loanRepo, ledger, publisher)

	resp, err := uc.Execute(context.Background(), validCreateLoanRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "PAYABLE", resp.Kind)
	assert.Equal(t, "443.21", resp.SuggestedPayment.String())
	assert.True(t, resp.RemainingBalance.Equal(decimal.NewFromInt(10000)))
	assert.Equal(t, valueobject.LoanStatusActive.String(), resp.Status)

	require.Len(t, loanRepo.saved, 1)

	// Borrowed money lands on the cash account; no funds check is needed.
	require.Len(t, ledger.postings, 1)
	assert.Equal(t, "acct-1", ledger.postings[0].AccountID)
	assert.True(t, ledger.postings[0].Amount.Equal(decimal.NewFromInt(10000)))
	assert.Empty(t, ledger.checkedAmounts)

	require.Len(t, publisher.published, 1)
	assert.Equal(t, "loan.created", publisher.published[0].EventType())
	assert.Equal(t, resp.ID, publisher.published[0].AggregateID())
}

func TestCreateLoan_Receivable(t *testing.T) {
	t.Run("funds-checks and debits the cash account", func(t *testing.T) {
		loanRepo := &mockLoanRepository{}
		ledger := &mockCashLedger{}
		publisher := &mockEventPublisher{}
		uc := usecase.NewCreateLoanUseCase(loanRepo, ledger, publisher)

		req := validCreateLoanRequest()
		req.Kind = "RECEIVABLE"

		_, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)

		require.Len(t, ledger.checkedAmounts, 1)
		assert.True(t, ledger.checkedAmounts[0].Equal(decimal.NewFromInt(10000)))
		require.Len(t, ledger.postings, 1)
		assert.True(t, ledger.postings[0].Amount.Equal(decimal.NewFromInt(-10000)))
	})

	t.Run("rejects lending more than the account holds", func(t *testing.T) {
		ledger := &mockCashLedger{
			checkFundsFunc: func(_ context.Context, _, _ string, _ decimal.Decimal) (port.FundsCheck, error) {
				return port.FundsCheck{HasFunds: false, Available: decimal.NewFromInt(500)}, nil
			},
		}
		loanRepo := &mockLoanRepository{}
		uc := usecase.NewCreateLoanUseCase(loanRepo, ledger, &mockEventPublisher{})

		req := validCreateLoanRequest()
		req.Kind = "RECEIVABLE"

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, model.ErrInsufficientFunds)
		assert.Empty(t, loanRepo.saved)
		assert.Empty(t, ledger.postings)
	})
}

func TestCreateLoan_Validation(t *testing.T) {
	uc := usecase.NewCreateLoanUseCase(&mockLoanRepository{}, &mockCashLedger{}, &mockEventPublisher{})

	t.Run("unknown kind", func(t *testing.T) {
		req := validCreateLoanRequest()
		req.Kind = "MORTGAGE"
		_, err := uc.Execute(context.Background(), req)
		assert.Error(t, err)
	})

	t.Run("unknown frequency", func(t *testing.T) {
		req := validCreateLoanRequest()
		req.Frequency = "DAILY"
		_, err := uc.Execute(context.Background(), req)
		assert.Error(t, err)
	})

	t.Run("non-positive principal", func(t *testing.T) {
		req := validCreateLoanRequest()
		req.Principal = decimal.Zero
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, model.ErrInvalidPrincipal)
	})
}

func TestCreateLoan_CollaboratorFailures(t *testing.T) {
	t.Run("save failure surfaces and posts nothing", func(t *testing.T) {
		loanRepo := &mockLoanRepository{
			saveFunc: func(_ context.Context, _ model.Loan) error {
				return assert.AnError
			},
		}
		ledger := &mockCashLedger{}
		uc := usecase.NewCreateLoanUseCase(loanRepo, ledger, &mockEventPublisher{})

		_, err := uc.Execute(context.Background(), validCreateLoanRequest())
		assert.ErrorIs(t, err, assert.AnError)
		assert.Empty(t, ledger.postings)
	})

	t.Run("publish failure surfaces", func(t *testing.T) {
		publisher := &mockEventPublisher{
			publishFunc: func(_ context.Context, _ ...event.DomainEvent) error {
				return assert.AnError
			},
		}
		uc := usecase.NewCreateLoanUseCase(&mockLoanRepository{}, &mockCashLedger{}, publisher)

		_, err := uc.Execute(context.Background(), validCreateLoanRequest())
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestCreateLoan_LumpBalance(t *testing.T) {
	loanRepo := &mockLoanRepository{}
	uc := usecase.NewCreateLoanUseCase(loanRepo, &mockCashLedger{}, &mockEventPublisher{})

	req := validCreateLoanRequest()
	req.Frequency = ""

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, resp.SuggestedPayment.IsZero())
	assert.Empty(t, resp.Frequency)
}
