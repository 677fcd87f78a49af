package valueobject_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finbooks/loan-service/internal/domain/valueobject"
)

func TestNewLoanKind(t *testing.T) {
	payable, err := valueobject.NewLoanKind("PAYABLE")
	require.NoError(t, err)
	assert.True(t, payable.Equal(valueobject.LoanKindPayable))

	receivable, err := valueobject.NewLoanKind("RECEIVABLE")
	require.NoError(t, err)
	assert.True(t, receivable.Equal(valueobject.LoanKindReceivable))

	_, err = valueobject.NewLoanKind("MORTGAGE")
	assert.Error(t, err)

	_, err = valueobject.NewLoanKind("")
	assert.Error(t, err)
	assert.True(t, valueobject.LoanKind{}.IsZero())
}

func TestLoanKindCashDeltas(t *testing.T) {
	amount := decimal.NewFromInt(5000)

	// Borrowing puts cash in; repaying takes it out.
	assert.True(t, amount.Equal(valueobject.LoanKindPayable.DisbursementCashDelta(amount)))
	assert.True(t, amount.Neg().Equal(valueobject.LoanKindPayable.PaymentCashDelta(amount)))

	// Lending takes cash out; being repaid brings it back.
	assert.True(t, amount.Neg().Equal(valueobject.LoanKindReceivable.DisbursementCashDelta(amount)))
	assert.True(t, amount.Equal(valueobject.LoanKindReceivable.PaymentCashDelta(amount)))
}

func TestStatusForBalance(t *testing.T) {
	assert.True(t, valueobject.StatusForBalance(decimal.NewFromFloat(0.01)).Equal(valueobject.LoanStatusActive))
	assert.True(t, valueobject.StatusForBalance(decimal.Zero).Equal(valueobject.LoanStatusPaidOff))
	assert.True(t, valueobject.StatusForBalance(decimal.NewFromInt(-1)).Equal(valueobject.LoanStatusPaidOff))
}

func TestNewPaymentFrequency(t *testing.T) {
	for _, raw := range []string{"WEEKLY", "BIWEEKLY", "MONTHLY", "QUARTERLY", "ANNUALLY"} {
		f, err := valueobject.NewPaymentFrequency(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, raw, f.String())
		assert.False(t, f.IsZero())
	}

	// Empty means no schedule, not an error.
	zero, err := valueobject.NewPaymentFrequency("")
	require.NoError(t, err)
	assert.True(t, zero.IsZero())
	assert.Equal(t, 0, zero.PeriodsPerYear())

	_, err = valueobject.NewPaymentFrequency("DAILY")
	assert.Error(t, err)
}

func TestPaymentFrequencyPeriodsPerYear(t *testing.T) {
	assert.Equal(t, 52, valueobject.FrequencyWeekly.PeriodsPerYear())
	assert.Equal(t, 26, valueobject.FrequencyBiweekly.PeriodsPerYear())
	assert.Equal(t, 12, valueobject.FrequencyMonthly.PeriodsPerYear())
	assert.Equal(t, 4, valueobject.FrequencyQuarterly.PeriodsPerYear())
	assert.Equal(t, 1, valueobject.FrequencyAnnually.PeriodsPerYear())
}

func TestPaymentFrequencyDueDate(t *testing.T) {
	start := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2025, 2, 7, 0, 0, 0, 0, time.UTC),
		valueobject.FrequencyWeekly.DueDate(start, 1))
	assert.Equal(t, time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC),
		valueobject.FrequencyBiweekly.DueDate(start, 2))

	// Calendar stepping: Jan 31 + 1 month normalises per time.AddDate.
	assert.Equal(t, start.AddDate(0, 1, 0), valueobject.FrequencyMonthly.DueDate(start, 1))

	mid := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC),
		valueobject.FrequencyQuarterly.DueDate(mid, 2))
	assert.Equal(t, time.Date(2028, 3, 15, 0, 0, 0, 0, time.UTC),
		valueobject.FrequencyAnnually.DueDate(mid, 3))
}
