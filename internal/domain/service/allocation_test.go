package service_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finbooks/loan-service/internal/domain/model"
	"github.com/finbooks/loan-service/internal/domain/service"
)

func TestAllocatePayment(t *testing.T) {
	t.Run("interest first then principal", func(t *testing.T) {
		// 10000 at 6% monthly accrues 50.00 per period.
		split, err := service.AllocatePayment(
			decimal.NewFromInt(10000),
			decimal.NewFromFloat(0.06),
			decimal.NewFromInt(500),
			12,
		)
		require.NoError(t, err)
		assert.Equal(t, "50", split.Interest.String())
		assert.Equal(t, "450", split.Principal.String())
	})

	t.Run("interest capped at payment total", func(t *testing.T) {
		split, err := service.AllocatePayment(
			decimal.NewFromInt(10000),
			decimal.NewFromFloat(0.06),
			decimal.NewFromInt(30),
			12,
		)
		require.NoError(t, err)
		assert.True(t, split.Interest.Equal(decimal.NewFromInt(30)))
		assert.True(t, split.Principal.IsZero())
	})

	t.Run("zero rate goes entirely to principal", func(t *testing.T) {
		split, err := service.AllocatePayment(
			decimal.NewFromInt(5000),
			decimal.Zero,
			decimal.NewFromInt(200),
			12,
		)
		require.NoError(t, err)
		assert.True(t, split.Interest.IsZero())
		assert.True(t, split.Principal.Equal(decimal.NewFromInt(200)))
	})

	t.Run("negative balance accrues no interest", func(t *testing.T) {
		split, err := service.AllocatePayment(
			decimal.NewFromInt(-250),
			decimal.NewFromFloat(0.06),
			decimal.NewFromInt(100),
			12,
		)
		require.NoError(t, err)
		assert.True(t, split.Interest.IsZero())
		assert.True(t, split.Principal.Equal(decimal.NewFromInt(100)))
	})

	t.Run("non-positive periods falls back to monthly accrual", func(t *testing.T) {
		withDefault, err := service.AllocatePayment(
			decimal.NewFromInt(10000),
			decimal.NewFromFloat(0.06),
			decimal.NewFromInt(500),
			0,
		)
		require.NoError(t, err)

		monthly, err := service.AllocatePayment(
			decimal.NewFromInt(10000),
			decimal.NewFromFloat(0.06),
			decimal.NewFromInt(500),
			service.DefaultPeriodsPerYear,
		)
		require.NoError(t, err)
		assert.True(t, withDefault.Interest.Equal(monthly.Interest))
		assert.True(t, withDefault.Principal.Equal(monthly.Principal))
	})

	t.Run("split always sums to the total", func(t *testing.T) {
		total := decimal.NewFromFloat(123.45)
		split, err := service.AllocatePayment(
			decimal.NewFromFloat(9876.54),
			decimal.NewFromFloat(0.0725),
			total,
			26,
		)
		require.NoError(t, err)
		assert.True(t, split.Principal.Add(split.Interest).Equal(total))
	})

	t.Run("rejects non-positive total", func(t *testing.T) {
		_, err := service.AllocatePayment(
			decimal.NewFromInt(10000), decimal.NewFromFloat(0.06), decimal.Zero, 12,
		)
		assert.ErrorIs(t, err, model.ErrInvalidPayment)

		_, err = service.AllocatePayment(
			decimal.NewFromInt(10000), decimal.NewFromFloat(0.06), decimal.NewFromInt(-5), 12,
		)
		assert.ErrorIs(t, err, model.ErrInvalidPayment)
	})

	t.Run("rejects rate outside [0,1]", func(t *testing.T) {
		_, err := service.AllocatePayment(
			decimal.NewFromInt(10000), decimal.NewFromFloat(-0.01), decimal.NewFromInt(100), 12,
		)
		assert.ErrorIs(t, err, model.ErrInvalidRate)

		_, err = service.AllocatePayment(
			decimal.NewFromInt(10000), decimal.NewFromFloat(1.5), decimal.NewFromInt(100), 12,
		)
		assert.ErrorIs(t, err, model.ErrInvalidRate)
	})
}
