package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestBudget_IsWithinBudget(t *testing.T) {
	tests := []struct {
		name   string
		budget Budget
		want   bool
	}{
		{
			name:   "Gastos abaixo dos budgets",
			budget: Budget{DailyBudget: dec("100.00"), MonthlyBudget: dec("1000.00"), DailySpend: dec("50.00"), MonthlySpend: dec("500.00")},
			want:   true,
		},
		{
			name:   "Gasto igual ao budget ainda está dentro do limite",
			budget: Budget{DailyBudget: dec("100.00"), MonthlyBudget: dec("1000.00"), DailySpend: dec("100.00"), MonthlySpend: dec("1000.00")},
			want:   true,
		},
		{
			name:   "Gasto diário acima do budget",
			budget: Budget{DailyBudget: dec("100.00"), MonthlyBudget: dec("1000.00"), DailySpend: dec("100.01"), MonthlySpend: dec("500.00")},
			want:   false,
		},
		{
			name:   "Gasto mensal acima do budget",
			budget: Budget{DailyBudget: dec("100.00"), MonthlyBudget: dec("1000.00"), DailySpend: dec("10.00"), MonthlySpend: dec("1000.01")},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.budget.IsWithinBudget())
		})
	}
}

func TestBudget_AddSpend(t *testing.T) {
	b := Budget{DailyBudget: dec("100.00"), MonthlyBudget: dec("1000.00"), DailySpend: dec("95.00"), MonthlySpend: dec("200.00")}

	updated, err := b.AddSpend(dec("10.00"))
	require.NoError(t, err)
	assert.True(t, updated.DailySpend.Equal(dec("105.00")))
	assert.True(t, updated.MonthlySpend.Equal(dec("210.00")))
	assert.False(t, updated.IsWithinBudget())
	assert.Equal(t, []SpendPeriod{SpendPeriodDaily}, updated.Breaches())

	// o snapshot original não é alterado
	assert.True(t, b.DailySpend.Equal(dec("95.00")))
}

func TestBudget_AddSpend_InvalidAmount(t *testing.T) {
	b := Budget{DailyBudget: dec("100.00"), MonthlyBudget: dec("1000.00"), DailySpend: dec("0"), MonthlySpend: dec("0")}

	for _, amount := range []string{"0", "-1.00", "0.001", "10.555"} {
		t.Run(amount, func(t *testing.T) {
			updated, err := b.AddSpend(dec(amount))
			assert.ErrorIs(t, err, ErrInvalidAmount)
			assert.True(t, updated.DailySpend.IsZero())
			assert.True(t, updated.MonthlySpend.IsZero())
		})
	}
}

func TestBudget_Reset(t *testing.T) {
	b := Budget{DailyBudget: dec("100.00"), MonthlyBudget: dec("1000.00"), DailySpend: dec("150.00"), MonthlySpend: dec("1500.00")}

	daily := b.ResetDaily()
	assert.True(t, daily.DailySpend.IsZero())
	assert.True(t, daily.MonthlySpend.Equal(dec("1500.00")))
	assert.False(t, daily.IsWithinBudget())

	monthly := b.ResetMonthly()
	assert.True(t, monthly.MonthlySpend.IsZero())
	assert.True(t, monthly.DailySpend.Equal(dec("150.00")))
}

func TestBudget_Validate(t *testing.T) {
	valid := Budget{DailyBudget: dec("1.00"), MonthlyBudget: dec("1.00"), DailySpend: dec("0"), MonthlySpend: dec("0")}
	assert.NoError(t, valid.Validate())

	negative := valid
	negative.MonthlySpend = dec("-0.01")
	assert.ErrorIs(t, negative.Validate(), ErrInvariantViolation)

	zeroBudget := valid
	zeroBudget.DailyBudget = decimal.Zero
	assert.ErrorIs(t, zeroBudget.Validate(), ErrInvariantViolation)
	assert.ErrorIs(t, zeroBudget.ValidateLimits(), ErrInvalidBudget)
}
