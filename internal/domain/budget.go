package domain

import "github.com/shopspring/decimal"

// CurrencyPlaces é a precisão monetária de budgets, gastos e lançamentos
const CurrencyPlaces = 2

type SpendPeriod string

const (
	SpendPeriodDaily   SpendPeriod = "daily"
	SpendPeriodMonthly SpendPeriod = "monthly"
)

// Budget é o snapshot de limites e gastos de uma campanha.
// Todas as operações retornam um novo valor; quem persiste é o repositório.
type Budget struct {
	DailyBudget   decimal.Decimal `json:"daily_budget"`
	MonthlyBudget decimal.Decimal `json:"monthly_budget"`
	DailySpend    decimal.Decimal `json:"daily_spend"`
	MonthlySpend  decimal.Decimal `json:"monthly_spend"`
}

// IsWithinBudget considera o próprio valor do budget como dentro do limite
func (b Budget) IsWithinBudget() bool {
	return b.DailySpend.LessThanOrEqual(b.DailyBudget) &&
		b.MonthlySpend.LessThanOrEqual(b.MonthlyBudget)
}

// Breaches lista os períodos cujo gasto ultrapassou o budget
func (b Budget) Breaches() []SpendPeriod {
	breaches := make([]SpendPeriod, 0, 2)
	if b.DailySpend.GreaterThan(b.DailyBudget) {
		breaches = append(breaches, SpendPeriodDaily)
	}
	if b.MonthlySpend.GreaterThan(b.MonthlyBudget) {
		breaches = append(breaches, SpendPeriodMonthly)
	}
	return breaches
}

func (b Budget) AddSpend(amount decimal.Decimal) (Budget, error) {
	if err := ValidateAmount(amount); err != nil {
		return b, err
	}

	b.DailySpend = b.DailySpend.Add(amount)
	b.MonthlySpend = b.MonthlySpend.Add(amount)
	return b, nil
}

func (b Budget) Reset(period SpendPeriod) Budget {
	switch period {
	case SpendPeriodDaily:
		b.DailySpend = decimal.Zero
	case SpendPeriodMonthly:
		b.MonthlySpend = decimal.Zero
	}
	return b
}

func (b Budget) ResetDaily() Budget {
	return b.Reset(SpendPeriodDaily)
}

func (b Budget) ResetMonthly() Budget {
	return b.Reset(SpendPeriodMonthly)
}

// ValidateLimits é aplicada na criação da campanha
func (b Budget) ValidateLimits() error {
	if !b.DailyBudget.IsPositive() || !b.MonthlyBudget.IsPositive() {
		return ErrInvalidBudget
	}
	if !isQuantized(b.DailyBudget) || !isQuantized(b.MonthlyBudget) {
		return ErrInvalidBudget
	}
	return nil
}

// Validate verifica os invariantes de um snapshot lido do storage
func (b Budget) Validate() error {
	if b.DailySpend.IsNegative() {
		return invariantError("daily spend is negative (%s)", b.DailySpend.StringFixed(CurrencyPlaces))
	}
	if b.MonthlySpend.IsNegative() {
		return invariantError("monthly spend is negative (%s)", b.MonthlySpend.StringFixed(CurrencyPlaces))
	}
	if !b.DailyBudget.IsPositive() || !b.MonthlyBudget.IsPositive() {
		return invariantError("budget is not positive (daily %s, monthly %s)",
			b.DailyBudget.StringFixed(CurrencyPlaces), b.MonthlyBudget.StringFixed(CurrencyPlaces))
	}
	return nil
}

// ValidateAmount rejeita valores não positivos e valores com mais de duas casas decimais
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() || !isQuantized(amount) {
		return ErrInvalidAmount
	}
	return nil
}

func isQuantized(d decimal.Decimal) bool {
	return d.Equal(d.Truncate(CurrencyPlaces))
}
