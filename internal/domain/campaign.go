package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Campaign struct {
	ID            string          `json:"id"`
	BrandID       string          `json:"brand_id"`
	Name          string          `json:"name"`
	Status        CampaignStatus  `json:"status"`
	DailyBudget   decimal.Decimal `json:"daily_budget"`
	MonthlyBudget decimal.Decimal `json:"monthly_budget"`
	DailySpend    decimal.Decimal `json:"daily_spend"`
	MonthlySpend  decimal.Decimal `json:"monthly_spend"`
	StartDate     time.Time       `json:"start_date"`
	EndDate       *time.Time      `json:"end_date"`
	Schedules     ScheduleSet     `json:"schedules,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// CampaignMutation decide, sobre a versão travada da campanha, se algo mudou.
// Só mudanças reportadas são gravadas.
type CampaignMutation func(c *Campaign) (changed bool, err error)

type CreateCampaignRequest struct {
	BrandID       string          `json:"brand_id"`
	Name          string          `json:"name"`
	DailyBudget   decimal.Decimal `json:"daily_budget"`
	MonthlyBudget decimal.Decimal `json:"monthly_budget"`
	StartDate     string          `json:"start_date"`
	EndDate       *string         `json:"end_date,omitempty"`
}

func (c *Campaign) Budget() Budget {
	return Budget{
		DailyBudget:   c.DailyBudget,
		MonthlyBudget: c.MonthlyBudget,
		DailySpend:    c.DailySpend,
		MonthlySpend:  c.MonthlySpend,
	}
}

func (c *Campaign) applyBudget(b Budget) {
	c.DailySpend = b.DailySpend
	c.MonthlySpend = b.MonthlySpend
}

func (c *Campaign) IsWithinBudget() bool {
	return c.Budget().IsWithinBudget()
}

func (c *Campaign) transitionContext(today time.Time) TransitionContext {
	return TransitionContext{
		Today:     today,
		StartDate: c.StartDate,
		EndDate:   c.EndDate,
		Budget:    c.Budget(),
	}
}

func (c *Campaign) fire(event CampaignEvent, today time.Time) bool {
	next, ok := Transition(c.Status, event, c.transitionContext(today))
	if !ok {
		return false
	}
	c.Status = next
	return true
}

// CanBeActivated vale para campanhas Draft ou Paused dentro do período e do budget
func (c *Campaign) CanBeActivated(today time.Time) bool {
	_, ok := Transition(c.Status, CampaignEventActivate, c.transitionContext(today))
	return ok
}

func (c *Campaign) Activate(today time.Time) bool {
	return c.fire(CampaignEventActivate, today)
}

// Pause não é erro para campanhas que não estão ativas
func (c *Campaign) Pause() bool {
	return c.fire(CampaignEventPause, time.Time{})
}

func (c *Campaign) Complete() bool {
	return c.fire(CampaignEventComplete, time.Time{})
}

// AddSpend acumula o gasto e pausa a campanha ativa que estourar o budget
func (c *Campaign) AddSpend(amount decimal.Decimal) (paused bool, err error) {
	b, err := c.Budget().AddSpend(amount)
	if err != nil {
		return false, err
	}
	c.applyBudget(b)

	if !b.IsWithinBudget() {
		return c.Pause(), nil
	}
	return false, nil
}

func (c *Campaign) ResetSpend(period SpendPeriod) {
	c.applyBudget(c.Budget().Reset(period))
}

// Validate checa os invariantes de um registro lido do storage
func (c *Campaign) Validate() error {
	if !c.Status.IsValid() {
		return invariantError("campaign %s has unknown status %q", c.ID, c.Status)
	}
	return c.Budget().Validate()
}

// ValidateForCreation aplica as regras de criação
func (c *Campaign) ValidateForCreation() error {
	if err := c.Budget().ValidateLimits(); err != nil {
		return err
	}
	if c.EndDate != nil && DateOnly(*c.EndDate).Before(DateOnly(c.StartDate)) {
		return ErrInvalidDateRange
	}
	return nil
}
