package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SpendLog é imutável: gravado uma única vez e nunca alterado ou removido
type SpendLog struct {
	ID          string          `json:"id"`
	CampaignID  string          `json:"campaign_id"`
	Amount      decimal.Decimal `json:"amount"`
	Timestamp   time.Time       `json:"timestamp"`
	Description string          `json:"description"`
}

type AddSpendRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

type SpendResultStatus string

const (
	SpendResultSuccess SpendResultStatus = "success"
	SpendResultError   SpendResultStatus = "error"
)

type SpendResult struct {
	Status         SpendResultStatus `json:"status"`
	Message        string            `json:"message"`
	CampaignID     string            `json:"campaign_id,omitempty"`
	SpendLogID     string            `json:"spend_log_id,omitempty"`
	CampaignStatus CampaignStatus    `json:"campaign_status,omitempty"`
	DailySpend     decimal.Decimal   `json:"daily_spend"`
	MonthlySpend   decimal.Decimal   `json:"monthly_spend"`
	Paused         bool              `json:"paused"`
}

type SpendReport struct {
	BrandID           *string         `json:"brand_id,omitempty"`
	TotalCampaigns    int             `json:"total_campaigns"`
	ActiveCampaigns   int             `json:"active_campaigns"`
	PausedCampaigns   int             `json:"paused_campaigns"`
	TotalDailySpend   decimal.Decimal `json:"total_daily_spend"`
	TotalMonthlySpend decimal.Decimal `json:"total_monthly_spend"`
	Brands            []*BrandSpend   `json:"brands"`
	GeneratedAt       time.Time       `json:"generated_at"`
}
