package domain

// CampaignFailure registra o erro de uma campanha dentro de uma varredura
type CampaignFailure struct {
	CampaignID   string `json:"campaign_id"`
	CampaignName string `json:"campaign_name"`
	Error        string `json:"error"`
}

type JobFailures struct {
	FailedCount int               `json:"failed_count"`
	Failures    []CampaignFailure `json:"failures,omitempty"`
}

func (f *JobFailures) Add(c *Campaign, err error) {
	f.FailedCount++
	f.Failures = append(f.Failures, CampaignFailure{
		CampaignID:   c.ID,
		CampaignName: c.Name,
		Error:        err.Error(),
	})
}

type BudgetCheckSummary struct {
	CheckedCount int `json:"checked_count"`
	PausedCount  int `json:"paused_count"`
	JobFailures
}

type ResetSummary struct {
	Period           SpendPeriod `json:"period"`
	ResetCount       int         `json:"reset_count"`
	ReactivatedCount int         `json:"reactivated_count"`
	JobFailures
}

type DaypartingSummary struct {
	EnabledCount  int `json:"enabled_count"`
	DisabledCount int `json:"disabled_count"`
	JobFailures
}

type ActivationSummary struct {
	ActivatedCount int `json:"activated_count"`
	JobFailures
}
