package scheduler

import (
	"context"

	"github.com/vfg2006/campaign-control-api/internal/config"
	"github.com/vfg2006/campaign-control-api/internal/usecases/reconciling"
)

const (
	JobCheckCampaignBudgets      = "check-campaign-budgets"
	JobEnforceDayparting         = "enforce-dayparting"
	JobResetDailySpends          = "reset-daily-spends"
	JobResetMonthlySpends        = "reset-monthly-spends"
	JobActivateEligibleCampaigns = "activate-eligible-campaigns"
)

// Jobs agrupa os serviços agendados indexados pelo nome usado na API
type Jobs map[string]*ReconciliationJobService

func NewJobs(reconciler reconciling.Reconciler, cfg *config.Config) Jobs {
	location := cfg.App.Location

	return Jobs{
		JobCheckCampaignBudgets: NewReconciliationJobService(
			ReconciliationJobConfig{
				Name:         JobCheckCampaignBudgets,
				CronSchedule: cfg.BudgetCheck.CronSchedule,
				SyncEnabled:  cfg.BudgetCheck.Enabled,
			},
			location,
			func(ctx context.Context) (any, error) { return reconciler.CheckCampaignBudgets(ctx) },
		),
		JobEnforceDayparting: NewReconciliationJobService(
			ReconciliationJobConfig{
				Name:         JobEnforceDayparting,
				CronSchedule: cfg.Dayparting.CronSchedule,
				SyncEnabled:  cfg.Dayparting.Enabled,
			},
			location,
			func(ctx context.Context) (any, error) { return reconciler.EnforceDayparting(ctx) },
		),
		JobResetDailySpends: NewReconciliationJobService(
			ReconciliationJobConfig{
				Name:         JobResetDailySpends,
				CronSchedule: cfg.DailyReset.CronSchedule,
				SyncEnabled:  cfg.DailyReset.Enabled,
			},
			location,
			func(ctx context.Context) (any, error) { return reconciler.ResetDailySpends(ctx) },
		),
		JobResetMonthlySpends: NewReconciliationJobService(
			ReconciliationJobConfig{
				Name:         JobResetMonthlySpends,
				CronSchedule: cfg.MonthlyReset.CronSchedule,
				SyncEnabled:  cfg.MonthlyReset.Enabled,
			},
			location,
			func(ctx context.Context) (any, error) { return reconciler.ResetMonthlySpends(ctx) },
		),
		JobActivateEligibleCampaigns: NewReconciliationJobService(
			ReconciliationJobConfig{
				Name:         JobActivateEligibleCampaigns,
				CronSchedule: cfg.ActivationSweep.CronSchedule,
				SyncEnabled:  cfg.ActivationSweep.Enabled,
			},
			location,
			func(ctx context.Context) (any, error) { return reconciler.ActivateEligibleCampaigns(ctx) },
		),
	}
}

// Start agenda todos os jobs habilitados
func (j Jobs) Start(ctx context.Context) error {
	for _, job := range j {
		if err := job.Start(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (j Jobs) Status() map[string]any {
	status := make(map[string]any, len(j))
	for name, job := range j {
		status[name] = job.GetStatus()
	}
	return status
}
