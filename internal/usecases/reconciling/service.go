// Package reconciling implementa as varreduras periódicas que reaplicam as regras de budget,
// dayparting e ativação sobre todas as campanhas.
package reconciling

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-control-api/infrastructure/repository"
	"github.com/vfg2006/campaign-control-api/internal/config"
	"github.com/vfg2006/campaign-control-api/internal/domain"
)

type Reconciler interface {
	CheckCampaignBudgets(ctx context.Context) (*domain.BudgetCheckSummary, error)
	ResetDailySpends(ctx context.Context) (*domain.ResetSummary, error)
	ResetMonthlySpends(ctx context.Context) (*domain.ResetSummary, error)
	EnforceDayparting(ctx context.Context) (*domain.DaypartingSummary, error)
	ActivateEligibleCampaigns(ctx context.Context) (*domain.ActivationSummary, error)
}

type Service struct {
	campaignRepo repository.CampaignRepository
	location     *time.Location
	now          func() time.Time
}

func NewService(campaignRepo repository.CampaignRepository, cfg *config.Config) *Service {
	location := cfg.App.Location
	if location == nil {
		location = time.UTC
	}

	return &Service{
		campaignRepo: campaignRepo,
		location:     location,
		now:          time.Now,
	}
}

// clock devolve o instante atual no fuso de operação e a data de hoje nesse fuso
func (s *Service) clock() (time.Time, time.Time) {
	now := s.now().In(s.location)
	return now, domain.DateOnly(now)
}

// CheckCampaignBudgets pausa toda campanha ativa que estourou o budget diário ou mensal
func (s *Service) CheckCampaignBudgets(ctx context.Context) (*domain.BudgetCheckSummary, error) {
	logrus.Info("Iniciando verificação de budget das campanhas")

	campaigns, err := s.campaignRepo.ListByStatus(ctx, []domain.CampaignStatus{domain.CampaignStatusActive})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar campanhas ativas")
	}

	summary := &domain.BudgetCheckSummary{CheckedCount: len(campaigns)}

	for _, campaign := range campaigns {
		_, changed, err := s.campaignRepo.Mutate(ctx, campaign.ID, func(locked *domain.Campaign) (bool, error) {
			if locked.IsWithinBudget() {
				return false, nil
			}
			return locked.Pause(), nil
		})
		if err != nil {
			if !isCampaignFailure(err) {
				return nil, errors.Wrapf(err, "erro ao verificar budget da campanha %s", campaign.ID)
			}
			logCampaignFailure("check-campaign-budgets", campaign, err)
			summary.Add(campaign, err)
			continue
		}

		if changed {
			summary.PausedCount++
			logrus.WithFields(logrus.Fields{
				"campaign_id":   campaign.ID,
				"campaign_name": campaign.Name,
			}).Info("Campanha pausada por estouro de budget")
		}
	}

	logrus.WithFields(logrus.Fields{
		"checked_count": summary.CheckedCount,
		"paused_count":  summary.PausedCount,
		"failed_count":  summary.FailedCount,
	}).Info("Verificação de budget concluída")

	return summary, nil
}

func (s *Service) ResetDailySpends(ctx context.Context) (*domain.ResetSummary, error) {
	return s.resetSpends(ctx, domain.SpendPeriodDaily)
}

func (s *Service) ResetMonthlySpends(ctx context.Context) (*domain.ResetSummary, error) {
	return s.resetSpends(ctx, domain.SpendPeriodMonthly)
}

// resetSpends zera o período e tenta reativar as campanhas pausadas na mesma transação
func (s *Service) resetSpends(ctx context.Context, period domain.SpendPeriod) (*domain.ResetSummary, error) {
	logrus.WithField("period", period).Info("Iniciando reset de gastos")

	_, today := s.clock()
	summary := &domain.ResetSummary{Period: period}

	resetCount, err := s.campaignRepo.ResetSpend(ctx, period, func(locked *domain.Campaign) (bool, error) {
		if err := locked.Validate(); err != nil {
			logCampaignFailure("reset-"+string(period)+"-spends", locked, err)
			summary.Add(locked, err)
			return false, nil
		}

		if !locked.Activate(today) {
			return false, nil
		}

		summary.ReactivatedCount++
		logrus.WithFields(logrus.Fields{
			"campaign_id":   locked.ID,
			"campaign_name": locked.Name,
			"period":        period,
		}).Info("Campanha reativada após reset de gastos")

		return true, nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao resetar gastos do período %s", period)
	}

	summary.ResetCount = resetCount

	logrus.WithFields(logrus.Fields{
		"period":            period,
		"reset_count":       summary.ResetCount,
		"reactivated_count": summary.ReactivatedCount,
		"failed_count":      summary.FailedCount,
	}).Info("Reset de gastos concluído")

	return summary, nil
}

// EnforceDayparting liga e desliga campanhas conforme as janelas de veiculação.
// Campanhas sem janela ativa não são tocadas.
func (s *Service) EnforceDayparting(ctx context.Context) (*domain.DaypartingSummary, error) {
	logrus.Info("Iniciando aplicação de dayparting")

	now, today := s.clock()

	campaigns, err := s.campaignRepo.ListWithActiveSchedules(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar campanhas com janelas de veiculação")
	}

	summary := &domain.DaypartingSummary{}

	for _, campaign := range campaigns {
		if !campaign.Schedules.IsConstrained() {
			continue
		}

		withinSchedule := campaign.Schedules.IsWithinSchedule(now)

		_, changed, err := s.campaignRepo.Mutate(ctx, campaign.ID, func(locked *domain.Campaign) (bool, error) {
			if withinSchedule {
				if locked.Status != domain.CampaignStatusPaused {
					return false, nil
				}
				return locked.Activate(today), nil
			}
			return locked.Pause(), nil
		})
		if err != nil {
			if !isCampaignFailure(err) {
				return nil, errors.Wrapf(err, "erro ao aplicar dayparting na campanha %s", campaign.ID)
			}
			logCampaignFailure("enforce-dayparting", campaign, err)
			summary.Add(campaign, err)
			continue
		}

		if !changed {
			continue
		}

		fields := logrus.Fields{
			"campaign_id":   campaign.ID,
			"campaign_name": campaign.Name,
		}
		if withinSchedule {
			summary.EnabledCount++
			logrus.WithFields(fields).Info("Campanha ligada pela janela de veiculação")
		} else {
			summary.DisabledCount++
			logrus.WithFields(fields).Info("Campanha desligada fora da janela de veiculação")
		}
	}

	logrus.WithFields(logrus.Fields{
		"enabled_count":  summary.EnabledCount,
		"disabled_count": summary.DisabledCount,
		"failed_count":   summary.FailedCount,
	}).Info("Aplicação de dayparting concluída")

	return summary, nil
}

// ActivateEligibleCampaigns ativa os rascunhos que já estão no período e dentro do budget
func (s *Service) ActivateEligibleCampaigns(ctx context.Context) (*domain.ActivationSummary, error) {
	logrus.Info("Iniciando ativação de campanhas elegíveis")

	_, today := s.clock()

	campaigns, err := s.campaignRepo.ListByStatus(ctx, []domain.CampaignStatus{domain.CampaignStatusDraft})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar campanhas em rascunho")
	}

	summary := &domain.ActivationSummary{}

	for _, campaign := range campaigns {
		_, changed, err := s.campaignRepo.Mutate(ctx, campaign.ID, func(locked *domain.Campaign) (bool, error) {
			if locked.Status != domain.CampaignStatusDraft {
				return false, nil
			}
			return locked.Activate(today), nil
		})
		if err != nil {
			if !isCampaignFailure(err) {
				return nil, errors.Wrapf(err, "erro ao ativar campanha %s", campaign.ID)
			}
			logCampaignFailure("activate-eligible-campaigns", campaign, err)
			summary.Add(campaign, err)
			continue
		}

		if changed {
			summary.ActivatedCount++
			logrus.WithFields(logrus.Fields{
				"campaign_id":   campaign.ID,
				"campaign_name": campaign.Name,
			}).Info("Campanha ativada")
		}
	}

	logrus.WithFields(logrus.Fields{
		"activated_count": summary.ActivatedCount,
		"failed_count":    summary.FailedCount,
	}).Info("Ativação de campanhas concluída")

	return summary, nil
}

// isCampaignFailure separa erros de uma campanha específica das falhas de storage, que abortam o job
func isCampaignFailure(err error) bool {
	return errors.Is(err, domain.ErrInvariantViolation) || errors.Is(err, domain.ErrNotFound)
}

func logCampaignFailure(job string, campaign *domain.Campaign, err error) {
	logrus.WithFields(logrus.Fields{
		"job":           job,
		"campaign_id":   campaign.ID,
		"campaign_name": campaign.Name,
	}).WithError(err).Warn("Falha ao reconciliar campanha, seguindo para a próxima")
}
