// Package spending é o único ponto de entrada para registrar gasto em campanhas.
package spending

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-control-api/infrastructure/repository"
	"github.com/vfg2006/campaign-control-api/internal/domain"
	"github.com/vfg2006/campaign-control-api/internal/usecases/campaigning"
	"github.com/vfg2006/campaign-control-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-control-api/pkg/utils"
)

const (
	defaultDescription = "Gasto registrado via API"
	defaultLogsLimit   = 100
)

type Spender interface {
	AddCampaignSpend(ctx context.Context, campaignID string, amount decimal.Decimal, description string) (*domain.SpendResult, error)
	ListSpendLogs(ctx context.Context, campaignID string, limit uint64) ([]*domain.SpendLog, error)
	SumSpendSince(ctx context.Context, campaignID string, since time.Time) (decimal.Decimal, error)
}

type Service struct {
	campaignRepo repository.CampaignRepository
	spendLogRepo repository.SpendLogRepository
	newID        func() string
}

func NewService(campaignRepo repository.CampaignRepository, spendLogRepo repository.SpendLogRepository) Spender {
	return &Service{
		campaignRepo: campaignRepo,
		spendLogRepo: spendLogRepo,
		newID:        utils.GenerateUUID,
	}
}

// AddCampaignSpend acumula o gasto na campanha e grava o lançamento no ledger na mesma transação.
// Campanha ativa que estoura o budget é pausada na hora.
func (s *Service) AddCampaignSpend(ctx context.Context, campaignID string, amount decimal.Decimal, description string) (*domain.SpendResult, error) {
	if campaignID == "" {
		return errorResult(campaignID, "ID da campanha é obrigatório"),
			campaigning.NewCampaignError(campaigning.ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "ID da campanha é obrigatório")
	}

	if err := domain.ValidateAmount(amount); err != nil {
		// campanha inexistente tem precedência sobre valor inválido
		if _, lookupErr := s.findCampaign(ctx, campaignID); lookupErr != nil {
			return errorResult(campaignID, lookupErr.Details), lookupErr
		}

		message := fmt.Sprintf("Valor inválido %s: deve ser positivo e ter no máximo duas casas decimais", amount.String())
		return errorResult(campaignID, message),
			campaigning.NewCampaignErrorWithID(err, apiErrors.ErrInvalidAmount, campaignID, message)
	}

	if description == "" {
		description = defaultDescription
	}

	entry := &domain.SpendLog{
		ID:          s.newID(),
		CampaignID:  campaignID,
		Amount:      amount,
		Description: description,
	}

	var paused bool
	campaign, err := s.campaignRepo.RecordSpend(ctx, entry, func(locked *domain.Campaign) (bool, error) {
		var err error
		paused, err = locked.AddSpend(amount)
		if err != nil {
			return false, err
		}
		return true, nil
	})
	if err != nil {
		wrapped := campaigning.WrapError(err, campaignID, "Erro ao adicionar gasto à campanha")
		if wrapped.Code == apiErrors.ErrCampaignNotFound {
			wrapped.Details = fmt.Sprintf("Campanha com ID %s não encontrada", campaignID)
		}

		logrus.WithFields(logrus.Fields{
			"campaign_id": campaignID,
			"amount":      amount.StringFixed(domain.CurrencyPlaces),
		}).WithError(err).Error("Erro ao adicionar gasto à campanha")

		return errorResult(campaignID, wrapped.Error()), wrapped
	}

	fields := logrus.Fields{
		"campaign_id":   campaign.ID,
		"campaign_name": campaign.Name,
		"amount":        amount.StringFixed(domain.CurrencyPlaces),
		"daily_spend":   campaign.DailySpend.StringFixed(domain.CurrencyPlaces),
		"monthly_spend": campaign.MonthlySpend.StringFixed(domain.CurrencyPlaces),
	}
	logrus.WithFields(fields).Info("Gasto adicionado à campanha")
	if paused {
		logrus.WithFields(fields).Info("Campanha pausada por estouro de budget")
	}

	return &domain.SpendResult{
		Status:         domain.SpendResultSuccess,
		Message:        fmt.Sprintf("Gasto de %s adicionado à campanha %s", amount.StringFixed(domain.CurrencyPlaces), campaign.Name),
		CampaignID:     campaign.ID,
		SpendLogID:     entry.ID,
		CampaignStatus: campaign.Status,
		DailySpend:     campaign.DailySpend,
		MonthlySpend:   campaign.MonthlySpend,
		Paused:         paused,
	}, nil
}

// ListSpendLogs devolve os lançamentos mais recentes primeiro
func (s *Service) ListSpendLogs(ctx context.Context, campaignID string, limit uint64) ([]*domain.SpendLog, error) {
	if _, err := s.findCampaign(ctx, campaignID); err != nil {
		return nil, err
	}

	if limit == 0 {
		limit = defaultLogsLimit
	}

	logs, err := s.spendLogRepo.ListByCampaign(ctx, campaignID, limit)
	if err != nil {
		return nil, campaigning.WrapError(err, campaignID, "Falha ao listar lançamentos da campanha")
	}

	return logs, nil
}

func (s *Service) SumSpendSince(ctx context.Context, campaignID string, since time.Time) (decimal.Decimal, error) {
	if _, err := s.findCampaign(ctx, campaignID); err != nil {
		return decimal.Zero, err
	}

	total, err := s.spendLogRepo.SumByCampaignSince(ctx, campaignID, since)
	if err != nil {
		return decimal.Zero, campaigning.WrapError(err, campaignID, "Falha ao somar lançamentos da campanha")
	}

	return total, nil
}

func (s *Service) findCampaign(ctx context.Context, campaignID string) (*domain.Campaign, *campaigning.CampaignError) {
	campaign, err := s.campaignRepo.GetByID(ctx, campaignID)
	if err != nil {
		return nil, campaigning.WrapError(err, campaignID, "Erro ao buscar campanha no banco de dados")
	}
	if campaign == nil {
		return nil, campaigning.NewCampaignErrorWithID(domain.ErrCampaignNotFound, apiErrors.ErrCampaignNotFound, campaignID,
			fmt.Sprintf("Campanha com ID %s não encontrada", campaignID))
	}

	return campaign, nil
}

func errorResult(campaignID string, message string) *domain.SpendResult {
	return &domain.SpendResult{
		Status:       domain.SpendResultError,
		Message:      message,
		CampaignID:   campaignID,
		DailySpend:   decimal.Zero,
		MonthlySpend: decimal.Zero,
	}
}
