package campaigning

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-control-api/infrastructure/repository"
	"github.com/vfg2006/campaign-control-api/internal/config"
	"github.com/vfg2006/campaign-control-api/internal/domain"
	"github.com/vfg2006/campaign-control-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-control-api/pkg/utils"
)

var allStatuses = []domain.CampaignStatus{
	domain.CampaignStatusDraft,
	domain.CampaignStatusActive,
	domain.CampaignStatusPaused,
	domain.CampaignStatusCompleted,
}

type CampaignService interface {
	CreateBrand(ctx context.Context, brand *domain.Brand) (*domain.Brand, error)
	GetBrand(ctx context.Context, brandID string) (*domain.Brand, error)
	ListBrands(ctx context.Context) ([]*domain.Brand, error)
	UpdateBrand(ctx context.Context, request *domain.UpdateBrandRequest) (*domain.Brand, error)
	DeleteBrand(ctx context.Context, brandID string) error

	CreateCampaign(ctx context.Context, request *domain.CreateCampaignRequest) (*domain.Campaign, error)
	GetCampaign(ctx context.Context, campaignID string) (*domain.Campaign, error)
	ListCampaigns(ctx context.Context, brandID string, statuses []domain.CampaignStatus) ([]*domain.Campaign, error)
	ListSchedules(ctx context.Context, campaignID string) (domain.ScheduleSet, error)
	ReplaceSchedules(ctx context.Context, campaignID string, schedules domain.ScheduleSet) (domain.ScheduleSet, error)

	ActivateCampaign(ctx context.Context, campaignID string) (*domain.Campaign, error)
	PauseCampaign(ctx context.Context, campaignID string) (*domain.Campaign, error)
	CompleteCampaign(ctx context.Context, campaignID string) (*domain.Campaign, error)

	GetSpendReport(ctx context.Context, brandID *string) (*domain.SpendReport, error)
}

type Service struct {
	brandRepo    repository.BrandRepository
	campaignRepo repository.CampaignRepository
	scheduleRepo repository.ScheduleRepository
	location     *time.Location
	now          func() time.Time
}

func NewService(
	brandRepo repository.BrandRepository,
	campaignRepo repository.CampaignRepository,
	scheduleRepo repository.ScheduleRepository,
	cfg *config.Config,
) CampaignService {
	location := cfg.App.Location
	if location == nil {
		location = time.UTC
	}

	return &Service{
		brandRepo:    brandRepo,
		campaignRepo: campaignRepo,
		scheduleRepo: scheduleRepo,
		location:     location,
		now:          time.Now,
	}
}

func (s *Service) today() time.Time {
	return domain.DateOnly(s.now().In(s.location))
}

func (s *Service) CreateBrand(ctx context.Context, brand *domain.Brand) (*domain.Brand, error) {
	brand.Name = strings.TrimSpace(brand.Name)
	if brand.Name == "" {
		return nil, NewCampaignError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Nome da marca é obrigatório")
	}

	brandID, err := utils.GenerateID()
	if err != nil {
		return nil, NewCampaignError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador único para marca")
	}
	brand.ID = brandID

	if err := s.brandRepo.Create(ctx, brand); err != nil {
		logrus.WithError(err).Error("Erro ao criar marca")
		return nil, WrapError(err, "", "Falha ao criar marca")
	}

	logrus.WithFields(logrus.Fields{
		"brand_id":   brand.ID,
		"brand_name": brand.Name,
	}).Info("Marca criada")

	return brand, nil
}

func (s *Service) GetBrand(ctx context.Context, brandID string) (*domain.Brand, error) {
	brand, err := s.brandRepo.GetByID(ctx, brandID)
	if err != nil {
		return nil, WrapError(err, "", "Erro ao buscar marca no banco de dados")
	}

	if brand == nil {
		return nil, NewCampaignError(domain.ErrBrandNotFound, apiErrors.ErrBrandNotFound, "Marca não encontrada")
	}

	return brand, nil
}

func (s *Service) ListBrands(ctx context.Context) ([]*domain.Brand, error) {
	brands, err := s.brandRepo.List(ctx)
	if err != nil {
		return nil, WrapError(err, "", "Falha ao listar marcas no banco de dados")
	}

	return brands, nil
}

func (s *Service) UpdateBrand(ctx context.Context, request *domain.UpdateBrandRequest) (*domain.Brand, error) {
	if request.ID == "" {
		return nil, NewCampaignError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "ID da marca é obrigatório")
	}

	brand, err := s.GetBrand(ctx, request.ID)
	if err != nil {
		return nil, err
	}

	if request.Name != nil {
		name := strings.TrimSpace(*request.Name)
		if name == "" {
			return nil, NewCampaignError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Nome da marca não pode ser vazio")
		}
		brand.Name = name
	}

	if request.Description != nil {
		brand.Description = *request.Description
	}

	if request.IsActive != nil {
		brand.IsActive = *request.IsActive
	}

	if err := s.brandRepo.Update(ctx, brand); err != nil {
		return nil, WrapError(err, "", "Falha ao atualizar marca")
	}

	return brand, nil
}

// DeleteBrand remove a marca junto com suas campanhas, janelas e lançamentos
func (s *Service) DeleteBrand(ctx context.Context, brandID string) error {
	if err := s.brandRepo.Delete(ctx, brandID); err != nil {
		return WrapError(err, "", "Falha ao remover marca")
	}

	logrus.WithField("brand_id", brandID).Info("Marca removida com suas campanhas")

	return nil
}

// CreateCampaign cria a campanha sempre em rascunho e sem gasto acumulado
func (s *Service) CreateCampaign(ctx context.Context, request *domain.CreateCampaignRequest) (*domain.Campaign, error) {
	request.Name = strings.TrimSpace(request.Name)
	if request.BrandID == "" || request.Name == "" || request.StartDate == "" {
		return nil, NewCampaignError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Marca, nome e data de início são obrigatórios")
	}

	startDate, err := utils.ParseDate(request.StartDate)
	if err != nil {
		return nil, NewCampaignError(ErrInvalidFormat, apiErrors.ErrInvalidFormat, "Data de início deve estar no formato YYYY-MM-DD")
	}

	endDate, err := utils.ParseOptionalDate(request.EndDate)
	if err != nil {
		return nil, NewCampaignError(ErrInvalidFormat, apiErrors.ErrInvalidFormat, "Data de fim deve estar no formato YYYY-MM-DD")
	}

	if _, err := s.GetBrand(ctx, request.BrandID); err != nil {
		return nil, err
	}

	campaign := &domain.Campaign{
		BrandID:       request.BrandID,
		Name:          request.Name,
		Status:        domain.CampaignStatusDraft,
		DailyBudget:   request.DailyBudget,
		MonthlyBudget: request.MonthlyBudget,
		DailySpend:    decimal.Zero,
		MonthlySpend:  decimal.Zero,
		StartDate:     *startDate,
		EndDate:       endDate,
	}

	if err := campaign.ValidateForCreation(); err != nil {
		return nil, WrapError(err, "", "Campanha inválida")
	}

	campaignID, err := utils.GenerateID()
	if err != nil {
		return nil, NewCampaignError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador único para campanha")
	}
	campaign.ID = campaignID

	if err := s.campaignRepo.Create(ctx, campaign); err != nil {
		logrus.WithError(err).Error("Erro ao criar campanha")
		return nil, WrapError(err, campaign.ID, "Falha ao criar campanha")
	}

	logrus.WithFields(logrus.Fields{
		"campaign_id":   campaign.ID,
		"campaign_name": campaign.Name,
		"brand_id":      campaign.BrandID,
	}).Info("Campanha criada em rascunho")

	return campaign, nil
}

func (s *Service) GetCampaign(ctx context.Context, campaignID string) (*domain.Campaign, error) {
	campaign, err := s.campaignRepo.GetByID(ctx, campaignID)
	if err != nil {
		return nil, WrapError(err, campaignID, "Erro ao buscar campanha no banco de dados")
	}

	if campaign == nil {
		return nil, NewCampaignErrorWithID(domain.ErrCampaignNotFound, apiErrors.ErrCampaignNotFound, campaignID, "Campanha não encontrada")
	}

	return campaign, nil
}

// ListCampaigns filtra por marca e status; sem status informado lista todos
func (s *Service) ListCampaigns(ctx context.Context, brandID string, statuses []domain.CampaignStatus) ([]*domain.Campaign, error) {
	for _, status := range statuses {
		if !status.IsValid() {
			return nil, NewCampaignError(domain.ErrInvalidStatus, apiErrors.ErrInvalidRequest, "Status inválido: "+string(status))
		}
	}

	if len(statuses) == 0 {
		statuses = allStatuses
	}

	if brandID == "" {
		campaigns, err := s.campaignRepo.ListByStatus(ctx, statuses)
		if err != nil {
			return nil, WrapError(err, "", "Falha ao listar campanhas no banco de dados")
		}
		return campaigns, nil
	}

	campaigns, err := s.campaignRepo.ListByBrand(ctx, brandID)
	if err != nil {
		return nil, WrapError(err, "", "Falha ao listar campanhas da marca")
	}

	filtered := make([]*domain.Campaign, 0, len(campaigns))
	for _, campaign := range campaigns {
		for _, status := range statuses {
			if campaign.Status == status {
				filtered = append(filtered, campaign)
				break
			}
		}
	}

	return filtered, nil
}

func (s *Service) ListSchedules(ctx context.Context, campaignID string) (domain.ScheduleSet, error) {
	if _, err := s.GetCampaign(ctx, campaignID); err != nil {
		return nil, err
	}

	schedules, err := s.scheduleRepo.ListByCampaign(ctx, campaignID)
	if err != nil {
		return nil, WrapError(err, campaignID, "Falha ao listar janelas de veiculação")
	}

	return schedules, nil
}

// ReplaceSchedules substitui o conjunto de janelas da campanha, no máximo uma por dia da semana
func (s *Service) ReplaceSchedules(ctx context.Context, campaignID string, schedules domain.ScheduleSet) (domain.ScheduleSet, error) {
	if _, err := s.GetCampaign(ctx, campaignID); err != nil {
		return nil, err
	}

	if err := schedules.Validate(); err != nil {
		return nil, NewCampaignErrorWithID(err, apiErrors.ErrInvalidSchedule, campaignID, "Janelas de veiculação inválidas")
	}

	for i := range schedules {
		schedules[i].CampaignID = campaignID
		if schedules[i].ID != "" {
			continue
		}

		scheduleID, err := utils.GenerateID()
		if err != nil {
			return nil, NewCampaignError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador único para janela")
		}
		schedules[i].ID = scheduleID
	}

	saved, err := s.scheduleRepo.ReplaceForCampaign(ctx, campaignID, schedules)
	if err != nil {
		return nil, WrapError(err, campaignID, "Falha ao salvar janelas de veiculação")
	}

	logrus.WithFields(logrus.Fields{
		"campaign_id": campaignID,
		"schedules":   len(saved),
	}).Info("Janelas de veiculação atualizadas")

	return saved, nil
}

// ActivateCampaign passa pela mesma regra de elegibilidade usada pelos jobs
func (s *Service) ActivateCampaign(ctx context.Context, campaignID string) (*domain.Campaign, error) {
	today := s.today()
	return s.transition(ctx, campaignID, domain.CampaignEventActivate, func(c *domain.Campaign) bool {
		return c.Activate(today)
	})
}

func (s *Service) PauseCampaign(ctx context.Context, campaignID string) (*domain.Campaign, error) {
	return s.transition(ctx, campaignID, domain.CampaignEventPause, (*domain.Campaign).Pause)
}

// CompleteCampaign é o único caminho para Completed
func (s *Service) CompleteCampaign(ctx context.Context, campaignID string) (*domain.Campaign, error) {
	return s.transition(ctx, campaignID, domain.CampaignEventComplete, (*domain.Campaign).Complete)
}

func (s *Service) transition(
	ctx context.Context,
	campaignID string,
	event domain.CampaignEvent,
	apply func(c *domain.Campaign) bool,
) (*domain.Campaign, error) {
	var from domain.CampaignStatus

	campaign, _, err := s.campaignRepo.Mutate(ctx, campaignID, func(locked *domain.Campaign) (bool, error) {
		from = locked.Status
		if !apply(locked) {
			return false, ErrInvalidTransition
		}
		return true, nil
	})
	if err != nil {
		if CodeFor(err) == apiErrors.ErrInvalidTransition {
			return nil, NewCampaignErrorWithID(err, apiErrors.ErrInvalidTransition, campaignID,
				"Não é possível aplicar "+string(event)+" a partir do status "+string(from))
		}
		return nil, WrapError(err, campaignID, "Falha ao alterar status da campanha")
	}

	logrus.WithFields(logrus.Fields{
		"campaign_id":   campaign.ID,
		"campaign_name": campaign.Name,
		"event":         event,
		"from":          from,
		"to":            campaign.Status,
	}).Info("Status da campanha alterado manualmente")

	return campaign, nil
}

// GetSpendReport consolida gastos e contagens de status, opcionalmente de uma única marca
func (s *Service) GetSpendReport(ctx context.Context, brandID *string) (*domain.SpendReport, error) {
	var (
		campaigns []*domain.Campaign
		err       error
	)

	if brandID != nil {
		if _, err := s.GetBrand(ctx, *brandID); err != nil {
			return nil, err
		}
		campaigns, err = s.campaignRepo.ListByBrand(ctx, *brandID)
	} else {
		campaigns, err = s.campaignRepo.ListByStatus(ctx, allStatuses)
	}
	if err != nil {
		return nil, WrapError(err, "", "Falha ao listar campanhas para o relatório")
	}

	report := &domain.SpendReport{
		BrandID:           brandID,
		TotalCampaigns:    len(campaigns),
		TotalDailySpend:   decimal.Zero,
		TotalMonthlySpend: decimal.Zero,
	}

	for _, campaign := range campaigns {
		report.TotalDailySpend = report.TotalDailySpend.Add(campaign.DailySpend)
		report.TotalMonthlySpend = report.TotalMonthlySpend.Add(campaign.MonthlySpend)

		switch campaign.Status {
		case domain.CampaignStatusActive:
			report.ActiveCampaigns++
		case domain.CampaignStatusPaused:
			report.PausedCampaigns++
		}
	}

	brands, err := s.campaignRepo.SpendByBrand(ctx, brandID)
	if err != nil {
		return nil, WrapError(err, "", "Falha ao consolidar gastos por marca")
	}
	report.Brands = brands
	report.GeneratedAt = s.now().In(s.location)

	logrus.WithFields(logrus.Fields{
		"total_campaigns":     report.TotalCampaigns,
		"active_campaigns":    report.ActiveCampaigns,
		"paused_campaigns":    report.PausedCampaigns,
		"total_daily_spend":   report.TotalDailySpend.StringFixed(domain.CurrencyPlaces),
		"total_monthly_spend": report.TotalMonthlySpend.StringFixed(domain.CurrencyPlaces),
	}).Info("Relatório de gastos gerado")

	return report, nil
}
