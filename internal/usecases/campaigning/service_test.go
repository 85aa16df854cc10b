package campaigning

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-control-api/infrastructure/repository/mocks"
	"github.com/vfg2006/campaign-control-api/internal/domain"
	"github.com/vfg2006/campaign-control-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, 3, 10, 14, 0, 0, 0, time.UTC)

type serviceMocks struct {
	brandRepo    *mocks.MockBrandRepository
	campaignRepo *mocks.MockCampaignRepository
	scheduleRepo *mocks.MockScheduleRepository
}

func newTestService(t *testing.T) (*Service, serviceMocks) {
	ctrl := gomock.NewController(t)

	m := serviceMocks{
		brandRepo:    mocks.NewMockBrandRepository(ctrl),
		campaignRepo: mocks.NewMockCampaignRepository(ctrl),
		scheduleRepo: mocks.NewMockScheduleRepository(ctrl),
	}

	service := &Service{
		brandRepo:    m.brandRepo,
		campaignRepo: m.campaignRepo,
		scheduleRepo: m.scheduleRepo,
		location:     time.UTC,
		now:          func() time.Time { return fixedNow },
	}

	return service, m
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func strPtr(s string) *string {
	return &s
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()

	var campaignErr *CampaignError
	require.ErrorAs(t, err, &campaignErr)
	assert.Equal(t, code, campaignErr.Code)
}

// applyMutation simula Mutate aplicando fn sobre a campanha travada
func applyMutation(stored *domain.Campaign) func(context.Context, string, domain.CampaignMutation) (*domain.Campaign, bool, error) {
	return func(_ context.Context, _ string, fn domain.CampaignMutation) (*domain.Campaign, bool, error) {
		working := *stored
		changed, err := fn(&working)
		if err != nil {
			return nil, false, err
		}
		if changed {
			*stored = working
		}
		return &working, changed, nil
	}
}

func TestService_CreateBrand(t *testing.T) {
	service, m := newTestService(t)

	m.brandRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, brand *domain.Brand) error {
			assert.Len(t, brand.ID, 6)
			assert.Equal(t, "Acme", brand.Name)
			return nil
		})

	brand, err := service.CreateBrand(context.Background(), &domain.Brand{Name: "  Acme ", IsActive: true})

	require.NoError(t, err)
	assert.Equal(t, "Acme", brand.Name)
	assert.True(t, brand.IsActive)
}

func TestService_CreateBrand_Errors(t *testing.T) {
	tests := []struct {
		name     string
		brand    *domain.Brand
		setup    func(m serviceMocks)
		wantCode string
	}{
		{
			name:     "Nome vazio",
			brand:    &domain.Brand{Name: "   "},
			setup:    func(m serviceMocks) {},
			wantCode: apiErrors.ErrMissingRequiredData,
		},
		{
			name:  "Nome duplicado",
			brand: &domain.Brand{Name: "Acme"},
			setup: func(m serviceMocks) {
				m.brandRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(domain.ErrAlreadyExists)
			},
			wantCode: apiErrors.ErrAlreadyExists,
		},
		{
			name:  "Falha de banco",
			brand: &domain.Brand{Name: "Acme"},
			setup: func(m serviceMocks) {
				m.brandRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))
			},
			wantCode: apiErrors.ErrDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newTestService(t)
			tt.setup(m)

			brand, err := service.CreateBrand(context.Background(), tt.brand)

			assert.Nil(t, brand)
			assertCode(t, err, tt.wantCode)
		})
	}
}

func TestService_UpdateBrand(t *testing.T) {
	service, m := newTestService(t)

	existing := &domain.Brand{ID: "b1", Name: "Acme", Description: "antiga", IsActive: true}

	m.brandRepo.EXPECT().GetByID(gomock.Any(), "b1").Return(existing, nil)
	m.brandRepo.EXPECT().Update(gomock.Any(), existing).Return(nil)

	inactive := false
	brand, err := service.UpdateBrand(context.Background(), &domain.UpdateBrandRequest{
		ID:          "b1",
		Description: strPtr("nova"),
		IsActive:    &inactive,
	})

	require.NoError(t, err)
	assert.Equal(t, "Acme", brand.Name)
	assert.Equal(t, "nova", brand.Description)
	assert.False(t, brand.IsActive)
}

func TestService_GetBrand_NotFound(t *testing.T) {
	service, m := newTestService(t)

	m.brandRepo.EXPECT().GetByID(gomock.Any(), "missing").Return(nil, nil)

	_, err := service.GetBrand(context.Background(), "missing")

	assertCode(t, err, apiErrors.ErrBrandNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestService_DeleteBrand(t *testing.T) {
	service, m := newTestService(t)

	m.brandRepo.EXPECT().Delete(gomock.Any(), "b1").Return(nil)
	m.brandRepo.EXPECT().Delete(gomock.Any(), "b2").Return(domain.ErrBrandNotFound)

	require.NoError(t, service.DeleteBrand(context.Background(), "b1"))
	assertCode(t, service.DeleteBrand(context.Background(), "b2"), apiErrors.ErrBrandNotFound)
}

func TestService_CreateCampaign(t *testing.T) {
	service, m := newTestService(t)

	m.brandRepo.EXPECT().GetByID(gomock.Any(), "b1").Return(&domain.Brand{ID: "b1", Name: "Acme"}, nil)
	m.campaignRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, campaign *domain.Campaign) error {
			assert.Equal(t, domain.CampaignStatusDraft, campaign.Status)
			assert.True(t, campaign.DailySpend.IsZero())
			assert.True(t, campaign.MonthlySpend.IsZero())
			return nil
		})

	campaign, err := service.CreateCampaign(context.Background(), &domain.CreateCampaignRequest{
		BrandID:       "b1",
		Name:          "Verão",
		DailyBudget:   dec("100.00"),
		MonthlyBudget: dec("2500.00"),
		StartDate:     "2024-03-01",
		EndDate:       strPtr("2024-03-31"),
	})

	require.NoError(t, err)
	assert.NotEmpty(t, campaign.ID)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), campaign.StartDate)
	require.NotNil(t, campaign.EndDate)
	assert.Equal(t, 31, campaign.EndDate.Day())
}

func TestService_CreateCampaign_Validation(t *testing.T) {
	validBrand := func(m serviceMocks) {
		m.brandRepo.EXPECT().GetByID(gomock.Any(), "b1").Return(&domain.Brand{ID: "b1"}, nil)
	}

	tests := []struct {
		name     string
		request  domain.CreateCampaignRequest
		setup    func(m serviceMocks)
		wantCode string
	}{
		{
			name:     "Sem nome",
			request:  domain.CreateCampaignRequest{BrandID: "b1", StartDate: "2024-03-01"},
			setup:    func(m serviceMocks) {},
			wantCode: apiErrors.ErrMissingRequiredData,
		},
		{
			name:     "Data de início em formato inválido",
			request:  domain.CreateCampaignRequest{BrandID: "b1", Name: "X", StartDate: "01/03/2024"},
			setup:    func(m serviceMocks) {},
			wantCode: apiErrors.ErrInvalidFormat,
		},
		{
			name: "Budget diário zerado",
			request: domain.CreateCampaignRequest{
				BrandID: "b1", Name: "X", StartDate: "2024-03-01",
				DailyBudget: decimal.Zero, MonthlyBudget: dec("10.00"),
			},
			setup:    validBrand,
			wantCode: apiErrors.ErrInvalidBudget,
		},
		{
			name: "Fim antes do início",
			request: domain.CreateCampaignRequest{
				BrandID: "b1", Name: "X", StartDate: "2024-03-10", EndDate: strPtr("2024-03-01"),
				DailyBudget: dec("10.00"), MonthlyBudget: dec("10.00"),
			},
			setup:    validBrand,
			wantCode: apiErrors.ErrInvalidDateRange,
		},
		{
			name: "Marca inexistente",
			request: domain.CreateCampaignRequest{
				BrandID: "nope", Name: "X", StartDate: "2024-03-01",
				DailyBudget: dec("10.00"), MonthlyBudget: dec("10.00"),
			},
			setup: func(m serviceMocks) {
				m.brandRepo.EXPECT().GetByID(gomock.Any(), "nope").Return(nil, nil)
			},
			wantCode: apiErrors.ErrBrandNotFound,
		},
		{
			name: "Nome repetido na mesma marca",
			request: domain.CreateCampaignRequest{
				BrandID: "b1", Name: "X", StartDate: "2024-03-01",
				DailyBudget: dec("10.00"), MonthlyBudget: dec("10.00"),
			},
			setup: func(m serviceMocks) {
				validBrand(m)
				m.campaignRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(domain.ErrAlreadyExists)
			},
			wantCode: apiErrors.ErrAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newTestService(t)
			tt.setup(m)

			request := tt.request
			campaign, err := service.CreateCampaign(context.Background(), &request)

			assert.Nil(t, campaign)
			assertCode(t, err, tt.wantCode)
		})
	}
}

func TestService_ListCampaigns(t *testing.T) {
	service, m := newTestService(t)

	draft := &domain.Campaign{ID: "c1", Status: domain.CampaignStatusDraft}
	active := &domain.Campaign{ID: "c2", Status: domain.CampaignStatusActive}

	m.campaignRepo.EXPECT().ListByBrand(gomock.Any(), "b1").Return([]*domain.Campaign{draft, active}, nil)
	m.campaignRepo.EXPECT().ListByStatus(gomock.Any(), allStatuses).Return([]*domain.Campaign{draft, active}, nil)

	campaigns, err := service.ListCampaigns(context.Background(), "b1", []domain.CampaignStatus{domain.CampaignStatusActive})
	require.NoError(t, err)
	require.Len(t, campaigns, 1)
	assert.Equal(t, "c2", campaigns[0].ID)

	campaigns, err = service.ListCampaigns(context.Background(), "", nil)
	require.NoError(t, err)
	assert.Len(t, campaigns, 2)

	_, err = service.ListCampaigns(context.Background(), "", []domain.CampaignStatus{"archived"})
	assertCode(t, err, apiErrors.ErrInvalidRequest)
}

func TestService_ReplaceSchedules(t *testing.T) {
	service, m := newTestService(t)

	schedules := domain.ScheduleSet{
		{DayOfWeek: domain.Monday, StartTime: domain.NewTimeOfDay(9, 0, 0), EndTime: domain.NewTimeOfDay(17, 0, 0), IsActive: true},
		{ID: "keep01", DayOfWeek: domain.Friday, StartTime: domain.NewTimeOfDay(8, 0, 0), EndTime: domain.NewTimeOfDay(12, 0, 0), IsActive: true},
	}

	m.campaignRepo.EXPECT().GetByID(gomock.Any(), "c1").Return(&domain.Campaign{ID: "c1"}, nil)
	m.scheduleRepo.EXPECT().
		ReplaceForCampaign(gomock.Any(), "c1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, set domain.ScheduleSet) (domain.ScheduleSet, error) {
			for _, s := range set {
				assert.Equal(t, "c1", s.CampaignID)
				assert.NotEmpty(t, s.ID)
			}
			assert.Equal(t, "keep01", set[1].ID)
			return set, nil
		})

	saved, err := service.ReplaceSchedules(context.Background(), "c1", schedules)

	require.NoError(t, err)
	assert.Len(t, saved, 2)
}

func TestService_ReplaceSchedules_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		schedules domain.ScheduleSet
	}{
		{
			name: "Dois horários no mesmo dia",
			schedules: domain.ScheduleSet{
				{DayOfWeek: domain.Monday, StartTime: domain.NewTimeOfDay(9, 0, 0), EndTime: domain.NewTimeOfDay(10, 0, 0)},
				{DayOfWeek: domain.Monday, StartTime: domain.NewTimeOfDay(14, 0, 0), EndTime: domain.NewTimeOfDay(15, 0, 0)},
			},
		},
		{
			name: "Início depois do fim",
			schedules: domain.ScheduleSet{
				{DayOfWeek: domain.Monday, StartTime: domain.NewTimeOfDay(22, 0, 0), EndTime: domain.NewTimeOfDay(2, 0, 0)},
			},
		},
		{
			name: "Dia da semana fora do intervalo",
			schedules: domain.ScheduleSet{
				{DayOfWeek: 8, StartTime: domain.NewTimeOfDay(9, 0, 0), EndTime: domain.NewTimeOfDay(10, 0, 0)},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newTestService(t)
			m.campaignRepo.EXPECT().GetByID(gomock.Any(), "c1").Return(&domain.Campaign{ID: "c1"}, nil)

			_, err := service.ReplaceSchedules(context.Background(), "c1", tt.schedules)

			assertCode(t, err, apiErrors.ErrInvalidSchedule)
		})
	}
}

func TestService_ManualTransitions(t *testing.T) {
	base := func(status domain.CampaignStatus) *domain.Campaign {
		return &domain.Campaign{
			ID:            "c1",
			Name:          "Verão",
			Status:        status,
			DailyBudget:   dec("100.00"),
			MonthlyBudget: dec("1000.00"),
			DailySpend:    decimal.Zero,
			MonthlySpend:  decimal.Zero,
			StartDate:     time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		}
	}

	tests := []struct {
		name       string
		stored     *domain.Campaign
		call       func(s *Service) (*domain.Campaign, error)
		wantStatus domain.CampaignStatus
		wantCode   string
	}{
		{
			name:       "Ativar rascunho elegível",
			stored:     base(domain.CampaignStatusDraft),
			call:       func(s *Service) (*domain.Campaign, error) { return s.ActivateCampaign(context.Background(), "c1") },
			wantStatus: domain.CampaignStatusActive,
		},
		{
			name: "Ativar campanha acima do budget é negado",
			stored: func() *domain.Campaign {
				c := base(domain.CampaignStatusPaused)
				c.DailySpend = dec("100.01")
				return c
			}(),
			call:       func(s *Service) (*domain.Campaign, error) { return s.ActivateCampaign(context.Background(), "c1") },
			wantStatus: domain.CampaignStatusPaused,
			wantCode:   apiErrors.ErrInvalidTransition,
		},
		{
			name: "Ativar antes do início é negado",
			stored: func() *domain.Campaign {
				c := base(domain.CampaignStatusDraft)
				c.StartDate = time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
				return c
			}(),
			call:       func(s *Service) (*domain.Campaign, error) { return s.ActivateCampaign(context.Background(), "c1") },
			wantStatus: domain.CampaignStatusDraft,
			wantCode:   apiErrors.ErrInvalidTransition,
		},
		{
			name:       "Pausar campanha ativa",
			stored:     base(domain.CampaignStatusActive),
			call:       func(s *Service) (*domain.Campaign, error) { return s.PauseCampaign(context.Background(), "c1") },
			wantStatus: domain.CampaignStatusPaused,
		},
		{
			name:       "Pausar rascunho é negado",
			stored:     base(domain.CampaignStatusDraft),
			call:       func(s *Service) (*domain.Campaign, error) { return s.PauseCampaign(context.Background(), "c1") },
			wantStatus: domain.CampaignStatusDraft,
			wantCode:   apiErrors.ErrInvalidTransition,
		},
		{
			name:       "Concluir campanha pausada",
			stored:     base(domain.CampaignStatusPaused),
			call:       func(s *Service) (*domain.Campaign, error) { return s.CompleteCampaign(context.Background(), "c1") },
			wantStatus: domain.CampaignStatusCompleted,
		},
		{
			name:       "Campanha concluída não volta a ser ativada",
			stored:     base(domain.CampaignStatusCompleted),
			call:       func(s *Service) (*domain.Campaign, error) { return s.ActivateCampaign(context.Background(), "c1") },
			wantStatus: domain.CampaignStatusCompleted,
			wantCode:   apiErrors.ErrInvalidTransition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newTestService(t)

			m.campaignRepo.EXPECT().
				Mutate(gomock.Any(), "c1", gomock.Any()).
				DoAndReturn(applyMutation(tt.stored))

			campaign, err := tt.call(service)

			assert.Equal(t, tt.wantStatus, tt.stored.Status)
			if tt.wantCode != "" {
				assert.Nil(t, campaign)
				assertCode(t, err, tt.wantCode)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, campaign.Status)
		})
	}
}

func TestService_ManualTransition_NotFound(t *testing.T) {
	service, m := newTestService(t)

	m.campaignRepo.EXPECT().Mutate(gomock.Any(), "missing", gomock.Any()).Return(nil, false, domain.ErrCampaignNotFound)

	_, err := service.PauseCampaign(context.Background(), "missing")

	assertCode(t, err, apiErrors.ErrCampaignNotFound)
}

func TestService_GetSpendReport(t *testing.T) {
	service, m := newTestService(t)

	campaigns := []*domain.Campaign{
		{ID: "c1", Status: domain.CampaignStatusActive, DailySpend: dec("10.50"), MonthlySpend: dec("100.25")},
		{ID: "c2", Status: domain.CampaignStatusPaused, DailySpend: dec("20.00"), MonthlySpend: dec("200.00")},
		{ID: "c3", Status: domain.CampaignStatusPaused, DailySpend: dec("0.10"), MonthlySpend: dec("0.20")},
		{ID: "c4", Status: domain.CampaignStatusDraft, DailySpend: decimal.Zero, MonthlySpend: decimal.Zero},
	}
	brands := []*domain.BrandSpend{
		{BrandID: "b1", BrandName: "Acme", TotalDailySpend: dec("30.60"), TotalMonthlySpend: dec("300.45")},
	}

	m.campaignRepo.EXPECT().ListByStatus(gomock.Any(), allStatuses).Return(campaigns, nil)
	m.campaignRepo.EXPECT().SpendByBrand(gomock.Any(), (*string)(nil)).Return(brands, nil)

	report, err := service.GetSpendReport(context.Background(), nil)

	require.NoError(t, err)
	assert.Nil(t, report.BrandID)
	assert.Equal(t, 4, report.TotalCampaigns)
	assert.Equal(t, 1, report.ActiveCampaigns)
	assert.Equal(t, 2, report.PausedCampaigns)
	assert.Equal(t, "30.60", report.TotalDailySpend.StringFixed(2))
	assert.Equal(t, "300.45", report.TotalMonthlySpend.StringFixed(2))
	assert.Equal(t, brands, report.Brands)
	assert.Equal(t, fixedNow, report.GeneratedAt)
}

func TestService_GetSpendReport_ByBrand(t *testing.T) {
	service, m := newTestService(t)

	brandID := "b1"
	m.brandRepo.EXPECT().GetByID(gomock.Any(), brandID).Return(&domain.Brand{ID: brandID}, nil)
	m.campaignRepo.EXPECT().ListByBrand(gomock.Any(), brandID).Return([]*domain.Campaign{
		{ID: "c1", Status: domain.CampaignStatusActive, DailySpend: dec("5.00"), MonthlySpend: dec("5.00")},
	}, nil)
	m.campaignRepo.EXPECT().SpendByBrand(gomock.Any(), &brandID).Return([]*domain.BrandSpend{}, nil)

	report, err := service.GetSpendReport(context.Background(), &brandID)

	require.NoError(t, err)
	require.NotNil(t, report.BrandID)
	assert.Equal(t, "b1", *report.BrandID)
	assert.Equal(t, 1, report.TotalCampaigns)
	assert.Equal(t, 1, report.ActiveCampaigns)
}

func TestCodeFor(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{err: domain.ErrCampaignNotFound, want: apiErrors.ErrCampaignNotFound},
		{err: domain.ErrBrandNotFound, want: apiErrors.ErrBrandNotFound},
		{err: domain.ErrInvalidAmount, want: apiErrors.ErrInvalidAmount},
		{err: errors.Join(domain.ErrInvariantViolation, errors.New("x")), want: apiErrors.ErrInvariantViolation},
		{err: NewCampaignError(errors.New("x"), apiErrors.ErrInvalidFormat, ""), want: apiErrors.ErrInvalidFormat},
		{err: errors.New("boom"), want: apiErrors.ErrDatabaseOperation},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, CodeFor(tt.err))
		})
	}
}
