package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-control-api/internal/api/handler/router"
	"github.com/vfg2006/campaign-control-api/internal/domain"
	"github.com/vfg2006/campaign-control-api/internal/scheduler"
	"github.com/vfg2006/campaign-control-api/internal/usecases/authenticating"
	authmocks "github.com/vfg2006/campaign-control-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/campaign-control-api/internal/usecases/campaigning"
	campaignmocks "github.com/vfg2006/campaign-control-api/internal/usecases/campaigning/mocks"
	spendmocks "github.com/vfg2006/campaign-control-api/internal/usecases/spending/mocks"
	"github.com/vfg2006/campaign-control-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-control-api/pkg/middleware"
	"go.uber.org/mock/gomock"
)

var (
	adminClaims      = &domain.Claims{UserID: 1, UserRoleID: domain.RoleAdmin, UserActive: true}
	supervisorClaims = &domain.Claims{UserID: 2, UserRoleID: domain.RoleSupervisor, UserActive: true}
	viewerClaims     = &domain.Claims{UserID: 3, UserRoleID: domain.RoleViewer, UserActive: true}
)

func serve(routes []router.Route, claims *domain.Claims, method, target, body string) *httptest.ResponseRecorder {
	rt := router.New(router.WithRoutes(routes...))

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if claims != nil {
		req = req.WithContext(context.WithValue(req.Context(), middleware.ContextKeyUser, claims))
	}

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)
	return rec
}

func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()
	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

func sampleCampaign(status domain.CampaignStatus) *domain.Campaign {
	return &domain.Campaign{
		ID:            "c1",
		BrandID:       "b1",
		Name:          "Verão",
		Status:        status,
		DailyBudget:   decimal.RequireFromString("100.00"),
		MonthlyBudget: decimal.RequireFromString("1000.00"),
		StartDate:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestCampaignHandlers(t *testing.T) {
	tests := []struct {
		name       string
		claims     *domain.Claims
		method     string
		target     string
		body       string
		setup      func(m *campaignmocks.MockCampaignService)
		wantStatus int
		wantCode   string
	}{
		{
			name:   "Cria campanha em rascunho",
			claims: supervisorClaims,
			method: http.MethodPost,
			target: "/v1/campaigns",
			body:   `{"brand_id":"b1","name":"Verão","daily_budget":"100.00","monthly_budget":"1000.00","start_date":"2024-01-01"}`,
			setup: func(m *campaignmocks.MockCampaignService) {
				m.EXPECT().CreateCampaign(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, req *domain.CreateCampaignRequest) (*domain.Campaign, error) {
						assert.Equal(t, "b1", req.BrandID)
						assert.True(t, req.DailyBudget.Equal(decimal.RequireFromString("100")))
						return sampleCampaign(domain.CampaignStatusDraft), nil
					})
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:   "Budget inválido na criação",
			claims: adminClaims,
			method: http.MethodPost,
			target: "/v1/campaigns",
			body:   `{"brand_id":"b1","name":"Verão","daily_budget":"0","monthly_budget":"1000.00","start_date":"2024-01-01"}`,
			setup: func(m *campaignmocks.MockCampaignService) {
				m.EXPECT().CreateCampaign(gomock.Any(), gomock.Any()).
					Return(nil, campaigning.NewCampaignError(domain.ErrInvalidBudget, apiErrors.ErrInvalidBudget, "budget diário deve ser positivo"))
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidBudget,
		},
		{
			name:       "Corpo inválido na criação",
			claims:     adminClaims,
			method:     http.MethodPost,
			target:     "/v1/campaigns",
			body:       `{`,
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidRequest,
		},
		{
			name:   "Lista filtrando por marca e status",
			claims: viewerClaims,
			method: http.MethodGet,
			target: "/v1/campaigns?brand_id=b1&status=active,paused",
			setup: func(m *campaignmocks.MockCampaignService) {
				m.EXPECT().
					ListCampaigns(gomock.Any(), "b1", []domain.CampaignStatus{domain.CampaignStatusActive, domain.CampaignStatusPaused}).
					Return([]*domain.Campaign{sampleCampaign(domain.CampaignStatusActive)}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "Status de filtro desconhecido",
			claims:     viewerClaims,
			method:     http.MethodGet,
			target:     "/v1/campaigns?status=archived",
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidFormat,
		},
		{
			name:   "Campanha inexistente",
			claims: viewerClaims,
			method: http.MethodGet,
			target: "/v1/campaigns/nao-existe",
			setup: func(m *campaignmocks.MockCampaignService) {
				m.EXPECT().GetCampaign(gomock.Any(), "nao-existe").Return(nil, domain.ErrCampaignNotFound)
			},
			wantStatus: http.StatusNotFound,
			wantCode:   apiErrors.ErrCampaignNotFound,
		},
		{
			name:   "Ativação não permitida",
			claims: supervisorClaims,
			method: http.MethodPost,
			target: "/v1/campaigns/c1/activate",
			setup: func(m *campaignmocks.MockCampaignService) {
				m.EXPECT().ActivateCampaign(gomock.Any(), "c1").
					Return(nil, campaigning.NewCampaignErrorWithID(campaigning.ErrInvalidTransition, apiErrors.ErrInvalidTransition, "c1", "campanha fora do período"))
			},
			wantStatus: http.StatusConflict,
			wantCode:   apiErrors.ErrInvalidTransition,
		},
		{
			name:   "Pausa manual",
			claims: supervisorClaims,
			method: http.MethodPost,
			target: "/v1/campaigns/c1/pause",
			setup: func(m *campaignmocks.MockCampaignService) {
				m.EXPECT().PauseCampaign(gomock.Any(), "c1").Return(sampleCampaign(domain.CampaignStatusPaused), nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "Visualizador não pode pausar",
			claims:     viewerClaims,
			method:     http.MethodPost,
			target:     "/v1/campaigns/c1/pause",
			wantStatus: http.StatusForbidden,
			wantCode:   apiErrors.ErrInsufficientPrivilege,
		},
		{
			name:   "Conclui campanha",
			claims: adminClaims,
			method: http.MethodPost,
			target: "/v1/campaigns/c1/complete",
			setup: func(m *campaignmocks.MockCampaignService) {
				m.EXPECT().CompleteCampaign(gomock.Any(), "c1").Return(sampleCampaign(domain.CampaignStatusCompleted), nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "Substitui janelas de veiculação",
			claims: supervisorClaims,
			method: http.MethodPut,
			target: "/v1/campaigns/c1/schedules",
			body:   `[{"day_of_week":1,"start_time":"09:00:00","end_time":"17:00:00","is_active":true}]`,
			setup: func(m *campaignmocks.MockCampaignService) {
				m.EXPECT().ReplaceSchedules(gomock.Any(), "c1", gomock.Len(1)).DoAndReturn(
					func(_ context.Context, _ string, schedules domain.ScheduleSet) (domain.ScheduleSet, error) {
						assert.Equal(t, domain.Monday, schedules[0].DayOfWeek)
						assert.Equal(t, domain.NewTimeOfDay(9, 0, 0), schedules[0].StartTime)
						return schedules, nil
					})
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "Janela inválida",
			claims: supervisorClaims,
			method: http.MethodPut,
			target: "/v1/campaigns/c1/schedules",
			body:   `[]`,
			setup: func(m *campaignmocks.MockCampaignService) {
				m.EXPECT().ReplaceSchedules(gomock.Any(), "c1", gomock.Any()).Return(nil, domain.ErrInvalidSchedule)
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidSchedule,
		},
		{
			name:   "Relatório filtrado por marca",
			claims: viewerClaims,
			method: http.MethodGet,
			target: "/v1/reports/spend?brand_id=b1",
			setup: func(m *campaignmocks.MockCampaignService) {
				m.EXPECT().GetSpendReport(gomock.Any(), gomock.Not(gomock.Nil())).DoAndReturn(
					func(_ context.Context, brandID *string) (*domain.SpendReport, error) {
						assert.Equal(t, "b1", *brandID)
						return &domain.SpendReport{BrandID: brandID, TotalCampaigns: 1}, nil
					})
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "Cria marca ativa quando is_active é omitido",
			claims: adminClaims,
			method: http.MethodPost,
			target: "/v1/brands",
			body:   `{"name":"Acme","description":"Varejo"}`,
			setup: func(m *campaignmocks.MockCampaignService) {
				m.EXPECT().CreateBrand(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, brand *domain.Brand) (*domain.Brand, error) {
						assert.Equal(t, "Acme", brand.Name)
						assert.True(t, brand.IsActive)
						brand.ID = "b1"
						return brand, nil
					})
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:   "Cria marca inativa quando pedido explicitamente",
			claims: adminClaims,
			method: http.MethodPost,
			target: "/v1/brands",
			body:   `{"name":"Acme","is_active":false}`,
			setup: func(m *campaignmocks.MockCampaignService) {
				m.EXPECT().CreateBrand(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, brand *domain.Brand) (*domain.Brand, error) {
						assert.False(t, brand.IsActive)
						return brand, nil
					})
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:   "Remove marca",
			claims: adminClaims,
			method: http.MethodDelete,
			target: "/v1/brands/b1",
			setup: func(m *campaignmocks.MockCampaignService) {
				m.EXPECT().DeleteBrand(gomock.Any(), "b1").Return(nil)
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:   "Atualiza marca inexistente",
			claims: supervisorClaims,
			method: http.MethodPut,
			target: "/v1/brands/b9",
			body:   `{"name":"Nova"}`,
			setup: func(m *campaignmocks.MockCampaignService) {
				m.EXPECT().UpdateBrand(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, req *domain.UpdateBrandRequest) (*domain.Brand, error) {
						assert.Equal(t, "b9", req.ID)
						return nil, domain.ErrBrandNotFound
					})
			},
			wantStatus: http.StatusNotFound,
			wantCode:   apiErrors.ErrBrandNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := campaignmocks.NewMockCampaignService(ctrl)
			if tt.setup != nil {
				tt.setup(service)
			}

			routes := append(Campaigns(service), Brands(service)...)
			routes = append(routes, Reports(service)...)

			rec := serve(routes, tt.claims, tt.method, tt.target, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())

			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeAPIError(t, rec).Code)
			}
		})
	}
}

func TestSpendHandlers(t *testing.T) {
	t.Run("Registra gasto e devolve o novo estado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		spender := spendmocks.NewMockSpender(ctrl)

		spender.EXPECT().AddCampaignSpend(gomock.Any(), "c1", gomock.Any(), "clique").DoAndReturn(
			func(_ context.Context, _ string, amount decimal.Decimal, _ string) (*domain.SpendResult, error) {
				assert.True(t, amount.Equal(decimal.RequireFromString("10.50")))
				return &domain.SpendResult{
					Status:         domain.SpendResultSuccess,
					CampaignID:     "c1",
					CampaignStatus: domain.CampaignStatusPaused,
					DailySpend:     decimal.RequireFromString("105.50"),
					MonthlySpend:   decimal.RequireFromString("105.50"),
					Paused:         true,
				}, nil
			})

		rec := serve(Spend(spender), supervisorClaims, http.MethodPost, "/v1/campaigns/c1/spend", `{"amount":"10.50","description":"clique"}`)
		require.Equal(t, http.StatusCreated, rec.Code)

		var result domain.SpendResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		assert.Equal(t, domain.SpendResultSuccess, result.Status)
		assert.True(t, result.Paused)
		assert.Equal(t, domain.CampaignStatusPaused, result.CampaignStatus)
	})

	t.Run("Valor inválido devolve resultado de erro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		spender := spendmocks.NewMockSpender(ctrl)

		spender.EXPECT().AddCampaignSpend(gomock.Any(), "c1", gomock.Any(), "").Return(
			&domain.SpendResult{Status: domain.SpendResultError, Message: "Valor inválido", CampaignID: "c1"},
			campaigning.NewCampaignErrorWithID(domain.ErrInvalidAmount, apiErrors.ErrInvalidAmount, "c1", "Valor inválido"),
		)

		rec := serve(Spend(spender), supervisorClaims, http.MethodPost, "/v1/campaigns/c1/spend", `{"amount":"-5"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		apiErr := decodeAPIError(t, rec)
		assert.Equal(t, apiErrors.ErrInvalidAmount, apiErr.Code)
		details, ok := apiErr.Details.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "error", details["status"])
	})

	t.Run("Valor não numérico é rejeitado antes do serviço", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		spender := spendmocks.NewMockSpender(ctrl)

		rec := serve(Spend(spender), supervisorClaims, http.MethodPost, "/v1/campaigns/c1/spend", `{"amount":"dez"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidAmount, decodeAPIError(t, rec).Code)
	})

	t.Run("Campanha inexistente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		spender := spendmocks.NewMockSpender(ctrl)

		spender.EXPECT().AddCampaignSpend(gomock.Any(), "c9", gomock.Any(), "").Return(
			&domain.SpendResult{Status: domain.SpendResultError, Message: "Campanha com ID c9 não encontrada", CampaignID: "c9"},
			campaigning.NewCampaignErrorWithID(domain.ErrCampaignNotFound, apiErrors.ErrCampaignNotFound, "c9", "Campanha com ID c9 não encontrada"),
		)

		rec := serve(Spend(spender), adminClaims, http.MethodPost, "/v1/campaigns/c9/spend", `{"amount":"1.00"}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Lista lançamentos com limite", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		spender := spendmocks.NewMockSpender(ctrl)

		spender.EXPECT().ListSpendLogs(gomock.Any(), "c1", uint64(5)).Return([]*domain.SpendLog{{ID: "l1", CampaignID: "c1"}}, nil)

		rec := serve(Spend(spender), viewerClaims, http.MethodGet, "/v1/campaigns/c1/spend-logs?limit=5", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var logs []*domain.SpendLog
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &logs))
		assert.Len(t, logs, 1)
	})

	t.Run("Limite inválido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		spender := spendmocks.NewMockSpender(ctrl)

		rec := serve(Spend(spender), viewerClaims, http.MethodGet, "/v1/campaigns/c1/spend-logs?limit=abc", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidFormat, decodeAPIError(t, rec).Code)
	})

	t.Run("Total gasto desde uma data", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		spender := spendmocks.NewMockSpender(ctrl)

		since := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		spender.EXPECT().SumSpendSince(gomock.Any(), "c1", since).Return(decimal.RequireFromString("42.50"), nil)

		rec := serve(Spend(spender), viewerClaims, http.MethodGet, "/v1/campaigns/c1/spend-total?since=2024-01-01T00:00:00Z", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"total":"42.5"`)
	})

	t.Run("Total de campanha inexistente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		spender := spendmocks.NewMockSpender(ctrl)

		spender.EXPECT().SumSpendSince(gomock.Any(), "c9", gomock.Any()).Return(decimal.Zero,
			campaigning.NewCampaignErrorWithID(domain.ErrCampaignNotFound, apiErrors.ErrCampaignNotFound, "c9", "Campanha com ID c9 não encontrada"))

		rec := serve(Spend(spender), viewerClaims, http.MethodGet, "/v1/campaigns/c9/spend-total", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, apiErrors.ErrCampaignNotFound, decodeAPIError(t, rec).Code)
	})

	t.Run("Parâmetro since inválido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		spender := spendmocks.NewMockSpender(ctrl)

		rec := serve(Spend(spender), viewerClaims, http.MethodGet, "/v1/campaigns/c1/spend-total?since=ontem", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidFormat, decodeAPIError(t, rec).Code)
	})
}

type fakeCronJob struct {
	result   any
	err      error
	asyncErr error
	triggers int
}

func (f *fakeCronJob) RunNow(context.Context) (any, error) { return f.result, f.err }

func (f *fakeCronJob) TriggerManualSync() error {
	f.triggers++
	return f.asyncErr
}

func (f *fakeCronJob) GetStatus() map[string]any {
	return map[string]any{"sync_enabled": true}
}

func TestCronHandlers(t *testing.T) {
	tests := []struct {
		name       string
		job        *fakeCronJob
		claims     *domain.Claims
		target     string
		wantStatus int
		wantCode   string
	}{
		{
			name:       "Execução síncrona devolve o resumo",
			job:        &fakeCronJob{result: &domain.BudgetCheckSummary{CheckedCount: 4, PausedCount: 1}},
			claims:     supervisorClaims,
			target:     "/v1/cron/jobs/check-campaign-budgets/run",
			wantStatus: http.StatusOK,
		},
		{
			name:       "Execução assíncrona é aceita",
			job:        &fakeCronJob{},
			claims:     adminClaims,
			target:     "/v1/cron/jobs/check-campaign-budgets/run?async=true",
			wantStatus: http.StatusAccepted,
		},
		{
			name:       "Job já em execução",
			job:        &fakeCronJob{err: scheduler.ErrJobAlreadyRunning},
			claims:     adminClaims,
			target:     "/v1/cron/jobs/check-campaign-budgets/run",
			wantStatus: http.StatusConflict,
			wantCode:   apiErrors.ErrJobAlreadyRunning,
		},
		{
			name:       "Falha de armazenamento aborta o job",
			job:        &fakeCronJob{err: errors.New("conexão perdida")},
			claims:     adminClaims,
			target:     "/v1/cron/jobs/check-campaign-budgets/run",
			wantStatus: http.StatusInternalServerError,
			wantCode:   apiErrors.ErrJobExecutionFailure,
		},
		{
			name:       "Job desconhecido",
			job:        &fakeCronJob{},
			claims:     adminClaims,
			target:     "/v1/cron/jobs/meta/run",
			wantStatus: http.StatusNotFound,
			wantCode:   apiErrors.ErrUnknownJob,
		},
		{
			name:       "Visualizador não dispara jobs",
			job:        &fakeCronJob{},
			claims:     viewerClaims,
			target:     "/v1/cron/jobs/check-campaign-budgets/run",
			wantStatus: http.StatusForbidden,
			wantCode:   apiErrors.ErrInsufficientPrivilege,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services := CronJobServices{scheduler.JobCheckCampaignBudgets: tt.job}

			rec := serve(CronJobs(services), tt.claims, http.MethodPost, tt.target, "")
			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeAPIError(t, rec).Code)
			}
		})
	}

	t.Run("Status de todos os jobs", func(t *testing.T) {
		services := CronJobServices{
			scheduler.JobCheckCampaignBudgets: &fakeCronJob{},
			scheduler.JobResetDailySpends:     &fakeCronJob{},
		}

		rec := serve(CronJobs(services), adminClaims, http.MethodGet, "/v1/cron/status", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var status map[string]map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
		assert.Len(t, status, 2)
		assert.Equal(t, true, status[scheduler.JobResetDailySpends]["sync_enabled"])
	})
}

func TestAuthenticationHandlers(t *testing.T) {
	t.Run("Login devolve token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		auth := authmocks.NewMockAuthenticator(ctrl)
		auth.EXPECT().LoginUser(gomock.Any(), "ana@agencia.com", "Senha@123").Return("token-jwt", nil)

		rec := serve(Authentication(auth), nil, http.MethodPost, "/v1/login", `{"email":"ana@agencia.com","password":"Senha@123"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "token-jwt")
	})

	t.Run("Credenciais inválidas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		auth := authmocks.NewMockAuthenticator(ctrl)
		auth.EXPECT().LoginUser(gomock.Any(), "ana@agencia.com", "errada").
			Return("", authenticating.NewUserAuthError(authenticating.ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, 7, "Senha incorreta"))

		rec := serve(Authentication(auth), nil, http.MethodPost, "/v1/login", `{"email":"ana@agencia.com","password":"errada"}`)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidCredentials, decodeAPIError(t, rec).Code)
	})

	t.Run("Perfil do usuário logado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		auth := authmocks.NewMockAuthenticator(ctrl)
		auth.EXPECT().GetUserProfile(gomock.Any(), 3).Return(&domain.User{ID: 3, Name: "Leitor"}, nil)

		rec := serve(Authentication(auth), viewerClaims, http.MethodGet, "/v1/me", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Leitor")
	})

	t.Run("Operador comum não vê outro perfil", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		auth := authmocks.NewMockAuthenticator(ctrl)

		rec := serve(User(auth), viewerClaims, http.MethodGet, "/v1/users/1", "")
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("Apenas administradores criam usuários", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		auth := authmocks.NewMockAuthenticator(ctrl)

		rec := serve(User(auth), supervisorClaims, http.MethodPost, "/v1/users", `{"email":"x@y.com"}`)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
