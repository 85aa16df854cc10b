package handler

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-control-api/internal/domain"
	"github.com/vfg2006/campaign-control-api/internal/usecases/campaigning"
	"github.com/vfg2006/campaign-control-api/pkg/apiErrors"
)

func CreateCampaign(service campaigning.CampaignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateCampaign")

		var request domain.CreateCampaignRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		campaign, err := service.CreateCampaign(r.Context(), &request)
		if err != nil {
			writeCampaignError(w, err, "Erro ao criar campanha")
			return
		}

		writeJSON(w, http.StatusCreated, campaign)
	}
}

// ListCampaigns aceita os filtros ?brand_id= e ?status=active,paused
func ListCampaigns(service campaigning.CampaignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		statuses := make([]domain.CampaignStatus, 0)
		for _, raw := range splitQuery(query["status"]) {
			status := domain.CampaignStatus(raw)
			if !status.IsValid() {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Status de campanha inválido", map[string]any{"status": raw})
				return
			}
			statuses = append(statuses, status)
		}

		campaigns, err := service.ListCampaigns(r.Context(), query.Get("brand_id"), statuses)
		if err != nil {
			writeCampaignError(w, err, "Erro ao listar campanhas")
			return
		}

		writeJSON(w, http.StatusOK, campaigns)
	}
}

func GetCampaign(service campaigning.CampaignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		campaign, err := service.GetCampaign(r.Context(), pathParam(r, "id"))
		if err != nil {
			writeCampaignError(w, err, "Erro ao buscar campanha")
			return
		}

		writeJSON(w, http.StatusOK, campaign)
	}
}

type campaignTransition func(ctx context.Context, campaignID string) (*domain.Campaign, error)

func transitionHandler(name string, transition campaignTransition) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		campaignID := pathParam(r, "id")
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaignID,
			"transition":  name,
		}).Info("INIT - CampaignTransition")

		campaign, err := transition(r.Context(), campaignID)
		if err != nil {
			writeCampaignError(w, err, "Erro ao alterar status da campanha")
			return
		}

		writeJSON(w, http.StatusOK, campaign)
	}
}

func ActivateCampaign(service campaigning.CampaignService) http.HandlerFunc {
	return transitionHandler("activate", service.ActivateCampaign)
}

func PauseCampaign(service campaigning.CampaignService) http.HandlerFunc {
	return transitionHandler("pause", service.PauseCampaign)
}

func CompleteCampaign(service campaigning.CampaignService) http.HandlerFunc {
	return transitionHandler("complete", service.CompleteCampaign)
}

func ListSchedules(service campaigning.CampaignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		schedules, err := service.ListSchedules(r.Context(), pathParam(r, "id"))
		if err != nil {
			writeCampaignError(w, err, "Erro ao listar janelas de veiculação")
			return
		}

		writeJSON(w, http.StatusOK, schedules)
	}
}

// ReplaceSchedules substitui todas as janelas da campanha; dias omitidos são removidos
func ReplaceSchedules(service campaigning.CampaignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ReplaceSchedules")

		var schedules domain.ScheduleSet
		if err := json.NewDecoder(r.Body).Decode(&schedules); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		saved, err := service.ReplaceSchedules(r.Context(), pathParam(r, "id"), schedules)
		if err != nil {
			writeCampaignError(w, err, "Erro ao salvar janelas de veiculação")
			return
		}

		writeJSON(w, http.StatusOK, saved)
	}
}
