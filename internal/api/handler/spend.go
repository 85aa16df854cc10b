package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/vfg2006/campaign-control-api/internal/domain"
	"github.com/vfg2006/campaign-control-api/internal/usecases/campaigning"
	"github.com/vfg2006/campaign-control-api/internal/usecases/spending"
	"github.com/vfg2006/campaign-control-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-control-api/pkg/log"
)

// AddSpend registra um gasto na campanha. Em caso de erro o corpo traz o
// resultado com status "error" ao lado do código padronizado.
func AddSpend(service spending.Spender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		campaignID := pathParam(r, "id")
		logger := log.ForContext(r.Context()).WithField("campaign_id", campaignID)
		logger.Info("INIT - AddSpend")

		var request domain.AddSpendRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidAmount, "Valor de gasto inválido", nil)
			return
		}

		result, err := service.AddCampaignSpend(r.Context(), campaignID, request.Amount, request.Description)
		if err != nil {
			if result == nil {
				writeCampaignError(w, err, "Erro ao adicionar gasto")
				return
			}
			logger.WithError(err).Warn("Gasto recusado")
			apiErrors.WriteError(w, campaigning.CodeFor(err), result.Message, result)
			return
		}

		if result.Paused {
			logger.Info("Campanha pausada após estourar o orçamento")
		}

		writeJSON(w, http.StatusCreated, result)
	}
}

func ListSpendLogs(service spending.Spender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var limit uint64
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.ParseUint(raw, 10, 64)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro limit inválido", nil)
				return
			}
			limit = parsed
		}

		logs, err := service.ListSpendLogs(r.Context(), pathParam(r, "id"), limit)
		if err != nil {
			writeCampaignError(w, err, "Erro ao listar lançamentos")
			return
		}

		writeJSON(w, http.StatusOK, logs)
	}
}

// GetSpendTotal soma os lançamentos da campanha desde ?since (RFC3339).
// Sem o parâmetro, considera as últimas 24 horas.
func GetSpendTotal(service spending.Spender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		campaignID := pathParam(r, "id")

		since := time.Now().Add(-24 * time.Hour)
		if raw := r.URL.Query().Get("since"); raw != "" {
			parsed, err := time.Parse(time.RFC3339, raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro since deve estar no formato RFC3339", nil)
				return
			}
			since = parsed
		}

		total, err := service.SumSpendSince(r.Context(), campaignID, since)
		if err != nil {
			writeCampaignError(w, err, "Erro ao somar lançamentos")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"campaign_id": campaignID,
			"since":       since,
			"total":       total,
		})
	}
}
