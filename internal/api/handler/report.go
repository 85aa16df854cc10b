package handler

import (
	"net/http"

	"github.com/vfg2006/campaign-control-api/internal/usecases/campaigning"
)

// GetSpendReport consolida gastos e contagens, opcionalmente filtrando por ?brand_id=
func GetSpendReport(service campaigning.CampaignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var brandID *string
		if raw := r.URL.Query().Get("brand_id"); raw != "" {
			brandID = &raw
		}

		report, err := service.GetSpendReport(r.Context(), brandID)
		if err != nil {
			writeCampaignError(w, err, "Erro ao gerar relatório de gastos")
			return
		}

		writeJSON(w, http.StatusOK, report)
	}
}
