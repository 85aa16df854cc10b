package handler

import (
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-control-api/internal/usecases/campaigning"
	"github.com/vfg2006/campaign-control-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("Erro ao enviar resposta")
	}
}

// writeCampaignError traduz erros dos casos de uso de campanha para a resposta padronizada
func writeCampaignError(w http.ResponseWriter, err error, fallback string) {
	code := campaigning.CodeFor(err)

	var campaignErr *campaigning.CampaignError
	if errors.As(err, &campaignErr) {
		details := map[string]any{}
		if campaignErr.CampaignID != "" {
			details["campaign_id"] = campaignErr.CampaignID
		}
		message := campaignErr.Details
		if message == "" {
			message = fallback
		}
		if len(details) == 0 {
			apiErrors.WriteError(w, code, message, nil)
			return
		}
		apiErrors.WriteError(w, code, message, details)
		return
	}

	apiErrors.WriteError(w, code, fallback, nil)
}

func pathParam(r *http.Request, name string) string {
	return httprouter.ParamsFromContext(r.Context()).ByName(name)
}

// splitQuery aceita tanto ?status=a,b quanto ?status=a&status=b
func splitQuery(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
