package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-control-api/internal/domain"
	"github.com/vfg2006/campaign-control-api/internal/usecases/campaigning"
	"github.com/vfg2006/campaign-control-api/pkg/apiErrors"
)

func CreateBrand(service campaigning.CampaignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateBrand")

		var request domain.CreateBrandRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		created, err := service.CreateBrand(r.Context(), request.Brand())
		if err != nil {
			writeCampaignError(w, err, "Erro ao criar marca")
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

func ListBrands(service campaigning.CampaignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		brands, err := service.ListBrands(r.Context())
		if err != nil {
			writeCampaignError(w, err, "Erro ao listar marcas")
			return
		}

		writeJSON(w, http.StatusOK, brands)
	}
}

func GetBrand(service campaigning.CampaignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		brand, err := service.GetBrand(r.Context(), pathParam(r, "id"))
		if err != nil {
			writeCampaignError(w, err, "Erro ao buscar marca")
			return
		}

		writeJSON(w, http.StatusOK, brand)
	}
}

func UpdateBrand(service campaigning.CampaignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateBrand")

		var request domain.UpdateBrandRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}
		request.ID = pathParam(r, "id")

		brand, err := service.UpdateBrand(r.Context(), &request)
		if err != nil {
			writeCampaignError(w, err, "Erro ao atualizar marca")
			return
		}

		writeJSON(w, http.StatusOK, brand)
	}
}

// DeleteBrand remove a marca junto com suas campanhas, janelas e lançamentos
func DeleteBrand(service campaigning.CampaignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteBrand")

		if err := service.DeleteBrand(r.Context(), pathParam(r, "id")); err != nil {
			writeCampaignError(w, err, "Erro ao remover marca")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
