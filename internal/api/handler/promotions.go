package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/app-store-api/internal/domain"
	"github.com/vfg2006/app-store-api/internal/usecases/promoting"
	"github.com/vfg2006/app-store-api/pkg/apiErrors"
)

func CreateCampaign(service promoting.CampaignManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateCampaign")

		var req domain.CreateCampaignRequest
		if err := decodeBody(r, &req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		campaign, err := service.Create(r.Context(), req)
		if err != nil {
			handleServiceError(w, err, "Erro ao criar campanha")
			return
		}

		writeJSON(w, http.StatusCreated, campaign)
	}
}

// ToggleCampaign grava o is_active informado ou inverte o valor atual quando ausente
func ToggleCampaign(service promoting.CampaignManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ToggleCampaign")

		var req domain.ToggleCampaignRequest
		if err := decodeBody(r, &req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		campaign, err := service.Toggle(r.Context(), id, req)
		if err != nil {
			handleServiceError(w, err, "Erro ao alterar campanha")
			return
		}

		writeJSON(w, http.StatusOK, campaign)
	}
}

func ListActiveCampaigns(service promoting.CampaignManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		campaigns, err := service.Active(r.Context(), r.URL.Query().Get("placement"))
		if err != nil {
			handleServiceError(w, err, "Erro ao listar campanhas")
			return
		}

		writeJSON(w, http.StatusOK, campaigns)
	}
}

func ListAppCampaigns(service promoting.CampaignManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		appID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		campaigns, err := service.ByApp(r.Context(), appID)
		if err != nil {
			handleServiceError(w, err, "Erro ao listar campanhas do app")
			return
		}

		writeJSON(w, http.StatusOK, campaigns)
	}
}
