package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-copilot-api/internal/domain"
	"github.com/vfg2006/marketing-copilot-api/internal/usecases/campaigning"
	"github.com/vfg2006/marketing-copilot-api/pkg/apiErrors"
)

// CampaignList lista as campanhas da conta a partir do cache local
func CampaignList(service campaigning.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if accountID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta não fornecido", nil)
			return
		}

		campaigns, err := service.ListCampaigns(accountID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar campanhas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(campaigns); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// CampaignMetrics devolve o snapshot de métricas mais recente da campanha
func CampaignMetrics(service campaigning.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())
		accountID := params.ByName("id")
		campaignID := params.ByName("campaignId")

		if accountID == "" || campaignID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "IDs de conta e campanha são obrigatórios", nil)
			return
		}

		snapshot, err := service.GetCampaignMetrics(accountID, campaignID)
		if err != nil {
			handleCampaignError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(snapshot); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// CreateCampaign cria uma campanha pausada na conta via API do Google Ads
func CreateCampaign(service campaigning.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if accountID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta não fornecido", nil)
			return
		}

		var request domain.CreateCampaignRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}
		request.AccountID = accountID

		campaign, err := service.CreateCampaign(&request)
		if err != nil {
			handleCampaignError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(campaign); err != nil {
			logrus.Error(err)
		}
	})
}

// PauseCampaign pausa uma campanha da conta
func PauseCampaign(service campaigning.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())
		accountID := params.ByName("id")
		campaignID := params.ByName("campaignId")

		if accountID == "" || campaignID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "IDs de conta e campanha são obrigatórios", nil)
			return
		}

		if err := service.PauseCampaign(accountID, campaignID); err != nil {
			handleCampaignError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

// handleCampaignError traduz erros do caso de uso de campanhas para a resposta da API
func handleCampaignError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, campaigning.ErrAccountNotFound):
		apiErrors.WriteError(w, apiErrors.ErrAccountNotFound, "Conta não encontrada", nil)

	case errors.Is(err, campaigning.ErrCampaignNotFound):
		apiErrors.WriteError(w, apiErrors.ErrCampaignNotFound, "Campanha não encontrada", nil)

	case errors.Is(err, campaigning.ErrMetricsNotFound):
		apiErrors.WriteError(w, apiErrors.ErrCampaignNotFound, "Campanha ainda não possui métricas coletadas", nil)

	case errors.Is(err, campaigning.ErrMissingData):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)

	default:
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao comunicar com a API do Google Ads", nil)
	}
}
