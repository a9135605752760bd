package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/marketing-copilot-api/internal/domain"
	"github.com/vfg2006/marketing-copilot-api/internal/usecases/detecting"
	"github.com/vfg2006/marketing-copilot-api/pkg/apiErrors"
	"github.com/vfg2006/marketing-copilot-api/pkg/log"
	"github.com/vfg2006/marketing-copilot-api/pkg/middleware"
)

// ListInsights devolve os insights ativos do usuário logado, mais recentes primeiro
func ListInsights(service detecting.InsightReader) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var limit uint64
		if rawLimit := r.URL.Query().Get("limit"); rawLimit != "" {
			parsed, err := strconv.ParseUint(rawLimit, 10, 64)
			if err != nil {
				logger.WithFields(log.Fields{
					"limit": rawLimit,
					"error": err.Error(),
				}).Warn("insights: parâmetro limit inválido")

				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro limit inválido", nil)
				return
			}
			limit = parsed
		}

		insights, err := service.ListActiveInsights(userClaims.UserID, limit)
		if err != nil {
			logger.WithFields(log.Fields{
				"user_id": userClaims.UserID,
				"error":   err.Error(),
			}).Error("insights: erro ao listar insights ativos")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar insights", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(insights); err != nil {
			logger.WithError(err).Error("insights: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// DismissInsight descarta um insight do usuário logado. Repetir o descarte é um no-op.
func DismissInsight(service detecting.InsightReader) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		insightID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if insightID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do insight não fornecido", nil)
			return
		}

		if err := service.DismissInsight(userClaims.UserID, insightID); err != nil {
			if errors.Is(err, detecting.ErrInsightNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrInsightNotFound, "Insight não encontrado", nil)
				return
			}

			logger.WithFields(log.Fields{
				"user_id":    userClaims.UserID,
				"insight_id": insightID,
				"error":      err.Error(),
			}).Error("insights: erro ao descartar insight")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao descartar insight", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
