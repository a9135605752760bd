package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-copilot-api/internal/domain"
	"github.com/vfg2006/marketing-copilot-api/internal/scheduler"
	"github.com/vfg2006/marketing-copilot-api/pkg/apiErrors"
	"github.com/vfg2006/marketing-copilot-api/pkg/middleware"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeMetrics   = "metrics"
	CronJobTypeDemoPause = "demo-pause"
	CronJobTypeAll       = "all"
)

// CronJobServices contém os serviços de cron necessários para execução manual
type CronJobServices struct {
	MetricsSyncService       *scheduler.MetricsSyncService
	DemoCampaignPauseService *scheduler.DemoCampaignPauseService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Apenas administradores podem executar cron jobs
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != middleware.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem executar cron jobs", nil)
			return
		}

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeMetrics:
			if services.MetricsSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização de métricas não disponível", nil)
				return
			}
			services.MetricsSyncService.TriggerManualSync()

		case CronJobTypeDemoPause:
			if services.DemoCampaignPauseService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de pausa de campanhas demo não disponível", nil)
				return
			}
			services.DemoCampaignPauseService.TriggerManualPause()

		case CronJobTypeAll:
			if services.MetricsSyncService != nil {
				services.MetricsSyncService.TriggerManualSync()
			}
			if services.DemoCampaignPauseService != nil {
				services.DemoCampaignPauseService.TriggerManualPause()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job desconhecido", nil)
			return
		}

		logrus.WithField("cron_type", cronType).Info("Cron job disparada manualmente")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"status": "triggered",
			"type":   cronType,
		})
	}
}
