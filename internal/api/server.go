package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-copilot-api/internal/api/handler"
	"github.com/vfg2006/marketing-copilot-api/internal/api/handler/router"
	"github.com/vfg2006/marketing-copilot-api/internal/config"
	"github.com/vfg2006/marketing-copilot-api/internal/scheduler"
	"github.com/vfg2006/marketing-copilot-api/internal/usecases/account"
	"github.com/vfg2006/marketing-copilot-api/internal/usecases/authenticating"
	"github.com/vfg2006/marketing-copilot-api/internal/usecases/campaigning"
	"github.com/vfg2006/marketing-copilot-api/internal/usecases/detecting"
	"github.com/vfg2006/marketing-copilot-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	insightService detecting.Insighter,
	accountService account.AccountService,
	campaignService campaigning.CampaignService,
	authenticator authenticating.Authenticator,
	metricsSyncService *scheduler.MetricsSyncService,
	demoCampaignPauseService *scheduler.DemoCampaignPauseService,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		MetricsSyncService:       metricsSyncService,
		DemoCampaignPauseService: demoCampaignPauseService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.Insights(insightService)...),
		router.WithRoutes(handler.AdAccounts(accountService)...),
		router.WithRoutes(handler.Campaigns(campaignService)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(authenticator),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Aguardar sinal de término ou cancelamento do contexto
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
