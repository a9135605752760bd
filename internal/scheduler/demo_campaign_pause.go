package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-copilot-api/infrastructure/integrator/googleads"
	"github.com/vfg2006/marketing-copilot-api/infrastructure/repository"
	"github.com/vfg2006/marketing-copilot-api/internal/config"
	"github.com/vfg2006/marketing-copilot-api/internal/domain"
)

// DemoCampaignPauseConfig representa a configuração do agendador de pausa de campanhas demo
type DemoCampaignPauseConfig struct {
	CronSchedule string
	MaxAgeHours  int
	Enabled      bool
}

// DemoCampaignPauseService pausa campanhas demo que passaram do tempo máximo
// de exibição. Campanhas demo são criadas pelo assistente para demonstração e
// não devem ficar ativas indefinidamente.
type DemoCampaignPauseService struct {
	scheduler    *gocron.Scheduler
	config       DemoCampaignPauseConfig
	campaignRepo repository.CampaignRepository
	accountRepo  repository.AccountRepository
	adsService   googleads.GoogleAdsIntegrator
	pauseRunning bool
	pauseMutex   sync.Mutex
}

// NewDemoCampaignPauseService cria uma nova instância do serviço de pausa de campanhas demo
func NewDemoCampaignPauseService(
	campaignRepo repository.CampaignRepository,
	accountRepo repository.AccountRepository,
	adsService googleads.GoogleAdsIntegrator,
	appConfig *config.Config,
) *DemoCampaignPauseService {
	pauseConfig := DemoCampaignPauseConfig{
		CronSchedule: appConfig.DemoCampaignPause.CronSchedule,
		MaxAgeHours:  appConfig.DemoCampaignPause.MaxAgeHours,
		Enabled:      appConfig.DemoCampaignPause.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": pauseConfig.CronSchedule,
		"max_age_hours": pauseConfig.MaxAgeHours,
		"enabled":       pauseConfig.Enabled,
	}).Info("Configuração do agendador de pausa de campanhas demo carregada")

	return &DemoCampaignPauseService{
		scheduler:    scheduler,
		config:       pauseConfig,
		campaignRepo: campaignRepo,
		accountRepo:  accountRepo,
		adsService:   adsService,
	}
}

// Start inicia o agendador
func (s *DemoCampaignPauseService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Pausa automática de campanhas demo desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de pausa de campanhas demo")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.pauseExpiredDemoCampaigns()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar pausa de campanhas demo: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de pausa de campanhas demo")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualPause dispara uma varredura fora do cron, em uma goroutine própria
func (s *DemoCampaignPauseService) TriggerManualPause() {
	go s.pauseExpiredDemoCampaigns()
}

// pauseExpiredDemoCampaigns pausa as campanhas demo criadas antes do corte
func (s *DemoCampaignPauseService) pauseExpiredDemoCampaigns() {
	s.pauseMutex.Lock()
	if s.pauseRunning {
		s.pauseMutex.Unlock()
		logrus.Info("Varredura de campanhas demo já em andamento, ignorando")
		return
	}
	s.pauseRunning = true
	s.pauseMutex.Unlock()

	defer func() {
		s.pauseMutex.Lock()
		s.pauseRunning = false
		s.pauseMutex.Unlock()
	}()

	cutoff := time.Now().Add(-time.Duration(s.config.MaxAgeHours) * time.Hour)

	campaigns, err := s.campaignRepo.ListDemoEnabledBefore(cutoff)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar campanhas demo expiradas")
		return
	}

	if len(campaigns) == 0 {
		return
	}

	logrus.WithField("campaigns", len(campaigns)).Info("Pausando campanhas demo expiradas")

	paused := 0
	for _, campaign := range campaigns {
		account, err := s.accountRepo.GetAccountByID(campaign.AccountID)
		if err != nil || account == nil {
			logrus.WithFields(logrus.Fields{
				"campaign_id": campaign.ID,
				"account_id":  campaign.AccountID,
			}).Warn("Conta da campanha demo não encontrada, pulando")
			continue
		}

		if err := s.adsService.PauseCampaign(account, campaign.ExternalID); err != nil {
			logrus.WithError(err).WithField("campaign_id", campaign.ID).Error("Erro ao pausar campanha demo na API")
			continue
		}

		if err := s.campaignRepo.UpdateStatus(campaign.ID, domain.CampaignStatusPaused); err != nil {
			logrus.WithError(err).WithField("campaign_id", campaign.ID).Error("Erro ao atualizar status da campanha demo no cache")
			continue
		}

		paused++
	}

	logrus.WithFields(logrus.Fields{
		"expired": len(campaigns),
		"paused":  paused,
	}).Info("Varredura de campanhas demo concluída")
}
