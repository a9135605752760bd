package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-copilot-api/infrastructure/integrator/googleads"
	"github.com/vfg2006/marketing-copilot-api/infrastructure/integrator/openai"
	"github.com/vfg2006/marketing-copilot-api/infrastructure/repository"
	"github.com/vfg2006/marketing-copilot-api/internal/config"
	"github.com/vfg2006/marketing-copilot-api/internal/domain"
	"github.com/vfg2006/marketing-copilot-api/internal/usecases/campaigning"
	"github.com/vfg2006/marketing-copilot-api/internal/usecases/detecting"
)

// MetricsSyncConfig representa a configuração do agendador de sincronização de métricas
type MetricsSyncConfig struct {
	CronSchedule        string
	RequestDelaySeconds int
	MaxConcurrentJobs   int
	RetentionDays       int
	SyncEnabled         bool
}

// MetricsSyncService coleta as métricas do dia de cada conta ativa, atualiza o
// cache de snapshots e roda os detectores de insights sobre o resultado.
type MetricsSyncService struct {
	scheduler           *gocron.Scheduler
	config              MetricsSyncConfig
	appConfig           *config.Config
	accountRepo         repository.AccountRepository
	snapshotRepo        repository.MetricSnapshotRepository
	campaignRepo        repository.CampaignRepository
	adsService          googleads.GoogleAdsIntegrator
	campaignService     campaigning.CampaignService
	insighter           detecting.Insighter
	recommender         openai.Recommender
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewMetricsSyncService cria uma nova instância do serviço de sincronização de métricas
func NewMetricsSyncService(
	accountRepo repository.AccountRepository,
	snapshotRepo repository.MetricSnapshotRepository,
	campaignRepo repository.CampaignRepository,
	adsService googleads.GoogleAdsIntegrator,
	campaignService campaigning.CampaignService,
	insighter detecting.Insighter,
	recommender openai.Recommender,
	appConfig *config.Config,
) *MetricsSyncService {
	syncConfig := MetricsSyncConfig{
		CronSchedule:        appConfig.MetricsSync.CronSchedule,
		RequestDelaySeconds: appConfig.MetricsSync.RequestDelaySeconds,
		MaxConcurrentJobs:   appConfig.MetricsSync.MaxConcurrentJobs,
		RetentionDays:       appConfig.MetricsSync.RetentionDays,
		SyncEnabled:         appConfig.MetricsSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"max_concurrent_jobs":   syncConfig.MaxConcurrentJobs,
		"retention_days":        syncConfig.RetentionDays,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de sincronização de métricas carregada")

	return &MetricsSyncService{
		scheduler:       scheduler,
		config:          syncConfig,
		appConfig:       appConfig,
		accountRepo:     accountRepo,
		snapshotRepo:    snapshotRepo,
		campaignRepo:    campaignRepo,
		adsService:      adsService,
		campaignService: campaignService,
		insighter:       insighter,
		recommender:     recommender,
		syncRunning:     false,
	}
}

// Start inicia o agendador
func (s *MetricsSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de métricas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de métricas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllAccounts()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de métricas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de métricas")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync dispara uma sincronização fora do cron, em uma goroutine própria
func (s *MetricsSyncService) TriggerManualSync() {
	go s.syncAllAccounts()
}

// syncAllAccounts sincroniza as métricas de todas as contas ativas
func (s *MetricsSyncService) syncAllAccounts() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de métricas já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando sincronização de métricas para todas as contas ativas")

	activeAccounts, err := s.accountRepo.ListAccounts([]domain.AdAccountStatus{domain.AdAccountStatusActive})
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lista de contas para sincronização de métricas")
		return
	}

	if len(activeAccounts) == 0 {
		logrus.Info("Nenhuma conta ativa encontrada para sincronização de métricas")
	} else {
		s.processAccounts(activeAccounts)
	}

	s.cleanupOldSnapshots()

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"accounts": len(activeAccounts),
	}).Info("Sincronização de métricas concluída")

	s.lastSyncCompletedAt = time.Now()
}

// cleanupOldSnapshots remove snapshots além da janela de retenção configurada.
// A janela histórica dos detectores é bem menor; o resto é só volume de tabela.
func (s *MetricsSyncService) cleanupOldSnapshots() {
	if s.config.RetentionDays <= 0 {
		return
	}

	deleted, err := s.snapshotRepo.DeleteOlderThan(s.config.RetentionDays)
	if err != nil {
		logrus.WithError(err).Error("Erro ao remover snapshots antigos")
		return
	}

	if deleted > 0 {
		logrus.WithFields(logrus.Fields{
			"deleted":        deleted,
			"retention_days": s.config.RetentionDays,
		}).Info("Snapshots antigos removidos")
	}
}

// processAccounts processa as contas com concorrência limitada pelo semáforo
func (s *MetricsSyncService) processAccounts(accounts []*domain.AdAccount) {
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup

	for _, account := range accounts {
		if account.CustomerID == "" {
			logrus.WithField("account_id", account.ID).Warn("Conta sem customer_id. Pulando.")
			continue
		}

		wg.Add(1)
		semaphore <- struct{}{} // Adquirir semáforo

		go func(acc *domain.AdAccount) {
			defer func() {
				<-semaphore // Liberar semáforo
				wg.Done()
			}()

			s.processAccount(acc)

			// Aguardar antes da próxima requisição para evitar sobrecarga na API
			time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
		}(account)
	}

	wg.Wait()
}

// processAccount busca as métricas do dia da conta, atualiza os snapshots e
// roda os detectores campanha a campanha.
func (s *MetricsSyncService) processAccount(acc *domain.AdAccount) {
	logrus.WithFields(logrus.Fields{
		"account_id":   acc.ID,
		"customer_id":  acc.CustomerID,
		"account_name": acc.Name,
	}).Info("Processando métricas da conta")

	// Atualizar o cache de campanhas antes das métricas
	if _, err := s.campaignService.SyncCampaigns(acc); err != nil {
		logrus.WithError(err).WithField("account_id", acc.ID).Warn("Erro ao sincronizar cache de campanhas")
	}

	today := time.Now()
	snapshots, err := s.adsService.GetCampaignSnapshots(acc, today)
	if err != nil {
		logrus.WithError(err).WithField("account_id", acc.ID).Error("Erro ao buscar métricas da conta")
		return
	}

	candidates := make([]*domain.Insight, 0)
	for _, snapshot := range snapshots {
		if err := s.snapshotRepo.SaveOrUpdate(snapshot); err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"account_id":  acc.ID,
				"campaign_id": snapshot.CampaignID,
			}).Error("Erro ao salvar snapshot de métricas")
			continue
		}

		candidates = append(candidates, s.detectForSnapshot(acc, snapshot)...)
	}

	if recommendation := s.generateRecommendation(acc, snapshots); recommendation != nil {
		candidates = append(candidates, recommendation)
	}

	if len(candidates) == 0 {
		return
	}

	// Todos os insights da conta pertencem ao usuário dono dela
	for _, candidate := range candidates {
		candidate.UserID = acc.UserID
	}

	if err := s.insighter.StoreInsights(candidates); err != nil {
		logrus.WithError(err).WithField("account_id", acc.ID).Error("Erro ao persistir insights da conta")
	}
}

// detectForSnapshot roda os dois detectores sobre o snapshot do dia
func (s *MetricsSyncService) detectForSnapshot(acc *domain.AdAccount, snapshot *domain.MetricSnapshot) []*domain.Insight {
	candidates := make([]*domain.Insight, 0)

	if insight := s.insighter.DetectBudgetOverspend(
		acc.ID, snapshot.CampaignID, snapshot.CostMicros, snapshot.DailyBudgetMicros,
	); insight != nil {
		candidates = append(candidates, insight)
	}

	history, err := s.snapshotRepo.GetHistory(acc.ID, snapshot.CampaignID, s.appConfig.Detection.HistoryDays)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"account_id":  acc.ID,
			"campaign_id": snapshot.CampaignID,
		}).Error("Erro ao buscar histórico de métricas")
		return candidates
	}

	current := domain.CurrentFromSnapshot(snapshot)
	candidates = append(candidates, s.insighter.DetectPerformanceAnomalies(
		acc.ID, snapshot.CampaignID, current, history,
	)...)

	return candidates
}

// generateRecommendation pede ao assistente uma recomendação para a campanha
// de maior gasto do dia. No máximo um insight informativo por conta por ciclo;
// a deduplicação do store evita repetição entre ciclos.
func (s *MetricsSyncService) generateRecommendation(acc *domain.AdAccount, snapshots []*domain.MetricSnapshot) *domain.Insight {
	if s.recommender == nil || len(snapshots) == 0 {
		return nil
	}

	var topSnapshot *domain.MetricSnapshot
	for _, snapshot := range snapshots {
		if topSnapshot == nil || snapshot.CostMicros > topSnapshot.CostMicros {
			topSnapshot = snapshot
		}
	}

	if topSnapshot == nil || topSnapshot.CostMicros == 0 {
		return nil
	}

	campaigns, err := s.campaignRepo.ListByAccount(acc.ID)
	if err != nil {
		logrus.WithError(err).WithField("account_id", acc.ID).Warn("Erro ao buscar campanhas para recomendação")
		return nil
	}

	var campaign *domain.Campaign
	for _, c := range campaigns {
		if c.ExternalID == topSnapshot.CampaignID {
			campaign = c
			break
		}
	}

	if campaign == nil {
		return nil
	}

	history, err := s.snapshotRepo.GetHistory(acc.ID, topSnapshot.CampaignID, s.appConfig.Detection.HistoryDays)
	if err != nil || len(history) == 0 {
		return nil
	}

	recommendation, err := s.recommender.GenerateRecommendation(acc, campaign, history)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"account_id":  acc.ID,
			"campaign_id": campaign.ID,
		}).Warn("Erro ao gerar recomendação do assistente")
		return nil
	}

	return recommendation
}
