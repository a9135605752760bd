package scheduler

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	adsmocks "github.com/vfg2006/marketing-copilot-api/infrastructure/integrator/googleads/mocks"
	"github.com/vfg2006/marketing-copilot-api/infrastructure/repository/mocks"
	"github.com/vfg2006/marketing-copilot-api/internal/config"
	"github.com/vfg2006/marketing-copilot-api/internal/domain"
	campaignmocks "github.com/vfg2006/marketing-copilot-api/internal/usecases/campaigning/mocks"
	detectingmocks "github.com/vfg2006/marketing-copilot-api/internal/usecases/detecting/mocks"
	"go.uber.org/mock/gomock"
)

func TestMetricsSyncService_processAccount(t *testing.T) {
	account := &domain.AdAccount{
		ID:         "ACC001",
		CustomerID: "1234567890",
		Name:       "Conta Demo",
		UserID:     7,
		Status:     domain.AdAccountStatusActive,
	}

	snapshot := &domain.MetricSnapshot{
		AccountID:         "ACC001",
		CampaignID:        "C1",
		CostMicros:        62_300_000,
		DailyBudgetMicros: 50_000_000,
		Impressions:       1000,
		Clicks:            30,
		CTR:               0.03,
	}

	overspend := &domain.Insight{
		AccountID: "ACC001",
		Type:      domain.InsightTypeBudgetOverspend,
		Priority:  domain.InsightPriorityCritical,
	}

	tests := []struct {
		name  string
		setup func(
			snapshotRepo *mocks.MockMetricSnapshotRepository,
			campaignRepo *mocks.MockCampaignRepository,
			adsService *adsmocks.MockGoogleAdsIntegrator,
			campaignService *campaignmocks.MockCampaignService,
			insighter *detectingmocks.MockInsighter,
		)
	}{
		{
			name: "Snapshot com overspend - detecta, atribui o dono da conta e persiste",
			setup: func(
				snapshotRepo *mocks.MockMetricSnapshotRepository,
				campaignRepo *mocks.MockCampaignRepository,
				adsService *adsmocks.MockGoogleAdsIntegrator,
				campaignService *campaignmocks.MockCampaignService,
				insighter *detectingmocks.MockInsighter,
			) {
				campaignService.EXPECT().SyncCampaigns(account).Return(1, nil)

				adsService.EXPECT().
					GetCampaignSnapshots(account, gomock.Any()).
					Return([]*domain.MetricSnapshot{snapshot}, nil)

				snapshotRepo.EXPECT().SaveOrUpdate(snapshot).Return(nil)

				insighter.EXPECT().
					DetectBudgetOverspend("ACC001", "C1", int64(62_300_000), int64(50_000_000)).
					Return(overspend)

				snapshotRepo.EXPECT().
					GetHistory("ACC001", "C1", 7).
					Return([]*domain.MetricSnapshot{}, nil)

				insighter.EXPECT().
					DetectPerformanceAnomalies("ACC001", "C1", gomock.Any(), gomock.Any()).
					Return([]*domain.Insight{})

				insighter.EXPECT().
					StoreInsights(gomock.Any()).
					DoAndReturn(func(candidates []*domain.Insight) error {
						assert.Len(t, candidates, 1)
						assert.Equal(t, 7, candidates[0].UserID)
						return nil
					})
			},
		},
		{
			name: "Erro na API de métricas - nada é persistido",
			setup: func(
				snapshotRepo *mocks.MockMetricSnapshotRepository,
				campaignRepo *mocks.MockCampaignRepository,
				adsService *adsmocks.MockGoogleAdsIntegrator,
				campaignService *campaignmocks.MockCampaignService,
				insighter *detectingmocks.MockInsighter,
			) {
				campaignService.EXPECT().SyncCampaigns(account).Return(0, nil)

				adsService.EXPECT().
					GetCampaignSnapshots(account, gomock.Any()).
					Return(nil, fmt.Errorf("quota excedida"))
				// Nenhum detector nem persistência deve ser chamado
			},
		},
		{
			name: "Nenhum candidato detectado - store não é chamado",
			setup: func(
				snapshotRepo *mocks.MockMetricSnapshotRepository,
				campaignRepo *mocks.MockCampaignRepository,
				adsService *adsmocks.MockGoogleAdsIntegrator,
				campaignService *campaignmocks.MockCampaignService,
				insighter *detectingmocks.MockInsighter,
			) {
				campaignService.EXPECT().SyncCampaigns(account).Return(1, nil)

				quiet := &domain.MetricSnapshot{
					AccountID:         "ACC001",
					CampaignID:        "C1",
					CostMicros:        10_000_000,
					DailyBudgetMicros: 50_000_000,
				}

				adsService.EXPECT().
					GetCampaignSnapshots(account, gomock.Any()).
					Return([]*domain.MetricSnapshot{quiet}, nil)

				snapshotRepo.EXPECT().SaveOrUpdate(quiet).Return(nil)

				insighter.EXPECT().
					DetectBudgetOverspend("ACC001", "C1", int64(10_000_000), int64(50_000_000)).
					Return(nil)

				snapshotRepo.EXPECT().
					GetHistory("ACC001", "C1", 7).
					Return([]*domain.MetricSnapshot{}, nil)

				insighter.EXPECT().
					DetectPerformanceAnomalies("ACC001", "C1", gomock.Any(), gomock.Any()).
					Return([]*domain.Insight{})
			},
		},
		{
			name: "Falha ao salvar snapshot - campanha é pulada sem rodar detectores",
			setup: func(
				snapshotRepo *mocks.MockMetricSnapshotRepository,
				campaignRepo *mocks.MockCampaignRepository,
				adsService *adsmocks.MockGoogleAdsIntegrator,
				campaignService *campaignmocks.MockCampaignService,
				insighter *detectingmocks.MockInsighter,
			) {
				campaignService.EXPECT().SyncCampaigns(account).Return(1, nil)

				adsService.EXPECT().
					GetCampaignSnapshots(account, gomock.Any()).
					Return([]*domain.MetricSnapshot{snapshot}, nil)

				snapshotRepo.EXPECT().
					SaveOrUpdate(snapshot).
					Return(fmt.Errorf("conexão perdida"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			snapshotRepo := mocks.NewMockMetricSnapshotRepository(ctrl)
			campaignRepo := mocks.NewMockCampaignRepository(ctrl)
			adsService := adsmocks.NewMockGoogleAdsIntegrator(ctrl)
			campaignService := campaignmocks.NewMockCampaignService(ctrl)
			insighter := detectingmocks.NewMockInsighter(ctrl)

			tt.setup(snapshotRepo, campaignRepo, adsService, campaignService, insighter)

			service := &MetricsSyncService{
				config: MetricsSyncConfig{
					RequestDelaySeconds: 0,
					MaxConcurrentJobs:   1,
					SyncEnabled:         true,
				},
				appConfig: &config.Config{
					Detection: config.Detection{HistoryDays: 7},
				},
				snapshotRepo:    snapshotRepo,
				campaignRepo:    campaignRepo,
				adsService:      adsService,
				campaignService: campaignService,
				insighter:       insighter,
			}

			service.processAccount(account)
		})
	}
}

func TestMetricsSyncService_syncAllAccounts_retencao(t *testing.T) {
	tests := []struct {
		name          string
		retentionDays int
		setup         func(accountRepo *mocks.MockAccountRepository, snapshotRepo *mocks.MockMetricSnapshotRepository)
	}{
		{
			name:          "Snapshots além da retenção são removidos ao fim do ciclo",
			retentionDays: 90,
			setup: func(accountRepo *mocks.MockAccountRepository, snapshotRepo *mocks.MockMetricSnapshotRepository) {
				accountRepo.EXPECT().
					ListAccounts([]domain.AdAccountStatus{domain.AdAccountStatusActive}).
					Return([]*domain.AdAccount{}, nil)

				snapshotRepo.EXPECT().DeleteOlderThan(90).Return(int64(12), nil)
			},
		},
		{
			name:          "Retenção desabilitada - nada é removido",
			retentionDays: 0,
			setup: func(accountRepo *mocks.MockAccountRepository, snapshotRepo *mocks.MockMetricSnapshotRepository) {
				accountRepo.EXPECT().
					ListAccounts([]domain.AdAccountStatus{domain.AdAccountStatusActive}).
					Return([]*domain.AdAccount{}, nil)
			},
		},
		{
			name:          "Erro na limpeza não interrompe o ciclo",
			retentionDays: 90,
			setup: func(accountRepo *mocks.MockAccountRepository, snapshotRepo *mocks.MockMetricSnapshotRepository) {
				accountRepo.EXPECT().
					ListAccounts([]domain.AdAccountStatus{domain.AdAccountStatusActive}).
					Return([]*domain.AdAccount{}, nil)

				snapshotRepo.EXPECT().DeleteOlderThan(90).Return(int64(0), fmt.Errorf("erro de banco"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			accountRepo := mocks.NewMockAccountRepository(ctrl)
			snapshotRepo := mocks.NewMockMetricSnapshotRepository(ctrl)

			tt.setup(accountRepo, snapshotRepo)

			service := &MetricsSyncService{
				config: MetricsSyncConfig{
					MaxConcurrentJobs: 1,
					RetentionDays:     tt.retentionDays,
					SyncEnabled:       true,
				},
				appConfig:    &config.Config{},
				accountRepo:  accountRepo,
				snapshotRepo: snapshotRepo,
			}

			service.syncAllAccounts()

			assert.False(t, service.syncRunning)
		})
	}
}
