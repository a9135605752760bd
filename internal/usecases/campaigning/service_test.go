package campaigning

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	adsmocks "github.com/vfg2006/marketing-copilot-api/infrastructure/integrator/googleads/mocks"
	"github.com/vfg2006/marketing-copilot-api/infrastructure/repository/mocks"
	"github.com/vfg2006/marketing-copilot-api/internal/config"
	"github.com/vfg2006/marketing-copilot-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_GetCampaignMetrics(t *testing.T) {
	campaign := &domain.Campaign{
		ID:         "CMP001",
		AccountID:  "ACC001",
		ExternalID: "111222333",
		Name:       "Campanha Institucional",
		Status:     domain.CampaignStatusEnabled,
	}

	snapshot := &domain.MetricSnapshot{
		AccountID:         "ACC001",
		CampaignID:        "111222333",
		CostMicros:        40_000_000,
		DailyBudgetMicros: 50_000_000,
		CapturedAt:        time.Date(2024, 1, 16, 10, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name     string
		setup    func(campaignRepo *mocks.MockCampaignRepository, snapshotRepo *mocks.MockMetricSnapshotRepository)
		validate func(t *testing.T, result *domain.MetricSnapshot, err error)
	}{
		{
			name: "Snapshot mais recente da campanha é retornado",
			setup: func(campaignRepo *mocks.MockCampaignRepository, snapshotRepo *mocks.MockMetricSnapshotRepository) {
				campaignRepo.EXPECT().GetByID("CMP001").Return(campaign, nil)
				snapshotRepo.EXPECT().GetLatestByCampaign("ACC001", "111222333").Return(snapshot, nil)
			},
			validate: func(t *testing.T, result *domain.MetricSnapshot, err error) {
				assert.NoError(t, err)
				assert.Equal(t, snapshot, result)
			},
		},
		{
			name: "Campanha inexistente retorna erro de campanha não encontrada",
			setup: func(campaignRepo *mocks.MockCampaignRepository, snapshotRepo *mocks.MockMetricSnapshotRepository) {
				campaignRepo.EXPECT().GetByID("CMP001").Return(nil, nil)
			},
			validate: func(t *testing.T, result *domain.MetricSnapshot, err error) {
				assert.ErrorIs(t, err, ErrCampaignNotFound)
				assert.Nil(t, result)
			},
		},
		{
			name: "Campanha de outra conta não é exposta",
			setup: func(campaignRepo *mocks.MockCampaignRepository, snapshotRepo *mocks.MockMetricSnapshotRepository) {
				other := &domain.Campaign{ID: "CMP001", AccountID: "ACC999", ExternalID: "111222333"}
				campaignRepo.EXPECT().GetByID("CMP001").Return(other, nil)
			},
			validate: func(t *testing.T, result *domain.MetricSnapshot, err error) {
				assert.ErrorIs(t, err, ErrCampaignNotFound)
				assert.Nil(t, result)
			},
		},
		{
			name: "Campanha sem snapshot coletado retorna erro de métricas ausentes",
			setup: func(campaignRepo *mocks.MockCampaignRepository, snapshotRepo *mocks.MockMetricSnapshotRepository) {
				campaignRepo.EXPECT().GetByID("CMP001").Return(campaign, nil)
				snapshotRepo.EXPECT().GetLatestByCampaign("ACC001", "111222333").Return(nil, nil)
			},
			validate: func(t *testing.T, result *domain.MetricSnapshot, err error) {
				assert.ErrorIs(t, err, ErrMetricsNotFound)
				assert.Nil(t, result)
			},
		},
		{
			name: "Erro do repositório de snapshots é propagado",
			setup: func(campaignRepo *mocks.MockCampaignRepository, snapshotRepo *mocks.MockMetricSnapshotRepository) {
				campaignRepo.EXPECT().GetByID("CMP001").Return(campaign, nil)
				snapshotRepo.EXPECT().
					GetLatestByCampaign("ACC001", "111222333").
					Return(nil, fmt.Errorf("erro de banco"))
			},
			validate: func(t *testing.T, result *domain.MetricSnapshot, err error) {
				assert.Error(t, err)
				assert.Nil(t, result)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			campaignRepo := mocks.NewMockCampaignRepository(ctrl)
			accountRepo := mocks.NewMockAccountRepository(ctrl)
			snapshotRepo := mocks.NewMockMetricSnapshotRepository(ctrl)
			adsService := adsmocks.NewMockGoogleAdsIntegrator(ctrl)

			tt.setup(campaignRepo, snapshotRepo)

			service := NewService(campaignRepo, accountRepo, snapshotRepo, adsService, &config.Config{})

			result, err := service.GetCampaignMetrics("ACC001", "CMP001")
			tt.validate(t, result, err)
		})
	}
}
