package scheduler

import (
	"fmt"
	"testing"
	"time"

	adsmocks "github.com/vfg2006/marketing-copilot-api/infrastructure/integrator/googleads/mocks"
	"github.com/vfg2006/marketing-copilot-api/infrastructure/repository/mocks"
	"github.com/vfg2006/marketing-copilot-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestDemoCampaignPauseService_pauseExpiredDemoCampaigns(t *testing.T) {
	account := &domain.AdAccount{
		ID:         "ACC001",
		CustomerID: "1234567890",
		Status:     domain.AdAccountStatusActive,
	}

	expired := func(id, accountID string) *domain.Campaign {
		return &domain.Campaign{
			ID:         id,
			AccountID:  accountID,
			ExternalID: "ext-" + id,
			Status:     domain.CampaignStatusEnabled,
			Demo:       true,
			CreatedAt:  time.Now().Add(-48 * time.Hour),
		}
	}

	tests := []struct {
		name  string
		setup func(
			campaignRepo *mocks.MockCampaignRepository,
			accountRepo *mocks.MockAccountRepository,
			adsService *adsmocks.MockGoogleAdsIntegrator,
		)
	}{
		{
			name: "Nenhuma campanha demo expirada - nada a fazer",
			setup: func(
				campaignRepo *mocks.MockCampaignRepository,
				accountRepo *mocks.MockAccountRepository,
				adsService *adsmocks.MockGoogleAdsIntegrator,
			) {
				campaignRepo.EXPECT().
					ListDemoEnabledBefore(gomock.Any()).
					Return([]*domain.Campaign{}, nil)
			},
		},
		{
			name: "Campanha demo expirada é pausada na API e no cache",
			setup: func(
				campaignRepo *mocks.MockCampaignRepository,
				accountRepo *mocks.MockAccountRepository,
				adsService *adsmocks.MockGoogleAdsIntegrator,
			) {
				campaign := expired("CMP001", "ACC001")

				campaignRepo.EXPECT().
					ListDemoEnabledBefore(gomock.Any()).
					Return([]*domain.Campaign{campaign}, nil)

				accountRepo.EXPECT().GetAccountByID("ACC001").Return(account, nil)
				adsService.EXPECT().PauseCampaign(account, "ext-CMP001").Return(nil)
				campaignRepo.EXPECT().UpdateStatus("CMP001", domain.CampaignStatusPaused).Return(nil)
			},
		},
		{
			name: "Erro ao pausar na API - status do cache não é alterado",
			setup: func(
				campaignRepo *mocks.MockCampaignRepository,
				accountRepo *mocks.MockAccountRepository,
				adsService *adsmocks.MockGoogleAdsIntegrator,
			) {
				campaign := expired("CMP001", "ACC001")

				campaignRepo.EXPECT().
					ListDemoEnabledBefore(gomock.Any()).
					Return([]*domain.Campaign{campaign}, nil)

				accountRepo.EXPECT().GetAccountByID("ACC001").Return(account, nil)
				adsService.EXPECT().
					PauseCampaign(account, "ext-CMP001").
					Return(fmt.Errorf("quota excedida"))
				// UpdateStatus não deve ser chamado
			},
		},
		{
			name: "Conta inexistente - campanha é pulada, demais seguem",
			setup: func(
				campaignRepo *mocks.MockCampaignRepository,
				accountRepo *mocks.MockAccountRepository,
				adsService *adsmocks.MockGoogleAdsIntegrator,
			) {
				orphan := expired("CMP001", "ACC999")
				valid := expired("CMP002", "ACC001")

				campaignRepo.EXPECT().
					ListDemoEnabledBefore(gomock.Any()).
					Return([]*domain.Campaign{orphan, valid}, nil)

				accountRepo.EXPECT().GetAccountByID("ACC999").Return(nil, nil)

				accountRepo.EXPECT().GetAccountByID("ACC001").Return(account, nil)
				adsService.EXPECT().PauseCampaign(account, "ext-CMP002").Return(nil)
				campaignRepo.EXPECT().UpdateStatus("CMP002", domain.CampaignStatusPaused).Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			campaignRepo := mocks.NewMockCampaignRepository(ctrl)
			accountRepo := mocks.NewMockAccountRepository(ctrl)
			adsService := adsmocks.NewMockGoogleAdsIntegrator(ctrl)

			tt.setup(campaignRepo, accountRepo, adsService)

			service := &DemoCampaignPauseService{
				config: DemoCampaignPauseConfig{
					MaxAgeHours: 24,
					Enabled:     true,
				},
				campaignRepo: campaignRepo,
				accountRepo:  accountRepo,
				adsService:   adsService,
			}

			service.pauseExpiredDemoCampaigns()
		})
	}
}
