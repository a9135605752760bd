package googleads

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/marketing-copilot-api/infrastructure/integrator/googleads/adsclient/mocks"
	adsdomain "github.com/vfg2006/marketing-copilot-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/marketing-copilot-api/internal/config"
	"github.com/vfg2006/marketing-copilot-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestGoogleAdsService_ListCampaigns(t *testing.T) {
	account := &domain.AdAccount{
		ID:         "ACC001",
		CustomerID: "1234567890",
	}

	tests := []struct {
		name     string
		setup    func(client *mocks.MockClient)
		validate func(t *testing.T, campaigns []*domain.Campaign, err error)
	}{
		{
			name: "Campanha listada carrega o orçamento diário da API",
			setup: func(client *mocks.MockClient) {
				client.EXPECT().ListCampaigns("1234567890").Return([]adsdomain.CampaignMetricsRow{
					{
						Campaign: adsdomain.Campaign{
							ID:     "111222333",
							Name:   "Campanha Institucional",
							Status: "ENABLED",
						},
						CampaignBudget: adsdomain.CampaignBudget{
							ResourceName: "customers/1234567890/campaignBudgets/999",
							AmountMicros: 50_000_000,
						},
					},
				}, nil)
			},
			validate: func(t *testing.T, campaigns []*domain.Campaign, err error) {
				assert.NoError(t, err)
				assert.Len(t, campaigns, 1)
				assert.Equal(t, "ACC001", campaigns[0].AccountID)
				assert.Equal(t, "111222333", campaigns[0].ExternalID)
				assert.Equal(t, "Campanha Institucional", campaigns[0].Name)
				assert.Equal(t, domain.CampaignStatusEnabled, campaigns[0].Status)
				assert.Equal(t, int64(50_000_000), campaigns[0].DailyBudgetMicros)
			},
		},
		{
			name: "Campanha sem orçamento vinculado fica com orçamento zero",
			setup: func(client *mocks.MockClient) {
				client.EXPECT().ListCampaigns("1234567890").Return([]adsdomain.CampaignMetricsRow{
					{
						Campaign: adsdomain.Campaign{ID: "444555666", Name: "Sem orçamento", Status: "PAUSED"},
					},
				}, nil)
			},
			validate: func(t *testing.T, campaigns []*domain.Campaign, err error) {
				assert.NoError(t, err)
				assert.Len(t, campaigns, 1)
				assert.Zero(t, campaigns[0].DailyBudgetMicros)
			},
		},
		{
			name: "Erro da API é propagado com contexto da conta",
			setup: func(client *mocks.MockClient) {
				client.EXPECT().ListCampaigns("1234567890").Return(nil, fmt.Errorf("erro de transporte"))
			},
			validate: func(t *testing.T, campaigns []*domain.Campaign, err error) {
				assert.Error(t, err)
				assert.Nil(t, campaigns)
				assert.Contains(t, err.Error(), "ACC001")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := mocks.NewMockClient(ctrl)
			tt.setup(client)

			service := New(&config.Config{}, client)

			campaigns, err := service.ListCampaigns(account)
			tt.validate(t, campaigns, err)
		})
	}
}

func TestGoogleAdsService_GetCampaignSnapshots(t *testing.T) {
	account := &domain.AdAccount{
		ID:         "ACC001",
		CustomerID: "1234567890",
	}
	date := time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	client.EXPECT().SearchCampaignMetrics("1234567890", date).Return([]adsdomain.CampaignMetricsRow{
		{
			Campaign:       adsdomain.Campaign{ID: "111222333", Name: "Campanha", Status: "ENABLED"},
			CampaignBudget: adsdomain.CampaignBudget{AmountMicros: 50_000_000},
			Metrics: adsdomain.Metrics{
				CostMicros:       40_000_000,
				Impressions:      1000,
				Clicks:           30,
				Conversions:      4,
				ConversionsValue: 120,
			},
		},
	}, nil)

	service := New(&config.Config{}, client)

	snapshots, err := service.GetCampaignSnapshots(account, date)
	assert.NoError(t, err)
	assert.Len(t, snapshots, 1)

	snapshot := snapshots[0]
	assert.Equal(t, "ACC001", snapshot.AccountID)
	assert.Equal(t, "111222333", snapshot.CampaignID)
	assert.Equal(t, int64(50_000_000), snapshot.DailyBudgetMicros)
	assert.InDelta(t, 0.03, snapshot.CTR, 1e-9)
	if assert.NotNil(t, snapshot.CPAMicros) {
		assert.Equal(t, int64(10_000_000), *snapshot.CPAMicros)
	}
	if assert.NotNil(t, snapshot.ROAS) {
		assert.InDelta(t, 3.0, *snapshot.ROAS, 1e-9)
	}
}
