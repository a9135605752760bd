package detecting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/marketing-copilot-api/internal/config"
	"github.com/vfg2006/marketing-copilot-api/internal/domain"
)

func testDetection() config.Detection {
	return config.Detection{
		OverspendRatio:         1.0,
		CriticalOverspendRatio: 1.2,
		ZScoreThreshold:        2.0,
		CriticalZScore:         3.0,
		MinSampleSize:          3,
		HistoryDays:            7,
		CooldownDays:           1,
	}
}

func newTestService(detection config.Detection) *Service {
	return &Service{
		detection: detection,
		now: func() time.Time {
			return time.Date(2024, 1, 16, 10, 0, 0, 0, time.UTC)
		},
	}
}

func TestService_DetectBudgetOverspend(t *testing.T) {
	service := newTestService(testDetection())

	tests := []struct {
		name              string
		costMicros        int64
		dailyBudgetMicros int64
		wantInsight       bool
		wantPriority      domain.InsightPriority
		wantMessage       string
	}{
		{
			name:              "Gasto abaixo do orçamento - não gera insight",
			costMicros:        40_000_000,
			dailyBudgetMicros: 50_000_000,
			wantInsight:       false,
		},
		{
			name:              "Gasto exatamente no limiar - gera insight de oportunidade",
			costMicros:        50_000_000,
			dailyBudgetMicros: 50_000_000,
			wantInsight:       true,
			wantPriority:      domain.InsightPriorityOpportunity,
			wantMessage:       "Campaign C1 has spent 100% of budget today",
		},
		{
			name:              "Gasto acima do limiar mas abaixo do crítico",
			costMicros:        55_000_000,
			dailyBudgetMicros: 50_000_000,
			wantInsight:       true,
			wantPriority:      domain.InsightPriorityOpportunity,
			wantMessage:       "Campaign C1 has spent 110% of budget today",
		},
		{
			name:              "Gasto de $62.30 contra orçamento de $50 - crítico com 124%",
			costMicros:        62_300_000,
			dailyBudgetMicros: 50_000_000,
			wantInsight:       true,
			wantPriority:      domain.InsightPriorityCritical,
			wantMessage:       "Campaign C1 has spent 124% of budget today",
		},
		{
			name:              "Gasto exatamente no limiar crítico",
			costMicros:        60_000_000,
			dailyBudgetMicros: 50_000_000,
			wantInsight:       true,
			wantPriority:      domain.InsightPriorityCritical,
			wantMessage:       "Campaign C1 has spent 120% of budget today",
		},
		{
			name:              "Orçamento zero - campanha não é avaliada",
			costMicros:        80_000_000,
			dailyBudgetMicros: 0,
			wantInsight:       false,
		},
		{
			name:              "Orçamento negativo - campanha não é avaliada",
			costMicros:        80_000_000,
			dailyBudgetMicros: -1,
			wantInsight:       false,
		},
		{
			name:              "Custo zero com orçamento válido - não gera insight",
			costMicros:        0,
			dailyBudgetMicros: 50_000_000,
			wantInsight:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			insight := service.DetectBudgetOverspend("ACC001", "C1", tt.costMicros, tt.dailyBudgetMicros)

			if !tt.wantInsight {
				assert.Nil(t, insight)
				return
			}

			assert.NotNil(t, insight)
			assert.Equal(t, "ACC001", insight.AccountID)
			assert.NotNil(t, insight.CampaignID)
			assert.Equal(t, "C1", *insight.CampaignID)
			assert.Equal(t, domain.InsightTypeBudgetOverspend, insight.Type)
			assert.Equal(t, tt.wantPriority, insight.Priority)
			assert.Equal(t, tt.wantMessage, insight.Message)
			assert.NotEmpty(t, insight.SuggestedActions)
		})
	}
}
