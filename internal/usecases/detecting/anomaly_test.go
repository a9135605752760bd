package detecting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/marketing-copilot-api/internal/domain"
)

func int64Ptr(v int64) *int64 {
	return &v
}

func float64Ptr(v float64) *float64 {
	return &v
}

func snapshotsWithCPA(values ...int64) []*domain.MetricSnapshot {
	snapshots := make([]*domain.MetricSnapshot, 0, len(values))
	for i, value := range values {
		snapshots = append(snapshots, &domain.MetricSnapshot{
			AccountID:  "ACC001",
			CampaignID: "C1",
			CPAMicros:  int64Ptr(value),
			CapturedAt: time.Date(2024, 1, 10+i, 0, 0, 0, 0, time.UTC),
		})
	}
	return snapshots
}

func snapshotsWithCTR(values ...float64) []*domain.MetricSnapshot {
	snapshots := make([]*domain.MetricSnapshot, 0, len(values))
	for i, value := range values {
		snapshots = append(snapshots, &domain.MetricSnapshot{
			AccountID:   "ACC001",
			CampaignID:  "C1",
			Impressions: 1000,
			Clicks:      int64(value * 1000),
			CTR:         value,
			CapturedAt:  time.Date(2024, 1, 10+i, 0, 0, 0, 0, time.UTC),
		})
	}
	return snapshots
}

func snapshotsWithROAS(values ...float64) []*domain.MetricSnapshot {
	snapshots := make([]*domain.MetricSnapshot, 0, len(values))
	for i, value := range values {
		snapshots = append(snapshots, &domain.MetricSnapshot{
			AccountID:  "ACC001",
			CampaignID: "C1",
			ROAS:       float64Ptr(value),
			CapturedAt: time.Date(2024, 1, 10+i, 0, 0, 0, 0, time.UTC),
		})
	}
	return snapshots
}

func TestService_DetectPerformanceAnomalies(t *testing.T) {
	service := newTestService(testDetection())

	tests := []struct {
		name       string
		current    domain.CurrentMetrics
		historical []*domain.MetricSnapshot
		validate   func(t *testing.T, insights []*domain.Insight)
	}{
		{
			name:       "Histórico insuficiente - nenhum insight",
			current:    domain.CurrentMetrics{CPAMicros: int64Ptr(150_000_000)},
			historical: snapshotsWithCPA(100_000_000, 100_000_000),
			validate: func(t *testing.T, insights []*domain.Insight) {
				assert.Empty(t, insights)
			},
		},
		{
			name:       "Métrica corrente ausente - métrica é ignorada",
			current:    domain.CurrentMetrics{},
			historical: snapshotsWithCPA(100_000_000, 100_000_000, 100_000_000),
			validate: func(t *testing.T, insights []*domain.Insight) {
				assert.Empty(t, insights)
			},
		},
		{
			name:       "Desvio dentro do esperado - nenhum insight",
			current:    domain.CurrentMetrics{CPAMicros: int64Ptr(105_000_000)},
			historical: snapshotsWithCPA(90_000_000, 100_000_000, 110_000_000),
			validate: func(t *testing.T, insights []*domain.Insight) {
				// z = 0.5, bem abaixo do limiar de 2.0
				assert.Empty(t, insights)
			},
		},
		{
			name:       "Linha de base constante - qualquer desvio é anomalia crítica",
			current:    domain.CurrentMetrics{CPAMicros: int64Ptr(150_000_000)},
			historical: snapshotsWithCPA(100_000_000, 100_000_000, 100_000_000),
			validate: func(t *testing.T, insights []*domain.Insight) {
				assert.Len(t, insights, 1)
				assert.Equal(t, domain.InsightTypePerformanceAnomaly, insights[0].Type)
				assert.Equal(t, domain.InsightPriorityCritical, insights[0].Priority)
				assert.Contains(t, insights[0].Message, "CPA increased")
				assert.Contains(t, insights[0].Message, "performance is degrading")
				assert.Equal(t, []string{"review_targeting", "review_bidding"}, insights[0].SuggestedActions)
			},
		},
		{
			name:       "Linha de base constante sem desvio - nenhum insight",
			current:    domain.CurrentMetrics{CPAMicros: int64Ptr(100_000_000)},
			historical: snapshotsWithCPA(100_000_000, 100_000_000, 100_000_000),
			validate: func(t *testing.T, insights []*domain.Insight) {
				assert.Empty(t, insights)
			},
		},
		{
			name:       "ROAS com z-score exatamente no limiar - oportunidade",
			current:    domain.CurrentMetrics{ROAS: float64Ptr(80)},
			historical: snapshotsWithROAS(90, 100, 110),
			validate: func(t *testing.T, insights []*domain.Insight) {
				// média 100, desvio 10, z = -2.0
				assert.Len(t, insights, 1)
				assert.Equal(t, domain.InsightPriorityOpportunity, insights[0].Priority)
				assert.Contains(t, insights[0].Message, "ROAS decreased")
				assert.Contains(t, insights[0].Message, "performance is degrading")
			},
		},
		{
			name:       "Queda brusca de CTR - anomalia crítica",
			current:    domain.CurrentMetrics{CTR: float64Ptr(0.018)},
			historical: snapshotsWithCTR(0.03, 0.032, 0.029),
			validate: func(t *testing.T, insights []*domain.Insight) {
				// média ~0.0303, desvio ~0.0015, z ~ -8.1
				assert.Len(t, insights, 1)
				assert.Equal(t, domain.InsightTypePerformanceAnomaly, insights[0].Type)
				assert.Equal(t, domain.InsightPriorityCritical, insights[0].Priority)
				assert.Contains(t, insights[0].Message, "CTR decreased to 1.80%")
				assert.Contains(t, insights[0].Message, "historical average 3.03%")
				assert.Contains(t, insights[0].Message, "performance is degrading")
			},
		},
		{
			name:    "CTR sem impressões no histórico - dias sem tráfego não entram na amostra",
			current: domain.CurrentMetrics{CTR: float64Ptr(0.018)},
			historical: append(
				snapshotsWithCTR(0.03, 0.032),
				&domain.MetricSnapshot{AccountID: "ACC001", CampaignID: "C1", Impressions: 0, CTR: 0},
			),
			validate: func(t *testing.T, insights []*domain.Insight) {
				// Restam só 2 amostras válidas, abaixo do mínimo de 3
				assert.Empty(t, insights)
			},
		},
		{
			name: "Queda de CPA - melhora de performance vira oportunidade",
			current: domain.CurrentMetrics{
				CPAMicros: int64Ptr(10_000_000),
			},
			historical: snapshotsWithCPA(48_000_000, 50_000_000, 52_000_000),
			validate: func(t *testing.T, insights []*domain.Insight) {
				assert.Len(t, insights, 1)
				assert.Contains(t, insights[0].Message, "CPA decreased")
				assert.Contains(t, insights[0].Message, "performance is improving")
				assert.Equal(t, []string{"increase_budget"}, insights[0].SuggestedActions)
			},
		},
		{
			name: "Múltiplas métricas anômalas geram múltiplos insights",
			current: domain.CurrentMetrics{
				CPAMicros: int64Ptr(150_000_000),
				CTR:       float64Ptr(0.018),
			},
			historical: func() []*domain.MetricSnapshot {
				snapshots := snapshotsWithCTR(0.03, 0.032, 0.029)
				for i, cpa := range []int64{100_000_000, 100_000_000, 100_000_000} {
					snapshots[i].CPAMicros = int64Ptr(cpa)
				}
				return snapshots
			}(),
			validate: func(t *testing.T, insights []*domain.Insight) {
				assert.Len(t, insights, 2)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			insights := service.DetectPerformanceAnomalies("ACC001", "C1", tt.current, tt.historical)
			tt.validate(t, insights)
		})
	}
}

func TestSampleStdDev(t *testing.T) {
	mean := sampleMean([]float64{90, 100, 110})
	assert.Equal(t, 100.0, mean)

	// Desvio amostral usa denominador n-1
	assert.InDelta(t, 10.0, sampleStdDev([]float64{90, 100, 110}, mean), 1e-9)
	assert.Equal(t, 0.0, sampleStdDev([]float64{100}, 100))
}
