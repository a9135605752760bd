package detecting

import (
	"fmt"
	"math"
	"time"

	"github.com/vfg2006/marketing-copilot-api/internal/domain"
	"github.com/vfg2006/marketing-copilot-api/pkg/utils"
)

// anomalyMetric descreve como uma métrica é extraída dos snapshots e o que
// significa "piorar" para ela: CPA subindo é ruim, CTR e ROAS caindo é ruim.
type anomalyMetric struct {
	name              string
	adverseOnIncrease bool
	format            func(value float64) string
	current           func(current domain.CurrentMetrics) (float64, bool)
	historical        func(snapshot *domain.MetricSnapshot) (float64, bool)
}

var anomalyMetrics = []anomalyMetric{
	{
		name:              "CPA",
		adverseOnIncrease: true,
		format: func(value float64) string {
			return fmt.Sprintf("$%.2f", utils.MicrosToUnit(int64(value)))
		},
		current: func(current domain.CurrentMetrics) (float64, bool) {
			if current.CPAMicros == nil {
				return 0, false
			}
			return float64(*current.CPAMicros), true
		},
		historical: func(snapshot *domain.MetricSnapshot) (float64, bool) {
			if snapshot.CPAMicros == nil {
				return 0, false
			}
			return float64(*snapshot.CPAMicros), true
		},
	},
	{
		name:              "CTR",
		adverseOnIncrease: false,
		format: func(value float64) string {
			return fmt.Sprintf("%.2f%%", value*100)
		},
		current: func(current domain.CurrentMetrics) (float64, bool) {
			if current.CTR == nil {
				return 0, false
			}
			return *current.CTR, true
		},
		historical: func(snapshot *domain.MetricSnapshot) (float64, bool) {
			// Sem impressões o CTR é indefinido, não zero
			if snapshot.Impressions == 0 {
				return 0, false
			}
			return snapshot.CTR, true
		},
	},
	{
		name:              "ROAS",
		adverseOnIncrease: false,
		format: func(value float64) string {
			return fmt.Sprintf("%.2fx", value)
		},
		current: func(current domain.CurrentMetrics) (float64, bool) {
			if current.ROAS == nil {
				return 0, false
			}
			return *current.ROAS, true
		},
		historical: func(snapshot *domain.MetricSnapshot) (float64, bool) {
			if snapshot.ROAS == nil {
				return 0, false
			}
			return *snapshot.ROAS, true
		},
	},
}

// DetectPerformanceAnomalies compara as métricas correntes de uma campanha com
// a janela histórica usando z-score. Cada métrica é avaliada de forma
// independente, então uma chamada pode produzir até três insights.
func (s *Service) DetectPerformanceAnomalies(
	accountID, campaignID string,
	current domain.CurrentMetrics,
	historical []*domain.MetricSnapshot,
) []*domain.Insight {
	insights := make([]*domain.Insight, 0)

	// Histórico curto demais não sustenta uma linha de base
	if len(historical) < s.detection.MinSampleSize {
		return insights
	}

	for _, metric := range anomalyMetrics {
		currentValue, ok := metric.current(current)
		if !ok {
			continue
		}

		values := make([]float64, 0, len(historical))
		for _, snapshot := range historical {
			if value, present := metric.historical(snapshot); present {
				values = append(values, value)
			}
		}

		if len(values) < s.detection.MinSampleSize {
			continue
		}

		insight := s.evaluateMetric(accountID, campaignID, metric, currentValue, values)
		if insight != nil {
			insights = append(insights, insight)
		}
	}

	return insights
}

func (s *Service) evaluateMetric(
	accountID, campaignID string,
	metric anomalyMetric,
	currentValue float64,
	values []float64,
) *domain.Insight {
	// Com um único ponto não há desvio a calcular
	if len(values) < 2 {
		return nil
	}

	mean := sampleMean(values)
	stdDev := sampleStdDev(values, mean)

	var zScore float64
	constantBaseline := stdDev == 0

	if constantBaseline {
		// Linha de base constante: qualquer desvio é anômalo
		if currentValue == mean {
			return nil
		}
	} else {
		zScore = (currentValue - mean) / stdDev
		if math.Abs(zScore) < s.detection.ZScoreThreshold {
			return nil
		}
	}

	priority := domain.InsightPriorityOpportunity
	if constantBaseline || math.Abs(zScore) >= s.detection.CriticalZScore {
		priority = domain.InsightPriorityCritical
	}

	increased := currentValue > mean
	direction := "decreased"
	if increased {
		direction = "increased"
	}

	adverse := increased == metric.adverseOnIncrease

	trend := "performance is improving"
	suggestedActions := []string{"increase_budget"}
	if adverse {
		trend = "performance is degrading"
		suggestedActions = []string{"review_targeting", "review_bidding"}
	}

	campaign := campaignID
	return &domain.Insight{
		AccountID:  accountID,
		CampaignID: &campaign,
		Type:       domain.InsightTypePerformanceAnomaly,
		Priority:   priority,
		Title:      fmt.Sprintf("Performance anomaly: %s", metric.name),
		Message: fmt.Sprintf(
			"%s %s to %s (historical average %s), %s",
			metric.name, direction, metric.format(currentValue), metric.format(mean), trend,
		),
		SuggestedActions: suggestedActions,
		CreatedAt:        time.Now(),
	}
}

func sampleMean(values []float64) float64 {
	sum := 0.0
	for _, value := range values {
		sum += value
	}
	return sum / float64(len(values))
}

// sampleStdDev calcula o desvio padrão amostral (denominador n-1)
func sampleStdDev(values []float64, mean float64) float64 {
	if len(values) < 2 {
		return 0
	}

	sumSquares := 0.0
	for _, value := range values {
		diff := value - mean
		sumSquares += diff * diff
	}

	return math.Sqrt(sumSquares / float64(len(values)-1))
}
