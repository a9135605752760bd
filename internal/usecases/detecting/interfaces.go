package detecting

import (
	"github.com/vfg2006/marketing-copilot-api/internal/domain"
)

// Detector define as funções puras de detecção de insights. Elas não têm
// efeitos colaterais: leem apenas os argumentos e a configuração de limiares.
type Detector interface {
	// DetectBudgetOverspend avalia o gasto do dia contra o orçamento diário da campanha
	DetectBudgetOverspend(accountID, campaignID string, costMicros, dailyBudgetMicros int64) *domain.Insight

	// DetectPerformanceAnomalies compara as métricas correntes com a janela histórica
	DetectPerformanceAnomalies(accountID, campaignID string, current domain.CurrentMetrics, historical []*domain.MetricSnapshot) []*domain.Insight
}

// InsightStorer persiste insights candidatos aplicando deduplicação por
// (conta, campanha, tipo) dentro da janela de cooldown.
type InsightStorer interface {
	StoreInsights(candidates []*domain.Insight) error
}

// InsightReader expõe o caminho de leitura e descarte usado pela API.
type InsightReader interface {
	ListActiveInsights(userID int, limit uint64) ([]*domain.Insight, error)
	DismissInsight(userID int, insightID string) error
}

// Insighter é a superfície pública completa do núcleo de detecção.
type Insighter interface {
	Detector
	InsightStorer
	InsightReader
}
