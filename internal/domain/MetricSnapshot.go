package domain

import (
	"time"
)

// MetricSnapshot representa as métricas de uma campanha em um momento específico.
// Os snapshots são imutáveis: cada sincronização cria um novo registro para a
// mesma chave (account_id, campaign_id, date) em vez de alterar o anterior.
type MetricSnapshot struct {
	ID                int64     `json:"id"`
	AccountID         string    `json:"account_id"`
	CampaignID        string    `json:"campaign_id"`
	CostMicros        int64     `json:"cost_micros"`
	DailyBudgetMicros int64     `json:"daily_budget_micros"`
	Impressions       int64     `json:"impressions"`
	Clicks            int64     `json:"clicks"`
	Conversions       float64   `json:"conversions"`
	CTR               float64   `json:"ctr"`
	CPAMicros         *int64    `json:"cpa_micros,omitempty"`
	ROAS              *float64  `json:"roas,omitempty"`
	CapturedAt        time.Time `json:"captured_at"`
	CreatedAt         time.Time `json:"created_at"`
}

// CurrentMetrics agrupa os valores correntes avaliados pelo detector de anomalias
type CurrentMetrics struct {
	CPAMicros *int64
	CTR       *float64
	ROAS      *float64
}

// CurrentFromSnapshot extrai as métricas avaliáveis de um snapshot.
// CTR só é considerado quando houve impressões, senão o valor é ruído.
func CurrentFromSnapshot(snapshot *MetricSnapshot) CurrentMetrics {
	current := CurrentMetrics{
		CPAMicros: snapshot.CPAMicros,
		ROAS:      snapshot.ROAS,
	}

	if snapshot.Impressions > 0 {
		ctr := snapshot.CTR
		current.CTR = &ctr
	}

	return current
}
