package domain

import (
	"time"
)

type InsightType string

const (
	InsightTypeBudgetOverspend    InsightType = "budget_overspend"
	InsightTypePerformanceAnomaly InsightType = "performance_anomaly"
	InsightTypeAIRecommendation   InsightType = "ai_recommendation"
	InsightTypeAlert              InsightType = "alert"
)

type InsightPriority string

const (
	InsightPriorityCritical    InsightPriority = "critical"
	InsightPriorityOpportunity InsightPriority = "opportunity"
	InsightPriorityInfo        InsightPriority = "info"
)

// Insight representa um achado acionável exibido ao usuário no dashboard.
// Depois de criado, o único campo mutável é Dismissed (false -> true).
type Insight struct {
	ID               string          `json:"id"`
	UserID           int             `json:"user_id"`
	AccountID        string          `json:"account_id"`
	CampaignID       *string         `json:"campaign_id,omitempty"`
	Type             InsightType     `json:"type"`
	Priority         InsightPriority `json:"priority"`
	Title            string          `json:"title"`
	Message          string          `json:"message"`
	SuggestedActions []string        `json:"suggested_actions"`
	Dismissed        bool            `json:"dismissed"`
	CreatedAt        time.Time       `json:"created_at"`
}

// DedupKey identifica a chave de deduplicação de um insight.
// Insights de conta (sem campanha) usam campaign_id vazio na chave.
func (i *Insight) DedupKey() (accountID, campaignID string, insightType InsightType) {
	campaignID = ""
	if i.CampaignID != nil {
		campaignID = *i.CampaignID
	}
	return i.AccountID, campaignID, i.Type
}
