package detecting

import (
	"fmt"
	"time"

	"github.com/vfg2006/marketing-copilot-api/internal/domain"
)

// DetectBudgetOverspend avalia o gasto do dia de uma campanha contra o
// orçamento diário configurado. Campanhas sem orçamento (zero ou ausente)
// não são avaliadas: sem referência não há o que sinalizar.
func (s *Service) DetectBudgetOverspend(accountID, campaignID string, costMicros, dailyBudgetMicros int64) *domain.Insight {
	if dailyBudgetMicros <= 0 {
		return nil
	}

	ratio := float64(costMicros) / float64(dailyBudgetMicros)
	if ratio < s.detection.OverspendRatio {
		return nil
	}

	priority := domain.InsightPriorityOpportunity
	if ratio >= s.detection.CriticalOverspendRatio {
		priority = domain.InsightPriorityCritical
	}

	percent := int(ratio * 100)

	campaign := campaignID
	return &domain.Insight{
		AccountID:  accountID,
		CampaignID: &campaign,
		Type:       domain.InsightTypeBudgetOverspend,
		Priority:   priority,
		Title:      "Budget overspend detected",
		Message: fmt.Sprintf(
			"Campaign %s has spent %d%% of budget today",
			campaignID, percent,
		),
		SuggestedActions: []string{"increase_budget", "pause_campaign", "review_bidding"},
		CreatedAt:        time.Now(),
	}
}
