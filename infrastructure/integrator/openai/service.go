package openai

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/vfg2006/marketing-copilot-api/infrastructure/integrator/openai/openaiclient"
	"github.com/vfg2006/marketing-copilot-api/internal/config"
	"github.com/vfg2006/marketing-copilot-api/internal/domain"
	"github.com/vfg2006/marketing-copilot-api/pkg/utils"
)

// Recommender gera recomendações em linguagem natural a partir das métricas
// recentes de uma campanha.
type Recommender interface {
	GenerateRecommendation(account *domain.AdAccount, campaign *domain.Campaign, history []*domain.MetricSnapshot) (*domain.Insight, error)
}

type OpenAIService struct {
	cfg    *config.Config
	Client openaiclient.Client
}

func New(cfg *config.Config, client openaiclient.Client) Recommender {
	return &OpenAIService{
		cfg:    cfg,
		Client: client,
	}
}

const systemPrompt = "You are a marketing operations assistant. Given recent campaign metrics, " +
	"suggest one concrete optimization in at most three sentences. Be specific and actionable."

// GenerateRecommendation monta o contexto da campanha e pede uma sugestão ao
// modelo. O resultado vira um insight informativo, sujeito à mesma
// deduplicação dos detectores.
func (s *OpenAIService) GenerateRecommendation(
	account *domain.AdAccount,
	campaign *domain.Campaign,
	history []*domain.MetricSnapshot,
) (*domain.Insight, error) {
	if len(history) == 0 {
		return nil, nil
	}

	prompt := fmt.Sprintf("Campaign %q (daily budget $%.2f). Recent daily metrics:\n",
		campaign.Name, utils.MicrosToUnit(campaign.DailyBudgetMicros))

	for _, snapshot := range history {
		prompt += fmt.Sprintf("- %s: cost $%.2f, impressions %d, clicks %d, conversions %.1f\n",
			snapshot.CapturedAt.Format("2006-01-02"),
			utils.MicrosToUnit(snapshot.CostMicros),
			snapshot.Impressions,
			snapshot.Clicks,
			snapshot.Conversions,
		)
	}

	content, err := s.Client.ChatCompletion([]openaiclient.Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: prompt},
	})
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao gerar recomendação para a campanha %s", campaign.ID)
	}

	externalID := campaign.ExternalID
	return &domain.Insight{
		UserID:           account.UserID,
		AccountID:        account.ID,
		CampaignID:       &externalID,
		Type:             domain.InsightTypeAIRecommendation,
		Priority:         domain.InsightPriorityInfo,
		Title:            fmt.Sprintf("Recommendation for %s", campaign.Name),
		Message:          content,
		SuggestedActions: []string{"review_recommendation"},
	}, nil
}
