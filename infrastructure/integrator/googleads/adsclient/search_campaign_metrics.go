package adsclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	adsdomain "github.com/vfg2006/marketing-copilot-api/infrastructure/integrator/googleads/domain"
)

type searchRequest struct {
	Query string `json:"query"`
}

// SearchCampaignMetrics consulta as métricas do dia de todas as campanhas
// habilitadas ou pausadas de um cliente via GAQL.
func (c *AdsClient) SearchCampaignMetrics(customerID string, date time.Time) ([]adsdomain.CampaignMetricsRow, error) {
	query := fmt.Sprintf(`
		SELECT
			campaign.id,
			campaign.name,
			campaign.status,
			campaign_budget.amount_micros,
			metrics.cost_micros,
			metrics.impressions,
			metrics.clicks,
			metrics.conversions,
			metrics.conversions_value
		FROM campaign
		WHERE segments.date = '%s'
			AND campaign.status IN ('ENABLED', 'PAUSED')`,
		date.Format("2006-01-02"),
	)

	return c.search(customerID, query)
}

// ListCampaigns busca as campanhas do cliente com o orçamento diário associado.
// O orçamento precisa vir na consulta: a sincronização periódica sobrescreve o
// cache local e zeraria o valor se ele não viesse da API.
func (c *AdsClient) ListCampaigns(customerID string) ([]adsdomain.CampaignMetricsRow, error) {
	query := `
		SELECT
			campaign.id,
			campaign.name,
			campaign.status,
			campaign_budget.amount_micros
		FROM campaign
		WHERE campaign.status != 'REMOVED'`

	return c.search(customerID, query)
}

func (c *AdsClient) search(customerID, query string) ([]adsdomain.CampaignMetricsRow, error) {
	url := fmt.Sprintf("%s/customers/%s/googleAds:searchStream", c.Cfg.GoogleAds.URL, customerID)

	body, err := c.doRequest(http.MethodPost, url, searchRequest{Query: query})
	if err != nil {
		// Token renovado durante a chamada: repetir uma única vez
		if errors.Is(err, ErrTokenRenewed) {
			body, err = c.doRequest(http.MethodPost, url, searchRequest{Query: query})
		}
		if err != nil {
			return nil, err
		}
	}

	// searchStream devolve um array de blocos de resposta
	var responses []adsdomain.SearchResponse
	if err := json.Unmarshal(body, &responses); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON do searchStream")
		return nil, err
	}

	rows := make([]adsdomain.CampaignMetricsRow, 0)
	for _, response := range responses {
		rows = append(rows, response.Results...)
	}

	return rows, nil
}
