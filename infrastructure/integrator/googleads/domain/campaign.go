package domain

// Campaign é a campanha como a API do Google Ads a devolve.
type Campaign struct {
	ResourceName string `json:"resourceName"`
	ID           string `json:"id"`
	Name         string `json:"name"`
	Status       string `json:"status"`
}

// CampaignBudget carrega o orçamento diário vinculado à campanha.
type CampaignBudget struct {
	ResourceName string `json:"resourceName"`
	AmountMicros int64  `json:"amountMicros,string"`
}

// Metrics agrupa as métricas retornadas por uma consulta GAQL.
// Os campos inteiros vêm como string no JSON da API.
type Metrics struct {
	CostMicros       int64   `json:"costMicros,string"`
	Impressions      int64   `json:"impressions,string"`
	Clicks           int64   `json:"clicks,string"`
	Conversions      float64 `json:"conversions"`
	ConversionsValue float64 `json:"conversionsValue"`
}

// CampaignMetricsRow é uma linha do resultado de searchStream com campanha,
// orçamento e métricas do dia.
type CampaignMetricsRow struct {
	Campaign       Campaign       `json:"campaign"`
	CampaignBudget CampaignBudget `json:"campaignBudget"`
	Metrics        Metrics        `json:"metrics"`
}

// SearchResponse é um bloco da resposta de searchStream.
type SearchResponse struct {
	Results       []CampaignMetricsRow `json:"results"`
	FieldMask     string               `json:"fieldMask,omitempty"`
	RequestID     string               `json:"requestId,omitempty"`
	NextPageToken string               `json:"nextPageToken,omitempty"`
}
