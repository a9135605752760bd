package googleads

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/marketing-copilot-api/infrastructure/integrator/googleads/adsclient"
	"github.com/vfg2006/marketing-copilot-api/internal/config"
	"github.com/vfg2006/marketing-copilot-api/internal/domain"
	"github.com/vfg2006/marketing-copilot-api/pkg/utils"
)

// GoogleAdsIntegrator é a fachada sobre a API do Google Ads usada pelos
// schedulers e pelos casos de uso de campanha.
type GoogleAdsIntegrator interface {
	ListAccessibleCustomerIDs() ([]string, error)
	GetCampaignSnapshots(account *domain.AdAccount, date time.Time) ([]*domain.MetricSnapshot, error)
	ListCampaigns(account *domain.AdAccount) ([]*domain.Campaign, error)
	PauseCampaign(account *domain.AdAccount, externalID string) error
	CreateCampaign(account *domain.AdAccount, request *domain.CreateCampaignRequest) (*domain.Campaign, error)
}

type GoogleAdsService struct {
	cfg    *config.Config
	Client adsclient.Client
}

func New(cfg *config.Config, client adsclient.Client) GoogleAdsIntegrator {
	return &GoogleAdsService{
		cfg:    cfg,
		Client: client,
	}
}

// ListAccessibleCustomerIDs retorna os customer IDs visíveis pelas credenciais configuradas
func (s *GoogleAdsService) ListAccessibleCustomerIDs() ([]string, error) {
	customerIDs, err := s.Client.ListAccessibleCustomers()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar clientes acessíveis")
	}

	return customerIDs, nil
}

// GetCampaignSnapshots busca as métricas do dia das campanhas da conta e as
// converte em snapshots prontos para persistência. Métricas derivadas (CTR,
// CPA, ROAS) são calculadas aqui, não na API.
func (s *GoogleAdsService) GetCampaignSnapshots(account *domain.AdAccount, date time.Time) ([]*domain.MetricSnapshot, error) {
	rows, err := s.Client.SearchCampaignMetrics(account.CustomerID, date)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao buscar métricas da conta %s", account.ID)
	}

	snapshots := make([]*domain.MetricSnapshot, 0, len(rows))
	for _, row := range rows {
		snapshot := &domain.MetricSnapshot{
			AccountID:         account.ID,
			CampaignID:        row.Campaign.ID,
			CostMicros:        row.Metrics.CostMicros,
			DailyBudgetMicros: row.CampaignBudget.AmountMicros,
			Impressions:       row.Metrics.Impressions,
			Clicks:            row.Metrics.Clicks,
			Conversions:       row.Metrics.Conversions,
			CapturedAt:        date,
		}

		if row.Metrics.Impressions > 0 {
			snapshot.CTR = float64(row.Metrics.Clicks) / float64(row.Metrics.Impressions)
		}

		if row.Metrics.Conversions > 0 {
			cpa := int64(float64(row.Metrics.CostMicros) / row.Metrics.Conversions)
			snapshot.CPAMicros = &cpa
		}

		if row.Metrics.CostMicros > 0 {
			roas := utils.RoundWithTwoDecimalPlace(row.Metrics.ConversionsValue / utils.MicrosToUnit(row.Metrics.CostMicros))
			snapshot.ROAS = &roas
		}

		snapshots = append(snapshots, snapshot)
	}

	return snapshots, nil
}

// ListCampaigns busca as campanhas da conta direto da API
func (s *GoogleAdsService) ListCampaigns(account *domain.AdAccount) ([]*domain.Campaign, error) {
	rows, err := s.Client.ListCampaigns(account.CustomerID)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao listar campanhas da conta %s", account.ID)
	}

	campaigns := make([]*domain.Campaign, 0, len(rows))
	for _, row := range rows {
		campaigns = append(campaigns, &domain.Campaign{
			AccountID:         account.ID,
			ExternalID:        row.Campaign.ID,
			Name:              row.Campaign.Name,
			Status:            domain.CampaignStatus(row.Campaign.Status),
			DailyBudgetMicros: row.CampaignBudget.AmountMicros,
		})
	}

	return campaigns, nil
}

// PauseCampaign pausa a campanha na API do Google Ads
func (s *GoogleAdsService) PauseCampaign(account *domain.AdAccount, externalID string) error {
	err := s.Client.MutateCampaignStatus(account.CustomerID, externalID, string(domain.CampaignStatusPaused))
	if err != nil {
		return errors.Wrapf(err, "erro ao pausar campanha %s da conta %s", externalID, account.ID)
	}

	return nil
}

// CreateCampaign cria a campanha na API e devolve a representação local.
// A campanha criada nasce pausada.
func (s *GoogleAdsService) CreateCampaign(account *domain.AdAccount, request *domain.CreateCampaignRequest) (*domain.Campaign, error) {
	resourceName, err := s.Client.CreateCampaign(account.CustomerID, request.Name, request.DailyBudgetMicros)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao criar campanha na conta %s", account.ID)
	}

	// resourceName tem o formato customers/{customerID}/campaigns/{campaignID}
	externalID := resourceName
	if idx := strings.LastIndex(resourceName, "/"); idx >= 0 {
		externalID = resourceName[idx+1:]
	}

	return &domain.Campaign{
		AccountID:         account.ID,
		ExternalID:        externalID,
		Name:              request.Name,
		Status:            domain.CampaignStatusPaused,
		Objective:         request.Objective,
		DailyBudgetMicros: request.DailyBudgetMicros,
		Demo:              request.Demo,
	}, nil
}
