package campaigning

import (
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-copilot-api/infrastructure/integrator/googleads"
	"github.com/vfg2006/marketing-copilot-api/infrastructure/repository"
	"github.com/vfg2006/marketing-copilot-api/internal/config"
	"github.com/vfg2006/marketing-copilot-api/internal/domain"
	"github.com/vfg2006/marketing-copilot-api/pkg/utils"
)

var (
	ErrAccountNotFound  = errors.New("conta não encontrada")
	ErrCampaignNotFound = errors.New("campanha não encontrada")
	ErrMetricsNotFound  = errors.New("campanha ainda não possui métricas coletadas")
	ErrMissingData      = errors.New("nome e orçamento diário são obrigatórios")
)

type CampaignService interface {
	ListCampaigns(accountID string) ([]*domain.Campaign, error)
	GetCampaignMetrics(accountID, campaignID string) (*domain.MetricSnapshot, error)
	CreateCampaign(request *domain.CreateCampaignRequest) (*domain.Campaign, error)
	PauseCampaign(accountID, campaignID string) error
	SyncCampaigns(account *domain.AdAccount) (int, error)
}

type Service struct {
	campaignRepo repository.CampaignRepository
	accountRepo  repository.AccountRepository
	snapshotRepo repository.MetricSnapshotRepository
	adsService   googleads.GoogleAdsIntegrator
	cfg          *config.Config
}

func NewService(
	campaignRepo repository.CampaignRepository,
	accountRepo repository.AccountRepository,
	snapshotRepo repository.MetricSnapshotRepository,
	adsService googleads.GoogleAdsIntegrator,
	cfg *config.Config,
) CampaignService {
	return &Service{
		campaignRepo: campaignRepo,
		accountRepo:  accountRepo,
		snapshotRepo: snapshotRepo,
		adsService:   adsService,
		cfg:          cfg,
	}
}

// ListCampaigns lê as campanhas do cache local; a API do Google Ads não é
// consultada no caminho de leitura do dashboard.
func (s *Service) ListCampaigns(accountID string) ([]*domain.Campaign, error) {
	return s.campaignRepo.ListByAccount(accountID)
}

// GetCampaignMetrics devolve o snapshot mais recente da campanha no cache.
// Os snapshots são indexados pelo external_id da campanha na API.
func (s *Service) GetCampaignMetrics(accountID, campaignID string) (*domain.MetricSnapshot, error) {
	campaign, err := s.campaignRepo.GetByID(campaignID)
	if err != nil {
		return nil, err
	}
	if campaign == nil || campaign.AccountID != accountID {
		return nil, ErrCampaignNotFound
	}

	snapshot, err := s.snapshotRepo.GetLatestByCampaign(accountID, campaign.ExternalID)
	if err != nil {
		return nil, err
	}
	if snapshot == nil {
		return nil, ErrMetricsNotFound
	}

	return snapshot, nil
}

// CreateCampaign cria a campanha na API do Google Ads e grava a representação
// local. A campanha nasce pausada.
func (s *Service) CreateCampaign(request *domain.CreateCampaignRequest) (*domain.Campaign, error) {
	if request.Name == "" || request.DailyBudgetMicros <= 0 {
		return nil, ErrMissingData
	}

	account, err := s.accountRepo.GetAccountByID(request.AccountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}

	campaign, err := s.adsService.CreateCampaign(account, request)
	if err != nil {
		return nil, err
	}

	campaignID, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}
	campaign.ID = campaignID

	if err := s.campaignRepo.SaveOrUpdate(campaign); err != nil {
		// A campanha já existe na API; o cache se recupera na próxima sincronização
		logrus.WithError(err).Error("Erro ao salvar campanha criada no cache local")
	}

	return campaign, nil
}

// PauseCampaign pausa a campanha na API e reflete o novo status no cache
func (s *Service) PauseCampaign(accountID, campaignID string) error {
	account, err := s.accountRepo.GetAccountByID(accountID)
	if err != nil {
		return err
	}
	if account == nil {
		return ErrAccountNotFound
	}

	campaign, err := s.campaignRepo.GetByID(campaignID)
	if err != nil {
		return err
	}
	if campaign == nil || campaign.AccountID != accountID {
		return ErrCampaignNotFound
	}

	if err := s.adsService.PauseCampaign(account, campaign.ExternalID); err != nil {
		return err
	}

	return s.campaignRepo.UpdateStatus(campaign.ID, domain.CampaignStatusPaused)
}

// SyncCampaigns atualiza o cache local com as campanhas da conta na API.
// Retorna a quantidade de campanhas sincronizadas.
func (s *Service) SyncCampaigns(account *domain.AdAccount) (int, error) {
	campaigns, err := s.adsService.ListCampaigns(account)
	if err != nil {
		return 0, err
	}

	synced := 0
	for _, campaign := range campaigns {
		campaignID, err := utils.GenerateID()
		if err != nil {
			return synced, err
		}
		campaign.ID = campaignID

		if err := s.campaignRepo.SaveOrUpdate(campaign); err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id":  account.ID,
				"external_id": campaign.ExternalID,
				"error":       err.Error(),
			}).Error("Erro ao salvar campanha no cache local, seguindo para a próxima")
			continue
		}
		synced++
	}

	return synced, nil
}
