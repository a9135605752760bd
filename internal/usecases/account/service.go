package account

import (
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-copilot-api/infrastructure/integrator/googleads"
	"github.com/vfg2006/marketing-copilot-api/infrastructure/repository"
	"github.com/vfg2006/marketing-copilot-api/internal/config"
	"github.com/vfg2006/marketing-copilot-api/internal/domain"
	"github.com/vfg2006/marketing-copilot-api/pkg/apiErrors"
	"github.com/vfg2006/marketing-copilot-api/pkg/utils"
)

type AccountService interface {
	UpdateAccount(request *domain.UpdateAdAccountRequest) error
	ListAdAccounts(availableStatus []domain.AdAccountStatus) ([]*domain.AdAccountResponse, error)
	SyncAccounts(userID int) (*domain.SyncAccountsResponse, error)
}

type Service struct {
	accountRepository repository.AccountRepository
	adsService        googleads.GoogleAdsIntegrator
	cfg               *config.Config
}

func NewService(
	accountRepository repository.AccountRepository,
	adsService googleads.GoogleAdsIntegrator,
	cfg *config.Config,
) AccountService {
	return &Service{
		accountRepository: accountRepository,
		adsService:        adsService,
		cfg:               cfg,
	}
}

func (s *Service) ListAdAccounts(availableStatus []domain.AdAccountStatus) ([]*domain.AdAccountResponse, error) {
	accounts, err := s.accountRepository.ListAccounts(availableStatus)
	if err != nil {
		return nil, NewAccountError(ErrFetchAccounts, apiErrors.ErrDatabaseOperation, "Falha ao listar contas no banco de dados")
	}

	// Transforma os accounts para o formato de resposta da API
	adAccountsResponse := make([]*domain.AdAccountResponse, 0, len(accounts))
	for _, account := range accounts {
		adAccountsResponse = append(adAccountsResponse, &domain.AdAccountResponse{
			ID:           account.ID,
			CustomerID:   account.CustomerID,
			Name:         account.Name,
			Nickname:     account.Nickname,
			CurrencyCode: account.CurrencyCode,
			Status:       account.Status,
		})
	}

	return adAccountsResponse, nil
}

// SyncAccounts descobre os clientes acessíveis pelas credenciais e cadastra os
// que ainda não existem no banco. Contas novas nascem ativas e vinculadas ao
// usuário que disparou a sincronização.
func (s *Service) SyncAccounts(userID int) (*domain.SyncAccountsResponse, error) {
	response := &domain.SyncAccountsResponse{
		Quantity: 0,
		Message:  "Erro ao sincronizar contas",
		Error:    true,
	}

	customerIDs, err := s.adsService.ListAccessibleCustomerIDs()
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar clientes acessíveis no Google Ads")
		return response, NewAccountError(ErrGoogleAdsIntegration, apiErrors.ErrExternalService, "Falha ao obter contas da API do Google Ads")
	}

	accountsToCreate := make([]*domain.AdAccount, 0)
	for _, customerID := range customerIDs {
		existing, err := s.accountRepository.GetAccountByCustomerID(customerID)
		if err != nil {
			logrus.WithField("error", err).Error("Erro ao consultar conta existente no banco de dados")
			return response, NewAccountError(ErrFetchAccounts, apiErrors.ErrDatabaseOperation, "Falha ao consultar contas existentes no banco de dados")
		}

		if existing != nil {
			continue
		}

		accountID, err := utils.GenerateID()
		if err != nil {
			return response, NewAccountError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador único para conta")
		}

		accountsToCreate = append(accountsToCreate, &domain.AdAccount{
			ID:         accountID,
			CustomerID: customerID,
			Name:       customerID,
			UserID:     userID,
			Status:     domain.AdAccountStatusActive,
		})
	}

	if len(accountsToCreate) > 0 {
		if err := s.accountRepository.SaveOrUpdate(accountsToCreate); err != nil {
			logrus.WithField("error", err).Error("Erro ao salvar contas sincronizadas")
			return response, NewAccountError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao salvar contas sincronizadas")
		}
	}

	response.Quantity = len(accountsToCreate)
	response.Message = "Contas sincronizadas com sucesso"
	response.Error = false

	return response, nil
}

func (s *Service) UpdateAccount(request *domain.UpdateAdAccountRequest) error {
	if request.ID == "" {
		return NewAccountError(ErrAccountIDRequired, apiErrors.ErrMissingRequiredData, "ID da conta é obrigatório")
	}

	account, err := s.accountRepository.GetAccountByID(request.ID)
	if err != nil {
		return NewAccountErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, request.ID, "Falha ao consultar conta no banco de dados")
	}

	if account == nil {
		return NewAccountErrorWithID(ErrAccountNotFound, apiErrors.ErrAccountNotFound, request.ID, "Conta não encontrada")
	}

	if err := s.accountRepository.UpdateAccount(request); err != nil {
		return NewAccountErrorWithID(ErrUpdateAccount, apiErrors.ErrDatabaseOperation, request.ID, "Falha ao atualizar conta")
	}

	return nil
}
