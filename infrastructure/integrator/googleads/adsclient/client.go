package adsclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	adsdomain "github.com/vfg2006/marketing-copilot-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/marketing-copilot-api/internal/config"
)

type Client interface {
	ListAccessibleCustomers() ([]string, error)
	SearchCampaignMetrics(customerID string, date time.Time) ([]adsdomain.CampaignMetricsRow, error)
	ListCampaigns(customerID string) ([]adsdomain.CampaignMetricsRow, error)
	MutateCampaignStatus(customerID, campaignID, status string) error
	CreateCampaign(customerID, name string, dailyBudgetMicros int64) (string, error)
	EnsureValidToken() error
}

type AdsClient struct {
	Cfg          *config.Config
	TokenManager *TokenManager
	httpClient   *http.Client
}

func NewClient(cfg *config.Config, tokenManager *TokenManager) Client {
	return &AdsClient{
		Cfg:          cfg,
		TokenManager: tokenManager,
		httpClient:   &http.Client{Timeout: 30 * time.Second},
	}
}

// EnsureValidToken verifica se o token atual é válido e tenta renová-lo se necessário
func (c *AdsClient) EnsureValidToken() error {
	return c.TokenManager.EnsureValidToken()
}

// doRequest monta e executa uma requisição autenticada contra a API,
// devolvendo o corpo já tratado pelo TokenManager.
func (c *AdsClient) doRequest(method, url string, payload any) ([]byte, error) {
	token, err := c.TokenManager.AccessToken()
	if err != nil {
		return nil, fmt.Errorf("erro ao obter access token: %w", err)
	}

	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("erro ao serializar payload: %w", err)
		}
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("developer-token", c.Cfg.GoogleAds.DeveloperToken)
	if c.Cfg.GoogleAds.LoginCustomerID != "" {
		req.Header.Set("login-customer-id", c.Cfg.GoogleAds.LoginCustomerID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao fazer a requisição: %w", err)
	}
	defer resp.Body.Close()

	return c.TokenManager.HandleResponse(resp)
}
