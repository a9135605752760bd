package adsclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

type campaignOperation struct {
	Create     map[string]any `json:"create,omitempty"`
	Update     map[string]any `json:"update,omitempty"`
	UpdateMask string         `json:"updateMask,omitempty"`
}

type mutateRequest struct {
	Operations []campaignOperation `json:"operations"`
}

type mutateResponse struct {
	Results []struct {
		ResourceName string `json:"resourceName"`
	} `json:"results"`
}

// MutateCampaignStatus altera o status de uma campanha (ENABLED ou PAUSED)
func (c *AdsClient) MutateCampaignStatus(customerID, campaignID, status string) error {
	url := fmt.Sprintf("%s/customers/%s/campaigns:mutate", c.Cfg.GoogleAds.URL, customerID)

	payload := mutateRequest{
		Operations: []campaignOperation{
			{
				Update: map[string]any{
					"resourceName": fmt.Sprintf("customers/%s/campaigns/%s", customerID, campaignID),
					"status":       status,
				},
				UpdateMask: "status",
			},
		},
	}

	_, err := c.mutate(url, payload)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"customer_id": customerID,
		"campaign_id": campaignID,
		"status":      status,
	}).Info("Status da campanha alterado no Google Ads")

	return nil
}

// CreateCampaign cria uma campanha pausada com o orçamento diário informado.
// Campanhas sempre nascem pausadas; a ativação é um passo explícito do usuário.
func (c *AdsClient) CreateCampaign(customerID, name string, dailyBudgetMicros int64) (string, error) {
	budgetResourceName, err := c.createCampaignBudget(customerID, name, dailyBudgetMicros)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/customers/%s/campaigns:mutate", c.Cfg.GoogleAds.URL, customerID)

	payload := mutateRequest{
		Operations: []campaignOperation{
			{
				Create: map[string]any{
					"name":                   name,
					"status":                 "PAUSED",
					"advertisingChannelType": "SEARCH",
					"campaignBudget":         budgetResourceName,
					"manualCpc":              map[string]any{},
				},
			},
		},
	}

	response, err := c.mutate(url, payload)
	if err != nil {
		return "", err
	}

	if len(response.Results) == 0 {
		return "", errors.New("mutação não retornou a campanha criada")
	}

	return response.Results[0].ResourceName, nil
}

func (c *AdsClient) createCampaignBudget(customerID, campaignName string, amountMicros int64) (string, error) {
	url := fmt.Sprintf("%s/customers/%s/campaignBudgets:mutate", c.Cfg.GoogleAds.URL, customerID)

	// Orçamentos precisam de nome único dentro do cliente
	suffix, err := gonanoid.New(8)
	if err != nil {
		return "", fmt.Errorf("erro ao gerar sufixo do orçamento: %w", err)
	}

	payload := mutateRequest{
		Operations: []campaignOperation{
			{
				Create: map[string]any{
					"name":           fmt.Sprintf("%s - budget %s", campaignName, suffix),
					"amountMicros":   fmt.Sprintf("%d", amountMicros),
					"deliveryMethod": "STANDARD",
				},
			},
		},
	}

	response, err := c.mutate(url, payload)
	if err != nil {
		return "", err
	}

	if len(response.Results) == 0 {
		return "", errors.New("mutação não retornou o orçamento criado")
	}

	return response.Results[0].ResourceName, nil
}

func (c *AdsClient) mutate(url string, payload mutateRequest) (*mutateResponse, error) {
	body, err := c.doRequest(http.MethodPost, url, payload)
	if err != nil {
		if errors.Is(err, ErrTokenRenewed) {
			body, err = c.doRequest(http.MethodPost, url, payload)
		}
		if err != nil {
			return nil, err
		}
	}

	var response mutateResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON da mutação")
		return nil, err
	}

	return &response, nil
}
