package domain

import (
	"time"
)

type CampaignStatus string

const (
	CampaignStatusEnabled CampaignStatus = "ENABLED"
	CampaignStatusPaused  CampaignStatus = "PAUSED"
	CampaignStatusRemoved CampaignStatus = "REMOVED"
)

// Campaign representa uma campanha do Google Ads armazenada no cache local
type Campaign struct {
	ID                string         `json:"id"`
	AccountID         string         `json:"account_id"`
	ExternalID        string         `json:"external_id"`
	Name              string         `json:"name"`
	Status            CampaignStatus `json:"status"`
	Objective         string         `json:"objective"`
	DailyBudgetMicros int64          `json:"daily_budget_micros"`
	Demo              bool           `json:"demo"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

// CreateCampaignRequest representa o pedido de criação de campanha vindo do assistente
type CreateCampaignRequest struct {
	AccountID         string `json:"account_id"`
	Name              string `json:"name"`
	Objective         string `json:"objective"`
	DailyBudgetMicros int64  `json:"daily_budget_micros"`
	Demo              bool   `json:"demo"`
}
