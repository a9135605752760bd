package domain

type AdAccountStatus string

const (
	AdAccountStatusActive   AdAccountStatus = "ACTIVE"
	AdAccountStatusInactive AdAccountStatus = "INACTIVE"
)

// AdAccount representa uma conta do Google Ads conectada à plataforma
type AdAccount struct {
	ID           string          `json:"id"`
	CustomerID   string          `json:"customer_id"`
	Name         string          `json:"name"`
	Nickname     *string         `json:"nickname"`
	CurrencyCode string          `json:"currency_code"`
	Timezone     *string         `json:"timezone"`
	UserID       int             `json:"user_id"`
	Status       AdAccountStatus `json:"status"`
}

type AdAccountResponse struct {
	ID           string          `json:"id"`
	CustomerID   string          `json:"customer_id"`
	Name         string          `json:"name"`
	Nickname     *string         `json:"nickname"`
	CurrencyCode string          `json:"currency_code"`
	Status       AdAccountStatus `json:"status"`
}

type UpdateAdAccountRequest struct {
	ID       string  `json:"id"`
	Nickname *string `json:"nickname,omitempty"`
	Status   *string `json:"status,omitempty"`
}

type SyncAccountsResponse struct {
	Quantity int    `json:"quantity"`
	Message  string `json:"message"`
	Error    bool   `json:"error"`
}
