package adsclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
)

type listAccessibleCustomersResponse struct {
	ResourceNames []string `json:"resourceNames"`
}

// ListAccessibleCustomers retorna os customer IDs acessíveis pelas credenciais
// configuradas. A API devolve resource names no formato customers/{id}.
func (c *AdsClient) ListAccessibleCustomers() ([]string, error) {
	url := fmt.Sprintf("%s/customers:listAccessibleCustomers", c.Cfg.GoogleAds.URL)

	body, err := c.doRequest(http.MethodGet, url, nil)
	if err != nil {
		if errors.Is(err, ErrTokenRenewed) {
			body, err = c.doRequest(http.MethodGet, url, nil)
		}
		if err != nil {
			return nil, err
		}
	}

	var response listAccessibleCustomersResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON de listAccessibleCustomers")
		return nil, err
	}

	customerIDs := make([]string, 0, len(response.ResourceNames))
	for _, resourceName := range response.ResourceNames {
		customerIDs = append(customerIDs, strings.TrimPrefix(resourceName, "customers/"))
	}

	return customerIDs, nil
}
