package domain

// ErrorResponse representa a estrutura de erro da API do Google Ads
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro da API do Google Ads
type ErrorDetails struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// IsTokenExpired verifica se o erro é de credencial expirada.
// A API do Google devolve 401 UNAUTHENTICATED quando o access token venceu.
func (e *ErrorResponse) IsTokenExpired() bool {
	return e.Error.Code == 401 || e.Error.Status == "UNAUTHENTICATED"
}
