package adsclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	adsdomain "github.com/vfg2006/marketing-copilot-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/marketing-copilot-api/internal/config"
)

// ErrTokenRenewed sinaliza que o access token expirou e já foi renovado; o
// chamador deve repetir a requisição.
var ErrTokenRenewed = errors.New("token expirado e renovado, por favor tente novamente")

// TokenManager gerencia o access token de curta duração da API do Google Ads.
// O refresh token de longa duração vem da configuração e não muda; o access
// token é trocado sob demanda via grant refresh_token.
type TokenManager struct {
	cfg               *config.Config
	tokenRefreshMutex sync.Mutex

	accessToken string
	expiresAt   time.Time
}

// NewTokenManager cria uma nova instância do gerenciador de tokens
func NewTokenManager(cfg *config.Config) *TokenManager {
	return &TokenManager{
		cfg: cfg,
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	TokenType   string `json:"token_type"`
}

// AccessToken retorna o access token corrente, renovando se necessário
func (tm *TokenManager) AccessToken() (string, error) {
	if err := tm.EnsureValidToken(); err != nil {
		return "", err
	}

	tm.tokenRefreshMutex.Lock()
	defer tm.tokenRefreshMutex.Unlock()
	return tm.accessToken, nil
}

// EnsureValidToken verifica se o token atual é válido e o renova se necessário
func (tm *TokenManager) EnsureValidToken() error {
	tm.tokenRefreshMutex.Lock()
	valid := tm.accessToken != "" && time.Now().Before(tm.expiresAt.Add(-1*time.Minute))
	tm.tokenRefreshMutex.Unlock()

	if valid {
		return nil
	}

	return tm.RefreshToken()
}

// RefreshToken troca o refresh token por um novo access token
func (tm *TokenManager) RefreshToken() error {
	tm.tokenRefreshMutex.Lock()
	defer tm.tokenRefreshMutex.Unlock()

	// Outra goroutine pode ter renovado enquanto esperávamos o lock
	if tm.accessToken != "" && time.Now().Before(tm.expiresAt.Add(-1*time.Minute)) {
		return nil
	}

	form := url.Values{}
	form.Set("client_id", tm.cfg.GoogleAds.ClientID)
	form.Set("client_secret", tm.cfg.GoogleAds.ClientSecret)
	form.Set("refresh_token", tm.cfg.GoogleAds.RefreshToken)
	form.Set("grant_type", "refresh_token")

	resp, err := http.Post(
		tm.cfg.GoogleAds.TokenURL,
		"application/x-www-form-urlencoded",
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return fmt.Errorf("erro ao renovar access token: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("erro ao ler resposta do token: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("erro ao renovar access token: status %d: %s", resp.StatusCode, string(body))
	}

	var token tokenResponse
	if err := json.Unmarshal(body, &token); err != nil {
		return fmt.Errorf("erro ao decodificar resposta do token: %w", err)
	}

	tm.accessToken = token.AccessToken
	tm.expiresAt = time.Now().Add(time.Duration(token.ExpiresIn) * time.Second)

	logrus.WithField("expires_at", tm.expiresAt).Info("Access token do Google Ads renovado")

	return nil
}

// HandleResponse lê o corpo e trata erros da API, renovando o token quando a
// resposta indica credencial expirada.
func (tm *TokenManager) HandleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return body, nil
	}

	var apiError adsdomain.ErrorResponse
	if err := json.Unmarshal(body, &apiError); err == nil && apiError.IsTokenExpired() {
		logrus.Warn("Access token do Google Ads expirado, renovando...")
		if refreshErr := tm.RefreshToken(); refreshErr != nil {
			return nil, fmt.Errorf("erro ao renovar token expirado: %w", refreshErr)
		}
		return nil, ErrTokenRenewed
	}

	return nil, fmt.Errorf("erro da API do Google Ads: status %d: %s", resp.StatusCode, string(body))
}
