package openaiclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/vfg2006/marketing-copilot-api/internal/config"
)

type Client interface {
	ChatCompletion(messages []Message) (string, error)
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

type OpenAIClient struct {
	Cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &OpenAIClient{
		Cfg:        cfg,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// ChatCompletion envia a conversa para a API e devolve o conteúdo da primeira escolha
func (c *OpenAIClient) ChatCompletion(messages []Message) (string, error) {
	payload := chatCompletionRequest{
		Model:       c.Cfg.OpenAI.Model,
		Messages:    messages,
		Temperature: 0.4,
		MaxTokens:   400,
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("erro ao serializar requisição: %w", err)
	}

	url := fmt.Sprintf("%s/chat/completions", c.Cfg.OpenAI.BaseURL)

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.Cfg.OpenAI.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("erro ao fazer a requisição: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("erro ao ler resposta: %w", err)
	}

	var response chatCompletionResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("erro ao decodificar resposta: %w", err)
	}

	if response.Error != nil {
		return "", fmt.Errorf("erro da API da OpenAI: %s: %s", response.Error.Type, response.Error.Message)
	}

	if len(response.Choices) == 0 {
		return "", fmt.Errorf("resposta da OpenAI sem escolhas: status %d", resp.StatusCode)
	}

	return response.Choices[0].Message.Content, nil
}
