package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/jhoicas/magazzino-api/internal/application/dto"
	"github.com/jhoicas/magazzino-api/internal/application/ports"
)

var _ ports.LLMService = (*AnthropicService)(nil)

const (
	anthropicMessagesURL = "https://api.anthropic.com/v1/messages"
	anthropicVersion     = "2023-06-01"
)

// AnthropicService consejos de inventario vía la Messages API de Anthropic.
type AnthropicService struct {
	apiKey     string
	model      string
	url        string
	httpClient *http.Client
}

// NewAnthropicService construye el adaptador. Sin apiKey las llamadas fallan sin salir a la red.
func NewAnthropicService(apiKey, model string) *AnthropicService {
	return &AnthropicService{
		apiKey:     apiKey,
		model:      model,
		url:        anthropicMessagesURL,
		httpClient: &http.Client{Timeout: 25 * time.Second},
	}
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicPayload struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicReply struct {
	Content []struct {
		Text string `json:"text"`
	} `json:"content"`
}

func describeAnthropicError(raw []byte) string {
	var body struct {
		Error *struct {
			Type    string `json:"type"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if json.Unmarshal(raw, &body) != nil || body.Error == nil {
		return ""
	}
	return body.Error.Type + ": " + body.Error.Message
}

// SuggestInventoryInsights envía la instantánea a Claude y extrae el array de consejos.
func (s *AnthropicService) SuggestInventoryInsights(ctx context.Context, items []dto.InsightItemDTO) ([]dto.InsightDTO, error) {
	if s.apiKey == "" {
		return nil, fmt.Errorf("AI: ANTHROPIC_API_KEY no configurado")
	}
	prompt, err := userPrompt(items)
	if err != nil {
		return nil, err
	}

	var reply anthropicReply
	err = callModel(ctx, s.httpClient, "Anthropic", s.url,
		map[string]string{"x-api-key": s.apiKey, "anthropic-version": anthropicVersion},
		anthropicPayload{
			Model:     s.model,
			MaxTokens: 1024,
			System:    insightsSystemPrompt,
			Messages:  []anthropicMessage{{Role: "user", Content: prompt}},
		},
		&reply, describeAnthropicError)
	if err != nil {
		return nil, err
	}
	if len(reply.Content) == 0 {
		return nil, fmt.Errorf("AI: Anthropic devolvió respuesta vacía")
	}
	return parseInsights(reply.Content[0].Text)
}
