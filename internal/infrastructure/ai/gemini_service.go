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

var _ ports.LLMService = (*GeminiService)(nil)

const geminiEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s"

// GeminiService consejos de inventario vía generateContent de Google Gemini.
type GeminiService struct {
	apiKey     string
	model      string
	urlFormat  string
	httpClient *http.Client
}

// NewGeminiService construye el adaptador; model suele ser "gemini-1.5-flash".
func NewGeminiService(apiKey, model string) *GeminiService {
	return &GeminiService{
		apiKey:     apiKey,
		model:      model,
		urlFormat:  geminiEndpoint,
		httpClient: &http.Client{Timeout: 20 * time.Second},
	}
}

type geminiText struct {
	Text string `json:"text"`
}

type geminiTurn struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiText `json:"parts"`
}

type geminiPayload struct {
	SystemInstruction geminiTurn   `json:"system_instruction"`
	Contents          []geminiTurn `json:"contents"`
	GenerationConfig  struct {
		ResponseMIMEType string  `json:"responseMimeType"`
		Temperature      float32 `json:"temperature"`
		MaxOutputTokens  int     `json:"maxOutputTokens"`
	} `json:"generationConfig"`
}

type geminiReply struct {
	Candidates []struct {
		Content geminiTurn `json:"content"`
	} `json:"candidates"`
}

func describeGeminiError(raw []byte) string {
	var body struct {
		Error *struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if json.Unmarshal(raw, &body) != nil || body.Error == nil {
		return ""
	}
	return fmt.Sprintf("%d %s", body.Error.Code, body.Error.Message)
}

// SuggestInventoryInsights envía la instantánea del inventario a Gemini y devuelve los consejos.
func (s *GeminiService) SuggestInventoryInsights(ctx context.Context, items []dto.InsightItemDTO) ([]dto.InsightDTO, error) {
	if s.apiKey == "" {
		return nil, fmt.Errorf("AI: GEMINI_API_KEY no configurado")
	}
	prompt, err := userPrompt(items)
	if err != nil {
		return nil, err
	}

	payload := geminiPayload{
		SystemInstruction: geminiTurn{Parts: []geminiText{{Text: insightsSystemPrompt}}},
		Contents:          []geminiTurn{{Role: "user", Parts: []geminiText{{Text: prompt}}}},
	}
	payload.GenerationConfig.ResponseMIMEType = "application/json"
	payload.GenerationConfig.Temperature = 0.4
	payload.GenerationConfig.MaxOutputTokens = 512

	var reply geminiReply
	url := fmt.Sprintf(s.urlFormat, s.model, s.apiKey)
	if err := callModel(ctx, s.httpClient, "Gemini", url, nil, payload, &reply, describeGeminiError); err != nil {
		return nil, err
	}
	if len(reply.Candidates) == 0 || len(reply.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("AI: Gemini devolvió respuesta vacía")
	}
	return parseInsights(reply.Candidates[0].Content.Parts[0].Text)
}
