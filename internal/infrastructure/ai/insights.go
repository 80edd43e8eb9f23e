package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"

	"github.com/jhoicas/magazzino-api/internal/application/dto"
)

const (
	// insightsSystemPrompt fija el rol del modelo y el formato de salida (array JSON).
	insightsSystemPrompt = `Eres un asistente experto en logística de almacenes.
Responde ÚNICAMENTE con un array JSON válido (sin texto adicional) de objetos con la forma:
[{"title": "<título corto>", "description": "<consejo o aviso en una o dos frases>"}]`

	insightsUserPrompt = "Analiza este estado del inventario y entrega 3 consejos estratégicos o avisos de seguridad:\n%s"

	maxResponseBytes = 64 * 1024
)

// userPrompt serializa la instantánea dentro del prompt de usuario.
func userPrompt(items []dto.InsightItemDTO) (string, error) {
	snapshot, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("AI: serializar inventario: %w", err)
	}
	return fmt.Sprintf(insightsUserPrompt, snapshot), nil
}

// providerError extrae el mensaje de error del cuerpo de una respuesta no-200.
type providerError func(raw []byte) string

// callModel hace el POST JSON al proveedor y decodifica la respuesta 200 en out.
func callModel(ctx context.Context, client *http.Client, provider, url string, headers map[string]string, payload, out any, describe providerError) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("AI: serializar request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("AI: crear HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("AI: %s timeout o cancelación: %w", provider, ctx.Err())
		}
		return fmt.Errorf("AI: %s llamada fallida: %w", provider, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("AI: leer respuesta %s: %w", provider, err)
	}
	if resp.StatusCode != http.StatusOK {
		if msg := describe(raw); msg != "" {
			return fmt.Errorf("AI: %s error: %s", provider, msg)
		}
		return fmt.Errorf("AI: %s HTTP %d", provider, resp.StatusCode)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("AI: deserializar respuesta %s: %w", provider, err)
	}
	return nil
}

// jsonArrayRe captura desde el primer '[' hasta el último ']' aunque el modelo añada texto.
var jsonArrayRe = regexp.MustCompile(`(?s)\[.*\]`)

// parseInsights convierte la salida del modelo en consejos, descartando entradas sin título.
func parseInsights(raw string) ([]dto.InsightDTO, error) {
	clean := extractJSONArray(raw)
	if clean == "" {
		return nil, fmt.Errorf("AI: no se encontró un array JSON en la respuesta (respuesta: %s)", raw)
	}
	var parsed []dto.InsightDTO
	if err := json.Unmarshal([]byte(clean), &parsed); err != nil {
		return nil, fmt.Errorf("AI: parsear consejos: %w", err)
	}
	out := make([]dto.InsightDTO, 0, len(parsed))
	for _, in := range parsed {
		in.Title = strings.TrimSpace(in.Title)
		in.Description = strings.TrimSpace(in.Description)
		if in.Title == "" {
			continue
		}
		out = append(out, in)
	}
	return out, nil
}

// extractJSONArray quita bloques markdown (```json … ```) y devuelve el primer array.
func extractJSONArray(text string) string {
	text = strings.TrimSpace(text)
	if idx := strings.Index(text, "```"); idx != -1 {
		after := text[idx+3:]
		if nl := strings.Index(after, "\n"); nl != -1 {
			after = after[nl+1:]
		}
		if end := strings.LastIndex(after, "```"); end != -1 {
			after = after[:end]
		}
		text = strings.TrimSpace(after)
	}
	if strings.HasPrefix(text, "[") {
		return text
	}
	return strings.TrimSpace(jsonArrayRe.FindString(text))
}
