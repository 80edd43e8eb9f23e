package ai

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/magazzino-api/internal/application/dto"
)

var snapshot = []dto.InsightItemDTO{{Name: "Liquido Idraulico 5L", SKU: "OIL-442", Qty: 8}}

func TestParseInsights_Markdown(t *testing.T) {
	raw := "Ecco:\n```json\n[{\"title\":\" Scorte \",\"description\":\"Riordina OIL-442\"},{\"title\":\"\",\"description\":\"x\"}]\n```"
	got, err := parseInsights(raw)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Scorte", got[0].Title)
}

func TestParseInsights_SinArray(t *testing.T) {
	_, err := parseInsights("nessun consiglio")
	assert.Error(t, err)
}

func TestGeminiService_SinAPIKey(t *testing.T) {
	_, err := NewGeminiService("", "gemini-1.5-flash").SuggestInventoryInsights(context.Background(), snapshot)
	assert.Error(t, err)
}

func TestGeminiService_RespuestaValida(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"[{\"title\":\"Sotto scorta\",\"description\":\"OIL-442 sotto minimo\"}]"}]}}]}`))
	}))
	defer srv.Close()

	svc := NewGeminiService("k", "m")
	svc.urlFormat = srv.URL + "/%s?key=%s"
	got, err := svc.SuggestInventoryInsights(context.Background(), snapshot)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Sotto scorta", got[0].Title)
}

func TestAnthropicService_ErrorHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "k", r.Header.Get("x-api-key"))
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"type":"rate_limit_error","message":"slow down"}}`))
	}))
	defer srv.Close()

	svc := NewAnthropicService("k", "claude")
	svc.url = srv.URL
	_, err := svc.SuggestInventoryInsights(context.Background(), snapshot)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate_limit_error")
}
