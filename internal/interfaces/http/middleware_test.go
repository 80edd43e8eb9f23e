package http_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/magazzino-api/internal/interfaces/http"
	"github.com/jhoicas/magazzino-api/pkg/logger"
)

type brokenKeys struct{}

func (brokenKeys) Claim(context.Context, string) (bool, error) {
	return false, errors.New("redis: connection refused")
}

func (brokenKeys) Release(context.Context, string) error {
	return errors.New("redis: connection refused")
}

type observed struct {
	method, route string
	status        int
}

type fakeObserver struct{ calls []observed }

func (f *fakeObserver) ObserveHTTP(method, route string, status int, _ time.Duration) {
	f.calls = append(f.calls, observed{method, route, status})
}

func TestIdempotency_AlmacenCaidoNoBloquea(t *testing.T) {
	app := fiber.New()
	app.Post("/apply",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.Idempotency(brokenKeys{}, logger.Nop()),
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) },
	)
	req := httptest.NewRequest(http.MethodPost, "/apply", nil)
	req.Header.Set("Authorization", tokenForRole(t, "operator"))
	req.Header.Set(apphttp.IdempotencyHeader, "k-9")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestIdempotency_FalloLiberaClave(t *testing.T) {
	calls := 0
	app := fiber.New()
	app.Post("/confirm",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.Idempotency(&memoryKeys{seen: map[string]bool{}}, logger.Nop()),
		func(c *fiber.Ctx) error {
			calls++
			if calls == 1 {
				return c.SendStatus(fiber.StatusServiceUnavailable)
			}
			return c.SendStatus(fiber.StatusCreated)
		},
	)
	tok := tokenForRole(t, "operator")
	send := func() int {
		req := httptest.NewRequest(http.MethodPost, "/confirm", nil)
		req.Header.Set("Authorization", tok)
		req.Header.Set(apphttp.IdempotencyHeader, "k-1")
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		defer resp.Body.Close()
		return resp.StatusCode
	}

	assert.Equal(t, http.StatusServiceUnavailable, send())
	assert.Equal(t, http.StatusCreated, send(), "el reintento con la misma clave llega al handler")
	assert.Equal(t, http.StatusConflict, send(), "tras el éxito la clave queda consumida")
	assert.Equal(t, 2, calls)
}

func TestMetrics_UsaRutaRegistrada(t *testing.T) {
	obs := &fakeObserver{}
	app := fiber.New()
	app.Use(apphttp.Metrics(obs))
	app.Get("/api/items/:id", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/items/abc-123", nil), -1)
	require.NoError(t, err)
	resp.Body.Close()

	require.Len(t, obs.calls, 1)
	assert.Equal(t, observed{"GET", "/api/items/:id", http.StatusNoContent}, obs.calls[0])
}

func TestRequestLogger_RegistraPeticion(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "info", Output: &buf})
	app := fiber.New()
	app.Use(apphttp.RequestLogger(log))
	app.Get("/health", func(c *fiber.Ctx) error { return c.SendString("ok") })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Contains(t, buf.String(), `"path":"/health"`)
	assert.Contains(t, buf.String(), `"status":200`)
	assert.Contains(t, buf.String(), `"component":"http"`)
}
