package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.True(t, cfg.App.SeedDemo)
	assert.False(t, cfg.DB.Enabled(), "sin DB_HOST ni DATABASE_URL se usa memoria")
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, 10*time.Minute, cfg.Redis.IdempotencyTTL)
	assert.NotEmpty(t, cfg.JWT.Secret)
	assert.Equal(t, "gemini", cfg.AI.Provider)
}

func TestFromViper_ProduccionSinSecreto(t *testing.T) {
	v := viper.New()
	v.Set("APP_ENV", "production")
	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestFromViper_Valores(t *testing.T) {
	v := viper.New()
	v.Set("APP_ENV", "production")
	v.Set("JWT_SECRET", "s3cr3t")
	v.Set("DB_HOST", "db")
	v.Set("DB_PORT", "6543")
	v.Set("DB_PASSWORD", "p@ss/word")
	v.Set("IDEMPOTENCY_TTL_MINUTES", "3")
	v.Set("AI_PROVIDER", "Anthropic")

	cfg, err := fromViper(v)
	require.NoError(t, err)
	assert.True(t, cfg.DB.Enabled())
	assert.Equal(t, 6543, cfg.DB.Port)
	assert.Equal(t, "postgres://postgres:p%40ss%2Fword@db:6543/magazzino?sslmode=disable", cfg.DB.ConnectionString())
	assert.Equal(t, 3*time.Minute, cfg.Redis.IdempotencyTTL)
	assert.Equal(t, "anthropic", cfg.AI.Provider)
}

func TestFromViper_ProveedorIADesconocido(t *testing.T) {
	v := viper.New()
	v.Set("AI_PROVIDER", "oracle")
	_, err := fromViper(v)
	assert.Error(t, err)
}
