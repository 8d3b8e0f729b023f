package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("ENV", "")
	t.Setenv("BOARD_JWT_SECRET", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 12, cfg.HashCost)
	assert.Equal(t, "noticeboard", cfg.Issuer)
}

func TestLoadConfigDevFallsBackToInsecureSecret(t *testing.T) {
	t.Setenv("ENV", "dev")
	t.Setenv("BOARD_JWT_SECRET", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.True(t, cfg.UsingFallbackSecret)
	assert.NotEmpty(t, cfg.JWTSecret)
}

func TestLoadConfigProdRequiresSecret(t *testing.T) {
	t.Setenv("ENV", "prod")
	t.Setenv("BOARD_JWT_SECRET", "")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BOARD_JWT_SECRET")
}

func TestLoadConfigProdWithSecret(t *testing.T) {
	t.Setenv("ENV", "prod")
	t.Setenv("BOARD_JWT_SECRET", "a-real-secret")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.False(t, cfg.UsingFallbackSecret)
	assert.Equal(t, "a-real-secret", cfg.JWTSecret)
}

func TestLoadConfigRejectsNonPositiveTTL(t *testing.T) {
	t.Setenv("ENV", "dev")
	t.Setenv("BOARD_JWT_SECRET", "s")
	t.Setenv("BOARD_TOKEN_TTL", "-1h")

	_, err := LoadConfig()
	require.Error(t, err)
}
