package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vasiliy-maslov/restaurant-ordering-client/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://localhost:8080")
	t.Setenv("CART_STORAGE_PATH", "")
	t.Setenv("POLL_INTERVAL", "")

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.App.APIBaseURL)
	assert.Equal(t, "cart-storage.json", cfg.App.CartStorage)
	assert.Equal(t, 60*time.Second, cfg.App.PollInterval)
}

func TestLoad_MissingBaseURL(t *testing.T) {
	t.Setenv("API_BASE_URL", "")

	_, err := config.Load("")
	assert.Error(t, err)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://localhost:8080")
	t.Setenv("CART_STORAGE_PATH", "/tmp/cart.json")
	t.Setenv("POLL_INTERVAL", "5s")

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "/tmp/cart.json", cfg.App.CartStorage)
	assert.Equal(t, 5*time.Second, cfg.App.PollInterval)
}

func TestLoad_InvalidPollInterval(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://localhost:8080")
	t.Setenv("POLL_INTERVAL", "often")

	_, err := config.Load("")
	assert.Error(t, err)
}
