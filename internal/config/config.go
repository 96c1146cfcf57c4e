package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App struct {
		APIBaseURL   string
		CartStorage  string
		PollInterval time.Duration
	}
}

func Load(path string) (*Config, error) {
	if path != "" {
		err := godotenv.Load(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load .env: %w", err)
		}
	}

	cfg := &Config{}
	cfg.App.APIBaseURL = os.Getenv("API_BASE_URL")
	if cfg.App.APIBaseURL == "" {
		return nil, fmt.Errorf("API_BASE_URL is required")
	}

	cfg.App.CartStorage = os.Getenv("CART_STORAGE_PATH")
	if cfg.App.CartStorage == "" {
		cfg.App.CartStorage = "cart-storage.json"
	}

	cfg.App.PollInterval = 60 * time.Second
	if raw := os.Getenv("POLL_INTERVAL"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid POLL_INTERVAL %q: %w", raw, err)
		}
		cfg.App.PollInterval = d
	}

	return cfg, nil
}
