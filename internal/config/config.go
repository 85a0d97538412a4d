package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
// It is the single source of truth for runtime parameters.
type Config struct {
	Env          string
	FieldMapPath string

	Baserow BaserowConfig
}

// BaserowConfig contains the connection parameters for the hosted store.
type BaserowConfig struct {
	BaseURL         string
	Token           string
	ProductTableID  string
	CategoryTableID string
}

// Load reads configuration from environment variables. If a .env file exists
// in the working directory, it will be loaded first. It returns a populated
// Config or an error with a human-friendly message.
func Load() (*Config, error) {
	// Load .env if present; ignore error if file is missing so that production
	// environments relying solely on real environment variables keep working.
	_ = godotenv.Load()

	cfg := &Config{}

	cfg.Env = getEnv("ENV", "development")
	cfg.FieldMapPath = getEnv("PIM_FIELDMAP", "")

	cfg.Baserow = BaserowConfig{
		BaseURL:         getEnv("BASEROW_URL", "https://api.baserow.io"),
		Token:           getEnv("BASEROW_TOKEN", ""),
		ProductTableID:  getEnv("BASEROW_PRODUCT_TABLE_ID", ""),
		CategoryTableID: getEnv("BASEROW_CATEGORY_TABLE_ID", ""),
	}

	if cfg.Baserow.Token == "" {
		return nil, errors.New("BASEROW_TOKEN must be set")
	}
	if cfg.Baserow.ProductTableID == "" {
		return nil, errors.New("BASEROW_PRODUCT_TABLE_ID must be set")
	}
	if cfg.Baserow.CategoryTableID == "" {
		return nil, errors.New("BASEROW_CATEGORY_TABLE_ID must be set")
	}

	return cfg, nil
}

// getEnv returns the value of an environment variable or a default if empty.
func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
