package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds process configuration: JSON file values layered under
// environment overrides.
type Config struct {
	ServerAddr string    `json:"server_addr,omitempty"`
	DataDir    string    `json:"data_dir,omitempty"`
	LLM        LLMConfig `json:"llm,omitempty"`
}

// LLMConfig configures the chat-completion provider.
type LLMConfig struct {
	APIKey       string `json:"api_key,omitempty"`
	BaseURL      string `json:"base_url,omitempty"`
	ModelFast    string `json:"model_fast,omitempty"`
	ModelQuality string `json:"model_quality,omitempty"`
}

// Load reads the optional JSON config file, then applies .env / environment
// overrides and defaults. A missing config file is not an error.
func Load(path string) (Config, error) {
	godotenv.Load()

	var cfg Config
	if path != "" {
		raw, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// env-only configuration
		case err != nil:
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := json.Unmarshal(raw, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.LLM.APIKey = v
	}
	if v := os.Getenv("OPENAI_BASE_URL"); v != "" {
		cfg.LLM.BaseURL = v
	}
	if v := os.Getenv("ADDR"); v != "" {
		cfg.ServerAddr = v
	}
	if v := os.Getenv("DATA_DIR"); v != "" {
		cfg.DataDir = v
	}

	if cfg.ServerAddr == "" {
		cfg.ServerAddr = ":8080"
	}
	if cfg.DataDir == "" {
		cfg.DataDir = "data"
	}
	return cfg, nil
}
