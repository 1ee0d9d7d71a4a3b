package config

import (
	"os"
)

// AnthropicConfig contains Anthropic Messages API configuration
type AnthropicConfig struct {
	BaseURL    string `json:"base_url"`
	Model      string `json:"model"`
	APIVersion string `json:"api_version"`
}

// GetAnthropicConfig returns Anthropic configuration from the environment
func GetAnthropicConfig() *AnthropicConfig {
	baseURL := os.Getenv("ANTHROPIC_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.anthropic.com"
	}

	model := os.Getenv("ANTHROPIC_MODEL")
	if model == "" {
		model = "claude-3-5-sonnet-20241022"
	}

	return &AnthropicConfig{
		BaseURL:    baseURL,
		Model:      model,
		APIVersion: "2023-06-01",
	}
}

// SharedAPIKey returns the operator-wide fallback key, empty when unset.
// Read at invocation time so key rotation does not require a restart.
func SharedAPIKey() string {
	return os.Getenv("ANTHROPIC_API_KEY")
}
