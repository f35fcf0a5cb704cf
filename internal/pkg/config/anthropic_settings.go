package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// DefaultAnthropicBaseURL is the messages API endpoint root.
const DefaultAnthropicBaseURL = "https://api.anthropic.com"

// AnthropicSettings holds configuration for the language model connector.
// The API key is read from the environment (ANTHROPIC_API_KEY), never from
// config files. An empty key disables model-assisted steps.
type AnthropicSettings struct {
	APIKey    string `mapstructure:"api_key"`
	BaseURL   string `mapstructure:"base_url"`
	Model     string `mapstructure:"model" validate:"required"`
	MaxTokens int    `mapstructure:"max_tokens" validate:"required,min=1,max=8192"`
}

// Enabled reports whether a usable API key is configured.
func (s *AnthropicSettings) Enabled() bool {
	return s.APIKey != "" && s.APIKey != "your_api_key_here"
}

// Validate checks that all fields in AnthropicSettings are valid
func (s *AnthropicSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for AnthropicSettings: %w", err)
	}

	return nil
}
