// Package connector implements clients for external services used by the
// pipeline.
package connector

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"lecture_note_service/internal/domain/llm"
	"lecture_note_service/internal/pkg/config"
	"lecture_note_service/internal/pkg/logger"
)

const anthropicVersion = "2023-06-01"

type anthropicConnector struct {
	settings *config.AnthropicSettings
	client   *http.Client
	logger   logger.Logger
}

// NewAnthropicConnector creates a language model client for the Anthropic
// messages API.
func NewAnthropicConnector(settings *config.AnthropicSettings, logger logger.Logger) (llm.LanguageModel, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if !settings.Enabled() {
		return nil, fmt.Errorf("anthropic api key is not configured")
	}
	return &anthropicConnector{
		settings: settings,
		client:   &http.Client{Timeout: 120 * time.Second},
		logger:   logger,
	}, nil
}

type messageRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messageResponse struct {
	Content []contentBlock `json:"content"`
	Error   *apiError      `json:"error,omitempty"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type apiError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func (c *anthropicConnector) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	if maxTokens <= 0 {
		maxTokens = c.settings.MaxTokens
	}
	reqBody := messageRequest{
		Model:     c.settings.Model,
		MaxTokens: maxTokens,
		Messages:  []message{{Role: "user", Content: prompt}},
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := c.settings.BaseURL + "/v1/messages"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.settings.APIKey)
	req.Header.Set("anthropic-version", anthropicVersion)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request to %s failed: %w", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	var parsed messageResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		if parsed.Error != nil {
			return "", fmt.Errorf("api error %s: %s", parsed.Error.Type, parsed.Error.Message)
		}
		return "", fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}

	var text string
	for _, block := range parsed.Content {
		if block.Type == "text" {
			text += block.Text
		}
	}
	if text == "" {
		return "", fmt.Errorf("empty completion in response")
	}
	return text, nil
}
