package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// RestConfig aggregates all settings of the editor REST API process.
type RestConfig struct {
	Port      string            `mapstructure:"port" validate:"required"`
	Logger    LoggerSettings    `mapstructure:"logger"`
	Database  DatabaseSettings  `mapstructure:"database"`
	Anthropic AnthropicSettings `mapstructure:"anthropic"`
	Pipeline  PipelineSettings  `mapstructure:"pipeline"`
}

// CliConfig aggregates all settings of the pipeline CLI process.
type CliConfig struct {
	Logger    LoggerSettings    `mapstructure:"logger"`
	Database  DatabaseSettings  `mapstructure:"database"`
	Anthropic AnthropicSettings `mapstructure:"anthropic"`
	Pipeline  PipelineSettings  `mapstructure:"pipeline"`
}

// InitializeRestConfig loads, overlays and validates the REST API configuration.
func InitializeRestConfig(configPath string) (*RestConfig, error) {
	var cfg RestConfig
	if err := loadInto(configPath, &cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(&cfg.Anthropic)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// InitializeCliConfig loads, overlays and validates the CLI configuration.
func InitializeCliConfig(configPath string) (*CliConfig, error) {
	var cfg CliConfig
	if err := loadInto(configPath, &cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(&cfg.Anthropic)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks all nested settings of the REST configuration.
func (c *RestConfig) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port is required")
	}
	return validateShared(&c.Logger, &c.Database, &c.Anthropic, &c.Pipeline)
}

// Validate checks all nested settings of the CLI configuration.
func (c *CliConfig) Validate() error {
	return validateShared(&c.Logger, &c.Database, &c.Anthropic, &c.Pipeline)
}

func validateShared(l *LoggerSettings, d *DatabaseSettings, a *AnthropicSettings, p *PipelineSettings) error {
	if err := l.Validate(); err != nil {
		return err
	}
	if err := d.Validate(); err != nil {
		return err
	}
	if err := a.Validate(); err != nil {
		return err
	}
	if err := p.Validate(); err != nil {
		return err
	}
	return nil
}

// loadInto reads a YAML config file into target, after loading a .env file
// (if present) so secret material stays out of the config file.
func loadInto(configPath string, target interface{}) error {
	// Matches the original workflow of keeping ANTHROPIC_API_KEY in .env.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetEnvPrefix("LNS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	if err := v.Unmarshal(target); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return nil
}

func applyEnvOverrides(a *AnthropicSettings) {
	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
		a.APIKey = key
	}
	if a.BaseURL == "" {
		a.BaseURL = DefaultAnthropicBaseURL
	}
}
