// Package config provides configuration loading and validation for
// cloudsift.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/cloudsift/cloudsift/internal/llm"
	"github.com/cloudsift/cloudsift/pkg/pathutil"
)

// Config is the complete service configuration.
type Config struct {
	Server ServerConfig `yaml:"server,omitempty"`
	LLM    LLMConfig    `yaml:"llm,omitempty"`
}

// ServerConfig configures the HTTP boundary.
type ServerConfig struct {
	Addr            string        `yaml:"addr,omitempty"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout,omitempty"`
}

// LLMConfig configures the completion client. An empty APIKey disables
// all external calls; the pipeline then runs in fallback mode.
type LLMConfig struct {
	APIKey      string        `yaml:"api_key,omitempty"`
	BaseURL     string        `yaml:"base_url,omitempty"`
	Model       string        `yaml:"model,omitempty"`
	MaxAttempts int           `yaml:"max_attempts,omitempty"`
	BackoffBase time.Duration `yaml:"backoff_base,omitempty"`
	Workers     int           `yaml:"workers,omitempty"`
}

// alternateModels are built-in fallbacks appended after the configured
// primary model when distinct from it.
var alternateModels = []string{
	"deepseek/deepseek-chat-v3-0324:free",
	"meta-llama/llama-3.3-70b-instruct:free",
}

// Default returns the configuration used when no file is provided.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ShutdownTimeout: 10 * time.Second,
		},
		LLM: LLMConfig{
			BaseURL:     llm.DefaultBaseURL,
			Model:       llm.DefaultModel,
			MaxAttempts: llm.DefaultMaxAttempts,
			BackoffBase: llm.DefaultBackoffBase,
			Workers:     3,
		},
	}
}

// Load reads and parses a YAML configuration file over the defaults.
func Load(path string) (*Config, error) {
	validPath, err := pathutil.ValidateConfigPath(path)
	if err != nil {
		return nil, fmt.Errorf("invalid config path: %w", err)
	}

	data, err := os.ReadFile(validPath) //nolint:gosec // Path validated above
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// ApplyEnv overlays provider settings from the environment. The
// credential is only ever read from the environment.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		c.LLM.APIKey = v
	}
	if v := os.Getenv("OPENAI_BASE_URL"); v != "" {
		c.LLM.BaseURL = v
	}
	if v := os.Getenv("OPENAI_MODEL"); v != "" {
		c.LLM.Model = v
	}
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if c.LLM.Model == "" {
		return fmt.Errorf("llm.model is required")
	}
	if c.LLM.MaxAttempts < 1 {
		return fmt.Errorf("llm.max_attempts must be at least 1")
	}
	if c.LLM.Workers < 1 {
		return fmt.Errorf("llm.workers must be at least 1")
	}
	return nil
}

// Models returns the completion model rotation: the primary first, then
// the built-in alternates that differ from it.
func (c *LLMConfig) Models() []string {
	models := []string{c.Model}
	for _, m := range alternateModels {
		if m != c.Model {
			models = append(models, m)
		}
	}
	return models
}

// ClientConfig builds the completion client configuration.
func (c *LLMConfig) ClientConfig() llm.Config {
	return llm.Config{
		APIKey:      c.APIKey,
		BaseURL:     c.BaseURL,
		Models:      c.Models(),
		MaxAttempts: c.MaxAttempts,
		BackoffBase: c.BackoffBase,
	}
}
