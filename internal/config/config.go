// Package config resolves process configuration for the agent.
//
// Precedence, lowest to highest: built-in defaults, the YAML file, variables
// from a .env file, the process environment, then CLI flags (applied by the
// caller before Finalize).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"

	DefaultFile           = "agent.yaml"
	DefaultDotEnv         = ".env"
	DefaultModel          = "anthropic/claude-haiku-4.5"
	DefaultAnthropicModel = "claude-3-7-sonnet-latest"
	DefaultBaseURL        = "https://openrouter.ai/api/v1"
	DefaultShell          = "sh"
	DefaultMaxTokens      = 4096
)

type Config struct {
	Provider  string `yaml:"provider"`
	Model     string `yaml:"model"`
	BaseURL   string `yaml:"base_url"`
	APIKey    string `yaml:"api_key"`
	Shell     string `yaml:"shell"`
	MaxTokens int64  `yaml:"max_tokens"`
}

// Options locates the optional configuration sources.
type Options struct {
	// File is the YAML config path. Empty means AGT_CONFIG, then agent.yaml;
	// only an explicitly named file is required to exist.
	File string
	// DotEnv is the dotenv path; empty means .env. A missing file is ignored.
	DotEnv string
	// Provider, when set, wins over the file and AGT_PROVIDER. It is applied
	// before the provider-specific key and base URL variables are read.
	Provider string
}

// Load reads every configuration source except CLI flags.
func Load(opts Options) (Config, error) {
	cfg := Config{Provider: ProviderOpenAI}

	path, explicit := opts.File, opts.File != ""
	if !explicit {
		if p := os.Getenv("AGT_CONFIG"); p != "" {
			path, explicit = p, true
		} else {
			path = DefaultFile
		}
	}
	if err := cfg.loadFile(path); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}

	dotenv := opts.DotEnv
	if dotenv == "" {
		dotenv = DefaultDotEnv
	}
	// godotenv never overrides variables already set in the environment.
	if err := godotenv.Load(dotenv); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", dotenv, err)
	}

	if err := cfg.applyEnv(opts.Provider); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv(provider string) error {
	if v := os.Getenv("AGT_PROVIDER"); v != "" {
		c.Provider = v
	}
	if provider != "" {
		c.Provider = provider
	}
	if v := os.Getenv("USE_LLM"); v != "" {
		c.Model = v
	}
	if v := os.Getenv("AGT_SHELL"); v != "" {
		c.Shell = v
	}
	if v := os.Getenv(c.baseURLEnv()); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv(c.APIKeyEnv()); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv("AGT_MAX_TOKENS"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid AGT_MAX_TOKENS %q: %w", v, err)
		}
		c.MaxTokens = n
	}
	return nil
}

// APIKeyEnv names the environment variable holding the key for c.Provider.
func (c Config) APIKeyEnv() string {
	if c.Provider == ProviderAnthropic {
		return "ANTHROPIC_API_KEY"
	}
	return "OPENROUTER_API_KEY"
}

func (c Config) baseURLEnv() string {
	if c.Provider == ProviderAnthropic {
		return "ANTHROPIC_BASE_URL"
	}
	return "OPENROUTER_BASE_URL"
}

// Finalize fills provider-dependent defaults and validates the result.
func (c *Config) Finalize() error {
	switch c.Provider {
	case ProviderOpenAI:
		if c.Model == "" {
			c.Model = DefaultModel
		}
		if c.BaseURL == "" {
			c.BaseURL = DefaultBaseURL
		}
	case ProviderAnthropic:
		if c.Model == "" {
			c.Model = DefaultAnthropicModel
		}
	default:
		return fmt.Errorf("unknown provider %q (want %s or %s)", c.Provider, ProviderOpenAI, ProviderAnthropic)
	}
	if c.Shell == "" {
		c.Shell = DefaultShell
	}
	if c.MaxTokens <= 0 {
		c.MaxTokens = DefaultMaxTokens
	}
	if c.APIKey == "" {
		return fmt.Errorf("%s is not set", c.APIKeyEnv())
	}
	return nil
}
