package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	ProviderOpenAI    = "openai"
	ProviderHeuristic = "heuristic"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
	} `yaml:"server"`

	CORS struct {
		AllowedOrigins []string `yaml:"allowedOrigins"`
	} `yaml:"cors"`

	AI struct {
		Provider    string  `yaml:"provider"`
		Model       string  `yaml:"model"`
		APIKey      string  `yaml:"apiKey"`
		BaseURL     string  `yaml:"baseURL"`
		MaxTokens   int     `yaml:"maxTokens"`
		Temperature float32 `yaml:"temperature"`
	} `yaml:"ai"`

	Limits struct {
		MaxTextChars int `yaml:"maxTextChars"`
		RateCapacity int `yaml:"rateCapacity"`
		RateRefill   int `yaml:"rateRefill"`
	} `yaml:"limits"`

	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`

	Client struct {
		Endpoint string `yaml:"endpoint"`
		Origin   string `yaml:"origin"`
	} `yaml:"client"`
}

// Default returns the local development settings: the service on
// 127.0.0.1:5000, every origin allowed, GPT-4 at temperature 0.2.
func Default() *Config {
	var cfg Config
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = 5000
	cfg.CORS.AllowedOrigins = []string{"*"}
	cfg.AI.Provider = ProviderOpenAI
	cfg.AI.Model = "gpt-4"
	cfg.AI.MaxTokens = 500
	cfg.AI.Temperature = 0.2
	cfg.Limits.MaxTextChars = 20000
	cfg.Limits.RateCapacity = 30
	cfg.Limits.RateRefill = 1
	cfg.Log.Level = "info"
	cfg.Client.Endpoint = "http://127.0.0.1:5000/analyze"
	return &cfg
}

// Load reads the YAML file at path on top of Default. A missing file is not
// an error. Environment variables (optionally from .env) override the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, err
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse %s: %w", path, err)
			}
		}
	}

	// .env is optional
	_ = godotenv.Load()
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		c.AI.APIKey = v
	}
	if v := os.Getenv("TRUTHLENS_AI_PROVIDER"); v != "" {
		c.AI.Provider = v
	}
	if v := os.Getenv("TRUTHLENS_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
}

// Validate checks the fields the service cannot run without.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	switch c.AI.Provider {
	case ProviderOpenAI, ProviderHeuristic:
	default:
		return fmt.Errorf("unknown ai provider: %q (allowed: %s, %s)", c.AI.Provider, ProviderOpenAI, ProviderHeuristic)
	}
	if c.Limits.MaxTextChars <= 0 {
		return fmt.Errorf("limits.maxTextChars must be positive")
	}
	if c.Limits.RateCapacity <= 0 || c.Limits.RateRefill <= 0 {
		return fmt.Errorf("limits.rateCapacity and limits.rateRefill must be positive")
	}
	return nil
}

// Addr is the listen address of the service.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
