package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v6"
	"gopkg.in/yaml.v3"

	"github.com/claude/fitcoach/internal/llm"
)

// PlaceholderAPIKey stands in for a missing AI credential. Requests made with
// it fail at the AI service, not at startup.
const PlaceholderAPIKey = "YOUR_API_KEY_HERE"

type Config struct {
	Server    ServerConfig    `yaml:"server" envPrefix:"FITCOACH_SERVER_"`
	Tailscale TailscaleConfig `yaml:"tailscale" envPrefix:"FITCOACH_TAILSCALE_"`
	Auth      AuthConfig      `yaml:"auth" envPrefix:"FITCOACH_AUTH_"`
	AI        AIConfig        `yaml:"ai"`
	Storage   StorageConfig   `yaml:"storage" envPrefix:"FITCOACH_STORAGE_"`
}

type ServerConfig struct {
	Host string `yaml:"host" env:"HOST"`
	Port int    `yaml:"port" env:"PORT"`
}

type TailscaleConfig struct {
	Enabled  bool   `yaml:"enabled" env:"ENABLED"`
	Hostname string `yaml:"hostname" env:"HOSTNAME"`
	StateDir string `yaml:"state_dir" env:"STATE_DIR"`
}

// AuthConfig guards the machine-facing MCP endpoint. An empty key disables it.
type AuthConfig struct {
	APIKey string `yaml:"api_key" env:"API_KEY"`
}

type AIConfig struct {
	APIKey  string `yaml:"api_key" env:"GEMINI_API_KEY"`
	BaseURL string `yaml:"base_url" env:"FITCOACH_AI_BASE_URL"`
	Model   string `yaml:"model" env:"FITCOACH_AI_MODEL"`

	// KeyMissing is set when no credential was configured and the
	// placeholder is in use.
	KeyMissing bool `yaml:"-"`
}

type StorageConfig struct {
	UsersFile string `yaml:"users_file" env:"USERS_FILE"`
	ChatsFile string `yaml:"chats_file" env:"CHATS_FILE"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Server: ServerConfig{Host: "127.0.0.1", Port: 8501},
		Tailscale: TailscaleConfig{
			Hostname: "fitcoach",
			StateDir: "tsnet-state",
		},
		AI: AIConfig{
			BaseURL: llm.GeminiBaseURL,
			Model:   "gemini-2.0-flash",
		},
		Storage: StorageConfig{
			UsersFile: "users_data.json",
			ChatsFile: "chat_data.json",
		},
	}
}

// Load reads config from a YAML file on top of Default, then applies
// environment variable overrides. A missing file is not an error.
// Env vars:
//
//	FITCOACH_SERVER_HOST, FITCOACH_SERVER_PORT,
//	FITCOACH_TAILSCALE_ENABLED, FITCOACH_TAILSCALE_HOSTNAME, FITCOACH_TAILSCALE_STATE_DIR,
//	FITCOACH_AUTH_API_KEY,
//	GEMINI_API_KEY, FITCOACH_AI_BASE_URL, FITCOACH_AI_MODEL,
//	FITCOACH_STORAGE_USERS_FILE, FITCOACH_STORAGE_CHATS_FILE
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("reading config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	if cfg.AI.APIKey == "" {
		cfg.AI.APIKey = PlaceholderAPIKey
		cfg.AI.KeyMissing = true
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// Warnings lists non-fatal configuration problems to show to the operator.
func (c *Config) Warnings() []string {
	var out []string
	if c.AI.KeyMissing {
		out = append(out, "Please set your GEMINI_API_KEY in .env file or environment variables.")
	}
	return out
}

func (c *Config) validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535")
	}
	if c.Tailscale.Enabled && c.Tailscale.Hostname == "" {
		return fmt.Errorf("tailscale.hostname is required when tailscale is enabled")
	}
	if c.AI.Model == "" {
		return fmt.Errorf("ai.model is required")
	}
	if c.Storage.UsersFile == "" {
		return fmt.Errorf("storage.users_file is required")
	}
	if c.Storage.ChatsFile == "" {
		return fmt.Errorf("storage.chats_file is required")
	}
	return nil
}
