package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds all configuration for the application
type Config struct {
	Discord DiscordConfig
	Redis   RedisConfig
	Logging LoggingConfig
	Assets  AssetsConfig
}

// DiscordConfig holds Discord-specific configuration
type DiscordConfig struct {
	Token   string `env:"DISCORD_TOKEN"`
	AppID   string `env:"DISCORD_APP_ID"`
	GuildID string `env:"DISCORD_GUILD_ID"` // Optional: for guild-specific commands
}

// RedisConfig holds Redis-specific configuration. An empty URL means the
// in-memory repositories are used.
type RedisConfig struct {
	URL string `env:"REDIS_URL"`
}

// LoggingConfig holds structured logging settings
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"console"`
}

// AssetsConfig points at the hosted chat card images
type AssetsConfig struct {
	BaseURL string `env:"ASSET_BASE_URL"`
}

// Load parses configuration from environment variables without enforcing
// the bot-only requirements. The CLI uses this directly.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// LoadBot loads configuration and validates what the Discord bot needs
func LoadBot() (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}

	if cfg.Discord.Token == "" {
		return nil, fmt.Errorf("DISCORD_TOKEN is required")
	}
	if cfg.Discord.AppID == "" {
		return nil, fmt.Errorf("DISCORD_APP_ID is required")
	}

	return cfg, nil
}

// ImageURL joins an asset path onto the configured base URL. It returns an
// empty string when no base URL is configured.
func (a AssetsConfig) ImageURL(path string) string {
	if a.BaseURL == "" || path == "" {
		return ""
	}
	return fmt.Sprintf("%s/%s", trimSlash(a.BaseURL), path)
}

func trimSlash(s string) string {
	for len(s) > 0 && s[len(s)-1] == '/' {
		s = s[:len(s)-1]
	}
	return s
}
