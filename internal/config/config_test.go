package config_test

import (
	"os"
	"testing"

	"github.com/KirkDiggler/bnb-bot-discord/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"LOG_LEVEL", "LOG_FORMAT", "REDIS_URL"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Empty(t, cfg.Redis.URL)
}

func TestLoadBot_RequiresDiscordCredentials(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "")
	t.Setenv("DISCORD_APP_ID", "")

	_, err := config.LoadBot()
	assert.ErrorContains(t, err, "DISCORD_TOKEN")

	t.Setenv("DISCORD_TOKEN", "token-value")
	_, err = config.LoadBot()
	assert.ErrorContains(t, err, "DISCORD_APP_ID")

	t.Setenv("DISCORD_APP_ID", "1234")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	cfg, err := config.LoadBot()
	require.NoError(t, err)
	assert.Equal(t, "token-value", cfg.Discord.Token)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Redis.URL)
}

func TestAssetsConfig_ImageURL(t *testing.T) {
	assert.Empty(t, config.AssetsConfig{}.ImageURL("elements/melee/Melee-Kinetic.png"))

	assets := config.AssetsConfig{BaseURL: "https://cdn.example.com/bnb/"}
	assert.Equal(t, "https://cdn.example.com/bnb/elements/melee/Melee-Kinetic.png",
		assets.ImageURL("elements/melee/Melee-Kinetic.png"))
}
