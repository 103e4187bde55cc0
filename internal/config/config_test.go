package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "API_BASE", "LEVEL_IDS", "HTTP_TIMEOUT", "FETCH_CONCURRENCY", "PLAYER_AVATARS", "SLACK_BOT_TOKEN", "SLACK_CHANNEL_ID", "SLACK_SIGNING_SECRET"} {
		t.Setenv(key, "") // restores the original value after the test
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := Parse()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "https://api.narrowarrow.xyz", cfg.APIBase)
	assert.Equal(t, []string{"1743661104278"}, cfg.LevelIDs)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 1, cfg.FetchConcurrency)
	assert.Empty(t, cfg.PlayerAvatars)
	assert.False(t, cfg.Slack.Enabled())
}

func TestParse_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("API_BASE", "http://api.test")
	t.Setenv("LEVEL_IDS", "111, 222,333")
	t.Setenv("HTTP_TIMEOUT", "3s")
	t.Setenv("FETCH_CONCURRENCY", "4")
	t.Setenv("PLAYER_AVATARS", "Ripted=https://img.test/r.png,kiwi=https://img.test/k.png")
	t.Setenv("SLACK_BOT_TOKEN", "xoxb-test")
	t.Setenv("SLACK_CHANNEL_ID", "C123")
	t.Setenv("SLACK_SIGNING_SECRET", "")

	cfg, err := Parse()

	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "http://api.test", cfg.APIBase)
	assert.Equal(t, []string{"111", "222", "333"}, cfg.LevelIDs)
	assert.Equal(t, 3*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 4, cfg.FetchConcurrency)
	assert.Equal(t, map[string]string{
		"Ripted": "https://img.test/r.png",
		"kiwi":   "https://img.test/k.png",
	}, cfg.PlayerAvatars)
	assert.True(t, cfg.Slack.Enabled())
	assert.Equal(t, "C123", cfg.Slack.ChannelID)
	assert.False(t, cfg.Slack.CommandsEnabled(), "commands need a signing secret")
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{LevelIDs: []string{"a", "b"}, FetchConcurrency: 1, HTTPTimeout: time.Second}
	}

	t.Run("accepts a valid config", func(t *testing.T) {
		cfg := valid()
		assert.NoError(t, cfg.Validate())
	})

	t.Run("rejects an empty level list", func(t *testing.T) {
		cfg := valid()
		cfg.LevelIDs = []string{" ", ""}
		assert.ErrorIs(t, cfg.Validate(), ErrNoLevels)
	})

	t.Run("rejects duplicate levels", func(t *testing.T) {
		cfg := valid()
		cfg.LevelIDs = []string{"a", "b", " a"}
		assert.ErrorIs(t, cfg.Validate(), ErrDuplicateLevel)
	})

	t.Run("rejects zero concurrency", func(t *testing.T) {
		cfg := valid()
		cfg.FetchConcurrency = 0
		assert.Error(t, cfg.Validate())
	})

	t.Run("rejects a non-positive timeout", func(t *testing.T) {
		cfg := valid()
		cfg.HTTPTimeout = 0
		assert.Error(t, cfg.Validate())
	})
}
