package config

import "time"

// Config holds all configuration for the application.
type Config struct {
	Port             string            `env:"PORT"              envDefault:"8080"`
	APIBase          string            `env:"API_BASE"          envDefault:"https://api.narrowarrow.xyz"`
	LevelIDs         []string          `env:"LEVEL_IDS"         envDefault:"1743661104278" envSeparator:","`
	HTTPTimeout      time.Duration     `env:"HTTP_TIMEOUT"      envDefault:"10s"`
	FetchConcurrency int               `env:"FETCH_CONCURRENCY" envDefault:"1"`
	PlayerAvatars    map[string]string `env:"PLAYER_AVATARS"    envSeparator:"," envKeyValSeparator:"="`
	Slack            SlackConfig       `envPrefix:"SLACK_"`
}

type SlackConfig struct {
	Token         string `env:"BOT_TOKEN"`
	ChannelID     string `env:"CHANNEL_ID"`
	SigningSecret string `env:"SIGNING_SECRET"`
}

// Enabled reports whether a Slack bot token is configured.
func (s SlackConfig) Enabled() bool {
	return s.Token != ""
}

// CommandsEnabled reports whether incoming slash commands can be verified.
func (s SlackConfig) CommandsEnabled() bool {
	return s.Enabled() && s.SigningSecret != ""
}
