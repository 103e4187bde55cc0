package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

var (
	ErrNoLevels       = errors.New("LEVEL_IDS must list at least one level")
	ErrDuplicateLevel = errors.New("LEVEL_IDS lists a level more than once")
)

// Load reads configuration from environment variables and .env file.
// Invalid configuration is fatal.
func Load() Config {
	err := godotenv.Load()
	if err != nil {
		log.Info("No .env file found, reading from environment variables")
	}

	cfg, err := Parse()
	if err != nil {
		log.Fatal("Invalid configuration", "error", err)
	}
	return cfg
}

// Parse builds a Config from the current environment and validates it.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate normalizes the level list and checks the constraints the
// environment parser cannot express.
func (c *Config) Validate() error {
	levelIDs := make([]string, 0, len(c.LevelIDs))
	seen := make(map[string]bool, len(c.LevelIDs))
	for _, id := range c.LevelIDs {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if seen[id] {
			return fmt.Errorf("%w: %s", ErrDuplicateLevel, id)
		}
		seen[id] = true
		levelIDs = append(levelIDs, id)
	}
	if len(levelIDs) == 0 {
		return ErrNoLevels
	}
	c.LevelIDs = levelIDs

	if c.FetchConcurrency < 1 {
		return fmt.Errorf("FETCH_CONCURRENCY must be at least 1, got %d", c.FetchConcurrency)
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive, got %s", c.HTTPTimeout)
	}
	return nil
}
