package http

import (
	"context"
	"net/http"

	"github.com/mauv0809/narrow-rankings/internal/config"
	"github.com/mauv0809/narrow-rankings/internal/metrics"
	"github.com/mauv0809/narrow-rankings/internal/notifier"
	"github.com/mauv0809/narrow-rankings/internal/views"
)

// Pages builds the view models served by the site and the JSON API.
type Pages interface {
	Levels(ctx context.Context) *views.LevelsPage
	Level(ctx context.Context, levelID string) (*views.LevelPage, error)
	Player(ctx context.Context, username string) (*views.PlayerPage, error)
	Leaderboard(ctx context.Context) *views.LeaderboardPage
}

type Server struct {
	Pages          Pages
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	// Notifier is nil when Slack is not configured.
	Notifier notifier.Notifier
	Router   *http.ServeMux
}
