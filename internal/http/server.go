package http

import (
	"net/http"

	"github.com/mauv0809/narrow-rankings/internal/config"
	"github.com/mauv0809/narrow-rankings/internal/metrics"
	"github.com/mauv0809/narrow-rankings/internal/notifier"
)

func NewServer(pages Pages, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config, notifier notifier.Notifier) *Server {
	server := &Server{
		Pages:          pages,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Notifier:       notifier,
		Router:         http.NewServeMux(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// e.g. Chain(s.MyHandler(), paramsMiddleware, authMiddleware)
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("/health", Chain(s.HealthCheckHandler(), paramsMiddleware))

	s.Router.Handle("GET /{$}", Chain(s.LevelsPageHandler(), paramsMiddleware))
	s.Router.Handle("GET /level", Chain(s.LevelPageHandler(), paramsMiddleware))
	s.Router.Handle("GET /player", Chain(s.PlayerPageHandler(), paramsMiddleware))
	s.Router.Handle("GET /leaderboard", Chain(s.LeaderboardPageHandler(), paramsMiddleware))

	s.Router.Handle("GET /api/levels", Chain(s.LevelsAPIHandler(), paramsMiddleware))
	s.Router.Handle("GET /api/level", Chain(s.LevelAPIHandler(), paramsMiddleware))
	s.Router.Handle("GET /api/player", Chain(s.PlayerAPIHandler(), paramsMiddleware))
	s.Router.Handle("GET /api/leaderboard", Chain(s.LeaderboardAPIHandler(), paramsMiddleware))

	s.Router.Handle("/notify/leaderboard", Chain(s.NotifyLeaderboardHandler(), paramsMiddleware))
	s.Router.Handle("/notify/player", Chain(s.NotifyPlayerHandler(), paramsMiddleware))

	s.Router.Handle("POST /slack/command/leaderboard", Chain(s.LeaderboardCommandHandler(), paramsMiddleware, s.slackVerificationMiddleware))
	s.Router.Handle("POST /slack/command/player", Chain(s.PlayerCommandHandler(), paramsMiddleware, s.slackVerificationMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
