package notifier

import "github.com/mauv0809/narrow-rankings/internal/views"

// Notifier defines a high-level interface for publishing rankings.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	SendLeaderboard(page *views.LeaderboardPage, dryRun bool) error
	SendPlayerProfile(page *views.PlayerPage, dryRun bool) error

	// For formatting responses for slash commands
	FormatLeaderboardResponse(page *views.LeaderboardPage) (any, error)
	FormatPlayerProfileResponse(page *views.PlayerPage) (any, error)
	FormatPlayerNotFoundResponse(query string) (any, error)
}
