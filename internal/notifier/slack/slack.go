package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/narrow-rankings/internal/format"
	"github.com/mauv0809/narrow-rankings/internal/metrics"
	"github.com/mauv0809/narrow-rankings/internal/notifier"
	"github.com/mauv0809/narrow-rankings/internal/views"
	"github.com/slack-go/slack"
)

// maxRows caps the players or completions listed in one message.
const maxRows = 20

// slackClient is an interface that contains the methods from the slack.Client that we use.
// This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = &Notifier{}

// Notifier posts rankings to a Slack channel.
type Notifier struct {
	api       slackClient
	channelID string
	metrics   metrics.Metrics
}

// NewNotifier creates a new Notifier.
func NewNotifier(token, channelID string, metrics metrics.Metrics) *Notifier {
	api := slack.New(token)
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

// NewNotifierWithAPI creates a new Notifier with a specific slack.Client instance.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID string, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

func (s *Notifier) sendMessage(message slack.Message, dryRun bool) (string, string, error) {
	if dryRun {
		jsonMsg, _ := json.MarshalIndent(message, "", "  ")
		log.Info("[Dry Run] Would send Slack message", "channel", s.channelID, "message", string(jsonMsg))
		return "dry-run-channel", "dry-run-ts", nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	channelID, timestamp, err := s.api.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionBlocks(message.Blocks.BlockSet...),
		slack.MsgOptionAsUser(true),
	)
	if err != nil {
		s.metrics.IncSlackNotifFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", s.channelID)
		return "", "", fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncSlackNotifSent()
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return channelID, timestamp, nil
}

// SendLeaderboard posts the global standings.
func (s *Notifier) SendLeaderboard(page *views.LeaderboardPage, dryRun bool) error {
	_, _, err := s.sendMessage(formatLeaderboard(page), dryRun)
	return err
}

// SendPlayerProfile posts one player's profile and completions.
func (s *Notifier) SendPlayerProfile(page *views.PlayerPage, dryRun bool) error {
	_, _, err := s.sendMessage(formatPlayerProfile(page), dryRun)
	return err
}

// FormatLeaderboardResponse formats the leaderboard for a slash command response.
func (s *Notifier) FormatLeaderboardResponse(page *views.LeaderboardPage) (any, error) {
	return inChannel(formatLeaderboard(page)), nil
}

// FormatPlayerProfileResponse formats a player profile for a slash command response.
func (s *Notifier) FormatPlayerProfileResponse(page *views.PlayerPage) (any, error) {
	return inChannel(formatPlayerProfile(page)), nil
}

// FormatPlayerNotFoundResponse formats a message for a slash command response when no player matches.
func (s *Notifier) FormatPlayerNotFoundResponse(query string) (any, error) {
	return formatPlayerNotFound(query), nil
}

// inChannel makes a slash command response visible to the whole channel.
func inChannel(msg slack.Message) slack.Message {
	msg.ResponseType = slack.ResponseTypeInChannel
	return msg
}

// formatLeaderboard creates a Slack message to display the player leaderboard.
func formatLeaderboard(page *views.LeaderboardPage) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "🏹 Narrow Arrow Leaderboard 🏹", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	if page == nil || len(page.Players) == 0 {
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", "No completions yet. Go beat some levels!", true, false), nil, nil))
		return slack.NewBlockMessage(blocks...)
	}

	for i, player := range page.Players {
		if i == maxRows {
			break
		}
		playerText := fmt.Sprintf("%d. %s *%s*\n> *Points*: %d | *Completions*: %d | *Hardest*: %s",
			player.Placement,
			player.Medal,
			player.Username,
			player.TotalPoints,
			player.Completions,
			player.HardestLevel,
		)
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", playerText, false, false), nil, nil))
	}

	if hidden := len(page.Players) - maxRows; hidden > 0 {
		more := fmt.Sprintf("…and %d more", hidden)
		blocks = append(blocks, slack.NewContextBlock("", slack.NewTextBlockObject("plain_text", more, true, false)))
	}

	return slack.NewBlockMessage(blocks...)
}

// formatPlayerProfile creates a Slack message to display a single player's completions.
func formatPlayerProfile(page *views.PlayerPage) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := fmt.Sprintf("🏹 %s 🏹", page.Username)
	blocks = append(blocks, slack.NewHeaderBlock(slack.NewTextBlockObject("plain_text", headerText, true, false)))

	summary := fmt.Sprintf("> *Total Points*: %d\n> *Completions*: %d\n> *Hardest Level*: %s",
		page.TotalPoints,
		page.Completions,
		page.HardestLevel,
	)
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", summary, false, false), nil, nil))

	if len(page.Cards) == 0 {
		return slack.NewBlockMessage(blocks...)
	}

	lines := make([]string, 0, min(len(page.Cards), maxRows))
	for i, card := range page.Cards {
		if i == maxRows {
			break
		}
		lines = append(lines, fmt.Sprintf("• Top %d %s: %s (%s) %d pts",
			card.LevelRank,
			card.LevelName,
			card.Time,
			card.Date,
			card.Points,
		))
	}
	blocks = append(blocks, slack.NewDividerBlock())
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", strings.Join(lines, "\n"), false, false), nil, nil))

	if page.Cards[0].LevelRank <= 3 {
		badge := fmt.Sprintf("%s Cleared a Top %d level!", format.Medal(page.Cards[0].LevelRank), page.Cards[0].LevelRank)
		blocks = append(blocks, slack.NewContextBlock("", slack.NewTextBlockObject("plain_text", badge, true, false)))
	}

	return slack.NewBlockMessage(blocks...)
}

// formatPlayerNotFound creates a Slack message for a username without completions.
func formatPlayerNotFound(query string) slack.Message {
	text := fmt.Sprintf("Sorry, I couldn't find a player named *%s*. Usernames are case-sensitive.", query)
	return slack.NewBlockMessage(
		slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", text, false, false), nil, nil),
	)
}
