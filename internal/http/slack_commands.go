package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/narrow-rankings/internal/views"
	"github.com/slack-go/slack"
)

// slackVerificationMiddleware rejects requests that do not carry a valid
// Slack signature. Slash commands are unavailable until both the bot token
// and the signing secret are configured.
func (s *Server) slackVerificationMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.Notifier == nil || !s.Cfg.Slack.CommandsEnabled() {
			http.Error(w, "Slack commands are not configured", http.StatusServiceUnavailable)
			return
		}

		verifier, err := slack.NewSecretsVerifier(r.Header, s.Cfg.Slack.SigningSecret)
		if err != nil {
			log.Warn("Rejected Slack request", "error", err)
			http.Error(w, "Invalid Slack request", http.StatusUnauthorized)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Error("Failed to read request body", "error", err)
			http.Error(w, "Failed to read request body", http.StatusInternalServerError)
			return
		}
		r.Body = io.NopCloser(bytes.NewBuffer(body))

		if _, err := verifier.Write(body); err != nil {
			http.Error(w, "Invalid Slack request", http.StatusUnauthorized)
			return
		}
		if err := verifier.Ensure(); err != nil {
			log.Warn("Slack signature mismatch", "error", err)
			http.Error(w, "Invalid Slack signature", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// respondWithSlackMsg is a helper to format and write a Slack message as an HTTP response.
func respondWithSlackMsg(w http.ResponseWriter, msg any) {
	slackMsg, ok := msg.(slack.Message)
	if !ok {
		http.Error(w, "Invalid message format for Slack", http.StatusInternalServerError)
		log.Error("Failed to cast message to slack.Message")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(slackMsg); err != nil {
		log.Error("Failed to encode slack message to JSON", "error", err)
	}
}

// LeaderboardCommandHandler returns a handler for the /leaderboard Slack command.
func (s *Server) LeaderboardCommandHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cmd, err := slack.SlashCommandParse(r)
		if err != nil {
			http.Error(w, "Error parsing form", http.StatusBadRequest)
			return
		}
		log.Info("Received leaderboard command", "user", cmd.UserName, "channel", cmd.ChannelID)

		msg, err := s.Notifier.FormatLeaderboardResponse(s.Pages.Leaderboard(r.Context()))
		if err != nil {
			http.Error(w, "Failed to format leaderboard", http.StatusInternalServerError)
			log.Error("Failed to format leaderboard", "error", err)
			return
		}
		respondWithSlackMsg(w, msg)
	}
}

// PlayerCommandHandler returns a handler for the /player Slack command.
func (s *Server) PlayerCommandHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cmd, err := slack.SlashCommandParse(r)
		if err != nil {
			http.Error(w, "Error parsing form", http.StatusBadRequest)
			return
		}
		username := strings.TrimSpace(cmd.Text)
		if username == "" {
			http.Error(w, "Player name is required.", http.StatusBadRequest)
			return
		}
		log.Info("Received player command", "player", username)

		var msg any
		page, err := s.Pages.Player(r.Context(), username)
		switch {
		case errors.Is(err, views.ErrPlayerNotFound):
			msg, err = s.Notifier.FormatPlayerNotFoundResponse(username)
		case err != nil:
			log.Error("Failed to build player profile", "player", username, "error", err)
			http.Error(w, "Failed to load player", http.StatusInternalServerError)
			return
		default:
			msg, err = s.Notifier.FormatPlayerProfileResponse(page)
		}
		if err != nil {
			http.Error(w, "Failed to format player profile", http.StatusInternalServerError)
			log.Error("Failed to format player profile", "error", err)
			return
		}
		respondWithSlackMsg(w, msg)
	}
}
