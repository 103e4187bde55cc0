package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/narrow-rankings/internal/views"
	"github.com/vmihailenco/msgpack/v5"
)

const (
	levelUnavailableMessage = "Failed to load level data."
	playerNotFoundMessage   = "Player not found."
	msgpackContentType      = "application/msgpack"
)

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

// Pages

func (s *Server) LevelsPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderPage(w, http.StatusOK, views.LevelsTemplate, s.Pages.Levels(r.Context()))
	}
}

func (s *Server) LevelPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		levelID := r.URL.Query().Get("id")
		if levelID == "" {
			renderError(w, http.StatusBadRequest, "Level", "Missing level id.")
			return
		}
		page, err := s.Pages.Level(r.Context(), levelID)
		if err != nil {
			log.Warn("Failed to build level page", "levelID", levelID, "error", err)
			status, message := errorStatus(err)
			renderError(w, status, "Level", message)
			return
		}
		renderPage(w, http.StatusOK, views.LevelTemplate, page)
	}
}

func (s *Server) PlayerPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := r.URL.Query().Get("name")
		if username == "" {
			renderError(w, http.StatusBadRequest, "Player", "Missing player name.")
			return
		}
		page, err := s.Pages.Player(r.Context(), username)
		if err != nil {
			log.Info("Player page not available", "username", username, "error", err)
			status, message := errorStatus(err)
			renderError(w, status, "Player", message)
			return
		}
		renderPage(w, http.StatusOK, views.PlayerTemplate, page)
	}
}

func (s *Server) LeaderboardPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderPage(w, http.StatusOK, views.LeaderboardTemplate, s.Pages.Leaderboard(r.Context()))
	}
}

// API

func (s *Server) LevelsAPIHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeData(w, r, http.StatusOK, s.Pages.Levels(r.Context()))
	}
}

func (s *Server) LevelAPIHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		levelID := r.URL.Query().Get("id")
		if levelID == "" {
			http.Error(w, "Missing 'id' parameter", http.StatusBadRequest)
			return
		}
		page, err := s.Pages.Level(r.Context(), levelID)
		if err != nil {
			log.Warn("Failed to build level", "levelID", levelID, "error", err)
			status, message := errorStatus(err)
			http.Error(w, message, status)
			return
		}
		writeData(w, r, http.StatusOK, page)
	}
}

func (s *Server) PlayerAPIHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := r.URL.Query().Get("name")
		if username == "" {
			http.Error(w, "Missing 'name' parameter", http.StatusBadRequest)
			return
		}
		page, err := s.Pages.Player(r.Context(), username)
		if err != nil {
			status, message := errorStatus(err)
			http.Error(w, message, status)
			return
		}
		writeData(w, r, http.StatusOK, page)
	}
}

func (s *Server) LeaderboardAPIHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeData(w, r, http.StatusOK, s.Pages.Leaderboard(r.Context()))
	}
}

// Notifications

func (s *Server) NotifyLeaderboardHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.Notifier == nil {
			http.Error(w, "Slack notifications are not configured", http.StatusServiceUnavailable)
			return
		}
		isDryRun := isDryRunFromContext(r)
		page := s.Pages.Leaderboard(r.Context())
		if err := s.Notifier.SendLeaderboard(page, isDryRun); err != nil {
			log.Error("Failed to send leaderboard", "error", err)
			http.Error(w, "Failed to send leaderboard", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "Leaderboard sent with %d players.", len(page.Players))
	}
}

func (s *Server) NotifyPlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.Notifier == nil {
			http.Error(w, "Slack notifications are not configured", http.StatusServiceUnavailable)
			return
		}
		username := r.URL.Query().Get("name")
		if username == "" {
			http.Error(w, "Missing 'name' parameter", http.StatusBadRequest)
			return
		}
		page, err := s.Pages.Player(r.Context(), username)
		if err != nil {
			status, message := errorStatus(err)
			http.Error(w, message, status)
			return
		}
		if err := s.Notifier.SendPlayerProfile(page, isDryRunFromContext(r)); err != nil {
			log.Error("Failed to send player profile", "username", username, "error", err)
			http.Error(w, "Failed to send player profile", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "Profile of %s sent.", page.Username)
	}
}

// errorStatus maps a page error to a status code and user-facing message.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, views.ErrPlayerNotFound):
		return http.StatusNotFound, playerNotFoundMessage
	case errors.Is(err, views.ErrLevelUnavailable):
		return http.StatusBadGateway, levelUnavailableMessage
	}
	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}

func renderPage(w http.ResponseWriter, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := views.Render(w, name, data); err != nil {
		log.Error("Failed to render page", "template", name, "error", err)
	}
}

func renderError(w http.ResponseWriter, status int, title, message string) {
	renderPage(w, status, views.ErrorTemplate, views.ErrorPage{Title: title, Message: message})
}

// wantsMsgpack reports whether the client asked for a MessagePack body.
func wantsMsgpack(r *http.Request) bool {
	if r.URL.Query().Get("format") == "msgpack" {
		return true
	}
	return strings.Contains(r.Header.Get("Accept"), msgpackContentType)
}

// writeData encodes v as JSON, or as MessagePack using the same field names
// when the client asks for it.
func writeData(w http.ResponseWriter, r *http.Request, status int, v any) {
	if wantsMsgpack(r) {
		w.Header().Set("Content-Type", msgpackContentType)
		w.WriteHeader(status)
		enc := msgpack.NewEncoder(w)
		enc.SetCustomStructTag("json")
		if err := enc.Encode(v); err != nil {
			log.Error("Failed to encode response to msgpack", "error", err)
		}
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to encode response to JSON", "error", err)
	}
}
