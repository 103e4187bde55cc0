package http

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/mauv0809/narrow-rankings/internal/config"
	"github.com/mauv0809/narrow-rankings/internal/metrics"
	slacknotifier "github.com/mauv0809/narrow-rankings/internal/notifier/slack"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSlackSigningSecret = "test-signing-secret"

// setupCommandServer returns a server whose slash commands are enabled and
// formatted by the real Slack notifier.
func setupCommandServer(t *testing.T) *Server {
	t.Helper()
	server := setupTestServer(t, slacknotifier.NewNotifierWithAPI(nil, "C123", metrics.NewMock()))
	server.Cfg.Slack = config.SlackConfig{Token: "xoxb-test", ChannelID: "C123", SigningSecret: testSlackSigningSecret}
	return server
}

// createSlackCommandRequest creates an http.Request suitable for testing Slack slash commands,
// including the necessary signature and timestamp headers for verification.
func createSlackCommandRequest(t *testing.T, targetURL string, form url.Values, signingSecret string) *http.Request {
	t.Helper()

	body := form.Encode()
	req := httptest.NewRequest("POST", targetURL, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	timestamp := time.Now().Unix()
	req.Header.Set("X-Slack-Request-Timestamp", strconv.FormatInt(timestamp, 10))

	baseString := fmt.Sprintf("v0:%d:%s", timestamp, body)
	h := hmac.New(sha256.New, []byte(signingSecret))
	h.Write([]byte(baseString))
	req.Header.Set("X-Slack-Signature", "v0="+hex.EncodeToString(h.Sum(nil)))

	return req
}

func decodeSlackMessage(t *testing.T, body io.Reader) map[string]any {
	t.Helper()
	var msg map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&msg))
	return msg
}

func TestLeaderboardCommandHandler(t *testing.T) {
	server := setupCommandServer(t)

	req := createSlackCommandRequest(t, "/slack/command/leaderboard", url.Values{"command": {"/leaderboard"}}, testSlackSigningSecret)
	rr := serve(server, req)

	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	msg := decodeSlackMessage(t, rr.Body)
	assert.Equal(t, slack.ResponseTypeInChannel, msg["response_type"])
	assert.Contains(t, body, "Narrow Arrow Leaderboard")
	assert.Contains(t, body, "*A*")
}

func TestPlayerCommandHandler(t *testing.T) {
	server := setupCommandServer(t)

	t.Run("handles found player", func(t *testing.T) {
		req := createSlackCommandRequest(t, "/slack/command/player", url.Values{"text": {"A"}}, testSlackSigningSecret)

		rr := serve(server, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Total Points*: 18")
	})

	t.Run("handles not found player", func(t *testing.T) {
		req := createSlackCommandRequest(t, "/slack/command/player", url.Values{"text": {"nobody"}}, testSlackSigningSecret)

		rr := serve(server, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "couldn't find a player named *nobody*")
	})

	t.Run("handles missing player name", func(t *testing.T) {
		req := createSlackCommandRequest(t, "/slack/command/player", url.Values{}, testSlackSigningSecret)

		rr := serve(server, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("rejects request with invalid signature", func(t *testing.T) {
		req := createSlackCommandRequest(t, "/slack/command/player", url.Values{"text": {"A"}}, testSlackSigningSecret)
		req.Header.Set("X-Slack-Signature", "v0=invalid-signature")

		rr := serve(server, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("rejects request signed with another secret", func(t *testing.T) {
		req := createSlackCommandRequest(t, "/slack/command/player", url.Values{"text": {"A"}}, "wrong-secret")

		rr := serve(server, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("rejects request with missing signature", func(t *testing.T) {
		req := createSlackCommandRequest(t, "/slack/command/player", url.Values{"text": {"A"}}, testSlackSigningSecret)
		req.Header.Del("X-Slack-Signature")

		rr := serve(server, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("rejects request with outdated timestamp", func(t *testing.T) {
		req := createSlackCommandRequest(t, "/slack/command/player", url.Values{"text": {"A"}}, testSlackSigningSecret)
		req.Header.Set("X-Slack-Request-Timestamp", strconv.FormatInt(time.Now().Add(-6*time.Minute).Unix(), 10))

		rr := serve(server, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestSlackCommands_Disabled(t *testing.T) {
	server := setupTestServer(t, nil)

	req := createSlackCommandRequest(t, "/slack/command/leaderboard", url.Values{}, testSlackSigningSecret)
	rr := serve(server, req)

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}
