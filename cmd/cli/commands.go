package main

import (
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/spf13/cobra"
)

var (
	levelID    string
	playerName string
	dryRun     bool
	notifyName string
)

func init() {
	levelCmd.Flags().StringVar(&levelID, "id", "", "The id of the level")
	_ = levelCmd.MarkFlagRequired("id")
	playerCmd.Flags().StringVar(&playerName, "name", "", "The username of the player")
	_ = playerCmd.MarkFlagRequired("name")
	notifyCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Log the Slack message instead of posting it")
	notifyCmd.Flags().StringVar(&notifyName, "player", "", "Post this player's profile instead of the leaderboard")

	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(leaderboardCmd)
	rootCmd.AddCommand(levelCmd)
	rootCmd.AddCommand(playerCmd)
	rootCmd.AddCommand(notifyCmd)
	rootCmd.AddCommand(metricsCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/health")
	},
}

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the configured levels, hardest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/api/levels")
	},
}

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Show the global player leaderboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/api/leaderboard")
	},
}

var levelCmd = &cobra.Command{
	Use:   "level",
	Short: "Show a level and its leaderboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/api/level?id="+url.QueryEscape(levelID))
	},
}

var playerCmd = &cobra.Command{
	Use:   "player",
	Short: "Show a player's profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/api/player?name="+url.QueryEscape(playerName))
	},
}

var notifyCmd = &cobra.Command{
	Use:   "notify",
	Short: "Post the leaderboard or a player profile to Slack",
	RunE: func(cmd *cobra.Command, args []string) error {
		query := url.Values{}
		endpoint := "/notify/leaderboard"
		if notifyName != "" {
			endpoint = "/notify/player"
			query.Set("name", notifyName)
		}
		if dryRun {
			query.Set("dry_run", "true")
		}
		if len(query) > 0 {
			endpoint += "?" + query.Encode()
		}
		return performRequest(http.MethodPost, endpoint)
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/metrics")
	},
}

func performRequest(method, endpoint string) error {
	target := host + endpoint
	fmt.Printf("Making %s request to %s\n", method, target)

	req, err := http.NewRequest(method, target, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))

	return nil
}
